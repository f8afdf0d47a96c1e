package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameID(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"short frame", []byte{0xAA, 0xAA, 0x12, 0x00, 0x1F}},
		{"longer frame", []byte{0xAA, 0xAA, 0x11, 0x00, 0x30, 0x00, 0x01, 0x00, 0x02, 0x01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := FrameID(tt.data)
			id2 := FrameID(tt.data)
			assert.Equal(t, id1, id2, "FrameID must be deterministic for identical input")
		})
	}
}

func TestFrameID_DistinctForDistinctFrames(t *testing.T) {
	a := FrameID([]byte{0xAA, 0xAA, 0x12, 0x01})
	b := FrameID([]byte{0xAA, 0xAA, 0x12, 0x02})
	assert.NotEqual(t, a, b)
}
