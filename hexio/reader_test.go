package hexio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	got := sanitize([]byte("aaaa12 00\r\n1f\t"))
	assert.Equal(t, "AAAA12001F", got)
}

func TestSegment_PreservesMarkerAtStart(t *testing.T) {
	text := "AAAA1200FFAAAA1201EE"
	segs := segment(text, MarkersPosition)
	require.Len(t, segs, 2)
	assert.Equal(t, "AAAA1200FF", segs[0])
	assert.Equal(t, "AAAA1201EE", segs[1])
}

func TestSegment_MultipleMarkerTypes(t *testing.T) {
	text := "AAAA1500AAAA1601"
	segs := segment(text, MarkersInterlocking)
	require.Len(t, segs, 2)
	assert.Equal(t, "AAAA1500", segs[0])
	assert.Equal(t, "AAAA1601", segs[1])
}

func TestReadFrames_DecodesAndSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "01-01-25.bin")
	// Second candidate has an odd hex length and must be discarded.
	content := "aaaa1200ff\naaaa12f"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var got [][]byte
	for frame := range ReadFrames(path, MarkersPosition) {
		got = append(got, frame)
	}
	require.Len(t, got, 1)
	assert.Equal(t, []byte{0xAA, 0xAA, 0x12, 0x00, 0xFF}, got[0])
}

func TestReadFrames_MissingFileYieldsEmptySequence(t *testing.T) {
	var got [][]byte
	for frame := range ReadFrames("/nonexistent/path.bin", MarkersPosition) {
		got = append(got, frame)
	}
	assert.Empty(t, got)
}

func TestReadFramesBytes_DecodesAndSkipsInvalid(t *testing.T) {
	content := []byte("aaaa1200ff\naaaa12f")

	var got [][]byte
	for frame := range ReadFramesBytes(content, MarkersPosition) {
		got = append(got, frame)
	}
	require.Len(t, got, 1)
	assert.Equal(t, []byte{0xAA, 0xAA, 0x12, 0x00, 0xFF}, got[0])
}
