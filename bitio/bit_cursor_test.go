package bitio

import (
	"errors"
	"testing"

	"github.com/kavachlog/decodecore/errs"
	"github.com/stretchr/testify/require"
)

func TestBitCursor_Bits(t *testing.T) {
	// 0b10110100 0b11000000
	c := NewBitCursor([]byte{0b10110100, 0b11000000})

	v, err := c.Bits(4)
	require.NoError(t, err)
	require.Equal(t, uint32(0b1011), v)

	v, err = c.Bits(4)
	require.NoError(t, err)
	require.Equal(t, uint32(0b0100), v)

	v, err = c.Bits(2)
	require.NoError(t, err)
	require.Equal(t, uint32(0b11), v)

	require.Equal(t, 10, c.Pos())
	require.Equal(t, 6, c.Remaining())
}

func TestBitCursor_SignedBits(t *testing.T) {
	// 15-bit signed field, value -1 (all ones)
	c := NewBitCursor([]byte{0xFF, 0xFF})
	v, err := c.SignedBits(15)
	require.NoError(t, err)
	require.Equal(t, int32(-1), v)
}

func TestBitCursor_SignedBits_Positive(t *testing.T) {
	// sign bit (bit index 0) is 0, so the 15-bit field decodes as the
	// plain unsigned value: 0b000000000000001 = 1
	c := NewBitCursor([]byte{0b00000000, 0b00000010})
	v, err := c.SignedBits(15)
	require.NoError(t, err)
	require.Equal(t, int32(1), v)
}

func TestBitCursor_Skip(t *testing.T) {
	c := NewBitCursor([]byte{0xFF})
	require.NoError(t, c.Skip(4))
	v, err := c.Bits(4)
	require.NoError(t, err)
	require.Equal(t, uint32(0b1111), v)
}

func TestBitCursor_SeekForResync(t *testing.T) {
	c := NewBitCursor([]byte{0xFF, 0x00, 0xFF})
	c.Seek(8)
	v, err := c.Bits(8)
	require.NoError(t, err)
	require.Equal(t, uint32(0), v)
}

func TestBitCursor_TruncatedFrame(t *testing.T) {
	c := NewBitCursor([]byte{0xFF})
	_, err := c.Bits(9)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrTruncatedFrame))
}

func TestReverseBytes(t *testing.T) {
	in := []byte{0x01, 0x00}
	out := ReverseBytes(in)
	require.Equal(t, []byte{0x00, 0x01}, out)
}

func TestReverseBytes_InterlockingScenarioB(t *testing.T) {
	// spec §8 scenario B: bitmap "0100" reversed -> "0001"
	in := []byte{0x01, 0x00}
	reversed := ReverseBytes(in)
	c := NewBitCursor(reversed)

	bits := make([]uint32, 16)
	for i := range bits {
		v, err := c.Bits(1)
		require.NoError(t, err)
		bits[i] = v
	}
	// MSB-first expansion of 0x00 0x01 is 00000000 00000001
	require.Equal(t, uint32(0), bits[14])
	require.Equal(t, uint32(1), bits[15])
}
