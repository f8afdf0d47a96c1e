package bitio

import (
	"errors"
	"testing"

	"github.com/kavachlog/decodecore/errs"
	"github.com/stretchr/testify/require"
)

func TestByteCursor_Reads(t *testing.T) {
	c := NewByteCursor([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07})

	u8, err := c.U8()
	require.NoError(t, err)
	require.Equal(t, uint8(0x01), u8)

	u16, err := c.U16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0203), u16)

	u24, err := c.U24()
	require.NoError(t, err)
	require.Equal(t, uint32(0x040506), u24)

	require.Equal(t, 6, c.Pos())
	require.Equal(t, 1, c.Remaining())
}

func TestByteCursor_U32(t *testing.T) {
	c := NewByteCursor([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	v, err := c.U32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), v)
}

func TestByteCursor_TruncatedFrame(t *testing.T) {
	c := NewByteCursor([]byte{0x01})
	_, err := c.U16()
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrTruncatedFrame))
	// position must not advance on a failed read
	require.Equal(t, 0, c.Pos())
}

func TestByteCursor_SkipAndSeek(t *testing.T) {
	c := NewByteCursor([]byte{0x01, 0x02, 0x03, 0x04})
	require.NoError(t, c.Skip(2))
	require.Equal(t, 2, c.Pos())

	c.Seek(0)
	b, err := c.Slice(2)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, b)
	require.Equal(t, 2, c.Pos())
}

func TestByteCursor_Peek(t *testing.T) {
	c := NewByteCursor([]byte{0xAA, 0xBB})
	b, err := c.Peek(2)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0xBB}, b)
	require.Equal(t, 0, c.Pos(), "Peek must not advance the cursor")
}
