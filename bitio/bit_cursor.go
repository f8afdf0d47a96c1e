package bitio

import (
	"fmt"

	"github.com/kavachlog/decodecore/errs"
)

// BitCursor is an unaligned cursor over a byte slice's bit representation.
//
// The bit string is materialized lazily, MSB first per byte, on first use
// (spec §4.2): byte 0's bit 7 is bit index 0, byte 0's bit 0 is bit index 7,
// byte 1's bit 7 is bit index 8, and so on.
type BitCursor struct {
	buf  []byte
	bits []byte // one '0'/'1' byte per bit, populated on first use
	pos  int
}

// NewBitCursor creates a cursor over buf. The byte position at hand-off
// from a ByteCursor becomes bit position bytePos*8.
func NewBitCursor(buf []byte) *BitCursor {
	return &BitCursor{buf: buf}
}

func (c *BitCursor) materialize() {
	if c.bits != nil {
		return
	}
	c.bits = make([]byte, len(c.buf)*8)
	idx := 0
	for _, b := range c.buf {
		for k := 7; k >= 0; k-- {
			if (b>>uint(k))&1 == 1 {
				c.bits[idx] = '1'
			} else {
				c.bits[idx] = '0'
			}
			idx++
		}
	}
}

// Pos returns the current bit offset.
func (c *BitCursor) Pos() int { return c.pos }

// Seek repositions the cursor to an absolute bit offset. Used after
// decoding a sub-packet to resync to sub_start_bit + sub_len_bits (spec
// §4.4, §9 "Sub-packet resync"), since a decoder must never trust its own
// cursor position over the sub-packet's declared length.
func (c *BitCursor) Seek(pos int) { c.pos = pos }

// Remaining returns the number of unread bits.
func (c *BitCursor) Remaining() int {
	c.materialize()
	return len(c.bits) - c.pos
}

// Bits reads the next n bits (n <= 32) as an unsigned value and advances by
// n.
func (c *BitCursor) Bits(n int) (uint32, error) {
	if n < 0 || n > 32 {
		return 0, fmt.Errorf("bit cursor: invalid width %d", n)
	}
	c.materialize()
	if c.pos+n > len(c.bits) {
		return 0, fmt.Errorf("bit cursor: need %d bits at offset %d, have %d: %w", n, c.pos, len(c.bits)-c.pos, errs.ErrTruncatedFrame)
	}

	var v uint32
	for i := 0; i < n; i++ {
		v <<= 1
		if c.bits[c.pos+i] == '1' {
			v |= 1
		}
	}
	c.pos += n

	return v, nil
}

// SignedBits reads the next n bits and sign-extends them, interpreting the
// top bit as the sign (spec §4.2, used for DIST_PKT_START's 15-bit signed
// field).
func (c *BitCursor) SignedBits(n int) (int32, error) {
	v, err := c.Bits(n)
	if err != nil {
		return 0, err
	}
	if n == 0 || n == 32 {
		return int32(v), nil
	}

	signBit := uint32(1) << uint(n-1)
	if v&signBit != 0 {
		v |= ^uint32(0) << uint(n)
	}

	return int32(v), nil
}

// Skip advances the cursor by n bits without reading them.
func (c *BitCursor) Skip(n int) error {
	c.materialize()
	if c.pos+n > len(c.bits) {
		return fmt.Errorf("bit cursor: cannot skip %d bits at offset %d, have %d: %w", n, c.pos, len(c.bits)-c.pos, errs.ErrTruncatedFrame)
	}
	c.pos += n
	return nil
}

// ReverseBytes returns a new slice with the byte order of b reversed
// (spec §4.2, §4.5: applied to interlocking relay bitmaps before bit
// expansion so that the least-significant byte becomes bit index 0).
func ReverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
