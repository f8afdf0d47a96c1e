// Package bitio provides the two cursor types every KAVACH frame decoder is
// built on (spec §4.2): a byte-aligned ByteCursor for fixed-header fields,
// and an unaligned BitCursor for the bit-packed payloads that follow a
// frame's A5C3/SOF-TX marker.
//
// They share no state. The byte position at hand-off from ByteCursor to
// BitCursor becomes bit position pos*8 (spec §4.2, §9 "Bit vs byte decoding
// mixed in one frame").
package bitio

import (
	"fmt"

	"github.com/kavachlog/decodecore/endian"
	"github.com/kavachlog/decodecore/errs"
)

// beEngine is the big-endian engine every multi-byte header field in the
// log format uses (spec §3 "all multi-byte integers big-endian unless
// noted").
var beEngine = endian.GetBigEndianEngine()

// ByteCursor is a position-tracking cursor over a byte buffer, offering
// byte-aligned big-endian reads. Every Read* method advances pos by the
// width read; a read that would exceed the buffer returns
// errs.ErrTruncatedFrame and leaves pos unchanged.
type ByteCursor struct {
	buf []byte
	pos int
}

// NewByteCursor creates a cursor positioned at the start of buf.
func NewByteCursor(buf []byte) *ByteCursor {
	return &ByteCursor{buf: buf}
}

// Pos returns the current byte offset.
func (c *ByteCursor) Pos() int { return c.pos }

// Len returns the total number of bytes in the underlying buffer.
func (c *ByteCursor) Len() int { return len(c.buf) }

// Remaining returns the number of unread bytes.
func (c *ByteCursor) Remaining() int { return len(c.buf) - c.pos }

// Seek repositions the cursor to an absolute byte offset. It does not
// validate the offset against the buffer length; the next Read* call will
// report ErrTruncatedFrame if it is out of range.
func (c *ByteCursor) Seek(pos int) { c.pos = pos }

// Bytes returns the underlying buffer.
func (c *ByteCursor) Bytes() []byte { return c.buf }

func (c *ByteCursor) need(n int) error {
	if c.pos+n > len(c.buf) {
		return fmt.Errorf("byte cursor: need %d bytes at offset %d, have %d: %w", n, c.pos, len(c.buf)-c.pos, errs.ErrTruncatedFrame)
	}
	return nil
}

// U8 reads one byte and advances by 1.
func (c *ByteCursor) U8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.buf[c.pos]
	c.pos++
	return v, nil
}

// U16 reads a big-endian uint16 and advances by 2.
func (c *ByteCursor) U16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := beEngine.Uint16(c.buf[c.pos : c.pos+2])
	c.pos += 2
	return v, nil
}

// U24 reads a big-endian 24-bit unsigned integer (returned widened to
// uint32) and advances by 3. encoding/binary has no native 24-bit reader,
// so this widens the 3 bytes into the low 24 bits of a uint32 the same way
// a Uint32 read would, then discards the top byte.
func (c *ByteCursor) U24() (uint32, error) {
	if err := c.need(3); err != nil {
		return 0, err
	}
	widened := [4]byte{0, c.buf[c.pos], c.buf[c.pos+1], c.buf[c.pos+2]}
	v := beEngine.Uint32(widened[:])
	c.pos += 3
	return v, nil
}

// U32 reads a big-endian uint32 and advances by 4.
func (c *ByteCursor) U32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := beEngine.Uint32(c.buf[c.pos : c.pos+4])
	c.pos += 4
	return v, nil
}

// Skip advances the cursor by n bytes without reading them.
func (c *ByteCursor) Skip(n int) error {
	if err := c.need(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}

// Peek returns n bytes starting at the current position without advancing
// the cursor.
func (c *ByteCursor) Peek(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	return c.buf[c.pos : c.pos+n], nil
}

// Slice returns the n bytes starting at the current position and advances
// past them.
func (c *ByteCursor) Slice(n int) ([]byte, error) {
	b, err := c.Peek(n)
	if err != nil {
		return nil, err
	}
	c.pos += n
	return b, nil
}
