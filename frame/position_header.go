package frame

import (
	"github.com/kavachlog/decodecore/bitio"
	"github.com/kavachlog/decodecore/packettype"
)

// PositionHeader is the fixed-size header of a 0x12 loco-position frame
// (spec §4.3), read after the 2-byte SOF has been stripped.
type PositionHeader struct {
	CommonHeader
	ActiveRadio packettype.ActiveRadio
}

// ParsePositionHeader parses a PositionHeader from the start of data (SOF
// already stripped) and returns the byte cursor positioned just past it, so
// the caller can continue decoding the body without re-deriving the offset.
func ParsePositionHeader(data []byte) (PositionHeader, *bitio.ByteCursor, error) {
	c := bitio.NewByteCursor(data)
	var h PositionHeader

	mt, err := c.U8()
	if err != nil {
		return h, nil, err
	}
	h.MessageType = mt

	length, err := c.U16()
	if err != nil {
		return h, nil, err
	}
	h.MessageLength = length

	seq, err := c.U16()
	if err != nil {
		return h, nil, err
	}
	h.MessageSequence = seq

	kavachID, err := c.U16()
	if err != nil {
		return h, nil, err
	}
	h.KavachID = uint32(kavachID)

	nms, err := c.U16()
	if err != nil {
		return h, nil, err
	}
	h.NMSSystemID = nms

	ver, err := c.U8()
	if err != nil {
		return h, nil, err
	}
	h.SystemVersion = ver

	day, err := c.U8()
	if err != nil {
		return h, nil, err
	}
	month, err := c.U8()
	if err != nil {
		return h, nil, err
	}
	year, err := c.U8()
	if err != nil {
		return h, nil, err
	}
	hh, err := c.U8()
	if err != nil {
		return h, nil, err
	}
	mm, err := c.U8()
	if err != nil {
		return h, nil, err
	}
	ss, err := c.U8()
	if err != nil {
		return h, nil, err
	}
	h.DateTime = DateTime{Day: day, Month: month, Year: year, Hour: hh, Min: mm, Sec: ss}

	radio, err := c.U8()
	if err != nil {
		return h, nil, err
	}
	h.ActiveRadio = packettype.ActiveRadio(radio)

	if err := h.DateTime.Validate(); err != nil {
		return h, nil, err
	}

	return h, c, nil
}
