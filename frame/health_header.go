package frame

import (
	"github.com/kavachlog/decodecore/bitio"
)

// HealthHeader is the fixed header of a 0x17/0x18 health frame, read after
// the 2-byte SOF has been stripped. It carries no active_radio field; its
// date/time supply the event time of the decoded health record (spec §4.7).
type HealthHeader struct {
	CommonHeader
}

// ParseHealthHeader parses a HealthHeader and returns the byte cursor
// positioned at event_count, ready to read EventCount health events.
func ParseHealthHeader(data []byte) (HealthHeader, *bitio.ByteCursor, error) {
	c := bitio.NewByteCursor(data)
	var h HealthHeader

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

	if err := h.DateTime.Validate(); err != nil {
		return h, nil, err
	}

	return h, c, nil
}
