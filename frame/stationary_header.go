package frame

import (
	"github.com/kavachlog/decodecore/bitio"
	"github.com/kavachlog/decodecore/packettype"
)

// StationaryHeader is the fixed 19-byte header of a 0x11 stationary-KAVACH
// frame (spec §4.4), read after the 2-byte SOF has been stripped.
//
// The spec's literal byte offsets (date at 12..14, time at 15..17,
// active_radio at 18) require a 3-byte stationary_kavach_id plus one
// reserved byte to reach 19 bytes total; see DESIGN.md for this
// interpretation.
type StationaryHeader struct {
	CommonHeader
	Reserved    uint8
	ActiveRadio packettype.ActiveRadio
}

// ParseStationaryHeader parses a StationaryHeader and returns the byte
// cursor positioned just past it.
func ParseStationaryHeader(data []byte) (StationaryHeader, *bitio.ByteCursor, error) {
	c := bitio.NewByteCursor(data)
	var h StationaryHeader

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

	kavachID, err := c.U24()
	if err != nil {
		return h, nil, err
	}
	h.KavachID = kavachID

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

	reserved, err := c.U8()
	if err != nil {
		return h, nil, err
	}
	h.Reserved = reserved

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
