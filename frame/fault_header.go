package frame

import (
	"fmt"

	"github.com/kavachlog/decodecore/bitio"
	"github.com/kavachlog/decodecore/errs"
	"github.com/kavachlog/decodecore/packettype"
)

// FaultHeader is the fixed header of a 0x19 fault-report frame (spec §4.6),
// read after the 2-byte SOF has been stripped.
type FaultHeader struct {
	CommonHeader
	SubsystemType packettype.KavachSubsystem
	FaultCount    uint8
}

// ParseFaultHeader parses a FaultHeader and returns the byte cursor
// positioned just past it, ready to read FaultCount fault items.
func ParseFaultHeader(data []byte) (FaultHeader, *bitio.ByteCursor, error) {
	c := bitio.NewByteCursor(data)
	var h FaultHeader

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

	subsystem, err := c.U8()
	if err != nil {
		return h, nil, err
	}
	h.SubsystemType = packettype.KavachSubsystem(subsystem)
	switch h.SubsystemType {
	case packettype.SubsystemStationary, packettype.SubsystemOnboard, packettype.SubsystemTSRMS:
	default:
		return h, nil, fmt.Errorf("frame: subsystem_type 0x%02X not in {0x11,0x22,0x33}: %w", subsystem, errs.ErrInvalidFieldValue)
	}

	count, err := c.U8()
	if err != nil {
		return h, nil, err
	}
	if count > 10 {
		return h, nil, fmt.Errorf("frame: fault_count %d exceeds 10: %w", count, errs.ErrInvalidFieldValue)
	}
	h.FaultCount = count

	if err := h.DateTime.Validate(); err != nil {
		return h, nil, err
	}

	return h, c, nil
}
