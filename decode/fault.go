package decode

import (
	"fmt"

	"github.com/kavachlog/decodecore/checksum"
	"github.com/kavachlog/decodecore/errs"
	"github.com/kavachlog/decodecore/frame"
	"github.com/kavachlog/decodecore/packettype"
)

// FaultDecoder decodes a 0x19 fault-report frame (spec §4.6). This is the
// only family whose CRC is verified — with the Reflected variant, always,
// regardless of fault origin.
type FaultDecoder struct {
	data   []byte // full candidate, SOF included
	header frame.FaultHeader
	body   []byte // bytes just past the fixed header
}

// NewFaultDecoder parses the fixed header of a 0x19 candidate (SOF
// included — the CRC range spec'd in §4.6 is measured from the candidate
// start).
func NewFaultDecoder(data []byte) (*FaultDecoder, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("decode: fault candidate too short: %w", errs.ErrTruncatedFrame)
	}
	h, cursor, err := frame.ParseFaultHeader(data[2:])
	if err != nil {
		return nil, err
	}
	return &FaultDecoder{data: data, header: h, body: data[2+cursor.Pos():]}, nil
}

// FaultItemRecord is one fault entry within a 0x19 frame; the decoder
// emits one record per item, each inheriting the packet header's
// timestamp and identifiers (spec §4.6).
type FaultItemRecord struct {
	Meta

	ModuleID   uint8
	FaultType  packettype.FaultType
	FaultCode  uint16
	Origin     packettype.FaultOrigin
	Subsystem  packettype.KavachSubsystem
	KavachID   uint32
}

func (r FaultItemRecord) Flatten() map[string]any {
	out := map[string]any{
		"module_id":  r.ModuleID,
		"fault_type": fmt.Sprintf("%02d", uint8(r.FaultType)),
		"fault_code": fmt.Sprintf("%04X", r.FaultCode),
		"fault_origin": string(r.Origin),
		"subsystem":    r.Subsystem.String(),
		"kavach_id":    r.KavachID,
	}
	r.Meta.flattenInto(out)
	return out
}

// Decode verifies the frame CRC and returns one FaultItemRecord per fault
// item (spec §4.6, §8 testable property 1 and scenario A).
func (d *FaultDecoder) Decode(source packettype.DataSource, sof packettype.SOF) ([]FaultItemRecord, error) {
	if err := frame.ValidateLength(d.header.MessageLength, len(d.data)); err != nil {
		return nil, err
	}

	if len(d.data) < 4 {
		return nil, fmt.Errorf("decode: fault candidate too short for CRC: %w", errs.ErrTruncatedFrame)
	}
	crcRange := d.data[2 : len(d.data)-4]
	wantCRC := uint32(d.data[len(d.data)-4])<<24 | uint32(d.data[len(d.data)-3])<<16 |
		uint32(d.data[len(d.data)-2])<<8 | uint32(d.data[len(d.data)-1])

	reflected, err := checksum.Get(checksum.VariantReflected)
	if err != nil {
		return nil, err
	}
	if !reflected.Verify(crcRange, wantCRC) {
		return nil, fmt.Errorf("decode: fault CRC mismatch: %w", errs.ErrCrcMismatch)
	}

	need := int(d.header.FaultCount) * 4
	if len(d.body) < need {
		return nil, fmt.Errorf("decode: fault body too short for %d items: %w", d.header.FaultCount, errs.ErrTruncatedFrame)
	}

	meta := Meta{
		EventTime:  d.header.EventTime(),
		DataSource: source,
		SOF:        sof,
		PacketType: packettype.MessageFault,
	}

	records := make([]FaultItemRecord, 0, d.header.FaultCount)
	for i := 0; i < int(d.header.FaultCount); i++ {
		off := i * 4
		moduleID := d.body[off]
		faultType := packettype.FaultType(d.body[off+1])
		if faultType != packettype.FaultTypeFault && faultType != packettype.FaultTypeRecovery {
			return nil, fmt.Errorf("decode: fault type %d not in {1,2}: %w", faultType, errs.ErrInvalidFieldValue)
		}
		faultCode := uint16(d.body[off+2])<<8 | uint16(d.body[off+3])

		records = append(records, FaultItemRecord{
			Meta:      meta,
			ModuleID:  moduleID,
			FaultType: faultType,
			FaultCode: faultCode,
			Origin:    packettype.OriginFor(d.header.SubsystemType),
			Subsystem: d.header.SubsystemType,
			KavachID:  d.header.KavachID,
		})
	}

	return records, nil
}
