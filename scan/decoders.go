package scan

import (
	"errors"

	"github.com/kavachlog/decodecore/decode"
	"github.com/kavachlog/decodecore/errs"
	"github.com/kavachlog/decodecore/packettype"
)

// stripSOF returns candidate with its 2-byte SOF removed, erroring if the
// candidate is too short to contain one.
func stripSOF(candidate []byte) ([]byte, error) {
	if len(candidate) < 2 {
		return nil, errs.ErrTruncatedFrame
	}
	return candidate[2:], nil
}

// PositionDecodeFunc decodes 0x12 candidates (spec §4.3).
func PositionDecodeFunc() DecodeFunc {
	return func(candidate []byte, source packettype.DataSource, sof packettype.SOF) ([]decode.Record, error) {
		body, err := stripSOF(candidate)
		if err != nil {
			return nil, err
		}
		dec, err := decode.NewPositionDecoder(body)
		if err != nil {
			return nil, err
		}
		rec, err := dec.Decode(source, sof)
		if err != nil {
			return nil, err
		}
		return []decode.Record{rec}, nil
	}
}

// StationaryDecodeFunc decodes 0x11 candidates: Regular, Access, or
// Emergency, selected internally by the decoder (spec §4.4).
func StationaryDecodeFunc() DecodeFunc {
	return func(candidate []byte, source packettype.DataSource, sof packettype.SOF) ([]decode.Record, error) {
		body, err := stripSOF(candidate)
		if err != nil {
			return nil, err
		}
		dec, err := decode.NewStationaryDecoder(body)
		if err != nil {
			return nil, err
		}
		rec, err := dec.Decode(source, sof)
		if err != nil {
			return nil, err
		}
		return []decode.Record{rec}, nil
	}
}

// HealthDecodeFunc decodes 0x17/0x18 candidates (spec §4.7).
func HealthDecodeFunc() DecodeFunc {
	return func(candidate []byte, source packettype.DataSource, sof packettype.SOF) ([]decode.Record, error) {
		body, err := stripSOF(candidate)
		if err != nil {
			return nil, err
		}
		dec, err := decode.NewHealthDecoder(body)
		if err != nil {
			return nil, err
		}
		rec, err := dec.Decode(source, sof)
		if err != nil {
			return nil, err
		}
		return []decode.Record{rec}, nil
	}
}

// FaultDecodeFunc decodes 0x19 candidates, one record per fault item (spec
// §4.6). The candidate is passed whole: unlike the other families the CRC
// range is measured from the candidate start, SOF included.
func FaultDecodeFunc() DecodeFunc {
	return func(candidate []byte, source packettype.DataSource, sof packettype.SOF) ([]decode.Record, error) {
		dec, err := decode.NewFaultDecoder(candidate)
		if err != nil {
			return nil, err
		}
		items, err := dec.Decode(source, sof)
		if err != nil {
			return nil, err
		}
		out := make([]decode.Record, len(items))
		for i, it := range items {
			out[i] = it
		}
		return out, nil
	}
}

// InterlockingDecodeFunc decodes 0x15 (periodic) and 0x16 (event-driven)
// candidates against relays, dispatching on the message-type byte (spec
// §4.5). The candidate is passed whole: the interlocking header is parsed
// by fixed index into the full candidate, SOF included.
func InterlockingDecodeFunc(relays decode.RelayTable) DecodeFunc {
	return func(candidate []byte, source packettype.DataSource, sof packettype.SOF) ([]decode.Record, error) {
		if len(candidate) < 3 {
			return nil, errs.ErrTruncatedFrame
		}
		dec, err := decode.NewInterlockingDecoder(candidate, relays)
		if err != nil {
			return nil, err
		}

		var rec decode.Record
		switch candidate[2] {
		case byte(packettype.MessageInterlockingPeriodic):
			rec, err = dec.DecodePeriodic(source, sof)
		case byte(packettype.MessageInterlockingEvent):
			rec, err = dec.DecodeEvent(source, sof)
		default:
			return nil, errors.Join(errs.ErrInvalidFieldValue, errors.New("scan: unexpected interlocking message type"))
		}
		if err != nil {
			return nil, err
		}
		return []decode.Record{rec}, nil
	}
}
