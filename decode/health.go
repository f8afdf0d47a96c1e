package decode

import (
	"fmt"

	"github.com/kavachlog/decodecore/bitio"
	"github.com/kavachlog/decodecore/errs"
	"github.com/kavachlog/decodecore/frame"
	"github.com/kavachlog/decodecore/packettype"
)

// eventSizeStationary returns the authoritative per-event payload size (in
// bytes) for a 0x17 stationary health event id (spec §6).
func eventSizeStationary(id uint16) int {
	switch {
	case id >= 1 && id <= 20:
		return 1
	case id == 21:
		return 2
	case id == 22:
		return 1
	case id == 23:
		return 2
	case id == 24:
		return 1
	case id >= 25 && id <= 26:
		return 1
	case id >= 27 && id <= 37:
		return 1
	case id >= 38 && id <= 42:
		return 2
	case id >= 43 && id <= 44:
		return 4
	case id == 45:
		return 2
	default:
		return 2
	}
}

// eventSizeOnboard returns the authoritative per-event payload size (in
// bytes) for a 0x18 onboard health event id (spec §6).
func eventSizeOnboard(id uint16) int {
	switch {
	case id >= 1 && id <= 16:
		return 1
	case id == 17:
		return 2
	case id >= 18 && id <= 26:
		return 1
	case id >= 27 && id <= 28:
		return 2
	case id >= 29 && id <= 32:
		return 1
	case id >= 33 && id <= 38:
		return 2
	case id >= 39 && id <= 40:
		return 4
	case id >= 41 && id <= 45:
		return 1
	case id >= 46 && id <= 47:
		return 3
	case id == 48:
		return 4
	case id >= 49 && id <= 54:
		return 1
	case id >= 55 && id <= 56:
		return 2
	case id == 57:
		return 4
	default:
		return 2
	}
}

// HealthEvent is one decoded event entry within a health frame.
type HealthEvent struct {
	EventID uint16
	Data    uint64 // big-endian value of up to 4 bytes, zero-extended
}

// HealthRecord is the decoded payload of a 0x17/0x18 health frame.
type HealthRecord struct {
	Meta

	Events []HealthEvent
}

func (r HealthRecord) Flatten() map[string]any {
	events := make([]map[string]any, len(r.Events))
	for i, e := range r.Events {
		events[i] = map[string]any{"event_id": e.EventID, "data": e.Data}
	}
	out := map[string]any{"events": events}
	r.Meta.flattenInto(out)
	return out
}

// HealthDecoder decodes a 0x17 (stationary) or 0x18 (onboard) health frame
// (spec §4.7). The event-size table used for the variable-width payloads is
// selected from the header's own message type, so the same decoder serves
// both families.
type HealthDecoder struct {
	header frame.HealthHeader
	body   *bitio.ByteCursor
}

// NewHealthDecoder parses the header of a 0x17/0x18 candidate (SOF already
// stripped) and prepares the decoder for Decode.
func NewHealthDecoder(data []byte) (*HealthDecoder, error) {
	h, cursor, err := frame.ParseHealthHeader(data)
	if err != nil {
		return nil, err
	}
	return &HealthDecoder{header: h, body: cursor}, nil
}

// Decode reads event_count followed by that many (event_id, payload)
// entries, stopping silently once the remaining bytes can't accommodate a
// full entry (spec §4.7 — no CRC or length check gates this family).
func (d *HealthDecoder) Decode(source packettype.DataSource, sof packettype.SOF) (Record, error) {
	eventCount, err := d.body.U8()
	if err != nil {
		return nil, fmt.Errorf("decode: health candidate too short for event_count: %w", errs.ErrTruncatedFrame)
	}

	packetType := packettype.MessageType(d.header.MessageType)
	sizeFor := eventSizeStationary
	if packetType == packettype.MessageOnboardHealth {
		sizeFor = eventSizeOnboard
	}

	rec := HealthRecord{
		Meta: Meta{
			EventTime:  d.header.EventTime(),
			DataSource: source,
			SOF:        sof,
			PacketType: packetType,
		},
	}

	for i := 0; i < int(eventCount); i++ {
		id, err := d.body.U16()
		if err != nil {
			break // remaining bytes can't accommodate another entry; stop silently
		}
		raw, err := d.body.Slice(sizeFor(id))
		if err != nil {
			break
		}

		var value uint64
		for _, b := range raw {
			value = value<<8 | uint64(b)
		}
		rec.Events = append(rec.Events, HealthEvent{EventID: id, Data: value})
	}

	return rec, nil
}
