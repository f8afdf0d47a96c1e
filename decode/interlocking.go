package decode

import (
	"fmt"
	"strings"

	"github.com/kavachlog/decodecore/bitio"
	"github.com/kavachlog/decodecore/errs"
	"github.com/kavachlog/decodecore/frame"
	"github.com/kavachlog/decodecore/packettype"
)

// RelayTable is the injected, read-only relay master-data lookup consumed
// by the interlocking decoder (spec §1 "Station/relay master-data lookup
// tables", §5 "initialized once at startup and treated as immutable").
type RelayTable interface {
	// NameAt returns the relay name assigned to bit index i of a 0x15
	// bitmap, in station-specific order.
	NameAt(i int) (name string, ok bool)
	// NameByAddr returns the relay name matching a 0x16 event's
	// relay_addr field.
	NameByAddr(addr uint16) (name string, ok bool)
}

// StaticRelayTable is a simple slice/map-backed RelayTable, suitable for a
// process-wide immutable table initialized at startup.
type StaticRelayTable struct {
	byIndex []string
	byAddr  map[uint16]string
}

// NewStaticRelayTable builds a StaticRelayTable. byIndex is ordered by bit
// index (spec §4.5: "bit i maps to relay i of the station's relay table").
func NewStaticRelayTable(byIndex []string, byAddr map[uint16]string) *StaticRelayTable {
	return &StaticRelayTable{byIndex: byIndex, byAddr: byAddr}
}

func (t *StaticRelayTable) NameAt(i int) (string, bool) {
	if i < 0 || i >= len(t.byIndex) {
		return "", false
	}
	return t.byIndex[i], true
}

func (t *StaticRelayTable) NameByAddr(addr uint16) (string, bool) {
	name, ok := t.byAddr[addr]
	return name, ok
}

// RelayStatus is one relay's decoded logical state.
type RelayStatus struct {
	Name   string
	Status string // "Picked Up" or "Drop Down"
}

const (
	statusPickedUp = "Picked Up"
	statusDropDown = "Drop Down"
)

// isTPR reports whether a relay name carries the Track Proving Relay
// suffix that inverts status polarity (spec §4.5, GLOSSARY).
func isTPR(name string) bool {
	return strings.HasSuffix(name, "_TPR")
}

// InterlockingPeriodicRecord is the decoded payload of a 0x15 frame.
type InterlockingPeriodicRecord struct {
	Meta

	StationID   uint16
	FrameNumber int
	Relays      []RelayStatus
}

func (r InterlockingPeriodicRecord) Flatten() map[string]any {
	out := map[string]any{
		"station_id":   r.StationID,
		"frame_number": r.FrameNumber,
		"relays":       r.Relays,
	}
	r.Meta.flattenInto(out)
	return out
}

// InterlockingEventRecord is the decoded payload of a 0x16 frame.
type InterlockingEventRecord struct {
	Meta

	StationID   uint16
	FrameNumber int
	Events      []RelayStatus
}

func (r InterlockingEventRecord) Flatten() map[string]any {
	out := map[string]any{
		"station_id":   r.StationID,
		"frame_number": r.FrameNumber,
		"events":       r.Events,
	}
	r.Meta.flattenInto(out)
	return out
}

// InterlockingDecoder decodes a 0x15 (periodic) or 0x16 (event-driven)
// candidate (spec §4.5). Unlike the other families it reads fields by
// fixed index into the full candidate rather than a sequential cursor.
type InterlockingDecoder struct {
	data   []byte
	header frame.InterlockingHeader
	relays RelayTable
}

// NewInterlockingDecoder parses the header of an interlocking candidate
// (SOF included) against the injected relay table.
func NewInterlockingDecoder(data []byte, relays RelayTable) (*InterlockingDecoder, error) {
	h, err := frame.ParseInterlockingHeader(data)
	if err != nil {
		return nil, err
	}
	return &InterlockingDecoder{data: data, header: h, relays: relays}, nil
}

// DecodePeriodic decodes a 0x15 candidate's relay bitmap.
func (d *InterlockingDecoder) DecodePeriodic(source packettype.DataSource, sof packettype.SOF) (Record, error) {
	if len(d.data) <= frame.InterlockingBitmapStartIdx {
		return nil, fmt.Errorf("decode: interlocking periodic candidate too short: %w", errs.ErrTruncatedFrame)
	}

	bitmap := d.data[frame.InterlockingBitmapStartIdx:]
	reversed := bitio.ReverseBytes(bitmap)
	bc := bitio.NewBitCursor(reversed)

	var relays []RelayStatus
	for i := 0; bc.Remaining() > 0; i++ {
		bit, err := bc.Bits(1)
		if err != nil {
			break
		}
		name, ok := d.relays.NameAt(i)
		if !ok {
			continue
		}
		relays = append(relays, RelayStatus{Name: name, Status: periodicStatus(name, bit)})
	}

	return InterlockingPeriodicRecord{
		Meta: Meta{
			EventTime:  d.header.DateTime.Time(),
			DataSource: source,
			SOF:        sof,
			PacketType: packettype.MessageInterlockingPeriodic,
		},
		StationID:   d.header.StationID,
		FrameNumber: d.header.FrameNumber(),
		Relays:      relays,
	}, nil
}

// periodicStatus applies the 0x15 bitmap polarity rule (spec §4.5): TPR
// relays invert relative to non-TPR relays.
func periodicStatus(name string, bit uint32) string {
	if isTPR(name) {
		if bit == 0 {
			return statusPickedUp
		}
		return statusDropDown
	}
	if bit == 1 {
		return statusPickedUp
	}
	return statusDropDown
}

// DecodeEvent decodes a 0x16 candidate's (relay_addr, status) triplets.
func (d *InterlockingDecoder) DecodeEvent(source packettype.DataSource, sof packettype.SOF) (Record, error) {
	if len(d.data) <= frame.InterlockingEventCountIdx {
		return nil, fmt.Errorf("decode: interlocking event candidate too short: %w", errs.ErrTruncatedFrame)
	}

	eventCount := int(d.data[frame.InterlockingEventCountIdx])
	var events []RelayStatus

	off := frame.InterlockingEventsStartIdx
	for i := 0; i < eventCount; i++ {
		if off+3 > len(d.data) {
			break
		}
		addr := uint16(d.data[off])<<8 | uint16(d.data[off+1])
		status := d.data[off+2]
		off += 3

		name, ok := d.relays.NameByAddr(addr)
		if !ok {
			continue
		}
		events = append(events, RelayStatus{Name: name, Status: eventStatus(name, status)})
	}

	return InterlockingEventRecord{
		Meta: Meta{
			EventTime:  d.header.DateTime.Time(),
			DataSource: source,
			SOF:        sof,
			PacketType: packettype.MessageInterlockingEvent,
		},
		StationID:   d.header.StationID,
		FrameNumber: d.header.FrameNumber(),
		Events:      events,
	}, nil
}

// eventStatus applies the 0x16 triplet polarity rule (spec §4.5). This
// intentionally contradicts the 0x15 bitmap polarity for TPR relays (spec
// §9 "Source-level open questions" (a)) — preserved verbatim, not "fixed".
func eventStatus(name string, status uint8) string {
	if isTPR(name) {
		if status == 0b01 {
			return statusDropDown
		}
		return statusPickedUp
	}
	if status == 0b01 {
		return statusPickedUp
	}
	return statusDropDown
}
