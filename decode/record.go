package decode

import (
	"time"

	"github.com/kavachlog/decodecore/packettype"
)

// Meta is the record metadata common to every packet family (spec §3
// "Records"): event_time, data_source, sof, packet_type. Family-specific
// fields live on the concrete record type and are merged in by Flatten.
type Meta struct {
	EventTime  time.Time
	DataSource packettype.DataSource
	SOF        packettype.SOF
	PacketType packettype.MessageType
}

func (m Meta) flattenInto(out map[string]any) {
	out["event_time"] = m.EventTime.Format("2006-01-02T15:04:05")
	out["data_source"] = string(m.DataSource)
	out["sof"] = string(m.SOF)
	out["packet_type"] = int(m.PacketType)
}

// When returns the record's event timestamp, promoted from the embedded
// Meta field. It exists because the Record interface cannot expose a field
// named EventTime directly through the Meta struct of the same name.
func (m Meta) When() time.Time {
	return m.EventTime
}

// Record is a decoded frame, normalized to a flat map at the HTTP boundary
// (spec §9 "Dynamic-property records": a tagged-union record design whose
// serialization layer flattens to a map so the output field set can vary
// per packet variant without a shared flat struct).
type Record interface {
	Flatten() map[string]any
	When() time.Time
}
