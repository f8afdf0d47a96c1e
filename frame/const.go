package frame

// Fixed header sizes in bytes, measured from the message_type byte (SOF is
// stripped before a header is handed to Parse).
const (
	// PositionHeaderSize covers message_type .. active_radio for 0x12,
	// with a 2-byte stationary_kavach_id (spec §3, §4.3).
	PositionHeaderSize = 17

	// StationaryHeaderSize covers message_type .. active_radio for 0x11
	// (19 bytes total, spec §4.4). It uses a 3-byte stationary_kavach_id
	// plus one reserved byte to match the spec's literal byte offsets
	// (date at 12..14, time at 15..17, active_radio at 18); see DESIGN.md.
	StationaryHeaderSize = 19

	// FaultHeaderSize covers message_type .. fault_count for 0x19
	// (spec §4.6).
	FaultHeaderSize = 19

	// HealthHeaderSize covers message_type through the end of date/time,
	// just before event_count (spec §4.7).
	HealthHeaderSize = 16
)

// Interlocking candidates (0x15/0x16) are parsed by fixed index into the
// full candidate, SOF included, rather than by sequential cursor (spec
// §4.5: "fields are parsed from whitespace-padded hex tokens").
const (
	InterlockingStationHiIdx = 7
	InterlockingStationLoIdx = 8
	InterlockingDateIdx      = 12
	InterlockingTimeIdx      = 15
	InterlockingEventCountIdx = 18
	InterlockingEventsStartIdx = 19
	InterlockingBitmapStartIdx = 21
)
