package frame

import (
	"fmt"

	"github.com/kavachlog/decodecore/errs"
)

// InterlockingHeader holds the fields extracted by fixed index from a 0x15
// (periodic) or 0x16 (event-driven) candidate (spec §4.5). Unlike the other
// families, offsets are measured from the start of the candidate including
// its 2-byte SOF, because the source parses these fields from
// whitespace-padded hex tokens rather than a sequential cursor.
type InterlockingHeader struct {
	StationID uint16
	DateTime  DateTime
}

// ParseInterlockingHeader extracts StationID and DateTime from a full
// candidate (SOF included). It does not itself distinguish 0x15 from 0x16;
// callers read the type byte at data[2] and continue parsing the
// family-specific body after this call.
func ParseInterlockingHeader(data []byte) (InterlockingHeader, error) {
	var h InterlockingHeader
	if len(data) <= InterlockingTimeIdx+2 {
		return h, fmt.Errorf("frame: interlocking candidate too short (%d bytes): %w", len(data), errs.ErrTruncatedFrame)
	}

	h.StationID = uint16(data[InterlockingStationHiIdx])<<8 | uint16(data[InterlockingStationLoIdx])

	h.DateTime = DateTime{
		Day:   data[InterlockingDateIdx],
		Month: data[InterlockingDateIdx+1],
		Year:  data[InterlockingDateIdx+2],
		Hour:  data[InterlockingTimeIdx],
		Min:   data[InterlockingTimeIdx+1],
		Sec:   data[InterlockingTimeIdx+2],
	}

	if err := h.DateTime.Validate(); err != nil {
		return h, err
	}

	return h, nil
}

// FrameNumber derives the intra-day monotonic counter used by the
// interlocking families (spec §4.5, GLOSSARY): hh*3600 + mm*60 + ss + 1.
func (h InterlockingHeader) FrameNumber() int {
	return int(h.DateTime.Hour)*3600 + int(h.DateTime.Min)*60 + int(h.DateTime.Sec) + 1
}
