package frame

import (
	"fmt"
	"time"

	"github.com/kavachlog/decodecore/errs"
)

// DateTime is the header's (day, month, year, hh, mm, ss) field group,
// validated against spec §3's range invariants.
type DateTime struct {
	Day   uint8
	Month uint8
	Year  uint8 // two-digit, +2000
	Hour  uint8
	Min   uint8
	Sec   uint8
}

// Validate checks the date/time range invariants from spec §3.
func (d DateTime) Validate() error {
	if d.Day < 1 || d.Day > 31 || d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("frame: date %02d-%02d-%02d out of range: %w", d.Day, d.Month, d.Year, errs.ErrInvalidDateTime)
	}
	if d.Hour > 23 || d.Min > 59 || d.Sec > 59 {
		return fmt.Errorf("frame: time %02d:%02d:%02d out of range: %w", d.Hour, d.Min, d.Sec, errs.ErrInvalidDateTime)
	}
	return nil
}

// Time returns the local time.Time this date/time pair represents.
func (d DateTime) Time() time.Time {
	return time.Date(2000+int(d.Year), time.Month(d.Month), int(d.Day), int(d.Hour), int(d.Min), int(d.Sec), 0, time.Local)
}

// CommonHeader is the field set shared, in the same relative order, by the
// Position, Stationary, Fault, and Health families (spec §3). The
// Interlocking header diverges enough in layout that it is parsed directly
// rather than embedding this type.
type CommonHeader struct {
	MessageType     uint8
	MessageLength   uint16
	MessageSequence uint16
	KavachID        uint32 // stationary_kavach_id, width varies by family
	NMSSystemID     uint16
	SystemVersion   uint8
	DateTime        DateTime
}

// EventTime returns the header's timestamp as a time.Time.
func (h CommonHeader) EventTime() time.Time {
	return h.DateTime.Time()
}

// ValidateLength checks the message_length invariant: message_length must
// equal the total frame byte count minus the 2-byte SOF (spec §3).
func ValidateLength(messageLength uint16, totalFrameBytes int) error {
	if int(messageLength) != totalFrameBytes-2 {
		return fmt.Errorf("frame: message_length %d != frame bytes %d - 2: %w", messageLength, totalFrameBytes, errs.ErrInvalidMessageLength)
	}
	return nil
}
