// Package decodecore decodes KAVACH train-protection log frames and
// serves date-range queries over them.
//
// A KAVACH log is a daily `dd-MM-yy.bin` file of ASCII hex text containing
// concatenated frame candidates, each opening with a two-byte
// start-of-frame marker (AAAA for the wireline path, BBBB for GPRS) and a
// one-byte message type selecting a decoder family: 0x11
// stationary-KAVACH, 0x12 position/movement, 0x15/0x16 interlocking,
// 0x17/0x18 health, 0x19 fault.
//
// # Basic usage
//
// Decoding a single frame candidate already in memory (e.g. an HTTP file
// upload) by sniffing its message type:
//
//	records, err := decodecore.DecodeFrame(candidate, packettype.DataSourceUpload, nil)
//
// Scanning a directory of daily log files for every 0x12 record in a date
// range:
//
//	records, err := decodecore.ScanPositionRange(logDir, from, to)
//
// For fine-grained control — custom filters, pagination, or a specific
// decoder family — use the scan, decode, and hexio packages directly;
// this package is a convenience layer over them.
package decodecore

import (
	"fmt"
	"time"

	"github.com/kavachlog/decodecore/decode"
	"github.com/kavachlog/decodecore/errs"
	"github.com/kavachlog/decodecore/hexio"
	"github.com/kavachlog/decodecore/packettype"
	"github.com/kavachlog/decodecore/scan"
)

// DecodeFrame decodes one frame candidate — SOF included — by sniffing its
// message type byte and dispatching to the matching decoder family. relays
// is consulted only for 0x15/0x16 candidates; pass nil for every other
// family.
func DecodeFrame(candidate []byte, source packettype.DataSource, relays decode.RelayTable) ([]decode.Record, error) {
	sof := scan.SOFOf(candidate)
	if sof == "" {
		return nil, fmt.Errorf("decodecore: candidate missing SOF marker: %w", errs.ErrInvalidMarker)
	}
	if len(candidate) < 3 {
		return nil, errs.ErrTruncatedFrame
	}

	messageType := packettype.MessageType(candidate[2])
	switch messageType {
	case packettype.MessagePositionInfo:
		return scan.PositionDecodeFunc()(candidate, source, sof)
	case packettype.MessageStationaryKavachRadio:
		return scan.StationaryDecodeFunc()(candidate, source, sof)
	case packettype.MessageStationaryHealth, packettype.MessageOnboardHealth:
		return scan.HealthDecodeFunc()(candidate, source, sof)
	case packettype.MessageFault:
		return scan.FaultDecodeFunc()(candidate, source, sof)
	case packettype.MessageInterlockingPeriodic, packettype.MessageInterlockingEvent:
		return scan.InterlockingDecodeFunc(relays)(candidate, source, sof)
	default:
		return nil, fmt.Errorf("decodecore: %w: message type 0x%02X", errs.ErrInvalidFieldValue, uint8(messageType))
	}
}

// ScanPositionRange scans logDir for every 0x12 record in [from, to]
// (date-only bounds; spec §4.8).
func ScanPositionRange(logDir string, from, to time.Time) ([]decode.Record, error) {
	return scan.Run(scan.Request{
		LogDir:   logDir,
		Markers:  hexio.MarkersPosition,
		Decode:   scan.PositionDecodeFunc(),
		FromDate: from,
		ToDate:   to,
	})
}

// ScanStationaryRange scans logDir for every 0x11 record in [from, to].
func ScanStationaryRange(logDir string, from, to time.Time) ([]decode.Record, error) {
	return scan.Run(scan.Request{
		LogDir:   logDir,
		Markers:  hexio.MarkersStationary,
		Decode:   scan.StationaryDecodeFunc(),
		FromDate: from,
		ToDate:   to,
	})
}

// ScanFaultRange scans logDir for every 0x19 fault item in [from, to].
func ScanFaultRange(logDir string, from, to time.Time) ([]decode.Record, error) {
	return scan.Run(scan.Request{
		LogDir:   logDir,
		Markers:  hexio.MarkersFault,
		Decode:   scan.FaultDecodeFunc(),
		FromDate: from,
		ToDate:   to,
	})
}

// ScanInterlockingRange scans logDir for every 0x15/0x16 record in
// [from, to] against relays.
func ScanInterlockingRange(logDir string, from, to time.Time, relays decode.RelayTable) ([]decode.Record, error) {
	return scan.Run(scan.Request{
		LogDir:   logDir,
		Markers:  hexio.MarkersInterlocking,
		Decode:   scan.InterlockingDecodeFunc(relays),
		FromDate: from,
		ToDate:   to,
	})
}
