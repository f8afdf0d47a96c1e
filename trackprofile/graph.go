package trackprofile

import (
	"fmt"
	"time"

	"github.com/kavachlog/decodecore/decode"
	"github.com/kavachlog/decodecore/errs"
	"github.com/kavachlog/decodecore/hexio"
	"github.com/kavachlog/decodecore/scan"
)

// Kind selects which sub-packet family a graph series is drawn from (spec
// §4.10): Gradient projects (dist, value), StaticSpeedProfile projects
// (dist, speed).
type Kind string

const (
	KindGradient           Kind = "gradient"
	KindStaticSpeedProfile Kind = "static_speed_profile"
)

// Point is one (x,y) sample of a track-profile graph series.
type Point struct {
	Dist  uint32
	Value uint32
}

// GraphData scans [from, to] for 0x11 stationary-regular frames matching
// profileID (< 0 = unfiltered) and projects every entry of the requested
// sub-packet Kind into a (dist, value) series.
//
// Static-Speed-Profile entries whose class selects the three-band
// sp_a/sp_b/sp_c encoding (spec §4.4) rather than a single speed carry no
// single "speed" value to project; those entries are skipped.
func GraphData(logDir string, from, to time.Time, profileID int, kind Kind) ([]Point, error) {
	if kind != KindGradient && kind != KindStaticSpeedProfile {
		return nil, fmt.Errorf("trackprofile: unknown graph kind %q: %w", kind, errs.ErrInvalidFieldValue)
	}

	req := scan.Request{
		LogDir:       logDir,
		Markers:      hexio.MarkersStationary,
		Decode:       scan.StationaryDecodeFunc(),
		FromDate:     from,
		ToDate:       to,
		TimeFiltered: true,
		From:         from,
		To:           to,
		Filter: func(r decode.Record) bool {
			reg, ok := r.(decode.StationaryRegularRecord)
			if !ok {
				return false
			}
			return profileID < 0 || int(reg.RefProfileID) == profileID
		},
	}

	records, err := scan.Run(req)
	if err != nil {
		return nil, err
	}

	var points []Point
	for _, r := range records {
		reg := r.(decode.StationaryRegularRecord)
		for _, sub := range reg.SubPackets {
			if sub.Type != string(kind) {
				continue
			}
			entries, _ := sub.Fields["entries"].([]map[string]any)
			for _, e := range entries {
				p, ok := pointOf(kind, e)
				if ok {
					points = append(points, p)
				}
			}
		}
	}
	return points, nil
}

func pointOf(kind Kind, e map[string]any) (Point, bool) {
	dist, _ := e["dist"].(uint32)
	switch kind {
	case KindGradient:
		value, ok := e["value"].(uint32)
		return Point{Dist: dist, Value: value}, ok
	default:
		speed, ok := e["speed"].(uint32)
		return Point{Dist: dist, Value: speed}, ok
	}
}
