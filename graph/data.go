package graph

import (
	"fmt"
	"time"

	"github.com/kavachlog/decodecore/decode"
	"github.com/kavachlog/decodecore/errs"
	"github.com/kavachlog/decodecore/hexio"
	"github.com/kavachlog/decodecore/scan"
)

// Type selects one of the four (x,y) projections graph extraction
// supports (spec §4.9): {Location, Time} × {Speed, Mode}.
type Type string

const (
	TypeLocationSpeed Type = "location_speed"
	TypeLocationMode  Type = "location_mode"
	TypeTimeSpeed     Type = "time_speed"
	TypeTimeMode      Type = "time_mode"
)

// Point is one (x,y) sample of a graph series.
type Point struct {
	X uint32
	Y uint32
}

// ExtractData scans [from, to] for 0x12-Regular packets matching locoID
// (0 = unfiltered) and direction (empty = unfiltered), and projects the
// requested graph Type.
func ExtractData(logDir string, locoID uint32, from, to time.Time, direction string, graphType Type) ([]Point, error) {
	req := scan.Request{
		LogDir:       logDir,
		Markers:      hexio.MarkersPosition,
		Decode:       scan.PositionDecodeFunc(),
		FromDate:     from,
		ToDate:       to,
		TimeFiltered: true,
		From:         from,
		To:           to,
		Filter: func(r decode.Record) bool {
			reg, ok := r.(decode.PositionRegularRecord)
			if !ok {
				return false
			}
			if locoID != 0 && reg.SourceLocoID != locoID {
				return false
			}
			if direction != "" && reg.MovementDir.String() != direction {
				return false
			}
			return true
		},
	}

	records, err := scan.Run(req)
	if err != nil {
		return nil, err
	}

	points := make([]Point, 0, len(records))
	for _, r := range records {
		reg := r.(decode.PositionRegularRecord)
		p, err := project(reg, graphType)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

func project(r decode.PositionRegularRecord, graphType Type) (Point, error) {
	switch graphType {
	case TypeLocationSpeed:
		return Point{X: r.AbsoluteLocoLocation, Y: r.TrainSpeed}, nil
	case TypeLocationMode:
		return Point{X: r.AbsoluteLocoLocation, Y: uint32(r.LocoMode)}, nil
	case TypeTimeSpeed:
		return Point{X: r.FrameNumber, Y: r.TrainSpeed}, nil
	case TypeTimeMode:
		return Point{X: r.FrameNumber, Y: uint32(r.LocoMode)}, nil
	default:
		return Point{}, fmt.Errorf("graph: unknown graph type %q: %w", graphType, errs.ErrInvalidFieldValue)
	}
}
