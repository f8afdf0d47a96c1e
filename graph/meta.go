package graph

import (
	"sort"
	"time"

	"github.com/kavachlog/decodecore/decode"
	"github.com/kavachlog/decodecore/hexio"
	"github.com/kavachlog/decodecore/packettype"
	"github.com/kavachlog/decodecore/scan"
)

// Meta is the distinct-value summary returned by ComputeMeta.
type Meta struct {
	LocoIDs    []uint32
	FileDates  []time.Time
	Directions []string
}

// ComputeMeta scans [from, to] for 0x12-Regular packets and derives the
// distinct loco ids, file-dates, and directions observed.
//
// Loco ids follow an intentional asymmetric source rule (spec §4.9): only
// the first valid (non-sentinel) loco id within each file is added to the
// set, but every listed file adds its date to the file-dates set and every
// record in the file still contributes to the directions set.
func ComputeMeta(logDir string, from, to time.Time) (Meta, error) {
	files, err := scan.ListFiles(logDir, from, to)
	if err != nil {
		return Meta{}, err
	}

	decodeFn := scan.PositionDecodeFunc()
	locoSet := make(map[uint32]bool)
	dateSet := make(map[string]time.Time)
	dirSet := make(map[string]bool)

	for _, f := range files {
		dateSet[f.Date.Format("2006-01-02")] = f.Date

		fileLocoCaptured := false
		for candidate := range hexio.ReadFrames(f.Path, hexio.MarkersPosition) {
			sof := scan.SOFOf(candidate)
			if sof == "" {
				continue
			}
			records, err := decodeFn(candidate, packettype.DataSourceBin, sof)
			if err != nil {
				continue
			}
			for _, r := range records {
				reg, ok := r.(decode.PositionRegularRecord)
				if !ok {
					continue
				}
				dirSet[reg.MovementDir.String()] = true
				if !fileLocoCaptured {
					locoSet[reg.SourceLocoID] = true
					fileLocoCaptured = true
				}
			}
		}
	}

	return Meta{
		LocoIDs:    sortedUint32Keys(locoSet),
		FileDates:  sortedDateValues(dateSet),
		Directions: sortedStringKeys(dirSet),
	}, nil
}

func sortedUint32Keys(m map[uint32]bool) []uint32 {
	out := make([]uint32, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedStringKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedDateValues(m map[string]time.Time) []time.Time {
	out := make([]time.Time, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
