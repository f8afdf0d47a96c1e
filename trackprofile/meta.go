package trackprofile

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
	RefProfileIDs []uint8
	FileDates     []time.Time
}

// ComputeMeta scans [from, to] for 0x11 stationary-regular frames and
// derives the distinct ref_profile_id and file-date sets observed, the
// same way graph.ComputeMeta derives loco-id/direction sets from 0x12
// frames.
func ComputeMeta(logDir string, from, to time.Time) (Meta, error) {
	files, err := scan.ListFiles(logDir, from, to)
	if err != nil {
		return Meta{}, err
	}

	decodeFn := scan.StationaryDecodeFunc()
	idSet := make(map[uint8]bool)
	dateSet := make(map[string]time.Time)

	for _, f := range files {
		dateSet[f.Date.Format("2006-01-02")] = f.Date

		for candidate := range hexio.ReadFrames(f.Path, hexio.MarkersStationary) {
			sof := scan.SOFOf(candidate)
			if sof == "" {
				continue
			}
			records, err := decodeFn(candidate, packettype.DataSourceBin, sof)
			if err != nil {
				continue
			}
			for _, r := range records {
				reg, ok := r.(decode.StationaryRegularRecord)
				if !ok {
					continue
				}
				idSet[reg.RefProfileID] = true
			}
		}
	}

	return Meta{
		RefProfileIDs: sortedUint8Keys(idSet),
		FileDates:     sortedDateValues(dateSet),
	}, nil
}

func sortedUint8Keys(m map[uint8]bool) []uint8 {
	out := make([]uint8, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
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
