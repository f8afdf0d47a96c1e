package scan

import (
	"log/slog"
	"time"

	"github.com/kavachlog/decodecore/decode"
	"github.com/kavachlog/decodecore/hexio"
	"github.com/kavachlog/decodecore/internal/hash"
	"github.com/kavachlog/decodecore/packettype"
)

// PageSize is the stable page size for report pagination (spec §4.5,
// §8 scenario F).
const PageSize = 5000

// DecodeFunc decodes one frame candidate (SOF included) into zero or more
// records. A fault candidate yields one record per fault item; every other
// family yields at most one.
type DecodeFunc func(candidate []byte, source packettype.DataSource, sof packettype.SOF) ([]decode.Record, error)

// Filter reports whether a decoded record should be kept downstream of
// decoding (station/loco/direction equality filters, spec §4.8 step 6).
type Filter func(decode.Record) bool

// Request parameterizes one date-range scan.
type Request struct {
	LogDir  string
	Markers []hexio.Marker
	Decode  DecodeFunc

	// FromDate/ToDate bound which files are scanned (date-only).
	FromDate, ToDate time.Time

	// TimeFiltered, when true, additionally rejects any record whose
	// event time falls outside [From, To] after NormalizeRange.
	TimeFiltered bool
	From, To     time.Time

	// Filter is an optional attribute filter applied after decode.
	Filter Filter
}

// SOFOf returns the SOF family encoded in a candidate's first two bytes,
// or "" if the candidate is too short or unrecognized.
func SOFOf(candidate []byte) packettype.SOF {
	if len(candidate) < 2 {
		return ""
	}
	switch {
	case candidate[0] == 0xAA && candidate[1] == 0xAA:
		return packettype.SOFWireline
	case candidate[0] == 0xBB && candidate[1] == 0xBB:
		return packettype.SOFGprs
	default:
		return ""
	}
}

// Run executes one date-range scan and returns every matching record, in
// (file-date ascending) × (in-file byte order) order (spec §5 ordering
// guarantees).
func Run(req Request) ([]decode.Record, error) {
	files, err := ListFiles(req.LogDir, req.FromDate, req.ToDate)
	if err != nil {
		return nil, err
	}

	var from, to time.Time
	if req.TimeFiltered {
		from, to = NormalizeRange(req.From, req.To)
	}

	var out []decode.Record
	for _, f := range files {
		seen := make(map[uint64]int)
		index := 0
		for candidate := range hexio.ReadFrames(f.Path, req.Markers) {
			id := hash.FrameID(candidate)
			dupOf, isDup := seen[id]
			if !isDup {
				seen[id] = index
			} else {
				slog.Debug("scan: duplicate frame fingerprint within file",
					slog.String("file", f.Path), slog.Uint64("frame_id", id),
					slog.Int("duplicate_of_offset", dupOf))
			}
			index++

			sof := SOFOf(candidate)
			if sof == "" {
				continue
			}

			records, err := req.Decode(candidate, packettype.DataSourceBin, sof)
			if err != nil {
				slog.Debug("scan: frame decode failed, skipping",
					slog.String("file", f.Path), slog.Any("error", err))
				continue
			}

			for _, r := range records {
				if req.TimeFiltered && !InRange(r.When(), from, to) {
					continue
				}
				if req.Filter != nil && !req.Filter(r) {
					continue
				}
				if isDup {
					r = duplicateRecord{Record: r, offset: dupOf}
				}
				out = append(out, r)
			}
		}
	}

	return out, nil
}

// duplicateRecord annotates a decoded record as sharing its frame
// fingerprint with an earlier candidate in the same file (spec §4.11),
// without requiring every decoder family to carry a mutable annotation
// field. Decoding itself is unaffected — this wraps the record Run already
// produced.
type duplicateRecord struct {
	decode.Record
	offset int
}

func (d duplicateRecord) Flatten() map[string]any {
	out := d.Record.Flatten()
	out["duplicate_of_offset"] = d.offset
	return out
}

// Page is one paginated slice of a record stream (spec §4.5 pagination,
// §6 "page≥1; size 5000").
type Page struct {
	Records    []decode.Record
	Page       int
	TotalRows  int
	TotalPages int
}

// Paginate slices all into a stable PageSize-row window. page is 1-based;
// values below 1 are treated as 1.
func Paginate(all []decode.Record, page int) Page {
	if page < 1 {
		page = 1
	}
	totalRows := len(all)
	totalPages := (totalRows + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * PageSize
	if start > totalRows {
		start = totalRows
	}
	end := start + PageSize
	if end > totalRows {
		end = totalRows
	}

	return Page{
		Records:    all[start:end],
		Page:       page,
		TotalRows:  totalRows,
		TotalPages: totalPages,
	}
}
