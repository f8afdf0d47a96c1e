package httpapi

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/kavachlog/decodecore/decode"
	"github.com/kavachlog/decodecore/hexio"
	"github.com/kavachlog/decodecore/internal/faultstore"
	"github.com/kavachlog/decodecore/packettype"
	"github.com/kavachlog/decodecore/scan"
	"github.com/kavachlog/decodecore/trackprofile"
)

// Version is reported by GET /health.
const Version = "1.0.0"

// FaultLabelStore is the narrow subset of faultstore.Store that
// Server.Labels holds, defined here so it can be faked without a
// live PostgreSQL connection (mirrors rest.Store's role in the pack's
// REST layer).
type FaultLabelStore interface {
	ListLabels(ctx context.Context, kavachID uint32) ([]faultstore.Label, error)
	UpsertLabel(ctx context.Context, l faultstore.Label) error
}

// Server holds every dependency the HTTP handlers need. Relays, Stations,
// and TrackProfile are immutable master-data tables initialized once at
// startup (spec §5). Labels is optional and may be nil; no route that
// NewRouter registers reads it.
type Server struct {
	Relays       decode.RelayTable
	Stations     decode.StationTable
	TrackProfile trackprofile.Table
	Labels       FaultLabelStore
}

// decodeUpload decodes every candidate in an in-memory upload body against
// markers/decodeFn, applying the same [from, to] truncation rule the
// date-range driver uses for on-disk scans (spec §4.8 step 5), so the two
// entry points agree on filtering semantics even though one reads a file
// and the other an HTTP body.
func decodeUpload(body []byte, markers []hexio.Marker, decodeFn scan.DecodeFunc, from, to time.Time) []decode.Record {
	from, to = scan.NormalizeRange(from, to)

	var out []decode.Record
	for candidate := range hexio.ReadFramesBytes(body, markers) {
		sof := scan.SOFOf(candidate)
		if sof == "" {
			continue
		}
		records, err := decodeFn(candidate, packettype.DataSourceUpload, sof)
		if err != nil {
			continue
		}
		for _, r := range records {
			if scan.InRange(r.When(), from, to) {
				out = append(out, r)
			}
		}
	}
	return out
}

func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}
