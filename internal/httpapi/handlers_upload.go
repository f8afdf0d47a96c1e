package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kavachlog/decodecore/decode"
	"github.com/kavachlog/decodecore/hexio"
	"github.com/kavachlog/decodecore/scan"
)

// flattenAll flattens a record slice to the JSON-boundary shape, never
// returning nil so callers always see a JSON array (mirrors the pack's
// "ensure we always return a JSON array, not null" handler convention).
func flattenAll(records []decode.Record) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, r := range records {
		out = append(out, r.Flatten())
	}
	return out
}

// handleLocoMovement responds to POST /api/loco-movement/by-date?from&to
// with body=file bytes: an uploaded hex log decoded as 0x12 records.
func (s *Server) handleLocoMovement(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseTimeRange(r)
	if err != nil {
		writeError(w, err.Error())
		return
	}
	body, err := readBody(r)
	if err != nil {
		writeError(w, "failed to read request body")
		return
	}

	records := decodeUpload(body, hexio.MarkersPosition, scan.PositionDecodeFunc(), from, to)
	writeJSON(w, http.StatusOK, flattenAll(records))
}

// stationaryVariant maps the {regular|access|emergency} path segment to
// the concrete StationaryRegularRecord/StationaryAccessRecord/
// StationaryEmergencyRecord the uploaded file is filtered down to.
func stationaryVariant(variant string, r decode.Record) bool {
	switch variant {
	case "regular":
		_, ok := r.(decode.StationaryRegularRecord)
		return ok
	case "access":
		_, ok := r.(decode.StationaryAccessRecord)
		return ok
	case "emergency":
		_, ok := r.(decode.StationaryEmergencyRecord)
		return ok
	default:
		return false
	}
}

// handleStationary responds to
// POST /api/stationary/{regular|access|emergency}/by-date?from&to.
func (s *Server) handleStationary(w http.ResponseWriter, r *http.Request) {
	variant := chi.URLParam(r, "variant")
	switch variant {
	case "regular", "access", "emergency":
	default:
		writeError(w, "variant must be one of regular, access, emergency")
		return
	}

	from, to, err := parseTimeRange(r)
	if err != nil {
		writeError(w, err.Error())
		return
	}
	body, err := readBody(r)
	if err != nil {
		writeError(w, "failed to read request body")
		return
	}

	all := decodeUpload(body, hexio.MarkersStationary, scan.StationaryDecodeFunc(), from, to)
	var filtered []decode.Record
	for _, rec := range all {
		if stationaryVariant(variant, rec) {
			filtered = append(filtered, rec)
		}
	}
	writeJSON(w, http.StatusOK, flattenAll(filtered))
}
