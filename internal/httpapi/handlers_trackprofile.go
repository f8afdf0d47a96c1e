package httpapi

import (
	"net/http"
	"strconv"

	"github.com/kavachlog/decodecore/trackprofile"
)

// parseProfileID parses the optional "profileId" query parameter,
// returning -1 (unfiltered) when absent — ref_profile_id is a 4-bit
// field and never negative, so -1 is a safe sentinel.
func parseProfileID(r *http.Request) (int, error) {
	v := r.URL.Query().Get("profileId")
	if v == "" {
		return -1, nil
	}
	id, err := strconv.Atoi(v)
	if err != nil {
		return 0, errInvalidProfileID
	}
	return id, nil
}

var errInvalidProfileID = &paramError{msg: "'profileId' must be an integer"}

type paramError struct{ msg string }

func (e *paramError) Error() string { return e.msg }

// handleTrackProfileStations responds to GET /api/track-profile/stations:
// the track-profile master table's rows, the track-profile analogue of
// the interlocking station list.
func (s *Server) handleTrackProfileStations(w http.ResponseWriter, r *http.Request) {
	entries := []trackprofile.Entry{}
	if s.TrackProfile != nil {
		entries = append(entries, s.TrackProfile.Entries()...)
	}
	writeJSON(w, http.StatusOK, entries)
}

// handleTrackProfileMeta responds to
// GET /api/track-profile/meta?from&to&logDir.
func (s *Server) handleTrackProfileMeta(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseTimeRange(r)
	if err != nil {
		writeError(w, err.Error())
		return
	}
	logDir := r.URL.Query().Get("logDir")
	if logDir == "" {
		writeError(w, "query parameter 'logDir' is required")
		return
	}

	meta, err := trackprofile.ComputeMeta(logDir, from, to)
	if err != nil {
		writeError(w, "failed to scan stationary log")
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

// handleTrackProfileReport responds to
// GET /api/track-profile/report?from&to&logDir&profileId&page.
func (s *Server) handleTrackProfileReport(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseTimeRange(r)
	if err != nil {
		writeError(w, err.Error())
		return
	}
	logDir := r.URL.Query().Get("logDir")
	if logDir == "" {
		writeError(w, "query parameter 'logDir' is required")
		return
	}
	profileID, err := parseProfileID(r)
	if err != nil {
		writeError(w, err.Error())
		return
	}

	page, err := trackprofile.Report(logDir, from, to, profileID, parsePage(r))
	if err != nil {
		writeError(w, "failed to scan stationary log")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"records":     flattenAll(page.Records),
		"page":        page.Page,
		"total_rows":  page.TotalRows,
		"total_pages": page.TotalPages,
	})
}

// handleTrackProfileGraph responds to
// GET /api/track-profile/graph?from&to&logDir&profileId&kind.
func (s *Server) handleTrackProfileGraph(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseTimeRange(r)
	if err != nil {
		writeError(w, err.Error())
		return
	}
	logDir := r.URL.Query().Get("logDir")
	if logDir == "" {
		writeError(w, "query parameter 'logDir' is required")
		return
	}
	profileID, err := parseProfileID(r)
	if err != nil {
		writeError(w, err.Error())
		return
	}
	kind := trackprofile.Kind(r.URL.Query().Get("kind"))

	points, err := trackprofile.GraphData(logDir, from, to, profileID, kind)
	if err != nil {
		writeError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, points)
}
