package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/kavachlog/decodecore/decode"
	"github.com/kavachlog/decodecore/graph"
	"github.com/kavachlog/decodecore/hexio"
	"github.com/kavachlog/decodecore/scan"
)

// handleLocoFaults responds to GET /api/loco-faults/by-date?from&to&logDir.
func (s *Server) handleLocoFaults(w http.ResponseWriter, r *http.Request) {
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

	records, err := scan.Run(scan.Request{
		LogDir:   logDir,
		Markers:  hexio.MarkersFault,
		Decode:   scan.FaultDecodeFunc(),
		FromDate: from,
		ToDate:   to,
	})
	if err != nil {
		writeError(w, "failed to scan fault log")
		return
	}
	writeJSON(w, http.StatusOK, flattenAll(records))
}

// interlockingRecords runs a date-range scan of 0x15/0x16 candidates
// against s.Relays.
func (s *Server) interlockingRecords(logDir string, from, to time.Time) ([]decode.Record, error) {
	return scan.Run(scan.Request{
		LogDir:   logDir,
		Markers:  hexio.MarkersInterlocking,
		Decode:   scan.InterlockingDecodeFunc(s.Relays),
		FromDate: from,
		ToDate:   to,
	})
}

// handleInterlockingStations responds to
// GET /api/interlocking/stations?from&to&logDir: the distinct stations
// observed in range, resolved against the station master table.
func (s *Server) handleInterlockingStations(w http.ResponseWriter, r *http.Request) {
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

	records, err := s.interlockingRecords(logDir, from, to)
	if err != nil {
		writeError(w, "failed to scan interlocking log")
		return
	}

	seen := make(map[uint16]bool)
	var out []decode.Station
	for _, rec := range records {
		id := stationIDOf(rec)
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		if s.Stations != nil {
			if st, ok := s.Stations.ByID(uint32(id)); ok {
				out = append(out, st)
				continue
			}
		}
		out = append(out, decode.Station{ID: uint32(id)})
	}
	writeJSON(w, http.StatusOK, out)
}

func stationIDOf(r decode.Record) uint16 {
	switch rec := r.(type) {
	case decode.InterlockingPeriodicRecord:
		return rec.StationID
	case decode.InterlockingEventRecord:
		return rec.StationID
	default:
		return 0
	}
}

// handleInterlockingReport responds to
// GET /api/interlocking/report?from&to&logDir&station&page.
func (s *Server) handleInterlockingReport(w http.ResponseWriter, r *http.Request) {
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

	req := scan.Request{
		LogDir:       logDir,
		Markers:      hexio.MarkersInterlocking,
		Decode:       scan.InterlockingDecodeFunc(s.Relays),
		FromDate:     from,
		ToDate:       to,
		TimeFiltered: true,
		From:         from,
		To:           to,
	}
	if stationStr := r.URL.Query().Get("station"); stationStr != "" {
		stationID, err := strconv.ParseUint(stationStr, 10, 16)
		if err != nil {
			writeError(w, "'station' must be an integer station id")
			return
		}
		req.Filter = func(rec decode.Record) bool {
			return stationIDOf(rec) == uint16(stationID)
		}
	}

	records, err := scan.Run(req)
	if err != nil {
		writeError(w, "failed to scan interlocking log")
		return
	}

	page := scan.Paginate(records, parsePage(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"records":     flattenAll(page.Records),
		"page":        page.Page,
		"total_rows":  page.TotalRows,
		"total_pages": page.TotalPages,
	})
}

// handleGraphMeta responds to GET /api/graph/meta?from&to&logDir.
func (s *Server) handleGraphMeta(w http.ResponseWriter, r *http.Request) {
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

	meta, err := graph.ComputeMeta(logDir, from, to)
	if err != nil {
		writeError(w, "failed to scan position log")
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

// handleGraphData responds to
// GET /api/graph/data?locoId&from&to&direction&graphType&logDir.
func (s *Server) handleGraphData(w http.ResponseWriter, r *http.Request) {
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

	q := r.URL.Query()
	var locoID uint64
	if v := q.Get("locoId"); v != "" {
		locoID, err = strconv.ParseUint(v, 10, 32)
		if err != nil {
			writeError(w, "'locoId' must be an integer")
			return
		}
	}
	graphType := graph.Type(q.Get("graphType"))
	direction := q.Get("direction")

	points, err := graph.ExtractData(logDir, uint32(locoID), from, to, direction, graphType)
	if err != nil {
		writeError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, points)
}
