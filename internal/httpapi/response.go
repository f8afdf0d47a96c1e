package httpapi

import (
	"encoding/json"
	"net/http"
)

// writeJSON writes {"success": true, "data": data} with status code.
func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

// writeError writes {"success": false, "error": msg}. Per-request failures
// (bad query params, unknown station, decode errors surfaced to the
// caller) are always reported as HTTP 200 — the transport layer does not
// map application errors to status codes (spec §7) — so callers should
// not pass a status code here.
func writeError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}
