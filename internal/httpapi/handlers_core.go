package httpapi

import (
	"encoding/json"
	"net/http"
)

// handleHealth responds to GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": Version})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleLogin responds to POST /api/auth/login. There is no user store in
// the core — a single hard-coded credential pair (spec §6).
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "malformed JSON body")
		return
	}
	if req.Username == "admin" && req.Password == "admin123" {
		writeJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
		return
	}
	writeError(w, "invalid credentials")
}
