package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter returns a configured chi.Router for the KAVACH decode-core API
// (spec §6). The route layout mirrors the spec's representative endpoint
// list; CORS is wide-open and every route also answers OPTIONS with 204
// (handled by the cors middleware, not per-route).
//
//	GET  /health
//	POST /api/auth/login
//	POST /api/loco-movement/by-date
//	POST /api/stationary/{variant}/by-date
//	GET  /api/loco-faults/by-date
//	GET  /api/interlocking/stations
//	GET  /api/interlocking/report
//	GET  /api/graph/meta
//	GET  /api/graph/data
//	GET  /api/track-profile/stations
//	GET  /api/track-profile/meta
//	GET  /api/track-profile/report
//	GET  /api/track-profile/graph
func NewRouter(srv *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors)

	r.Get("/health", srv.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", srv.handleLogin)

		r.Post("/loco-movement/by-date", srv.handleLocoMovement)
		r.Post("/stationary/{variant}/by-date", srv.handleStationary)

		r.Get("/loco-faults/by-date", srv.handleLocoFaults)

		r.Get("/interlocking/stations", srv.handleInterlockingStations)
		r.Get("/interlocking/report", srv.handleInterlockingReport)

		r.Get("/graph/meta", srv.handleGraphMeta)
		r.Get("/graph/data", srv.handleGraphData)

		r.Get("/track-profile/stations", srv.handleTrackProfileStations)
		r.Get("/track-profile/meta", srv.handleTrackProfileMeta)
		r.Get("/track-profile/report", srv.handleTrackProfileReport)
		r.Get("/track-profile/graph", srv.handleTrackProfileGraph)
	})

	return r
}
