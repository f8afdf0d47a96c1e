package httpapi

import "net/http"

// cors answers every request with the wide-open CORS policy spec §6
// requires (`*` origin, GET/POST/OPTIONS, any header) and short-circuits
// OPTIONS preflight requests with 204.
//
// No example repo in the corpus imports a CORS middleware library
// directly (github.com/rs/cors appears only as a transitive dependency
// of unrelated manifests), so this is a small standard-library handler.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, *")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
