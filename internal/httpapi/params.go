package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// parseTimeRange parses the required "from"/"to" RFC3339 query parameters
// shared by every date-range endpoint (spec §6).
func parseTimeRange(r *http.Request) (from, to time.Time, err error) {
	q := r.URL.Query()
	fromStr, toStr := q.Get("from"), q.Get("to")
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("query parameters 'from' and 'to' are required (RFC3339)")
	}
	from, err = time.Parse(time.RFC3339, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("'from' must be a valid RFC3339 timestamp")
	}
	to, err = time.Parse(time.RFC3339, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("'to' must be a valid RFC3339 timestamp")
	}
	return from, to, nil
}

// parsePage parses the 1-based "page" query parameter, defaulting to 1.
func parsePage(r *http.Request) int {
	p, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || p < 1 {
		return 1
	}
	return p
}
