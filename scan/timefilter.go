package scan

import "time"

// NormalizeRange applies the per-record time-filter truncation rule (spec
// §4.8 step 5): from is truncated to :mm:00, to is truncated to :mm:59, so
// a request like from=10:15, to=10:45 covers the full minutes 10:15..10:45.
func NormalizeRange(from, to time.Time) (time.Time, time.Time) {
	from = time.Date(from.Year(), from.Month(), from.Day(), from.Hour(), from.Minute(), 0, 0, from.Location())
	to = time.Date(to.Year(), to.Month(), to.Day(), to.Hour(), to.Minute(), 59, 0, to.Location())
	return from, to
}

// InRange reports whether t falls within [from, to] inclusive, at second
// precision (spec §8 testable property 5).
func InRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
