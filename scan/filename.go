package scan

import (
	"path/filepath"
	"strings"
	"time"
)

// ParseFileDate parses a log file's basename as dd-MM-yy (spec §3, §6: year
// prefix is always 20). It returns ok=false for any name that doesn't
// parse, which the caller treats as "skip this file".
func ParseFileDate(name string) (time.Time, bool) {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	t, err := time.ParseInLocation("02-01-06", base, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	if t.Year() < 2000 { // the "06" layout maps yy 69-99 to 19yy
		t = t.AddDate(100, 0, 0)
	}
	return t, true
}

// truncateToDay zeroes the time-of-day component, for date-only range
// comparisons.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
