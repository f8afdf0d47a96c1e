package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/kavachlog/decodecore/errs"
)

// FileEntry is one log file selected by ListFiles, with its filename-
// encoded date already parsed.
type FileEntry struct {
	Path string
	Date time.Time
}

// ListFiles enumerates *.bin files in logDir whose filename date falls
// within [fromDate, toDate] (date-only comparison), sorted ascending by
// date then name (spec §4.8 steps 1-2, §8 scenario E).
func ListFiles(logDir string, fromDate, toDate time.Time) ([]FileEntry, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return nil, fmt.Errorf("scan: read log dir %s: %w", logDir, errs.ErrIoError)
	}

	from := truncateToDay(fromDate)
	to := truncateToDay(toDate)

	var files []FileEntry
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".bin") {
			continue
		}
		d, ok := ParseFileDate(e.Name())
		if !ok {
			continue
		}
		day := truncateToDay(d)
		if day.Before(from) || day.After(to) {
			continue
		}
		files = append(files, FileEntry{Path: filepath.Join(logDir, e.Name()), Date: d})
	}

	sort.Slice(files, func(i, j int) bool {
		if !files[i].Date.Equal(files[j].Date) {
			return files[i].Date.Before(files[j].Date)
		}
		return files[i].Path < files[j].Path
	})
	return files, nil
}
