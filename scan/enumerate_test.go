package scan

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestListFiles_DateRangeScenarioE reproduces spec §8 scenario E: given
// files 31-10-24, 01-11-24, 02-11-24, 03-11-24 and a range of
// 2024-11-01..2024-11-02, only the middle two are selected.
func TestListFiles_DateRangeScenarioE(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"31-10-24.bin", "01-11-24.bin", "02-11-24.bin", "03-11-24.bin"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("AAAA12"), 0o644))
	}

	from := time.Date(2024, 11, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2024, 11, 2, 0, 0, 0, 0, time.Local)

	files, err := ListFiles(dir, from, to)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "01-11-24.bin", filepath.Base(files[0].Path))
	assert.Equal(t, "02-11-24.bin", filepath.Base(files[1].Path))
}

func TestListFiles_SkipsUnparseableNames(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "garbage.bin"), []byte("x"), 0o644))

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.Local)

	files, err := ListFiles(dir, from, to)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestListFiles_MissingDirIsIoError(t *testing.T) {
	_, err := ListFiles(filepath.Join(t.TempDir(), "nope"), time.Now(), time.Now())
	assert.Error(t, err)
}
