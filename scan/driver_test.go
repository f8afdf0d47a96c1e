package scan

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kavachlog/decodecore/decode"
	"github.com/kavachlog/decodecore/hexio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFaultLogFile(t *testing.T, dir, name string) {
	t.Helper()
	data, err := hex.DecodeString("aaaa19001b00010000010002010102130a0b0c22010501002a227573c5")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(hex.EncodeToString(data)), 0o644))
}

func TestRun_FaultScenarioA(t *testing.T) {
	dir := t.TempDir()
	writeFaultLogFile(t, dir, "01-02-25.bin")

	req := Request{
		LogDir:   dir,
		Markers:  hexio.MarkersFault,
		Decode:   FaultDecodeFunc(),
		FromDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local),
		ToDate:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local),
	}

	records, err := Run(req)
	require.NoError(t, err)
	require.Len(t, records, 1)

	flat := records[0].Flatten()
	assert.Equal(t, "002A", flat["fault_code"])
}

func TestRun_TimeFilterExcludesOutOfRange(t *testing.T) {
	dir := t.TempDir()
	writeFaultLogFile(t, dir, "01-02-25.bin")

	req := Request{
		LogDir:       dir,
		Markers:      hexio.MarkersFault,
		Decode:       FaultDecodeFunc(),
		FromDate:     time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local),
		ToDate:       time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local),
		TimeFiltered: true,
		From:         time.Date(2025, 2, 1, 23, 0, 0, 0, time.Local),
		To:           time.Date(2025, 2, 1, 23, 59, 0, 0, time.Local),
	}

	records, err := Run(req)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRun_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeFaultLogFile(t, dir, "01-02-25.bin")

	req := Request{
		LogDir:   dir,
		Markers:  hexio.MarkersFault,
		Decode:   FaultDecodeFunc(),
		FromDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local),
		ToDate:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local),
	}

	first, err := Run(req)
	require.NoError(t, err)
	second, err := Run(req)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Flatten(), second[i].Flatten())
	}
}

func TestPaginate_ScenarioF(t *testing.T) {
	records := make([]decode.Record, 12345)
	page := Paginate(records, 3)
	assert.Equal(t, 2345, len(page.Records))
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 12345, page.TotalRows)
}

func TestPaginate_EmptySet(t *testing.T) {
	page := Paginate(nil, 1)
	assert.Empty(t, page.Records)
	assert.Equal(t, 1, page.TotalPages)
}
