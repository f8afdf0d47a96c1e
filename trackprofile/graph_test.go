package trackprofile

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stationaryHeaderBytes mirrors decode's own stationaryTestHeader: the
// fixed 19-byte 0x11 header (SOF already stripped), except that its date
// is 14-03-25 so the records fall inside the test query windows.
func stationaryHeaderBytes() []byte {
	return []byte{
		0x11,             // message_type
		0x00, 0x40,       // message_length
		0x00, 0x02,       // message_sequence
		0x00, 0x00, 0x09, // stationary_kavach_id (3B)
		0x00, 0x03, // nms_system_id
		0x01,             // system_version
		0x00,             // reserved
		0x0E, 0x03, 0x19, // date
		0x0B, 0x0C, 0x0D, // time
		0xE2, // active_radio
	}
}

// buildStationaryRegularFrame writes one complete candidate, SOF included,
// carrying a Gradient and a Static-Speed-Profile sub-packet.
func buildStationaryRegularFrame(refProfileID uint32) []byte {
	w := &testBitWriter{}
	w.put(0b1001, 4) // pkt_type Regular
	w.put(5, 10)     // pkt_length
	w.put(1000, 17)  // frame_num
	w.put(42, 16)    // source_stn_id
	w.put(1, 3)      // source_version
	w.put(555, 20)   // dest_loco_id
	w.put(refProfileID, 4)
	w.put(7, 10)   // last_ref_rfid
	w.put(100, 15) // dist_pkt_start
	w.put(1, 2)    // pkt_direction
	w.put(0, 3)    // pad

	// Gradient sub-packet (sub_type 0b0010), 1 entry, padded to 4 bytes.
	w.put(0b0010, 4)
	w.put(4, 7) // sub_len_bytes
	w.put(1, 5) // count
	w.put(100, 15)
	w.put(0, 1) // direction
	w.put(10, 5)
	w.put(0, 32-(5+15+1+5)) // pad to declared 32 bits

	// Static-Speed-Profile sub-packet (sub_type 0b0001), 1 class-0 entry.
	w.put(0b0001, 4)
	w.put(4, 7) // sub_len_bytes
	w.put(1, 5) // count
	w.put(200, 15)
	w.put(0, 1) // class 0 -> single speed field
	w.put(12, 6)
	w.put(0, 32-(5+15+1+6)) // pad to declared 32 bits

	// Trailing bits stand in for the unverified 64-bit MAC+CRC field, plus
	// 2 bits to byte-align the candidate; fewer than 64+11 bits remain, so
	// the sub-packet loop stops after the second sub-packet.
	w.put(0, 66)

	body := w.bytes()
	sof := []byte{0xAA, 0xAA}
	marker := []byte{0xA5, 0xC3}
	candidate := append(append(sof, stationaryHeaderBytes()...), marker...)
	return append(candidate, body...)
}

func writeStationaryLogFile(t *testing.T, dir, name string, refProfileID uint32) {
	t.Helper()
	data := buildStationaryRegularFrame(refProfileID)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(hex.EncodeToString(data)), 0o644))
}

func TestComputeMeta_DistinctProfileIDsAndDates(t *testing.T) {
	dir := t.TempDir()
	writeStationaryLogFile(t, dir, "14-03-25.bin", 2)
	writeStationaryLogFile(t, dir, "15-03-25.bin", 3)

	from := time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local)
	to := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)

	meta, err := ComputeMeta(dir, from, to)
	require.NoError(t, err)
	assert.Equal(t, []uint8{2, 3}, meta.RefProfileIDs)
	assert.Len(t, meta.FileDates, 2)
}

func TestGraphData_GradientAndStaticSpeedProfile(t *testing.T) {
	dir := t.TempDir()
	writeStationaryLogFile(t, dir, "14-03-25.bin", 2)

	from := time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local)
	to := time.Date(2025, 3, 14, 23, 59, 0, 0, time.Local)

	gradient, err := GraphData(dir, from, to, 2, KindGradient)
	require.NoError(t, err)
	require.Len(t, gradient, 1)
	assert.Equal(t, Point{Dist: 100, Value: 10}, gradient[0])

	speed, err := GraphData(dir, from, to, 2, KindStaticSpeedProfile)
	require.NoError(t, err)
	require.Len(t, speed, 1)
	assert.Equal(t, Point{Dist: 200, Value: 12}, speed[0])

	none, err := GraphData(dir, from, to, 99, KindGradient)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReport_FiltersByProfileID(t *testing.T) {
	dir := t.TempDir()
	writeStationaryLogFile(t, dir, "14-03-25.bin", 2)
	writeStationaryLogFile(t, dir, "15-03-25.bin", 3)

	from := time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local)
	to := time.Date(2025, 3, 15, 23, 59, 0, 0, time.Local)

	page, err := Report(dir, from, to, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalRows)

	page, err = Report(dir, from, to, -1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalRows)
}
