package decode

import (
	"testing"

	"github.com/kavachlog/decodecore/packettype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stationaryTestHeader() []byte {
	return []byte{
		0x11,             // message_type
		0x00, 0x40,       // message_length
		0x00, 0x02,       // message_sequence
		0x00, 0x00, 0x09, // stationary_kavach_id (3B)
		0x00, 0x03, // nms_system_id
		0x01,             // system_version
		0x00,             // reserved
		0x02, 0x03, 0x14, // date
		0x0B, 0x0C, 0x0D, // time
		0xE2, // active_radio
	}
}

func buildStationaryRegularFrame(tsrStatus uint32) []byte {
	w := &testBitWriter{}
	w.put(0b1001, 4) // pkt_type Regular
	w.put(5, 10)      // pkt_length
	w.put(1000, 17)   // frame_num
	w.put(42, 16)      // source_stn_id
	w.put(1, 3)        // source_version
	w.put(555, 20)     // dest_loco_id
	w.put(2, 4)        // ref_profile_id
	w.put(7, 10)       // last_ref_rfid
	w.put(100, 15)     // dist_pkt_start (positive, sign bit 0)
	w.put(1, 2)        // pkt_direction
	w.put(0, 3)        // pad

	// TSR sub-packet (sub_type 0b0111), length padded to 2 bytes (16 bits).
	w.put(0b0111, 4)
	w.put(2, 7) // sub_len_bytes
	w.put(tsrStatus, 2)
	w.put(0, 14) // padding to fill the declared 16 bits

	w.put(0, 64) // MAC+CRC, unverified

	body := w.bytes()
	marker := []byte{0xA5, 0xC3}
	return append(append(stationaryTestHeader(), marker...), body...)
}

func TestStationaryDecoder_Regular(t *testing.T) {
	data := buildStationaryRegularFrame(2) // tsr_status == 2, must decode
	dec, err := NewStationaryDecoder(data)
	require.NoError(t, err)

	rec, err := dec.Decode(packettype.DataSourceBin, packettype.SOFWireline)
	require.NoError(t, err)

	reg, ok := rec.(StationaryRegularRecord)
	require.True(t, ok)
	assert.Equal(t, uint32(1000), reg.FrameNum)
	assert.Equal(t, uint32(42), reg.SourceStnID)
	assert.Equal(t, uint32(555), reg.DestLocoID)
	assert.Equal(t, int32(100), reg.DistPktStart)
	require.Len(t, reg.SubPackets, 1)
	assert.Equal(t, "tsr", reg.SubPackets[0].Type)
}

func TestStationaryDecoder_TSRSkippedWhenStatusNotTwo(t *testing.T) {
	// spec §8 scenario C: tsr_status=01 must skip the sub-packet entirely.
	data := buildStationaryRegularFrame(1)
	dec, err := NewStationaryDecoder(data)
	require.NoError(t, err)

	rec, err := dec.Decode(packettype.DataSourceBin, packettype.SOFWireline)
	require.NoError(t, err)

	reg := rec.(StationaryRegularRecord)
	require.Len(t, reg.SubPackets, 1)
	fields := reg.SubPackets[0].Fields
	assert.Equal(t, uint32(1), fields["tsr_status"])
	_, hasEntries := fields["entries"]
	assert.False(t, hasEntries, "no entries must be emitted when tsr_status != 2")
}

func TestStationaryDecoder_UnexpectedInnerType(t *testing.T) {
	w := &testBitWriter{}
	w.put(0b0000, 4) // invalid inner type
	body := w.bytes()
	marker := []byte{0xA5, 0xC3}
	data := append(append(stationaryTestHeader(), marker...), body...)

	dec, err := NewStationaryDecoder(data)
	require.NoError(t, err)
	_, err = dec.Decode(packettype.DataSourceBin, packettype.SOFWireline)
	assert.Error(t, err)
}
