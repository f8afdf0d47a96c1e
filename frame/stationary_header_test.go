package frame

import (
	"testing"

	"github.com/kavachlog/decodecore/packettype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stationaryHeaderBytes() []byte {
	return []byte{
		0x11,             // message_type
		0x00, 0x40,       // message_length
		0x00, 0x02,       // message_sequence
		0x00, 0x00, 0x09, // stationary_kavach_id (3B)
		0x00, 0x03, // nms_system_id
		0x01, // system_version
		0x00, // reserved
		0x02, 0x03, 0x14, // date 02-03-20
		0x0B, 0x0C, 0x0D, // time 11:12:13
		0xE2, // active_radio ETHERNET_2
	}
}

func TestParseStationaryHeader(t *testing.T) {
	h, cursor, err := ParseStationaryHeader(stationaryHeaderBytes())
	require.NoError(t, err)

	assert.Equal(t, uint32(9), h.KavachID)
	assert.Equal(t, uint16(3), h.NMSSystemID)
	assert.Equal(t, packettype.ActiveRadioEthernet2, h.ActiveRadio)
	assert.Equal(t, StationaryHeaderSize, cursor.Pos())

	et := h.EventTime()
	assert.Equal(t, 2020, et.Year())
	assert.Equal(t, 3, int(et.Month()))
}
