package frame

import (
	"testing"

	"github.com/kavachlog/decodecore/packettype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positionHeaderBytes() []byte {
	return []byte{
		0x12,       // message_type
		0x00, 0x20, // message_length
		0x00, 0x01, // message_sequence
		0x00, 0x05, // stationary_kavach_id
		0x00, 0x02, // nms_system_id
		0x01,       // system_version
		0x0F, 0x06, 0x14, // date 15-06-20
		0x08, 0x1E, 0x00, // time 08:30:00
		0xF1, // active_radio RADIO_1
	}
}

func TestParsePositionHeader(t *testing.T) {
	h, cursor, err := ParsePositionHeader(positionHeaderBytes())
	require.NoError(t, err)

	assert.Equal(t, uint16(0x0020), h.MessageLength)
	assert.Equal(t, uint32(5), h.KavachID)
	assert.Equal(t, packettype.ActiveRadioRadio1, h.ActiveRadio)
	assert.Equal(t, PositionHeaderSize, cursor.Pos())

	et := h.EventTime()
	assert.Equal(t, 2020, et.Year())
	assert.Equal(t, 8, et.Hour())
}

func TestParsePositionHeader_Truncated(t *testing.T) {
	data := positionHeaderBytes()
	_, _, err := ParsePositionHeader(data[:5])
	assert.Error(t, err)
}
