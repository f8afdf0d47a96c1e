package decode

import (
	"testing"

	"github.com/kavachlog/decodecore/packettype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthTestHeader(messageType uint8) []byte {
	return []byte{
		messageType,
		0x00, 0x00, // message_length (unused by HealthDecoder)
		0x00, 0x01, // message_sequence
		0x00, 0x09, // stationary_kavach_id (2B)
		0x00, 0x03, // nms_system_id
		0x01,             // system_version
		0x02, 0x03, 0x14, // date
		0x0B, 0x0C, 0x0D, // time
	}
}

func TestHealthDecoder_StationarySizeTable(t *testing.T) {
	data := append(healthTestHeader(0x17),
		0x02,       // event_count
		0x00, 0x01, // event_id=1 -> 1 byte payload
		0xAB,
		0x00, 0x2B, // event_id=43 -> 4 byte payload (43-44 range)
		0x00, 0x00, 0x01, 0x02,
	)

	dec, err := NewHealthDecoder(data)
	require.NoError(t, err)

	rec, err := dec.Decode(packettype.DataSourceBin, packettype.SOFWireline)
	require.NoError(t, err)

	health := rec.(HealthRecord)
	require.Len(t, health.Events, 2)
	assert.Equal(t, uint16(1), health.Events[0].EventID)
	assert.Equal(t, uint64(0xAB), health.Events[0].Data)
	assert.Equal(t, uint16(43), health.Events[1].EventID)
	assert.Equal(t, uint64(0x00000102), health.Events[1].Data)
	assert.Equal(t, packettype.MessageStationaryHealth, health.PacketType)
}

func TestHealthDecoder_OnboardSizeTable(t *testing.T) {
	data := append(healthTestHeader(0x18),
		0x01,       // event_count
		0x00, 0x30, // event_id=48 -> 4 byte payload
		0x00, 0x00, 0x00, 0x07,
	)

	dec, err := NewHealthDecoder(data)
	require.NoError(t, err)

	rec, err := dec.Decode(packettype.DataSourceBin, packettype.SOFWireline)
	require.NoError(t, err)

	health := rec.(HealthRecord)
	require.Len(t, health.Events, 1)
	assert.Equal(t, uint16(48), health.Events[0].EventID)
	assert.Equal(t, uint64(7), health.Events[0].Data)
	assert.Equal(t, packettype.MessageOnboardHealth, health.PacketType)
}

func TestHealthDecoder_StopsSilentlyOnTruncation(t *testing.T) {
	data := append(healthTestHeader(0x17),
		0x02,       // event_count claims 2 entries
		0x00, 0x01, // event_id=1 -> needs 1 more byte, but frame ends here
	)

	dec, err := NewHealthDecoder(data)
	require.NoError(t, err)

	rec, err := dec.Decode(packettype.DataSourceBin, packettype.SOFWireline)
	require.NoError(t, err)
	assert.Empty(t, rec.(HealthRecord).Events)
}
