package frame

import (
	"testing"

	"github.com/kavachlog/decodecore/packettype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// faultScenarioAHeader builds the fixed header bytes for spec §8 scenario A
// (SOF excluded): type 0x19, length 0x000E, seq 0x0001, kavach 0x000001,
// nms 0x0002, version 0x01, date 01-02-19, time 10:11:12, subsystem
// ONBOARD (0x22), fault_count 1.
func faultScenarioAHeader() []byte {
	return []byte{
		0x19,
		0x00, 0x0E,
		0x00, 0x01,
		0x00, 0x00, 0x01,
		0x00, 0x02,
		0x01,
		0x01, 0x02, 0x13,
		0x0A, 0x0B, 0x0C,
		0x22,
		0x01,
	}
}

func TestParseFaultHeader(t *testing.T) {
	h, cursor, err := ParseFaultHeader(faultScenarioAHeader())
	require.NoError(t, err)

	assert.Equal(t, uint8(0x19), h.MessageType)
	assert.Equal(t, uint16(0x000E), h.MessageLength)
	assert.Equal(t, uint16(1), h.MessageSequence)
	assert.Equal(t, uint32(1), h.KavachID)
	assert.Equal(t, uint16(2), h.NMSSystemID)
	assert.Equal(t, packettype.SubsystemOnboard, h.SubsystemType)
	assert.Equal(t, uint8(1), h.FaultCount)
	assert.Equal(t, FaultHeaderSize, cursor.Pos())

	et := h.EventTime()
	assert.Equal(t, 2019, et.Year())
	assert.Equal(t, 10, et.Hour())
	assert.Equal(t, 11, et.Minute())
	assert.Equal(t, 12, et.Second())
}

func TestParseFaultHeader_InvalidSubsystem(t *testing.T) {
	data := faultScenarioAHeader()
	data[17] = 0x44 // not in {0x11,0x22,0x33}
	_, _, err := ParseFaultHeader(data)
	assert.Error(t, err)
}

func TestParseFaultHeader_TooManyFaults(t *testing.T) {
	data := faultScenarioAHeader()
	data[18] = 11
	_, _, err := ParseFaultHeader(data)
	assert.Error(t, err)
}
