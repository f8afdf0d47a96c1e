package decode

import (
	"testing"

	"github.com/kavachlog/decodecore/frame"
	"github.com/kavachlog/decodecore/packettype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interlockingPeriodicCandidate(bitmap []byte) []byte {
	b := make([]byte, frame.InterlockingBitmapStartIdx+len(bitmap))
	b[0], b[1] = 0xAA, 0xAA
	b[2] = 0x15
	b[frame.InterlockingStationHiIdx] = 0x00
	b[frame.InterlockingStationLoIdx] = 0x05
	b[frame.InterlockingDateIdx] = 0x01
	b[frame.InterlockingDateIdx+1] = 0x01
	b[frame.InterlockingDateIdx+2] = 0x10
	b[frame.InterlockingTimeIdx] = 0x00
	b[frame.InterlockingTimeIdx+1] = 0x00
	b[frame.InterlockingTimeIdx+2] = 0x00
	copy(b[frame.InterlockingBitmapStartIdx:], bitmap)
	return b
}

func TestInterlockingDecoder_PeriodicScenarioB(t *testing.T) {
	relays := NewStaticRelayTable([]string{"X_TPR", "Y_BPR"}, nil)
	data := interlockingPeriodicCandidate([]byte{0x01, 0x00}) // spec §8 scenario B

	dec, err := NewInterlockingDecoder(data, relays)
	require.NoError(t, err)

	rec, err := dec.DecodePeriodic(packettype.DataSourceBin, packettype.SOFWireline)
	require.NoError(t, err)

	periodic := rec.(InterlockingPeriodicRecord)
	require.Len(t, periodic.Relays, 2)
	assert.Equal(t, "X_TPR", periodic.Relays[0].Name)
	assert.Equal(t, statusPickedUp, periodic.Relays[0].Status)
	assert.Equal(t, "Y_BPR", periodic.Relays[1].Name)
	assert.Equal(t, statusDropDown, periodic.Relays[1].Status)
}

func interlockingEventCandidate(events []byte, count int) []byte {
	b := make([]byte, frame.InterlockingEventsStartIdx+len(events))
	b[0], b[1] = 0xAA, 0xAA
	b[2] = 0x16
	b[frame.InterlockingStationHiIdx] = 0x00
	b[frame.InterlockingStationLoIdx] = 0x05
	b[frame.InterlockingDateIdx] = 0x01
	b[frame.InterlockingDateIdx+1] = 0x01
	b[frame.InterlockingDateIdx+2] = 0x10
	b[frame.InterlockingEventCountIdx] = byte(count)
	copy(b[frame.InterlockingEventsStartIdx:], events)
	return b
}

func TestInterlockingDecoder_Event(t *testing.T) {
	relays := NewStaticRelayTable(nil, map[uint16]string{0x0010: "A_TPR", 0x0020: "B_QPR"})
	// relay_addr=0x0010, status=0x01 (TPR -> Drop Down)
	// relay_addr=0x0020, status=0x01 (non-TPR -> Picked Up)
	events := []byte{0x00, 0x10, 0x01, 0x00, 0x20, 0x01}
	data := interlockingEventCandidate(events, 2)

	dec, err := NewInterlockingDecoder(data, relays)
	require.NoError(t, err)

	rec, err := dec.DecodeEvent(packettype.DataSourceBin, packettype.SOFWireline)
	require.NoError(t, err)

	ev := rec.(InterlockingEventRecord)
	require.Len(t, ev.Events, 2)
	assert.Equal(t, statusDropDown, ev.Events[0].Status)
	assert.Equal(t, statusPickedUp, ev.Events[1].Status)
}

func TestInterlockingHeader_FrameNumber(t *testing.T) {
	data := interlockingPeriodicCandidate([]byte{0x00})
	data[frame.InterlockingTimeIdx] = 1
	data[frame.InterlockingTimeIdx+1] = 2
	data[frame.InterlockingTimeIdx+2] = 3

	relays := NewStaticRelayTable(nil, nil)
	dec, err := NewInterlockingDecoder(data, relays)
	require.NoError(t, err)
	rec, err := dec.DecodePeriodic(packettype.DataSourceBin, packettype.SOFWireline)
	require.NoError(t, err)
	assert.Equal(t, 1*3600+2*60+3+1, rec.(InterlockingPeriodicRecord).FrameNumber)
}
