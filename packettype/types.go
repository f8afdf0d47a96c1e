// Package packettype defines the small enumerated types shared across every
// KAVACH frame decoder: the message-type byte, the SOF family, the active
// radio/ethernet path, the data source a record was decoded from, and the
// movement direction. Each follows the teacher idiom of a narrow numeric
// type plus a String() method for logging and JSON rendering.
package packettype

import "fmt"

// MessageType is the one-byte message type field that selects a decoder
// family (spec §3 "Packet types" table).
type MessageType uint8

const (
	MessagePositionInfo          MessageType = 0x12 // loco position/movement
	MessageInterlockingPeriodic  MessageType = 0x15
	MessageInterlockingEvent     MessageType = 0x16
	MessageStationaryHealth      MessageType = 0x17
	MessageOnboardHealth         MessageType = 0x18
	MessageFault                 MessageType = 0x19
	MessageStationaryKavachRadio MessageType = 0x11
)

func (m MessageType) String() string {
	switch m {
	case MessagePositionInfo:
		return "PositionInfo"
	case MessageInterlockingPeriodic:
		return "InterlockingPeriodic"
	case MessageInterlockingEvent:
		return "InterlockingEvent"
	case MessageStationaryHealth:
		return "StationaryHealth"
	case MessageOnboardHealth:
		return "OnboardHealth"
	case MessageFault:
		return "Fault"
	case MessageStationaryKavachRadio:
		return "StationaryKavachRadio"
	default:
		return fmt.Sprintf("Unknown(0x%02X)", uint8(m))
	}
}

// SOF is the two-byte start-of-frame marker identifying the transport path.
type SOF string

const (
	SOFWireline SOF = "AAAA" // E1/wireline path
	SOFGprs     SOF = "BBBB" // GPRS path
)

// DataSource records whether a record was produced from a file scanned off
// disk or from in-memory bytes handed directly to the decoder (e.g. an
// HTTP upload).
type DataSource string

const (
	DataSourceBin    DataSource = "BIN"
	DataSourceUpload DataSource = "UPLOAD"
)

// ActiveRadio is the one-byte field at the end of a stationary-KAVACH or
// position-info header identifying the active communication path.
type ActiveRadio uint8

const (
	ActiveRadioRadio1    ActiveRadio = 0xF1
	ActiveRadioRadio2    ActiveRadio = 0xF2
	ActiveRadioEthernet1 ActiveRadio = 0xE1
	ActiveRadioEthernet2 ActiveRadio = 0xE2
)

func (r ActiveRadio) String() string {
	switch r {
	case ActiveRadioRadio1:
		return "RADIO_1"
	case ActiveRadioRadio2:
		return "RADIO_2"
	case ActiveRadioEthernet1:
		return "ETHERNET_1"
	case ActiveRadioEthernet2:
		return "ETHERNET_2"
	default:
		return "UNKNOWN"
	}
}

// Direction is the loco movement direction field carried in position-info
// and stationary-regular payloads.
type Direction uint8

const (
	DirectionNominal Direction = 1
	DirectionReverse Direction = 2
)

func (d Direction) String() string {
	switch d {
	case DirectionNominal:
		return "Nominal"
	case DirectionReverse:
		return "Reverse"
	default:
		return "Unidentified"
	}
}

// KavachSubsystem is the one-byte subsystem_type field of a 0x19 fault
// frame.
type KavachSubsystem uint8

const (
	SubsystemStationary KavachSubsystem = 0x11
	SubsystemOnboard    KavachSubsystem = 0x22
	SubsystemTSRMS      KavachSubsystem = 0x33
)

func (s KavachSubsystem) String() string {
	switch s {
	case SubsystemStationary:
		return "STATIONARY"
	case SubsystemOnboard:
		return "ONBOARD"
	case SubsystemTSRMS:
		return "TSRMS"
	default:
		return "UNKNOWN"
	}
}

// FaultOrigin is the human-facing label the record assembler derives from
// KavachSubsystem for a fault record (spec §8 scenario A: "LOCO" for the
// onboard subsystem).
type FaultOrigin string

const (
	FaultOriginStationary FaultOrigin = "STATIONARY"
	FaultOriginLoco       FaultOrigin = "LOCO"
	FaultOriginTSRMS      FaultOrigin = "TSRMS"
	FaultOriginUnknown    FaultOrigin = "UNKNOWN"
)

// OriginFor maps a KavachSubsystem to its record-facing FaultOrigin label.
func OriginFor(s KavachSubsystem) FaultOrigin {
	switch s {
	case SubsystemStationary:
		return FaultOriginStationary
	case SubsystemOnboard:
		return FaultOriginLoco
	case SubsystemTSRMS:
		return FaultOriginTSRMS
	default:
		return FaultOriginUnknown
	}
}

// FaultType is the one-byte type field of each fault item within a 0x19
// frame.
type FaultType uint8

const (
	FaultTypeFault    FaultType = 1
	FaultTypeRecovery FaultType = 2
)

func (f FaultType) String() string {
	switch f {
	case FaultTypeFault:
		return "FAULT"
	case FaultTypeRecovery:
		return "RECOVERY"
	default:
		return "UNKNOWN"
	}
}

// InnerPacketType is the high nibble of the position-info body's first
// byte (0x12 family) or the stationary-KAVACH sub-payload's first bits
// (0x11 family), selecting Regular/Access/Emergency variants.
type InnerPacketType uint8

const (
	InnerPositionRegular        InnerPacketType = 0xA
	InnerPositionAccessRequest  InnerPacketType = 0xD
	InnerStationaryRegular      InnerPacketType = 0x9
	InnerStationaryAccess       InnerPacketType = 0xB
	InnerStationaryEmergency    InnerPacketType = 0xC
)
