package decode

import (
	"fmt"

	"github.com/kavachlog/decodecore/bitio"
	"github.com/kavachlog/decodecore/errs"
	"github.com/kavachlog/decodecore/frame"
	"github.com/kavachlog/decodecore/packettype"
)

// PositionDecoder decodes a 0x12 loco position/movement frame (spec §4.3).
//
// It is not reusable: after Decode returns, a new decoder must be created
// for the next frame.
type PositionDecoder struct {
	data   []byte
	header frame.PositionHeader
	body   *bitio.ByteCursor
}

// NewPositionDecoder parses the header of a 0x12 candidate (SOF already
// stripped) and prepares the decoder for Decode.
func NewPositionDecoder(data []byte) (*PositionDecoder, error) {
	h, cursor, err := frame.ParsePositionHeader(data)
	if err != nil {
		return nil, err
	}
	return &PositionDecoder{data: data, header: h, body: cursor}, nil
}

// PositionRegularRecord is the decoded payload of a Regular (inner type
// 0xA) position packet.
type PositionRegularRecord struct {
	Meta

	FrameNumber          uint32
	SourceLocoID         uint32
	SourceLocoVersion    uint8
	AbsoluteLocoLocation uint32
	LDoubtOver           uint32
	LDoubtUnder          uint32
	TrainIntegrity       uint8
	TrainLength          uint32
	TrainSpeed           uint32
	MovementDir          packettype.Direction
	EmergencyStatus      uint8
	LocoMode             uint8
	LastRFIDTag          uint32
	TagDup               uint8
	TagLinkInfo          uint8
	TIN                  uint32
	BrakeApplied         uint8
	NewMAReply           uint8
	LastRefProfileNum    uint8
	SignalOverride       uint8
	InfoAck              uint8
	OnboardHealth        uint32
	NoOfMASections       uint8
	RouteID              uint32
}

func (r PositionRegularRecord) Flatten() map[string]any {
	out := map[string]any{
		"frame_number":           r.FrameNumber,
		"source_loco_id":         r.SourceLocoID,
		"source_loco_version":    r.SourceLocoVersion,
		"absolute_loco_location": r.AbsoluteLocoLocation,
		"train_integrity":        r.TrainIntegrity,
		"train_length":           r.TrainLength,
		"train_speed":            r.TrainSpeed,
		"movement_dir":           r.MovementDir.String(),
		"emergency_status":       r.EmergencyStatus,
		"loco_mode":              r.LocoMode,
		"last_rfid_tag":          r.LastRFIDTag,
		"tag_dup":                r.TagDup,
		"tag_link_info":          r.TagLinkInfo,
		"tin":                    r.TIN,
		"brake_applied":          r.BrakeApplied,
		"new_ma_reply":           r.NewMAReply,
		"last_ref_profile_num":   r.LastRefProfileNum,
		"signal_override":        r.SignalOverride,
		"info_ack":               r.InfoAck,
		"onboard_health":         r.OnboardHealth,
		"no_of_ma_sections":      r.NoOfMASections,
		"route_id":               r.RouteID,
	}
	r.Meta.flattenInto(out)
	return out
}

// PositionAccessRequestRecord is the decoded payload of an Access-Request
// (inner type 0xD) position packet.
type PositionAccessRequestRecord struct {
	Meta

	FrameNumber          uint32
	SourceLocoID         uint32
	SourceLocoVersion    uint8
	AbsoluteLocoLocation uint32
	TrainLength          uint32
	TrainSpeed           uint32
	MovementDir          packettype.Direction
	EmergencyStatus      uint8
	LocoMode             uint8
	ApproachingStationID uint32
	LastRFIDTag          uint32
	TIN                  uint32
	Longitude            uint32
	Latitude             uint32
	LocoRndNumRL         uint8
	NoOfMASections       uint8
	RouteID              uint32
}

func (r PositionAccessRequestRecord) Flatten() map[string]any {
	out := map[string]any{
		"frame_number":           r.FrameNumber,
		"source_loco_id":         r.SourceLocoID,
		"source_loco_version":    r.SourceLocoVersion,
		"absolute_loco_location": r.AbsoluteLocoLocation,
		"train_length":           r.TrainLength,
		"train_speed":            r.TrainSpeed,
		"movement_dir":           r.MovementDir.String(),
		"emergency_status":       r.EmergencyStatus,
		"loco_mode":              r.LocoMode,
		"approaching_station_id": r.ApproachingStationID,
		"last_rfid_tag":          r.LastRFIDTag,
		"tin":                    r.TIN,
		"longitude":              r.Longitude,
		"latitude":               r.Latitude,
		"loco_rnd_num_rl":        r.LocoRndNumRL,
		"no_of_ma_sections":      r.NoOfMASections,
		"route_id":               r.RouteID,
	}
	r.Meta.flattenInto(out)
	return out
}

// LocoIDRejected reports whether a decoded loco id is one of the graph
// sentinel values that must be treated as invalid (spec §4.9).
func LocoIDRejected(id uint32) bool {
	return id == 0 || id == 0xFFFFF
}

// Decode reads the position body and returns a PositionRegularRecord or
// PositionAccessRequestRecord depending on the inner packet type.
func (d *PositionDecoder) Decode(source packettype.DataSource, sof packettype.SOF) (Record, error) {
	// Skip the 2-byte SOF-TX marker, then start the bit cursor at the
	// inner type byte (spec §4.3: "bit-packed starting at the
	// type/length byte position").
	if err := d.body.Skip(2); err != nil {
		return nil, err
	}

	bc := bitio.NewBitCursor(d.data[d.body.Pos():])

	pktType, err := bc.Bits(4)
	if err != nil {
		return nil, err
	}

	meta := Meta{
		EventTime:  d.header.EventTime(),
		DataSource: source,
		SOF:        sof,
		PacketType: packettype.MessagePositionInfo,
	}

	noOfMASections, routeID, err := positionTrailingFields(d.data, d.header.MessageLength)
	if err != nil {
		return nil, err
	}

	switch packettype.InnerPacketType(pktType) {
	case packettype.InnerPositionRegular:
		rec, err := d.decodeRegular(bc, meta)
		if err != nil {
			return nil, err
		}
		r := rec.(PositionRegularRecord)
		r.NoOfMASections = noOfMASections
		r.RouteID = routeID
		return r, nil
	case packettype.InnerPositionAccessRequest:
		rec, err := d.decodeAccessRequest(bc, meta)
		if err != nil {
			return nil, err
		}
		r := rec.(PositionAccessRequestRecord)
		r.NoOfMASections = noOfMASections
		r.RouteID = routeID
		return r, nil
	default:
		return nil, fmt.Errorf("decode: position inner type 0x%X not in {0xA,0xD}: %w", pktType, errs.ErrInvalidFieldValue)
	}
}

// positionTrailingFields reads the no_of_ma_sections (1B) and route_id (2B)
// fields common to both Regular and Access-Request position bodies, found
// at offset message_length-7 (spec §4.3; original_source/lvk_pos_info_parser.cpp
// reads these into top-level packet fields at the same offset).
func positionTrailingFields(data []byte, length uint16) (uint8, uint32, error) {
	if length < 7 {
		return 0, 0, fmt.Errorf("decode: position message_length %d too short for trailing fields: %w", length, errs.ErrTruncatedFrame)
	}
	idx := int(length) - 7
	if idx < 0 || idx > len(data) {
		return 0, 0, fmt.Errorf("decode: position trailing-field offset %d out of range (have %d bytes): %w", idx, len(data), errs.ErrTruncatedFrame)
	}

	c := bitio.NewByteCursor(data[idx:])
	noOfMASections, err := c.U8()
	if err != nil {
		return 0, 0, err
	}
	routeID, err := c.U16()
	if err != nil {
		return 0, 0, err
	}
	return noOfMASections, uint32(routeID), nil
}

func (d *PositionDecoder) decodeRegular(bc *bitio.BitCursor, meta Meta) (Record, error) {
	var r PositionRegularRecord
	r.Meta = meta

	if _, err := bc.Bits(7); err != nil { // pkt_length
		return nil, err
	}

	frameNumber, err := bc.Bits(17)
	if err != nil {
		return nil, err
	}
	r.FrameNumber = frameNumber

	locoID, err := bc.Bits(20)
	if err != nil {
		return nil, err
	}
	r.SourceLocoID = locoID
	if LocoIDRejected(locoID) {
		return nil, fmt.Errorf("decode: source_loco_id %d is a sentinel: %w", locoID, errs.ErrInvalidFieldValue)
	}

	ver, err := bc.Bits(3)
	if err != nil {
		return nil, err
	}
	r.SourceLocoVersion = uint8(ver)

	loc, err := bc.Bits(23)
	if err != nil {
		return nil, err
	}
	r.AbsoluteLocoLocation = loc

	over, err := bc.Bits(9)
	if err != nil {
		return nil, err
	}
	r.LDoubtOver = over

	under, err := bc.Bits(9)
	if err != nil {
		return nil, err
	}
	r.LDoubtUnder = under

	integrity, err := bc.Bits(2)
	if err != nil {
		return nil, err
	}
	r.TrainIntegrity = uint8(integrity)

	length, err := bc.Bits(11)
	if err != nil {
		return nil, err
	}
	r.TrainLength = length

	speed, err := bc.Bits(9)
	if err != nil {
		return nil, err
	}
	r.TrainSpeed = speed

	dir, err := bc.Bits(2)
	if err != nil {
		return nil, err
	}
	r.MovementDir = packettype.Direction(dir)

	emergency, err := bc.Bits(3)
	if err != nil {
		return nil, err
	}
	r.EmergencyStatus = uint8(emergency)

	mode, err := bc.Bits(4)
	if err != nil {
		return nil, err
	}
	r.LocoMode = uint8(mode)

	rfid, err := bc.Bits(10)
	if err != nil {
		return nil, err
	}
	r.LastRFIDTag = rfid

	tagDup, err := bc.Bits(1)
	if err != nil {
		return nil, err
	}
	r.TagDup = uint8(tagDup)

	tagLinkInfo, err := bc.Bits(3)
	if err != nil {
		return nil, err
	}
	r.TagLinkInfo = uint8(tagLinkInfo)

	tin, err := bc.Bits(9)
	if err != nil {
		return nil, err
	}
	r.TIN = tin

	brake, err := bc.Bits(3)
	if err != nil {
		return nil, err
	}
	r.BrakeApplied = uint8(brake)

	newMA, err := bc.Bits(2)
	if err != nil {
		return nil, err
	}
	r.NewMAReply = uint8(newMA)

	lastRef, err := bc.Bits(4)
	if err != nil {
		return nil, err
	}
	r.LastRefProfileNum = uint8(lastRef)

	override, err := bc.Bits(1)
	if err != nil {
		return nil, err
	}
	r.SignalOverride = uint8(override)

	infoAck, err := bc.Bits(4)
	if err != nil {
		return nil, err
	}
	r.InfoAck = uint8(infoAck)

	if _, err := bc.Bits(2); err != nil { // spare
		return nil, err
	}

	health, err := bc.Bits(24)
	if err != nil {
		return nil, err
	}
	r.OnboardHealth = health

	// Remaining 64 bits (MAC + CRC) are not verified for this family.
	return r, nil
}

func (d *PositionDecoder) decodeAccessRequest(bc *bitio.BitCursor, meta Meta) (Record, error) {
	var r PositionAccessRequestRecord
	r.Meta = meta

	if _, err := bc.Bits(7); err != nil { // length
		return nil, err
	}

	frameNumber, err := bc.Bits(17)
	if err != nil {
		return nil, err
	}
	r.FrameNumber = frameNumber

	locoID, err := bc.Bits(20)
	if err != nil {
		return nil, err
	}
	r.SourceLocoID = locoID
	if LocoIDRejected(locoID) {
		return nil, fmt.Errorf("decode: source_loco_id %d is a sentinel: %w", locoID, errs.ErrInvalidFieldValue)
	}

	ver, err := bc.Bits(3)
	if err != nil {
		return nil, err
	}
	r.SourceLocoVersion = uint8(ver)

	loc, err := bc.Bits(23)
	if err != nil {
		return nil, err
	}
	r.AbsoluteLocoLocation = loc

	length, err := bc.Bits(11)
	if err != nil {
		return nil, err
	}
	r.TrainLength = length

	speed, err := bc.Bits(9)
	if err != nil {
		return nil, err
	}
	r.TrainSpeed = speed

	dir, err := bc.Bits(2)
	if err != nil {
		return nil, err
	}
	r.MovementDir = packettype.Direction(dir)

	emergency, err := bc.Bits(3)
	if err != nil {
		return nil, err
	}
	r.EmergencyStatus = uint8(emergency)

	mode, err := bc.Bits(4)
	if err != nil {
		return nil, err
	}
	r.LocoMode = uint8(mode)

	station, err := bc.Bits(16)
	if err != nil {
		return nil, err
	}
	r.ApproachingStationID = station

	rfid, err := bc.Bits(10)
	if err != nil {
		return nil, err
	}
	r.LastRFIDTag = rfid

	tin, err := bc.Bits(9)
	if err != nil {
		return nil, err
	}
	r.TIN = tin

	lon, err := bc.Bits(21)
	if err != nil {
		return nil, err
	}
	r.Longitude = lon

	lat, err := bc.Bits(20)
	if err != nil {
		return nil, err
	}
	r.Latitude = lat

	rnd, err := bc.Bits(4)
	if err != nil {
		return nil, err
	}
	r.LocoRndNumRL = uint8(rnd)

	return r, nil
}
