package decode

import (
	"fmt"

	"github.com/kavachlog/decodecore/bitio"
	"github.com/kavachlog/decodecore/errs"
	"github.com/kavachlog/decodecore/frame"
	"github.com/kavachlog/decodecore/packettype"
)

// StationaryDecoder decodes a 0x11 stationary-KAVACH radio frame (spec
// §4.4): Regular, Access, or Emergency, selected by the 4-bit pkt_type
// found after the frame's A5C3 payload marker.
type StationaryDecoder struct {
	data   []byte
	header frame.StationaryHeader
	body   *bitio.ByteCursor
}

// NewStationaryDecoder parses the fixed 19-byte header of a 0x11 candidate
// (SOF already stripped).
func NewStationaryDecoder(data []byte) (*StationaryDecoder, error) {
	h, cursor, err := frame.ParseStationaryHeader(data)
	if err != nil {
		return nil, err
	}
	return &StationaryDecoder{data: data, header: h, body: cursor}, nil
}

// a5c3 is the payload wrapper marker that precedes the bit-packed
// sub-packet list in a stationary frame (spec §4.4).
var a5c3 = [2]byte{0xA5, 0xC3}

// findA5C3 locates the A5C3 marker starting at or after the current byte
// cursor position and returns the byte offset just past it.
func (d *StationaryDecoder) findA5C3() (int, error) {
	start := d.body.Pos()
	for i := start; i+1 < len(d.data); i++ {
		if d.data[i] == a5c3[0] && d.data[i+1] == a5c3[1] {
			return i + 2, nil
		}
	}
	return 0, fmt.Errorf("decode: A5C3 marker not found: %w", errs.ErrInvalidMarker)
}

// SubPacket is a decoded stationary sub-packet (spec §4.4). Fields vary by
// Type, so it carries a flattened map rather than a dedicated struct per
// sub-type — these never surface directly at the HTTP boundary on their
// own, only nested under a StationaryRegularRecord.
type SubPacket struct {
	Type   string
	Fields map[string]any
}

// StationaryRegularRecord is the decoded payload of a Regular (pkt_type
// 0b1001) stationary frame.
type StationaryRegularRecord struct {
	Meta

	FrameNum        uint32
	SourceStnID     uint32
	SourceVersion   uint8
	DestLocoID      uint32
	RefProfileID    uint8
	LastRefRFID     uint32
	DistPktStart    int32
	PktDirection    uint8
	SubPackets      []SubPacket
}

func (r StationaryRegularRecord) Flatten() map[string]any {
	subs := make([]map[string]any, len(r.SubPackets))
	for i, s := range r.SubPackets {
		m := map[string]any{"type": s.Type}
		for k, v := range s.Fields {
			m[k] = v
		}
		subs[i] = m
	}
	out := map[string]any{
		"frame_num":         r.FrameNum,
		"source_stn_id":     r.SourceStnID,
		"source_version":    r.SourceVersion,
		"dest_loco_id":      r.DestLocoID,
		"ref_profile_id":    r.RefProfileID,
		"last_ref_rfid":     r.LastRefRFID,
		"dist_pkt_start":    r.DistPktStart,
		"pkt_direction":     r.PktDirection,
		"sub_packets":       subs,
	}
	r.Meta.flattenInto(out)
	return out
}

// StationaryAccessRecord is the decoded payload of an Access (pkt_type
// 0b1011) stationary frame (spec §4.4). decodeAccess reads, in order,
// pkt_length (7 bits, discarded), frame_num (17), source_stn_id (16),
// source_version (3), uplink_freq (12), downlink_freq (12), tdma (7),
// rnd_rs (16) and stn_tdma (7); the trailing MAC/CRC bits are not read.
type StationaryAccessRecord struct {
	Meta

	FrameNum      uint32
	SourceStnID   uint32
	SourceVersion uint8
	UplinkFreq    uint32
	DownlinkFreq  uint32
	TDMA          uint32
	RndRS         uint32
	StnTDMA       uint32
}

func (r StationaryAccessRecord) Flatten() map[string]any {
	out := map[string]any{
		"frame_num":      r.FrameNum,
		"source_stn_id":  r.SourceStnID,
		"source_version": r.SourceVersion,
		"uplink_freq":    r.UplinkFreq,
		"downlink_freq":  r.DownlinkFreq,
		"tdma":           r.TDMA,
		"rnd_rs":         r.RndRS,
		"stn_tdma":       r.StnTDMA,
	}
	r.Meta.flattenInto(out)
	return out
}

// StationaryEmergencyRecord is the decoded payload of an Emergency
// (pkt_type 0b1100) stationary frame.
type StationaryEmergencyRecord struct {
	Meta

	FrameNum    uint32
	SourceStnID uint32
	SourceVer   uint8
	StnLoc      uint32
	GenSosCall  uint8
}

func (r StationaryEmergencyRecord) Flatten() map[string]any {
	out := map[string]any{
		"frame_num":     r.FrameNum,
		"source_stn_id": r.SourceStnID,
		"source_ver":    r.SourceVer,
		"stn_loc":       r.StnLoc,
		"gen_sos_call":  r.GenSosCall,
	}
	r.Meta.flattenInto(out)
	return out
}

// Decode reads the stationary payload after the A5C3 marker and dispatches
// to the Regular, Access, or Emergency variant.
func (d *StationaryDecoder) Decode(source packettype.DataSource, sof packettype.SOF) (Record, error) {
	payloadOffset, err := d.findA5C3()
	if err != nil {
		return nil, err
	}

	bc := bitio.NewBitCursor(d.data[payloadOffset:])

	pktType, err := bc.Bits(4)
	if err != nil {
		return nil, err
	}

	meta := Meta{
		EventTime:  d.header.EventTime(),
		DataSource: source,
		SOF:        sof,
		PacketType: packettype.MessageStationaryKavachRadio,
	}

	switch packettype.InnerPacketType(pktType) {
	case packettype.InnerStationaryRegular:
		return d.decodeRegular(bc, meta)
	case packettype.InnerStationaryAccess:
		return d.decodeAccess(bc, meta)
	case packettype.InnerStationaryEmergency:
		return d.decodeEmergency(bc, meta)
	default:
		return nil, fmt.Errorf("decode: stationary inner type 0b%04b not in {0b1001,0b1011,0b1100}: %w", pktType, errs.ErrInvalidFieldValue)
	}
}

func (d *StationaryDecoder) decodeRegular(bc *bitio.BitCursor, meta Meta) (Record, error) {
	var r StationaryRegularRecord
	r.Meta = meta

	if _, err := bc.Bits(10); err != nil { // pkt_length
		return nil, err
	}
	frameNum, err := bc.Bits(17)
	if err != nil {
		return nil, err
	}
	r.FrameNum = frameNum

	stnID, err := bc.Bits(16)
	if err != nil {
		return nil, err
	}
	r.SourceStnID = stnID

	ver, err := bc.Bits(3)
	if err != nil {
		return nil, err
	}
	r.SourceVersion = uint8(ver)

	destLoco, err := bc.Bits(20)
	if err != nil {
		return nil, err
	}
	r.DestLocoID = destLoco

	refProfile, err := bc.Bits(4)
	if err != nil {
		return nil, err
	}
	r.RefProfileID = uint8(refProfile)

	lastRFID, err := bc.Bits(10)
	if err != nil {
		return nil, err
	}
	r.LastRefRFID = lastRFID

	distStart, err := bc.SignedBits(15)
	if err != nil {
		return nil, err
	}
	r.DistPktStart = distStart

	direction, err := bc.Bits(2)
	if err != nil {
		return nil, err
	}
	r.PktDirection = uint8(direction)

	if err := bc.Skip(3); err != nil { // pad
		return nil, err
	}

	// Sub-packets run until only the 64 trailing bits (MAC+CRC) remain,
	// plus any padding too short to hold another 11-bit sub-packet header.
	for bc.Remaining() >= 64+11 {
		subType, err := bc.Bits(4)
		if err != nil {
			break
		}
		subLenBytes, err := bc.Bits(7)
		if err != nil {
			break
		}
		subStart := bc.Pos()
		subBits := int(subLenBytes) * 8

		name, fields := decodeSubPacket(subType, bc)
		r.SubPackets = append(r.SubPackets, SubPacket{Type: name, Fields: fields})

		// Sub-packet resync: the declared length is authoritative,
		// never the decoder's own cursor position (spec §4.4, §9).
		bc.Seek(subStart + subBits)
	}

	return r, nil
}

func (d *StationaryDecoder) decodeAccess(bc *bitio.BitCursor, meta Meta) (Record, error) {
	var r StationaryAccessRecord
	r.Meta = meta

	if _, err := bc.Bits(7); err != nil { // pkt_length
		return nil, err
	}
	frameNum, err := bc.Bits(17)
	if err != nil {
		return nil, err
	}
	r.FrameNum = frameNum

	stnID, err := bc.Bits(16)
	if err != nil {
		return nil, err
	}
	r.SourceStnID = stnID

	ver, err := bc.Bits(3)
	if err != nil {
		return nil, err
	}
	r.SourceVersion = uint8(ver)

	uplink, err := bc.Bits(12)
	if err != nil {
		return nil, err
	}
	r.UplinkFreq = uplink

	downlink, err := bc.Bits(12)
	if err != nil {
		return nil, err
	}
	r.DownlinkFreq = downlink

	tdma, err := bc.Bits(7)
	if err != nil {
		return nil, err
	}
	r.TDMA = tdma

	rndRS, err := bc.Bits(16)
	if err != nil {
		return nil, err
	}
	r.RndRS = rndRS

	stnTDMA, err := bc.Bits(7)
	if err != nil {
		return nil, err
	}
	r.StnTDMA = stnTDMA

	// mac:32, crc:32 follow but are not verified for this family.
	return r, nil
}

func (d *StationaryDecoder) decodeEmergency(bc *bitio.BitCursor, meta Meta) (Record, error) {
	var r StationaryEmergencyRecord
	r.Meta = meta

	if _, err := bc.Bits(7); err != nil { // pkt_length
		return nil, err
	}
	frameNum, err := bc.Bits(17)
	if err != nil {
		return nil, err
	}
	r.FrameNum = frameNum

	stnID, err := bc.Bits(16)
	if err != nil {
		return nil, err
	}
	r.SourceStnID = stnID

	ver, err := bc.Bits(3)
	if err != nil {
		return nil, err
	}
	r.SourceVer = uint8(ver)

	stnLoc, err := bc.Bits(23)
	if err != nil {
		return nil, err
	}
	r.StnLoc = stnLoc

	sos, err := bc.Bits(1)
	if err != nil {
		return nil, err
	}
	r.GenSosCall = uint8(sos)

	if _, err := bc.Bits(1); err != nil { // pad
		return nil, err
	}

	// crc:32 follows but is not verified for this family.
	return r, nil
}
