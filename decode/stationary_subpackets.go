package decode

import (
	"fmt"

	"github.com/kavachlog/decodecore/bitio"
)

// decodeSpeedCode maps a 6-bit speed class to its human-facing value (spec
// §4.4 Movement Authority note, §8 testable property 6). Code 0 is treated
// as "Dead Stop" rather than an outright rejection — the spec's
// "rejected|Dead Stop" phrasing is ambiguous, and returning a value keeps
// the sub-packet decode (which must never abort the frame) uniform.
func decodeSpeedCode(code uint32) any {
	switch {
	case code == 0:
		return "Dead Stop"
	case code >= 1 && code <= 50:
		return int(code) * 5
	case code >= 51 && code <= 61:
		return "Reserved"
	case code == 62:
		return 8
	case code == 63:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// decodeSubPacket dispatches a stationary-regular sub-packet by its 4-bit
// type (spec §4.4). Unknown types are reported but not decoded; the
// caller's resync still restores the cursor correctly.
func decodeSubPacket(subType uint32, bc *bitio.BitCursor) (string, map[string]any) {
	switch subType {
	case 0b0000:
		return "movement_authority", decodeMovementAuthority(bc)
	case 0b0001:
		return "static_speed_profile", decodeStaticSpeedProfile(bc)
	case 0b0010:
		return "gradient", decodeGradient(bc)
	case 0b0011:
		return "lc_gate", decodeLCGate(bc)
	case 0b0100:
		return "turnout_speed", decodeTurnoutSpeed(bc)
	case 0b0101:
		return "tag_linking", decodeTagLinking(bc)
	case 0b0110:
		return "track_condition", decodeTrackCondition(bc)
	case 0b0111:
		return "tsr", decodeTSR(bc)
	default:
		return fmt.Sprintf("unknown_0x%X", subType), map[string]any{}
	}
}

func decodeMovementAuthority(bc *bitio.BitCursor) map[string]any {
	r := newFieldReader(bc)
	out := map[string]any{}

	out["frame_offset"] = r.bits(4)
	out["dest_loco_sos"] = r.bits(4)
	out["train_section_type"] = r.bits(2)

	out["signal_info_stop"] = r.bits(1)
	out["signal_info_override"] = r.bits(1)
	out["signal_info_type"] = r.bits(6)
	out["signal_info_line_name"] = r.bits(4)
	out["signal_info_line_no"] = r.bits(5)

	out["cur_aspect"] = r.bits(6)
	out["next_aspect"] = r.bits(6)
	out["appr_sig_dist"] = r.bits(15)

	authorityType := r.bits(2)
	out["authority_type"] = authorityType
	if authorityType == 0b01 {
		out["authorized_speed"] = decodeSpeedCode(r.bits(6))
	}

	out["ma_wrt_sig"] = r.bits(16)

	reqShorten := r.bits(1)
	out["req_shorten_ma"] = reqShorten
	if reqShorten == 1 {
		out["new_ma"] = r.bits(16)
	}

	trnLenInfoSts := r.bits(1)
	out["trn_len_info_sts"] = trnLenInfoSts
	if trnLenInfoSts == 1 {
		out["trn_len_info_type"] = r.bits(1)
		out["ref_frame_num_tlm"] = r.bits(17)
		out["ref_offset_int_tlm"] = r.bits(8)
	}

	nextStnComm := r.bits(1)
	out["next_stn_comm"] = nextStnComm
	if nextStnComm == 1 {
		out["appr_stn_ilc_ibs_id"] = r.bits(16)
	}

	if err := r.Err(); err != nil {
		out["truncated"] = true
	}
	return out
}

func decodeStaticSpeedProfile(bc *bitio.BitCursor) map[string]any {
	r := newFieldReader(bc)
	count := r.bits(5)
	entries := make([]map[string]any, 0, count)

	for i := uint32(0); i < count && r.Err() == nil; i++ {
		e := map[string]any{
			"dist":  r.bits(15),
			"class": r.bits(1),
		}
		if e["class"] == uint32(0) {
			e["speed"] = r.bits(6)
		} else {
			e["sp_a"] = r.bits(6)
			e["sp_b"] = r.bits(6)
			e["sp_c"] = r.bits(6)
		}
		entries = append(entries, e)
	}

	out := map[string]any{"count": count, "entries": entries}
	if r.Err() != nil {
		out["truncated"] = true
	}
	return out
}

func decodeGradient(bc *bitio.BitCursor) map[string]any {
	r := newFieldReader(bc)
	count := r.bits(5)
	entries := make([]map[string]any, 0, count)

	for i := uint32(0); i < count && r.Err() == nil; i++ {
		dist := r.bits(15)
		direction := r.bits(1)
		value := r.bits(5)
		e := map[string]any{
			"dist":      dist,
			"direction": direction,
			"value":     value,
			"valid":     value <= 30,
		}
		entries = append(entries, e)
	}

	out := map[string]any{"count": count, "entries": entries}
	if r.Err() != nil {
		out["truncated"] = true
	}
	return out
}

func decodeLCGate(bc *bitio.BitCursor) map[string]any {
	r := newFieldReader(bc)
	count := r.bits(5)
	entries := make([]map[string]any, 0, count)

	for i := uint32(0); i < count && r.Err() == nil; i++ {
		entries = append(entries, map[string]any{
			"dist":         r.bits(15),
			"id_num":       r.bits(10),
			"suffix":       r.bits(3),
			"manning":      r.bits(1),
			"class":        r.bits(3),
			"auto_whistle": r.bits(1),
			"whistle_type": r.bits(2),
		})
	}

	out := map[string]any{"count": count, "entries": entries}
	if r.Err() != nil {
		out["truncated"] = true
	}
	return out
}

func decodeTurnoutSpeed(bc *bitio.BitCursor) map[string]any {
	r := newFieldReader(bc)
	count := r.bits(2)
	entries := make([]map[string]any, 0, count)

	for i := uint32(0); i < count && r.Err() == nil; i++ {
		speed := r.bits(5)
		e := map[string]any{"speed": speed}
		if speed >= 1 && speed <= 18 {
			e["diff_dist"] = r.bits(15)
			e["rel_dist"] = r.bits(12)
		}
		entries = append(entries, e)
	}

	out := map[string]any{"count": count, "entries": entries}
	if r.Err() != nil {
		out["truncated"] = true
	}
	return out
}

func decodeTagLinking(bc *bitio.BitCursor) map[string]any {
	r := newFieldReader(bc)
	out := map[string]any{}

	out["dist_dup_tag"] = r.bits(4)
	rfidCount := r.bits(6)
	out["rfid_count"] = rfidCount

	entries := make([]map[string]any, 0, rfidCount)
	limit := rfidCount
	if limit > 62 {
		limit = 62
	}
	for i := uint32(0); i < limit && r.Err() == nil && bc.Remaining() >= 22; i++ {
		entries = append(entries, map[string]any{
			"dist_next_rfid": r.bits(11),
			"next_rfid_id":   r.bits(10),
			"dup_tag_dir":    r.bits(1),
		})
	}
	out["entries"] = entries

	if r.Err() == nil {
		absLocReset := r.bits(1)
		out["abs_loc_reset"] = absLocReset
		if absLocReset == 1 {
			out["start_dist"] = r.bits(15)
			out["adj_loco_dir"] = r.bits(2)
			out["abs_loc_correction"] = r.bits(23)
			lineCnt := r.bits(3)
			out["adj_line_cnt"] = lineCnt

			lines := make([]uint32, 0, lineCnt)
			limit := lineCnt
			if limit > 5 {
				limit = 5
			}
			for i := uint32(0); i < limit && r.Err() == nil; i++ {
				lines = append(lines, r.bits(9))
			}
			out["line_tin"] = lines
		}
	}

	if r.Err() != nil {
		out["truncated"] = true
	}
	return out
}

func decodeTrackCondition(bc *bitio.BitCursor) map[string]any {
	r := newFieldReader(bc)
	count := r.bits(4)
	entries := make([]map[string]any, 0, count)

	for i := uint32(0); i < count && r.Err() == nil; i++ {
		condType := r.bits(4)
		e := map[string]any{
			"type":       condType,
			"reserved":   condType > 9,
			"start_dist": r.bits(15),
			"length":     r.bits(15),
		}
		entries = append(entries, e)
	}

	out := map[string]any{"count": count, "entries": entries}
	if r.Err() != nil {
		out["truncated"] = true
	}
	return out
}

func decodeTSR(bc *bitio.BitCursor) map[string]any {
	r := newFieldReader(bc)
	out := map[string]any{}

	tsrStatus := r.bits(2)
	out["tsr_status"] = tsrStatus
	if tsrStatus != 2 {
		// Per spec §4.4 / §8 scenario C, when tsr_status != 2 the
		// sub-packet must be skipped entirely: no entries are read.
		return out
	}

	count := r.bits(5)
	entries := make([]map[string]any, 0, count)
	for i := uint32(0); i < count && r.Err() == nil; i++ {
		id := r.bits(8)
		dist := r.bits(15)
		length := r.bits(15)
		class := r.bits(1)
		e := map[string]any{"id": id, "dist": dist, "length": length, "class": class}
		if class == 0 {
			e["univ_speed"] = decodeSpeedCode(r.bits(6))
		} else {
			e["sp_a"] = r.bits(6)
			e["sp_b"] = r.bits(6)
			e["sp_c"] = r.bits(6)
		}
		e["whistle"] = r.bits(2)
		entries = append(entries, e)
	}
	out["count"] = count
	out["entries"] = entries

	if r.Err() != nil {
		out["truncated"] = true
	}
	return out
}
