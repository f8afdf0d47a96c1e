package trackprofile

import (
	"time"

	"github.com/kavachlog/decodecore/decode"
	"github.com/kavachlog/decodecore/hexio"
	"github.com/kavachlog/decodecore/scan"
)

// Report returns one paginated page of 0x11 stationary-regular records in
// [from, to], optionally restricted to a single ref_profile_id (profileID
// < 0 means unfiltered — ref_profile_id is a 4-bit field and never
// negative).
func Report(logDir string, from, to time.Time, profileID int, page int) (scan.Page, error) {
	req := scan.Request{
		LogDir:       logDir,
		Markers:      hexio.MarkersStationary,
		Decode:       scan.StationaryDecodeFunc(),
		FromDate:     from,
		ToDate:       to,
		TimeFiltered: true,
		From:         from,
		To:           to,
		Filter: func(r decode.Record) bool {
			reg, ok := r.(decode.StationaryRegularRecord)
			if !ok {
				return false
			}
			if profileID >= 0 && int(reg.RefProfileID) != profileID {
				return false
			}
			return true
		},
	}

	records, err := scan.Run(req)
	if err != nil {
		return scan.Page{}, err
	}
	return scan.Paginate(records, page), nil
}
