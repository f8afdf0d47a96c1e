// Command decodecat decodes a single KAVACH daily log file and prints
// every matching record as a line of JSON, for offline inspection
// without standing up the HTTP server.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/kavachlog/decodecore/decode"
	"github.com/kavachlog/decodecore/hexio"
	"github.com/kavachlog/decodecore/packettype"
	"github.com/kavachlog/decodecore/scan"
)

var families = map[string]struct {
	markers []hexio.Marker
	decode  func() scan.DecodeFunc
}{
	"position":   {hexio.MarkersPosition, scan.PositionDecodeFunc},
	"stationary": {hexio.MarkersStationary, scan.StationaryDecodeFunc},
	"fault":      {hexio.MarkersFault, scan.FaultDecodeFunc},
	"health":     {hexio.MarkersHealth, scan.HealthDecodeFunc},
}

func main() {
	family := flag.String("family", "position", "packet family: position, stationary, fault, health, interlocking")
	path := flag.String("file", "", "path to a dd-MM-yy.bin log file")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "decodecat: -file is required")
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	var decodeFn scan.DecodeFunc
	var markers []hexio.Marker

	if *family == "interlocking" {
		relays := decode.NewStaticRelayTable(nil, nil)
		markers = hexio.MarkersInterlocking
		decodeFn = scan.InterlockingDecodeFunc(relays)
	} else {
		fam, ok := families[*family]
		if !ok {
			fmt.Fprintf(os.Stderr, "decodecat: unknown family %q\n", *family)
			os.Exit(2)
		}
		markers = fam.markers
		decodeFn = fam.decode()
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	enc := json.NewEncoder(out)

	count := 0
	for candidate := range hexio.ReadFrames(*path, markers) {
		sof := scan.SOFOf(candidate)
		if sof == "" {
			continue
		}
		records, err := decodeFn(candidate, packettype.DataSourceBin, sof)
		if err != nil {
			logger.Debug("decode failed", slog.Any("error", err))
			continue
		}
		for _, r := range records {
			if err := enc.Encode(r.Flatten()); err != nil {
				logger.Error("write failed", slog.Any("error", err))
				os.Exit(1)
			}
			count++
		}
	}

	logger.Info("decodecat finished", slog.Int("records", count), slog.String("file", *path))
}
