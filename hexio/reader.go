package hexio

import (
	"encoding/hex"
	"iter"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/kavachlog/decodecore/internal/pool"
)

// sanitize uppercases content and strips all whitespace (CR/LF and any
// incidental padding), leaving a contiguous ASCII hex string.
func sanitize(raw []byte) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range string(raw) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// segment splits a sanitized hex string into frame candidates at marker
// boundaries, preserving the marker at the start of each candidate (spec
// §4.1).
func segment(text string, markers []Marker) []string {
	if len(markers) == 0 || text == "" {
		return nil
	}

	var starts []int
	seen := make(map[int]bool)
	for _, m := range markers {
		s := string(m)
		for idx := 0; ; {
			pos := strings.Index(text[idx:], s)
			if pos < 0 {
				break
			}
			abs := idx + pos
			if !seen[abs] {
				seen[abs] = true
				starts = append(starts, abs)
			}
			idx = abs + len(s)
		}
	}
	if len(starts) == 0 {
		return nil
	}

	// Insertion sort: candidate counts per file are small enough that this
	// avoids pulling in sort for a handful of comparisons in the hot path.
	for i := 1; i < len(starts); i++ {
		for j := i; j > 0 && starts[j-1] > starts[j]; j-- {
			starts[j-1], starts[j] = starts[j], starts[j-1]
		}
	}

	candidates := make([]string, 0, len(starts))
	for i, s := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		candidates = append(candidates, text[s:end])
	}
	return candidates
}

// decodeCandidate hex-decodes one candidate string directly into a pooled
// scratch buffer and returns that buffer's backing slice — no copy. This is
// safe only because every caller (scan.Run, the upload handlers) consumes
// the yielded slice synchronously before the next candidate is pulled and
// the buffer is reused; nothing retains it past that point. Odd-length or
// non-hex candidates are discarded (nil, false).
func decodeCandidate(buf *pool.ByteBuffer, candidate string) ([]byte, bool) {
	if len(candidate)%2 != 0 {
		return nil, false
	}
	buf.Reset()
	buf.Grow(len(candidate) / 2)
	n := len(candidate) / 2
	buf.B = buf.B[:n]
	if _, err := hex.Decode(buf.B, []byte(candidate)); err != nil {
		return nil, false
	}
	return buf.B, true
}

// ReadFrames reads path, segments it into frame candidates bounded by
// markers, and yields each candidate's decoded bytes.
//
// If the file cannot be opened, the failure is logged and an empty
// sequence is yielded — the caller continues to the next file (spec §4.1,
// §7 ErrIoError).
func ReadFrames(path string, markers []Marker) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		raw, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("hexio: failed to read log file", slog.String("path", path), slog.Any("error", err))
			return
		}
		ReadFramesBytes(raw, markers)(yield)
	}
}

// ReadFramesBytes segments raw (already in memory — e.g. an HTTP upload
// body, spec §6 "body=file bytes") into frame candidates bounded by
// markers and yields each candidate's decoded bytes, sharing the same
// sanitize/segment/decode pipeline as ReadFrames.
func ReadFramesBytes(raw []byte, markers []Marker) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		text := sanitize(raw)
		candidates := segment(text, markers)

		buf := pool.GetFrameBuffer()
		defer pool.PutFrameBuffer(buf)

		for _, c := range candidates {
			data, ok := decodeCandidate(buf, c)
			if !ok {
				continue
			}
			if !yield(data) {
				return
			}
		}
	}
}
