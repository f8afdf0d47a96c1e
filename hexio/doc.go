// Package hexio implements the Hex/Byte I/O component (spec §4.1): it reads
// a daily log file, uppercases and strips whitespace, segments the result
// into frame candidates at magic-marker boundaries, and hex-decodes each
// candidate to raw bytes.
//
// Large files are never fully hex-decoded in memory at once; one pooled
// ByteBuffer (internal/pool.GetFrameBuffer) is reused across candidates
// within one file scan.
package hexio
