// Package scan implements the Date-Range Driver (spec §4.8): it enumerates
// daily log files whose filename-encoded date falls in a requested range,
// streams frame candidates from each via hexio, invokes the family-specific
// decoder, applies optional time and attribute filters, and paginates the
// resulting record stream.
//
// Control flow is strictly sequential per request (spec §5): one goroutine
// walks the file list in date order and, within each file, candidates in
// byte order, so the emitted record order is deterministic and repeatable
// (spec §8 testable property 4, idempotence).
package scan
