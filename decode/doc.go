// Package decode implements one decoder per KAVACH packet family (spec §4),
// each following the same shape as the teacher's blob decoders: a
// constructor that parses the fixed header, and a Decode method that
// consumes the remaining bytes and returns a typed Record.
//
// Decoders are stateless and hold no package-level state; a *Decoder value
// is built fresh per frame candidate and discarded after Decode returns
// (spec §5 "decoders are pure and re-entrant").
package decode
