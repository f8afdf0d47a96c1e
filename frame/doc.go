// Package frame decodes the fixed-header portion shared (with per-family
// variation) by every KAVACH packet family, before bit-packed payload
// decoding takes over in package decode (spec §3 "Common header fields",
// §4.3-§4.7).
//
// Every header except InterlockingHeader embeds CommonHeader, which carries
// the fields present across families in the same relative order: message
// type, message length,
// message sequence, a date/time pair, and a NMS system identifier. Families
// diverge in field width (stationary_kavach_id is 2 or 3 bytes depending on
// family) and in what follows the shared prefix, so each family has its own
// Parse method built on top of a bitio.ByteCursor.
package frame
