// Package checksum implements the two CRC32 variants used across the KAVACH
// log formats (spec §3, §4.9).
//
// Both frame families carry a trailing 4-byte CRC32, but they were produced
// by different generator firmware and use different polynomial conventions:
//
//   - Standard: polynomial 0x04C11DB7, init 0xFFFFFFFF, no input/output
//     reflection, no final XOR. Declared by §3 as the general invariant.
//   - Reflected: polynomial 0xEDB88320 (the bit-reversal of the standard
//     polynomial), init 0xFFFFFFFF, final XOR 0xFFFFFFFF. This is the
//     classic "zip" CRC32 that most libraries expose by default.
//
// Only the Fault (0x19) decoder verifies a checksum, and it always uses the
// Reflected variant over bytes[2:length-4] regardless of fault origin (spec
// §4.6). The Standard variant is kept as a second explicit strategy because
// §4.9 calls for both to remain available; no decoder in this module invokes
// it today.
package checksum
