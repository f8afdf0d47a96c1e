package checksum

import "hash/crc32"

// ReflectedVerifier implements the bit-reflected CRC32 variant (poly
// 0xEDB88320, init 0xFFFFFFFF, final XOR 0xFFFFFFFF) — the conventional
// "zip" CRC32 produced by the IEEE polynomial table. The Fault (0x19)
// decoder uses this variant to verify bytes[2:length-4] on every record,
// regardless of fault origin (spec §4.6).
type ReflectedVerifier struct{}

var _ Verifier = ReflectedVerifier{}

// NewReflectedVerifier creates a Verifier for the reflected CRC32 variant.
func NewReflectedVerifier() ReflectedVerifier {
	return ReflectedVerifier{}
}

// Compute returns the reflected (IEEE) CRC32 of data.
func (ReflectedVerifier) Compute(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// Verify reports whether the reflected CRC32 of data equals want.
func (r ReflectedVerifier) Verify(data []byte, want uint32) bool {
	return r.Compute(data) == want
}
