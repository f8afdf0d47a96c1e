package checksum

import "fmt"

// Verifier computes a checksum over data and reports whether it matches want.
type Verifier interface {
	// Verify computes the checksum of data and compares it against want.
	Verify(data []byte, want uint32) bool

	// Compute returns the checksum of data.
	Compute(data []byte) uint32
}

// Variant identifies which CRC32 convention a Verifier implements.
type Variant int

const (
	// VariantStandard is the unreflected CRC32 (poly 0x04C11DB7, init
	// 0xFFFFFFFF, no reflection, no final XOR).
	VariantStandard Variant = iota
	// VariantReflected is the bit-reflected CRC32 (poly 0xEDB88320, init
	// 0xFFFFFFFF, final XOR 0xFFFFFFFF) used by the Fault family.
	VariantReflected
)

func (v Variant) String() string {
	switch v {
	case VariantStandard:
		return "Standard"
	case VariantReflected:
		return "Reflected"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

var builtin = map[Variant]Verifier{
	VariantStandard:  NewStandardVerifier(),
	VariantReflected: NewReflectedVerifier(),
}

// Get retrieves the built-in Verifier for the given variant.
func Get(v Variant) (Verifier, error) {
	if verifier, ok := builtin[v]; ok {
		return verifier, nil
	}
	return nil, fmt.Errorf("checksum: unsupported variant %s", v)
}
