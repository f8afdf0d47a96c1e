package decode

import "github.com/kavachlog/decodecore/bitio"

// fieldReader wraps a BitCursor so a long sequence of fixed-width field
// reads can be written without repeating `if err != nil { return }` after
// every call. The first error sticks; subsequent reads become no-ops
// returning zero. Callers check Err() once at the end of a field group.
//
// This is used only for the variable-shape stationary sub-packets, where a
// truncated or malformed sub-packet must not abort the frame — the
// sub-packet resync rule (spec §4.4, §9) restores the cursor from the
// declared sub-packet length regardless of how far decoding got.
type fieldReader struct {
	bc  *bitio.BitCursor
	err error
}

func newFieldReader(bc *bitio.BitCursor) *fieldReader {
	return &fieldReader{bc: bc}
}

func (r *fieldReader) bits(n int) uint32 {
	if r.err != nil {
		return 0
	}
	v, err := r.bc.Bits(n)
	if err != nil {
		r.err = err
		return 0
	}
	return v
}

func (r *fieldReader) signed(n int) int32 {
	if r.err != nil {
		return 0
	}
	v, err := r.bc.SignedBits(n)
	if err != nil {
		r.err = err
		return 0
	}
	return v
}

func (r *fieldReader) Err() error { return r.err }
