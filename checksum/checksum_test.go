package checksum

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReflectedVerifier_MatchesStdlibIEEE(t *testing.T) {
	data := []byte("123456789")
	v := NewReflectedVerifier()

	want := crc32.ChecksumIEEE(data)
	assert.Equal(t, want, v.Compute(data))
	assert.True(t, v.Verify(data, want))
	assert.False(t, v.Verify(data, want+1))
}

func TestStandardVerifier_KnownVector(t *testing.T) {
	// "123456789" under CRC-32/MPEG-2 (poly 0x04C11DB7, init 0xFFFFFFFF,
	// no reflection, no final XOR) is the well-known check value 0x0376E6E7.
	v := NewStandardVerifier()
	data := []byte("123456789")

	got := v.Compute(data)
	assert.Equal(t, uint32(0x0376E6E7), got)
	assert.True(t, v.Verify(data, 0x0376E6E7))
	assert.False(t, v.Verify(data, 0))
}

func TestGet(t *testing.T) {
	std, err := Get(VariantStandard)
	require.NoError(t, err)
	assert.IsType(t, StandardVerifier{}, std)

	refl, err := Get(VariantReflected)
	require.NoError(t, err)
	assert.IsType(t, ReflectedVerifier{}, refl)

	_, err = Get(Variant(99))
	assert.Error(t, err)
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "Standard", VariantStandard.String())
	assert.Equal(t, "Reflected", VariantReflected.String())
}
