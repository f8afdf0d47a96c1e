package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileDate(t *testing.T) {
	d, ok := ParseFileDate("01-11-24.bin")
	require.True(t, ok)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, 11, int(d.Month()))
	assert.Equal(t, 1, d.Day())
}

func TestParseFileDate_Invalid(t *testing.T) {
	_, ok := ParseFileDate("not-a-date.bin")
	assert.False(t, ok)
}
