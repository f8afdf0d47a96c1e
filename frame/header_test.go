package frame

import (
	"errors"
	"testing"

	"github.com/kavachlog/decodecore/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime_Validate(t *testing.T) {
	valid := DateTime{Day: 1, Month: 2, Year: 19, Hour: 10, Min: 11, Sec: 12}
	require.NoError(t, valid.Validate())

	invalidDay := DateTime{Day: 32, Month: 2, Year: 19}
	assert.ErrorIs(t, invalidDay.Validate(), errs.ErrInvalidDateTime)

	invalidHour := DateTime{Day: 1, Month: 1, Year: 19, Hour: 24}
	assert.ErrorIs(t, invalidHour.Validate(), errs.ErrInvalidDateTime)
}

func TestDateTime_Time(t *testing.T) {
	dt := DateTime{Day: 1, Month: 2, Year: 19, Hour: 10, Min: 11, Sec: 12}
	got := dt.Time()
	assert.Equal(t, 2019, got.Year())
	assert.Equal(t, 10, got.Hour())
}

func TestValidateLength(t *testing.T) {
	require.NoError(t, ValidateLength(14, 16))
	err := ValidateLength(10, 16)
	assert.True(t, errors.Is(err, errs.ErrInvalidMessageLength))
}
