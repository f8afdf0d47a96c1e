package graph

import (
	"testing"

	"github.com/kavachlog/decodecore/decode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_AllFourGraphTypes(t *testing.T) {
	r := decode.PositionRegularRecord{
		FrameNumber:          100,
		AbsoluteLocoLocation: 5000,
		TrainSpeed:           10,
		LocoMode:             3,
	}

	p, err := project(r, TypeLocationSpeed)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 5000, Y: 10}, p)

	p, err = project(r, TypeLocationMode)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 5000, Y: 3}, p)

	p, err = project(r, TypeTimeSpeed)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 100, Y: 10}, p)

	p, err = project(r, TypeTimeMode)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 100, Y: 3}, p)
}

func TestProject_UnknownGraphType(t *testing.T) {
	_, err := project(decode.PositionRegularRecord{}, Type("bogus"))
	assert.Error(t, err)
}
