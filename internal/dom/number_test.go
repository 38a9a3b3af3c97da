package dom

import (
	"math"
	"testing"

	"github.com/mcncl/jsoncanon/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_IntegerRendering(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		expected string
	}{
		{"zero", 0, "0"},
		{"positive", 3, "3"},
		{"negative", -42, "-42"},
		{"min int64", math.MinInt64, "-9223372036854775808"},
		{"max int64", math.MaxInt64, "9223372036854775807"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mustMarshal(t, NewInt(tt.value)))
		})
	}
}

func TestNumber_FloatRendering(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"simple fraction", 3.5, "3.5"},
		{"negative fraction", -0.25, "-0.25"},
		{"whole float keeps decimal point", 3, "3.0"},
		{"negative zero keeps decimal point", math.Copysign(0, -1), "-0.0"},
		{"large magnitude uses exponent", 1e21, "1e+21"},
		{"small magnitude uses exponent", 1e-7, "1e-07"},
		{"round-trippable precision", 0.1, "0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mustMarshal(t, NewFloat(tt.value)))
		})
	}
}

func TestNumber_NonFiniteFails(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := MarshalString(NewFloat(f))
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrNonFiniteNumber)
	}
}

func TestNumber_TypedAccessors(t *testing.T) {
	n := NewInt(7)
	assert.Equal(t, Integer, n.NumberKind())

	i, err := n.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(7), i)

	_, err = n.Float()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrWrongNumberKind)

	f := NewFloat(1.5)
	assert.Equal(t, Float, f.NumberKind())

	fv, err := f.Float()
	require.NoError(t, err)
	assert.Equal(t, 1.5, fv)

	_, err = f.Int()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrWrongNumberKind)
}

func TestNumber_SettersRetag(t *testing.T) {
	n := NewInt(7)
	n.SetFloat(2.5)
	assert.Equal(t, Float, n.NumberKind())
	assert.Equal(t, "2.5", mustMarshal(t, n))

	_, err := n.Int()
	assert.ErrorIs(t, err, errors.ErrWrongNumberKind)

	n.SetInt(9)
	assert.Equal(t, Integer, n.NumberKind())
	assert.Equal(t, "9", mustMarshal(t, n))
}

func TestNumber_CloneCopiesTagAndPayload(t *testing.T) {
	original := NewFloat(6.25)
	clone := original.Clone().(*Number)

	assert.Equal(t, Float, clone.NumberKind())
	assert.Equal(t, "6.25", mustMarshal(t, clone))

	clone.SetInt(1)
	assert.Equal(t, "6.25", mustMarshal(t, original), "mutating the clone must not touch the original")
}
