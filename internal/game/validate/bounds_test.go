package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

func TestCheckBounds_InclusiveEnds(t *testing.T) {
	assert.NoError(t, validate.CheckBounds("IV", 0, 0, 15))
	assert.NoError(t, validate.CheckBounds("IV", 15, 0, 15))

	err := validate.CheckBounds("IV", 16, 0, 15)
	require.Error(t, err)
	assert.True(t, errors.Is(err, validate.ErrRange))
	assert.Equal(t, "IV: valid range 0-15, got 16", err.Error())
}

func TestCheckBounds_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		min := rapid.IntRange(-1000, 1000).Draw(rt, "min")
		max := rapid.IntRange(min, min+1000).Draw(rt, "max")
		v := rapid.IntRange(min-50, max+50).Draw(rt, "value")
		err := validate.CheckBounds("x", v, min, max)
		if v >= min && v <= max {
			assert.NoError(rt, err)
		} else {
			assert.ErrorIs(rt, err, validate.ErrRange)
		}
	})
}

func TestCheckMinimum(t *testing.T) {
	assert.NoError(t, validate.CheckMinimum("HP", 1, 1))
	err := validate.CheckMinimum("HP", 0, 1)
	assert.ErrorIs(t, err, validate.ErrRange)
	assert.Equal(t, "HP: valid range >= 1, got 0", err.Error())
}

func TestCheckFloatMembership_Epsilon(t *testing.T) {
	allowed := []float64{0.9, 1.0, 1.1}
	assert.NoError(t, validate.CheckFloatMembership("nature_modifier", 1.1, allowed))
	assert.NoError(t, validate.CheckFloatMembership("nature_modifier", 1.1+1e-12, allowed))

	err := validate.CheckFloatMembership("nature_modifier", 1.05, allowed)
	require.Error(t, err)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
	assert.Equal(t, "nature_modifier: valid values 0.9, 1.0, 1.1, got 1.05", err.Error())
}

func TestCheckFloatBounds(t *testing.T) {
	assert.NoError(t, validate.CheckFloatBounds("chance", 1.0+1e-12, 0, 1))
	assert.ErrorIs(t, validate.CheckFloatBounds("chance", 1.5, 0, 1), validate.ErrRange)
}

func TestCheckFloatMinimum_Exclusive(t *testing.T) {
	assert.NoError(t, validate.CheckFloatMinimum("weight", 0.1, 0, true))
	assert.ErrorIs(t, validate.CheckFloatMinimum("weight", 0, 0, true), validate.ErrInvalidArgument)
	assert.NoError(t, validate.CheckFloatMinimum("weight", 0, 0, false))
}

func TestCheckMembership(t *testing.T) {
	assert.NoError(t, validate.CheckMembership("generation", 3, []int{1, 2, 3}))
	err := validate.CheckMembership("generation", 7, []int{1, 2, 3})
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "1, 2, 3")
}

func TestTypedErrors_DoNotCrossMatch(t *testing.T) {
	feature := validate.NotInEra("Markings", "Red")
	assert.ErrorIs(t, feature, validate.ErrFeatureNotInEra)
	assert.NotErrorIs(t, feature, validate.ErrInvalidArgument)

	exhausted := &validate.ExhaustedError{Attempts: 10}
	assert.ErrorIs(t, exhausted, validate.ErrGenerationExhausted)
	assert.NotErrorIs(t, exhausted, validate.ErrRange)

	var fe *validate.FeatureError
	require.ErrorAs(t, feature, &fe)
	assert.Equal(t, "Markings", fe.Feature)
}
