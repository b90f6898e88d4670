package typechart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/pkmn/internal/game/typechart"
	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

func modifier(t *testing.T, gen int, a, d typechart.Type) float64 {
	t.Helper()
	m, err := typechart.DamageModifier(gen, a, d)
	require.NoError(t, err)
	return m
}

func TestDamageModifier_Gating(t *testing.T) {
	_, err := typechart.DamageModifier(1, typechart.Dark, typechart.Normal)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
	_, err = typechart.DamageModifier(1, typechart.Normal, typechart.Steel)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
	_, err = typechart.DamageModifier(5, typechart.Fairy, typechart.Dragon)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
	_, err = typechart.DamageModifier(4, typechart.Shadow, typechart.Normal)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
	_, err = typechart.DamageModifier(3, typechart.Unknown, typechart.Normal)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
	_, err = typechart.DamageModifier(7, typechart.Normal, typechart.Normal)
	assert.ErrorIs(t, err, validate.ErrRange)
	_, err = typechart.DamageModifier(0, typechart.Normal, typechart.Normal)
	assert.ErrorIs(t, err, validate.ErrRange)

	assert.Equal(t, 2.0, modifier(t, 6, typechart.Fairy, typechart.Dragon))
}

func TestDamageModifier_SteelResistedGhostAndDarkBeforeGen6(t *testing.T) {
	assert.Equal(t, 0.5, modifier(t, 5, typechart.Ghost, typechart.Steel))
	assert.Equal(t, 0.5, modifier(t, 2, typechart.Dark, typechart.Steel))
	assert.Equal(t, 1.0, modifier(t, 6, typechart.Ghost, typechart.Steel))
	assert.Equal(t, 1.0, modifier(t, 6, typechart.Dark, typechart.Steel))
}

func TestDamageModifier_Generation1Chart(t *testing.T) {
	assert.Equal(t, 0.0, modifier(t, 1, typechart.Ghost, typechart.Psychic))
	assert.Equal(t, 2.0, modifier(t, 2, typechart.Ghost, typechart.Psychic))
	assert.Equal(t, 2.0, modifier(t, 1, typechart.Bug, typechart.Poison))
	assert.Equal(t, 0.5, modifier(t, 2, typechart.Bug, typechart.Poison))
	assert.Equal(t, 1.0, modifier(t, 1, typechart.Ice, typechart.Fire))
	assert.Equal(t, 0.5, modifier(t, 3, typechart.Ice, typechart.Fire))
}

func TestDamageModifier_SpecialTypes(t *testing.T) {
	assert.Equal(t, 2.0, modifier(t, 3, typechart.Shadow, typechart.Normal))
	assert.Equal(t, 0.5, modifier(t, 3, typechart.Shadow, typechart.Shadow))
	assert.Equal(t, 1.0, modifier(t, 4, typechart.Unknown, typechart.Dragon))
	assert.Equal(t, 1.0, modifier(t, 4, typechart.Fire, typechart.Unknown))
}

func TestProperty_DamageModifier_KnownFactors(t *testing.T) {
	regular := []typechart.Type{
		typechart.Normal, typechart.Fighting, typechart.Flying, typechart.Poison, typechart.Ground,
		typechart.Rock, typechart.Bug, typechart.Ghost, typechart.Fire, typechart.Water,
		typechart.Grass, typechart.Electric, typechart.Psychic, typechart.Ice, typechart.Dragon,
	}
	rapid.Check(t, func(rt *rapid.T) {
		gen := rapid.IntRange(1, 6).Draw(rt, "gen")
		a := rapid.SampledFrom(regular).Draw(rt, "attacking")
		d := rapid.SampledFrom(regular).Draw(rt, "defending")
		m, err := typechart.DamageModifier(gen, a, d)
		require.NoError(rt, err)
		assert.Contains(rt, []float64{0, 0.5, 1, 2}, m)
	})
}

func TestDualDamageModifier(t *testing.T) {
	m, err := typechart.DualDamageModifier(6, typechart.Ice, typechart.Dragon, typechart.Flying)
	require.NoError(t, err)
	assert.Equal(t, 4.0, m)

	m, err = typechart.DualDamageModifier(6, typechart.Electric, typechart.Water, typechart.Ground)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m)

	m, err = typechart.DualDamageModifier(6, typechart.Fire, typechart.Grass, typechart.None)
	require.NoError(t, err)
	assert.Equal(t, 2.0, m)

	_, err = typechart.DualDamageModifier(5, typechart.Fire, typechart.Grass, typechart.Fairy)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
}

func TestParseType(t *testing.T) {
	ty, err := typechart.ParseType("???")
	require.NoError(t, err)
	assert.Equal(t, typechart.Unknown, ty)
	_, err = typechart.ParseType("None")
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
}
