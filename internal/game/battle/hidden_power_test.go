package battle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/pkmn/internal/game/battle"
	"github.com/cory-johannsen/pkmn/internal/game/stats"
	"github.com/cory-johannsen/pkmn/internal/game/typechart"
	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

func TestGBHiddenPower_MaxIVs(t *testing.T) {
	hp, err := battle.GBHiddenPower(15, 15, 15, 15)
	require.NoError(t, err)
	assert.Equal(t, battle.HiddenPower{Type: typechart.Dark, Power: 70}, hp)
}

func TestGBHiddenPower_MinIVs(t *testing.T) {
	hp, err := battle.GBHiddenPower(0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, battle.HiddenPower{Type: typechart.Fighting, Power: 31}, hp)

	_, err = battle.GBHiddenPower(0, 0, 0, 16)
	assert.ErrorIs(t, err, validate.ErrRange)
}

func TestHiddenPowerFromIVs_MaxIVs(t *testing.T) {
	hp, err := battle.HiddenPowerFromIVs(stats.Uniform(stats.LayoutSplit, 31))
	require.NoError(t, err)
	assert.Equal(t, battle.HiddenPower{Type: typechart.Dark, Power: 70}, hp)
}

func TestHiddenPowerFromIVs_Validation(t *testing.T) {
	_, err := battle.HiddenPowerFromIVs(stats.Uniform(stats.LayoutGameBoy, 15))
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
	_, err = battle.HiddenPowerFromIVs(stats.Uniform(stats.LayoutSplit, 32))
	assert.ErrorIs(t, err, validate.ErrRange)
}

func TestProperty_HiddenPower_NeverNormalOrFairy(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		values := map[stats.Kind]int{}
		for _, k := range stats.LayoutSplit.Kinds() {
			values[k] = rapid.IntRange(0, 31).Draw(rt, k.String())
		}
		ivs, err := stats.NewSpread(stats.LayoutSplit, values)
		require.NoError(rt, err)
		hp, err := battle.HiddenPowerFromIVs(ivs)
		require.NoError(rt, err)
		assert.GreaterOrEqual(rt, hp.Type, typechart.Fighting)
		assert.LessOrEqual(rt, hp.Type, typechart.Dark)
		assert.GreaterOrEqual(rt, hp.Power, 30)
		assert.LessOrEqual(rt, hp.Power, 70)
	})
}
