package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/stats"
	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

func TestGBStat_KnownValues(t *testing.T) {
	// Level 100 Pikachu, base HP 35, no stat experience and max stat experience.
	hp, err := stats.GBStat(stats.HP, 100, 35, 0, 15)
	require.NoError(t, err)
	assert.Equal(t, 210, hp)

	hp, err = stats.GBStat(stats.HP, 100, 35, 65535, 15)
	require.NoError(t, err)
	assert.Equal(t, 274, hp)

	spc, err := stats.GBStat(stats.Special, 50, 50, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 55, spc)
}

func TestGBStat_Bounds(t *testing.T) {
	_, err := stats.GBStat(stats.Attack, 50, 100, 0, 16)
	assert.ErrorIs(t, err, validate.ErrRange)
	assert.Contains(t, err.Error(), "0-15")

	_, err = stats.GBStat(stats.Attack, 50, 100, 65536, 0)
	assert.ErrorIs(t, err, validate.ErrRange)

	_, err = stats.GBStat(stats.Attack, 0, 100, 0, 0)
	assert.ErrorIs(t, err, validate.ErrRange)

	_, err = stats.GBStat(stats.Attack, 50, 0, 0, 0)
	assert.ErrorIs(t, err, validate.ErrRange)
}

func TestModernStat_KnownValues(t *testing.T) {
	// Level 78 Adamant Garchomp.
	hp, err := stats.ModernStat(stats.HP, 78, 1.0, 108, 74, 24)
	require.NoError(t, err)
	assert.Equal(t, 289, hp)

	atk, err := stats.ModernStat(stats.Attack, 78, 1.1, 130, 190, 12)
	require.NoError(t, err)
	assert.Equal(t, 278, atk)

	spa, err := stats.ModernStat(stats.SpecialAttack, 78, 0.9, 80, 48, 16)
	require.NoError(t, err)
	assert.Equal(t, 135, spa)
}

func TestModernStat_HPIgnoresNature(t *testing.T) {
	neutral, err := stats.ModernStat(stats.HP, 50, 1.0, 80, 0, 31)
	require.NoError(t, err)
	boosted, err := stats.ModernStat(stats.HP, 50, 1.1, 80, 0, 31)
	require.NoError(t, err)
	assert.Equal(t, neutral, boosted)
}

func TestModernStat_RejectsUnknownNatureModifier(t *testing.T) {
	_, err := stats.ModernStat(stats.Attack, 50, 1.05, 80, 0, 31)
	require.Error(t, err)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "0.9, 1.0, 1.1")
}

func TestModernStat_RejectsSpecial(t *testing.T) {
	_, err := stats.ModernStat(stats.Special, 50, 1.0, 80, 0, 31)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
}

func TestModernStat_Bounds(t *testing.T) {
	_, err := stats.ModernStat(stats.Speed, 50, 1.0, 80, 256, 0)
	assert.ErrorIs(t, err, validate.ErrRange)
	_, err = stats.ModernStat(stats.Speed, 50, 1.0, 80, 0, 32)
	assert.ErrorIs(t, err, validate.ErrRange)
	_, err = stats.ModernStat(stats.Speed, 101, 1.0, 80, 0, 0)
	assert.ErrorIs(t, err, validate.ErrRange)
}

func TestProperty_ModernStat_NatureDelta(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		kind := rapid.SampledFrom([]stats.Kind{stats.Attack, stats.Defense, stats.Speed, stats.SpecialAttack, stats.SpecialDefense}).Draw(rt, "kind")
		level := rapid.IntRange(1, 100).Draw(rt, "level")
		base := rapid.IntRange(1, 255).Draw(rt, "base")
		ev := rapid.IntRange(0, 255).Draw(rt, "ev")
		iv := rapid.IntRange(0, 31).Draw(rt, "iv")

		neutral, err := stats.ModernStat(kind, level, 1.0, base, ev, iv)
		require.NoError(rt, err)
		boosted, err := stats.ModernStat(kind, level, 1.1, base, ev, iv)
		require.NoError(rt, err)
		assert.Equal(rt, neutral*11/10-neutral, boosted-neutral)
	})
}

func TestProperty_GBStat_Deterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		kind := rapid.SampledFrom(stats.LayoutGameBoy.Kinds()).Draw(rt, "kind")
		level := rapid.IntRange(1, 100).Draw(rt, "level")
		base := rapid.IntRange(1, 255).Draw(rt, "base")
		ev := rapid.IntRange(0, 65535).Draw(rt, "ev")
		iv := rapid.IntRange(0, 15).Draw(rt, "iv")

		a, errA := stats.GBStat(kind, level, base, ev, iv)
		b, errB := stats.GBStat(kind, level, base, ev, iv)
		require.NoError(rt, errA)
		require.NoError(rt, errB)
		assert.Equal(rt, a, b)
		assert.Positive(rt, a)
	})
}

func TestProperty_GBStat_MonotonicInEV(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ev := rapid.IntRange(0, 65534).Draw(rt, "ev")
		lo, err := stats.GBStat(stats.Attack, 100, 100, ev, 8)
		require.NoError(rt, err)
		hi, err := stats.GBStat(stats.Attack, 100, 100, ev+1, 8)
		require.NoError(rt, err)
		assert.GreaterOrEqual(rt, hi, lo)
	})
}

func TestGBHPIV(t *testing.T) {
	assert.Equal(t, 15, stats.GBHPIV(15, 15, 15, 15))
	assert.Equal(t, 0, stats.GBHPIV(10, 10, 10, 10))
	assert.Equal(t, 8, stats.GBHPIV(1, 0, 0, 0))
	assert.Equal(t, 5, stats.GBHPIV(0, 3, 2, 7))
}

func TestCompute_Generation2SplitsSpecial(t *testing.T) {
	base, err := stats.NewSpread(stats.LayoutSplit, map[stats.Kind]int{
		stats.HP: 35, stats.Attack: 55, stats.Defense: 30, stats.Speed: 90,
		stats.SpecialAttack: 50, stats.SpecialDefense: 40,
	})
	require.NoError(t, err)
	evs := stats.Uniform(stats.LayoutGameBoy, 0)
	ivs := stats.Uniform(stats.LayoutGameBoy, 15)

	out, err := stats.Compute(generation.Gold, 50, base, evs, ivs, stats.Hardy)
	require.NoError(t, err)
	assert.Equal(t, stats.LayoutSplit, out.Layout())

	want, err := stats.GBStat(stats.SpecialAttack, 50, 50, 0, 15)
	require.NoError(t, err)
	assert.Equal(t, want, out.MustGet(stats.SpecialAttack))
}

func TestCompute_ModernAppliesNature(t *testing.T) {
	base := stats.Uniform(stats.LayoutSplit, 100)
	evs := stats.Uniform(stats.LayoutSplit, 0)
	ivs := stats.Uniform(stats.LayoutSplit, 31)

	out, err := stats.Compute(generation.Emerald, 50, base, evs, ivs, stats.Adamant)
	require.NoError(t, err)
	assert.Greater(t, out.MustGet(stats.Attack), out.MustGet(stats.Defense))
	assert.Less(t, out.MustGet(stats.SpecialAttack), out.MustGet(stats.Defense))
}

func TestCompute_RejectsWrongLayout(t *testing.T) {
	base := stats.Uniform(stats.LayoutSplit, 100)
	evs := stats.Uniform(stats.LayoutGameBoy, 0)
	_, err := stats.Compute(generation.Emerald, 50, base, evs, evs, stats.Hardy)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
}
