package battle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/pkmn/internal/game/battle"
	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

// requirePower adapts a (power, error) pair for inline assertions.
func requirePower(t *testing.T) func(int, error) int {
	return func(p int, err error) int {
		t.Helper()
		require.NoError(t, err)
		return p
	}
}

func TestFlailPower_Tiers(t *testing.T) {
	pw := requirePower(t)
	// p = 48*cur/96 = cur/2.
	cases := []struct{ cur, want int }{
		{1, 200}, {3, 200},
		{4, 150}, {9, 150},
		{10, 100}, {19, 100},
		{20, 80}, {33, 80},
		{34, 40}, {65, 40},
		{66, 20}, {96, 20},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, pw(battle.FlailPower(c.cur, 96)), "current %d", c.cur)
	}
	assert.Equal(t, pw(battle.FlailPower(30, 96)), pw(battle.ReversalPower(30, 96)))
}

func TestHPFormulas_RejectBadHP(t *testing.T) {
	_, err := battle.FlailPower(0, 100)
	assert.ErrorIs(t, err, validate.ErrRange)
	_, err = battle.FlailPower(101, 100)
	assert.ErrorIs(t, err, validate.ErrRange)
	_, err = battle.BrinePower(1, 0)
	assert.ErrorIs(t, err, validate.ErrRange)
	_, err = battle.EruptionPower(-1, 10)
	assert.ErrorIs(t, err, validate.ErrRange)
}

func TestEruptionPower(t *testing.T) {
	pw := requirePower(t)
	assert.Equal(t, 150, pw(battle.EruptionPower(300, 300)))
	assert.Equal(t, 75, pw(battle.WaterSpoutPower(150, 300)))
	assert.Equal(t, 1, pw(battle.EruptionPower(1, 300)))
}

func TestBrinePower(t *testing.T) {
	pw := requirePower(t)
	assert.Equal(t, 130, pw(battle.BrinePower(50, 100)))
	assert.Equal(t, 65, pw(battle.BrinePower(51, 100)))
}

func TestCrushGripPower(t *testing.T) {
	pw := requirePower(t)
	assert.Equal(t, 121, pw(battle.CrushGripPower(4, 100, 100)))
	assert.Equal(t, 120, pw(battle.WringOutPower(5, 100, 100)))
	assert.Equal(t, 1, pw(battle.CrushGripPower(4, 1, 200)))
	assert.Equal(t, 1, pw(battle.CrushGripPower(6, 1, 200)))

	_, err := battle.CrushGripPower(3, 100, 100)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
}

func TestElectroBallPower(t *testing.T) {
	pw := requirePower(t)
	assert.Equal(t, 150, pw(battle.ElectroBallPower(400, 100)))
	assert.Equal(t, 120, pw(battle.ElectroBallPower(300, 100)))
	assert.Equal(t, 80, pw(battle.ElectroBallPower(200, 100)))
	assert.Equal(t, 60, pw(battle.ElectroBallPower(100, 100)))
	assert.Equal(t, 40, pw(battle.ElectroBallPower(99, 100)))

	_, err := battle.ElectroBallPower(0, 100)
	assert.ErrorIs(t, err, validate.ErrRange)
}

func TestGyroBallPower(t *testing.T) {
	pw := requirePower(t)
	assert.Equal(t, 26, pw(battle.GyroBallPower(100, 100)))
	assert.Equal(t, 150, pw(battle.GyroBallPower(1, 500)))
	assert.Equal(t, 1, pw(battle.GyroBallPower(500, 1)))

	_, err := battle.GyroBallPower(100, -1)
	assert.ErrorIs(t, err, validate.ErrRange)
}

func TestWeightFormulas(t *testing.T) {
	pw := requirePower(t)
	assert.Equal(t, 50, pw(battle.LowKickPower(2, 400)))
	assert.Equal(t, 20, pw(battle.LowKickPower(3, 9.9)))
	assert.Equal(t, 40, pw(battle.LowKickPower(3, 10)))
	assert.Equal(t, 120, pw(battle.LowKickPower(6, 200)))
	assert.Equal(t, 100, pw(battle.GrassKnotPower(199.9)))

	assert.Equal(t, 40, pw(battle.HeatCrashPower(100, 60)))
	assert.Equal(t, 60, pw(battle.HeatCrashPower(100, 40)))
	assert.Equal(t, 80, pw(battle.HeatCrashPower(100, 30)))
	assert.Equal(t, 100, pw(battle.HeavySlamPower(100, 21)))
	assert.Equal(t, 120, pw(battle.HeavySlamPower(100, 20)))

	_, err := battle.GrassKnotPower(0)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
	_, err = battle.HeatCrashPower(-5, 10)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
	_, err = battle.LowKickPower(0, 10)
	assert.ErrorIs(t, err, validate.ErrRange)
}

func TestStatStageFormulas(t *testing.T) {
	pw := requirePower(t)
	assert.Equal(t, 20, pw(battle.PowerTripPower(battle.StatStages{})))
	assert.Equal(t, 100, pw(battle.StoredPowerPower(battle.StatStages{Attack: 2, Speed: 2})))
	assert.Equal(t, 60, pw(battle.PunishmentPower(battle.StatStages{})))
	assert.Equal(t, 200, pw(battle.PunishmentPower(battle.StatStages{Attack: 6, Defense: 6})))

	_, err := battle.PowerTripPower(battle.StatStages{Evasion: 7})
	assert.ErrorIs(t, err, validate.ErrRange)
	_, err = battle.PunishmentPower(battle.StatStages{Accuracy: -1})
	assert.ErrorIs(t, err, validate.ErrRange)
}

func TestFriendshipFormulas(t *testing.T) {
	pw := requirePower(t)
	assert.Equal(t, 102, pw(battle.ReturnPower(255)))
	assert.Equal(t, 1, pw(battle.ReturnPower(0)))
	assert.Equal(t, 102, pw(battle.FrustrationPower(0)))
	assert.Equal(t, 1, pw(battle.FrustrationPower(255)))

	_, err := battle.ReturnPower(256)
	assert.ErrorIs(t, err, validate.ErrRange)
}

func TestProperty_ReturnFrustration_Complementary(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := rapid.IntRange(0, 255).Draw(rt, "friendship")
		r, err := battle.ReturnPower(f)
		require.NoError(rt, err)
		fr, err := battle.FrustrationPower(255 - f)
		require.NoError(rt, err)
		assert.Equal(rt, r, fr)
	})
}

func TestLookupTables(t *testing.T) {
	pw := requirePower(t)
	assert.Equal(t, 300, pw(battle.SpitUpPower(3)))
	_, err := battle.SpitUpPower(4)
	assert.ErrorIs(t, err, validate.ErrRange)

	assert.Equal(t, 200, pw(battle.TrumpCardPower(0)))
	assert.Equal(t, 40, pw(battle.TrumpCardPower(4)))
	_, err = battle.TrumpCardPower(5)
	assert.ErrorIs(t, err, validate.ErrRange)

	p, err := battle.FuryCutterPowers(3)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 40, 80, 160}, p)
	p, err = battle.FuryCutterPowers(5)
	require.NoError(t, err)
	assert.Equal(t, []int{20, 40, 80, 160}, p)
	p, err = battle.FuryCutterPowers(6)
	require.NoError(t, err)
	assert.Equal(t, []int{40, 80, 160}, p)
	_, err = battle.FuryCutterPowers(1)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
}
