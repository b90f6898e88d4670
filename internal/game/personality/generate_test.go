package personality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/pkmn/internal/game/personality"
	"github.com/cory-johannsen/pkmn/internal/game/rng"
	"github.com/cory-johannsen/pkmn/internal/game/stats"
	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

type fixedSource struct{ val int }

func (f fixedSource) Intn(n int) int { return f.val % n }

func nature(n stats.Nature) *stats.Nature { return &n }

func TestGenerate_ShinyFemaleSecondAbilityHardy(t *testing.T) {
	req := personality.Request{
		TrainerID: 0x0F0F1234,
		Profile:   starter,
		Gender:    personality.Female,
		Shiny:     true,
		Nature:    nature(stats.Hardy),
		Ability:   personality.SecondAbility,
	}
	pid, err := personality.Generate(req, rng.NewSeededSource(42))
	require.NoError(t, err)

	g, err := personality.ModernGender(starter, pid)
	require.NoError(t, err)
	assert.Equal(t, personality.Female, g)
	assert.True(t, personality.IsShiny(pid, req.TrainerID))
	assert.Equal(t, stats.Hardy, stats.NatureFromPersonality(pid))
	assert.Equal(t, personality.SecondAbility, personality.AbilitySlotFromPersonality(pid))
}

func TestProperty_Generate_SatisfiesConstraints(t *testing.T) {
	profiles := []personality.GenderProfile{starter, even, fairy, maleOnly, femaleOnly, genderless}
	rapid.Check(t, func(rt *rapid.T) {
		profile := rapid.SampledFrom(profiles).Draw(rt, "profile")
		var allowed []personality.Gender
		for _, g := range []personality.Gender{personality.AnyGender, personality.Male, personality.Female, personality.Genderless} {
			if profile.Allows(g) {
				allowed = append(allowed, g)
			}
		}
		req := personality.Request{
			TrainerID: rapid.Uint32().Draw(rt, "tid"),
			Profile:   profile,
			Gender:    rapid.SampledFrom(allowed).Draw(rt, "gender"),
			Shiny:     rapid.Bool().Draw(rt, "shiny"),
			Nature:    nature(stats.Nature(rapid.IntRange(0, 24).Draw(rt, "nature"))),
			Ability:   rapid.SampledFrom([]personality.AbilitySlot{personality.AnyAbility, personality.FirstAbility, personality.SecondAbility}).Draw(rt, "ability"),
		}
		src := rng.NewSeededSource(rapid.Uint64().Draw(rt, "seed"))

		pid, err := personality.Generate(req, src)
		require.NoError(rt, err)

		if req.Gender != personality.AnyGender {
			g, err := personality.ModernGender(profile, pid)
			require.NoError(rt, err)
			assert.Equal(rt, req.Gender, g)
		}
		assert.Equal(rt, req.Shiny, personality.IsShiny(pid, req.TrainerID))
		assert.Equal(rt, *req.Nature, stats.NatureFromPersonality(pid))
		if req.Ability != personality.AnyAbility {
			assert.Equal(rt, req.Ability, personality.AbilitySlotFromPersonality(pid))
		}
	})
}

func TestGenerate_ExhaustsBudget(t *testing.T) {
	// A constant source yields the same candidate every time, and its nature
	// is never Lonely.
	req := personality.Request{
		Profile:     even,
		Nature:      nature(stats.Lonely),
		MaxAttempts: 5,
	}
	_, err := personality.Generate(req, fixedSource{val: 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, validate.ErrGenerationExhausted)

	var ex *validate.ExhaustedError
	require.ErrorAs(t, err, &ex)
	assert.Equal(t, 5, ex.Attempts)
}

func TestGenerate_RejectsImpossibleGender(t *testing.T) {
	_, err := personality.Generate(personality.Request{Profile: maleOnly, Gender: personality.Female}, rng.NewSeededSource(1))
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)

	_, err = personality.Generate(personality.Request{Profile: even, Gender: personality.Genderless}, rng.NewSeededSource(1))
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
}

func TestGenerate_RejectsUnknownNature(t *testing.T) {
	_, err := personality.Generate(personality.Request{Profile: even, Nature: nature(stats.Nature(30))}, rng.NewSeededSource(1))
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
}

func TestGenerator_AppliesDefaultBudget(t *testing.T) {
	gen := personality.NewGenerator(zap.NewNop(), 3)
	_, err := gen.Generate(personality.Request{Profile: even, Nature: nature(stats.Lonely)}, fixedSource{val: 0})
	var ex *validate.ExhaustedError
	require.ErrorAs(t, err, &ex)
	assert.Equal(t, 3, ex.Attempts)

	pid, err := gen.Generate(personality.Request{Profile: even, Shiny: true}, rng.NewSeededSource(9))
	require.NoError(t, err)
	assert.True(t, personality.IsShiny(pid, 0))
}
