package battle

import (
	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

// GBCriticalHitChance is the Generation I critical-hit probability, derived
// from the attacker's base Speed. Focus Energy and Dire Hit quarter the
// chance instead of raising it, as the games do.
func GBCriticalHitChance(baseSpeed int, rateIncreased, highRateMove bool) (float64, error) {
	if err := validate.CheckBounds("speed", baseSpeed, 1, 255); err != nil {
		return 0, err
	}
	threshold := baseSpeed / 2
	if rateIncreased {
		threshold /= 4
	}
	if highRateMove {
		threshold = min(255, threshold*8)
	}
	return float64(threshold) / 256, nil
}

// CriticalHitChance is the Generation II+ critical-hit probability for a
// critical-hit stage.
func CriticalHitChance(gen, stage int) (float64, error) {
	if err := validate.CheckBounds("generation", gen, 2, generation.MaxGeneration); err != nil {
		return 0, err
	}
	if err := validate.CheckMinimum("critical_hit_stage", stage, 0); err != nil {
		return 0, err
	}
	early := gen < 6
	switch stage {
	case 0:
		return 1.0 / 16, nil
	case 1:
		return 1.0 / 8, nil
	case 2:
		if early {
			return 1.0 / 4, nil
		}
		return 1.0 / 2, nil
	case 3:
		if early {
			return 1.0 / 3, nil
		}
		return 1, nil
	default:
		if early {
			return 1.0 / 2, nil
		}
		return 1, nil
	}
}

// GBCriticalHitModifier is the Generation I level-dependent critical multiplier.
// Levels up to 255 are accepted for glitch Pokémon.
func GBCriticalHitModifier(attackerLevel int) (float64, error) {
	if err := validate.CheckBounds("attacker_level", attackerLevel, 1, 255); err != nil {
		return 0, err
	}
	l := float64(attackerLevel)
	return (2*l + 5) / (l + 5), nil
}

// CriticalHitModifier is the Generation II+ critical multiplier.
func CriticalHitModifier(gen int) (float64, error) {
	if err := validate.CheckBounds("generation", gen, 2, generation.MaxGeneration); err != nil {
		return 0, err
	}
	if gen >= 6 {
		return 1.5, nil
	}
	return 2, nil
}
