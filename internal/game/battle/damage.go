package battle

import (
	"math"

	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

// Damage computes base damage:
//
//	floor(floor(floor(2*level/5 + 2) * power * attack / defense) / 50) + 2
//
// then applies modifier (STAB, type, critical, random roll, ...) and floors.
//
// Precondition: level in [1,255]; power >= 0; attack, defense >= 1; modifier >= 0.
func Damage(attackerLevel, power, attack, defense int, modifier float64) (int, error) {
	if err := validate.CheckBounds("attacker_level", attackerLevel, 1, 255); err != nil {
		return 0, err
	}
	if err := validate.CheckMinimum("move_base_power", power, 0); err != nil {
		return 0, err
	}
	if err := validate.CheckMinimum("attack_stat", attack, 1); err != nil {
		return 0, err
	}
	if err := validate.CheckMinimum("defense_stat", defense, 1); err != nil {
		return 0, err
	}
	if err := validate.CheckFloatMinimum("modifier", modifier, 0, false); err != nil {
		return 0, err
	}
	base := (2*attackerLevel/5+2)*power*attack/defense/50 + 2
	return int(math.Floor(float64(base) * modifier)), nil
}
