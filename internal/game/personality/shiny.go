package personality

import (
	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

// TrainerID is an original-trainer ID. Game Boy games only store the public
// half; later games add a secret half.
type TrainerID struct {
	Public    uint16 `yaml:"public"`
	Secret    uint16 `yaml:"secret"`
	HasSecret bool   `yaml:"has_secret"`
}

// NewTrainerID splits a full 32-bit ID into its public (low) and secret (high) halves.
func NewTrainerID(full uint32) TrainerID {
	return TrainerID{Public: uint16(full), Secret: uint16(full >> 16), HasSecret: true}
}

// GBTrainerID builds a 16-bit Game Boy ID.
func GBTrainerID(public uint16) TrainerID {
	return TrainerID{Public: public}
}

// Full returns secret<<16 | public; the secret is zero when absent.
func (t TrainerID) Full() uint32 {
	return uint32(t.Secret)<<16 | uint32(t.Public)
}

// IsShiny reports whether pid is shiny for the given 32-bit trainer ID.
// Splitting both into 16-bit halves, every bit 3..15 across the four halves
// must have even parity.
func IsShiny(pid, trainerID uint32) bool {
	return shinyResidue(pid, trainerID)>>3 == 0
}

func shinyResidue(pid, trainerID uint32) uint16 {
	return uint16(pid) ^ uint16(pid>>16) ^ uint16(trainerID) ^ uint16(trainerID>>16)
}

// GBShinyAttackIVs are the Attack IVs a shiny Game Boy era record may have.
var GBShinyAttackIVs = []int{2, 3, 6, 7, 10, 11, 14, 15}

// GBShinyIV is the Defense, Speed and Special IV every shiny record shares.
const GBShinyIV = 10

// GBShiny reports whether a Game Boy era IV set is shiny.
//
// Precondition: all IVs in [0,15].
func GBShiny(attack, defense, speed, special int) (bool, error) {
	for _, iv := range []struct {
		name  string
		value int
	}{{"IV_attack", attack}, {"IV_defense", defense}, {"IV_speed", speed}, {"IV_special", special}} {
		if err := validate.CheckBounds(iv.name, iv.value, 0, generation.GameBoy.MaxIV()); err != nil {
			return false, err
		}
	}
	if defense != GBShinyIV || speed != GBShinyIV || special != GBShinyIV {
		return false, nil
	}
	for _, a := range GBShinyAttackIVs {
		if attack == a {
			return true, nil
		}
	}
	return false, nil
}
