package convert

import (
	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/personality"
	"github.com/cory-johannsen/pkmn/internal/game/stats"
)

// Gender derives the displayed gender of r from its ground truth: the Attack
// IV in the Game Boy era and the personality value afterward.
func Gender(r Record, profile personality.GenderProfile) (personality.Gender, error) {
	if generation.Classify(r.Game) == generation.GameBoy {
		atk, err := r.IVs.Get(stats.Attack)
		if err != nil {
			return personality.AnyGender, err
		}
		return personality.GBGender(profile, atk)
	}
	pid, err := r.Personality()
	if err != nil {
		return personality.AnyGender, err
	}
	return personality.ModernGender(profile, pid)
}

// Shiny derives whether r is shiny: from the IVs in the Game Boy era and from
// the personality value and trainer ID afterward.
func Shiny(r Record) (bool, error) {
	if generation.Classify(r.Game) == generation.GameBoy {
		var iv [4]int
		for i, k := range []stats.Kind{stats.Attack, stats.Defense, stats.Speed, stats.Special} {
			v, err := r.IVs.Get(k)
			if err != nil {
				return false, err
			}
			iv[i] = v
		}
		return personality.GBShiny(iv[0], iv[1], iv[2], iv[3])
	}
	pid, err := r.Personality()
	if err != nil {
		return false, err
	}
	return personality.IsShiny(pid, r.Trainer.ID.Full()), nil
}
