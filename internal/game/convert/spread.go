package convert

import (
	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/personality"
	"github.com/cory-johannsen/pkmn/internal/game/stats"
)

// widenIV rescales a 0-15 IV to 0-31, rounding to nearest.
func widenIV(v int) int { return (31*v + 7) / 15 }

// narrowIV rescales a 0-31 IV to 0-15, rounding to nearest.
func narrowIV(v int) int { return (15*v + 15) / 31 }

// widenEV turns Game Boy stat experience into an effort value.
func widenEV(statExp int) int { return min(generation.Modern.MaxEV(), stats.CeilSqrt(statExp)) }

// narrowEV turns an effort value into Game Boy stat experience.
func narrowEV(ev int) int { return ev * ev }

// reinterpret moves a spread between the Game Boy and split layouts. The
// Game Boy Special feeds both special stats; Special Attack feeds Special.
func reinterpret(s stats.Spread, from, to generation.Era, widen, narrow func(int) int) (stats.Spread, error) {
	fromLayout, toLayout := stats.InputLayout(from), stats.InputLayout(to)
	if fromLayout == toLayout {
		return s, nil
	}
	values := make(map[stats.Kind]int, len(toLayout.Kinds()))
	for _, k := range toLayout.Kinds() {
		in := k
		switch {
		case k == stats.Special:
			in = stats.SpecialAttack
		case fromLayout == stats.LayoutGameBoy && (k == stats.SpecialAttack || k == stats.SpecialDefense):
			in = stats.Special
		}
		v, err := s.Get(in)
		if err != nil {
			return stats.Spread{}, err
		}
		if toLayout == stats.LayoutGameBoy {
			values[k] = narrow(v)
		} else {
			values[k] = widen(v)
		}
	}
	return stats.NewSpread(toLayout, values)
}

// gbExpress adjusts narrowed Game Boy IVs so that they reproduce gender and
// shininess, then re-derives the HP IV.
//
// Postcondition: report.ShininessLost is set when shiny could not be kept.
func gbExpress(ivs stats.Spread, profile personality.GenderProfile, gender personality.Gender, shiny bool, report *Report) (stats.Spread, error) {
	atk := ivs.MustGet(stats.Attack)
	def := ivs.MustGet(stats.Defense)
	spd := ivs.MustGet(stats.Speed)
	spc := ivs.MustGet(stats.Special)

	lo, hi := 0, generation.GameBoy.MaxIV()
	if t, ok := profile.Threshold(generation.GameBoy); ok {
		switch gender {
		case personality.Female:
			hi = t - 1
		case personality.Male:
			lo = t
		}
	}
	atk = min(max(atk, lo), hi)

	if shiny {
		if a, ok := nearestShinyAttack(atk, lo, hi); ok {
			atk = a
			def, spd, spc = personality.GBShinyIV, personality.GBShinyIV, personality.GBShinyIV
		} else {
			report.ShininessLost = true
		}
	} else if got, err := personality.GBShiny(atk, def, spd, spc); err != nil {
		return stats.Spread{}, err
	} else if got {
		def = personality.GBShinyIV + 1
	}

	return stats.NewSpread(stats.LayoutGameBoy, map[stats.Kind]int{
		stats.HP:      stats.GBHPIV(atk, def, spd, spc),
		stats.Attack:  atk,
		stats.Defense: def,
		stats.Speed:   spd,
		stats.Special: spc,
	})
}

// nearestShinyAttack returns the shiny Attack IV in [lo,hi] closest to atk,
// preferring the lower on ties.
func nearestShinyAttack(atk, lo, hi int) (int, bool) {
	best, found := 0, false
	for _, a := range personality.GBShinyAttackIVs {
		if a < lo || a > hi {
			continue
		}
		if !found || abs(a-atk) < abs(best-atk) {
			best, found = a, true
		}
	}
	return best, found
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
