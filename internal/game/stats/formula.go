package stats

import (
	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

// Shared input domains.
const (
	MinLevel    = 1
	MaxLevel    = 100
	MinBaseStat = 1
	MaxBaseStat = 255
)

// NatureModifiers are the only accepted nature multipliers.
var NatureModifiers = []float64{0.9, 1.0, 1.1}

// GBStat computes a Game Boy era stat:
//
//	floor((2*(base+IV) + floor(ceil(sqrt(EV))/4)) * level / 100) + offset
//
// where offset is level+10 for HP and 5 otherwise.
//
// Precondition: level in [1,100], base in [1,255], EV in [0,65535], IV in [0,15].
// Postcondition: the result is deterministic in its inputs.
func GBStat(kind Kind, level, base, ev, iv int) (int, error) {
	if err := checkKind(kind, true); err != nil {
		return 0, err
	}
	if err := checkCommon(level, base); err != nil {
		return 0, err
	}
	if err := validate.CheckBounds("EV", ev, 0, generation.GameBoy.MaxEV()); err != nil {
		return 0, err
	}
	if err := validate.CheckBounds("IV", iv, 0, generation.GameBoy.MaxIV()); err != nil {
		return 0, err
	}
	inner := 2*(base+iv) + CeilSqrt(ev)/4
	return inner*level/100 + offset(kind, level), nil
}

// ModernStat computes a Generation III+ stat:
//
//	floor((2*base + IV + floor(EV/4)) * level / 100) + offset
//
// Non-HP results are then multiplied by natureModifier and floored.
//
// Precondition: kind is not Special; natureModifier is 0.9, 1.0 or 1.1;
// level in [1,100], base in [1,255], EV in [0,255], IV in [0,31].
func ModernStat(kind Kind, level int, natureModifier float64, base, ev, iv int) (int, error) {
	if err := checkKind(kind, false); err != nil {
		return 0, err
	}
	if err := validate.CheckFloatMembership("nature_modifier", natureModifier, NatureModifiers); err != nil {
		return 0, err
	}
	if err := checkCommon(level, base); err != nil {
		return 0, err
	}
	if err := validate.CheckBounds("EV", ev, 0, generation.Modern.MaxEV()); err != nil {
		return 0, err
	}
	if err := validate.CheckBounds("IV", iv, 0, generation.Modern.MaxIV()); err != nil {
		return 0, err
	}
	stat := (2*base+iv+ev/4)*level/100 + offset(kind, level)
	if kind == HP {
		return stat, nil
	}
	return stat * tenths(natureModifier) / 10, nil
}

// Compute recomputes every displayed stat of a record in game g.
//
// Precondition: base has ComputedLayout(g); evs and ivs have
// InputLayout(g.Era()). nature is ignored in the Game Boy era.
// Postcondition: the result has ComputedLayout(g).
func Compute(g generation.Game, level int, base, evs, ivs Spread, nature Nature) (Spread, error) {
	era := generation.Classify(g)
	if want := ComputedLayout(g); base.Layout() != want {
		return Spread{}, validate.Invalid("base stats", base.Layout().String(), "expected "+want.String()+" layout for "+g.String())
	}
	if want := InputLayout(era); evs.Layout() != want || ivs.Layout() != want {
		return Spread{}, validate.Invalid("EV/IV spread", evs.Layout().String(), "expected "+want.String()+" layout for "+g.String())
	}

	out := Spread{layout: ComputedLayout(g)}
	for _, k := range out.layout.Kinds() {
		var (
			v   int
			err error
		)
		switch era {
		case generation.GameBoy:
			// Generation II special stats both draw on the single Special EV and IV.
			in := k
			if k == SpecialAttack || k == SpecialDefense {
				in = Special
			}
			v, err = GBStat(k, level, base.values[k], evs.values[in], ivs.values[in])
		case generation.AdvanceGamecube, generation.Modern:
			v, err = ModernStat(k, level, nature.Modifier(k), base.values[k], evs.values[k], ivs.values[k])
		}
		if err != nil {
			return Spread{}, err
		}
		out.values[k] = v
	}
	return out, nil
}

func checkKind(kind Kind, gameBoy bool) error {
	if kind < 0 || kind >= numKinds || (!gameBoy && kind == Special) {
		valid := kindStrings(LayoutSplit.Kinds())
		if gameBoy {
			valid = kindNames[:]
		}
		return &validate.InvalidArgumentError{Field: "stat", Value: kind.String(), Valid: valid}
	}
	return nil
}

func checkCommon(level, base int) error {
	if err := validate.CheckBounds("level", level, MinLevel, MaxLevel); err != nil {
		return err
	}
	return validate.CheckBounds("base stat", base, MinBaseStat, MaxBaseStat)
}

func offset(kind Kind, level int) int {
	if kind == HP {
		return level + 10
	}
	return 5
}

// tenths converts a validated nature modifier to 9, 10 or 11 so the
// multiplication stays in integers.
func tenths(modifier float64) int {
	switch {
	case validate.FloatsClose(modifier, 0.9):
		return 9
	case validate.FloatsClose(modifier, 1.1):
		return 11
	default:
		return 10
	}
}

// CeilSqrt returns ceil(sqrt(n)) for n >= 0 without floating point.
func CeilSqrt(n int) int {
	if n <= 0 {
		return 0
	}
	r := isqrt(n)
	if r*r < n {
		r++
	}
	return r
}

func isqrt(n int) int {
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// GBHPIV derives the Game Boy era HP IV from the low bit of each other IV.
func GBHPIV(attack, defense, speed, special int) int {
	return (attack&1)<<3 | (defense&1)<<2 | (speed&1)<<1 | special&1
}
