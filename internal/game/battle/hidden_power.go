package battle

import (
	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/stats"
	"github.com/cory-johannsen/pkmn/internal/game/typechart"
	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

// HiddenPower is the type and base power Hidden Power takes for an IV set.
type HiddenPower struct {
	Type  typechart.Type
	Power int
}

// Hidden Power can never be Normal, so type indices start at Fighting.
const hiddenPowerTypeOffset = int(typechart.Fighting)

// GBHiddenPower derives Generation II Hidden Power from the four Game Boy IVs.
//
// Precondition: all IVs in [0,15].
func GBHiddenPower(attack, defense, speed, special int) (HiddenPower, error) {
	for _, iv := range []struct {
		name  string
		value int
	}{{"IV_attack", attack}, {"IV_defense", defense}, {"IV_speed", speed}, {"IV_special", special}} {
		if err := validate.CheckBounds(iv.name, iv.value, 0, generation.GameBoy.MaxIV()); err != nil {
			return HiddenPower{}, err
		}
	}
	msb := func(iv int) int { return (iv >> 3) & 1 }
	bits := msb(special) | msb(speed)<<1 | msb(defense)<<2 | msb(attack)<<3
	return HiddenPower{
		Type:  typechart.Type(4*(attack%4) + defense%4 + hiddenPowerTypeOffset),
		Power: (5*bits+special%4)/2 + 31,
	}, nil
}

// HiddenPowerFromIVs derives Generation III+ Hidden Power from a split IV spread.
//
// Precondition: ivs has the split layout with values in [0,31].
func HiddenPowerFromIVs(ivs stats.Spread) (HiddenPower, error) {
	if ivs.Layout() != stats.LayoutSplit {
		return HiddenPower{}, validate.Invalid("IVs", ivs.Layout().String(), "Hidden Power requires the split stat layout")
	}
	if err := ivs.CheckBounds("IV", 0, generation.Modern.MaxIV()); err != nil {
		return HiddenPower{}, err
	}
	order := []stats.Kind{stats.HP, stats.Attack, stats.Defense, stats.Speed, stats.SpecialAttack, stats.SpecialDefense}
	typeBits, powerBits := 0, 0
	for i, k := range order {
		iv := ivs.MustGet(k)
		typeBits |= (iv & 1) << i
		powerBits |= ((iv >> 1) & 1) << i
	}
	return HiddenPower{
		Type:  typechart.Type(typeBits*15/63 + hiddenPowerTypeOffset),
		Power: powerBits*40/63 + 30,
	}, nil
}
