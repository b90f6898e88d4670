package personality

import (
	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/stats"
	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

// GBUnownForm derives a Generation II Unown letter (A..Z) from its IVs.
//
// Precondition: all IVs in [0,15].
func GBUnownForm(attack, defense, speed, special int) (string, error) {
	for _, iv := range []struct {
		name  string
		value int
	}{{"IV_attack", attack}, {"IV_defense", defense}, {"IV_speed", speed}, {"IV_special", special}} {
		if err := validate.CheckBounds(iv.name, iv.value, 0, generation.GameBoy.MaxIV()); err != nil {
			return "", err
		}
	}
	v := (attack&0x6)<<5 | (defense&0x6)<<3 | (speed&0x6)<<1 | (special&0x6)>>1
	return string(rune('A' + v/10)), nil
}

// UnownForm derives a Generation III+ Unown form from the personality: A..Z,
// then "?" and "!".
func UnownForm(pid uint32) string {
	b0, b1, b2, b3 := pid&0xFF, (pid>>8)&0xFF, (pid>>16)&0xFF, pid>>24
	v := ((b3&0x3)<<6 | (b2&0x3)<<4 | (b1&0x3)<<2 | b0&0x3) % 28
	switch v {
	case 26:
		return "?"
	case 27:
		return "!"
	}
	return string(rune('A' + v))
}

type sizeBand struct {
	upper   int
	x, y, z int
}

// sizeBands is ordered by upper bound.
var sizeBands = []sizeBand{
	{9, 290, 1, 0},
	{109, 300, 1, 10},
	{309, 400, 2, 110},
	{709, 500, 4, 310},
	{2709, 600, 20, 710},
	{7709, 700, 50, 2710},
	{17709, 800, 100, 7710},
	{32709, 900, 150, 17710},
	{47709, 1000, 150, 32710},
	{57709, 1100, 100, 47710},
	{62709, 1200, 50, 57710},
	{64709, 1300, 20, 62710},
	{65209, 1400, 5, 64710},
	{65409, 1500, 2, 65210},
	{65535, 1600, 1, 65410},
}

// SizeMillimetres computes the Generation III+ recorded size of a Pokémon
// from its personality, IVs and species height in metres.
//
// Precondition: ivs has the split layout with values in [0,31]; height > 0.
func SizeMillimetres(height float64, pid uint32, ivs stats.Spread) (int, error) {
	if err := validate.CheckFloatMinimum("height", height, 0, true); err != nil {
		return 0, err
	}
	if ivs.Layout() != stats.LayoutSplit {
		return 0, validate.Invalid("IVs", ivs.Layout().String(), "size requires the split stat layout")
	}
	if err := ivs.CheckBounds("IV", 0, generation.Modern.MaxIV()); err != nil {
		return 0, err
	}
	iv := func(k stats.Kind) int { return ivs.MustGet(k) % 16 }
	p1, p2 := int(pid&0xFF), int((pid>>8)&0xFF)

	s := (((iv(stats.Attack)^iv(stats.Defense))*iv(stats.HP))^p1)*256 +
		(((iv(stats.SpecialAttack) ^ iv(stats.SpecialDefense)) * iv(stats.Speed)) ^ p2)

	band := sizeBands[len(sizeBands)-1]
	for _, b := range sizeBands {
		if s <= b.upper {
			band = b
			break
		}
	}
	decimetres := int(height*10 + 0.5)
	return ((s-band.z)/band.y + band.x) * decimetres / 10, nil
}
