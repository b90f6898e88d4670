// Package stats computes battle stats for every generation and models the
// per-era stat layouts used by EV, IV and computed-stat spreads.
package stats

import (
	"strconv"

	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

// Kind identifies a battle stat.
type Kind int

const (
	HP Kind = iota
	Attack
	Defense
	Speed
	// Special exists only in the Game Boy era, where it stands in for both
	// SpecialAttack and SpecialDefense.
	Special
	SpecialAttack
	SpecialDefense

	numKinds
)

var kindNames = [...]string{
	HP:             "HP",
	Attack:         "Attack",
	Defense:        "Defense",
	Speed:          "Speed",
	Special:        "Special",
	SpecialAttack:  "Special Attack",
	SpecialDefense: "Special Defense",
}

var _ = [1]struct{}{}[len(kindNames)-int(numKinds)]

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// ParseKind resolves a stat by its display name.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, &validate.InvalidArgumentError{Field: "stat", Value: name, Valid: kindNames[:]}
}

// Layout is the set of stats a spread carries.
type Layout int

const (
	// LayoutGameBoy is HP, Attack, Defense, Speed, Special.
	LayoutGameBoy Layout = iota
	// LayoutSplit is HP, Attack, Defense, Speed, Special Attack, Special Defense.
	LayoutSplit
)

var layoutKinds = [...][]Kind{
	LayoutGameBoy: {HP, Attack, Defense, Speed, Special},
	LayoutSplit:   {HP, Attack, Defense, Speed, SpecialAttack, SpecialDefense},
}

func (l Layout) String() string {
	if l == LayoutGameBoy {
		return "Game Boy"
	}
	return "split"
}

// Kinds returns the stats in this layout, in canonical order.
func (l Layout) Kinds() []Kind {
	return append([]Kind(nil), layoutKinds[l]...)
}

// Has reports whether k belongs to the layout.
func (l Layout) Has(k Kind) bool {
	for _, lk := range layoutKinds[l] {
		if lk == k {
			return true
		}
	}
	return false
}

// InputLayout is the layout of EV and IV spreads for an era. Game Boy games
// store a single Special value for both special stats.
func InputLayout(e generation.Era) Layout {
	if e == generation.GameBoy {
		return LayoutGameBoy
	}
	return LayoutSplit
}

// ComputedLayout is the layout of the battle stats a game displays.
// Generation II already splits Special for computed stats even though its
// EVs and IVs still use a single Special value.
func ComputedLayout(g generation.Game) Layout {
	if g.Generation() == 1 {
		return LayoutGameBoy
	}
	return LayoutSplit
}
