package stats

import (
	"strconv"

	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

// Nature is one of the 25 natures, numbered as the games number them.
type Nature int

const (
	Hardy Nature = iota
	Lonely
	Brave
	Adamant
	Naughty
	Bold
	Docile
	Relaxed
	Impish
	Lax
	Timid
	Hasty
	Serious
	Jolly
	Naive
	Modest
	Mild
	Quiet
	Bashful
	Rash
	Calm
	Gentle
	Sassy
	Careful
	Quirky

	// NumNatures is the size of the nature table.
	NumNatures
)

var natureNames = [...]string{
	"Hardy", "Lonely", "Brave", "Adamant", "Naughty",
	"Bold", "Docile", "Relaxed", "Impish", "Lax",
	"Timid", "Hasty", "Serious", "Jolly", "Naive",
	"Modest", "Mild", "Quiet", "Bashful", "Rash",
	"Calm", "Gentle", "Sassy", "Careful", "Quirky",
}

var _ = [1]struct{}{}[len(natureNames)-int(NumNatures)]

// natureStats is the row/column order of the nature grid: index/5 selects
// the raised stat and index%5 the lowered one.
var natureStats = [5]Kind{Attack, Defense, Speed, SpecialAttack, SpecialDefense}

// Natures returns all natures in index order.
func Natures() []Nature {
	out := make([]Nature, NumNatures)
	for i := range out {
		out[i] = Nature(i)
	}
	return out
}

// Valid reports whether n is in [0, 25).
func (n Nature) Valid() bool { return n >= 0 && n < NumNatures }

func (n Nature) String() string {
	if !n.Valid() {
		return "Nature(" + strconv.Itoa(int(n)) + ")"
	}
	return natureNames[n]
}

// Raises returns the stat boosted by n, and false for neutral natures.
func (n Nature) Raises() (Kind, bool) {
	up, down := natureStats[n/5], natureStats[n%5]
	return up, up != down
}

// Lowers returns the stat hindered by n, and false for neutral natures.
func (n Nature) Lowers() (Kind, bool) {
	up, down := natureStats[n/5], natureStats[n%5]
	return down, up != down
}

// Modifier returns 1.1, 0.9 or 1.0 for kind under n. HP is always 1.0.
func (n Nature) Modifier(kind Kind) float64 {
	if !n.Valid() {
		return 1.0
	}
	if up, ok := n.Raises(); ok && up == kind {
		return 1.1
	}
	if down, ok := n.Lowers(); ok && down == kind {
		return 0.9
	}
	return 1.0
}

// CheckNature returns an InvalidArgumentError unless n is a known nature.
func CheckNature(n Nature) error {
	if n.Valid() {
		return nil
	}
	return &validate.InvalidArgumentError{Field: "nature", Value: strconv.Itoa(int(n)), Valid: natureNames[:]}
}

// ParseNature resolves a nature by name.
func ParseNature(name string) (Nature, error) {
	for i, n := range natureNames {
		if n == name {
			return Nature(i), nil
		}
	}
	return 0, &validate.InvalidArgumentError{Field: "nature", Value: name, Valid: natureNames[:]}
}

// NatureFromPersonality derives the nature of a Generation III+ record.
func NatureFromPersonality(pid uint32) Nature {
	return Nature(pid % uint32(NumNatures))
}
