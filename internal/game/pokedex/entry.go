// Package pokedex is the read-only species and move reference data the rules
// core consumes, with an in-memory store loaded from YAML content.
package pokedex

import (
	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/personality"
	"github.com/cory-johannsen/pkmn/internal/game/stats"
	"github.com/cory-johannsen/pkmn/internal/game/typechart"
)

// Database answers keyed species and move lookups for one game at a time.
// Implementations MUST be safe for concurrent use and MUST report missing
// keys with an error satisfying errors.Is(err, ErrNotFound).
type Database interface {
	Species(name string, g generation.Game) (SpeciesEntry, error)
	Move(name string, g generation.Game) (MoveEntry, error)
}

// SpeciesEntry is a species as one game sees it.
type SpeciesEntry struct {
	Name   string
	Game   generation.Game
	Gender personality.GenderProfile
	// BaseStats has stats.ComputedLayout(Game).
	BaseStats stats.Spread
	// Abilities holds one or two names from Generation III on, nil before.
	Abilities []string
	// HiddenAbility is empty before Generation V.
	HiddenAbility  string
	Height         float64 // metres
	Weight         float64 // kilograms
	BaseFriendship int
}

// HasAbility reports whether name is a regular or hidden ability of the species.
func (s SpeciesEntry) HasAbility(name string) bool {
	if name == "" {
		return false
	}
	for _, a := range s.Abilities {
		if a == name {
			return true
		}
	}
	return name == s.HiddenAbility
}

// Ability returns the ability in slot, falling back to the first ability
// when the species has only one.
//
// Precondition: the species has abilities (Generation III on).
func (s SpeciesEntry) Ability(slot personality.AbilitySlot) string {
	if len(s.Abilities) == 0 {
		return ""
	}
	if slot == personality.SecondAbility && len(s.Abilities) > 1 {
		return s.Abilities[1]
	}
	return s.Abilities[0]
}

// MoveEntry is a move as one game sees it.
type MoveEntry struct {
	Name  string
	Game  generation.Game
	Type  typechart.Type
	Power int // 0 for status moves and variable-power moves
	PP    int
}

// MaxPPUps is the number of PP Ups a move slot accepts.
const MaxPPUps = 3

// PPTable returns the move's maximum PP after 0 to MaxPPUps PP Ups. Each PP Up
// adds a fifth of the base PP, rounded down.
func (m MoveEntry) PPTable() [MaxPPUps + 1]int {
	var out [MaxPPUps + 1]int
	for ups := range out {
		out[ups] = m.PP + m.PP*ups/5
	}
	return out
}
