package pokedex

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/cory-johannsen/pkmn/internal/game/generation"
)

// Memory is an in-memory Database. Registration is not safe for concurrent
// use; lookups are, once registration has finished.
type Memory struct {
	species map[string]*SpeciesDef
	moves   map[string]*MoveDef
}

// NewMemory creates an empty Memory.
func NewMemory() *Memory {
	return &Memory{
		species: make(map[string]*SpeciesDef),
		moves:   make(map[string]*MoveDef),
	}
}

// key folds case so that "PIKACHU" and "Pikachu" name the same entry.
// A Caser is stateful, so each call builds its own.
func key(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// RegisterSpecies validates def and adds it, replacing any entry with the
// same case-folded name.
//
// Precondition: def must not be nil.
// Postcondition: Species(def.Name, g) resolves for every g since def.Introduced,
// or an error is returned and the store is unchanged.
func (m *Memory) RegisterSpecies(def *SpeciesDef) error {
	if err := def.Validate(); err != nil {
		return fmt.Errorf("species %q: %w", def.Name, err)
	}
	m.species[key(def.Name)] = def
	return nil
}

// RegisterMove validates def and adds it, replacing any entry with the same
// case-folded name.
//
// Precondition: def must not be nil.
func (m *Memory) RegisterMove(def *MoveDef) error {
	if err := def.Validate(); err != nil {
		return fmt.Errorf("move %q: %w", def.Name, err)
	}
	m.moves[key(def.Name)] = def
	return nil
}

// Species implements Database.
func (m *Memory) Species(name string, g generation.Game) (SpeciesEntry, error) {
	if err := generation.Check(g); err != nil {
		return SpeciesEntry{}, err
	}
	def, ok := m.species[key(name)]
	if !ok {
		return SpeciesEntry{}, &NotFoundError{Kind: "species", Name: name, Game: g.String()}
	}
	return def.Entry(g)
}

// Move implements Database.
func (m *Memory) Move(name string, g generation.Game) (MoveEntry, error) {
	if err := generation.Check(g); err != nil {
		return MoveEntry{}, err
	}
	def, ok := m.moves[key(name)]
	if !ok {
		return MoveEntry{}, &NotFoundError{Kind: "move", Name: name, Game: g.String()}
	}
	return def.Entry(g)
}

// AllSpecies returns every species definition ordered by name.
func (m *Memory) AllSpecies() []*SpeciesDef {
	out := make([]*SpeciesDef, 0, len(m.species))
	for _, d := range m.species {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b *SpeciesDef) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// AllMoves returns every move definition ordered by name.
func (m *Memory) AllMoves() []*MoveDef {
	out := make([]*MoveDef, 0, len(m.moves))
	for _, d := range m.moves {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b *MoveDef) int { return strings.Compare(a.Name, b.Name) })
	return out
}
