// Package convert re-expresses a Pokémon record from one game's semantics in
// another's.
package convert

import (
	"maps"
	"slices"

	"github.com/cory-johannsen/pkmn/internal/game/attributes"
	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/personality"
	"github.com/cory-johannsen/pkmn/internal/game/stats"
	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

// MaxMoves is the number of move slots a record has.
const MaxMoves = 4

// DefaultBall is the ball a record gains when it enters an era that stores one.
const DefaultBall = "Premier Ball"

// Move is one move slot.
type Move struct {
	Name string
	PP   int
}

// OriginalTrainer identifies the trainer who first caught the Pokémon.
type OriginalTrainer struct {
	Name   string
	ID     personality.TrainerID
	Gender personality.Gender
}

// ModernFields are the attributes that exist from Generation III on.
type ModernFields struct {
	Personality uint32
	Ability     string
	Ball        string
	Markings    []attributes.Marking
	Ribbons     []string
	Contest     map[attributes.ContestStat]int
}

func (m *ModernFields) clone() *ModernFields {
	if m == nil {
		return nil
	}
	c := *m
	c.Markings = slices.Clone(m.Markings)
	c.Ribbons = slices.Clone(m.Ribbons)
	c.Contest = maps.Clone(m.Contest)
	return &c
}

// Record is a Pokémon in the semantics of Game.
//
// Invariant: EVs and IVs have stats.InputLayout(Game.Era()); Stats, when set,
// has stats.ComputedLayout(Game); Modern is nil exactly in the Game Boy era.
type Record struct {
	Game       generation.Game
	Species    string
	Form       string
	Nickname   string
	Level      int
	Experience int
	Moves      []Move
	EVs        stats.Spread
	IVs        stats.Spread
	Stats      stats.Spread
	Trainer    OriginalTrainer
	Condition  attributes.Condition
	// HeldItem and Friendship are always empty in Generation I.
	HeldItem   string
	Friendship int
	Modern     *ModernFields
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	c := r
	c.Moves = slices.Clone(r.Moves)
	c.Modern = r.Modern.clone()
	return c
}

func (r Record) modern(feature string) (*ModernFields, error) {
	if r.Modern == nil || generation.Classify(r.Game) == generation.GameBoy {
		return nil, validate.NotInEra(feature, r.Game.String())
	}
	return r.Modern, nil
}

// Personality returns the personality value.
func (r Record) Personality() (uint32, error) {
	m, err := r.modern("personality")
	if err != nil {
		return 0, err
	}
	return m.Personality, nil
}

// Ability returns the ability name.
func (r Record) Ability() (string, error) {
	m, err := r.modern("ability")
	if err != nil {
		return "", err
	}
	return m.Ability, nil
}

// Ball returns the ball the Pokémon was caught in.
func (r Record) Ball() (string, error) {
	m, err := r.modern("ball")
	if err != nil {
		return "", err
	}
	return m.Ball, nil
}

// Markings returns a copy of the markings.
func (r Record) Markings() ([]attributes.Marking, error) {
	m, err := r.modern("markings")
	if err != nil {
		return nil, err
	}
	return slices.Clone(m.Markings), nil
}

// Ribbons returns a copy of the ribbons.
func (r Record) Ribbons() ([]string, error) {
	m, err := r.modern("ribbons")
	if err != nil {
		return nil, err
	}
	return slices.Clone(m.Ribbons), nil
}

// ContestStats returns a copy of the contest stats.
func (r Record) ContestStats() (map[attributes.ContestStat]int, error) {
	m, err := r.modern("contest stats")
	if err != nil {
		return nil, err
	}
	return maps.Clone(m.Contest), nil
}
