// Package generation classifies games into generations and eras.
//
// Every era-dependent rule in the module dispatches on Era, never on game
// names, so adding a game means adding exactly one row to gameTable.
package generation

import (
	"strconv"
	"strings"

	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

// Game identifies one released main-series title.
type Game int

const (
	Red Game = iota
	Blue
	Yellow
	Gold
	Silver
	Crystal
	Ruby
	Sapphire
	Emerald
	FireRed
	LeafGreen
	Colosseum
	XD
	Diamond
	Pearl
	Platinum
	HeartGold
	SoulSilver
	Black
	White
	Black2
	White2
	X
	Y
	OmegaRuby
	AlphaSapphire

	numGames
)

// Era groups generations that share storage conventions.
type Era int

const (
	// GameBoy covers Generations I and II.
	GameBoy Era = iota
	// AdvanceGamecube covers Generation III, handheld and console.
	AdvanceGamecube
	// Modern covers Generation IV onward.
	Modern

	numEras
)

type gameInfo struct {
	name       string
	generation int
	gamecube   bool
}

var gameTable = [...]gameInfo{
	Red:           {"Red", 1, false},
	Blue:          {"Blue", 1, false},
	Yellow:        {"Yellow", 1, false},
	Gold:          {"Gold", 2, false},
	Silver:        {"Silver", 2, false},
	Crystal:       {"Crystal", 2, false},
	Ruby:          {"Ruby", 3, false},
	Sapphire:      {"Sapphire", 3, false},
	Emerald:       {"Emerald", 3, false},
	FireRed:       {"FireRed", 3, false},
	LeafGreen:     {"LeafGreen", 3, false},
	Colosseum:     {"Colosseum", 3, true},
	XD:            {"XD", 3, true},
	Diamond:       {"Diamond", 4, false},
	Pearl:         {"Pearl", 4, false},
	Platinum:      {"Platinum", 4, false},
	HeartGold:     {"HeartGold", 4, false},
	SoulSilver:    {"SoulSilver", 4, false},
	Black:         {"Black", 5, false},
	White:         {"White", 5, false},
	Black2:        {"Black 2", 5, false},
	White2:        {"White 2", 5, false},
	X:             {"X", 6, false},
	Y:             {"Y", 6, false},
	OmegaRuby:     {"Omega Ruby", 6, false},
	AlphaSapphire: {"Alpha Sapphire", 6, false},
}

// A game constant without a gameTable row fails to compile here.
var _ = [1]struct{}{}[len(gameTable)-int(numGames)]

// MaxGeneration is the newest generation any game belongs to.
const MaxGeneration = 6

// Games returns every known game in release order.
func Games() []Game {
	out := make([]Game, numGames)
	for i := range out {
		out[i] = Game(i)
	}
	return out
}

// Valid reports whether g names a known game.
func (g Game) Valid() bool { return g >= 0 && g < numGames }

func (g Game) String() string {
	if !g.Valid() {
		return "Game(" + strconv.Itoa(int(g)) + ")"
	}
	return gameTable[g].name
}

// Generation returns the generation number (1..MaxGeneration).
//
// Precondition: g.Valid().
func (g Game) Generation() int { return gameTable[g].generation }

// IsGamecube reports whether g is Colosseum or XD.
//
// Precondition: g.Valid().
func (g Game) IsGamecube() bool { return gameTable[g].gamecube }

// HasTrainerGender reports whether g stores the original trainer's gender.
// Crystal was the first game to record it.
//
// Precondition: g.Valid().
func (g Game) HasTrainerGender() bool { return g >= Crystal }

// Era returns Classify(g).
func (g Game) Era() Era { return Classify(g) }

// Classify maps a game to its era.
//
// Precondition: g.Valid().
// Postcondition: GameBoy for generations 1-2, AdvanceGamecube for 3, Modern otherwise.
func Classify(g Game) Era {
	return EraOf(g.Generation())
}

// EraOf maps a generation number to its era.
//
// Precondition: gen >= 1.
func EraOf(gen int) Era {
	switch {
	case gen <= 2:
		return GameBoy
	case gen == 3:
		return AdvanceGamecube
	default:
		return Modern
	}
}

// ParseGame resolves a game by name, ignoring case.
func ParseGame(name string) (Game, error) {
	for i, info := range gameTable {
		if strings.EqualFold(info.name, name) {
			return Game(i), nil
		}
	}
	valid := make([]string, len(gameTable))
	for i, info := range gameTable {
		valid[i] = info.name
	}
	return 0, &validate.InvalidArgumentError{Field: "game", Value: name, Valid: valid}
}

// Check returns an InvalidArgumentError unless g is a known game.
func Check(g Game) error {
	if g.Valid() {
		return nil
	}
	return validate.Invalid("game", g.String(), "unknown game")
}

// CheckGeneration returns a RangeError unless 1 <= gen <= MaxGeneration.
func CheckGeneration(gen int) error {
	return validate.CheckBounds("generation", gen, 1, MaxGeneration)
}
