// Package csvsrc imports pokedex content from spreadsheet exports.
package csvsrc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/cory-johannsen/pkmn/internal/game/pokedex"
	"github.com/cory-johannsen/pkmn/internal/game/typechart"
	"github.com/cory-johannsen/pkmn/internal/importer"
)

var _ importer.Source = (*Source)(nil)

// Source implements importer.Source for a directory of CSV tables:
//
//	sourceDir/
//	  species.csv            <- one row per species
//	  species_overrides.csv  <- optional; base stats up to a generation
//	  moves.csv              <- one row per move
//	  move_overrides.csv     <- optional; blank cells keep the newer value
//
// Abilities are separated by semicolons within their cell.
type Source struct{}

// NewSource constructs a Source.
func NewSource() *Source { return &Source{} }

type speciesRow struct {
	Name           string  `csv:"name"`
	Introduced     int     `csv:"introduced"`
	ChanceMale     float64 `csv:"chance_male"`
	ChanceFemale   float64 `csv:"chance_female"`
	HP             int     `csv:"hp"`
	Attack         int     `csv:"attack"`
	Defense        int     `csv:"defense"`
	Speed          int     `csv:"speed"`
	SpecialAttack  int     `csv:"special_attack"`
	SpecialDefense int     `csv:"special_defense"`
	Special        int     `csv:"special,omitempty"`
	Abilities      string  `csv:"abilities"`
	HiddenAbility  string  `csv:"hidden_ability,omitempty"`
	Height         float64 `csv:"height"`
	Weight         float64 `csv:"weight"`
	BaseFriendship int     `csv:"base_friendship"`
}

type speciesOverrideRow struct {
	Species        string `csv:"species"`
	Through        int    `csv:"through"`
	HP             int    `csv:"hp"`
	Attack         int    `csv:"attack"`
	Defense        int    `csv:"defense"`
	Speed          int    `csv:"speed"`
	SpecialAttack  int    `csv:"special_attack"`
	SpecialDefense int    `csv:"special_defense"`
	Special        int    `csv:"special,omitempty"`
}

type moveRow struct {
	Name       string         `csv:"name"`
	Introduced int            `csv:"introduced"`
	Type       typechart.Type `csv:"type"`
	Power      int            `csv:"power"`
	PP         int            `csv:"pp"`
}

type moveOverrideRow struct {
	Move    string `csv:"move"`
	Through int    `csv:"through"`
	Type    string `csv:"type,omitempty"`
	Power   *int   `csv:"power,omitempty"`
	PP      *int   `csv:"pp,omitempty"`
}

// Load reads the CSV tables rooted at sourceDir.
//
// Precondition: sourceDir must contain species.csv and moves.csv.
// Postcondition: returns Content with overrides attached in file order, or a
// non-nil error naming the offending file.
func (s *Source) Load(sourceDir string) (*importer.Content, error) {
	var species []speciesRow
	if err := readTable(filepath.Join(sourceDir, "species.csv"), &species, false); err != nil {
		return nil, err
	}
	var speciesOverrides []speciesOverrideRow
	if err := readTable(filepath.Join(sourceDir, "species_overrides.csv"), &speciesOverrides, true); err != nil {
		return nil, err
	}
	var moves []moveRow
	if err := readTable(filepath.Join(sourceDir, "moves.csv"), &moves, false); err != nil {
		return nil, err
	}
	var moveOverrides []moveOverrideRow
	if err := readTable(filepath.Join(sourceDir, "move_overrides.csv"), &moveOverrides, true); err != nil {
		return nil, err
	}

	out := &importer.Content{}
	speciesByName := make(map[string]*pokedex.SpeciesDef, len(species))
	for _, r := range species {
		def := &pokedex.SpeciesDef{
			Name:       r.Name,
			Introduced: r.Introduced,
			BaseStats: pokedex.BaseStats{
				HP: r.HP, Attack: r.Attack, Defense: r.Defense, Speed: r.Speed,
				SpecialAttack: r.SpecialAttack, SpecialDefense: r.SpecialDefense, Special: r.Special,
			},
			Abilities:      splitAbilities(r.Abilities),
			HiddenAbility:  r.HiddenAbility,
			Height:         r.Height,
			Weight:         r.Weight,
			BaseFriendship: r.BaseFriendship,
		}
		def.Gender.ChanceMale = r.ChanceMale
		def.Gender.ChanceFemale = r.ChanceFemale
		speciesByName[r.Name] = def
		out.Species = append(out.Species, def)
	}
	for _, r := range speciesOverrides {
		def, ok := speciesByName[r.Species]
		if !ok {
			return nil, fmt.Errorf("species_overrides.csv: unknown species %q", r.Species)
		}
		def.Overrides = append(def.Overrides, pokedex.SpeciesOverride{
			Through: r.Through,
			BaseStats: &pokedex.BaseStats{
				HP: r.HP, Attack: r.Attack, Defense: r.Defense, Speed: r.Speed,
				SpecialAttack: r.SpecialAttack, SpecialDefense: r.SpecialDefense, Special: r.Special,
			},
		})
	}

	movesByName := make(map[string]*pokedex.MoveDef, len(moves))
	for _, r := range moves {
		def := &pokedex.MoveDef{Name: r.Name, Introduced: r.Introduced, Type: r.Type, Power: r.Power, PP: r.PP}
		movesByName[r.Name] = def
		out.Moves = append(out.Moves, def)
	}
	for _, r := range moveOverrides {
		def, ok := movesByName[r.Move]
		if !ok {
			return nil, fmt.Errorf("move_overrides.csv: unknown move %q", r.Move)
		}
		o := pokedex.MoveOverride{Through: r.Through, Power: r.Power, PP: r.PP}
		if r.Type != "" {
			t, err := typechart.ParseType(r.Type)
			if err != nil {
				return nil, fmt.Errorf("move_overrides.csv: move %q: %w", r.Move, err)
			}
			o.Type = &t
		}
		def.Overrides = append(def.Overrides, o)
	}
	return out, nil
}

func readTable[T any](path string, rows *[]T, optional bool) error {
	f, err := os.Open(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()
	if err := gocsv.UnmarshalFile(f, rows); err != nil {
		return fmt.Errorf("parsing %q: %w", path, err)
	}
	return nil
}

func splitAbilities(cell string) []string {
	var out []string
	for _, a := range strings.Split(cell, ";") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
