package pokedex

import (
	"slices"
	"strconv"

	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/personality"
	"github.com/cory-johannsen/pkmn/internal/game/stats"
	"github.com/cory-johannsen/pkmn/internal/game/typechart"
	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

// BaseStats is a species' base stats as authored in content files.
type BaseStats struct {
	HP             int `yaml:"hp"`
	Attack         int `yaml:"attack"`
	Defense        int `yaml:"defense"`
	Speed          int `yaml:"speed"`
	SpecialAttack  int `yaml:"special_attack"`
	SpecialDefense int `yaml:"special_defense"`
	// Special is the unified Generation I stat; required for species
	// introduced in Generation I and ignored otherwise.
	Special int `yaml:"special,omitempty"`
}

func (b BaseStats) validate(needSpecial bool) error {
	checks := []struct {
		field string
		value int
	}{
		{"base hp", b.HP}, {"base attack", b.Attack}, {"base defense", b.Defense},
		{"base speed", b.Speed}, {"base special_attack", b.SpecialAttack},
		{"base special_defense", b.SpecialDefense},
	}
	if needSpecial {
		checks = append(checks, struct {
			field string
			value int
		}{"base special", b.Special})
	}
	for _, c := range checks {
		if err := validate.CheckBounds(c.field, c.value, stats.MinBaseStat, stats.MaxBaseStat); err != nil {
			return err
		}
	}
	return nil
}

// Spread lays the base stats out the way game g computes them.
func (b BaseStats) Spread(g generation.Game) (stats.Spread, error) {
	values := map[stats.Kind]int{
		stats.HP:      b.HP,
		stats.Attack:  b.Attack,
		stats.Defense: b.Defense,
		stats.Speed:   b.Speed,
	}
	layout := stats.ComputedLayout(g)
	if layout == stats.LayoutGameBoy {
		values[stats.Special] = b.Special
	} else {
		values[stats.SpecialAttack] = b.SpecialAttack
		values[stats.SpecialDefense] = b.SpecialDefense
	}
	return stats.NewSpread(layout, values)
}

// SpeciesOverride replaces values for every generation up to and including
// Through.
type SpeciesOverride struct {
	Through   int        `yaml:"through"`
	BaseStats *BaseStats `yaml:"base_stats,omitempty"`
}

// SpeciesDef is the static definition of a species, loaded from YAML.
type SpeciesDef struct {
	Name           string                    `yaml:"name"`
	Introduced     int                       `yaml:"introduced"`
	Gender         personality.GenderProfile `yaml:"gender"`
	BaseStats      BaseStats                 `yaml:"base_stats"`
	Abilities      []string                  `yaml:"abilities"`
	HiddenAbility  string                    `yaml:"hidden_ability,omitempty"`
	Height         float64                   `yaml:"height"`
	Weight         float64                   `yaml:"weight"`
	BaseFriendship int                       `yaml:"base_friendship"`
	// Overrides are ordered by strictly increasing Through.
	Overrides []SpeciesOverride `yaml:"overrides,omitempty"`
}

// Validate checks every field of the definition.
//
// Postcondition: Returns nil, or the first violation found.
func (d *SpeciesDef) Validate() error {
	if d.Name == "" {
		return validate.Invalid("species name", d.Name, "must not be empty")
	}
	if err := validate.CheckBounds("introduced", d.Introduced, 1, generation.MaxGeneration); err != nil {
		return err
	}
	if err := d.Gender.Validate(); err != nil {
		return err
	}
	if err := d.BaseStats.validate(d.Introduced == 1); err != nil {
		return err
	}
	if len(d.Abilities) < 1 || len(d.Abilities) > 2 {
		return validate.Invalid("abilities", strconv.Itoa(len(d.Abilities)), "a species has one or two abilities")
	}
	for _, a := range d.Abilities {
		if a == "" {
			return validate.Invalid("ability", a, "must not be empty")
		}
	}
	if err := validate.CheckFloatMinimum("height", d.Height, 0, true); err != nil {
		return err
	}
	if err := validate.CheckFloatMinimum("weight", d.Weight, 0, true); err != nil {
		return err
	}
	if err := validate.CheckBounds("base_friendship", d.BaseFriendship, 0, 255); err != nil {
		return err
	}
	prev := d.Introduced - 1
	for _, o := range d.Overrides {
		if err := validate.CheckBounds("override through", o.Through, prev+1, generation.MaxGeneration-1); err != nil {
			return err
		}
		if o.BaseStats != nil {
			if err := o.BaseStats.validate(d.Introduced == 1); err != nil {
				return err
			}
		}
		prev = o.Through
	}
	return nil
}

// Entry resolves the definition for game g.
//
// Precondition: d passed Validate; g is a known game.
// Postcondition: Returns a NotFoundError when g predates the species.
func (d *SpeciesDef) Entry(g generation.Game) (SpeciesEntry, error) {
	gen := g.Generation()
	if gen < d.Introduced {
		return SpeciesEntry{}, &NotFoundError{Kind: "species", Name: d.Name, Game: g.String()}
	}
	base := d.BaseStats
	for _, o := range slices.Backward(d.Overrides) {
		if gen <= o.Through && o.BaseStats != nil {
			base = *o.BaseStats
		}
	}
	spread, err := base.Spread(g)
	if err != nil {
		return SpeciesEntry{}, err
	}
	e := SpeciesEntry{
		Name:           d.Name,
		Game:           g,
		Gender:         d.Gender,
		BaseStats:      spread,
		Height:         d.Height,
		Weight:         d.Weight,
		BaseFriendship: d.BaseFriendship,
	}
	if gen >= 3 {
		e.Abilities = append([]string(nil), d.Abilities...)
	}
	if gen >= 5 {
		e.HiddenAbility = d.HiddenAbility
	}
	return e, nil
}

// MoveOverride replaces values for every generation up to and including
// Through. Nil fields keep the newer value. When several overrides cover a
// generation the one with the smallest Through wins.
type MoveOverride struct {
	Through int             `yaml:"through"`
	Type    *typechart.Type `yaml:"type,omitempty"`
	Power   *int            `yaml:"power,omitempty"`
	PP      *int            `yaml:"pp,omitempty"`
}

// MoveDef is the static definition of a move, loaded from YAML.
type MoveDef struct {
	Name       string         `yaml:"name"`
	Introduced int            `yaml:"introduced"`
	Type       typechart.Type `yaml:"type"`
	Power      int            `yaml:"power"`
	PP         int            `yaml:"pp"`
	// Overrides are ordered by strictly increasing Through.
	Overrides []MoveOverride `yaml:"overrides,omitempty"`
}

// Validate checks every field of the definition, including that each
// generation's resolved type exists in that generation.
func (d *MoveDef) Validate() error {
	if d.Name == "" {
		return validate.Invalid("move name", d.Name, "must not be empty")
	}
	if err := validate.CheckBounds("introduced", d.Introduced, 1, generation.MaxGeneration); err != nil {
		return err
	}
	prev := d.Introduced - 1
	for _, o := range d.Overrides {
		if err := validate.CheckBounds("override through", o.Through, prev+1, generation.MaxGeneration-1); err != nil {
			return err
		}
		prev = o.Through
	}
	for gen := d.Introduced; gen <= generation.MaxGeneration; gen++ {
		typ, power, pp := d.resolve(gen)
		if err := typechart.CheckAvailable("move type", typ, gen); err != nil {
			return err
		}
		if err := validate.CheckBounds("power", power, 0, 250); err != nil {
			return err
		}
		if err := validate.CheckBounds("pp", pp, 1, 40); err != nil {
			return err
		}
	}
	return nil
}

func (d *MoveDef) resolve(gen int) (typechart.Type, int, int) {
	typ, power, pp := d.Type, d.Power, d.PP
	for _, o := range slices.Backward(d.Overrides) {
		if gen > o.Through {
			continue
		}
		if o.Type != nil {
			typ = *o.Type
		}
		if o.Power != nil {
			power = *o.Power
		}
		if o.PP != nil {
			pp = *o.PP
		}
	}
	return typ, power, pp
}

// Entry resolves the definition for game g.
//
// Precondition: d passed Validate; g is a known game.
// Postcondition: Returns a NotFoundError when g predates the move.
func (d *MoveDef) Entry(g generation.Game) (MoveEntry, error) {
	gen := g.Generation()
	if gen < d.Introduced {
		return MoveEntry{}, &NotFoundError{Kind: "move", Name: d.Name, Game: g.String()}
	}
	typ, power, pp := d.resolve(gen)
	return MoveEntry{Name: d.Name, Game: g, Type: typ, Power: power, PP: pp}, nil
}
