package convert

import (
	"strconv"

	"github.com/cory-johannsen/pkmn/internal/game/attributes"
	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/personality"
	"github.com/cory-johannsen/pkmn/internal/game/pokedex"
	"github.com/cory-johannsen/pkmn/internal/game/stats"
	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

// Validate checks every field of r against the rules of r.Game and returns
// the species entry r refers to.
//
// Postcondition: Returns the first violation found, unwrapped.
func Validate(db pokedex.Database, r Record) (pokedex.SpeciesEntry, error) {
	if err := generation.Check(r.Game); err != nil {
		return pokedex.SpeciesEntry{}, err
	}
	era := generation.Classify(r.Game)
	species, err := db.Species(r.Species, r.Game)
	if err != nil {
		return pokedex.SpeciesEntry{}, err
	}
	if err := validate.CheckBounds("level", r.Level, stats.MinLevel, stats.MaxLevel); err != nil {
		return species, err
	}
	if err := validate.CheckMinimum("experience", r.Experience, 0); err != nil {
		return species, err
	}
	if err := validateMoves(db, r); err != nil {
		return species, err
	}
	if err := validateSpreads(r, era); err != nil {
		return species, err
	}
	if err := validateTrainer(r, era); err != nil {
		return species, err
	}
	if err := attributes.Default().CheckCondition(r.Game, r.Condition); err != nil {
		return species, err
	}
	if r.Game.Generation() == 1 {
		if r.HeldItem != "" {
			return species, validate.NotInEra("held item", r.Game.String())
		}
		if r.Friendship != 0 {
			return species, validate.NotInEra("friendship", r.Game.String())
		}
	} else if err := validate.CheckBounds("friendship", r.Friendship, 0, 255); err != nil {
		return species, err
	}
	return species, validateModern(r, era, species)
}

func validateMoves(db pokedex.Database, r Record) error {
	if err := validate.CheckBounds("move count", len(r.Moves), 1, MaxMoves); err != nil {
		return err
	}
	for i, m := range r.Moves {
		entry, err := db.Move(m.Name, r.Game)
		if err != nil {
			return err
		}
		field := "move " + strconv.Itoa(i+1) + " PP"
		if err := validate.CheckBounds(field, m.PP, 0, entry.PPTable()[pokedex.MaxPPUps]); err != nil {
			return err
		}
	}
	return nil
}

func validateSpreads(r Record, era generation.Era) error {
	want := stats.InputLayout(era)
	for _, s := range []struct {
		field  string
		spread stats.Spread
		max    int
	}{{"EV", r.EVs, era.MaxEV()}, {"IV", r.IVs, era.MaxIV()}} {
		if s.spread.Layout() != want {
			return validate.Invalid(s.field+" layout", s.spread.Layout().String(), "expected "+want.String()+" for "+r.Game.String())
		}
		if err := s.spread.CheckBounds(s.field, 0, s.max); err != nil {
			return err
		}
	}
	if era == generation.GameBoy {
		iv := r.IVs
		hp := stats.GBHPIV(iv.MustGet(stats.Attack), iv.MustGet(stats.Defense), iv.MustGet(stats.Speed), iv.MustGet(stats.Special))
		if got := iv.MustGet(stats.HP); got != hp {
			return validate.Invalid("IV_hp", strconv.Itoa(got), "must equal "+strconv.Itoa(hp)+", the value derived from the other IVs")
		}
	}
	return nil
}

func validateTrainer(r Record, era generation.Era) error {
	hasSecret := era.TrainerIDBits() > 16
	if r.Trainer.ID.HasSecret != hasSecret {
		if hasSecret {
			return validate.Invalid("trainer secret ID", "absent", "required in "+r.Game.String())
		}
		return validate.NotInEra("trainer secret ID", r.Game.String())
	}
	if r.Trainer.Gender != personality.AnyGender && !r.Game.HasTrainerGender() {
		return validate.NotInEra("trainer gender", r.Game.String())
	}
	return nil
}

func validateModern(r Record, era generation.Era, species pokedex.SpeciesEntry) error {
	if era == generation.GameBoy {
		if r.Modern != nil {
			return validate.NotInEra("personality", r.Game.String())
		}
		return nil
	}
	m := r.Modern
	if m == nil {
		return validate.Invalid("personality", "absent", "required in "+r.Game.String())
	}
	if !species.HasAbility(m.Ability) {
		valid := append([]string(nil), species.Abilities...)
		if species.HiddenAbility != "" {
			valid = append(valid, species.HiddenAbility)
		}
		return &validate.InvalidArgumentError{Field: "ability", Value: m.Ability, Valid: valid}
	}
	if m.Ball == "" {
		return validate.Invalid("ball", m.Ball, "must not be empty")
	}
	reg := attributes.Default()
	if _, err := reg.EncodeMarkings(r.Game, m.Markings); err != nil {
		return err
	}
	for _, rb := range m.Ribbons {
		if err := reg.CheckRibbon(r.Game, rb); err != nil {
			return err
		}
	}
	for stat, v := range m.Contest {
		if _, err := reg.ContestIndex(r.Game, stat); err != nil {
			return err
		}
		if err := validate.CheckBounds("contest "+stat.String(), v, 0, 255); err != nil {
			return err
		}
	}
	return nil
}
