package convert

import (
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/pkmn/internal/game/attributes"
	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/personality"
	"github.com/cory-johannsen/pkmn/internal/game/pokedex"
	"github.com/cory-johannsen/pkmn/internal/game/rng"
	"github.com/cory-johannsen/pkmn/internal/game/stats"
)

// Report describes what a conversion could not carry over verbatim.
type Report struct {
	ID   uuid.UUID
	From generation.Game
	To   generation.Game
	// SecretIDSynthesized is set when a 16-bit trainer ID gained a zero
	// secret half the destination will treat as genuine.
	SecretIDSynthesized bool
	// SecretIDDropped is set when narrowing discarded the secret half.
	SecretIDDropped bool
	// PersonalitySynthesized is set when a personality value was generated
	// to reproduce the source's gender and shininess.
	PersonalitySynthesized bool
	// ShininessLost is set when no Game Boy IV set could express both the
	// source's gender and its shininess.
	ShininessLost bool
	Dropped       []string
	Defaulted     []string
}

func (r *Report) drop(field string)       { r.Dropped = append(r.Dropped, field) }
func (r *Report) defaulted(field string) { r.Defaulted = append(r.Defaulted, field) }

// Converter converts records between games using one species and move database.
// It is safe for concurrent use when db is.
type Converter struct {
	db     pokedex.Database
	gen    *personality.Generator
	logger *zap.Logger
}

// NewConverter creates a Converter.
//
// Precondition: db, gen and logger must be non-nil.
func NewConverter(db pokedex.Database, gen *personality.Generator, logger *zap.Logger) *Converter {
	return &Converter{db: db, gen: gen, logger: logger}
}

// Validate checks src against the rules of src.Game.
func (c *Converter) Validate(src Record) error {
	_, err := Validate(c.db, src)
	return err
}

// Gender derives the displayed gender of r using the database's profile.
func (c *Converter) Gender(r Record) (personality.Gender, error) {
	species, err := c.db.Species(r.Species, r.Game)
	if err != nil {
		return personality.AnyGender, err
	}
	return Gender(r, species.Gender)
}

// Convert produces the equivalent of src in game dest. rnd is only drawn from
// when a personality value must be synthesized.
//
// Precondition: src is valid for src.Game.
// Postcondition: src is unchanged. On error no record is returned.
func (c *Converter) Convert(src Record, dest generation.Game, rnd rng.Source) (Record, Report, error) {
	out, report, err := c.convert(src, dest, rnd)
	if err != nil {
		c.logger.Warn("conversion failed",
			zap.Stringer("from", src.Game),
			zap.Stringer("to", dest),
			zap.String("species", src.Species),
			zap.Error(err),
		)
		return Record{}, Report{}, err
	}
	c.logger.Debug("record converted",
		zap.Stringer("report_id", report.ID),
		zap.Stringer("from", report.From),
		zap.Stringer("to", report.To),
		zap.String("species", out.Species),
		zap.Bool("secret_id_synthesized", report.SecretIDSynthesized),
		zap.Bool("secret_id_dropped", report.SecretIDDropped),
		zap.Bool("personality_synthesized", report.PersonalitySynthesized),
		zap.Bool("shininess_lost", report.ShininessLost),
		zap.Strings("dropped", report.Dropped),
		zap.Strings("defaulted", report.Defaulted),
	)
	return out, report, nil
}

func (c *Converter) convert(src Record, dest generation.Game, rnd rng.Source) (Record, Report, error) {
	if err := generation.Check(dest); err != nil {
		return Record{}, Report{}, err
	}
	srcSpecies, err := Validate(c.db, src)
	if err != nil {
		return Record{}, Report{}, err
	}
	destSpecies, err := c.db.Species(src.Species, dest)
	if err != nil {
		return Record{}, Report{}, err
	}
	srcEra, destEra := generation.Classify(src.Game), generation.Classify(dest)
	report := Report{ID: uuid.New(), From: src.Game, To: dest}

	gender, err := Gender(src, srcSpecies.Gender)
	if err != nil {
		return Record{}, Report{}, err
	}
	shiny, err := Shiny(src)
	if err != nil {
		return Record{}, Report{}, err
	}

	out := Record{
		Game:       dest,
		Species:    destSpecies.Name,
		Form:       src.Form,
		Nickname:   src.Nickname,
		Level:      src.Level,
		Experience: src.Experience,
		Trainer:    convertTrainer(src.Trainer, dest, &report),
		HeldItem:   src.HeldItem,
		Friendship: src.Friendship,
	}
	if out.Moves, err = c.convertMoves(src.Moves, dest); err != nil {
		return Record{}, Report{}, err
	}
	if out.EVs, err = reinterpret(src.EVs, srcEra, destEra, widenEV, narrowEV); err != nil {
		return Record{}, Report{}, err
	}
	if out.IVs, err = reinterpret(src.IVs, srcEra, destEra, widenIV, narrowIV); err != nil {
		return Record{}, Report{}, err
	}
	if destEra == generation.GameBoy && srcEra != generation.GameBoy {
		if out.IVs, err = gbExpress(out.IVs, destSpecies.Gender, gender, shiny, &report); err != nil {
			return Record{}, Report{}, err
		}
	}

	out.Condition = src.Condition
	if destEra == generation.GameBoy && src.Condition == attributes.BadlyPoisoned {
		out.Condition = attributes.Poisoned
		report.drop("condition:" + attributes.BadlyPoisoned.String())
	}

	// A held item only survives a conversion within its own generation.
	if src.HeldItem != "" && src.Game.Generation() != dest.Generation() {
		out.HeldItem = ""
		report.drop("held_item")
	}
	switch {
	case dest.Generation() == 1:
		if src.Game.Generation() > 1 {
			report.drop("friendship")
		}
		out.Friendship = 0
	case src.Game.Generation() == 1:
		out.Friendship = destSpecies.BaseFriendship
		report.defaulted("friendship")
	}

	if destEra != generation.GameBoy {
		if out.Modern, err = c.convertModern(src, srcEra, out, destSpecies, gender, shiny, rnd, &report); err != nil {
			return Record{}, Report{}, err
		}
	} else if src.Modern != nil {
		report.drop("personality")
		report.drop("ability")
		report.drop("ball")
		if len(src.Modern.Markings) > 0 {
			report.drop("markings")
		}
		if len(src.Modern.Ribbons) > 0 {
			report.drop("ribbons")
		}
		if len(src.Modern.Contest) > 0 {
			report.drop("contest")
		}
	}

	nature := stats.Hardy
	if out.Modern != nil {
		nature = stats.NatureFromPersonality(out.Modern.Personality)
	}
	if out.Stats, err = stats.Compute(dest, out.Level, destSpecies.BaseStats, out.EVs, out.IVs, nature); err != nil {
		return Record{}, Report{}, err
	}
	return out, report, nil
}

func convertTrainer(t OriginalTrainer, dest generation.Game, report *Report) OriginalTrainer {
	if t.Gender != personality.AnyGender && !dest.HasTrainerGender() {
		t.Gender = personality.AnyGender
		report.drop("trainer_gender")
	}
	wide := generation.Classify(dest).TrainerIDBits() > 16
	switch {
	case wide && !t.ID.HasSecret:
		t.ID = personality.TrainerID{Public: t.ID.Public, HasSecret: true}
		report.SecretIDSynthesized = true
	case !wide && t.ID.HasSecret:
		t.ID = personality.GBTrainerID(t.ID.Public)
		report.SecretIDDropped = true
		report.drop("secret_id")
	}
	return t
}

func (c *Converter) convertMoves(moves []Move, dest generation.Game) ([]Move, error) {
	out := make([]Move, len(moves))
	for i, m := range moves {
		entry, err := c.db.Move(m.Name, dest)
		if err != nil {
			return nil, err
		}
		out[i] = Move{Name: entry.Name, PP: entry.PP}
	}
	return out, nil
}

func (c *Converter) convertModern(
	src Record,
	srcEra generation.Era,
	out Record,
	species pokedex.SpeciesEntry,
	gender personality.Gender,
	shiny bool,
	rnd rng.Source,
	report *Report,
) (*ModernFields, error) {
	reg := attributes.Default()
	contestStats, err := reg.ContestStats(out.Game)
	if err != nil {
		return nil, err
	}

	if srcEra == generation.GameBoy {
		req := personality.Request{
			TrainerID: out.Trainer.ID.Full(),
			Profile:   species.Gender,
			Gender:    gender,
			Shiny:     shiny,
			Ability:   personality.FirstAbility,
		}
		if _, fixed := species.Gender.Fixed(); fixed {
			req.Gender = personality.AnyGender
		}
		pid, err := c.gen.Generate(req, rnd)
		if err != nil {
			return nil, err
		}
		report.PersonalitySynthesized = true
		m := &ModernFields{
			Personality: pid,
			Ability:     species.Ability(personality.FirstAbility),
			Ball:        DefaultBall,
			Contest:     make(map[attributes.ContestStat]int, len(contestStats)),
		}
		for _, s := range contestStats {
			m.Contest[s] = 0
		}
		for _, f := range []string{"personality", "ability", "ball", "markings", "ribbons", "contest"} {
			report.defaulted(f)
		}
		return m, nil
	}

	m := src.Modern.clone()
	if !species.HasAbility(m.Ability) {
		m.Ability = species.Ability(personality.AbilitySlotFromPersonality(m.Personality))
		report.defaulted("ability")
	}

	valid, err := reg.Markings(out.Game)
	if err != nil {
		return nil, err
	}
	m.Markings = slices.DeleteFunc(m.Markings, func(mk attributes.Marking) bool {
		if slices.Contains(valid, mk) {
			return false
		}
		report.drop("marking:" + mk.String())
		return true
	})

	m.Ribbons = slices.DeleteFunc(m.Ribbons, func(name string) bool {
		if reg.HasRibbon(out.Game, name) {
			return false
		}
		report.drop("ribbon:" + name)
		return true
	})

	contest := make(map[attributes.ContestStat]int, len(contestStats))
	for _, s := range contestStats {
		contest[s] = 0
	}
	for s, v := range m.Contest {
		s = counterpart(s, contestStats)
		if _, ok := contest[s]; !ok {
			report.drop("contest:" + s.String())
			continue
		}
		contest[s] = v
	}
	m.Contest = contest
	return m, nil
}

// counterpart maps Feel and Sheen onto whichever of the two the destination has.
func counterpart(s attributes.ContestStat, have []attributes.ContestStat) attributes.ContestStat {
	if slices.Contains(have, s) {
		return s
	}
	switch s {
	case attributes.Feel:
		return attributes.Sheen
	case attributes.Sheen:
		return attributes.Feel
	}
	return s
}
