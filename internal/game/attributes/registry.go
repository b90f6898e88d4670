package attributes

import (
	"slices"
	"sync"

	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/personality"
	"github.com/cory-johannsen/pkmn/internal/game/stats"
	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

// Registry holds every (attribute, variant) mapping. It is immutable after
// construction and safe for concurrent use.
type Registry struct {
	statGB, statGBA, statGCN           *Bimap[stats.Kind, int]
	contestGen3, contestGen4           *Bimap[ContestStat, int]
	conditionGB, conditionModern       *Bimap[Condition, uint8]
	markingGen3, markingGen4           *Bimap[Marking, uint8]
	genderGCN, genderFlags             *Bimap[personality.Gender, int]
	ribbonsGen3, ribbonsGen6           *Bimap[string, int]
}

// NewRegistry builds the registry from the static tables.
func NewRegistry() *Registry {
	return &Registry{
		statGB:  indexed("Game Boy stat", stats.HP, stats.Attack, stats.Defense, stats.Speed, stats.Special),
		statGBA: indexed("stat", stats.HP, stats.Attack, stats.Defense, stats.Speed, stats.SpecialAttack, stats.SpecialDefense),
		statGCN: indexed("GameCube stat", stats.HP, stats.Attack, stats.Defense, stats.SpecialAttack, stats.SpecialDefense, stats.Speed),

		contestGen3: indexed("Generation III contest stat", Cool, Beauty, Cute, Smart, Tough, Feel),
		contestGen4: indexed("contest stat", Cool, Beauty, Cute, Smart, Tough, Sheen),

		conditionGB: NewBimap("Game Boy condition",
			Pair[Condition, uint8]{NoCondition, 0x00},
			Pair[Condition, uint8]{Asleep, 0x04},
			Pair[Condition, uint8]{Poisoned, 0x08},
			Pair[Condition, uint8]{Burned, 0x10},
			Pair[Condition, uint8]{Frozen, 0x20},
			Pair[Condition, uint8]{Paralyzed, 0x40},
		),
		conditionModern: NewBimap("condition",
			Pair[Condition, uint8]{NoCondition, 0x00},
			Pair[Condition, uint8]{Asleep, 0x07},
			Pair[Condition, uint8]{Poisoned, 0x08},
			Pair[Condition, uint8]{Burned, 0x10},
			Pair[Condition, uint8]{Frozen, 0x20},
			Pair[Condition, uint8]{Paralyzed, 0x40},
			Pair[Condition, uint8]{BadlyPoisoned, 0x80},
		),

		markingGen3: NewBimap("Generation III marking",
			Pair[Marking, uint8]{Circle, 1 << 0},
			Pair[Marking, uint8]{Square, 1 << 1},
			Pair[Marking, uint8]{Triangle, 1 << 2},
			Pair[Marking, uint8]{Heart, 1 << 3},
		),
		markingGen4: NewBimap("marking",
			Pair[Marking, uint8]{Circle, 1 << 0},
			Pair[Marking, uint8]{Square, 1 << 1},
			Pair[Marking, uint8]{Triangle, 1 << 2},
			Pair[Marking, uint8]{Heart, 1 << 3},
			Pair[Marking, uint8]{Star, 1 << 4},
			Pair[Marking, uint8]{Diamond, 1 << 5},
		),

		genderGCN: NewBimap("GameCube gender",
			Pair[personality.Gender, int]{personality.Male, 0},
			Pair[personality.Gender, int]{personality.Female, 1},
			Pair[personality.Gender, int]{personality.Genderless, 2},
		),
		genderFlags: NewBimap("gender flags",
			Pair[personality.Gender, int]{personality.Male, 0},
			Pair[personality.Gender, int]{personality.Female, 1 << 1},
			Pair[personality.Gender, int]{personality.Genderless, 1 << 2},
		),

		ribbonsGen3: indexed("Generation III ribbon", gen3Ribbons...),
		ribbonsGen6: indexed("ribbon", slices.Concat(gen3Ribbons, gen6Ribbons)...),
	}
}

// Default returns the process-wide registry, built on first use.
var Default = sync.OnceValue(NewRegistry)

func (r *Registry) statMap(g generation.Game) (*Bimap[stats.Kind, int], error) {
	if err := generation.Check(g); err != nil {
		return nil, err
	}
	switch generation.Classify(g) {
	case generation.GameBoy:
		return r.statGB, nil
	case generation.AdvanceGamecube:
		if g.IsGamecube() {
			return r.statGCN, nil
		}
		return r.statGBA, nil
	case generation.Modern:
		return r.statGBA, nil
	}
	return nil, validate.Invalid("game", g.String(), "unclassified game")
}

// StatIndex is the storage position of stat k in game g.
func (r *Registry) StatIndex(g generation.Game, k stats.Kind) (int, error) {
	m, err := r.statMap(g)
	if err != nil {
		return 0, err
	}
	return m.Right(k)
}

// StatAt is the stat stored at position i in game g.
func (r *Registry) StatAt(g generation.Game, i int) (stats.Kind, error) {
	m, err := r.statMap(g)
	if err != nil {
		return 0, err
	}
	return m.Left(i)
}

// StatOrder lists game g's stats in storage order.
func (r *Registry) StatOrder(g generation.Game) ([]stats.Kind, error) {
	m, err := r.statMap(g)
	if err != nil {
		return nil, err
	}
	return m.Lefts(), nil
}

func (r *Registry) contestMap(g generation.Game) (*Bimap[ContestStat, int], error) {
	if err := generation.Check(g); err != nil {
		return nil, err
	}
	switch generation.Classify(g) {
	case generation.GameBoy:
		return nil, validate.NotInEra("contest stats", g.String())
	case generation.AdvanceGamecube:
		return r.contestGen3, nil
	case generation.Modern:
		return r.contestGen4, nil
	}
	return nil, validate.Invalid("game", g.String(), "unclassified game")
}

// ContestStats lists the contest stats of game g.
func (r *Registry) ContestStats(g generation.Game) ([]ContestStat, error) {
	m, err := r.contestMap(g)
	if err != nil {
		return nil, err
	}
	return m.Lefts(), nil
}

// ContestIndex is the storage position of contest stat c in game g.
func (r *Registry) ContestIndex(g generation.Game, c ContestStat) (int, error) {
	m, err := r.contestMap(g)
	if err != nil {
		return 0, err
	}
	return m.Right(c)
}

// ContestAt is the contest stat stored at position i in game g.
func (r *Registry) ContestAt(g generation.Game, i int) (ContestStat, error) {
	m, err := r.contestMap(g)
	if err != nil {
		return 0, err
	}
	return m.Left(i)
}

func (r *Registry) conditionMap(g generation.Game) (*Bimap[Condition, uint8], error) {
	if err := generation.Check(g); err != nil {
		return nil, err
	}
	switch generation.Classify(g) {
	case generation.GameBoy:
		return r.conditionGB, nil
	case generation.AdvanceGamecube, generation.Modern:
		return r.conditionModern, nil
	}
	return nil, validate.Invalid("game", g.String(), "unclassified game")
}

// ConditionValue encodes condition c for game g.
func (r *Registry) ConditionValue(g generation.Game, c Condition) (uint8, error) {
	m, err := r.conditionMap(g)
	if err != nil {
		return 0, err
	}
	return m.Right(c)
}

// ConditionFromValue decodes a stored condition. Later eras store a sleep
// counter in the low three bits, so any non-zero counter decodes as Asleep.
func (r *Registry) ConditionFromValue(g generation.Game, v uint8) (Condition, error) {
	m, err := r.conditionMap(g)
	if err != nil {
		return 0, err
	}
	if m == r.conditionModern && v&0x07 != 0 && v&^0x07 == 0 {
		return Asleep, nil
	}
	return m.Left(v)
}

// Conditions lists the conditions game g can store.
func (r *Registry) Conditions(g generation.Game) ([]Condition, error) {
	m, err := r.conditionMap(g)
	if err != nil {
		return nil, err
	}
	return m.Lefts(), nil
}

// CheckCondition fails unless game g can store condition c.
func (r *Registry) CheckCondition(g generation.Game, c Condition) error {
	_, err := r.ConditionValue(g, c)
	return err
}

func (r *Registry) markingMap(g generation.Game) (*Bimap[Marking, uint8], error) {
	if err := generation.Check(g); err != nil {
		return nil, err
	}
	switch generation.Classify(g) {
	case generation.GameBoy:
		return nil, validate.NotInEra("markings", g.String())
	case generation.AdvanceGamecube:
		return r.markingGen3, nil
	case generation.Modern:
		return r.markingGen4, nil
	}
	return nil, validate.Invalid("game", g.String(), "unclassified game")
}

// Markings lists the markings of game g.
func (r *Registry) Markings(g generation.Game) ([]Marking, error) {
	m, err := r.markingMap(g)
	if err != nil {
		return nil, err
	}
	return m.Lefts(), nil
}

// EncodeMarkings packs a marking set into game g's bitfield.
func (r *Registry) EncodeMarkings(g generation.Game, set []Marking) (uint8, error) {
	m, err := r.markingMap(g)
	if err != nil {
		return 0, err
	}
	var out uint8
	for _, mk := range set {
		bit, err := m.Right(mk)
		if err != nil {
			return 0, err
		}
		out |= bit
	}
	return out, nil
}

// DecodeMarkings unpacks game g's marking bitfield.
func (r *Registry) DecodeMarkings(g generation.Game, bits uint8) ([]Marking, error) {
	m, err := r.markingMap(g)
	if err != nil {
		return nil, err
	}
	var out []Marking
	var known uint8
	for _, p := range m.order {
		known |= p.Right
		if bits&p.Right != 0 {
			out = append(out, p.Left)
		}
	}
	if bits&^known != 0 {
		return nil, validate.Invalid(m.Name(), hexByte(bits), "unknown marking bits")
	}
	return out, nil
}

func (r *Registry) genderMap(g generation.Game) (*Bimap[personality.Gender, int], error) {
	if err := generation.Check(g); err != nil {
		return nil, err
	}
	switch generation.Classify(g) {
	case generation.GameBoy:
		return nil, validate.NotInEra("stored gender", g.String())
	case generation.AdvanceGamecube:
		if g.IsGamecube() {
			return r.genderGCN, nil
		}
		return nil, validate.NotInEra("stored gender", g.String())
	case generation.Modern:
		return r.genderFlags, nil
	}
	return nil, validate.Invalid("game", g.String(), "unclassified game")
}

// GenderValue encodes gender for games that store it explicitly
// (Colosseum, XD and Generation IV on).
func (r *Registry) GenderValue(g generation.Game, gender personality.Gender) (int, error) {
	m, err := r.genderMap(g)
	if err != nil {
		return 0, err
	}
	return m.Right(gender)
}

// GenderFromValue decodes a stored gender.
func (r *Registry) GenderFromValue(g generation.Game, v int) (personality.Gender, error) {
	m, err := r.genderMap(g)
	if err != nil {
		return 0, err
	}
	return m.Left(v)
}

func (r *Registry) ribbonMap(g generation.Game) (*Bimap[string, int], error) {
	if err := generation.Check(g); err != nil {
		return nil, err
	}
	switch generation.Classify(g) {
	case generation.GameBoy:
		return nil, validate.NotInEra("ribbons", g.String())
	case generation.AdvanceGamecube:
		return r.ribbonsGen3, nil
	case generation.Modern:
		if g.Generation() >= 6 {
			return r.ribbonsGen6, nil
		}
		return r.ribbonsGen3, nil
	}
	return nil, validate.Invalid("game", g.String(), "unclassified game")
}

// Ribbons lists the ribbons game g can hold.
func (r *Registry) Ribbons(g generation.Game) ([]string, error) {
	m, err := r.ribbonMap(g)
	if err != nil {
		return nil, err
	}
	return m.Lefts(), nil
}

// CheckRibbon fails unless game g has a ribbon named name.
func (r *Registry) CheckRibbon(g generation.Game, name string) error {
	m, err := r.ribbonMap(g)
	if err != nil {
		return err
	}
	_, err = m.Right(name)
	return err
}

// HasRibbon reports whether game g has a ribbon named name.
func (r *Registry) HasRibbon(g generation.Game, name string) bool {
	m, err := r.ribbonMap(g)
	return err == nil && m.HasLeft(name)
}
