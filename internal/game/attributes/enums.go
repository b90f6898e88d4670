package attributes

import (
	"slices"
	"strconv"
)

// ContestStat is a contest condition.
type ContestStat int

const (
	Cool ContestStat = iota
	Beauty
	Cute
	Smart
	Tough
	// Feel exists only in Generation III.
	Feel
	// Sheen replaces Feel from Generation IV on.
	Sheen
)

var contestNames = NewBimap("contest stat",
	Pair[ContestStat, string]{Cool, "Cool"},
	Pair[ContestStat, string]{Beauty, "Beauty"},
	Pair[ContestStat, string]{Cute, "Cute"},
	Pair[ContestStat, string]{Smart, "Smart"},
	Pair[ContestStat, string]{Tough, "Tough"},
	Pair[ContestStat, string]{Feel, "Feel"},
	Pair[ContestStat, string]{Sheen, "Sheen"},
)

func (c ContestStat) String() string {
	if name, err := contestNames.Right(c); err == nil {
		return name
	}
	return "ContestStat(" + strconv.Itoa(int(c)) + ")"
}

// ParseContestStat resolves a contest stat by name.
func ParseContestStat(name string) (ContestStat, error) { return contestNames.Left(name) }

// Condition is a non-volatile status condition.
type Condition int

const (
	NoCondition Condition = iota
	Asleep
	Poisoned
	Burned
	Frozen
	Paralyzed
	// BadlyPoisoned is a distinct stored status from Generation III on.
	BadlyPoisoned
)

var conditionNames = NewBimap("condition",
	Pair[Condition, string]{NoCondition, "None"},
	Pair[Condition, string]{Asleep, "Asleep"},
	Pair[Condition, string]{Poisoned, "Poison"},
	Pair[Condition, string]{Burned, "Burn"},
	Pair[Condition, string]{Frozen, "Frozen"},
	Pair[Condition, string]{Paralyzed, "Paralysis"},
	Pair[Condition, string]{BadlyPoisoned, "Bad Poison"},
)

func (c Condition) String() string {
	if name, err := conditionNames.Right(c); err == nil {
		return name
	}
	return "Condition(" + strconv.Itoa(int(c)) + ")"
}

// ParseCondition resolves a condition by name.
func ParseCondition(name string) (Condition, error) { return conditionNames.Left(name) }

// Marking is a box marking.
type Marking int

const (
	Circle Marking = iota
	Square
	Triangle
	Heart
	// Star and Diamond exist from Generation IV on.
	Star
	Diamond
)

var markingNames = NewBimap("marking",
	Pair[Marking, string]{Circle, "Circle"},
	Pair[Marking, string]{Square, "Square"},
	Pair[Marking, string]{Triangle, "Triangle"},
	Pair[Marking, string]{Heart, "Heart"},
	Pair[Marking, string]{Star, "Star"},
	Pair[Marking, string]{Diamond, "Diamond"},
)

func (m Marking) String() string {
	if name, err := markingNames.Right(m); err == nil {
		return name
	}
	return "Marking(" + strconv.Itoa(int(m)) + ")"
}

// ParseMarking resolves a marking by name.
func ParseMarking(name string) (Marking, error) { return markingNames.Left(name) }

// SortMarkings returns a sorted, de-duplicated copy of ms.
func SortMarkings(ms []Marking) []Marking {
	out := slices.Clone(ms)
	slices.Sort(out)
	return slices.Compact(out)
}
