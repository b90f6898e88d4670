// Package typechart answers type-effectiveness questions for Generations I-VI.
package typechart

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

// Type is an elemental type. The numbering of the eighteen regular types
// matches the games' internal type IDs, which Hidden Power relies on.
type Type int

const (
	None Type = iota
	Normal
	Fighting
	Flying
	Poison
	Ground
	Rock
	Bug
	Ghost
	Steel
	Fire
	Water
	Grass
	Electric
	Psychic
	Ice
	Dragon
	Dark
	Fairy
	// Unknown is the "???" type of Curse in Generation IV.
	Unknown
	// Shadow is the type of Shadow moves in Colosseum and XD.
	Shadow

	numTypes
)

var typeNames = [...]string{
	None:     "None",
	Normal:   "Normal",
	Fighting: "Fighting",
	Flying:   "Flying",
	Poison:   "Poison",
	Ground:   "Ground",
	Rock:     "Rock",
	Bug:      "Bug",
	Ghost:    "Ghost",
	Steel:    "Steel",
	Fire:     "Fire",
	Water:    "Water",
	Grass:    "Grass",
	Electric: "Electric",
	Psychic:  "Psychic",
	Ice:      "Ice",
	Dragon:   "Dragon",
	Dark:     "Dark",
	Fairy:    "Fairy",
	Unknown:  "???",
	Shadow:   "Shadow",
}

var _ = [1]struct{}{}[len(typeNames)-int(numTypes)]

func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// ParseType resolves a type by name. "None" is not accepted.
func ParseType(name string) (Type, error) {
	for i, n := range typeNames[1:] {
		if n == name {
			return Type(i + 1), nil
		}
	}
	return None, &validate.InvalidArgumentError{Field: "type", Value: name, Valid: typeNames[1:]}
}

// UnmarshalCSV lets gocsv decode type columns directly.
func (t *Type) UnmarshalCSV(s string) error {
	v, err := ParseType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalCSV is the inverse of UnmarshalCSV.
func (t Type) MarshalCSV() (string, error) { return t.String(), nil }

// CheckAvailable fails with an InvalidArgumentError unless t exists in
// generation gen.
func CheckAvailable(field string, t Type, gen int) error {
	if t.available(gen) {
		return nil
	}
	return validate.Invalid(field, t.String(), availability(t))
}

// UnmarshalYAML decodes a type from its name.
func (t *Type) UnmarshalYAML(value *yaml.Node) error {
	return t.UnmarshalCSV(value.Value)
}

// MarshalYAML encodes a type as its name.
func (t Type) MarshalYAML() (any, error) { return t.String(), nil }

// available reports whether t exists in generation gen.
func (t Type) available(gen int) bool {
	switch t {
	case Dark, Steel:
		return gen >= 2
	case Shadow:
		return gen == 3
	case Unknown:
		return gen == 4
	case Fairy:
		return gen >= 6
	case None:
		return false
	default:
		return t > None && t < numTypes
	}
}

func availability(t Type) string {
	switch t {
	case Dark, Steel:
		return "available from Generation II"
	case Shadow:
		return "available only in Generation III"
	case Unknown:
		return "available only in Generation IV"
	case Fairy:
		return "available from Generation VI"
	}
	return "not a type"
}
