package stats

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

// Spread is one value per stat of a Layout. The zero value is an all-zero
// Game Boy spread. Spreads are values; With returns a modified copy.
type Spread struct {
	layout Layout
	values [numKinds]int
}

// NewSpread builds a spread from values.
//
// Precondition: values has exactly the kinds of layout.
// Postcondition: returns an InvalidArgumentError naming the first missing or
// foreign kind otherwise.
func NewSpread(layout Layout, values map[Kind]int) (Spread, error) {
	s := Spread{layout: layout}
	for k, v := range values {
		if !layout.Has(k) {
			return Spread{}, &validate.InvalidArgumentError{
				Field: "stat", Value: k.String(), Valid: kindStrings(layout.Kinds()),
			}
		}
		s.values[k] = v
	}
	for _, k := range layout.Kinds() {
		if _, ok := values[k]; !ok {
			return Spread{}, validate.Invalid("stat", k.String(), "missing from "+layout.String()+" spread")
		}
	}
	return s, nil
}

// Uniform builds a spread with the same value for every stat of layout.
func Uniform(layout Layout, v int) Spread {
	s := Spread{layout: layout}
	for _, k := range layoutKinds[layout] {
		s.values[k] = v
	}
	return s
}

// Layout returns the spread's layout.
func (s Spread) Layout() Layout { return s.layout }

// Get returns the value for k, or a FeatureError when the layout lacks k.
func (s Spread) Get(k Kind) (int, error) {
	if !s.layout.Has(k) {
		return 0, validate.NotInEra(k.String(), s.layout.String()+" stat layout")
	}
	return s.values[k], nil
}

// MustGet is Get for callers that have already checked the layout.
// It panics when the layout lacks k.
func (s Spread) MustGet(k Kind) int {
	v, err := s.Get(k)
	if err != nil {
		panic("stats: " + err.Error())
	}
	return v
}

// With returns a copy of s with k set to v.
func (s Spread) With(k Kind, v int) (Spread, error) {
	if !s.layout.Has(k) {
		return Spread{}, validate.NotInEra(k.String(), s.layout.String()+" stat layout")
	}
	s.values[k] = v
	return s, nil
}

// Map returns the spread as a fresh map.
func (s Spread) Map() map[Kind]int {
	out := make(map[Kind]int, len(layoutKinds[s.layout]))
	for _, k := range layoutKinds[s.layout] {
		out[k] = s.values[k]
	}
	return out
}

// Sum totals every stat in the spread.
func (s Spread) Sum() int {
	total := 0
	for _, k := range layoutKinds[s.layout] {
		total += s.values[k]
	}
	return total
}

// CheckBounds validates every value against [min, max].
func (s Spread) CheckBounds(field string, min, max int) error {
	for _, k := range layoutKinds[s.layout] {
		if err := validate.CheckBounds(field+" "+k.String(), s.values[k], min, max); err != nil {
			return err
		}
	}
	return nil
}

func (s Spread) String() string {
	parts := make([]string, 0, len(layoutKinds[s.layout]))
	for _, k := range layoutKinds[s.layout] {
		parts = append(parts, fmt.Sprintf("%s=%d", k, s.values[k]))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func kindStrings(kinds []Kind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.String()
	}
	return out
}
