// Package personality derives gender, shininess and forms from the values a
// record stores, and synthesizes personality values that satisfy constraints.
package personality

import (
	"strconv"

	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

// Gender of a Pokémon or trainer. AnyGender is only meaningful in requests.
type Gender int

const (
	AnyGender Gender = iota
	Male
	Female
	Genderless
)

var genderNames = [...]string{"Any", "Male", "Female", "Genderless"}

func (g Gender) String() string {
	if g < 0 || int(g) >= len(genderNames) {
		return "Gender(" + strconv.Itoa(int(g)) + ")"
	}
	return genderNames[g]
}

// ParseGender resolves Male, Female or Genderless.
func ParseGender(name string) (Gender, error) {
	for i, n := range genderNames[1:] {
		if n == name {
			return Gender(i + 1), nil
		}
	}
	return 0, &validate.InvalidArgumentError{Field: "gender", Value: name, Valid: genderNames[1:]}
}

// GenderProfile is a species' gender ratio.
//
// Invariant: both chances are in [0,1] and sum to 0 (genderless) or 1.
type GenderProfile struct {
	ChanceMale   float64 `yaml:"chance_male"`
	ChanceFemale float64 `yaml:"chance_female"`
}

// Validate checks the profile invariant.
func (p GenderProfile) Validate() error {
	if err := validate.CheckFloatBounds("chance_male", p.ChanceMale, 0, 1); err != nil {
		return err
	}
	if err := validate.CheckFloatBounds("chance_female", p.ChanceFemale, 0, 1); err != nil {
		return err
	}
	sum := p.ChanceMale + p.ChanceFemale
	if !validate.FloatsClose(sum, 0) && !validate.FloatsClose(sum, 1) {
		return validate.Invalid("gender ratio", strconv.FormatFloat(sum, 'g', -1, 64), "chances must sum to 0 or 1")
	}
	return nil
}

// Genderless reports whether the species has no gender.
func (p GenderProfile) Genderless() bool {
	return validate.FloatsClose(p.ChanceMale, 0) && validate.FloatsClose(p.ChanceFemale, 0)
}

// Fixed returns the only gender the species can have, if there is one.
func (p GenderProfile) Fixed() (Gender, bool) {
	switch {
	case p.Genderless():
		return Genderless, true
	case validate.FloatsClose(p.ChanceMale, 1):
		return Male, true
	case validate.FloatsClose(p.ChanceFemale, 1):
		return Female, true
	}
	return AnyGender, false
}

// Allows reports whether a member of the species can have gender g.
func (p GenderProfile) Allows(g Gender) bool {
	if g == AnyGender {
		return true
	}
	if fixed, ok := p.Fixed(); ok {
		return g == fixed
	}
	return g == Male || g == Female
}

type threshold struct {
	chanceMale float64
	value      int
}

// Values strictly below the threshold are female.
var (
	gbThresholds = []threshold{{0.875, 2}, {0.75, 4}, {0.5, 7}, {0.25, 12}}
	// Personality low-byte thresholds.
	modernThresholds = []threshold{{0.875, 31}, {0.75, 64}, {0.5, 127}, {0.25, 191}}
)

func lookupThreshold(table []threshold, chanceMale float64) (int, bool) {
	for _, t := range table {
		if validate.FloatsClose(t.chanceMale, chanceMale) {
			return t.value, true
		}
	}
	return 0, false
}

// Threshold returns the female/male cutoff for a gendered species in era e:
// an Attack IV cutoff in the Game Boy era and a personality low-byte cutoff
// afterward. ok is false for single-gender and genderless species.
func (p GenderProfile) Threshold(e generation.Era) (value int, ok bool) {
	if _, fixed := p.Fixed(); fixed {
		return 0, false
	}
	if e == generation.GameBoy {
		return lookupThreshold(gbThresholds, p.ChanceMale)
	}
	return lookupThreshold(modernThresholds, p.ChanceMale)
}

func derive(p GenderProfile, value int, table []threshold) Gender {
	if p.Genderless() {
		return Genderless
	}
	if validate.FloatsClose(p.ChanceMale, 1) {
		return Male
	}
	if t, ok := lookupThreshold(table, p.ChanceMale); ok {
		if value < t {
			return Female
		}
		return Male
	}
	return Female
}

// GBGender derives a Game Boy era gender from the Attack IV.
//
// Precondition: p is a valid profile; ivAttack in [0,15].
func GBGender(p GenderProfile, ivAttack int) (Gender, error) {
	if err := p.Validate(); err != nil {
		return AnyGender, err
	}
	if err := validate.CheckBounds("IV_attack", ivAttack, 0, generation.GameBoy.MaxIV()); err != nil {
		return AnyGender, err
	}
	return derive(p, ivAttack, gbThresholds), nil
}

// ModernGender derives a Generation III+ gender from the personality low byte.
//
// Precondition: p is a valid profile.
func ModernGender(p GenderProfile, pid uint32) (Gender, error) {
	if err := p.Validate(); err != nil {
		return AnyGender, err
	}
	return derive(p, int(pid&0xFF), modernThresholds), nil
}
