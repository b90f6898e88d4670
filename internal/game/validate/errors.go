// Package validate holds the error taxonomy shared by every rules package and
// the bounds and membership checks that produce it.
package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every typed error in this package reports one of these
// through Is, so callers branch with errors.Is.
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrRange               = errors.New("value out of range")
	ErrFeatureNotInEra     = errors.New("feature not in era")
	ErrGenerationExhausted = errors.New("generation exhausted")
)

// InvalidArgumentError reports a value outside an enumerated domain.
type InvalidArgumentError struct {
	Field string
	Value string
	// Valid lists every accepted value in declaration order. It may be empty
	// when the domain is open-ended (e.g. "must not be empty").
	Valid []string
	// Reason replaces the valid-values clause when set.
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	switch {
	case e.Reason != "":
		return fmt.Sprintf("%s: %s, got %q", e.Field, e.Reason, e.Value)
	case len(e.Valid) > 0:
		return fmt.Sprintf("%s: valid values %s, got %s", e.Field, strings.Join(e.Valid, ", "), e.Value)
	default:
		return fmt.Sprintf("%s: invalid value %q", e.Field, e.Value)
	}
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// RangeError reports a numeric value outside an inclusive range.
type RangeError struct {
	Field string
	Value string
	Min   string
	Max   string
}

func (e *RangeError) Error() string {
	if e.Max == "" {
		return fmt.Sprintf("%s: valid range >= %s, got %s", e.Field, e.Min, e.Value)
	}
	return fmt.Sprintf("%s: valid range %s-%s, got %s", e.Field, e.Min, e.Max, e.Value)
}

// Is reports whether target is ErrRange.
func (e *RangeError) Is(target error) bool { return target == ErrRange }

// FeatureError reports an attribute requested from a game whose era lacks it.
type FeatureError struct {
	Feature string
	Game    string
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("%s does not exist in %s", e.Feature, e.Game)
}

// Is reports whether target is ErrFeatureNotInEra.
func (e *FeatureError) Is(target error) bool { return target == ErrFeatureNotInEra }

// ExhaustedError reports a rejection-sampling loop that hit its attempt budget.
type ExhaustedError struct {
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("no personality satisfied the constraints after %d attempts", e.Attempts)
}

// Is reports whether target is ErrGenerationExhausted.
func (e *ExhaustedError) Is(target error) bool { return target == ErrGenerationExhausted }

// NotInEra is shorthand for a FeatureError.
func NotInEra(feature, game string) error {
	return &FeatureError{Feature: feature, Game: game}
}

// Invalid is shorthand for an InvalidArgumentError with a free-form reason.
func Invalid(field, value, reason string) error {
	return &InvalidArgumentError{Field: field, Value: value, Reason: reason}
}
