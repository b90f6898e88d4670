package validate

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the tolerance for every floating-point comparison in the rules core.
const Epsilon = 1e-9

// FloatsClose reports whether a and b differ by no more than Epsilon.
func FloatsClose(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Epsilon)
}

// CheckBounds returns a RangeError unless min <= value <= max.
//
// Precondition: min <= max.
func CheckBounds(field string, value, min, max int) error {
	if value < min || value > max {
		return &RangeError{
			Field: field,
			Value: strconv.Itoa(value),
			Min:   strconv.Itoa(min),
			Max:   strconv.Itoa(max),
		}
	}
	return nil
}

// CheckMinimum returns a RangeError unless value >= min.
func CheckMinimum(field string, value, min int) error {
	if value < min {
		return &RangeError{Field: field, Value: strconv.Itoa(value), Min: strconv.Itoa(min)}
	}
	return nil
}

// CheckFloatBounds is CheckBounds for floats. Values within Epsilon of either
// end are accepted.
func CheckFloatBounds(field string, value, min, max float64) error {
	if math.IsNaN(value) || (value < min && !FloatsClose(value, min)) || (value > max && !FloatsClose(value, max)) {
		return &RangeError{
			Field: field,
			Value: formatFloat(value),
			Min:   formatFloat(min),
			Max:   formatFloat(max),
		}
	}
	return nil
}

// CheckFloatMinimum returns a RangeError unless value > min (exclusive) when
// exclusive is set, or value >= min otherwise.
func CheckFloatMinimum(field string, value, min float64, exclusive bool) error {
	ok := value > min || (!exclusive && FloatsClose(value, min))
	if math.IsNaN(value) || !ok {
		bound := formatFloat(min)
		if exclusive {
			return Invalid(field, formatFloat(value), "must be greater than "+bound)
		}
		return &RangeError{Field: field, Value: formatFloat(value), Min: bound}
	}
	return nil
}

// CheckMembership returns an InvalidArgumentError unless value is one of allowed.
func CheckMembership[T comparable](field string, value T, allowed []T) error {
	for _, a := range allowed {
		if a == value {
			return nil
		}
	}
	return &InvalidArgumentError{Field: field, Value: fmt.Sprint(value), Valid: stringify(allowed)}
}

// CheckFloatMembership is CheckMembership with Epsilon equality.
func CheckFloatMembership(field string, value float64, allowed []float64) error {
	for _, a := range allowed {
		if FloatsClose(a, value) {
			return nil
		}
	}
	valid := make([]string, len(allowed))
	for i, a := range allowed {
		valid[i] = formatFloat(a)
	}
	return &InvalidArgumentError{Field: field, Value: formatFloat(value), Valid: valid}
}

func stringify[T any](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(v)
	}
	return out
}

// formatFloat prints integral values with one decimal ("1.0") so messages
// read the same as the documented domains.
func formatFloat(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
