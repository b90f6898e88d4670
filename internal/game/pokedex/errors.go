package pokedex

import (
	"errors"
	"fmt"
)

// ErrNotFound is reported by every lookup of a species or move that the
// requested game does not have.
var ErrNotFound = errors.New("not found")

// NotFoundError names the missing key.
type NotFoundError struct {
	Kind string
	Name string
	Game string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found in %s", e.Kind, e.Name, e.Game)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
