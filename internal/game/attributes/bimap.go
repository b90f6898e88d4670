// Package attributes maps semantic attribute values to the encodings each
// era uses, through one read-only registry shared by the whole process.
package attributes

import (
	"fmt"

	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

// Pair is one entry of a Bimap.
type Pair[L, R comparable] struct {
	Left  L
	Right R
}

// Bimap is an immutable one-to-one mapping. Lookups outside the declared
// entries fail with an InvalidArgumentError listing the valid values.
type Bimap[L, R comparable] struct {
	name  string
	order []Pair[L, R]
	left  map[L]R
	right map[R]L
}

// NewBimap builds a Bimap from pairs.
//
// Precondition: no Left and no Right value repeats. Panics otherwise, since
// maps are only built from static tables at startup.
func NewBimap[L, R comparable](name string, pairs ...Pair[L, R]) *Bimap[L, R] {
	b := &Bimap[L, R]{
		name:  name,
		order: append([]Pair[L, R](nil), pairs...),
		left:  make(map[L]R, len(pairs)),
		right: make(map[R]L, len(pairs)),
	}
	for _, p := range pairs {
		if _, dup := b.left[p.Left]; dup {
			panic(fmt.Sprintf("attributes: %s: duplicate key %v", name, p.Left))
		}
		if _, dup := b.right[p.Right]; dup {
			panic(fmt.Sprintf("attributes: %s: duplicate value %v", name, p.Right))
		}
		b.left[p.Left] = p.Right
		b.right[p.Right] = p.Left
	}
	return b
}

// Name identifies the mapping in error messages.
func (b *Bimap[L, R]) Name() string { return b.name }

// Len is the number of entries.
func (b *Bimap[L, R]) Len() int { return len(b.order) }

// Right maps a semantic value to its encoding.
func (b *Bimap[L, R]) Right(l L) (R, error) {
	if r, ok := b.left[l]; ok {
		return r, nil
	}
	var zero R
	return zero, &validate.InvalidArgumentError{Field: b.name, Value: fmt.Sprint(l), Valid: b.leftStrings()}
}

// Left maps an encoding back to its semantic value.
func (b *Bimap[L, R]) Left(r R) (L, error) {
	if l, ok := b.right[r]; ok {
		return l, nil
	}
	var zero L
	return zero, &validate.InvalidArgumentError{Field: b.name, Value: fmt.Sprint(r), Valid: b.rightStrings()}
}

// HasLeft reports whether l is declared.
func (b *Bimap[L, R]) HasLeft(l L) bool {
	_, ok := b.left[l]
	return ok
}

// Lefts returns the semantic values in declaration order.
func (b *Bimap[L, R]) Lefts() []L {
	out := make([]L, len(b.order))
	for i, p := range b.order {
		out[i] = p.Left
	}
	return out
}

// Rights returns the encodings in declaration order.
func (b *Bimap[L, R]) Rights() []R {
	out := make([]R, len(b.order))
	for i, p := range b.order {
		out[i] = p.Right
	}
	return out
}

func (b *Bimap[L, R]) leftStrings() []string {
	out := make([]string, len(b.order))
	for i, p := range b.order {
		out[i] = fmt.Sprint(p.Left)
	}
	return out
}

func (b *Bimap[L, R]) rightStrings() []string {
	out := make([]string, len(b.order))
	for i, p := range b.order {
		out[i] = fmt.Sprint(p.Right)
	}
	return out
}

// indexed builds a Bimap from values to their position.
func indexed[L comparable](name string, values ...L) *Bimap[L, int] {
	pairs := make([]Pair[L, int], len(values))
	for i, v := range values {
		pairs[i] = Pair[L, int]{v, i}
	}
	return NewBimap(name, pairs...)
}
