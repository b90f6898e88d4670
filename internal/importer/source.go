package importer

import (
	"context"

	"github.com/cory-johannsen/pkmn/internal/game/pokedex"
)

// Content is the common intermediate form produced by every Source.
type Content struct {
	Species []*pokedex.SpeciesDef
	Moves   []*pokedex.MoveDef
}

// Source loads pokedex content from a format-specific source directory.
//
// Precondition: sourceDir must exist and contain the expected layout for the format.
// Postcondition: returns Content or a non-nil error.
type Source interface {
	Load(sourceDir string) (*Content, error)
}

// Sink stores validated pokedex definitions.
type Sink interface {
	UpsertSpecies(ctx context.Context, def *pokedex.SpeciesDef) error
	UpsertMove(ctx context.Context, def *pokedex.MoveDef) error
}
