// Package importer moves pokedex content from a source format into a store.
package importer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/pkmn/internal/game/pokedex"
)

// Summary counts what a Run wrote.
type Summary struct {
	Species int
	Moves   int
}

// Importer orchestrates content import from a Source to a Sink.
type Importer struct {
	source Source
	sink   Sink
	logger *zap.Logger
}

// New constructs an Importer.
//
// Precondition: source, sink and logger must be non-nil.
// Postcondition: returns a non-nil Importer.
func New(source Source, sink Sink, logger *zap.Logger) *Importer {
	return &Importer{source: source, sink: sink, logger: logger}
}

// Run loads content from sourceDir, validates all of it, and only then writes
// it to the sink.
//
// Postcondition: on a validation failure nothing is written. A sink failure
// may leave earlier definitions written.
func (imp *Importer) Run(ctx context.Context, sourceDir string) (Summary, error) {
	overall := time.Now()

	content, err := imp.source.Load(sourceDir)
	if err != nil {
		return Summary{}, fmt.Errorf("loading source: %w", err)
	}
	imp.logger.Info("source loaded",
		zap.String("dir", sourceDir),
		zap.Int("species", len(content.Species)),
		zap.Int("moves", len(content.Moves)),
		zap.Duration("elapsed", time.Since(overall)),
	)

	// A scratch store catches duplicates and invalid definitions before any write.
	check := pokedex.NewMemory()
	for _, d := range content.Species {
		if err := check.RegisterSpecies(d); err != nil {
			return Summary{}, err
		}
	}
	for _, d := range content.Moves {
		if err := check.RegisterMove(d); err != nil {
			return Summary{}, err
		}
	}

	var sum Summary
	for _, d := range check.AllSpecies() {
		if err := imp.sink.UpsertSpecies(ctx, d); err != nil {
			return sum, fmt.Errorf("writing species %q: %w", d.Name, err)
		}
		sum.Species++
	}
	for _, d := range check.AllMoves() {
		if err := imp.sink.UpsertMove(ctx, d); err != nil {
			return sum, fmt.Errorf("writing move %q: %w", d.Name, err)
		}
		sum.Moves++
	}

	imp.logger.Info("import complete",
		zap.Int("species", sum.Species),
		zap.Int("moves", sum.Moves),
		zap.Duration("elapsed", time.Since(overall)),
	)
	return sum, nil
}
