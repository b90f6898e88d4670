package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/pkmn/internal/game/pokedex"
)

// YAMLSource reads the content/pokedex layout: species/ and moves/ holding
// one YAML definition per file.
type YAMLSource struct{}

var _ Source = YAMLSource{}

// Load implements Source.
func (YAMLSource) Load(sourceDir string) (*Content, error) {
	mem, err := pokedex.LoadDirectory(sourceDir)
	if err != nil {
		return nil, err
	}
	return &Content{Species: mem.AllSpecies(), Moves: mem.AllMoves()}, nil
}

// ErrIDCollision is returned by DirSink when two different names map to the
// same file.
var ErrIDCollision = errors.New("names share an identifier")

// DirSink writes each definition as <dir>/<kind>/<id>.yaml, the layout
// YAMLSource and pokedex.LoadDirectory read.
//
// A DirSink is not safe for concurrent use.
type DirSink struct {
	dir     string
	written map[string]string
}

var _ Sink = (*DirSink)(nil)

// NewDirSink creates the species and moves directories under dir.
//
// Postcondition: Returns a ready DirSink or a non-nil error.
func NewDirSink(dir string) (*DirSink, error) {
	for _, sub := range []string{"species", "moves"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	return &DirSink{dir: dir, written: make(map[string]string)}, nil
}

// UpsertSpecies implements Sink.
func (s *DirSink) UpsertSpecies(_ context.Context, def *pokedex.SpeciesDef) error {
	return s.write("species", def.Name, def)
}

// UpsertMove implements Sink.
func (s *DirSink) UpsertMove(_ context.Context, def *pokedex.MoveDef) error {
	return s.write("moves", def.Name, def)
}

func (s *DirSink) write(kind, name string, def any) error {
	data, err := yaml.Marshal(def)
	if err != nil {
		return fmt.Errorf("serialising %q: %w", name, err)
	}
	path := filepath.Join(s.dir, kind, NameToID(name)+".yaml")
	if prev, ok := s.written[path]; ok && prev != name {
		return fmt.Errorf("%s %q and %q both write %s: %w", kind, prev, name, path, ErrIDCollision)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %q to %s: %w", name, path, err)
	}
	s.written[path] = name
	return nil
}
