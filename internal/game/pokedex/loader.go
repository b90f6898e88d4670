package pokedex

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDirectory reads dir/species/*.yaml and dir/moves/*.yaml, one definition
// per file, and returns a populated Memory.
//
// Precondition: dir must contain readable species and moves directories.
// Postcondition: Returns a non-nil Memory, or an error naming the first file
// that fails to parse or validate.
func LoadDirectory(dir string) (*Memory, error) {
	m := NewMemory()
	if err := loadEach(filepath.Join(dir, "species"), m.RegisterSpecies); err != nil {
		return nil, err
	}
	if err := loadEach(filepath.Join(dir, "moves"), m.RegisterMove); err != nil {
		return nil, err
	}
	return m, nil
}

func loadEach[T any](dir string, register func(*T) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading pokedex dir %q: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %q: %w", path, err)
		}
		var def T
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := register(&def); err != nil {
			return fmt.Errorf("loading %q: %w", path, err)
		}
	}
	return nil
}
