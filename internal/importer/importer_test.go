package importer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/pokedex"
	"github.com/cory-johannsen/pkmn/internal/game/typechart"
	"github.com/cory-johannsen/pkmn/internal/importer"
)

const contentDir = "../../content/pokedex"

type recordingSink struct {
	species []string
	moves   []string
	failOn  string
}

func (s *recordingSink) UpsertSpecies(_ context.Context, def *pokedex.SpeciesDef) error {
	if def.Name == s.failOn {
		return errors.New("boom")
	}
	s.species = append(s.species, def.Name)
	return nil
}

func (s *recordingSink) UpsertMove(_ context.Context, def *pokedex.MoveDef) error {
	s.moves = append(s.moves, def.Name)
	return nil
}

type staticSource struct{ content *importer.Content }

func (s staticSource) Load(string) (*importer.Content, error) { return s.content, nil }

func TestImporter_Run_WritesEveryDefinition(t *testing.T) {
	sink := &recordingSink{}
	sum, err := importer.New(importer.YAMLSource{}, sink, zap.NewNop()).Run(context.Background(), contentDir)
	require.NoError(t, err)
	assert.Equal(t, 12, sum.Species)
	assert.Equal(t, 16, sum.Moves)
	assert.Len(t, sink.species, 12)
	assert.IsIncreasing(t, sink.species)
}

func TestImporter_Run_InvalidContentWritesNothing(t *testing.T) {
	src := staticSource{&importer.Content{
		Moves: []*pokedex.MoveDef{
			{Name: "Tackle", Introduced: 1, Type: typechart.Normal, Power: 40, PP: 35},
			{Name: "Broken", Introduced: 1, Type: typechart.Normal, Power: 40, PP: 0},
		},
	}}
	sink := &recordingSink{}
	_, err := importer.New(src, sink, zap.NewNop()).Run(context.Background(), "unused")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
	assert.Empty(t, sink.moves)
}

func TestImporter_Run_SinkFailureStops(t *testing.T) {
	sink := &recordingSink{failOn: "Charmander"}
	sum, err := importer.New(importer.YAMLSource{}, sink, zap.NewNop()).Run(context.Background(), contentDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Charmander")
	assert.Equal(t, []string{"Bulbasaur", "Chansey"}, sink.species)
	assert.Equal(t, 2, sum.Species)
}

func TestDirSink_RoundTripsThroughLoadDirectory(t *testing.T) {
	out := t.TempDir()
	sink, err := importer.NewDirSink(out)
	require.NoError(t, err)
	_, err = importer.New(importer.YAMLSource{}, sink, zap.NewNop()).Run(context.Background(), contentDir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "moves", "thunder_shock.yaml"))
	require.NoError(t, err)

	want, err := pokedex.LoadDirectory(contentDir)
	require.NoError(t, err)
	got, err := pokedex.LoadDirectory(out)
	require.NoError(t, err)
	for _, g := range generation.Games() {
		for _, d := range want.AllMoves() {
			we, werr := want.Move(d.Name, g)
			ge, gerr := got.Move(d.Name, g)
			assert.Equal(t, werr == nil, gerr == nil)
			assert.Equal(t, we, ge, "%s in %s", d.Name, g)
		}
		for _, d := range want.AllSpecies() {
			we, werr := want.Species(d.Name, g)
			ge, gerr := got.Species(d.Name, g)
			assert.Equal(t, werr == nil, gerr == nil)
			assert.Equal(t, we, ge, "%s in %s", d.Name, g)
		}
	}
}

func TestNameToID(t *testing.T) {
	assert.Equal(t, "thunder_shock", importer.NameToID("Thunder Shock"))
	assert.Equal(t, "farfetchd", importer.NameToID("Farfetch'd"))
	assert.Equal(t, "mr_mime", importer.NameToID("Mr. Mime"))
	assert.Equal(t, "flabebe", importer.NameToID("Flabébé"))
	assert.Equal(t, "pokemon_center", importer.NameToID("POKéMON Center"))
	assert.Equal(t, "nidoran_f", importer.NameToID("Nidoran♀"))
	assert.Equal(t, "nidoran_m", importer.NameToID("Nidoran♂"))
}

func TestDirSink_DistinctNamesGetDistinctFiles(t *testing.T) {
	out := t.TempDir()
	sink, err := importer.NewDirSink(out)
	require.NoError(t, err)
	ctx := context.Background()

	for _, name := range []string{"Nidoran♀", "Nidoran♂"} {
		def := &pokedex.SpeciesDef{Name: name, Introduced: 1}
		require.NoError(t, sink.UpsertSpecies(ctx, def))
	}
	for _, id := range []string{"nidoran_f", "nidoran_m"} {
		_, err := os.Stat(filepath.Join(out, "species", id+".yaml"))
		require.NoError(t, err)
	}
}

func TestDirSink_RejectsIDCollision(t *testing.T) {
	sink, err := importer.NewDirSink(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	move := &pokedex.MoveDef{Name: "Double-Edge", Introduced: 1, Type: typechart.Normal, Power: 100, PP: 15}
	require.NoError(t, sink.UpsertMove(ctx, move))
	require.NoError(t, sink.UpsertMove(ctx, move))

	clash := &pokedex.MoveDef{Name: "DoubleEdge", Introduced: 1, Type: typechart.Normal, Power: 100, PP: 15}
	err = sink.UpsertMove(ctx, clash)
	require.ErrorIs(t, err, importer.ErrIDCollision)

	// Species and moves live in separate directories.
	require.NoError(t, sink.UpsertSpecies(ctx, &pokedex.SpeciesDef{Name: "DoubleEdge", Introduced: 1}))
}

func TestProperty_NameToID_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.String().Draw(t, "name")
		id := importer.NameToID(name)
		if importer.NameToID(id) != id {
			t.Fatalf("NameToID not idempotent for %q", name)
		}
		for _, r := range id {
			if r != '_' && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
				t.Fatalf("NameToID(%q) = %q contains %q", name, id, r)
			}
		}
	})
}
