package csvsrc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/pokedex"
	"github.com/cory-johannsen/pkmn/internal/game/typechart"
	"github.com/cory-johannsen/pkmn/internal/importer/csvsrc"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func sampleDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	write(t, dir, "species.csv", `name,introduced,chance_male,chance_female,hp,attack,defense,speed,special_attack,special_defense,special,abilities,hidden_ability,height,weight,base_friendship
Pikachu,1,0.5,0.5,35,55,40,90,50,50,50,Static,Lightning Rod,0.4,6.0,70
Ralts,3,0.5,0.5,28,25,25,40,45,35,,Synchronize; Trace,Telepathy,0.4,6.6,35
`)
	write(t, dir, "species_overrides.csv", `species,through,hp,attack,defense,speed,special_attack,special_defense,special
Pikachu,5,35,55,30,90,50,40,50
`)
	write(t, dir, "moves.csv", `name,introduced,type,power,pp
Bite,1,Dark,60,25
Tackle,1,Normal,50,35
`)
	write(t, dir, "move_overrides.csv", `move,through,type,power,pp
Bite,1,Normal,,
Tackle,4,,35,
`)
	return dir
}

func TestSource_Load(t *testing.T) {
	content, err := csvsrc.NewSource().Load(sampleDir(t))
	require.NoError(t, err)
	require.Len(t, content.Species, 2)
	require.Len(t, content.Moves, 2)

	ralts := content.Species[1]
	assert.Equal(t, []string{"Synchronize", "Trace"}, ralts.Abilities)
	assert.Equal(t, 0, ralts.BaseStats.Special)

	pika := content.Species[0]
	require.Len(t, pika.Overrides, 1)
	assert.Equal(t, 30, pika.Overrides[0].BaseStats.Defense)

	bite := content.Moves[0]
	assert.Equal(t, typechart.Dark, bite.Type)
	require.Len(t, bite.Overrides, 1)
	require.NotNil(t, bite.Overrides[0].Type)
	assert.Equal(t, typechart.Normal, *bite.Overrides[0].Type)
	assert.Nil(t, bite.Overrides[0].Power)

	tackle := content.Moves[1]
	require.NotNil(t, tackle.Overrides[0].Power)
	assert.Equal(t, 35, *tackle.Overrides[0].Power)
	assert.Nil(t, tackle.Overrides[0].PP)
	assert.Nil(t, tackle.Overrides[0].Type)
}

func TestSource_LoadedContentResolves(t *testing.T) {
	content, err := csvsrc.NewSource().Load(sampleDir(t))
	require.NoError(t, err)
	mem := pokedex.NewMemory()
	for _, d := range content.Species {
		require.NoError(t, mem.RegisterSpecies(d))
	}
	for _, d := range content.Moves {
		require.NoError(t, mem.RegisterMove(d))
	}

	bite, err := mem.Move("Bite", generation.Red)
	require.NoError(t, err)
	assert.Equal(t, typechart.Normal, bite.Type)
	bite, err = mem.Move("Bite", generation.Gold)
	require.NoError(t, err)
	assert.Equal(t, typechart.Dark, bite.Type)

	tackle, err := mem.Move("Tackle", generation.Platinum)
	require.NoError(t, err)
	assert.Equal(t, 35, tackle.Power)
}

func TestSource_OverridesOptional(t *testing.T) {
	dir := sampleDir(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "species_overrides.csv")))
	require.NoError(t, os.Remove(filepath.Join(dir, "move_overrides.csv")))
	content, err := csvsrc.NewSource().Load(dir)
	require.NoError(t, err)
	assert.Empty(t, content.Moves[0].Overrides)
}

func TestSource_Errors(t *testing.T) {
	t.Run("missing species table", func(t *testing.T) {
		_, err := csvsrc.NewSource().Load(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "species.csv")
	})
	t.Run("unknown type", func(t *testing.T) {
		dir := sampleDir(t)
		write(t, dir, "moves.csv", "name,introduced,type,power,pp\nTackle,1,Sound,40,35\n")
		_, err := csvsrc.NewSource().Load(dir)
		require.Error(t, err)
	})
	t.Run("override for unknown move", func(t *testing.T) {
		dir := sampleDir(t)
		write(t, dir, "move_overrides.csv", "move,through,type,power,pp\nSplash,3,,,\n")
		_, err := csvsrc.NewSource().Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Splash")
	})
}
