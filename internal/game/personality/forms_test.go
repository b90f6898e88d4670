package personality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/pkmn/internal/game/personality"
	"github.com/cory-johannsen/pkmn/internal/game/stats"
	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

func TestGBUnownForm(t *testing.T) {
	form, err := personality.GBUnownForm(0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "A", form)

	form, err = personality.GBUnownForm(15, 15, 15, 15)
	require.NoError(t, err)
	assert.Equal(t, "Z", form)

	_, err = personality.GBUnownForm(16, 0, 0, 0)
	assert.ErrorIs(t, err, validate.ErrRange)
}

func TestUnownForm(t *testing.T) {
	assert.Equal(t, "A", personality.UnownForm(0))
	assert.Equal(t, "B", personality.UnownForm(1))
	// 26 = 0b00_01_10_10 across bytes 3..0.
	assert.Equal(t, "?", personality.UnownForm(0x00010202))
	assert.Equal(t, "!", personality.UnownForm(0x00010203))
}

func TestProperty_UnownForm_InAlphabet(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		form := personality.UnownForm(rapid.Uint32().Draw(rt, "pid"))
		assert.Contains(rt, "ABCDEFGHIJKLMNOPQRSTUVWXYZ?!", form)
		assert.Len(rt, form, 1)
	})
}

func TestSizeMillimetres(t *testing.T) {
	zero := stats.Uniform(stats.LayoutSplit, 0)
	size, err := personality.SizeMillimetres(0.7, 0, zero)
	require.NoError(t, err)
	assert.Equal(t, 203, size)

	// Largest s lands in the last band: (65535-65410)/1 + 1600 = 1725.
	size, err = personality.SizeMillimetres(1.0, 0xFFFF, zero)
	require.NoError(t, err)
	assert.Equal(t, 1725, size)

	_, err = personality.SizeMillimetres(0, 0, zero)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
	_, err = personality.SizeMillimetres(1.0, 0, stats.Uniform(stats.LayoutGameBoy, 0))
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)
}
