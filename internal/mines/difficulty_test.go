package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetMineCounts(t *testing.T) {
	tests := []struct {
		d         Difficulty
		mineCount int
	}{
		{Easy, 6},
		{Medium, 15},
		{Hard, 28},
		{Expert, 64},
		{Default, 15},
	}
	for _, test := range tests {
		assert.Equal(t, test.mineCount, test.d.MineCount(), test.d.Key)
		assert.NoError(t, test.d.Validate(), test.d.Key)
	}
}

func TestDifficultyByName(t *testing.T) {
	d, ok := DifficultyByName("Expert")
	require.True(t, ok)
	assert.Equal(t, Expert, d)

	d, ok = DifficultyByName("简单")
	require.True(t, ok)
	assert.Equal(t, Easy, d)

	_, ok = DifficultyByName("impossible")
	assert.False(t, ok)
}

func TestCustomKeepsExactCount(t *testing.T) {
	for _, test := range []struct{ w, h, m int }{
		{9, 9, 10},
		{16, 16, 40},
		{30, 16, 99},
		{7, 3, 20},
		{5, 5, 0},
	} {
		d, err := Custom(test.w, test.h, test.m)
		require.NoError(t, err)
		assert.Equal(t, test.m, d.MineCount(), "%dx%d(%d)", test.w, test.h, test.m)
	}
}

func TestDifficultyValidate(t *testing.T) {
	tests := []struct {
		name string
		d    Difficulty
		err  error
	}{
		{"zero width", Difficulty{Width: 0, Height: 8}, ErrInvalidDimensions},
		{"too tall", Difficulty{Width: 8, Height: MaxSide + 1}, ErrInvalidDimensions},
		{"negative density", Difficulty{Width: 8, Height: 8, MineDensity: -0.1}, ErrInvalidDensity},
		{"full density", Difficulty{Width: 8, Height: 8, MineDensity: 1}, ErrInvalidDensity},
		{"ok", Difficulty{Width: 1, Height: 1}, nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.d.Validate()
			if test.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, test.err)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("hard")
	require.NoError(t, err)
	assert.Equal(t, Hard, d)

	d, err = ParseDifficulty(Expert.String())
	require.NoError(t, err)
	assert.Equal(t, Expert.Width, d.Width)
	assert.Equal(t, Expert.Height, d.Height)
	assert.Equal(t, Expert.MineDensity, d.MineDensity)

	_, err = ParseDifficulty("16:16")
	assert.Error(t, err)

	_, err = ParseDifficulty("16:16:1.5")
	assert.ErrorIs(t, err, ErrInvalidDensity)
}

func TestPlacedMines(t *testing.T) {
	tests := []struct {
		d        Difficulty
		capacity int
		placed   int
	}{
		{Expert, 247, 64},
		{Difficulty{Width: 8, Height: 8, MineDensity: 60.0 / 64.0}, 55, 55},
		{Difficulty{Width: 4, Height: 2, MineDensity: 0.9}, 2, 2},
		{Difficulty{Width: 3, Height: 3, MineDensity: 0.5}, 0, 0},
		{Difficulty{Width: 1, Height: 10, MineDensity: 0.5}, 7, 5},
	}
	for _, test := range tests {
		assert.Equal(t, test.capacity, test.d.Capacity(), test.d.String())
		assert.Equal(t, test.placed, test.d.PlacedMines(), test.d.String())
	}
}
