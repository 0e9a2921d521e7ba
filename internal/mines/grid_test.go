package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewWhilePlaying(t *testing.T) {
	g := gameFromLayout(t,
		"*..",
		"...",
	)
	g.FlagCell(0, 0)
	g.OpenCell(1, 1)

	assert.Equal(t, Grid{
		Flagged, Unknown, Unknown,
		Unknown, 1, Unknown,
	}, g.View())
	assert.Equal(t, "*     \n  1   \n", g.View().ToString(3))
}

func TestViewAfterLoss(t *testing.T) {
	g := gameFromLayout(t,
		"*.*",
		"...",
		"...",
	)
	g.FlagCell(0, 0)
	g.FlagCell(0, 2)
	g.OpenCell(2, 0)

	assert.True(t, g.GameOver())
	assert.Equal(t, Grid{
		CorrectlyFlagged, Unknown, ExplodedMine,
		Unknown, Unknown, Unknown,
		FalselyFlagged, Unknown, Unknown,
	}, g.View())
}

func TestViewAfterWin(t *testing.T) {
	g := gameFromLayout(t,
		"*..",
		"...",
		"...",
	)
	g.OpenCell(2, 2)

	assert.True(t, g.GameWon())
	assert.Equal(t, Grid{
		UnflaggedMine, 1, 0,
		1, 1, 0,
		0, 0, 0,
	}, g.View())
}

func TestCellStateString(t *testing.T) {
	assert.Equal(t, "3", CellState(3).String())
	assert.Equal(t, "*", Flagged.String())
	assert.Equal(t, "X", ExplodedMine.String())
	assert.Equal(t, "!", CellState(9).String())
	assert.True(t, CellState(0).Open())
	assert.False(t, Unknown.Open())
}
