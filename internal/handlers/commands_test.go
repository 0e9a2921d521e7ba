package handlers

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

func newTestGame() *mines.Game {
	return mines.NewGame(mines.Easy, mines.WithRand(rand.New(rand.NewPCG(1, 2))))
}

func TestExecuteCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		command string
	}{
		{"unknown", "x 1 1"},
		{"missing args", "o 1"},
		{"extra args", "g 1"},
		{"not an int", "o a 1"},
		{"out of bounds", "o 8 0"},
		{"unknown difficulty", "d impossible"},
		{"bad custom", "s 0 0 0"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Error(t, executeCommand(newTestGame(), test.command))
		})
	}
}

func TestExecuteCommand(t *testing.T) {
	g := newTestGame()

	require.NoError(t, executeCommand(g, "g"))
	assert.Equal(t, mines.Fresh, g.Phase())

	require.NoError(t, executeCommand(g, "o 3 3"))
	assert.NotEqual(t, mines.Fresh, g.Phase())
	c, _ := g.Cell(3, 3)
	assert.True(t, c.Revealed)

	require.NoError(t, executeCommand(g, "n"))
	assert.Equal(t, mines.Fresh, g.Phase())

	require.NoError(t, executeCommand(g, "f 0 0"))
	c, _ = g.Cell(0, 0)
	assert.True(t, c.Flagged)

	require.NoError(t, executeCommand(g, "d expert"))
	assert.Equal(t, 16, g.Width())

	require.NoError(t, executeCommand(g, "s 30 16 99"))
	assert.Equal(t, 30, g.Width())
	assert.Equal(t, 16, g.Height())

	require.NoError(t, executeCommand(g, "c 0 0"))
	require.NoError(t, executeCommand(g, "   "))
}

func TestExecuteCommands(t *testing.T) {
	g := newTestGame()
	require.NoError(t, executeCommands(g, "f 7 7\nf 7 6\n"))
	c, _ := g.Cell(7, 6)
	assert.True(t, c.Flagged)

	err := executeCommands(g, "f 0 0\nq\nf 1 1")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	c, _ = g.Cell(0, 0)
	assert.True(t, c.Flagged)
	c, _ = g.Cell(1, 1)
	assert.False(t, c.Flagged)
}
