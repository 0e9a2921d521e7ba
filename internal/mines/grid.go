package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// CellState is what a player is allowed to see of a cell.
type CellState int8

const (
	Unknown          CellState = -2
	Flagged          CellState = -1
	CorrectlyFlagged CellState = 64 // post-game-over
	ExplodedMine     CellState = 65
	FalselyFlagged   CellState = 66
	UnflaggedMine    CellState = 67
	// 0-8 for an open cell with the given number of mined neighbours
)

func (s CellState) String() string {
	switch s {
	case Unknown:
		return " "
	case Flagged, CorrectlyFlagged:
		return "*"
	case ExplodedMine:
		return "X"
	case FalselyFlagged:
		return "x"
	case UnflaggedMine:
		return "#"
	case 0, 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

func (s CellState) Open() bool {
	return 0 <= s && s <= 8
}

// Grid is a row-major view of a board.
type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			fmt.Fprint(&b, g[y*width+x].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

func cellState(c *Cell, phase Phase) CellState {
	if c.Revealed {
		if c.Mine {
			return ExplodedMine
		}
		return CellState(c.AdjacentMines)
	}
	if !phase.Over() {
		return iif(c.Flagged, Flagged, Unknown)
	}
	switch {
	case c.Flagged:
		return iif(c.Mine, CorrectlyFlagged, FalselyFlagged)
	case c.Mine:
		return UnflaggedMine
	default:
		return Unknown
	}
}
