package mines

// Cell is a single grid position. X and Y never change after the board is
// allocated.
type Cell struct {
	X             int  `json:"x"`
	Y             int  `json:"y"`
	Revealed      bool `json:"revealed"`
	Flagged       bool `json:"flagged"`
	Mine          bool `json:"mine"`
	AdjacentMines int  `json:"adjacent_mines"`
}

// Board is indexed [row][col], i.e. b[y][x].
type Board [][]Cell

func newBoard(width, height int) Board {
	b := make(Board, height)
	for y := range height {
		b[y] = make([]Cell, width)
		for x := range width {
			b[y][x] = Cell{X: x, Y: y}
		}
	}
	return b
}

func (b Board) Height() int {
	return len(b)
}

func (b Board) Width() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

func (b Board) InBounds(x, y int) bool {
	return 0 <= y && y < len(b) && 0 <= x && x < len(b[y])
}

// neighbours returns the in-bounds cells surrounding x,y, excluding x,y.
func (b Board) neighbours(x, y int) []point {
	ps := make([]point, 0, len(directions))
	for _, d := range directions {
		if b.InBounds(x+d.x, y+d.y) {
			ps = append(ps, point{x + d.x, y + d.y})
		}
	}
	return ps
}

func (b Board) countNeighbours(x, y int, pred func(c *Cell) bool) (n int) {
	for _, p := range b.neighbours(x, y) {
		if pred(&b[p.y][p.x]) {
			n++
		}
	}
	return
}

func (b Board) Clone() Board {
	c := make(Board, len(b))
	for y := range b {
		c[y] = make([]Cell, len(b[y]))
		copy(c[y], b[y])
	}
	return c
}

// Mines returns the number of mined cells.
func (b Board) Mines() (n int) {
	for y := range b {
		for x := range b[y] {
			if b[y][x].Mine {
				n++
			}
		}
	}
	return
}
