package mines

import "github.com/sirupsen/logrus"

// generateMines lays mines on a fresh board, none of which is at x,y or
// within one cell of it. Flags placed before the first open are kept.
func (g *Game) generateMines(startX, startY int) {
	d := g.Difficulty()
	g.mineCount = d.PlacedMines()
	if requested := d.MineCount(); requested > g.mineCount {
		Log.WithFields(logrus.Fields{
			"width":     g.width,
			"height":    g.height,
			"density":   g.mineDensity,
			"requested": requested,
			"capacity":  g.mineCount,
		}).Warn("mine count exceeds free cells, capping")
	}

	candidates := make([]point, 0, g.width*g.height)
	for y := range g.height {
		for x := range g.width {
			if absDiff(startY, y) > 1 || absDiff(startX, x) > 1 {
				candidates = append(candidates, point{x, y})
			}
		}
	}

	// pick mineCount cells off the list without replacement
	k := len(candidates)
	for range g.mineCount {
		i := g.rnd.IntN(k)
		p := candidates[i]
		g.board[p.y][p.x].Mine = true
		k--
		candidates[i] = candidates[k]
	}

	Log.WithFields(logrus.Fields{
		"width":  g.width,
		"height": g.height,
		"mines":  g.mineCount,
		"startX": startX,
		"startY": startY,
	}).Debug("mines generated")
}

func (g *Game) updateNumbers() {
	for y := range g.board {
		for x := range g.board[y] {
			c := &g.board[y][x]
			c.AdjacentMines = 0
			if c.Mine {
				continue
			}
			c.AdjacentMines = g.board.countNeighbours(x, y, func(n *Cell) bool {
				return n.Mine
			})
		}
	}
}
