package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Phase int

const (
	Fresh  Phase = iota // no mines placed yet
	Active              // mines placed, revealing
	Lost
	Won
)

func (p Phase) String() string {
	switch p {
	case Fresh:
		return "fresh"
	case Active:
		return "active"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

func (p Phase) Over() bool {
	return p == Lost || p == Won
}

// Game is one play-through on one board. A Game is not safe for concurrent
// use.
type Game struct {
	board       Board
	width       int
	height      int
	mineDensity float64
	mineCount   int
	phase       Phase
	rnd         *rand.Rand
	observers   []observerEntry
	nextObs     int
}

type Option func(*Game)

// WithRand replaces the entropy source used to place mines.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		g.rnd = r
	}
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// NewGame returns a fresh game for d. An invalid d falls back to [Default].
func NewGame(d Difficulty, opts ...Option) *Game {
	if err := d.Validate(); err != nil {
		Log.WithError(err).Warn("invalid difficulty, using default")
		d = Default
	}
	g := &Game{
		width:       d.Width,
		height:      d.Height,
		mineDensity: d.MineDensity,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = newRand()
	}
	g.initializeBoard()
	return g
}

func (g *Game) Width() int { return g.width }
func (g *Game) Height() int { return g.height }
func (g *Game) MineDensity() float64 { return g.mineDensity }
func (g *Game) MineCount() int { return g.mineCount }
func (g *Game) Phase() Phase { return g.phase }
func (g *Game) GameOver() bool { return g.phase == Lost }
func (g *Game) GameWon() bool { return g.phase == Won }
func (g *Game) Board() Board { return g.board.Clone() }
func (g *Game) Difficulty() Difficulty {
	return Difficulty{Width: g.width, Height: g.height, MineDensity: g.mineDensity}
}

func (g *Game) Cell(x, y int) (Cell, error) {
	if err := g.validatePosition(x, y); err != nil {
		return Cell{}, err
	}
	return g.board[y][x], nil
}

func (g *Game) validatePosition(x, y int) error {
	if !g.board.InBounds(x, y) {
		return fmt.Errorf("%w: %d:%d on a %dx%d board", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return nil
}

// RemainingMines is the mine count minus the number of flags. It goes
// negative when the player over-flags. Before the first open it is based on
// the count the current configuration will place.
func (g *Game) RemainingMines() int {
	mines := iif(g.phase == Fresh, g.Difficulty().PlacedMines(), g.mineCount)
	flags := 0
	for y := range g.board {
		for x := range g.board[y] {
			if g.board[y][x].Flagged {
				flags++
			}
		}
	}
	return mines - flags
}

func (g *Game) View() Grid {
	grid := make(Grid, 0, g.width*g.height)
	for y := range g.board {
		for x := range g.board[y] {
			grid = append(grid, cellState(&g.board[y][x], g.phase))
		}
	}
	return grid
}

func (g *Game) initializeBoard() {
	g.board = newBoard(g.width, g.height)
	g.phase = Fresh
}

// NewGame discards the current board and starts over with the same
// configuration. Mines are placed on the next open.
func (g *Game) NewGame() {
	g.initializeBoard()
	g.notify(Event{Type: EventReset, Phase: g.phase})
}

func (g *Game) SetDifficulty(d Difficulty) error {
	if err := d.Validate(); err != nil {
		return err
	}
	g.width, g.height, g.mineDensity = d.Unpack()
	g.NewGame()
	return nil
}

func (g *Game) SetCustomGame(width, height, mineCount int) error {
	d, err := Custom(width, height, mineCount)
	if err != nil {
		return err
	}
	return g.SetDifficulty(d)
}

// OpenCell reveals x,y. The first open of a game places the mines so that
// neither x,y nor its neighbours are mined.
func (g *Game) OpenCell(x, y int) error {
	if err := g.validatePosition(x, y); err != nil {
		return err
	}
	g.open(x, y)
	return nil
}

func (g *Game) open(x, y int) {
	if g.phase.Over() {
		return
	}
	c := &g.board[y][x]
	if c.Revealed || c.Flagged {
		return
	}

	if g.phase == Fresh {
		g.generateMines(x, y)
		g.updateNumbers()
		g.phase = Active
	}

	c.Revealed = true

	if c.Mine {
		g.phase = Lost
		g.notify(Event{Type: EventLost, X: x, Y: y, Phase: g.phase})
		return
	}

	if c.AdjacentMines == 0 {
		g.revealAdjacentEmpty(x, y)
	}

	g.checkWin()

	if g.phase == Won {
		g.notify(Event{Type: EventWon, X: x, Y: y, Phase: g.phase})
	} else {
		g.notify(Event{Type: EventOpen, X: x, Y: y, Phase: g.phase})
	}
}

// revealAdjacentEmpty expands the zero region around the already revealed
// cell x,y together with its numbered border. Flagged cells stop the
// expansion.
func (g *Game) revealAdjacentEmpty(x, y int) {
	visited := make([]bool, g.width*g.height)
	visited[y*g.width+x] = true
	stack := g.board.neighbours(x, y)

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i := p.y*g.width + p.x
		if visited[i] {
			continue
		}
		visited[i] = true

		c := &g.board[p.y][p.x]
		if c.Revealed || c.Flagged {
			continue
		}
		c.Revealed = true

		if c.AdjacentMines == 0 {
			stack = append(stack, g.board.neighbours(p.x, p.y)...)
		}
	}
}

func (g *Game) checkWin() {
	for y := range g.board {
		for x := range g.board[y] {
			if c := &g.board[y][x]; !c.Revealed && !c.Mine {
				return
			}
		}
	}
	g.phase = Won
}

// FlagCell toggles the flag on an unrevealed cell.
func (g *Game) FlagCell(x, y int) error {
	if err := g.validatePosition(x, y); err != nil {
		return err
	}
	if g.phase.Over() {
		return nil
	}
	c := &g.board[y][x]
	if c.Revealed {
		return nil
	}
	c.Flagged = !c.Flagged
	g.notify(Event{Type: EventFlag, X: x, Y: y, Phase: g.phase})
	return nil
}

// ChordCell opens every unflagged neighbour of an open numbered cell once
// the player has placed as many flags around it as it has mined neighbours.
func (g *Game) ChordCell(x, y int) error {
	if err := g.validatePosition(x, y); err != nil {
		return err
	}
	c := &g.board[y][x]
	if g.phase != Active || !c.Revealed || c.Mine || c.AdjacentMines == 0 {
		return nil
	}
	flags := g.board.countNeighbours(x, y, func(n *Cell) bool {
		return n.Flagged
	})
	if flags != c.AdjacentMines {
		return nil
	}
	for _, p := range g.board.neighbours(x, y) {
		g.open(p.x, p.y)
		if g.phase.Over() {
			break
		}
	}
	return nil
}
