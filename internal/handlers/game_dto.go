package handlers

import (
	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/mines"
)

// CreateNewGameDTO selects the board for a new connection. A preset name
// wins over explicit dimensions; an empty query uses the server default.
type CreateNewGameDTO struct {
	Difficulty string `schema:"difficulty"`
	Width      int    `schema:"width"`
	Height     int    `schema:"height"`
	MineCount  int    `schema:"mine_count"`
}

func ParseCreateNewGameDTO(src map[string][]string) (CreateNewGameDTO, error) {
	var dto CreateNewGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

func (dto CreateNewGameDTO) ToDifficulty(fallback mines.Difficulty) (mines.Difficulty, error) {
	switch {
	case dto.Difficulty != "":
		return mines.ParseDifficulty(dto.Difficulty)
	case dto.Width != 0 || dto.Height != 0:
		return mines.Custom(dto.Width, dto.Height, dto.MineCount)
	default:
		return fallback, nil
	}
}

type GameDTO struct {
	Grid           mines.Grid `json:"grid"`
	Width          int        `json:"width"`
	Height         int        `json:"height"`
	MineCount      int        `json:"mine_count"`
	MineDensity    float64    `json:"mine_density"`
	RemainingMines int        `json:"remaining_mines"`
	Phase          string     `json:"phase"`
	Dead           bool       `json:"dead"`
	Won            bool       `json:"won"`
	// Error is set when a frame failed partway. The rest of the DTO is the
	// state after the commands that did run.
	Error string `json:"error,omitempty"`
}

func NewGameDTO(g *mines.Game) *GameDTO {
	mineCount := g.MineCount()
	if g.Phase() == mines.Fresh {
		mineCount = g.Difficulty().PlacedMines()
	}
	return &GameDTO{
		Grid:           g.View(),
		Width:          g.Width(),
		Height:         g.Height(),
		MineCount:      mineCount,
		MineDensity:    g.MineDensity(),
		RemainingMines: g.RemainingMines(),
		Phase:          g.Phase().String(),
		Dead:           g.GameOver(),
		Won:            g.GameWon(),
	}
}
