package app

import (
	"github.com/vancomm/minesweeper/internal/handlers"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(
		a.log, a.cfg.WebSocket, a.cfg.DefaultDifficulty,
	)

	a.router.HandleFunc("GET /difficulties", game.Difficulties)
	a.router.HandleFunc("GET /play", game.Play)
}
