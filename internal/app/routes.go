package app

import (
	"hash/maphash"
	"math/rand/v2"
	"net/http"

	"github.com/vancomm/minesweeper-canvas/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.logger, a.repo, a.ws, createRand)

	a.router.Handle("GET /", http.FileServerFS(a.static))
	a.router.HandleFunc("GET /status", handlers.Status)
	a.router.HandleFunc("GET /game/connect", game.Connect)
	a.router.HandleFunc("GET /game/{id}", game.Fetch)
	a.router.HandleFunc("GET /game/{id}/board.png", game.Snapshot)
}
