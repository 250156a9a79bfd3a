package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/google/uuid"

	"github.com/vancomm/minesweeper-canvas/internal/config"
	"github.com/vancomm/minesweeper-canvas/internal/render"
	"github.com/vancomm/minesweeper-canvas/internal/repository"
)

type GameHandler struct {
	logger   *slog.Logger
	repo     *repository.Queries
	ws       *config.WebSocket
	newRand  func() *rand.Rand
	cellSize int
}

func NewGameHandler(
	logger *slog.Logger,
	repo *repository.Queries,
	ws *config.WebSocket,
	newRand func() *rand.Rand,
) *GameHandler {
	return &GameHandler{
		logger:   logger,
		repo:     repo,
		ws:       ws,
		newRand:  newRand,
		cellSize: render.DefaultCellSize,
	}
}

func (g GameHandler) fetchSession(w http.ResponseWriter, r *http.Request) (*repository.GameSession, bool) {
	sessionId, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		sendError(w, g.logger, http.StatusBadRequest, errors.New("invalid game session id"))
		return nil, false
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, repository.ErrNoSession) {
		sendError(w, g.logger, http.StatusNotFound, err)
		return nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch game session", slog.Any("error", err))
		return nil, false
	}
	return session, true
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	session.Lock()
	dto := NewGameSessionDTO(session, g.cellSize)
	session.Unlock()

	sendJSONOrLog(w, g.logger, dto)
}

// Snapshot renders the live board to PNG. Mines the player has hit are drawn
// on top.
func (g GameHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseSnapshotDTO(r.URL.Query())
	if err != nil {
		sendError(w, g.logger, http.StatusBadRequest, err)
		return
	}

	session, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	size := g.cellSize * dto.Scale

	session.Lock()
	img := render.NewImage(session.Board.Rows, session.Board.Cols, size)
	render.DrawBoard(img, size, session.Board)
	for _, p := range session.MinesRevealed {
		img.DrawMine(render.Origin(p, size))
	}
	session.Unlock()

	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to encode snapshot", slog.Any("error", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(buf.Bytes()); err != nil {
		g.logger.Warn("unable to send snapshot", slog.Any("error", err))
	}
}
