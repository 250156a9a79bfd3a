package handlers

import (
	"fmt"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper-canvas/internal/mines"
	"github.com/vancomm/minesweeper-canvas/internal/render"
	"github.com/vancomm/minesweeper-canvas/internal/repository"
)

const (
	defaultSnapshotScale = 4
	maxSnapshotScale     = 16
)

type SnapshotDTO struct {
	Scale int `schema:"scale"`
}

func ParseSnapshotDTO(src map[string][]string) (SnapshotDTO, error) {
	dto := SnapshotDTO{Scale: defaultSnapshotScale}
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&dto, src); err != nil {
		return dto, err
	}
	if dto.Scale < 1 || dto.Scale > maxSnapshotScale {
		return dto, fmt.Errorf("scale must be between 1 and %d", maxSnapshotScale)
	}
	return dto, nil
}

type GameSessionDTO struct {
	GameSessionId string           `json:"game_session_id"`
	Rows          int              `json:"rows"`
	Cols          int              `json:"cols"`
	MineCount     int              `json:"mine_count"`
	CellSize      int              `json:"cell_size"`
	Grid          []string         `json:"grid"`
	MinesRevealed []mines.Position `json:"mines_revealed"`
	StartedAt     int64            `json:"started_at"`
}

// NewGameSessionDTO must be called with the session locked.
func NewGameSessionDTO(s *repository.GameSession, cellSize int) *GameSessionDTO {
	grid := make([]string, 0, s.Board.Rows*s.Board.Cols)
	for c := range s.Board.Cells() {
		grid = append(grid, c.String())
	}
	revealed := s.MinesRevealed
	if revealed == nil {
		revealed = []mines.Position{}
	}
	return &GameSessionDTO{
		GameSessionId: s.GameSessionId.String(),
		Rows:          s.Board.Rows,
		Cols:          s.Board.Cols,
		MineCount:     s.Board.MineCount,
		CellSize:      cellSize,
		Grid:          grid,
		MinesRevealed: revealed,
		StartedAt:     s.StartedAt.UnixMilli(),
	}
}

type frameType string

const (
	frameHello  frameType = "hello"
	frameUpdate frameType = "update"
	frameError  frameType = "error"
)

// frameDTO is what the page receives over the socket. Hello frames carry the
// board geometry; every frame may carry draw ops to replay in order.
type frameDTO struct {
	Type          frameType        `json:"type"`
	GameSessionId string           `json:"game_session_id,omitempty"`
	Rows          int              `json:"rows,omitempty"`
	Cols          int              `json:"cols,omitempty"`
	MineCount     int              `json:"mine_count,omitempty"`
	CellSize      int              `json:"cell_size,omitempty"`
	Ops           []render.DrawOp  `json:"ops"`
	MinesRevealed []mines.Position `json:"mines_revealed,omitempty"`
	Error         string           `json:"error,omitempty"`
}
