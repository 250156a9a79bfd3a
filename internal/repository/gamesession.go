package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vancomm/minesweeper-canvas/internal/mines"
)

// GameSession owns one board. Hold the embedded mutex while touching Board or
// MinesRevealed.
type GameSession struct {
	sync.Mutex
	GameSessionId uuid.UUID
	Board         *mines.Board
	MinesRevealed []mines.Position
	StartedAt     time.Time
}

func (s *GameSession) RecordMineRevealed(p mines.Position) {
	if !slices.Contains(s.MinesRevealed, p) {
		s.MinesRevealed = append(s.MinesRevealed, p)
	}
}

func (q *Queries) CreateGameSession(
	ctx context.Context, board *mines.Board,
) (*GameSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	id := uuid.New()
	for {
		if _, taken := q.sessions[id]; !taken {
			break
		}
		id = uuid.New()
	}

	session := &GameSession{
		GameSessionId: id,
		Board:         board,
		StartedAt:     time.Now().UTC(),
	}
	q.sessions[id] = session
	return session, nil
}

func (q *Queries) FetchGameSession(
	ctx context.Context, gameSessionId uuid.UUID,
) (*GameSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q.mu.RLock()
	defer q.mu.RUnlock()

	session, ok := q.sessions[gameSessionId]
	if !ok {
		return nil, ErrNoSession
	}
	return session, nil
}

func (q *Queries) DeleteGameSession(gameSessionId uuid.UUID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.sessions, gameSessionId)
}

func (q *Queries) CountGameSessions() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.sessions)
}
