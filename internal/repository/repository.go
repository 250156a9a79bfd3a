// Package repository keeps the games that are currently being played. Sessions
// live in memory for as long as their connection is open.
package repository

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrNoSession = errors.New("game session not found")

type Queries struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*GameSession
}

func New() *Queries {
	return &Queries{sessions: make(map[uuid.UUID]*GameSession)}
}
