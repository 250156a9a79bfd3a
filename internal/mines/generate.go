package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// PlaceMines picks mineCount distinct cell indices out of total, uniformly
// without replacement.
func PlaceMines(total, mineCount int, r *rand.Rand) ([]int, error) {
	if total <= 0 || mineCount < 0 || mineCount > total {
		return nil, PlacementError{Total: total, MineCount: mineCount}
	}

	positions := r.Perm(total)[:mineCount]
	Log.WithFields(logrus.Fields{
		"total":     total,
		"mineCount": mineCount,
		"positions": positions,
	}).Debug("placed mines")

	return positions, nil
}

// NewBoard builds a ready-to-play board: grid, mines and adjacency counts.
func NewBoard(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	rows, cols, mineCount := params.Unpack()

	board, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	positions, err := PlaceMines(rows*cols, mineCount, r)
	if err != nil {
		return nil, err
	}
	if err := board.ApplyMines(positions); err != nil {
		return nil, err
	}
	if err := board.ComputeAdjacency(); err != nil {
		return nil, err
	}
	return board, nil
}

// ComputeAdjacency stores, for every non-mine cell, the number of mines among
// its neighbours. It must run once, after the mines are applied and before
// the first reveal.
func (b *Board) ComputeAdjacency() error {
	if b.annotated {
		return ErrAnnotated
	}
	for i := range b.cells {
		c := &b.cells[i]
		if c.Mine {
			continue
		}
		count := 0
		for n := range b.neighbors(Position{c.Row, c.Col}) {
			if b.cells[n.Row*b.Cols+n.Col].Mine {
				count++
			}
		}
		c.Adjacent = count
	}
	b.annotated = true

	Log.WithFields(logrus.Fields{
		"rows":      b.Rows,
		"cols":      b.Cols,
		"mineCount": b.MineCount,
	}).Debug("computed adjacency")

	return nil
}
