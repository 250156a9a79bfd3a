package mines

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds  = errors.New("position out of bounds")
	ErrNotAnnotated = errors.New("adjacency counts have not been computed")
	ErrAnnotated    = errors.New("adjacency counts already computed")
)

type InvalidParamsError struct {
	Rows, Cols, MineCount int
}

// [InvalidParamsError] implements [error]
func (e InvalidParamsError) Error() string {
	switch {
	case e.Rows <= 0:
		return fmt.Sprintf("cannot create a board with %d rows", e.Rows)
	case e.Cols <= 0:
		return fmt.Sprintf("cannot create a board with %d columns", e.Cols)
	case e.MineCount < 0:
		return fmt.Sprintf("cannot place a negative amount of mines: %d", e.MineCount)
	case e.MineCount > e.Rows*e.Cols:
		return fmt.Sprintf(
			"not enough space for %d mines (%d > %d * %d)",
			e.MineCount, e.MineCount, e.Rows, e.Cols,
		)
	default:
		return "invalid board params"
	}
}

// PlacementError reports a mine count that cannot be drawn from total cells.
type PlacementError struct {
	Total, MineCount int
}

func (e PlacementError) Error() string {
	switch {
	case e.Total <= 0:
		return fmt.Sprintf("cannot place mines on %d cells", e.Total)
	case e.MineCount < 0:
		return fmt.Sprintf("cannot place a negative amount of mines: %d", e.MineCount)
	default:
		return fmt.Sprintf("not enough space for %d mines (%d cells)", e.MineCount, e.Total)
	}
}

// DuplicateMineError reports a cell index given more than once to ApplyMines.
type DuplicateMineError struct {
	Index int
}

func (e DuplicateMineError) Error() string {
	return fmt.Sprintf("mine index %d given more than once", e.Index)
}
