// Package input turns pointer events on the board canvas into board moves and
// redraws whatever they changed.
package input

import (
	"fmt"
	"math"

	"github.com/vancomm/minesweeper-canvas/internal/mines"
	"github.com/vancomm/minesweeper-canvas/internal/render"
)

type Adapter struct {
	board    *mines.Board
	renderer render.Renderer
	cellSize int
	onMine   mines.MineRevealedFunc
}

// New binds an adapter to board. onMine runs after the mine has been drawn
// and may be nil.
func New(
	board *mines.Board,
	renderer render.Renderer,
	cellSize int,
	onMine mines.MineRevealedFunc,
) *Adapter {
	return &Adapter{
		board:    board,
		renderer: renderer,
		cellSize: cellSize,
		onMine:   onMine,
	}
}

// CellAt maps canvas pixel coordinates to a board position.
func (a *Adapter) CellAt(px, py float64) (mines.Position, error) {
	if math.IsNaN(px) || math.IsNaN(py) {
		return mines.Position{}, mines.ErrOutOfBounds
	}
	size := float64(a.cellSize)
	row, col := math.Floor(py/size), math.Floor(px/size)
	if row < 0 || col < 0 || row >= float64(a.board.Rows) || col >= float64(a.board.Cols) {
		return mines.Position{}, fmt.Errorf("pixel %v:%v: %w", px, py, mines.ErrOutOfBounds)
	}
	return mines.Position{Row: int(row), Col: int(col)}, nil
}

// Primary reveals the cell under the pointer.
func (a *Adapter) Primary(px, py float64) error {
	p, err := a.CellAt(px, py)
	if err != nil {
		return err
	}
	opened, err := a.board.Reveal(p.Row, p.Col, a.mineRevealed)
	if err != nil {
		return err
	}
	for _, o := range opened {
		c, _ := a.board.Cell(o.Row, o.Col)
		render.DrawCell(a.renderer, a.cellSize, c)
	}
	return nil
}

// Secondary toggles the flag on the cell under the pointer.
func (a *Adapter) Secondary(px, py float64) error {
	p, err := a.CellAt(px, py)
	if err != nil {
		return err
	}
	before, _ := a.board.Cell(p.Row, p.Col)
	after, err := a.board.ToggleFlag(p.Row, p.Col)
	if err != nil {
		return err
	}
	if after.State != before.State {
		render.DrawCell(a.renderer, a.cellSize, after)
	}
	return nil
}

func (a *Adapter) mineRevealed(p mines.Position) {
	x, y := render.Origin(p, a.cellSize)
	a.renderer.DrawMine(x, y)
	if a.onMine != nil {
		a.onMine(p)
	}
}
