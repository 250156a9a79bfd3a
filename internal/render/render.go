// Package render draws board cells. Coordinates passed to a [Renderer] are the
// pixel coordinates of a cell's top-left corner.
package render

import "github.com/vancomm/minesweeper-canvas/internal/mines"

const DefaultCellSize = 5

type Renderer interface {
	DrawUnopened(x, y int)
	// DrawOpened draws an opened cell; count 0 leaves it blank.
	DrawOpened(x, y, count int)
	DrawFlag(x, y int)
	DrawMine(x, y int)
}

func Origin(p mines.Position, cellSize int) (x, y int) {
	return p.Col * cellSize, p.Row * cellSize
}

// DrawCell draws c as the player sees it. Unopened mines look like any other
// unopened cell.
func DrawCell(r Renderer, cellSize int, c mines.Cell) {
	x, y := Origin(mines.Position{Row: c.Row, Col: c.Col}, cellSize)
	switch c.State {
	case mines.Opened:
		r.DrawOpened(x, y, c.Adjacent)
	case mines.Flagged:
		r.DrawFlag(x, y)
	default:
		r.DrawUnopened(x, y)
	}
}

func DrawBoard(r Renderer, cellSize int, b *mines.Board) {
	for c := range b.Cells() {
		DrawCell(r, cellSize, c)
	}
}
