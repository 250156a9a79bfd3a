package mines

import (
	"iter"
	"strconv"
	"strings"
)

type CellState int8

const (
	Unopened CellState = iota
	Opened
	Flagged
)

func (s CellState) String() string {
	switch s {
	case Unopened:
		return "unopened"
	case Opened:
		return "opened"
	case Flagged:
		return "flagged"
	default:
		return "CellState(" + strconv.Itoa(int(s)) + ")"
	}
}

// NoCount marks a cell whose adjacency count is not meaningful: mines, and
// every cell before [Board.ComputeAdjacency] runs.
const NoCount = -1

type Cell struct {
	Row, Col int
	Mine     bool
	State    CellState
	Adjacent int
}

// String renders the cell as the player sees it.
func (c Cell) String() string {
	switch c.State {
	case Flagged:
		return "*"
	case Opened:
		if c.Adjacent == 0 {
			return "."
		}
		return strconv.Itoa(c.Adjacent)
	default:
		return " "
	}
}

// ToggleFlag reports whether the state changed. Opened cells cannot be
// flagged.
func (c *Cell) ToggleFlag() bool {
	switch c.State {
	case Unopened:
		c.State = Flagged
	case Flagged:
		c.State = Unopened
	default:
		return false
	}
	return true
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

var offsets = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

type Board struct {
	Rows, Cols int
	MineCount  int
	cells      []Cell
	annotated  bool
}

func NewGrid(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, InvalidParamsError{Rows: rows, Cols: cols}
	}
	cells := make([]Cell, rows*cols)
	for i := range cells {
		cells[i] = Cell{
			Row:      i / cols,
			Col:      i % cols,
			State:    Unopened,
			Adjacent: NoCount,
		}
	}
	return &Board{Rows: rows, Cols: cols, cells: cells}, nil
}

func (b *Board) InBounds(row, col int) bool {
	return 0 <= row && row < b.Rows && 0 <= col && col < b.Cols
}

// Cell returns a copy of the cell at row, col.
func (b *Board) Cell(row, col int) (Cell, bool) {
	if !b.InBounds(row, col) {
		return Cell{}, false
	}
	return b.cells[row*b.Cols+col], true
}

func (b *Board) at(row, col int) (*Cell, error) {
	if !b.InBounds(row, col) {
		return nil, ErrOutOfBounds
	}
	return &b.cells[row*b.Cols+col], nil
}

// Cells yields every cell in row-major order.
func (b *Board) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, c := range b.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// neighbors yields the in-bounds positions around p.
func (b *Board) neighbors(p Position) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, o := range offsets {
			n := Position{p.Row + o.Row, p.Col + o.Col}
			if !b.InBounds(n.Row, n.Col) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

func (b *Board) Annotated() bool {
	return b.annotated
}

// ApplyMines marks the cells at the given row-major indices as mines.
func (b *Board) ApplyMines(indices []int) error {
	if b.annotated {
		return ErrAnnotated
	}
	seen := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(b.cells) {
			return ErrOutOfBounds
		}
		if _, dup := seen[i]; dup {
			return DuplicateMineError{Index: i}
		}
		seen[i] = struct{}{}
	}
	for _, i := range indices {
		if !b.cells[i].Mine {
			b.cells[i].Mine = true
			b.MineCount++
		}
	}
	return nil
}

// ToggleFlag flips the flag on the cell at row, col and returns its new value.
func (b *Board) ToggleFlag(row, col int) (Cell, error) {
	c, err := b.at(row, col)
	if err != nil {
		return Cell{}, err
	}
	c.ToggleFlag()
	return *c, nil
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.Rows {
		for col := range b.Cols {
			sb.WriteString(b.cells[row*b.Cols+col].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
