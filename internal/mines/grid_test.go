package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	b, err := NewGrid(DefaultRows, DefaultCols)
	require.NoError(t, err)
	assert.Equal(t, 20, b.Rows)
	assert.Equal(t, 15, b.Cols)
	assert.False(t, b.Annotated())

	n := 0
	for c := range b.Cells() {
		assert.Equal(t, Cell{Row: n / 15, Col: n % 15, State: Unopened, Adjacent: NoCount}, c)
		n++
	}
	assert.Equal(t, 300, n)
}

func TestNewGridInvalid(t *testing.T) {
	_, err := NewGrid(0, 3)
	assert.ErrorAs(t, err, new(InvalidParamsError))
	_, err = NewGrid(3, -1)
	assert.ErrorAs(t, err, new(InvalidParamsError))
}

func TestApplyMinesIndexMapping(t *testing.T) {
	b, err := NewGrid(4, 5)
	require.NoError(t, err)
	require.NoError(t, b.ApplyMines([]int{0, 7, 19}))

	for _, p := range []Position{{0, 0}, {1, 2}, {3, 4}} {
		c, ok := b.Cell(p.Row, p.Col)
		require.True(t, ok)
		assert.True(t, c.Mine, "cell %d:%d", p.Row, p.Col)
	}
	assert.Equal(t, 3, b.MineCount)
}

func TestApplyMinesRejects(t *testing.T) {
	b, err := NewGrid(2, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, b.ApplyMines([]int{4}), ErrOutOfBounds)
	assert.ErrorIs(t, b.ApplyMines([]int{-1}), ErrOutOfBounds)
	var dup DuplicateMineError
	require.ErrorAs(t, b.ApplyMines([]int{1, 3, 1}), &dup)
	assert.Equal(t, 1, dup.Index)
	assert.Equal(t, "mine index 1 given more than once", dup.Error())
	assert.Equal(t, 0, b.MineCount)
}

func TestCellOutOfBounds(t *testing.T) {
	b, err := NewGrid(2, 3)
	require.NoError(t, err)

	for _, p := range []Position{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, ok := b.Cell(p.Row, p.Col)
		assert.False(t, ok, "cell %d:%d", p.Row, p.Col)
	}
}

func TestToggleFlagRoundTrip(t *testing.T) {
	c := Cell{State: Unopened}
	require.True(t, c.ToggleFlag())
	assert.Equal(t, Flagged, c.State)
	require.True(t, c.ToggleFlag())
	assert.Equal(t, Unopened, c.State)
}

func TestToggleFlagOpened(t *testing.T) {
	c := Cell{State: Opened}
	assert.False(t, c.ToggleFlag())
	assert.Equal(t, Opened, c.State)
}

func TestBoardToggleFlag(t *testing.T) {
	b := boardWithMines(t, 3, 3, Position{0, 0})

	c, err := b.ToggleFlag(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Flagged, c.State)

	_, err = b.ToggleFlag(3, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = b.Reveal(2, 2, nil)
	require.NoError(t, err)
	c, err = b.ToggleFlag(2, 2)
	require.NoError(t, err)
	assert.Equal(t, Opened, c.State)
}

func TestBoardString(t *testing.T) {
	b := boardWithMines(t, 2, 3, Position{0, 0})
	_, err := b.ToggleFlag(0, 0)
	require.NoError(t, err)
	_, err = b.Reveal(0, 1, nil)
	require.NoError(t, err)
	_, err = b.Reveal(1, 2, nil)
	require.NoError(t, err)

	assert.Equal(t, "* 1 . \n  1 . \n", b.String())
}

func TestCellStateString(t *testing.T) {
	assert.Equal(t, "unopened", Unopened.String())
	assert.Equal(t, "opened", Opened.String())
	assert.Equal(t, "flagged", Flagged.String())
	assert.Equal(t, "CellState(7)", CellState(7).String())
}
