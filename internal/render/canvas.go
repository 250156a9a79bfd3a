package render

import "strconv"

const (
	flagSymbol = "🏴"
	flagRatio  = 0.75
)

// DrawOp is one 2D canvas instruction: fill and stroke the cell square, then
// optionally draw Text with its baseline at TextX, TextY.
type DrawOp struct {
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Size      int     `json:"size"`
	Fill      string  `json:"fill"`
	Stroke    string  `json:"stroke,omitempty"`
	Text      string  `json:"text,omitempty"`
	TextColor string  `json:"text_color,omitempty"`
	FontSize  float64 `json:"font_size,omitempty"`
	TextX     float64 `json:"text_x,omitempty"`
	TextY     float64 `json:"text_y,omitempty"`
}

// Canvas records draw operations for a browser canvas to replay.
type Canvas struct {
	CellSize int
	ops      []DrawOp
}

func NewCanvas(cellSize int) *Canvas {
	return &Canvas{CellSize: cellSize}
}

func (c *Canvas) square(x, y int, fill, stroke string) DrawOp {
	return DrawOp{X: x, Y: y, Size: c.CellSize, Fill: fill, Stroke: stroke}
}

func (c *Canvas) DrawUnopened(x, y int) {
	c.ops = append(c.ops, c.square(x, y, hex(UnopenedFill), hex(UnopenedBorder)))
}

func (c *Canvas) DrawOpened(x, y, count int) {
	op := c.square(x, y, hex(OpenedFill), hex(OpenedBorder))
	if count > 0 {
		size := float64(c.CellSize)
		op.Text = strconv.Itoa(count)
		op.TextColor = hex(CountColor(count))
		op.FontSize = size
		op.TextX = float64(x) + size/5
		op.TextY = float64(y) + size - size/5
	}
	c.ops = append(c.ops, op)
}

func (c *Canvas) DrawFlag(x, y int) {
	size := float64(c.CellSize)
	op := c.square(x, y, hex(UnopenedFill), hex(UnopenedBorder))
	op.Text = flagSymbol
	op.TextColor = hex(FlagColor)
	op.FontSize = size * flagRatio
	op.TextX = float64(x)
	op.TextY = float64(y) + size*flagRatio
	c.ops = append(c.ops, op)
}

func (c *Canvas) DrawMine(x, y int) {
	c.ops = append(c.ops, c.square(x, y, hex(MineFill), ""))
}

// Flush returns the operations recorded since the last call.
func (c *Canvas) Flush() []DrawOp {
	ops := c.ops
	c.ops = nil
	if ops == nil {
		ops = []DrawOp{}
	}
	return ops
}
