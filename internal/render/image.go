package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Image rasterises cells onto an RGBA image. Digits and flags are drawn as
// glyphs once cells are large enough to hold them, and as solid marks below
// that.
type Image struct {
	CellSize int
	Dst      *image.RGBA
	face     font.Face
}

func NewImage(rows, cols, cellSize int) *Image {
	return &Image{
		CellSize: cellSize,
		Dst:      image.NewRGBA(image.Rect(0, 0, cols*cellSize, rows*cellSize)),
		face:     basicfont.Face7x13,
	}
}

func (im *Image) cell(x, y int) image.Rectangle {
	return image.Rect(x, y, x+im.CellSize, y+im.CellSize)
}

func (im *Image) fill(r image.Rectangle, c color.Color) {
	draw.Draw(im.Dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func (im *Image) stroke(r image.Rectangle, c color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		im.Dst.Set(x, r.Min.Y, c)
		im.Dst.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		im.Dst.Set(r.Min.X, y, c)
		im.Dst.Set(r.Max.X-1, y, c)
	}
}

func (im *Image) glyphFits() bool {
	m := im.face.Metrics()
	return im.CellSize >= m.Height.Ceil()+2
}

// mark draws s centred in r, or a filled square in its middle when the glyph
// would not fit.
func (im *Image) mark(r image.Rectangle, s string, c color.Color) {
	if !im.glyphFits() {
		inset := im.CellSize / 3
		im.fill(r.Inset(inset), c)
		return
	}
	d := &font.Drawer{Dst: im.Dst, Src: image.NewUniform(c), Face: im.face}
	m := im.face.Metrics()
	width := d.MeasureString(s)
	left := fixed.I(r.Min.X) + (fixed.I(im.CellSize)-width)/2
	baseline := fixed.I(r.Min.Y) + (fixed.I(im.CellSize)+m.Ascent-m.Descent)/2
	d.Dot = fixed.Point26_6{X: left, Y: baseline}
	d.DrawString(s)
}

func (im *Image) DrawUnopened(x, y int) {
	r := im.cell(x, y)
	im.fill(r, UnopenedFill)
	im.stroke(r, UnopenedBorder)
}

func (im *Image) DrawOpened(x, y, count int) {
	r := im.cell(x, y)
	im.fill(r, OpenedFill)
	im.stroke(r, OpenedBorder)
	if count > 0 {
		im.mark(r, strconv.Itoa(count), CountColor(count))
	}
}

func (im *Image) DrawFlag(x, y int) {
	im.DrawUnopened(x, y)
	im.mark(im.cell(x, y), "F", FlagColor)
}

func (im *Image) DrawMine(x, y int) {
	im.fill(im.cell(x, y), MineFill)
}

func (im *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, im.Dst)
}
