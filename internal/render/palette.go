package render

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

var (
	UnopenedFill   = colornames.Silver
	UnopenedBorder = colornames.Black
	OpenedFill     = color.RGBA{0x17, 0xb1, 0x69, 0xff}
	OpenedBorder   = colornames.Darkgreen
	MineFill       = colornames.Black
	FlagColor      = colornames.Red
)

var countColors = [9]color.RGBA{
	1: colornames.Red,
	2: colornames.Orange,
	3: colornames.Yellow,
	4: colornames.Green,
	5: colornames.Blue,
	6: colornames.Indigo,
	7: colornames.Violet,
	8: colornames.White,
}

func CountColor(count int) color.RGBA {
	if count < 1 || count > 8 {
		return colornames.Black
	}
	return countColors[count]
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
