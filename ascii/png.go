package ascii

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// Cell metrics for rasterized output. The PNG uses taller cells than the
// 8x12 generation ratio because rendered glyphs need line spacing.
const (
	pngCellWidth  = 8.0
	pngCellHeight = 16.0
	pngFontSize   = 12.0
	pngPadCells   = 1
)

// WritePNG rasterizes generated grid content to a PNG file using the Go
// Mono face, one character per fixed-size cell.
func WritePNG(content, filename string) error {
	lines := strings.Split(content, "\n")

	cols := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > cols {
			cols = n
		}
	}
	if cols == 0 {
		return fmt.Errorf("nothing to export")
	}
	rows := len(lines)

	imageWidth := int(float64(cols+2*pngPadCells) * pngCellWidth)
	imageHeight := int(float64(rows+2*pngPadCells) * pngCellHeight)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    pngFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	for row, line := range lines {
		y := float64(row+pngPadCells+1) * pngCellHeight
		for col, ch := range []rune(line) {
			if ch == ' ' {
				continue
			}
			x := float64(col+pngPadCells) * pngCellWidth
			dc.DrawString(string(ch), x, y)
		}
	}

	return dc.SavePNG(filename)
}
