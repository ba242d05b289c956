package truecell

import (
	"fmt"

	"github.com/wbrown/truecell/imageutil"
)

// drawCell paints one cell at pixel position (x, y) using the catalog mask
// of its rune, each mask cell scaled to a scale x scale square. Runes
// outside the catalog are drawn as solid background.
func drawCell(img *imageutil.RGBAImage, x, y int, cell Cell, scale int) {
	g, _ := GlyphForRune(cell.Rune)
	bg, fg := cell.BG.toImageutil(), cell.FG.toImageutil()
	for my := 0; my < BlockHeight; my++ {
		for mx := 0; mx < BlockWidth; mx++ {
			c := bg
			if g.Mask.At(mx, my) {
				c = fg
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetRGB(x+mx*scale+dx, y+my*scale+dy, c)
				}
			}
		}
	}
}

// RenderPreview paints a grid of cells into an image the way a terminal
// with a pixel-exact font would show it. Each block occupies
// (8*scale)x(16*scale) pixels.
func RenderPreview(cells [][]Cell, scale int) *imageutil.RGBAImage {
	if scale < 1 {
		scale = 1
	}
	rows := len(cells)
	cols := 0
	if rows > 0 {
		cols = len(cells[0])
	}
	img := imageutil.NewRGBAImage(cols*BlockWidth*scale, rows*BlockHeight*scale)
	for y, row := range cells {
		for x, cell := range row {
			drawCell(img, x*BlockWidth*scale, y*BlockHeight*scale, cell, scale)
		}
	}
	return img
}

// SavePreview renders cells with RenderPreview and saves the result as PNG.
func SavePreview(cells [][]Cell, path string, scale int) error {
	if len(cells) == 0 {
		return fmt.Errorf("%w: no cells to preview", ErrDimensions)
	}
	return imageutil.SavePNG(RenderPreview(cells, scale).RGBA, path)
}
