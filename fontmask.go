package truecell

import (
	"fmt"
	"image"
	"math"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

// alphaThreshold is the coverage above which a rasterized pixel counts as
// foreground (25%).
const alphaThreshold = 64

// MaskReport compares one catalog glyph with its rasterization in a font.
type MaskReport struct {
	Glyph    Glyph
	Rendered GlyphMask
	// Missing is set when the font has no glyph for the rune. Rendered is
	// then empty and Mismatch is zero.
	Missing bool
	// Mismatch is the number of cells where the font and the catalog mask
	// disagree.
	Mismatch int
}

// LoadFont loads a TrueType font from file.
func LoadFont(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	f, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	return f, nil
}

// DefaultFont returns Go Mono, which ships with golang.org/x/image.
func DefaultFont() (*truetype.Font, error) {
	f, err := freetype.ParseFont(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Go Mono: %w", err)
	}
	return f, nil
}

// metricsSize is the pixel size at which line metrics are sampled. Metrics
// are rounded up to 1/64 pixel, so a large size keeps the ratio exact.
const metricsSize = 64

// cellScale returns the size at 72 DPI whose line box (ascent plus descent)
// is exactly one block tall, and the baseline measured from the top of the
// cell.
func cellScale(f *truetype.Font) (size float64, baseline fixed.Int26_6) {
	face := truetype.NewFace(f, &truetype.Options{Size: metricsSize, DPI: 72})
	defer face.Close()
	m := face.Metrics()
	line := m.Ascent + m.Descent
	if line <= 0 {
		return BlockHeight, fixed.I(BlockHeight)
	}
	size = metricsSize * BlockHeight * 64 / float64(line)
	baseline = fixed.Int26_6(math.Round(float64(m.Ascent) * BlockHeight * 64 / float64(line)))
	return size, baseline
}

// RasterizeMask renders r with font f into one 8x16 cell and thresholds the
// coverage into a mask. Runes the font lacks render as its .notdef glyph.
func RasterizeMask(f *truetype.Font, r rune) GlyphMask {
	size, baseline := cellScale(f)

	img := image.NewAlpha(image.Rect(0, 0, BlockWidth, BlockHeight))
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingNone)

	pt := fixed.Point26_6{X: 0, Y: baseline}
	if _, err := ctx.DrawString(string(r), pt); err != nil {
		return GlyphMask{}
	}

	var m GlyphMask
	for y := 0; y < BlockHeight; y++ {
		for x := 0; x < BlockWidth; x++ {
			if img.AlphaAt(x, y).A > alphaThreshold {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// CompareFont rasterizes every catalog glyph with f and reports how far
// each rendering is from the catalog mask.
func CompareFont(f *truetype.Font) []MaskReport {
	reports := make([]MaskReport, len(glyphTable))
	for i, g := range glyphTable {
		if f.Index(g.Rune) == 0 {
			reports[i] = MaskReport{Glyph: g, Missing: true}
			continue
		}
		m := RasterizeMask(f, g.Rune)
		reports[i] = MaskReport{Glyph: g, Rendered: m, Mismatch: g.Mask.Diff(m)}
	}
	return reports
}
