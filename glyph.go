// Package truecell renders true-color pixel buffers as terminal text. Every
// 8x16 pixel block becomes one glyph painted with a background and a
// foreground color, chosen to minimise the squared error in linear light.
package truecell

const (
	// BlockWidth and BlockHeight define the pixel size of one character cell.
	BlockWidth  = 8
	BlockHeight = 16

	// BlockCells is the number of pixels in one block.
	BlockCells = BlockWidth * BlockHeight
)

// GlyphMask is the foreground coverage of a glyph. Row y is byte y and the
// most significant bit of each byte is column 0.
type GlyphMask [BlockHeight]uint8

// At reports whether cell (x, y) is painted with the foreground color.
func (m GlyphMask) At(x, y int) bool {
	if x < 0 || x >= BlockWidth || y < 0 || y >= BlockHeight {
		return false
	}
	return m[y]&(0x80>>uint(x)) != 0
}

// Set marks cell (x, y) as foreground or background.
func (m *GlyphMask) Set(x, y int, fg bool) {
	if x < 0 || x >= BlockWidth || y < 0 || y >= BlockHeight {
		return
	}
	if fg {
		m[y] |= 0x80 >> uint(x)
	} else {
		m[y] &^= 0x80 >> uint(x)
	}
}

// Count returns the number of foreground cells.
func (m GlyphMask) Count() int {
	n := 0
	for _, row := range m {
		for ; row != 0; row &= row - 1 {
			n++
		}
	}
	return n
}

// Diff returns the number of cells where m and o disagree.
func (m GlyphMask) Diff(o GlyphMask) int {
	var x GlyphMask
	for y := range m {
		x[y] = m[y] ^ o[y]
	}
	return x.Count()
}

// Glyph is one entry of the catalog.
type Glyph struct {
	Rune rune
	Name string
	Mask GlyphMask

	// Experimental glyphs render inconsistently across terminal fonts and
	// sit past DefaultGlyphLimit.
	Experimental bool
}

// DefaultGlyphLimit is the number of catalog entries searched by default:
// every glyph except the experimental tail.
var DefaultGlyphLimit = countStable()

// cellMask is a glyph mask expanded into one flag per block cell, in the
// same row-major order as Block.
type cellMask [BlockCells]bool

var (
	catalogMasks = expandMasks()
	runeIndex    = indexRunes()
)

// Catalog returns the ordered glyph catalog. Earlier entries win ties during
// selection. The returned slice must not be modified.
func Catalog() []Glyph {
	return glyphTable[:]
}

// GlyphForRune returns the catalog entry for r.
func GlyphForRune(r rune) (Glyph, bool) {
	i, ok := runeIndex[r]
	if !ok {
		return Glyph{}, false
	}
	return glyphTable[i], true
}

func countStable() int {
	n := 0
	for _, g := range glyphTable {
		if !g.Experimental {
			n++
		}
	}
	return n
}

func expandMasks() []cellMask {
	masks := make([]cellMask, len(glyphTable))
	for i, g := range glyphTable {
		for y := 0; y < BlockHeight; y++ {
			for x := 0; x < BlockWidth; x++ {
				masks[i][y*BlockWidth+x] = g.Mask.At(x, y)
			}
		}
	}
	return masks
}

func indexRunes() map[rune]int {
	idx := make(map[rune]int, len(glyphTable))
	for i, g := range glyphTable {
		idx[g.Rune] = i
	}
	return idx
}
