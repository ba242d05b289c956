package truecell

import "math/rand"

// solidBlock returns a block filled with c.
func solidBlock(c RGB) *Block {
	var b Block
	for i := range b {
		b[i] = c
	}
	return &b
}

// maskBlock returns the block a terminal shows for m drawn with bg and fg.
func maskBlock(m GlyphMask, bg, fg RGB) *Block {
	var b Block
	for y := 0; y < BlockHeight; y++ {
		for x := 0; x < BlockWidth; x++ {
			if m.At(x, y) {
				b[y*BlockWidth+x] = fg
			} else {
				b[y*BlockWidth+x] = bg
			}
		}
	}
	return &b
}

// randomBlock returns a block of uniformly random pixels.
func randomBlock(rng *rand.Rand) *Block {
	var b Block
	for i := range b {
		b[i] = RGB{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256))}
	}
	return &b
}

// framePix packs a rows x cols grid of blocks into an RGB24 buffer.
func framePix(rows, cols int, block func(bx, by int) *Block) []byte {
	stride := cols * BlockWidth * 3
	pix := make([]byte, rows*BlockHeight*stride)
	for by := 0; by < rows; by++ {
		for bx := 0; bx < cols; bx++ {
			b := block(bx, by)
			for y := 0; y < BlockHeight; y++ {
				off := (by*BlockHeight+y)*stride + bx*BlockWidth*3
				for x := 0; x < BlockWidth; x++ {
					c := b[y*BlockWidth+x]
					pix[off], pix[off+1], pix[off+2] = c.R, c.G, c.B
					off += 3
				}
			}
		}
	}
	return pix
}

// renderBlock paints a cell back into pixels using its catalog mask.
func renderBlock(c Cell) *Block {
	g, _ := GlyphForRune(c.Rune)
	return maskBlock(g.Mask, c.BG, c.FG)
}
