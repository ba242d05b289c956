package truecell

// pairCost holds, for one color pair of a block, the squared error of every
// cell when painted with the background color and with the foreground color.
type pairCost struct {
	bg, fg [BlockCells]float32
}

// load computes the per-cell costs of painting lb with the colors found at
// cells b and f.
func (pc *pairCost) load(lb *LinearBlock, b, f int) {
	pc.bg = [BlockCells]float32{}
	pc.fg = [BlockCells]float32{}
	for k := range lb {
		ch := &lb[k]
		bv, fv := ch[b], ch[f]
		for i, v := range ch {
			db := bv - v
			df := fv - v
			pc.bg[i] += db * db
			pc.fg[i] += df * df
		}
	}
}

// score returns the total squared error of rendering the glyph with mask m
// using the loaded pair.
func (pc *pairCost) score(m *cellMask) float32 {
	var sum float32
	for i, fg := range m {
		if fg {
			sum += pc.fg[i]
		} else {
			sum += pc.bg[i]
		}
	}
	return sum
}

// Distance returns the squared error, summed over all cells and channels in
// linear light, between lb and a glyph with mask m painted with the colors
// of cells bg and fg. It is zero exactly when the rendering reproduces the
// block.
func Distance(lb *LinearBlock, bg, fg int, m GlyphMask) float32 {
	var cm cellMask
	for y := 0; y < BlockHeight; y++ {
		for x := 0; x < BlockWidth; x++ {
			cm[y*BlockWidth+x] = m.At(x, y)
		}
	}
	var pc pairCost
	pc.load(lb, bg, fg)
	return pc.score(&cm)
}
