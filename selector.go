package truecell

import "math"

// Cell is the rendering of one block: a glyph drawn with two colors.
type Cell struct {
	Rune rune
	BG   RGB
	FG   RGB
}

// scratch is the per-worker state needed to select cells. None of it is
// shared between goroutines.
type scratch struct {
	cfg   scratchConfig
	pairs *pairSelector
	block Block
	lin   LinearBlock
	cost  pairCost
	cache *blockCache

	// scores is the number of candidates scored by the last selectCell.
	scores int
}

type scratchConfig struct {
	pairBits   int
	glyphLimit int
	cacheSize  int
	linearizer *Linearizer
}

func newScratch(cfg scratchConfig) *scratch {
	s := &scratch{
		cfg:   cfg,
		pairs: newPairSelector(uint(cfg.pairBits)),
	}
	if cfg.cacheSize > 0 {
		s.cache = newBlockCache(cfg.cacheSize)
	}
	return s
}

// selectCell searches every candidate pair against the first glyphLimit
// catalog entries and returns the combination with the smallest distance.
// Ties keep the earliest pair, then the earliest glyph. The search ends as
// soon as an exact match is found. A block that yields no candidates falls
// back to the first glyph painted with the first pixel's color.
func (s *scratch) selectCell(b *Block) (Cell, float32) {
	s.lin.linearize(b, s.cfg.linearizer)
	masks := catalogMasks[:s.cfg.glyphLimit]

	s.scores = 0
	best := float32(math.MaxFloat32)
	cell := Cell{Rune: glyphTable[0].Rune, BG: b[0], FG: b[0]}
	for _, p := range s.pairs.selectPairs(b) {
		s.cost.load(&s.lin, p.BG, p.FG)
		for gi := range masks {
			d := s.cost.score(&masks[gi])
			s.scores++
			if d < best {
				best = d
				cell = Cell{Rune: glyphTable[gi].Rune, BG: b[p.BG], FG: b[p.FG]}
				if d == 0 {
					return cell, 0
				}
			}
		}
	}
	return cell, best
}
