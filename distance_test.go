package truecell

import (
	"math"
	"testing"
)

func linearOf(b *Block) *LinearBlock {
	var lb LinearBlock
	lb.linearize(b, DefaultLinearizer())
	return &lb
}

func TestDistanceExactReproduction(t *testing.T) {
	bg, fg := RGB{20, 40, 60}, RGB{200, 100, 0}
	for _, g := range Catalog()[2:] {
		blk := maskBlock(g.Mask, bg, fg)
		bi, fi := -1, -1
		for i, c := range blk {
			if c == bg && bi < 0 {
				bi = i
			}
			if c == fg && fi < 0 {
				fi = i
			}
		}
		if d := Distance(linearOf(blk), bi, fi, g.Mask); d != 0 {
			t.Errorf("%q: distance %v for its own rendering", g.Rune, d)
		}
	}
}

func TestDistanceCountsWrongCells(t *testing.T) {
	black, white := RGB{0, 0, 0}, RGB{255, 255, 255}
	lower, _ := GlyphForRune('▄')
	blk := maskBlock(lower.Mask, black, white)
	lb := linearOf(blk)

	// Painting everything black misses the 64 white cells
	space := Catalog()[0].Mask
	w := float64(Linearize(255))
	want := 64 * 3 * w * w
	if got := float64(Distance(lb, 0, 0, space)); math.Abs(got-want) > 1e-3 {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// Swapped colors get every cell wrong
	whiteIdx := BlockCells - 1
	if got := float64(Distance(lb, whiteIdx, 0, lower.Mask)); math.Abs(got-2*want) > 1e-3 {
		t.Errorf("Expected %v, got %v", 2*want, got)
	}
}

func TestDistanceNonNegative(t *testing.T) {
	blk := maskBlock(Catalog()[14].Mask, RGB{1, 2, 3}, RGB{250, 251, 252})
	lb := linearOf(blk)
	for _, g := range Catalog() {
		for _, p := range [][2]int{{0, 1}, {0, 127}, {4, 64}} {
			if d := Distance(lb, p[0], p[1], g.Mask); d < 0 {
				t.Errorf("%q %v: negative distance %v", g.Rune, p, d)
			}
		}
	}
}

func TestPairCostMatchesDistance(t *testing.T) {
	blk := maskBlock(Catalog()[9].Mask, RGB{90, 0, 30}, RGB{10, 200, 30})
	blk[77] = RGB{128, 128, 128}
	lb := linearOf(blk)

	var pc pairCost
	pc.load(lb, 3, 100)
	for i, g := range Catalog() {
		if got, want := pc.score(&catalogMasks[i]), Distance(lb, 3, 100, g.Mask); got != want {
			t.Errorf("%q: score %v, Distance %v", g.Rune, got, want)
		}
	}
}
