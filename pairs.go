package truecell

const (
	// DefaultPairBits gives 2^8 = 256 candidate color pairs per block.
	DefaultPairBits = 8

	// MaxPairBits covers every distinct pair a 128 pixel block can hold.
	MaxPairBits = 13

	phiPrime = 0x9E3779B1
)

// ColorPair names two cells of a block whose colors are tried as a
// background and foreground combination. BG is always less than FG.
type ColorPair struct {
	BG, FG int
}

// pairSelector enumerates distinct color pairs of a block. The fingerprint
// table is reused between blocks.
type pairSelector struct {
	bits  uint
	table []uint64
	pairs []ColorPair
}

func newPairSelector(bits uint) *pairSelector {
	return &pairSelector{
		bits:  bits,
		table: make([]uint64, 2<<bits),
		pairs: make([]ColorPair, 0, 1<<bits),
	}
}

// SelectPairs returns up to 2^bits index pairs of b whose (background,
// foreground) colors are pairwise distinct, in enumeration order.
func SelectPairs(b *Block, bits uint) []ColorPair {
	ps := newPairSelector(bits)
	return append([]ColorPair(nil), ps.selectPairs(b)...)
}

// selectPairs walks (b, f) with b < f in lexicographic order and keeps the
// first occurrence of each color combination. The returned slice aliases
// the selector and is valid until the next call.
func (ps *pairSelector) selectPairs(blk *Block) []ColorPair {
	clear(ps.table)
	ps.pairs = ps.pairs[:0]
	limit := 1 << ps.bits
	mask := uint32(len(ps.table) - 1)

	for b := 0; b < BlockCells; b++ {
		bu := blk[b].toUint32()
		hb := hashColor(0, bu)
		for f := b + 1; f < BlockCells; f++ {
			if len(ps.pairs) >= limit {
				return ps.pairs
			}
			fu := blk[f].toUint32()
			tag := hashColor(hb, fu) & 0xffff
			if tag == 0 {
				tag = 1
			}
			fp := uint64(fu)<<40 | uint64(bu)<<16 | uint64(tag)

			switch ps.insert(fp, tag, mask) {
			case slotInserted:
				ps.pairs = append(ps.pairs, ColorPair{BG: b, FG: f})
			case slotFull:
				return ps.pairs
			}
		}
	}
	return ps.pairs
}

type slotResult int

const (
	slotInserted slotResult = iota
	slotDuplicate
	slotFull
)

// insert places fp with triangular probing starting at tag. The probe
// sequence visits every slot of a power of two table exactly once, so it is
// bounded by the table length.
func (ps *pairSelector) insert(fp uint64, tag, mask uint32) slotResult {
	for i := uint32(0); i <= mask; i++ {
		j := (tag + i*(i+1)/2) & mask
		switch ps.table[j] {
		case 0:
			ps.table[j] = fp
			return slotInserted
		case fp:
			return slotDuplicate
		}
	}
	return slotFull
}

// hashColor folds the red, green and blue bytes of a packed color into h.
func hashColor(h, c uint32) uint32 {
	h = (c>>16&0xff + h) * phiPrime
	h = (c>>8&0xff + h) * phiPrime
	h = (c&0xff + h) * phiPrime
	return h
}
