package truecell

// Block is one 8x16 window of the input in row-major order: cell y*8+x.
type Block [BlockCells]RGB

// load copies the block at block coordinates (bx, by) out of a packed
// RGB24 buffer whose rows are stride bytes long.
func (b *Block) load(pix []byte, stride, bx, by int) {
	base := by*BlockHeight*stride + bx*BlockWidth*3
	for y := 0; y < BlockHeight; y++ {
		off := base + y*stride
		for x := 0; x < BlockWidth; x++ {
			b[y*BlockWidth+x] = rgbAt(pix, off)
			off += 3
		}
	}
}
