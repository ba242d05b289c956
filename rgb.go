package truecell

import "github.com/wbrown/truecell/imageutil"

// RGB represents a color in the RGB color space with 8-bit channels,
// exactly as it arrives in the input buffer (gamma encoded sRGB).
type RGB struct {
	R, G, B uint8
}

// toUint32 packs an RGB color into the low 24 bits of a uint32.
func (c RGB) toUint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// rgbAt reads the pixel at byte offset off of a packed RGB24 buffer.
func rgbAt(pix []byte, off int) RGB {
	return RGB{R: pix[off], G: pix[off+1], B: pix[off+2]}
}

func (c RGB) toImageutil() imageutil.RGB {
	return imageutil.RGB{R: c.R, G: c.G, B: c.B}
}
