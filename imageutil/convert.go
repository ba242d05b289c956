package imageutil

// ToRGB24 packs the image into a row-major buffer of three bytes per pixel
// (red, green, blue) with no padding between rows. Alpha is dropped.
func ToRGB24(img *RGBAImage) []byte {
	width, height := img.Width(), img.Height()
	out := make([]byte, 0, width*height*3)
	b := img.Bounds()
	for y := 0; y < height; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := 0; x < width; x++ {
			out = append(out, row[x*4], row[x*4+1], row[x*4+2])
		}
	}
	return out
}

// FromRGB24 is the inverse of ToRGB24. It returns nil when pix is too short
// for the given size.
func FromRGB24(pix []byte, width, height int) *RGBAImage {
	if width < 0 || height < 0 || len(pix) < width*height*3 {
		return nil
	}
	img := NewRGBAImage(width, height)
	for i := 0; i < width*height; i++ {
		img.Pix[i*4] = pix[i*3]
		img.Pix[i*4+1] = pix[i*3+1]
		img.Pix[i*4+2] = pix[i*3+2]
		img.Pix[i*4+3] = 255
	}
	return img
}
