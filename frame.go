package truecell

import (
	"fmt"
	"image"

	"github.com/wbrown/truecell/imageutil"
)

// PixelsFromImage packs img into an RGB24 buffer and returns it with the
// block grid it covers. The image must tile exactly into 8x16 blocks.
func PixelsFromImage(img image.Image) (pix []byte, rows, cols int, err error) {
	b := img.Bounds()
	if b.Dx()%BlockWidth != 0 || b.Dy()%BlockHeight != 0 {
		return nil, 0, 0, fmt.Errorf("%w: %dx%d image is not a multiple of %dx%d",
			ErrDimensions, b.Dx(), b.Dy(), BlockWidth, BlockHeight)
	}
	rgba, ok := img.(*imageutil.RGBAImage)
	if !ok {
		rgba = imageutil.RGBAImageFromImage(img)
	}
	return imageutil.ToRGB24(rgba), b.Dy() / BlockHeight, b.Dx() / BlockWidth, nil
}

// RenderImage renders an image whose size is a whole number of blocks.
func (r *Renderer) RenderImage(img image.Image) ([]byte, error) {
	pix, rows, cols, err := PixelsFromImage(img)
	if err != nil {
		return nil, err
	}
	return r.Render(pix, rows, cols)
}
