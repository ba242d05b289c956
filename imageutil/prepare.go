package imageutil

import (
	"errors"
	"fmt"
)

// PrepareForCells prepares an image for cell rendering.
//
// The function:
//  1. Applies gamma, brightness and contrast adjustments
//  2. Resizes to exactly (cols*cellWidth) x (rows*cellHeight), ignoring the
//     source aspect ratio
//  3. Applies optional sharpening
//
// Parameters:
//   - img: The input image
//   - cols, rows: Target grid size in cells
//   - cellWidth, cellHeight: Pixel size of one cell
//   - interp: Resampling method
//   - adj: Tonal corrections, the zero value leaves the image as is
//
// Returns the prepared image packed as RGB24.
func PrepareForCells(
	img *RGBAImage,
	cols, rows, cellWidth, cellHeight int,
	interp Interpolation,
	adj Adjustments,
) ([]byte, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("invalid cell grid %dx%d", cols, rows)
	}
	if img.Width() == 0 || img.Height() == 0 {
		return nil, errors.New("empty source image")
	}
	adjusted := Adjust(img, adj)
	resized := Resize(adjusted, cols*cellWidth, rows*cellHeight, interp)
	resized = Sharpen(resized, adj.Sharpen)
	return ToRGB24(resized), nil
}
