package imageutil

import "github.com/disintegration/imaging"

// Adjustments are tonal corrections applied before an image is resampled
// to the cell grid. The zero value changes nothing.
type Adjustments struct {
	// Gamma above 1 brightens midtones, below 1 darkens them. Zero or one
	// leaves the image unchanged.
	Gamma float64
	// Brightness and Contrast are percentages in [-100, 100].
	Brightness float64
	Contrast   float64
	// Sharpen is the sigma of the unsharp kernel applied after resizing.
	Sharpen float64
}

// IsZero reports whether a leaves every image unchanged.
func (a Adjustments) IsZero() bool {
	return (a.Gamma == 0 || a.Gamma == 1) && a.Brightness == 0 && a.Contrast == 0 && a.Sharpen == 0
}

// Adjust applies the tonal corrections of a, leaving sharpening out.
func Adjust(img *RGBAImage, a Adjustments) *RGBAImage {
	gamma := a.Gamma != 0 && a.Gamma != 1
	if !gamma && a.Brightness == 0 && a.Contrast == 0 {
		return img
	}
	out := imaging.Clone(img.RGBA)
	if gamma {
		out = imaging.AdjustGamma(out, a.Gamma)
	}
	if a.Brightness != 0 {
		out = imaging.AdjustBrightness(out, a.Brightness)
	}
	if a.Contrast != 0 {
		out = imaging.AdjustContrast(out, a.Contrast)
	}
	return RGBAImageFromImage(out)
}

// Sharpen applies an unsharp kernel with the given sigma.
func Sharpen(img *RGBAImage, sigma float64) *RGBAImage {
	if sigma <= 0 {
		return img
	}
	return RGBAImageFromImage(imaging.Sharpen(img.RGBA, sigma))
}
