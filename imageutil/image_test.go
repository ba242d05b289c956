package imageutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNewRGBAImage(t *testing.T) {
	img := NewRGBAImage(100, 50)
	if img.Width() != 100 {
		t.Errorf("Expected width 100, got %d", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Expected height 50, got %d", img.Height())
	}
}

func TestRGBAImageGetSetRGB(t *testing.T) {
	img := NewRGBAImage(10, 10)
	c := RGB{R: 100, G: 150, B: 200}
	img.SetRGB(5, 5, c)

	got := img.GetRGB(5, 5)
	if got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
}

func TestRGBAImageClone(t *testing.T) {
	img := NewRGBAImage(10, 10)
	img.SetRGB(5, 5, RGB{R: 255, G: 0, B: 0})

	clone := img.Clone()
	if clone.GetRGB(5, 5) != img.GetRGB(5, 5) {
		t.Error("Clone should have same pixel values")
	}

	// Modify clone, original should be unchanged
	clone.SetRGB(5, 5, RGB{R: 0, G: 255, B: 0})
	if img.GetRGB(5, 5).G != 0 {
		t.Error("Modifying clone should not affect original")
	}
}

func TestRGBAImageFromImageOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 14, 22))
	src.Set(10, 20, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	src.Set(13, 21, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	img := RGBAImageFromImage(src)
	if img.Width() != 4 || img.Height() != 2 {
		t.Fatalf("Expected 4x2, got %dx%d", img.Width(), img.Height())
	}
	if got := img.GetRGB(0, 0); got != (RGB{1, 2, 3}) {
		t.Errorf("Top-left pixel = %v, want {1 2 3}", got)
	}
	if got := img.GetRGB(3, 1); got != (RGB{200, 100, 50}) {
		t.Errorf("Bottom-right pixel = %v, want {200 100 50}", got)
	}
	// Transparent pixels end up black and opaque
	if c := img.RGBAAt(1, 0); c != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Transparent pixel = %v, want opaque black", c)
	}
}

func TestResize(t *testing.T) {
	img := CreateGradientImage(100, 100)

	// Downscale
	resized := Resize(img, 50, 50, InterpolationArea)
	if resized.Width() != 50 || resized.Height() != 50 {
		t.Errorf("Expected 50x50, got %dx%d", resized.Width(), resized.Height())
	}

	// Upscale
	resized = Resize(img, 200, 200, InterpolationLinear)
	if resized.Width() != 200 || resized.Height() != 200 {
		t.Errorf("Expected 200x200, got %dx%d", resized.Width(), resized.Height())
	}

	// Non-uniform scale with Lanczos
	resized = Resize(img, 24, 80, InterpolationLanczos)
	if resized.Width() != 24 || resized.Height() != 80 {
		t.Errorf("Expected 24x80, got %dx%d", resized.Width(), resized.Height())
	}
}

func TestResizeSolidStaysSolid(t *testing.T) {
	c := RGB{R: 40, G: 80, B: 160}
	img := CreateSolidImage(37, 23, c)

	for _, interp := range []Interpolation{
		InterpolationArea, InterpolationLinear, InterpolationNearest, InterpolationLanczos,
	} {
		resized := Resize(img, 16, 32, interp)
		if diff := CalculateMaxDiff(resized, CreateSolidImage(16, 32, c)); diff > 2 {
			t.Errorf("interpolation %d: solid image changed by %d", interp, diff)
		}
	}
}

func TestParseInterpolation(t *testing.T) {
	tests := []struct {
		name    string
		want    Interpolation
		wantErr bool
	}{
		{"catmullrom", InterpolationArea, false},
		{"Bilinear", InterpolationLinear, false},
		{"nearest", InterpolationNearest, false},
		{"LANCZOS", InterpolationLanczos, false},
		{"bicubic", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseInterpolation(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseInterpolation(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseInterpolation(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestRGB24RoundTrip(t *testing.T) {
	img := CreateColorBarsImage(64, 16)
	pix := ToRGB24(img)
	if len(pix) != 64*16*3 {
		t.Fatalf("Expected %d bytes, got %d", 64*16*3, len(pix))
	}
	// First bar is white, last is black
	if pix[0] != 255 || pix[1] != 255 || pix[2] != 255 {
		t.Errorf("First pixel = %v, want white", pix[:3])
	}
	last := len(pix) - 3
	if pix[last] != 0 || pix[last+1] != 0 || pix[last+2] != 0 {
		t.Errorf("Last pixel = %v, want black", pix[last:])
	}

	back := FromRGB24(pix, 64, 16)
	if mse := CalculateMSE(img, back); mse != 0 {
		t.Errorf("Round trip MSE = %f, want 0", mse)
	}
	if FromRGB24(pix[:10], 64, 16) != nil {
		t.Error("FromRGB24 should reject a short buffer")
	}
}

func TestAdjust(t *testing.T) {
	img := CreateSolidImage(8, 8, RGB{R: 128, G: 128, B: 128})

	if out := Adjust(img, Adjustments{}); out != img {
		t.Error("Zero adjustments should return the input image")
	}
	if out := Adjust(img, Adjustments{Gamma: 1}); out != img {
		t.Error("Gamma 1 should return the input image")
	}

	brighter := Adjust(img, Adjustments{Brightness: 20})
	if got := brighter.GetRGB(4, 4); got.R <= 128 {
		t.Errorf("Brightness +20 should raise 128, got %v", got)
	}
	gamma := Adjust(img, Adjustments{Gamma: 2})
	if got := gamma.GetRGB(4, 4); got.R <= 128 {
		t.Errorf("Gamma 2 should brighten midtones, got %v", got)
	}
	if img.GetRGB(4, 4).R != 128 {
		t.Error("Adjust should not modify its input")
	}

	if !(Adjustments{Gamma: 1}).IsZero() || !(Adjustments{}).IsZero() {
		t.Error("Neutral adjustments should report IsZero")
	}
	if (Adjustments{Sharpen: 0.5}).IsZero() {
		t.Error("Sharpening is not a zero adjustment")
	}
}

func TestSharpenZeroSigma(t *testing.T) {
	img := CreateGradientImage(16, 16)
	if Sharpen(img, 0) != img {
		t.Error("Sharpen with sigma 0 should return the input image")
	}
	out := Sharpen(img, 1)
	if out.Width() != 16 || out.Height() != 16 {
		t.Errorf("Expected 16x16, got %dx%d", out.Width(), out.Height())
	}
}

func TestPrepareForCells(t *testing.T) {
	img := CreateGradientImage(300, 200)
	pix, err := PrepareForCells(img, 10, 3, 8, 16, InterpolationArea, Adjustments{})
	if err != nil {
		t.Fatalf("PrepareForCells failed: %v", err)
	}
	if want := 10 * 8 * 3 * 16 * 3; len(pix) != want {
		t.Errorf("Expected %d bytes, got %d", want, len(pix))
	}

	if _, err := PrepareForCells(img, 0, 3, 8, 16, InterpolationArea, Adjustments{}); err == nil {
		t.Error("Expected error for zero columns")
	}
	if _, err := PrepareForCells(NewRGBAImage(0, 0), 1, 1, 8, 16, InterpolationArea, Adjustments{}); err == nil {
		t.Error("Expected error for empty image")
	}
}

func TestLoadSaveImage(t *testing.T) {
	// Create temp directory
	tmpDir := t.TempDir()

	// Create test image
	img := CreateColorBarsImage(64, 64)

	// Save to PNG
	pngPath := filepath.Join(tmpDir, "test.png")
	err := SaveImage(img.RGBA, pngPath)
	if err != nil {
		t.Fatalf("Failed to save PNG: %v", err)
	}

	// Load back
	loaded, err := LoadImage(pngPath)
	if err != nil {
		t.Fatalf("Failed to load PNG: %v", err)
	}

	// PNG should be lossless
	mse := CalculateMSE(img, loaded)
	if mse > 0.01 {
		t.Errorf("PNG should be lossless, MSE=%f", mse)
	}

	if _, err := LoadImage(filepath.Join(tmpDir, "missing.png")); err == nil {
		t.Error("Expected error loading a missing file")
	}
}

func TestDecodeImage(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, CreateCheckerboardImage(16, 16, 4).RGBA); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	img, err := DecodeImage(&buf)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}
	if img.GetRGB(0, 0) != (RGB{255, 255, 255}) || img.GetRGB(4, 0) != (RGB{0, 0, 0}) {
		t.Error("Decoded checkerboard has wrong pixels")
	}

	if _, err := DecodeImage(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("Expected error decoding garbage")
	}
}

func TestCalculateMSE(t *testing.T) {
	img1 := NewRGBAImage(10, 10)
	img2 := NewRGBAImage(10, 10)

	// Same images should have MSE of 0
	mse := CalculateMSE(img1, img2)
	if mse != 0 {
		t.Errorf("Identical images should have MSE=0, got %f", mse)
	}

	// Different images
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img1.SetRGB(x, y, RGB{R: 0, G: 0, B: 0})
			img2.SetRGB(x, y, RGB{R: 10, G: 10, B: 10})
		}
	}
	mse = CalculateMSE(img1, img2)
	expected := 100.0 // 10^2 = 100
	if mse != expected {
		t.Errorf("Expected MSE=%f, got %f", expected, mse)
	}
}

// TestSaveTestImages saves test images to testdata directory for visual inspection.
// Run with: SAVE_TEST_IMAGES=1 go test -run TestSaveTestImages -v
func TestSaveTestImages(t *testing.T) {
	if os.Getenv("SAVE_TEST_IMAGES") != "1" {
		t.Skip("Set SAVE_TEST_IMAGES=1 to generate test images")
	}

	testdataDir := "../testdata"
	os.MkdirAll(testdataDir, 0755)

	SaveImage(CreateGradientImage(256, 256).RGBA, filepath.Join(testdataDir, "gradient.png"))
	SaveImage(CreateVerticalGradientImage(256, 256).RGBA, filepath.Join(testdataDir, "vgradient.png"))
	SaveImage(CreateCheckerboardImage(256, 256, 32).RGBA, filepath.Join(testdataDir, "checkerboard.png"))
	SaveImage(CreateColorBarsImage(256, 256).RGBA, filepath.Join(testdataDir, "colorbars.png"))

	t.Log("Test images saved to testdata/")
}
