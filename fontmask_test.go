package truecell

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

func TestRasterizeMask(t *testing.T) {
	f, err := DefaultFont()
	if err != nil {
		t.Fatalf("DefaultFont failed: %v", err)
	}
	if m := RasterizeMask(f, ' '); m.Count() != 0 {
		t.Errorf("space rasterized to %d cells", m.Count())
	}
	if m := RasterizeMask(f, 'M'); m.Count() == 0 {
		t.Error("'M' rasterized to an empty mask")
	}
}

func TestRasterizeMaskFillsCell(t *testing.T) {
	f, err := DefaultFont()
	if err != nil {
		t.Fatalf("DefaultFont failed: %v", err)
	}
	for _, r := range []rune{'█', '▄', '▀', '▌', '▐'} {
		g, _ := GlyphForRune(r)
		got := RasterizeMask(f, r)
		if got != g.Mask {
			t.Errorf("%q: %d cells differ from the catalog", r, g.Mask.Diff(got))
			for y := 0; y < BlockHeight; y++ {
				t.Logf("row %2d: got %08b want %08b", y, got[y], g.Mask[y])
			}
		}
	}
}

func TestCompareFont(t *testing.T) {
	f, err := DefaultFont()
	if err != nil {
		t.Fatalf("DefaultFont failed: %v", err)
	}
	reports := CompareFont(f)
	if len(reports) != len(Catalog()) {
		t.Fatalf("Expected %d reports, got %d", len(Catalog()), len(reports))
	}
	for i, rep := range reports {
		if rep.Glyph.Rune != Catalog()[i].Rune {
			t.Errorf("report %d is for %q", i, rep.Glyph.Rune)
		}
		if rep.Missing {
			if rep.Mismatch != 0 || rep.Rendered.Count() != 0 {
				t.Errorf("%q: missing glyph reported %d mismatches", rep.Glyph.Rune, rep.Mismatch)
			}
			continue
		}
		if rep.Mismatch != rep.Glyph.Mask.Diff(rep.Rendered) {
			t.Errorf("%q: inconsistent mismatch count", rep.Glyph.Rune)
		}
	}

	// Go Mono has the half blocks but no quadrants.
	byRune := make(map[rune]MaskReport, len(reports))
	for _, rep := range reports {
		byRune[rep.Glyph.Rune] = rep
	}
	for _, r := range []rune{' ', '█', '▄', '▀'} {
		if rep := byRune[r]; rep.Missing || rep.Mismatch != 0 {
			t.Errorf("%q: missing=%v mismatch=%d, want an exact match", r, rep.Missing, rep.Mismatch)
		}
	}
	if !byRune['▝'].Missing {
		t.Error("U+259D should be reported missing from Go Mono")
	}
}

func TestLoadFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gomono.ttf")
	if err := os.WriteFile(path, gomono.TTF, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadFont(path); err != nil {
		t.Errorf("LoadFont failed: %v", err)
	}
	if _, err := LoadFont(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("Expected error for a missing font")
	}

	bad := filepath.Join(t.TempDir(), "bad.ttf")
	os.WriteFile(bad, []byte("not a font"), 0o644)
	if _, err := LoadFont(bad); err == nil {
		t.Error("Expected error for a malformed font")
	}
}
