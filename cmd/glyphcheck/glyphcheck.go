package main

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/wbrown/truecell"
)

// FontMaskData is the rasterized catalog of one font, as saved by -output.
type FontMaskData struct {
	FontName string
	Masks    map[rune]truecell.GlyphMask
}

func loadFontOrDefault(path string) (*truetype.Font, string, error) {
	if path == "" {
		f, err := truecell.DefaultFont()
		return f, "Go Mono", err
	}
	f, err := truecell.LoadFont(path)
	return f, filepath.Base(path), err
}

// printReports writes one line per glyph and, when detail is set, both
// masks side by side for every glyph that differs. It returns the largest
// mismatch among the glyphs the font has.
func printReports(w io.Writer, reports []truecell.MaskReport, detail bool) int {
	worst := 0
	for i, rep := range reports {
		note := ""
		if rep.Glyph.Experimental {
			note = " (experimental)"
		}
		if rep.Missing {
			fmt.Fprintf(w, "%2d %c  %-52s   -  missing%s\n", i, rep.Glyph.Rune, rep.Glyph.Name, note)
			continue
		}
		fmt.Fprintf(w, "%2d %c  %-52s %3d%s\n", i, rep.Glyph.Rune, rep.Glyph.Name, rep.Mismatch, note)
		if rep.Mismatch > worst {
			worst = rep.Mismatch
		}
		if detail && rep.Mismatch > 0 {
			fmt.Fprint(w, sideBySide(rep.Glyph.Mask, rep.Rendered))
		}
	}
	return worst
}

// sideBySide draws the catalog mask next to the font's rendering.
func sideBySide(want, got truecell.GlyphMask) string {
	var b strings.Builder
	for y := 0; y < truecell.BlockHeight; y++ {
		b.WriteString("      ")
		for _, m := range []truecell.GlyphMask{want, got} {
			for x := 0; x < truecell.BlockWidth; x++ {
				if m.At(x, y) {
					b.WriteByte('#')
				} else {
					b.WriteByte('.')
				}
			}
			b.WriteString("   ")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// maskData collects the rendered masks of every glyph the font has.
func maskData(name string, reports []truecell.MaskReport) *FontMaskData {
	data := &FontMaskData{FontName: name, Masks: make(map[rune]truecell.GlyphMask, len(reports))}
	for _, rep := range reports {
		if !rep.Missing {
			data.Masks[rep.Glyph.Rune] = rep.Rendered
		}
	}
	return data
}

// compareMaskData reports glyphs whose rasterization differs from a
// previous run saved with -output. It returns the number of differences.
func compareMaskData(w io.Writer, saved, current *FontMaskData) int {
	changed := 0
	for _, g := range truecell.Catalog() {
		old, hadOld := saved.Masks[g.Rune]
		cur, hasCur := current.Masks[g.Rune]
		switch {
		case !hadOld && !hasCur:
			continue
		case !hadOld:
			fmt.Fprintf(w, "%c  %-52s new in %s\n", g.Rune, g.Name, current.FontName)
		case !hasCur:
			fmt.Fprintf(w, "%c  %-52s missing from %s\n", g.Rune, g.Name, current.FontName)
		case old != cur:
			fmt.Fprintf(w, "%c  %-52s %3d cells changed\n", g.Rune, g.Name, old.Diff(cur))
		default:
			continue
		}
		changed++
	}
	return changed
}

// saveFontMaskData saves rasterized masks as gzip compressed gob.
func saveFontMaskData(data *FontMaskData, outputPath string) error {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	enc := gob.NewEncoder(gz)
	if err := enc.Encode(data); err != nil {
		gz.Close()
		return fmt.Errorf("failed to encode data: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to close gzip: %w", err)
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// loadFontMaskData reads a file written by saveFontMaskData.
func loadFontMaskData(path string) (*FontMaskData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	gz, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gz.Close()

	var data FontMaskData
	if err := gob.NewDecoder(gz).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode mask data: %w", err)
	}
	return &data, nil
}

func main() {
	fontPath := flag.String("font", "", "Path to a TrueType font (default: embedded Go Mono)")
	outputFile := flag.String("output", "", "Optional path to save the rasterized masks")
	maxMismatch := flag.Int("max", -1, "Exit with status 1 if any glyph differs in more cells (-1 disables)")
	detail := flag.Bool("detail", false, "Draw catalog and font masks for differing glyphs")
	compareFile := flag.String("compare", "", "Optional masks saved by -output to compare the rasterization against")
	flag.Parse()

	font, name, err := loadFontOrDefault(*fontPath)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	log.Printf("Rasterizing %d catalog glyphs with %s at %dx%d",
		len(truecell.Catalog()), name, truecell.BlockWidth, truecell.BlockHeight)

	reports := truecell.CompareFont(font)
	worst := printReports(os.Stdout, reports, *detail)

	data := maskData(name, reports)

	failed := false
	if *compareFile != "" {
		saved, err := loadFontMaskData(*compareFile)
		if err != nil {
			log.Fatalf("Failed to load mask data: %v", err)
		}
		if n := compareMaskData(os.Stdout, saved, data); n > 0 {
			log.Printf("%d glyphs differ from %s (%s)", n, *compareFile, saved.FontName)
			failed = true
		}
	}

	if *outputFile != "" {
		if err := saveFontMaskData(data, *outputFile); err != nil {
			log.Fatalf("Failed to save mask data: %v", err)
		}
		log.Printf("Saved %d masks to %s", len(data.Masks), *outputFile)
	}

	if *maxMismatch >= 0 && worst > *maxMismatch {
		log.Printf("Worst glyph differs in %d cells, more than %d", worst, *maxMismatch)
		failed = true
	}
	if failed {
		os.Exit(1)
	}
}
