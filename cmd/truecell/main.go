package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/codegangsta/cli"
	"github.com/wbrown/truecell"
	"github.com/wbrown/truecell/imageutil"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("truecell: ")

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	// -v is taken by --verbose.
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}

	app := cli.NewApp()
	app.Name = "truecell"
	app.Version = "0.1.0"
	app.Usage = "Renders pictures as unicode block art in 24-bit terminal color."
	app.UsageText = "1) truecell [options] FILE...\n" +
		/*      */ "   2) truecell [options] - < FILE"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "columns,x",
			Usage: "`X` > 0 sets the width in characters, X <= 0 removes -X from the terminal width.",
		},
		cli.IntFlag{
			Name:  "rows,y",
			Usage: "`Y` > 0 sets the height in characters, Y <= 0 removes -Y from the terminal height.",
		},
		cli.IntFlag{
			Name:  "bits,k",
			Usage: "Tries at most 2^`BITS` color pairs per character.",
			Value: truecell.DefaultPairBits,
		},
		cli.IntFlag{
			Name:  "glyphs,g",
			Usage: fmt.Sprintf("Searches the first `N` glyphs of the catalog (max %d).", len(truecell.Catalog())),
			Value: truecell.DefaultGlyphLimit,
		},
		cli.IntFlag{
			Name:  "workers,w",
			Usage: "Renders `N` rows at once, 0 uses every CPU.",
		},
		cli.BoolFlag{
			Name:  "exact",
			Usage: "Linearizes colors with the exact sRGB curve instead of the fast approximation.",
		},
		cli.BoolFlag{
			Name:  "nocache",
			Usage: "Disables the repeated block cache.",
		},
		cli.StringFlag{
			Name:  "filter,f",
			Usage: "Resampling `FILTER`: catmullrom, bilinear, nearest or lanczos.",
			Value: "catmullrom",
		},
		cli.Float64Flag{
			Name:  "gamma",
			Usage: "`GAMMA` = 1.0 gives the original image. Less than 1.0 darkens, greater lightens.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "brightness",
			Usage: "`BRIGHTNESS` in [-100, 100], 0 gives the original image.",
		},
		cli.Float64Flag{
			Name:  "contrast",
			Usage: "`CONTRAST` in [-100, 100], 0 gives the original image.",
		},
		cli.Float64Flag{
			Name:  "sharpen",
			Usage: "`SIGMA` > 0 sharpens the resized image.",
		},
		cli.StringFlag{
			Name:  "output,o",
			Usage: "Writes to `FILE` instead of stdout. A .gz or .zst suffix compresses the output.",
		},
		cli.StringFlag{
			Name:  "preview",
			Usage: "Also paints the cells into the PNG `FILE`.",
		},
		cli.BoolFlag{
			Name:  "verbose,v",
			Usage: "Logs timing and cache statistics to stderr.",
		},
	}
	app.Action = run
	return app
}

// settings holds everything parsed from the command line.
type settings struct {
	columns, rows int
	renderer      []truecell.RendererOption
	interp        imageutil.Interpolation
	adjust        imageutil.Adjustments
	output        string
	preview       string
	verbose       bool
}

func parseSettings(c *cli.Context) (*settings, error) {
	interp, err := imageutil.ParseInterpolation(c.String("filter"))
	if err != nil {
		return nil, err
	}
	s := &settings{
		columns: c.Int("columns"),
		rows:    c.Int("rows"),
		interp:  interp,
		adjust: imageutil.Adjustments{
			Gamma:      c.Float64("gamma"),
			Brightness: c.Float64("brightness"),
			Contrast:   c.Float64("contrast"),
			Sharpen:    c.Float64("sharpen"),
		},
		output:  c.String("output"),
		preview: c.String("preview"),
		verbose: c.Bool("verbose"),
	}
	s.renderer = []truecell.RendererOption{
		truecell.WithPairBits(c.Int("bits")),
		truecell.WithGlyphLimit(c.Int("glyphs")),
		truecell.WithWorkers(c.Int("workers")),
		truecell.WithCache(!c.Bool("nocache")),
	}
	if c.Bool("exact") {
		s.renderer = append(s.renderer, truecell.WithLinearizer(truecell.ExactLinearizer()))
	}
	return s, nil
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		cli.ShowAppHelp(c)
		return cli.NewExitError("", 255)
	}
	s, err := parseSettings(c)
	if err != nil {
		return err
	}
	logf := func(format string, args ...interface{}) {
		if s.verbose {
			log.Printf(format, args...)
		}
	}

	r := truecell.NewRenderer(s.renderer...)
	if err := r.Validate(); err != nil {
		return err
	}

	termCols, termRows := termSize()
	cols, rows, err := resolveGrid(s.columns, s.rows, termCols, termRows)
	if err != nil {
		return err
	}
	logf("terminal %dx%d, rendering %dx%d cells", termCols, termRows, cols, rows)
	if !s.adjust.IsZero() {
		logf("adjustments: %+v", s.adjust)
	}

	out, err := openOutput(s.output)
	if err != nil {
		return err
	}

	files := c.Args()
	for i, path := range files {
		if i > 0 {
			if _, err := io.WriteString(out, "\n"); err != nil {
				out.Close()
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		if err := renderFile(r, s, out, path, cols, rows, previewPath(s.preview, i, len(files)), logf); err != nil {
			out.Close()
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	hits, misses, rate := r.CacheStats()
	logf("block cache: %d hits, %d misses (%.1f%%)", hits, misses, rate*100)
	return out.Close()
}

func renderFile(
	r *truecell.Renderer,
	s *settings,
	w io.Writer,
	path string,
	cols, rows int,
	preview string,
	logf func(string, ...interface{}),
) error {
	start := time.Now()
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return err
	}
	pix, err := imageutil.PrepareForCells(img, cols, rows,
		truecell.BlockWidth, truecell.BlockHeight, s.interp, s.adjust)
	if err != nil {
		return err
	}
	prepared := time.Now()

	cells, err := r.Cells(pix, rows, cols)
	if err != nil {
		return err
	}
	frame := truecell.AppendFrame(make([]byte, 0, rows*cols*truecell.MaxCellBytes), cells)
	if _, err := w.Write(frame); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logf("%s: %dx%d source, prepared in %v, rendered %d bytes in %v",
		path, img.Width(), img.Height(), prepared.Sub(start), len(frame), time.Since(prepared))

	if preview != "" {
		if err := truecell.SavePreview(cells, preview, 1); err != nil {
			return err
		}
		logf("preview written to %s", preview)
	}
	return nil
}

// previewPath returns the preview file for input i of n. With several
// inputs the index is inserted before the extension.
func previewPath(base string, i, n int) string {
	if base == "" || n <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s.%d%s", strings.TrimSuffix(base, ext), i+1, ext)
}
