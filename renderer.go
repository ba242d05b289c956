package truecell

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrDimensions reports a grid or image size that cannot be tiled into
	// whole 8x16 blocks, or a buffer longer than the declared grid.
	ErrDimensions = errors.New("truecell: invalid dimensions")

	// ErrShortBuffer reports a pixel buffer shorter than the declared grid.
	ErrShortBuffer = errors.New("truecell: pixel buffer too short")

	// ErrConfig reports a renderer option outside its valid range.
	ErrConfig = errors.New("truecell: invalid configuration")
)

// Renderer converts RGB24 frames into terminal output. A Renderer may be
// used by several goroutines at once as long as its exported fields are not
// changed while a render is in progress.
type Renderer struct {
	// PairBits bounds the candidate color pairs per block to 2^PairBits.
	PairBits int
	// GlyphLimit restricts the search to the first GlyphLimit catalog
	// entries.
	GlyphLimit int
	// Workers is the number of rows rendered concurrently. Zero or less
	// means runtime.GOMAXPROCS(0).
	Workers int
	// CacheSize is the number of blocks each worker remembers. Zero
	// disables the block cache.
	CacheSize int

	linearizer *Linearizer
	pool       sync.Pool

	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a new Renderer with the given options.
// Default values: PairBits=DefaultPairBits, GlyphLimit=DefaultGlyphLimit,
// Workers=GOMAXPROCS, CacheSize=DefaultCacheSize, approximate linearization.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		PairBits:   DefaultPairBits,
		GlyphLimit: DefaultGlyphLimit,
		CacheSize:  DefaultCacheSize,
		linearizer: DefaultLinearizer(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithPairBits sets the pair budget exponent.
func WithPairBits(bits int) RendererOption {
	return func(r *Renderer) {
		r.PairBits = bits
	}
}

// WithGlyphLimit sets how many catalog entries are searched.
func WithGlyphLimit(n int) RendererOption {
	return func(r *Renderer) {
		r.GlyphLimit = n
	}
}

// WithWorkers sets the number of rows rendered concurrently.
func WithWorkers(n int) RendererOption {
	return func(r *Renderer) {
		r.Workers = n
	}
}

// WithCache enables or disables the per-worker block cache.
func WithCache(enabled bool) RendererOption {
	return func(r *Renderer) {
		if enabled {
			r.CacheSize = DefaultCacheSize
		} else {
			r.CacheSize = 0
		}
	}
}

// WithLinearizer sets the sRGB to linear light table used for scoring.
func WithLinearizer(l *Linearizer) RendererOption {
	return func(r *Renderer) {
		if l != nil {
			r.linearizer = l
		}
	}
}

// Validate checks the renderer configuration.
func (r *Renderer) Validate() error {
	if r.PairBits < 1 || r.PairBits > MaxPairBits {
		return fmt.Errorf("%w: pair bits %d not in [1, %d]", ErrConfig, r.PairBits, MaxPairBits)
	}
	if n := len(glyphTable); r.GlyphLimit < 1 || r.GlyphLimit > n {
		return fmt.Errorf("%w: glyph limit %d not in [1, %d]", ErrConfig, r.GlyphLimit, n)
	}
	if r.CacheSize < 0 {
		return fmt.Errorf("%w: negative cache size %d", ErrConfig, r.CacheSize)
	}
	return nil
}

// Render converts a frame of rows x cols blocks into terminal output. pix
// holds (rows*16) lines of (cols*8) pixels, three bytes per pixel.
func (r *Renderer) Render(pix []byte, rows, cols int) ([]byte, error) {
	return r.AppendRender(nil, pix, rows, cols)
}

// AppendRender is like Render but appends the output to dst. On error dst
// is returned unchanged.
func (r *Renderer) AppendRender(dst, pix []byte, rows, cols int) ([]byte, error) {
	if err := r.Validate(); err != nil {
		return dst, err
	}
	if err := CheckFrame(pix, rows, cols); err != nil {
		return dst, err
	}

	lines := make([][]byte, rows)
	r.forEachRow(rows, func(s *scratch, y int) {
		row := r.selectRow(s, pix, y, cols)
		lines[y] = appendRow(make([]byte, 0, cols*MaxCellBytes+2), row, y == rows-1)
	})
	for _, line := range lines {
		dst = append(dst, line...)
	}
	return append(dst, Reset...), nil
}

// Encode renders the frame and writes it to w.
func (r *Renderer) Encode(w io.Writer, pix []byte, rows, cols int) error {
	out, err := r.Render(pix, rows, cols)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

// Cells returns the selected cell for every block of the frame, indexed
// [row][col].
func (r *Renderer) Cells(pix []byte, rows, cols int) ([][]Cell, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := CheckFrame(pix, rows, cols); err != nil {
		return nil, err
	}

	grid := make([][]Cell, rows)
	r.forEachRow(rows, func(s *scratch, y int) {
		grid[y] = r.selectRow(s, pix, y, cols)
	})
	return grid, nil
}

// SelectCell returns the best cell for a single block under the renderer's
// configuration, along with its distance. The cache is not consulted.
func (r *Renderer) SelectCell(b *Block) (Cell, float32, error) {
	if err := r.Validate(); err != nil {
		return Cell{}, 0, err
	}
	s := r.getScratch()
	defer r.pool.Put(s)
	cell, d := s.selectCell(b)
	return cell, d, nil
}

// CheckFrame verifies that pix holds exactly rows x cols blocks.
func CheckFrame(pix []byte, rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("%w: %d rows x %d cols", ErrDimensions, rows, cols)
	}
	need := rows * BlockHeight * cols * BlockWidth * 3
	switch {
	case len(pix) < need:
		return fmt.Errorf("%w: have %d bytes, %d rows x %d cols need %d",
			ErrShortBuffer, len(pix), rows, cols, need)
	case len(pix) > need:
		return fmt.Errorf("%w: %d bytes is not %d rows x %d cols (%d bytes)",
			ErrDimensions, len(pix), rows, cols, need)
	}
	return nil
}

// AppendFrame appends the terminal encoding of a grid of cells, as produced
// by Cells, to dst.
func AppendFrame(dst []byte, cells [][]Cell) []byte {
	for y, row := range cells {
		dst = appendRow(dst, row, y == len(cells)-1)
	}
	return append(dst, Reset...)
}

// appendRow serializes one row of cells. Every row but the last has its
// trailing spaces removed and ends in CR LF.
func appendRow(dst []byte, row []Cell, last bool) []byte {
	start := len(dst)
	for _, c := range row {
		dst = AppendCell(dst, c)
	}
	if last {
		return dst
	}
	for len(dst) > start && dst[len(dst)-1] == ' ' {
		dst = dst[:len(dst)-1]
	}
	return append(dst, '\r', '\n')
}

// selectRow selects the cells of block row y.
func (r *Renderer) selectRow(s *scratch, pix []byte, y, cols int) []Cell {
	row := make([]Cell, cols)
	stride := cols * BlockWidth * 3
	for x := range row {
		s.block.load(pix, stride, x, y)
		row[x] = r.cell(s)
	}
	return row
}

// cell selects the cell for the scratch block and records cache statistics.
func (r *Renderer) cell(s *scratch) Cell {
	c, hit := s.cell()
	if s.cache != nil {
		if hit {
			r.cacheHits.Add(1)
		} else {
			r.cacheMisses.Add(1)
		}
	}
	return c
}

// forEachRow calls fn once per row. Rows run concurrently on up to Workers
// goroutines, each with its own scratch state.
func (r *Renderer) forEachRow(rows int, fn func(s *scratch, y int)) {
	if rows == 0 {
		return
	}
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(min(workers, rows))
	for y := 0; y < rows; y++ {
		y := y
		g.Go(func() error {
			s := r.getScratch()
			defer r.pool.Put(s)
			fn(s, y)
			return nil
		})
	}
	_ = g.Wait()
}

func (r *Renderer) getScratch() *scratch {
	cfg := scratchConfig{
		pairBits:   r.PairBits,
		glyphLimit: r.GlyphLimit,
		cacheSize:  r.CacheSize,
		linearizer: r.linearizer,
	}
	if cfg.linearizer == nil {
		cfg.linearizer = DefaultLinearizer()
	}
	if s, ok := r.pool.Get().(*scratch); ok && s.cfg == cfg {
		return s
	}
	return newScratch(cfg)
}

// CacheStats returns cache hit/miss statistics.
func (r *Renderer) CacheStats() (hits, misses int, hitRate float64) {
	hits, misses = int(r.cacheHits.Load()), int(r.cacheMisses.Load())
	total := hits + misses
	if total == 0 {
		return 0, 0, 0
	}
	return hits, misses, float64(hits) / float64(total)
}

// ResetStats resets all statistics counters.
func (r *Renderer) ResetStats() {
	r.cacheHits.Store(0)
	r.cacheMisses.Store(0)
}
