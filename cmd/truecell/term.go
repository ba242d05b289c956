package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const (
	defaultTermCols = 80
	defaultTermRows = 24
)

// termSize returns the size of the terminal attached to stdin, stdout or
// stderr, or 80x24 when there is none.
func termSize() (cols, rows int) {
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	return defaultTermCols, defaultTermRows
}

// resolveGrid turns the requested size into a cell grid. Positive values
// are used as is, zero or negative values are added to the terminal size.
func resolveGrid(x, y, termCols, termRows int) (cols, rows int, err error) {
	cols, rows = x, y
	if cols <= 0 {
		cols += termCols
	}
	if rows <= 0 {
		rows += termRows
	}
	if cols <= 0 || rows <= 0 {
		return 0, 0, fmt.Errorf("grid %dx%d is empty (requested %d,%d on a %dx%d terminal)",
			cols, rows, x, y, termCols, termRows)
	}
	return cols, rows, nil
}
