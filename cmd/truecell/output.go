package main

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// nopCloser keeps stdout open when the output is closed.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// compressedFile closes the compressor before the file underneath it.
type compressedFile struct {
	io.WriteCloser
	file *os.File
}

func (c *compressedFile) Close() error {
	err := c.WriteCloser.Close()
	if cerr := c.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// openOutput opens the output sink: stdout for an empty path, otherwise the
// named file, compressed when the name ends in .gz or .zst.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return &compressedFile{WriteCloser: gzip.NewWriter(f), file: f}, nil
	case ".zst":
		enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		return &compressedFile{WriteCloser: enc, file: f}, nil
	}
	return f, nil
}
