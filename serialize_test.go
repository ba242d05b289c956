package truecell

import (
	"strconv"
	"testing"
)

func TestAppendCell(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{
			Cell{Rune: '█', BG: RGB{255, 0, 0}, FG: RGB{0, 255, 0}},
			"\x1b[48;2;255;0;0;38;2;0;255;0m\xe2\x96\x88",
		},
		{
			Cell{Rune: ' ', BG: RGB{0, 0, 0}, FG: RGB{0, 0, 0}},
			"\x1b[48;2;0;0;0;38;2;0;0;0m ",
		},
		{
			Cell{Rune: '▚', BG: RGB{9, 10, 99}, FG: RGB{100, 1, 42}},
			"\x1b[48;2;9;10;99;38;2;100;1;42m▚",
		},
	}
	for _, tt := range tests {
		if got := string(AppendCell(nil, tt.cell)); got != tt.want {
			t.Errorf("AppendCell(%+v) = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

func TestAppendCellAppends(t *testing.T) {
	dst := []byte("prefix")
	dst = AppendCell(dst, Cell{Rune: ' '})
	if string(dst[:6]) != "prefix" {
		t.Errorf("prefix overwritten: %q", dst)
	}
}

func TestDecimalTable(t *testing.T) {
	for v := 0; v < 256; v++ {
		if got := string(appendDecimal(nil, uint8(v))); got != strconv.Itoa(v) {
			t.Errorf("appendDecimal(%d) = %q", v, got)
		}
	}
}

func TestMaxCellBytes(t *testing.T) {
	white := RGB{255, 255, 255}
	for _, g := range Catalog() {
		n := len(AppendCell(nil, Cell{Rune: g.Rune, BG: white, FG: white}))
		if n > MaxCellBytes {
			t.Errorf("%q serializes to %d bytes, more than %d", g.Rune, n, MaxCellBytes)
		}
	}
}
