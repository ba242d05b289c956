package truecell

import "unicode/utf8"

const (
	// MaxCellBytes bounds the serialized size of one cell: two 24-bit SGR
	// color sequences plus a rune of at most four bytes.
	MaxCellBytes = 40

	// Reset ends a frame: carriage return, then SGR reset.
	Reset = "\r\x1b[0m"
)

// decimalTable holds the ASCII decimal spelling of every byte value. The
// last element of each entry is the digit count.
var decimalTable = buildDecimalTable()

func buildDecimalTable() (t [256][4]byte) {
	for v := range t {
		switch {
		case v >= 100:
			t[v] = [4]byte{byte('0' + v/100), byte('0' + v/10%10), byte('0' + v%10), 3}
		case v >= 10:
			t[v] = [4]byte{byte('0' + v/10), byte('0' + v%10), 0, 2}
		default:
			t[v] = [4]byte{byte('0' + v), 0, 0, 1}
		}
	}
	return t
}

func appendDecimal(dst []byte, v uint8) []byte {
	d := &decimalTable[v]
	return append(dst, d[:d[3]]...)
}

func appendColor(dst []byte, c RGB) []byte {
	dst = appendDecimal(dst, c.R)
	dst = append(dst, ';')
	dst = appendDecimal(dst, c.G)
	dst = append(dst, ';')
	return appendDecimal(dst, c.B)
}

// AppendCell appends the escape sequence selecting the cell's background
// and foreground colors followed by the UTF-8 encoding of its rune:
//
//	ESC [ 48;2;R;G;B ; 38;2;R;G;B m <rune>
func AppendCell(dst []byte, c Cell) []byte {
	dst = append(dst, "\x1b[48;2;"...)
	dst = appendColor(dst, c.BG)
	dst = append(dst, ";38;2;"...)
	dst = appendColor(dst, c.FG)
	dst = append(dst, 'm')
	return utf8.AppendRune(dst, c.Rune)
}
