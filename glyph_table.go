package truecell

// glyphTable is the catalog in priority order. Each mask row is one byte
// with column 0 in the most significant bit; a set bit paints foreground.
var glyphTable = [...]Glyph{
	{
		Rune: ' ',
		Name: "space",
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
		},
	},
	{
		Rune: '█',
		Name: "full block",
		Mask: GlyphMask{
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
		},
	},
	{
		Rune: '▄',
		Name: "lower half block",
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
		},
	},
	{
		Rune: '▀',
		Name: "upper half block",
		Mask: GlyphMask{
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
		},
	},
	{
		Rune: '▐',
		Name: "right half block",
		Mask: GlyphMask{
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
		},
	},
	{
		Rune: '▌',
		Name: "left half block",
		Mask: GlyphMask{
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
		},
	},
	{
		Rune: '▝',
		Name: "quadrant upper right",
		Mask: GlyphMask{
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
		},
	},
	{
		Rune: '▙',
		Name: "quadrant upper left and lower left and lower right",
		Mask: GlyphMask{
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
		},
	},
	{
		Rune: '▗',
		Name: "quadrant lower right",
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
		},
	},
	{
		Rune: '▛',
		Name: "quadrant upper left and upper right and lower left",
		Mask: GlyphMask{
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
		},
	},
	{
		Rune: '▖',
		Name: "quadrant lower left",
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
		},
	},
	{
		Rune: '▜',
		Name: "quadrant upper left and upper right and lower right",
		Mask: GlyphMask{
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
		},
	},
	{
		Rune: '▘',
		Name: "quadrant upper left",
		Mask: GlyphMask{
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
		},
	},
	{
		Rune: '▟',
		Name: "quadrant upper right and lower left and lower right",
		Mask: GlyphMask{
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
		},
	},
	{
		Rune: '▞',
		Name: "quadrant upper right and lower left",
		Mask: GlyphMask{
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
		},
	},
	{
		Rune: '▚',
		Name: "quadrant upper left and lower right",
		Mask: GlyphMask{
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b11110000,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
			0b00001111,
		},
	},
	{
		Rune: '▔',
		Name: "upper one eighth block",
		Mask: GlyphMask{
			0b11111111,
			0b11111111,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
		},
	},
	{
		Rune: '▁',
		Name: "lower one eighth block",
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b11111111,
			0b11111111,
		},
	},
	{
		Rune: '▂',
		Name: "lower one quarter block",
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
		},
	},
	{
		Rune: '▃',
		Name: "lower three eighths block",
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
		},
	},
	{
		Rune: '▅',
		Name: "lower five eighths block",
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
		},
	},
	{
		Rune: '▆',
		Name: "lower three quarters block",
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
		},
	},
	{
		Rune: '▇',
		Name: "lower seven eighths block",
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
		},
	},
	{
		Rune: '▏',
		Name: "left one eighth block",
		Mask: GlyphMask{
			0b10000000,
			0b10000000,
			0b10000000,
			0b10000000,
			0b10000000,
			0b10000000,
			0b10000000,
			0b10000000,
			0b10000000,
			0b10000000,
			0b10000000,
			0b10000000,
			0b10000000,
			0b10000000,
			0b10000000,
			0b10000000,
		},
	},
	{
		Rune: '▎',
		Name: "left one quarter block",
		Mask: GlyphMask{
			0b11000000,
			0b11000000,
			0b11000000,
			0b11000000,
			0b11000000,
			0b11000000,
			0b11000000,
			0b11000000,
			0b11000000,
			0b11000000,
			0b11000000,
			0b11000000,
			0b11000000,
			0b11000000,
			0b11000000,
			0b11000000,
		},
	},
	{
		Rune: '▍',
		Name: "left three eighths block",
		Mask: GlyphMask{
			0b11100000,
			0b11100000,
			0b11100000,
			0b11100000,
			0b11100000,
			0b11100000,
			0b11100000,
			0b11100000,
			0b11100000,
			0b11100000,
			0b11100000,
			0b11100000,
			0b11100000,
			0b11100000,
			0b11100000,
			0b11100000,
		},
	},
	{
		Rune: '▋',
		Name: "left five eighths block",
		Mask: GlyphMask{
			0b11111000,
			0b11111000,
			0b11111000,
			0b11111000,
			0b11111000,
			0b11111000,
			0b11111000,
			0b11111000,
			0b11111000,
			0b11111000,
			0b11111000,
			0b11111000,
			0b11111000,
			0b11111000,
			0b11111000,
			0b11111000,
		},
	},
	{
		Rune: '▊',
		Name: "left three quarters block",
		Mask: GlyphMask{
			0b11111100,
			0b11111100,
			0b11111100,
			0b11111100,
			0b11111100,
			0b11111100,
			0b11111100,
			0b11111100,
			0b11111100,
			0b11111100,
			0b11111100,
			0b11111100,
			0b11111100,
			0b11111100,
			0b11111100,
			0b11111100,
		},
	},
	{
		Rune: '▉',
		Name: "left seven eighths block",
		Mask: GlyphMask{
			0b11111110,
			0b11111110,
			0b11111110,
			0b11111110,
			0b11111110,
			0b11111110,
			0b11111110,
			0b11111110,
			0b11111110,
			0b11111110,
			0b11111110,
			0b11111110,
			0b11111110,
			0b11111110,
			0b11111110,
			0b11111110,
		},
	},
	{
		Rune: '▕',
		Name: "right one eighth block",
		Mask: GlyphMask{
			0b00000001,
			0b00000001,
			0b00000001,
			0b00000001,
			0b00000001,
			0b00000001,
			0b00000001,
			0b00000001,
			0b00000001,
			0b00000001,
			0b00000001,
			0b00000001,
			0b00000001,
			0b00000001,
			0b00000001,
			0b00000001,
		},
	},
	{
		Rune: '━',
		Name: "box drawings heavy horizontal",
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
		},
	},
	{
		Rune: '┉',
		Name: "box drawings heavy quadruple dash horizontal",
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b10101010,
			0b10101010,
			0b10101010,
			0b10101010,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
		},
	},
	{
		Rune: '┃',
		Name: "box drawings heavy vertical",
		Mask: GlyphMask{
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
		},
	},
	{
		Rune: '╋',
		Name: "box drawings heavy vertical and horizontal",
		Mask: GlyphMask{
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
		},
	},
	{
		Rune: '╹',
		Name: "box drawings heavy up",
		Mask: GlyphMask{
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
		},
	},
	{
		Rune: '╺',
		Name: "box drawings heavy right",
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00111111,
			0b00111111,
			0b00111111,
			0b00111111,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
		},
	},
	{
		Rune: '╻',
		Name: "box drawings heavy down",
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
		},
	},
	{
		Rune: '╸',
		Name: "box drawings heavy left",
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b11111100,
			0b11111100,
			0b11111100,
			0b11111100,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
		},
	},
	{
		Rune: '┏',
		Name: "box drawings heavy down and right",
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00111111,
			0b00111111,
			0b00111111,
			0b00111111,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
		},
	},
	{
		Rune: '┛',
		Name: "box drawings heavy up and left",
		Mask: GlyphMask{
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b11111100,
			0b11111100,
			0b11111100,
			0b11111100,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
		},
	},
	{
		Rune: '┓',
		Name: "box drawings heavy down and left",
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b11111100,
			0b11111100,
			0b11111100,
			0b11111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
		},
	},
	{
		Rune: '┗',
		Name: "box drawings heavy up and right",
		Mask: GlyphMask{
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111100,
			0b00111111,
			0b00111111,
			0b00111111,
			0b00111111,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
		},
	},
	{
		Rune:         '◢',
		Name:         "black lower right triangle",
		Experimental: true,
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000001,
			0b00000011,
			0b00000111,
			0b00001111,
			0b00011111,
			0b00111111,
			0b01111111,
			0b11111111,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
		},
	},
	{
		Rune:         '◣',
		Name:         "black lower left triangle",
		Experimental: true,
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b10000000,
			0b11000000,
			0b11100000,
			0b11110000,
			0b11111000,
			0b11111100,
			0b11111110,
			0b11111111,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
		},
	},
	{
		Rune:         '◥',
		Name:         "black upper right triangle",
		Experimental: true,
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b11111111,
			0b01111111,
			0b00111111,
			0b00011111,
			0b00001111,
			0b00000111,
			0b00000011,
			0b00000001,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
		},
	},
	{
		Rune:         '◤',
		Name:         "black upper left triangle",
		Experimental: true,
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b11111111,
			0b11111110,
			0b11111100,
			0b11111000,
			0b11110000,
			0b11100000,
			0b11000000,
			0b10000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
		},
	},
	{
		Rune:         '═',
		Name:         "box drawings double horizontal",
		Experimental: true,
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b11111111,
			0b11111111,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b11111111,
			0b11111111,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
		},
	},
	{
		Rune:         '⎻',
		Name:         "horizontal scan line 3",
		Experimental: true,
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b11111111,
			0b11111111,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
		},
	},
	{
		Rune:         '⎼',
		Name:         "horizontal scan line 7",
		Experimental: true,
		Mask: GlyphMask{
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
			0b11111111,
			0b11111111,
			0b00000000,
			0b00000000,
			0b00000000,
			0b00000000,
		},
	},
}
