package truecell

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Linearizer maps every possible channel byte to its linear light value.
// A Linearizer is filled once and only read afterwards, so one table is
// safely shared by all render workers.
type Linearizer [256]float32

// approximate is the table used by default, built from linearizeApprox.
var approximate = newApproximateLinearizer()

// DefaultLinearizer returns the table built from the fast rational
// approximation of the sRGB transfer curve.
func DefaultLinearizer() *Linearizer {
	return approximate
}

// ExactLinearizer returns a table built from the exact sRGB transfer curve
// as computed by go-colorful.
func ExactLinearizer() *Linearizer {
	var l Linearizer
	for i := range l {
		r, _, _ := colorful.Color{R: float64(i) / 255}.LinearRgb()
		l[i] = clamp01(float32(r))
	}
	return &l
}

func newApproximateLinearizer() *Linearizer {
	var l Linearizer
	for i := range l {
		l[i] = linearizeApprox(float32(i) / 255)
	}
	return &l
}

// Linearize converts one gamma encoded channel value to linear light in
// [0, 1] using the default table.
func Linearize(v uint8) float32 {
	return approximate[v]
}

// linearizeApprox converts x in [0, 1] from sRGB to linear light. The power
// segment uses a rational fit of ((x+0.055)/1.055)^2.4 that stays within
// 1e-5 of the exact curve over all byte inputs.
func linearizeApprox(x float32) float32 {
	if x < 0.04045 {
		return clamp01(x / 12.92)
	}
	return clamp01(pow24((x + 0.055) / 1.055))
}

func pow24(x float32) float32 {
	x2 := x * x
	x3 := x2 * x
	x4 := x2 * x2
	return 0.0985766365536824 +
		0.839474952656502*x2 +
		0.363287814061725*x3 -
		0.0125559718896615/(0.12758338921578+0.290283465468235*x) -
		0.231757513261358*x -
		0.0395365717969074*x4
}

// Delinearize converts linear light back to a gamma encoded channel value,
// rounding to the nearest byte. Input outside [0, 1] is clamped.
func Delinearize(f float32) uint8 {
	f = clamp01(f)
	var x float64
	if f <= 0.0031308 {
		x = 12.92 * float64(f)
	} else {
		x = 1.055*math.Pow(float64(f), 1/2.4) - 0.055
	}
	return uint8(math.Round(math.Min(1, math.Max(0, x)) * 255))
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// LinearBlock is the planar linear light copy of a Block: index 0, 1 and 2
// hold the red, green and blue channels, each in block cell order.
type LinearBlock [3][BlockCells]float32

// linearize fills lb from b using table l.
func (lb *LinearBlock) linearize(b *Block, l *Linearizer) {
	for i, c := range b {
		lb[0][i] = l[c.R]
		lb[1][i] = l[c.G]
		lb[2][i] = l[c.B]
	}
}
