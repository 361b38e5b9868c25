package colorimetry

import (
	"math"

	"github.com/jkl1337/go-chromath"
)

// Vec3 is a tristimulus or opponent triple.
type Vec3 [3]float64

// Mat3 is a row-major 3x3 matrix. Products and inverses are computed by
// chromath, which stores matrices column-major.
type Mat3 [3][3]float64

func (m Mat3) toChromath() chromath.Matrix {
	return chromath.Matrix{
		m[0][0], m[1][0], m[2][0],
		m[0][1], m[1][1], m[2][1],
		m[0][2], m[1][2], m[2][2],
	}
}

func fromChromath(c chromath.Matrix) Mat3 {
	return Mat3{
		{c[0], c[3], c[6]},
		{c[1], c[4], c[7]},
		{c[2], c[5], c[8]},
	}
}

// Apply multiplies the matrix by v.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3(m.toChromath().Mul3x1(chromath.Point(v)))
}

// Mul returns m*n.
func (m Mat3) Mul(n Mat3) Mat3 {
	return fromChromath(m.toChromath().Mul3(n.toChromath()))
}

// Inverse returns the inverse of m. A singular matrix yields NaNs.
func (m Mat3) Inverse() Mat3 {
	c := m.toChromath()
	if c.Det() == 0 {
		nan := math.NaN()
		return Mat3{{nan, nan, nan}, {nan, nan, nan}, {nan, nan, nan}}
	}
	return fromChromath(c.Inv())
}

func diag(v Vec3) Mat3 {
	return Mat3{{v[0], 0, 0}, {0, v[1], 0}, {0, 0, v[2]}}
}

// Scale returns v*k.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v[0] * k, v[1] * k, v[2] * k}
}

// Round rounds every component to n decimals.
func (v Vec3) Round(n int) Vec3 {
	return Vec3{Round(v[0], n), Round(v[1], n), Round(v[2], n)}
}

// Slice returns the components as a slice, the shape the result document expects.
func (v Vec3) Slice() []float64 {
	return []float64{v[0], v[1], v[2]}
}

// Round rounds x half away from zero to n decimals.
func Round(x float64, n int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	p := math.Pow(10, float64(n))
	return math.Round(x*p) / p
}

func radians(d float64) float64 { return d * math.Pi / 180 }
func degrees(r float64) float64 { return r * 180 / math.Pi }

// hueDegrees wraps an atan2 angle into [0, 360).
func hueDegrees(y, x float64) float64 {
	return chromath.Lab{0, x, y}.LCh().H()
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// spow is a sign preserving power.
func spow(x, p float64) float64 {
	return sign(x) * math.Pow(math.Abs(x), p)
}

func sdiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
