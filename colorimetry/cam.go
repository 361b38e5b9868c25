package colorimetry

import (
	"fmt"
	"math"
	"strings"
)

// Surround describes the relative luminance of the surround field.
type Surround struct {
	F  float64
	C  float64
	Nc float64
}

// Standard surrounds for CIECAM02, CAM16, CIECAM16 and Hellwig 2022.
var Surrounds = map[string]Surround{
	"average": {F: 1, C: 0.69, Nc: 1},
	"dim":     {F: 0.9, C: 0.59, Nc: 0.9},
	"dark":    {F: 0.8, C: 0.525, Nc: 0.8},
}

// SurroundByName returns a named surround, case-insensitively.
func SurroundByName(name string) (Surround, error) {
	s, ok := Surrounds[strings.ToLower(name)]
	if !ok {
		return Surround{}, fmt.Errorf("unknown surround %q", name)
	}
	return s, nil
}

// ViewingConditions parameterise the appearance models.
type ViewingConditions struct {
	LA       float64 // adapting field luminance in cd/m2
	Yb       float64 // relative background luminance
	Surround Surround
}

// DefaultViewingConditions are L_A = 318.31 cd/m2, Y_b = 20 and an average
// surround.
var DefaultViewingConditions = ViewingConditions{LA: 318.31, Yb: 20, Surround: Surrounds["average"]}

// Appearance holds the correlates of a colour appearance model. Correlates
// a model does not define are NaN.
type Appearance struct {
	J, C, H, S, Q, M, HQ, HC float64
}

// Slice returns J, C, h, s, Q, M, H and HC in that order.
func (a Appearance) Slice() []float64 {
	return []float64{a.J, a.C, a.H, a.S, a.Q, a.M, a.HQ, a.HC}
}

// JMh returns lightness, colourfulness and hue angle.
func (a Appearance) JMh() Vec3 {
	return Vec3{a.J, a.M, a.H}
}

var (
	matCAT02 = catMatrices[CATCAT02]
	matM16   = catMatrices[CATCAT16]
	matHPE   = Mat3{
		{0.38971, 0.68898, -0.07868},
		{-0.22981, 1.18340, 0.04641},
		{0.00000, 0.00000, 1.00000},
	}
)

type viewingParams struct {
	n, fl, nbb, ncb, z, d float64
}

func newViewingParams(vc ViewingConditions, yw float64) viewingParams {
	k := 1 / (5*vc.LA + 1)
	k4 := k * k * k * k
	fl := 0.2*k4*(5*vc.LA) + 0.1*(1-k4)*(1-k4)*math.Cbrt(5*vc.LA)
	n := vc.Yb / yw
	nbb := 0.725 * math.Pow(1/n, 0.2)
	d := vc.Surround.F * (1 - (1/3.6)*math.Exp((-vc.LA-42)/92))
	d = math.Max(0, math.Min(1, d))
	return viewingParams{n: n, fl: fl, nbb: nbb, ncb: nbb, z: 1.48 + math.Sqrt(n), d: d}
}

// compress is the post-adaptation non-linear response compression.
func compress(x, fl float64) float64 {
	t := math.Pow(fl*math.Abs(x)/100, 0.42)
	return sign(x) * 400 * t / (27.13 + t)
}

func adaptCone(rgb, rgbw Vec3, yw, d float64) Vec3 {
	var out Vec3
	for i := range out {
		out[i] = (yw*d/rgbw[i] + 1 - d) * rgb[i]
	}
	return out
}

func opponent(rgba Vec3) (float64, float64) {
	return rgba[0] - 12*rgba[1]/11 + rgba[2]/11, (rgba[0] + rgba[1] - 2*rgba[2]) / 9
}

func achromatic(rgba Vec3, nbb float64) float64 {
	return (2*rgba[0] + rgba[1] + rgba[2]/20 - 0.305) * nbb
}

// hueData tabulates unique hue angles h, eccentricities e and quadrature
// values H.
type hueData struct {
	h, e, q [5]float64
}

var ciecamHues = hueData{
	h: [5]float64{20.14, 90.00, 164.25, 237.53, 380.14},
	e: [5]float64{0.8, 0.7, 1.0, 1.2, 0.8},
	q: [5]float64{0.0, 100.0, 200.0, 300.0, 400.0},
}

func (t hueData) quadrature(h float64) float64 {
	hp := h
	if hp < t.h[0] {
		hp += 360
	}
	i := 0
	for i < 3 && hp >= t.h[i+1] {
		i++
	}
	a := (hp - t.h[i]) / t.e[i]
	b := (t.h[i+1] - hp) / t.e[i+1]
	return t.q[i] + 100*a/(a+b)
}

// HueQuadrature returns the CIECAM02 hue quadrature H of hue angle h.
func HueQuadrature(h float64) float64 {
	return ciecamHues.quadrature(h)
}

func eccentricity(h float64) float64 {
	return 0.25 * (math.Cos(radians(h)+2) + 3.8)
}

// cieCAM is the common CIECAM02 / CAM16 forward model. toCone maps XYZ to
// the adaptation space and toPost from adapted cones to the compression
// space.
func cieCAM(xyz, xyzw Vec3, vc ViewingConditions, toCone Mat3, toPost func(Vec3) Vec3, f func(float64, float64) float64) Appearance {
	p := newViewingParams(vc, xyzw[1])

	rgbc := adaptCone(toCone.Apply(xyz), toCone.Apply(xyzw), xyzw[1], p.d)
	rgbwc := adaptCone(toCone.Apply(xyzw), toCone.Apply(xyzw), xyzw[1], p.d)

	rgbp := toPost(rgbc)
	rgbpw := toPost(rgbwc)

	var rgba, rgbaw Vec3
	for i := 0; i < 3; i++ {
		rgba[i] = f(rgbp[i], p.fl)
		rgbaw[i] = f(rgbpw[i], p.fl)
	}

	a, b := opponent(rgba)
	h := hueDegrees(b, a)
	et := eccentricity(h)

	aw := achromatic(rgbaw, p.nbb)
	ach := achromatic(rgba, p.nbb)

	j := 100 * math.Pow(ach/aw, vc.Surround.C*p.z)
	q := (4 / vc.Surround.C) * math.Sqrt(j/100) * (aw + 4) * math.Pow(p.fl, 0.25)
	t := (50000.0 / 13 * vc.Surround.Nc * p.ncb * et * math.Hypot(a, b)) /
		(rgba[0] + rgba[1] + 21.0/20*rgba[2])
	c := math.Pow(t, 0.9) * math.Sqrt(j/100) * math.Pow(1.64-math.Pow(0.29, p.n), 0.73)
	m := c * math.Pow(p.fl, 0.25)
	s := 100 * math.Sqrt(m/q)

	return Appearance{J: j, C: c, H: h, S: s, Q: q, M: m, HQ: HueQuadrature(h), HC: math.NaN()}
}

func offsetCompress(x, fl float64) float64 {
	return compress(x, fl) + 0.1
}

// XYZToCIECAM02 computes CIECAM02 correlates of xyz (0..100) under the
// reference white xyzw (0..100).
func XYZToCIECAM02(xyz, xyzw Vec3, vc ViewingConditions) Appearance {
	toHPE := matHPE.Mul(matCAT02.Inverse())
	return cieCAM(xyz, xyzw, vc, matCAT02, toHPE.Apply, offsetCompress)
}

// XYZToCAM16 computes CAM16 correlates (Li et al. 2017).
func XYZToCAM16(xyz, xyzw Vec3, vc ViewingConditions) Appearance {
	return cieCAM(xyz, xyzw, vc, matM16, func(v Vec3) Vec3 { return v }, offsetCompress)
}

const (
	cam16qL = 0.26
	cam16qU = 150.0
)

// compressExtended is the CIECAM16 compression, linear below q_L and
// above q_U.
func compressExtended(x, fl float64) float64 {
	fq := func(q float64) float64 {
		t := math.Pow(fl*q/100, 0.42)
		return 400 * t / (27.13 + t)
	}
	switch {
	case x < cam16qL:
		return fq(cam16qL)*x/cam16qL + 0.1
	case x > cam16qU:
		t := math.Pow(fl*cam16qU/100, 0.42)
		slope := 1.68 * 27.13 * fl * math.Pow(fl*cam16qU/100, -0.58) / ((27.13 + t) * (27.13 + t))
		return fq(cam16qU) + slope*(x-cam16qU) + 0.1
	}
	return fq(x) + 0.1
}

// XYZToCIECAM16 computes CIECAM16 correlates (CIE 248:2022).
func XYZToCIECAM16(xyz, xyzw Vec3, vc ViewingConditions) Appearance {
	return cieCAM(xyz, xyzw, vc, matM16, func(v Vec3) Vec3 { return v }, compressExtended)
}

// Hellwig holds the Hellwig and Fairchild (2022) correlates, including the
// Helmholtz-Kohlrausch corrected lightness and brightness.
type Hellwig struct {
	Appearance
	JHK, QHK float64
}

// Slice returns the ten correlates in document order.
func (h Hellwig) Slice() []float64 {
	return append(h.Appearance.Slice(), h.JHK, h.QHK)
}

func hellwigEccentricity(h float64) float64 {
	hr := radians(h)
	return -0.0582*math.Cos(hr) - 0.0258*math.Cos(2*hr) - 0.1347*math.Cos(3*hr) +
		0.0289*math.Cos(4*hr) - 0.1475*math.Sin(hr) - 0.0308*math.Sin(2*hr) +
		0.0385*math.Sin(3*hr) + 0.0096*math.Sin(4*hr) + 1
}

func hellwigHK(h float64) float64 {
	hr := radians(h)
	return -0.160*math.Cos(hr) + 0.132*math.Cos(2*hr) - 0.405*math.Sin(hr) + 0.080*math.Sin(2*hr) + 0.792
}

// XYZToHellwig2022 computes the Hellwig and Fairchild (2022) model.
func XYZToHellwig2022(xyz, xyzw Vec3, vc ViewingConditions) Hellwig {
	p := newViewingParams(vc, xyzw[1])

	rgbc := adaptCone(matM16.Apply(xyz), matM16.Apply(xyzw), xyzw[1], p.d)
	rgbwc := adaptCone(matM16.Apply(xyzw), matM16.Apply(xyzw), xyzw[1], p.d)
	var rgba, rgbaw Vec3
	for i := 0; i < 3; i++ {
		rgba[i] = compress(rgbc[i], p.fl)
		rgbaw[i] = compress(rgbwc[i], p.fl)
	}

	a, b := opponent(rgba)
	h := hueDegrees(b, a)
	aw := 2*rgbaw[0] + rgbaw[1] + 0.05*rgbaw[2]
	ach := 2*rgba[0] + rgba[1] + 0.05*rgba[2]

	cs := vc.Surround.C
	j := 100 * spow(ach/aw, cs*p.z)
	q := (2 / cs) * (j / 100) * aw
	m := 43 * vc.Surround.Nc * hellwigEccentricity(h) * math.Hypot(a, b)
	c := 35 * m / aw
	s := 100 * sdiv(m, q)
	jhk := j + hellwigHK(h)*math.Pow(c, 0.587)
	qhk := (2 / cs) * (jhk / 100) * aw

	return Hellwig{
		Appearance: Appearance{J: j, C: c, H: h, S: s, Q: q, M: m, HQ: HueQuadrature(h), HC: math.NaN()},
		JHK:        jhk,
		QHK:        qhk,
	}
}

// RLAB holds the Fairchild (1996) RLAB correlates.
type RLAB struct {
	J, C, H, S, HC, A, B float64
}

// Slice returns J, C, h, s, HC, a and b.
func (r RLAB) Slice() []float64 {
	return []float64{r.J, r.C, r.H, r.S, r.HC, r.A, r.B}
}

var (
	rlabRM = Mat3{
		{0.3897, 0.6890, -0.0787},
		{-0.2298, 1.1834, 0.0464},
		{0.0000, 0.0000, 1.0000},
	}
	rlabR = Mat3{
		{1.9569, -1.1882, 0.2313},
		{0.3612, 0.6388, 0.0000},
		{0.0000, 0.0000, 1.0000},
	}
)

// RLAB viewing parameters.
const (
	RLABSigmaAverage = 1 / 2.3
	RLABYn           = 31.83
	RLABDHardCopy    = 1.0
)

// XYZToRLAB computes RLAB for xyz (0..100) under the white xyzn, with
// absolute adapting luminance yn, surround exponent sigma and degree of
// discounting d.
func XYZToRLAB(xyz, xyzn Vec3, yn, sigma, d float64) RLAB {
	lmsn := rlabRM.Apply(xyzn)
	sum := lmsn[0] + lmsn[1] + lmsn[2]
	ycr := math.Cbrt(yn)
	var a Vec3
	for i := range a {
		le := 3 * lmsn[i] / sum
		lp := (1 + ycr + le) / (1 + ycr + 1/le)
		a[i] = (lp + d*(1-lp)) / lmsn[i]
	}
	ref := rlabR.Mul(diag(a)).Mul(rlabRM).Apply(xyz)
	xs, ys, zs := spow(ref[0], sigma), spow(ref[1], sigma), spow(ref[2], sigma)
	l := 100 * ys
	ar := 430 * (xs - ys)
	br := 170 * (ys - zs)
	c := math.Hypot(ar, br)
	return RLAB{J: l, C: c, H: hueDegrees(br, ar), S: sdiv(c, l), HC: math.NaN(), A: ar, B: br}
}

// UCS coefficient sets of Luo, Cui and Li (2006).
type UCSCoefficients struct {
	KL, C1, C2 float64
}

var (
	LCD = UCSCoefficients{KL: 0.77, C1: 0.007, C2: 0.0053}
	SCD = UCSCoefficients{KL: 1.24, C1: 0.007, C2: 0.0363}
	UCS = UCSCoefficients{KL: 1.00, C1: 0.007, C2: 0.0228}
)

// JMhToUCS maps JMh correlates to the Luo (2006) uniform spaces.
func JMhToUCS(jmh Vec3, k UCSCoefficients) Vec3 {
	j := (1 + 100*k.C1) * jmh[0] / (1 + k.C1*jmh[0])
	m := math.Log(1+k.C2*jmh[1]) / k.C2
	h := radians(jmh[2])
	return Vec3{j, m * math.Cos(h), m * math.Sin(h)}
}
