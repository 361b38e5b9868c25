package colorimetry

import (
	"math"

	"github.com/jkl1337/go-chromath"
)

// lightnessCIE1976 maps Y in 0..100 to L*.
func lightnessCIE1976(y float64) float64 {
	return chromath.NewLabTransformer(&chromath.IlluminantRef{XYZ: chromath.XYZ{1, 1, 1}}).
		Invert(chromath.XYZ{1, y / 100, 1}).L()
}

// luminanceCIE1976 maps L* to Y in 0..100.
func luminanceCIE1976(l float64) float64 {
	if l > chromath.CIEKappa*chromath.CIEEps {
		r := (l + 16) / 116
		return 100 * r * r * r
	}
	return 100 * l / chromath.CIEKappa
}

// Luminance returns the relative luminance Y (0..100) of a CIE L* value.
func Luminance(lstar float64) float64 {
	return luminanceCIE1976(lstar)
}

func whiteRef(white XY) *chromath.IlluminantRef {
	return &chromath.IlluminantRef{XYZ: chromath.XYZ(white.XYZ())}
}

// XYZToLab converts XYZ (0..1) to CIELAB relative to the white xy.
func XYZToLab(xyz Vec3, white XY) Vec3 {
	return Vec3(chromath.NewLabTransformer(whiteRef(white)).Invert(chromath.XYZ(xyz)))
}

// LabToXYZ converts CIELAB relative to the white xy to XYZ (0..1).
func LabToXYZ(lab Vec3, white XY) Vec3 {
	return Vec3(chromath.NewLabTransformer(whiteRef(white)).Convert(chromath.Lab(lab)))
}

// ToLCH converts any rectangular opponent triple to lightness, chroma and hue.
func ToLCH(v Vec3) Vec3 {
	return Vec3(chromath.Lab(v).LCh())
}

// FromLCH is the inverse of ToLCH.
func FromLCH(v Vec3) Vec3 {
	return Vec3(chromath.LCh(v).Lab())
}

// XYZToUVPrime returns the CIE 1976 u'v' chromaticity.
func XYZToUVPrime(xyz Vec3) (float64, float64) {
	d := xyz[0] + 15*xyz[1] + 3*xyz[2]
	if d == 0 {
		return 0, 0
	}
	return 4 * xyz[0] / d, 9 * xyz[1] / d
}

// XYZToLuv converts XYZ (0..1) to CIELUV relative to the white xy.
func XYZToLuv(xyz Vec3, white XY) Vec3 {
	return Vec3(chromath.NewLuvTransformer(whiteRef(white)).Invert(chromath.XYZ(xyz)))
}

// LuvToXYZ converts CIELUV relative to the white xy to XYZ (0..1). White
// points are normalised to Y = 1, the scale chromath returns.
func LuvToXYZ(luv Vec3, white XY) Vec3 {
	if luv[0] == 0 {
		return Vec3{}
	}
	return Vec3(chromath.NewLuvTransformer(whiteRef(white)).Convert(chromath.Luv(luv)))
}

// XYZToXy returns the xy chromaticity. Black maps to the D65 white point.
func XYZToXy(xyz Vec3) XY {
	s := xyz[0] + xyz[1] + xyz[2]
	if s == 0 {
		return wpD65
	}
	return XY{xyz[0] / s, xyz[1] / s}
}

// XYZToXyY returns the xyY triple.
func XYZToXyY(xyz Vec3) Vec3 {
	c := XYZToXy(xyz)
	return Vec3{c[0], c[1], xyz[1]}
}

// XyYToXYZ is the inverse of XYZToXyY. A zero y gives black.
func XyYToXYZ(xyY Vec3) Vec3 {
	if xyY[1] == 0 {
		return Vec3{}
	}
	k := xyY[2] / xyY[1]
	return Vec3{xyY[0] * k, xyY[2], (1 - xyY[0] - xyY[1]) * k}
}

// XyToLuvUV returns the CIE 1976 u'v' coordinates of xy.
func XyToLuvUV(c XY) (float64, float64) {
	d := -2*c[0] + 12*c[1] + 3
	return 4 * c[0] / d, 9 * c[1] / d
}

// XYZToUCS converts to CIE 1960 UCS UVW.
func XYZToUCS(xyz Vec3) Vec3 {
	return Vec3{2 * xyz[0] / 3, xyz[1], 0.5 * (-xyz[0] + 3*xyz[1] + xyz[2])}
}

// UCSToUV returns the CIE 1960 uv chromaticity of UCS values.
func UCSToUV(ucs Vec3) (float64, float64) {
	s := ucs[0] + ucs[1] + ucs[2]
	if s == 0 {
		return 0, 0
	}
	return ucs[0] / s, ucs[1] / s
}

// XyToUV1960 returns the CIE 1960 uv chromaticity of xy.
func XyToUV1960(c XY) (float64, float64) {
	d := -2*c[0] + 12*c[1] + 3
	return 4 * c[0] / d, 6 * c[1] / d
}

// XYZToUVW converts XYZ (0..100) to CIE 1964 U*V*W* relative to white.
func XYZToUVW(xyz Vec3, white XY) Vec3 {
	u, v := UCSToUV(XYZToUCS(xyz))
	u0, v0 := XyToUV1960(white)
	w := 25*math.Cbrt(xyz[1]) - 17
	return Vec3{13 * w * (u - u0), 13 * w * (v - v0), w}
}

// HunterD65 is the Hunter Lab reference white of illuminant D65 for the
// 2 degree observer.
var (
	HunterD65XYZ = Vec3{95.02, 100.00, 108.82}
	HunterD65Kab = [2]float64{172.30, 67.20}
)

// HunterKab approximates the Hunter Ka and Kb chromaticity coefficients of a
// reference white given in the 0..100 domain.
func HunterKab(white Vec3) [2]float64 {
	return [2]float64{
		175.0 / 198.04 * (white[0] + white[1]),
		70.0 / 218.11 * (white[1] + white[2]),
	}
}

// XYZToHunterLab converts XYZ (0..100) to Hunter L, a, b.
func XYZToHunterLab(xyz, white Vec3, kab [2]float64) Vec3 {
	yy := xyz[1] / white[1]
	if yy == 0 {
		return Vec3{}
	}
	l := 100 * math.Sqrt(yy)
	a := kab[0] * (xyz[0]/white[0] - yy) / math.Sqrt(yy)
	b := kab[1] * (yy - xyz[2]/white[2]) / math.Sqrt(yy)
	return Vec3{l, a, b}
}

// XYZToHunterRdab converts XYZ (0..100) to Hunter Rd, a, b.
func XYZToHunterRdab(xyz, white Vec3, kab [2]float64) Vec3 {
	yy := xyz[1] / white[1]
	fy := 0.51 * (21 + 0.2*xyz[1]) / (1 + 0.2*xyz[1])
	return Vec3{
		xyz[1],
		kab[0] * fy * (xyz[0]/white[0] - yy),
		kab[1] * fy * (yy - xyz[2]/white[2]),
	}
}

// DIN99 method names.
const (
	DIN99  = "ASTMD2244-07"
	DIN99b = "DIN99b"
	DIN99c = "DIN99c"
	DIN99d = "DIN99d"
)

var din99Coefficients = map[string][7]float64{
	DIN99:  {105.509, 0.0158, 16.0, 0.7, 200 / 9.0, 9 / 200.0, 0.0},
	DIN99b: {303.67, 0.0039, 26.0, 0.83, 23.0, 0.075, 26.0},
	DIN99c: {317.65, 0.0037, 0.0, 0.94, 23.0, 0.066, 0.0},
	DIN99d: {325.22, 0.0036, 50.0, 1.14, 22.5, 0.06, 50.0},
}

// XYZToDIN99 converts XYZ (0..1) to one of the DIN99 variants.
func XYZToDIN99(xyz Vec3, white XY, method string) Vec3 {
	if method == DIN99c || method == DIN99d {
		x := xyz[0]
		if method == DIN99c {
			xyz[0] = 1.1*x - 0.1*xyz[2]
		} else {
			xyz[0] = 1.12*x - 0.12*xyz[2]
		}
	}
	lab := XYZToLab(xyz, white)
	c, ok := din99Coefficients[method]
	if !ok {
		c = din99Coefficients[DIN99]
	}
	c1, c2, c3, c4, c5, c6, c7 := c[0], c[1], c[2], c[3], c[4], c[5], c[6]
	h := radians(c3)
	e := lab[1]*math.Cos(h) + lab[2]*math.Sin(h)
	f := c4 * (-lab[1]*math.Sin(h) + lab[2]*math.Cos(h))
	g := math.Hypot(e, f)
	h99 := math.Atan2(f, e) + radians(c7)
	c99 := c5 * math.Log(1+c6*g)
	l99 := c1 * math.Log(1+c2*lab[0])
	return Vec3{l99, c99 * math.Cos(h99), c99 * math.Sin(h99)}
}

var prolabQ = [4][4]float64{
	{75.54, 486.66, 167.39, 0},
	{617.72, -595.45, -22.27, 0},
	{48.34, 194.94, -243.28, 0},
	{0.7554, 3.8836, 1.6651, 1},
}

// XYZToProLab converts XYZ (0..1) to ProLab relative to the white xy.
func XYZToProLab(xyz Vec3, white XY) Vec3 {
	w := white.XYZ()
	x := Vec3{xyz[0] / w[0], xyz[1] / w[1], xyz[2] / w[2]}
	var out [4]float64
	for i := 0; i < 4; i++ {
		out[i] = prolabQ[i][0]*x[0] + prolabQ[i][1]*x[1] + prolabQ[i][2]*x[2] + prolabQ[i][3]
	}
	return Vec3{out[0] / out[3], out[1] / out[3], out[2] / out[3]}
}

// XYZToOSAUCS converts XYZ (0..1, 10 degree observer) to OSA-UCS L, j, g.
func XYZToOSAUCS(xyz Vec3) Vec3 {
	x, y, z := xyz[0]*100, xyz[1]*100, xyz[2]*100
	s := x + y + z
	if s == 0 {
		return Vec3{}
	}
	cx, cy := x/s, y/s
	y0 := y * (4.4934*cx*cx + 4.3034*cy*cy - 4.276*cx*cy - 1.3744*cx - 2.5643*cy + 1.8103)
	o3 := 1.0 / 3
	lp := 5.9 * (math.Cbrt(y0) - 2.0/3 + 0.042*math.Cbrt(y0-30))
	c := lp / (5.9 * (math.Cbrt(y0) - 2.0/3))
	r := 0.799*x + 0.4194*y - 0.1648*z
	g := -0.4493*x + 1.3265*y + 0.0927*z
	b := -0.1149*x + 0.3394*y + 0.717*z
	r, g, b = spow(r, o3), spow(g, o3), spow(b, o3)
	return Vec3{
		(lp - 14.4) / math.Sqrt2,
		c * (1.7*r + 8*g - 9.7*b),
		c * (-13.7*r + 17.7*g - 4*b),
	}
}
