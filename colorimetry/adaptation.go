package colorimetry

import (
	"fmt"
	"math"

	"github.com/jkl1337/go-chromath"
)

// Chromatic adaptation transform names.
const (
	CATBianco2010     = "Bianco 2010"
	CATBiancoPC2010   = "Bianco PC 2010"
	CATBradford       = "Bradford"
	CATCAT02          = "CAT02"
	CATCAT02Brill2008 = "CAT02 Brill 2008"
	CATCAT16          = "CAT16"
	CATCMCCAT97       = "CMCCAT97"
	CATCMCCAT2000     = "CMCCAT2000"
	CATFairchild      = "Fairchild"
	CATSharp          = "Sharp"
	CATVonKries       = "Von Kries"
	CATXYZScaling     = "XYZ Scaling"
)

// CATs lists every chromatic adaptation transform in fan-out order.
var CATs = []string{
	CATBianco2010,
	CATBiancoPC2010,
	CATBradford,
	CATCAT02,
	CATCAT02Brill2008,
	CATCAT16,
	CATCMCCAT97,
	CATCMCCAT2000,
	CATFairchild,
	CATSharp,
	CATVonKries,
	CATXYZScaling,
}

// ErrUnknownCAT is returned for unsupported transform names.
var ErrUnknownCAT = fmt.Errorf("unknown chromatic adaptation transform")

var catMatrices = map[string]Mat3{
	CATBianco2010: {
		{0.8752, 0.2787, -0.1539},
		{-0.8904, 1.8709, 0.0195},
		{-0.0061, 0.0162, 0.9899},
	},
	CATBiancoPC2010: {
		{0.6489, 0.3915, -0.0404},
		{-0.3775, 1.3055, 0.0720},
		{-0.0271, 0.0888, 0.9383},
	},
	CATBradford: fromChromath(chromath.Matrix(chromath.AdaptationBradford)),
	CATCAT02: {
		{0.7328, 0.4296, -0.1624},
		{-0.7036, 1.6975, 0.0061},
		{0.0030, 0.0136, 0.9834},
	},
	CATCAT02Brill2008: {
		{0.7328, 0.4296, -0.1624},
		{-0.7036, 1.6975, 0.0061},
		{0, 0, 1},
	},
	CATCAT16: {
		{0.401288, 0.650173, -0.051461},
		{-0.250268, 1.204414, 0.045854},
		{-0.002079, 0.048952, 0.953127},
	},
	CATCMCCAT97: {
		{0.8951, -0.7502, 0.0389},
		{0.2664, 1.7135, 0.0685},
		{-0.1614, 0.0367, 1.0296},
	},
	CATCMCCAT2000: {
		{0.7982, 0.3389, -0.1371},
		{-0.5918, 1.5512, 0.0406},
		{0.0008, 0.0239, 0.9753},
	},
	CATFairchild: {
		{0.8562, 0.3372, -0.1934},
		{-0.8360, 1.8327, 0.0033},
		{0.0357, -0.0469, 1.0112},
	},
	CATSharp: {
		{1.2694, -0.0988, -0.1706},
		{-0.8364, 1.8006, 0.0357},
		{0.0297, -0.0315, 1.0018},
	},
	CATVonKries:   fromChromath(chromath.Matrix(chromath.AdaptationVonKries)),
	CATXYZScaling: fromChromath(chromath.Matrix(chromath.AdaptationXYZScaling)),
}

// CATMatrix returns the cone response matrix of a transform.
func CATMatrix(cat string) (Mat3, error) {
	m, ok := catMatrices[cat]
	if !ok {
		return Mat3{}, fmt.Errorf("%w: %q", ErrUnknownCAT, cat)
	}
	return m, nil
}

// AdaptationMatrix returns the von Kries type matrix adapting XYZ from the
// source white to the destination white.
func AdaptationMatrix(src, dst Vec3, cat string) (Mat3, error) {
	m, e := CATMatrix(cat)
	if e != nil {
		return Mat3{}, e
	}
	a := chromath.Adaptation(m.toChromath())
	return fromChromath(a.Transform(chromath.XYZ(src), chromath.XYZ(dst))), nil
}

// VonKries adapts xyz from the src white to the dst white.
func VonKries(xyz, src, dst Vec3, cat string) (Vec3, error) {
	m, e := AdaptationMatrix(src, dst, cat)
	if e != nil {
		return Vec3{}, e
	}
	return m.Apply(xyz), nil
}

// CMCCAT2000 adapts xyz (0..100 domain) from the test white xyzW to the
// reference white xyzWr under adapting field luminances la1 and la2, in the
// forward direction of Li et al. (2002).
func CMCCAT2000(xyz, xyzW, xyzWr Vec3, la1, la2 float64) Vec3 {
	m := catMatrices[CATCMCCAT2000]
	rgb := m.Apply(xyz)
	rgbW := m.Apply(xyzW)
	rgbWr := m.Apply(xyzWr)

	d := 0.08*math.Log10((la1+la2)/2) + 0.76 - 0.45*(la1-la2)/(la1+la2)
	d = math.Max(0, math.Min(1, d))
	a := sdiv(xyzW[1], xyzWr[1])

	var rgbc Vec3
	for i := 0; i < 3; i++ {
		rgbc[i] = rgb[i] * (a*d*sdiv(rgbWr[i], rgbW[i]) + 1 - d)
	}
	return m.Inverse().Apply(rgbc)
}
