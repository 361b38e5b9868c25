package colorimetry

import "math"

// Reference viewing for the Fairchild and Wyble (2011) hdr spaces: surround
// relative luminance Y_s and absolute luminance of diffuse white Y_abs in
// cd/m2.
const (
	HDRSurround  = 0.2
	HDRAbsoluteY = 100.0
)

// hdrExponent returns the Fairchild (2011) lightness exponent for base
// coefficient k, 0.58 for hdr-CIELAB and 0.59 for hdr-IPT.
func hdrExponent(k, ys, yabs float64) float64 {
	sf := 1.25 - 0.25*(ys/0.184)
	lf := math.Log(318) / math.Log(yabs)
	return k / (sf * lf)
}

// hdrLightness is the Michaelis-Menten lightness of Fairchild (2011).
func hdrLightness(y, e float64) float64 {
	ye := spow(y, e)
	return 247*ye/(math.Pow(2, e)+ye) + 0.02
}

// XYZToHDRCIELab converts relative XYZ (0..1) under white to hdr-CIELAB with
// surround ys and absolute white luminance yabs.
func XYZToHDRCIELab(xyz Vec3, white XY, ys, yabs float64) Vec3 {
	e := hdrExponent(0.58, ys, yabs)
	n := white.XYZ()
	l := hdrLightness(xyz[1]/n[1], e)
	return Vec3{
		l,
		5 * (hdrLightness(xyz[0]/n[0], e) - l),
		2 * (l - hdrLightness(xyz[2]/n[2], e)),
	}
}

// XYZToHDRIPT converts D65 relative XYZ (0..1) to hdr-IPT.
func XYZToHDRIPT(xyz Vec3, ys, yabs float64) Vec3 {
	e := hdrExponent(0.59, ys, yabs)
	lms := iptXYZToLMS.Apply(xyz)
	for i := range lms {
		lms[i] = sign(lms[i]) * hdrLightness(math.Abs(lms[i]), e)
	}
	return iptLMSToIPT.Apply(lms)
}
