package colorimetry

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBToCMY returns 1 - RGB.
func RGBToCMY(rgb Vec3) Vec3 {
	return Vec3{1 - rgb[0], 1 - rgb[1], 1 - rgb[2]}
}

// CMYToCMYK extracts the key component from CMY.
func CMYToCMYK(cmy Vec3) [4]float64 {
	k := math.Min(cmy[0], math.Min(cmy[1], cmy[2]))
	if k >= 1 {
		return [4]float64{0, 0, 0, 1}
	}
	return [4]float64{(cmy[0] - k) / (1 - k), (cmy[1] - k) / (1 - k), (cmy[2] - k) / (1 - k), k}
}

func maxOf(v Vec3) float64 { return math.Max(v[0], math.Max(v[1], v[2])) }
func minOf(v Vec3) float64 { return math.Min(v[0], math.Min(v[1], v[2])) }

// RGBToHSL returns hue in degrees with saturation and lightness in 0..1.
func RGBToHSL(rgb Vec3) Vec3 {
	h, s, l := colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}.Hsl()
	return Vec3{h, s, l}
}

// RGBToHSV returns hue in degrees with saturation and value in 0..1.
func RGBToHSV(rgb Vec3) Vec3 {
	h, s, v := colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}.Hsv()
	return Vec3{h, s, v}
}

// RGBToHWB returns hue in degrees with whiteness and blackness in 0..1.
func RGBToHWB(rgb Vec3) Vec3 {
	return Vec3{RGBToHSL(rgb)[0], minOf(rgb), 1 - maxOf(rgb)}
}

// RGBToHex returns the clamped #rrggbb form.
func RGBToHex(rgb Vec3) string {
	return colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}.Clamped().Hex()
}

// RGBToHCL is the Sarifuddin and Missaoui (2005) HCL with gamma 3 and
// Y0 = 100.
func RGBToHCL(rgb Vec3) Vec3 {
	const gamma, y0 = 3.0, 100.0
	mn, mx := minOf(rgb), maxOf(rgb)
	q := math.Exp(sdiv(mn, mx) / y0 * gamma)
	l := (q*mx + (q-1)*mn) / 2

	rg := rgb[0] - rgb[1]
	gb := rgb[1] - rgb[2]
	br := rgb[2] - rgb[0]
	c := q * (math.Abs(rg) + math.Abs(gb) + math.Abs(br)) / 3

	h := degrees(math.Atan(sdiv(gb, rg)))
	switch {
	case c == 0:
		h = 0
	case rg >= 0 && gb >= 0:
		h = 2.0 / 3 * h
	case rg >= 0 && gb < 0:
		h = 4.0 / 3 * h
	case rg < 0 && gb >= 0:
		h = 180 + 4.0/3*h
	default:
		h = 2.0/3*h - 180
	}
	return Vec3{h, c, l}
}

// RGBToIHLS is the improved HLS of Hanbury (2003); hue is in radians.
func RGBToIHLS(rgb Vec3) Vec3 {
	y := 0.2126*rgb[0] + 0.7152*rgb[1] + 0.0722*rgb[2]
	c1 := rgb[0] - 0.5*rgb[1] - 0.5*rgb[2]
	c2 := -math.Sqrt(3)/2*rgb[1] + math.Sqrt(3)/2*rgb[2]
	c := math.Hypot(c1, c2)
	var h float64
	if c != 0 {
		h = math.Acos(c1 / c)
		if c2 > 0 {
			h = 2*math.Pi - h
		}
	}
	return Vec3{h, y, maxOf(rgb) - minOf(rgb)}
}

// RGBToPrismatic returns L, rho, gamma and beta.
func RGBToPrismatic(rgb Vec3) [4]float64 {
	s := rgb[0] + rgb[1] + rgb[2]
	return [4]float64{maxOf(rgb), sdiv(rgb[0], s), sdiv(rgb[1], s), sdiv(rgb[2], s)}
}

// RGBLuminance returns Y of encoded or linear RGB in the space s.
func RGBLuminance(rgb Vec3, s *RGBSpace) float64 {
	m := s.NPM()
	return m[1][0]*rgb[0] + m[1][1]*rgb[1] + m[1][2]*rgb[2]
}

// RGBToYCbCr uses the BT.709 weights and 8 bit legal range float output.
func RGBToYCbCr(rgb Vec3) Vec3 {
	const kr, kb = 0.2126, 0.0722
	y := kr*rgb[0] + (1-kr-kb)*rgb[1] + kb*rgb[2]
	cb := 0.5 * (rgb[2] - y) / (1 - kb)
	cr := 0.5 * (rgb[0] - y) / (1 - kr)
	return Vec3{
		y*219/255 + 16.0/255,
		cb*224/255 + 128.0/255,
		cr*224/255 + 128.0/255,
	}
}

// RGBToYcCbcCrc is the BT.2020 constant luminance encoding of linear RGB,
// as 10 bit legal range code values.
func RGBToYcCbcCrc(rgb Vec3) Vec3 {
	yc := BT709.Encode(0.2627*rgb[0] + 0.6780*rgb[1] + 0.0593*rgb[2])
	r := BT709.Encode(rgb[0])
	b := BT709.Encode(rgb[2])
	var cbc, crc float64
	if d := b - yc; d <= 0 {
		cbc = d / 1.9404
	} else {
		cbc = d / 1.5816
	}
	if d := r - yc; d <= 0 {
		crc = d / 1.7184
	} else {
		crc = d / 0.9936
	}
	return Vec3{
		yc*(940-64) + 64,
		cbc*(960-64) + 512,
		crc*(960-64) + 512,
	}
}

// RGBToYCoCg is the lossless YCoCg transform.
func RGBToYCoCg(rgb Vec3) Vec3 {
	return Vec3{
		rgb[0]/4 + rgb[1]/2 + rgb[2]/4,
		rgb[0]/2 - rgb[2]/2,
		-rgb[0]/4 + rgb[1]/2 - rgb[2]/4,
	}
}
