package input

import "fmt"

type span struct{ min, max float64 }

func (s span) has(v float64) bool { return s.min <= v && v <= s.max }

var labRanges = map[BitDepth][2]span{
	"8":    {{0, 100}, {-200, 200}},
	"15+1": {{0, 32768}, {-25600, 25600}},
	"16":   {{0, 65535}, {-51200, 51200}},
	"32":   {{0, 1}, {-1, 1}},
}

var lchuvRanges = map[BitDepth][3]span{
	"8":    {{0, 100}, {0, 230}, {0, 360}},
	"15+1": {{0, 32768}, {0, 230 * 327.68}, {0, 360 * 327.68}},
	"16":   {{0, 65535}, {0, 230 * 655.35}, {0, 360 * 655.35}},
	"32":   {{0, 1}, {0, 230}, {0, 360}},
}

func checkDepth(d BitDepth) error {
	if _, ok := factors[d]; !ok {
		return fmt.Errorf("%w: %s", ErrBitDepth, d)
	}
	return nil
}

// ValidateRGB checks RGB against the bit depth and returns the values
// normalized to 0..1 along with the factor.
func ValidateRGB(d BitDepth, v [3]float64) ([3]float64, float64, error) {
	if e := checkDepth(d); e != nil {
		return v, 0, e
	}
	f := d.Factor()
	s := span{0, f}
	if !s.has(v[0]) || !s.has(v[1]) || !s.has(v[2]) {
		return v, f, &RangeError{Model: RGB, Depth: d,
			Msg: fmt.Sprintf("RGB values are out of range for the specified bit depth: %s", d)}
	}
	return [3]float64{v[0] / f, v[1] / f, v[2] / f}, f, nil
}

// ValidateLab checks L*a*b* against the bit depth and returns them scaled to
// L 0..100, ab -200..200.
func ValidateLab(d BitDepth, v [3]float64) ([3]float64, error) {
	if e := checkDepth(d); e != nil {
		return v, e
	}
	r := labRanges[d]
	if !r[0].has(v[0]) || !r[1].has(v[1]) || !r[1].has(v[2]) {
		return v, &RangeError{Model: CIELAB, Depth: d}
	}
	return scaleLab(d, v), nil
}

// ValidateLCHab checks L, C and h. The ranges do not depend on bit depth.
func ValidateLCHab(d BitDepth, v [3]float64) ([3]float64, error) {
	if e := checkDepth(d); e != nil {
		return v, e
	}
	names := [3]string{"lchab_l_val", "lchab_ch_val", "lchab_ab_val"}
	ranges := [3]span{{0, 100}, {0, 230}, {0, 360}}
	for i := range v {
		if !ranges[i].has(v[i]) {
			return v, &RangeError{Model: CIELCHab, Depth: d, Msg: names[i] + " is out of range"}
		}
	}
	return v, nil
}

// ValidateLuv checks L*u*v* with the CIELAB ranges and scales them the same
// way.
func ValidateLuv(d BitDepth, v [3]float64) ([3]float64, error) {
	if e := checkDepth(d); e != nil {
		return v, e
	}
	r := labRanges[d]
	if !r[0].has(v[0]) || !r[1].has(v[1]) || !r[1].has(v[2]) {
		return v, &RangeError{Model: CIELUV, Depth: d}
	}
	return scaleLab(d, v), nil
}

// ValidateLCHuv checks L, C and h against the bit depth and returns them
// scaled to L 0..100, C 0..230, h 0..360.
func ValidateLCHuv(d BitDepth, v [3]float64) ([3]float64, error) {
	if e := checkDepth(d); e != nil {
		return v, e
	}
	r := lchuvRanges[d]
	if !r[0].has(v[0]) || !r[1].has(v[1]) || !r[2].has(v[2]) {
		return v, &RangeError{Model: CIELCHuv, Depth: d}
	}
	switch d {
	case "32":
		return [3]float64{v[0] * 100, v[1], v[2]}, nil
	case "8":
		return v, nil
	}
	k := r[0].max / 100
	return [3]float64{v[0] / k, v[1] / k, v[2] / k}, nil
}

// ValidateXYZ checks that X, Y and Z are in 0..1 for every depth.
func ValidateXYZ(d BitDepth, v [3]float64) ([3]float64, error) {
	if e := checkDepth(d); e != nil {
		return v, e
	}
	s := span{0, 1}
	if !s.has(v[0]) || !s.has(v[1]) || !s.has(v[2]) {
		return v, &RangeError{Model: CIEXYZ, Depth: d}
	}
	return v, nil
}

// ValidateSpectrum checks the spectral shape and the sample values.
func ValidateSpectrum(start, stop, interval int, data []float64) error {
	if !(span{380, 750}).has(float64(start)) ||
		!(span{400, 780}).has(float64(stop)) ||
		!(span{1, 20}).has(float64(interval)) {
		return &RangeError{Model: Spectrum, Msg: "Spectral parameters are out of range"}
	}
	if stop <= start {
		return &RangeError{Model: Spectrum, Msg: "Stop value should be greater than start value"}
	}
	if n := (stop-start)/interval + 1; len(data) != n {
		return &RangeError{Model: Spectrum,
			Msg: fmt.Sprintf("Data length mismatch. Expected %d values but got %d values.", n, len(data))}
	}
	for _, v := range data {
		if v < 0 || v > 1 {
			return &RangeError{Model: Spectrum, Msg: "Spectral data values are out of 0-1 range"}
		}
	}
	return nil
}

// ValidateWavelength checks w against the visible range, 360..830 nm
// [CIE 015:2018, pg. 21].
func ValidateWavelength(w float64) error {
	if !(span{360, 830}).has(w) {
		return &RangeError{Model: Wavelength,
			Msg: "Wavelength value must be between 360 - 830 nm [CIE 015:2018, pg. 21]"}
	}
	return nil
}

func scaleLab(d BitDepth, v [3]float64) [3]float64 {
	r := labRanges[d]
	kl := r[0].max / 100
	kab := r[1].max / 200
	return [3]float64{v[0] / kl, v[1] / kab, v[2] / kab}
}
