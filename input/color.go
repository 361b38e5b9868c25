package input

import "fmt"

// Color is a validated input color.
type Color struct {
	Model Model
	// Values holds the three components of the tristimulus models, scaled
	// to their nominal ranges. RGB is normalized to 0..1.
	Values [3]float64
	// Factor denormalizes RGB output to the bit depth.
	Factor float64

	Start, Stop, Interval int
	Data                  []float64

	Wave float64

	ImagePath string
}

// Parse determines the input model of a and validates its values at depth d.
func Parse(a *Args, d BitDepth) (*Color, error) {
	m, e := Determine(a)
	if e != nil {
		return nil, e
	}
	if e = checkDepth(d); e != nil {
		return nil, e
	}

	c := &Color{Model: m, Factor: d.Factor()}
	switch m {
	case CIELAB:
		c.Values, e = ValidateLab(d, a.Lab.Values())
	case CIELCHab:
		c.Values, e = ValidateLCHab(d, a.LCHab.Values())
	case CIELUV:
		c.Values, e = ValidateLuv(d, a.Luv.Values())
	case CIELCHuv:
		c.Values, e = ValidateLCHuv(d, a.LCHuv.Values())
	case CIEXYZ:
		c.Values, e = ValidateXYZ(d, a.XYZ.Values())
	case RGB:
		c.Values, c.Factor, e = ValidateRGB(d, a.RGB.Values())
	case Spectrum:
		c.Start, c.Stop, c.Interval, c.Data = *a.Start, *a.Stop, *a.Interval, a.Data
		c.Factor = 255
		e = ValidateSpectrum(c.Start, c.Stop, c.Interval, c.Data)
	case Wavelength:
		c.Wave = *a.Wave
		c.Factor = 255
		e = ValidateWavelength(c.Wave)
	case Image:
		c.ImagePath = a.ImagePath
		c.Factor = 255
	default:
		e = fmt.Errorf("unsupported input model %s", m)
	}
	if e != nil {
		return nil, e
	}
	return c, nil
}
