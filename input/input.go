package input

import (
	"errors"
	"fmt"
)

// Model names the kind of input color.
type Model string

const (
	RGB        Model = "RGB"
	CIELAB     Model = "CIELAB"
	CIELCHab   Model = "CIELCHab"
	CIELUV     Model = "CIELUV"
	CIELCHuv   Model = "CIELCHuv"
	CIEXYZ     Model = "CIEXYZ"
	Spectrum   Model = "Spectrum"
	Wavelength Model = "Wavelength"
	Image      Model = "Image"
)

var (
	// ErrNoModel is returned when no input model has all of its values.
	ErrNoModel = errors.New("full set of input values for one of the color models is required")
	// ErrOutOfRange is wrapped by every *RangeError.
	ErrOutOfRange = errors.New("out of range")
	// ErrBitDepth is returned for unknown bit depths.
	ErrBitDepth = errors.New("invalid bit depth specified")
)

// RangeError reports input values outside their accepted range.
type RangeError struct {
	Model Model
	Depth BitDepth
	Msg   string
}

func (e *RangeError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("%s values are out of range for the specified bit depth: %s", e.Model, e.Depth)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// BitDepth is one of "8", "15+1", "16" or "32".
type BitDepth string

var factors = map[BitDepth]float64{
	"8":    255,
	"15+1": 32768,
	"16":   65535,
	"32":   1,
}

// BitDepths lists the accepted depths.
var BitDepths = []BitDepth{"8", "15+1", "16", "32"}

// ParseBitDepth checks s against the accepted depths.
func ParseBitDepth(s string) (BitDepth, error) {
	d := BitDepth(s)
	if _, ok := factors[d]; !ok {
		return "", fmt.Errorf("%w: %s", ErrBitDepth, s)
	}
	return d, nil
}

// Factor is the normalization factor for RGB values.
func (d BitDepth) Factor() float64 {
	return factors[d]
}

// Triple is an optional three-component input. A nil member was not given.
type Triple [3]*float64

// Complete reports whether all three components were given.
func (t Triple) Complete() bool {
	return t[0] != nil && t[1] != nil && t[2] != nil
}

// Values dereferences a complete triple.
func (t Triple) Values() [3]float64 {
	return [3]float64{*t[0], *t[1], *t[2]}
}

// Args holds the raw input values of every model.
type Args struct {
	Lab   Triple
	LCHab Triple
	Luv   Triple
	LCHuv Triple
	XYZ   Triple
	RGB   Triple

	Start    *int
	Stop     *int
	Interval *int
	Data     []float64

	Wave *float64

	ImagePath string
}

// Determine returns the first model whose values are all present.
func Determine(a *Args) (Model, error) {
	switch {
	case a.Lab.Complete():
		return CIELAB, nil
	case a.LCHab.Complete():
		return CIELCHab, nil
	case a.Luv.Complete():
		return CIELUV, nil
	case a.LCHuv.Complete():
		return CIELCHuv, nil
	case a.XYZ.Complete():
		return CIEXYZ, nil
	case a.RGB.Complete():
		return RGB, nil
	case a.Start != nil && a.Stop != nil && a.Interval != nil && a.Data != nil:
		return Spectrum, nil
	case a.Wave != nil:
		return Wavelength, nil
	case a.ImagePath != "":
		return Image, nil
	}
	return "", ErrNoModel
}
