package colorimetry

import (
	"fmt"
	"math"
)

// Maximum spectral luminous efficacy of radiation in lm/W.
const Km = 683

// SpectralDistribution is a uniformly sampled spectrum.
type SpectralDistribution struct {
	Start    float64
	Stop     float64
	Interval float64
	Values   []float64
}

// NewSpectralDistribution checks that values covers start..stop at interval.
func NewSpectralDistribution(start, stop, interval float64, values []float64) (*SpectralDistribution, error) {
	if interval <= 0 || stop <= start {
		return nil, fmt.Errorf("invalid spectral shape %g-%g/%g", start, stop, interval)
	}
	n := int(math.Round((stop-start)/interval)) + 1
	if n != len(values) {
		return nil, fmt.Errorf("spectral shape %g-%g/%g needs %d values, got %d", start, stop, interval, n, len(values))
	}
	v := make([]float64, len(values))
	copy(v, values)
	return &SpectralDistribution{Start: start, Stop: stop, Interval: interval, Values: v}, nil
}

// Wavelengths returns the sample wavelengths.
func (sd *SpectralDistribution) Wavelengths() []float64 {
	wl := make([]float64, len(sd.Values))
	for i := range wl {
		wl[i] = sd.Start + float64(i)*sd.Interval
	}
	return wl
}

// Value linearly interpolates the distribution at wl. Outside the sampled
// range the nearest end value is held.
func (sd *SpectralDistribution) Value(wl float64) float64 {
	if len(sd.Values) == 0 {
		return 0
	}
	if wl <= sd.Start {
		return sd.Values[0]
	}
	last := len(sd.Values) - 1
	if wl >= sd.Start+float64(last)*sd.Interval {
		return sd.Values[last]
	}
	p := (wl - sd.Start) / sd.Interval
	i := int(p)
	f := p - float64(i)
	return sd.Values[i]*(1-f) + sd.Values[i+1]*f
}

// Interpolate resamples the distribution at a new interval over the same range.
func (sd *SpectralDistribution) Interpolate(interval float64) *SpectralDistribution {
	return sd.Align(sd.Start, sd.Stop, interval)
}

// Align resamples the distribution onto start..stop at interval.
func (sd *SpectralDistribution) Align(start, stop, interval float64) *SpectralDistribution {
	n := int(math.Round((stop-start)/interval)) + 1
	values := make([]float64, n)
	for i := range values {
		values[i] = sd.Value(start + float64(i)*interval)
	}
	return &SpectralDistribution{Start: start, Stop: stop, Interval: interval, Values: values}
}

// ToXYZ integrates a reflectance or transmittance distribution under
// illuminant for the observer. The result is on the 0..1 scale with the
// perfect diffuser at Y = 1.
func (sd *SpectralDistribution) ToXYZ(o *Observer, illuminant *SpectralDistribution) Vec3 {
	var xyz Vec3
	var norm float64
	for _, wl := range sd.Wavelengths() {
		s := illuminant.Value(wl)
		cmf := o.CMF(wl)
		r := sd.Value(wl)
		xyz[0] += r * s * cmf[0]
		xyz[1] += r * s * cmf[1]
		xyz[2] += r * s * cmf[2]
		norm += s * cmf[1]
	}
	if norm == 0 {
		return Vec3{}
	}
	return xyz.Scale(1 / norm)
}

// photopic is the CIE 1924 photopic luminous efficiency function, which is
// the 1931 observer's ybar.
func photopic(wl float64) float64 {
	return Observer1931.CMF(wl)[1]
}

// LuminousFlux returns the luminous flux of a spectral power distribution
// given in W/nm.
func (sd *SpectralDistribution) LuminousFlux() float64 {
	var sum float64
	for i, wl := range sd.Wavelengths() {
		sum += sd.Values[i] * photopic(wl)
	}
	return Km * sum * sd.Interval
}

// LuminousEfficiency returns the ratio of the V(lambda) weighted power to
// the radiant power.
func (sd *SpectralDistribution) LuminousEfficiency() float64 {
	var weighted, total float64
	for i, wl := range sd.Wavelengths() {
		weighted += sd.Values[i] * photopic(wl)
		total += sd.Values[i]
	}
	if total == 0 {
		return math.NaN()
	}
	return weighted / total
}

// LuminousEfficacy returns the luminous efficacy in lm/W.
func (sd *SpectralDistribution) LuminousEfficacy() float64 {
	return Km * sd.LuminousEfficiency()
}
