package convert

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mmuldo/colorconv/catalog"
	"github.com/mmuldo/colorconv/colorimetry"
	"github.com/mmuldo/colorconv/result"
)

// prepareSpectrum builds the input distribution and records the emissive
// metrics.
func (r *run) prepareSpectrum() error {
	c := r.color
	sd, e := colorimetry.NewSpectralDistribution(float64(c.Start), float64(c.Stop), float64(c.Interval), c.Data)
	if e != nil {
		return e
	}
	if i := r.opts.Interpolate; i > 0 && float64(i) != sd.Interval {
		sd = sd.Interpolate(float64(i))
		r.log.Debug("interpolated spectrum", zap.Int("interval", i), zap.Int("samples", len(sd.Values)))
	}
	r.sd = sd

	if r.opts.SpecType == Emissive {
		r.doc.Record("lum_efficacy", colorimetry.Round(sd.LuminousEfficacy(), 6), result.Key{})
		r.doc.Record("lum_efficiency", colorimetry.Round(sd.LuminousEfficiency(), 6), result.Key{})
		r.doc.Record("lum_flux", colorimetry.Round(sd.LuminousFlux(), 6), result.Key{})
		r.similarity()
	}
	if r.opts.TM30Path != "" {
		r.log.Warn("TM-30 reports are not supported", zap.String("path", r.opts.TM30Path))
	}
	return nil
}

// similarity records the spectral similarity index of every standard CIE
// illuminant with a distribution against the input.
func (r *run) similarity() {
	for _, ill := range catalog.CIEIlluminants {
		spd, ok := colorimetry.IlluminantSPD(ill)
		if !ok {
			continue
		}
		r.doc.Record("ssi", colorimetry.SpectralSimilarityIndex(spd, r.sd), result.Key{Illuminant: ill})
	}
	r.log.Debug("colour rendering metrics skipped, no test colour samples bundled",
		zap.Strings("models", []string{"cri", "cqs", "cfi"}))
}

// recover fits a reflectance to the input color as seen under the input
// illuminant by the 2 degree observer. Illuminants without a distribution
// fall back to D65.
func (r *run) recover() error {
	ill := r.opts.InputIlluminant
	w, ok := newWhite(colorimetry.Observer1931, ill)
	if !ok {
		return fmt.Errorf("%w: %q", colorimetry.ErrUnknownIlluminant, ill)
	}
	samples, e := r.samples(w)
	if e != nil {
		return e
	}
	if len(samples) == 0 {
		return fmt.Errorf("no XYZ for %s input", r.color.Model)
	}

	xyz := samples[0].xyz
	spd, ok := colorimetry.IlluminantSPD(ill)
	if !ok {
		spd, _ = colorimetry.IlluminantSPD("D65")
		xyz = samples[0].d65
	}
	sd, residual, e := colorimetry.XYZToSDJakob2019(xyz, colorimetry.Observer1931, spd)
	if e != nil {
		return e
	}
	r.log.Debug("recovered spectrum", zap.String("illuminant", ill), zap.Float64("delta_e", residual))

	values := make(map[string]float64, len(sd.Values))
	for i, wl := range sd.Wavelengths() {
		values[pyFloat(wl)] = sd.Values[i]
	}
	r.doc.Record("sr_sd", values, result.Key{Observer: colorimetry.CIE1931, Illuminant: ill})
	return nil
}
