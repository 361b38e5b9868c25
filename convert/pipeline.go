package convert

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mmuldo/colorconv/catalog"
	"github.com/mmuldo/colorconv/colorimetry"
	"github.com/mmuldo/colorconv/image"
	"github.com/mmuldo/colorconv/input"
	"github.com/mmuldo/colorconv/palette"
	"github.com/mmuldo/colorconv/result"
)

// Spectral distribution kinds.
const (
	Emissive     = "Emissive"
	Reflective   = "Reflective"
	Transmissive = "Transmissive"
)

// ImageColors is the palette size images are quantized to.
const ImageColors = 8

// Options configure a conversion.
type Options struct {
	Depth           input.BitDepth
	InputIlluminant string
	InputSpace      string
	// Cats are the adaptation transforms RGB input fans out over. Nil
	// disables adaptation.
	Cats        []string
	Illuminants []string
	SpecType    string
	// Interpolate resamples spectral input to this interval when non-zero.
	Interpolate int
	Viewing     colorimetry.ViewingConditions
	Precalc     []byte
	PlotPath    string
	TM30Path    string
}

// DefaultOptions mirror the command line defaults.
func DefaultOptions() Options {
	return Options{
		Depth:           "8",
		InputIlluminant: "D65",
		InputSpace:      "sRGB",
		Cats:            colorimetry.CATs,
		Illuminants:     catalog.RGBIlluminants,
		Viewing:         colorimetry.DefaultViewingConditions,
	}
}

// Pipeline fans a single input color out over observers, illuminants and
// adaptation transforms.
type Pipeline struct {
	Catalog *catalog.Catalog
	Palette palette.Palette
	Log     *zap.Logger
	Opts    Options
}

// New returns a pipeline over the embedded catalog.
func New(log *zap.Logger, opts Options) (*Pipeline, error) {
	c, e := catalog.Load()
	if e != nil {
		return nil, e
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{Catalog: c, Palette: palette.CSS(), Log: log, Opts: opts}, nil
}

// run carries the state of one conversion.
type run struct {
	opts  Options
	log   *zap.Logger
	pal   palette.Palette
	cat   *catalog.Catalog
	ctx   context.Context
	doc   *result.Document
	color *input.Color

	// RGB input
	space  *colorimetry.RGBSpace
	linear colorimetry.Vec3

	// Spectrum input
	sd *colorimetry.SpectralDistribution
}

// Run converts c and returns the assembled document.
func (p *Pipeline) Run(ctx context.Context, c *input.Color) (*result.Document, error) {
	doc := result.New(p.Catalog)
	if e := doc.Merge(p.Opts.Precalc); e != nil {
		return nil, e
	}
	r := &run{opts: p.Opts, log: p.Log, pal: p.Palette, cat: p.Catalog, ctx: ctx, doc: doc, color: c}

	if p.Opts.PlotPath != "" {
		p.Log.Warn("spectral plots are not supported", zap.String("path", p.Opts.PlotPath))
	}

	switch c.Model {
	case input.Image:
		if e := r.fromImage(); e != nil {
			return nil, e
		}
		fallthrough
	case input.RGB:
		if !r.prepareRGB() {
			return doc, nil
		}
	case input.Spectrum:
		if e := r.prepareSpectrum(); e != nil {
			return nil, e
		}
	}

	for _, o := range colorimetry.Observers {
		for _, ill := range r.opts.Illuminants {
			if e := ctx.Err(); e != nil {
				return nil, e
			}
			if e := r.withXYZ(o, ill); e != nil {
				return nil, e
			}
		}
	}

	if c.Model != input.Spectrum {
		if e := r.recover(); e != nil {
			r.log.Warn("spectral recovery failed", zap.Error(e))
		}
	}

	return doc, nil
}

// fromImage replaces image input with its dominant color as 8 bit sRGB.
func (r *run) fromImage() error {
	img, e := image.Load(r.color.ImagePath)
	if e != nil {
		return fmt.Errorf("image %s: %w", r.color.ImagePath, e)
	}
	cvl, e := image.Dominant(img, ImageColors)
	if e != nil {
		return fmt.Errorf("image %s: %w", r.color.ImagePath, e)
	}
	rgb := cvl[0].RGB8()
	r.log.Debug("dominant image color",
		zap.String("path", r.color.ImagePath),
		zap.Float64s("rgb", rgb[:]),
		zap.Int("pixels", cvl[0].Count),
		zap.Float64("spread", cvl.Spread()),
	)

	r.color.Model = input.RGB
	r.color.Values = [3]float64{rgb[0] / 255, rgb[1] / 255, rgb[2] / 255}
	r.color.Factor = 255
	r.opts.InputSpace = "sRGB"
	return nil
}
