package convert

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mmuldo/colorconv/colorimetry"
	"github.com/mmuldo/colorconv/input"
	"github.com/mmuldo/colorconv/result"
)

var d65 = result.Key{Observer: colorimetry.CIE1931, Illuminant: "D65"}

func newPipeline(t *testing.T, edit func(*Options)) *Pipeline {
	t.Helper()
	opts := DefaultOptions()
	opts.Illuminants = []string{"D65"}
	opts.Cats = nil
	if edit != nil {
		edit(&opts)
	}
	p, e := New(zap.NewNop(), opts)
	require.NoError(t, e)
	return p
}

func code(t *testing.T, doc *result.Document, model string, k result.Key, c string) interface{} {
	t.Helper()
	v, ok := doc.Value(model, k).(map[string]interface{})
	require.True(t, ok, "%s has no value at %+v", model, k)
	return v[c]
}

func TestRunRGBWhite(t *testing.T) {
	p := newPipeline(t, nil)
	doc, e := p.Run(context.Background(), &input.Color{Model: input.RGB, Values: [3]float64{1, 1, 1}, Factor: 255})
	require.NoError(t, e)
	require.Empty(t, doc.Failure)

	srgb := result.Key{Illuminant: "D65"}
	assert.Equal(t, 255.0, code(t, doc, "sRGB", srgb, "R"))
	assert.Equal(t, 255.0, code(t, doc, "sRGB", srgb, "B"))
	assert.Equal(t, 0.0, code(t, doc, "cmyk", srgb, "K"))
	assert.Equal(t, "#ffffff", code(t, doc, "hexadecimal", result.Key{}, "Hex"))
	assert.Equal(t, "white", code(t, doc, "css_named_color", result.Key{}, "Name"))

	assert.InDelta(t, 100, code(t, doc, "cielab", d65, "L*"), 1e-4)
	assert.InDelta(t, 0, code(t, doc, "cielab", d65, "a*"), 1e-3)
	assert.InDelta(t, 1, code(t, doc, "ciexyz", d65, "Y"), 1e-6)

	// recovered reflectance
	assert.NotNil(t, doc.Value("sr_sd", d65))

	for _, m := range []string{
		"hunt", "atd95", "kim2009", "llab", "nayatani95", "zcam",
		"hdrcielab", "hdript", "igpgtg", "iptragoo",
	} {
		assert.NotNil(t, doc.Value(m, d65), m)
	}
	assert.InDelta(t, 100, code(t, doc, "hunt", d65, "J"), 0.01)
	assert.NotNil(t, doc.Value("yrg", result.Key{}))
	assert.Equal(t, "True", doc.Value("pointer", result.Key{}))
	assert.Equal(t, "True", doc.Value("macadam", result.Key{Illuminant: "D65"}))
}

func TestRunGamutMembership(t *testing.T) {
	p := newPipeline(t, func(o *Options) { o.Illuminants = []string{"D50", "D65"} })
	doc, e := p.Run(context.Background(), &input.Color{Model: input.CIEXYZ, Values: [3]float64{0.032, 0.3, 0.068}, Factor: 255})
	require.NoError(t, e)
	require.Empty(t, doc.Failure)

	assert.Equal(t, "False", doc.Value("pointer", result.Key{}))
	assert.Equal(t, "False", doc.Value("macadam", result.Key{Illuminant: "D65"}))
	// no MacAdam limits are tabulated for D50
	assert.Nil(t, doc.Value("macadam", result.Key{Illuminant: "D50"}))
}

func TestRunRGBCats(t *testing.T) {
	p := newPipeline(t, func(o *Options) {
		o.Illuminants = []string{"D50"}
		o.Cats = []string{colorimetry.CATBradford, colorimetry.CATCAT02}
	})
	doc, e := p.Run(context.Background(), &input.Color{Model: input.RGB, Values: [3]float64{0.5, 0.2, 0.1}, Factor: 255})
	require.NoError(t, e)

	// same white point: one value, no CAT level
	assert.NotNil(t, doc.Value("ITU-R BT.709", result.Key{Illuminant: "D65"}))
	// different white point: one value per CAT
	for _, cat := range []string{colorimetry.CATBradford, colorimetry.CATCAT02} {
		assert.NotNil(t, doc.Value("ProPhoto RGB", result.Key{Illuminant: "D50", Cat: cat}))
		k := result.Key{Observer: colorimetry.CIE1931, Illuminant: "D50", Cat: cat}
		assert.NotNil(t, doc.Value("cielab", k), cat)
	}
}

func TestRunUnknownSpace(t *testing.T) {
	p := newPipeline(t, func(o *Options) { o.InputSpace = "Bogus RGB" })
	doc, e := p.Run(context.Background(), &input.Color{Model: input.RGB, Values: [3]float64{1, 0, 0}, Factor: 255})
	require.NoError(t, e)
	assert.Equal(t, map[string]interface{}{"error": "RGB color space lookup failure"}, doc.Map())
}

func newRun(t *testing.T, log *zap.Logger) *run {
	t.Helper()
	p := newPipeline(t, nil)
	return &run{opts: p.Opts, log: log, pal: p.Palette, cat: p.Catalog, ctx: context.Background(),
		doc: result.New(p.Catalog), color: &input.Color{Model: input.RGB, Factor: 255}}
}

func TestDeviceModelsUseUnroundedCMY(t *testing.T) {
	r := newRun(t, zap.NewNop())
	s, e := colorimetry.SpaceByName("sRGB")
	require.NoError(t, e)

	k := result.Key{Illuminant: "D65"}
	r.deviceModels(colorimetry.Vec3{1.0 / 255, 128.0 / 255, 128.0 / 255}, s, k)
	// CMY (0.99608, 0.49804, 0.49804) gives C = 0.99219; from the rounded
	// CMY (1, 0.5, 0.5) it would be 1
	assert.Equal(t, 99.0, code(t, r.doc, "cmyk", k, "C"))
	assert.Equal(t, 50.0, code(t, r.doc, "cmyk", k, "K"))
	assert.Equal(t, 100.0, code(t, r.doc, "cmy", k, "C"))
}

func TestRGBToRGBLogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	r := newRun(t, zap.New(core))
	r.opts.Cats = []string{"Bogus"}
	r.space, _ = colorimetry.SpaceByName("sRGB")
	r.linear = colorimetry.Vec3{0.2, 0.3, 0.4}

	r.rgbToRGB()
	assert.NotZero(t, logs.FilterMessage("rgb to rgb").Len())
	for _, entry := range logs.FilterMessage("rgb to rgb").All() {
		assert.Contains(t, entry.ContextMap()["error"], "unknown chromatic adaptation transform")
	}
	// spaces sharing the input white need no CAT and still convert
	assert.NotNil(t, r.doc.Value("ITU-R BT.709", result.Key{Illuminant: "D65"}))
	assert.Nil(t, r.doc.Value("ProPhoto RGB", result.Key{Illuminant: "D50", Cat: "Bogus"}))
}

func TestEveryRGBTemplateHasASpace(t *testing.T) {
	c := newPipeline(t, nil).Catalog
	for _, k := range c.Keys {
		if c.Get(k).Section != "RGB Color Spaces" {
			continue
		}
		_, e := colorimetry.SpaceByName(k)
		assert.NoError(t, e, k)
	}
}

func TestRunLab(t *testing.T) {
	p := newPipeline(t, nil)
	doc, e := p.Run(context.Background(), &input.Color{Model: input.CIELAB, Values: [3]float64{50, 10, -10}, Factor: 255})
	require.NoError(t, e)

	assert.InDelta(t, 50, code(t, doc, "cielab", d65, "L*"), 1e-4)
	assert.InDelta(t, 10, code(t, doc, "cielab", d65, "a*"), 1e-4)
	assert.InDelta(t, math.Hypot(10, 10), code(t, doc, "cielchab", d65, "C*"), 1e-4)
	assert.NotNil(t, doc.Value("sRGB", d65))
	assert.Equal(t, "", code(t, doc, "wavelength", result.Key{}, "&gamma;"))
}

func TestRunXYZ(t *testing.T) {
	p := newPipeline(t, func(o *Options) { o.Illuminants = []string{"D65", "A"} })
	doc, e := p.Run(context.Background(), &input.Color{Model: input.CIEXYZ, Values: [3]float64{0.2, 0.3, 0.4}, Factor: 255})
	require.NoError(t, e)

	for _, ill := range []string{"D65", "A"} {
		k := result.Key{Observer: colorimetry.CIE1931, Illuminant: ill}
		assert.InDelta(t, 0.3, code(t, doc, "ciexyz", k, "Y"), 1e-8)
	}
	assert.NotNil(t, doc.Value("ciexyz", result.Key{Observer: colorimetry.CIE1964, Illuminant: "A"}))
}

func TestRunWavelength(t *testing.T) {
	p := newPipeline(t, nil)
	doc, e := p.Run(context.Background(), &input.Color{Model: input.Wavelength, Wave: 550, Factor: 255})
	require.NoError(t, e)

	assert.Equal(t, 550.0, code(t, doc, "wavelength", result.Key{}, "&gamma;"))
	assert.NotNil(t, doc.Value("domwave", d65))
}

func TestRunSpectrum(t *testing.T) {
	p := newPipeline(t, func(o *Options) {
		o.Illuminants = []string{"D65", "FL2"}
		o.SpecType = Emissive
		o.Interpolate = 5
	})
	flat := make([]float64, 31)
	for i := range flat {
		flat[i] = 1
	}
	doc, e := p.Run(context.Background(), &input.Color{
		Model: input.Spectrum, Start: 400, Stop: 700, Interval: 10,
		Data: flat, Factor: 255,
	})
	require.NoError(t, e)

	assert.InDelta(t, 100, code(t, doc, "cielab", d65, "L*"), 1e-3)
	// FL2 has a white point but no distribution to integrate under
	assert.Nil(t, doc.Value("cielab", result.Key{Observer: colorimetry.CIE1931, Illuminant: "FL2"}))
	assert.NotNil(t, doc.Value("lum_flux", result.Key{}))
	assert.Nil(t, doc.Value("sr_sd", d65))

	assert.Equal(t, 87.0, code(t, doc, "ssi", result.Key{Illuminant: "D65"}, "SSI"))
	assert.NotNil(t, doc.Value("ssi", result.Key{Illuminant: "A"}))
	assert.Nil(t, doc.Value("ssi", result.Key{Illuminant: "FL2"}))
}

func TestRunImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			c := color.NRGBA{255, 0, 0, 255}
			if y >= 6 {
				c = color.NRGBA{0, 0, 255, 255}
			}
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "red.png")
	f, e := os.Create(path)
	require.NoError(t, e)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	p := newPipeline(t, func(o *Options) { o.InputSpace = "ProPhoto RGB" })
	doc, e := p.Run(context.Background(), &input.Color{Model: input.Image, ImagePath: path, Factor: 255})
	require.NoError(t, e)

	srgb := result.Key{Illuminant: "D65"}
	assert.InDelta(t, 255, code(t, doc, "sRGB", srgb, "R"), 2)
	assert.InDelta(t, 0, code(t, doc, "sRGB", srgb, "G"), 2)

	_, e = p.Run(context.Background(), &input.Color{Model: input.Image, ImagePath: filepath.Join(t.TempDir(), "none.png")})
	assert.Error(t, e)
}

func TestRunPrecalc(t *testing.T) {
	p := newPipeline(t, func(o *Options) { o.Precalc = []byte(`{"extra": {"name": "Extra"}}`) })
	doc, e := p.Run(context.Background(), &input.Color{Model: input.Wavelength, Wave: 500, Factor: 255})
	require.NoError(t, e)
	assert.Equal(t, "Extra", doc.Entries["extra"]["name"])

	p = newPipeline(t, func(o *Options) { o.Precalc = []byte(`{`) })
	_, e = p.Run(context.Background(), &input.Color{Model: input.Wavelength, Wave: 500, Factor: 255})
	assert.Error(t, e)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, e := newPipeline(t, nil).Run(ctx, &input.Color{Model: input.CIEXYZ, Values: [3]float64{0.2, 0.3, 0.4}, Factor: 255})
	assert.ErrorIs(t, e, context.Canceled)
}

func TestPyFloat(t *testing.T) {
	for _, tt := range []struct {
		in   float64
		want string
	}{
		{50, "50.0"},
		{-0.5, "-0.5"},
		{0, "0.0"},
		{123.4567, "123.4567"},
		{0.00001, "1e-05"},
		{1e16, "1e+16"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	} {
		assert.Equal(t, tt.want, pyFloat(tt.in), "%v", tt.in)
	}
}

func TestRounding(t *testing.T) {
	assert.Equal(t, []float64{50, 12.35, 0.5}, rounded([]float64{50, 12.3456, 0.5}, 2))
	assert.True(t, math.IsNaN(rounded([]float64{math.NaN()}, 2)[0]))
	assert.Equal(t, []float64{0, 100, 100, 0}, round4([4]float64{0, 1, 1, 0}, 2, 100))
	assert.Equal(t, colorimetry.Vec3{120, 50, 25}, percent(colorimetry.Vec3{120, 0.5, 0.25}))
	assert.Equal(t, 125.0, clamp(130, -125, 125))
	assert.Equal(t, "1.0 0.5 0.0", spaced(colorimetry.Vec3{1, 0.5, 0}))
}
