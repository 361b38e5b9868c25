package input

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int { return &v }

func full(a, b, c float64) Triple { return Triple{fp(a), fp(b), fp(c)} }

func TestDetermine(t *testing.T) {
	tests := []struct {
		name string
		args Args
		want Model
	}{
		{"lab", Args{Lab: full(50, 10, 10)}, CIELAB},
		{"lab wins over rgb", Args{Lab: full(50, 10, 10), RGB: full(1, 2, 3)}, CIELAB},
		{"lchab", Args{LCHab: full(50, 10, 10)}, CIELCHab},
		{"luv", Args{Luv: full(50, 10, 10)}, CIELUV},
		{"lchuv", Args{LCHuv: full(50, 10, 10)}, CIELCHuv},
		{"xyz over rgb", Args{XYZ: full(.2, .3, .4), RGB: full(1, 2, 3)}, CIEXYZ},
		{"partial lab falls through", Args{Lab: Triple{fp(1), nil, fp(2)}, RGB: full(1, 2, 3)}, RGB},
		{"spectrum", Args{Start: ip(400), Stop: ip(700), Interval: ip(10), Data: flat(31, 0)}, Spectrum},
		{"wavelength", Args{Wave: fp(550)}, Wavelength},
		{"image", Args{ImagePath: "a.png"}, Image},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, e := Determine(&tt.args)
			require.NoError(t, e)
			assert.Equal(t, tt.want, m)
		})
	}
}

func TestDetermineNoModel(t *testing.T) {
	_, e := Determine(&Args{RGB: Triple{fp(1), fp(2), nil}, Start: ip(400)})
	assert.True(t, errors.Is(e, ErrNoModel))
}

func TestParseBitDepth(t *testing.T) {
	for _, d := range []string{"8", "15+1", "16", "32"} {
		got, e := ParseBitDepth(d)
		require.NoError(t, e)
		assert.Equal(t, BitDepth(d), got)
	}
	_, e := ParseBitDepth("12")
	assert.True(t, errors.Is(e, ErrBitDepth))
}

func TestValidateRGB(t *testing.T) {
	v, factor, e := ValidateRGB("8", [3]float64{255, 0, 51})
	require.NoError(t, e)
	assert.Equal(t, 255.0, factor)
	assert.InDeltaSlice(t, []float64{1, 0, 0.2}, v[:], 1e-12)

	v, factor, e = ValidateRGB("16", [3]float64{65535, 0, 0})
	require.NoError(t, e)
	assert.Equal(t, 65535.0, factor)
	assert.Equal(t, 1.0, v[0])

	_, _, e = ValidateRGB("8", [3]float64{256, 0, 0})
	require.Error(t, e)
	assert.True(t, errors.Is(e, ErrOutOfRange))
	assert.Equal(t, "RGB values are out of range for the specified bit depth: 8", e.Error())

	var re *RangeError
	require.True(t, errors.As(e, &re))
	assert.Equal(t, RGB, re.Model)
}

func TestValidateLabScalesToNominalRange(t *testing.T) {
	v, e := ValidateLab("8", [3]float64{50, -20, 30})
	require.NoError(t, e)
	assert.Equal(t, [3]float64{50, -20, 30}, v)

	v, e = ValidateLab("16", [3]float64{65535, 51200, -25600})
	require.NoError(t, e)
	assert.InDeltaSlice(t, []float64{100, 200, -100}, v[:], 1e-9)

	v, e = ValidateLab("32", [3]float64{0.5, 0.1, -0.1})
	require.NoError(t, e)
	assert.InDeltaSlice(t, []float64{50, 20, -20}, v[:], 1e-9)

	_, e = ValidateLab("8", [3]float64{101, 0, 0})
	assert.True(t, errors.Is(e, ErrOutOfRange))
	_, e = ValidateLab("8", [3]float64{50, 0, -201})
	assert.True(t, errors.Is(e, ErrOutOfRange))
}

func TestValidateLCHab(t *testing.T) {
	_, e := ValidateLCHab("16", [3]float64{50, 100, 180})
	require.NoError(t, e)

	_, e = ValidateLCHab("8", [3]float64{50, 231, 180})
	require.Error(t, e)
	assert.Equal(t, "lchab_ch_val is out of range", e.Error())

	_, e = ValidateLCHab("8", [3]float64{50, 10, 361})
	assert.Equal(t, "lchab_ab_val is out of range", e.Error())
}

func TestValidateLCHuv(t *testing.T) {
	v, e := ValidateLCHuv("32", [3]float64{0.5, 40, 120})
	require.NoError(t, e)
	assert.InDeltaSlice(t, []float64{50, 40, 120}, v[:], 1e-9)

	v, e = ValidateLCHuv("16", [3]float64{65535, 230 * 655.35, 0})
	require.NoError(t, e)
	assert.InDeltaSlice(t, []float64{100, 230, 0}, v[:], 1e-9)

	_, e = ValidateLCHuv("8", [3]float64{50, 240, 0})
	assert.True(t, errors.Is(e, ErrOutOfRange))
}

func TestValidateXYZ(t *testing.T) {
	_, e := ValidateXYZ("16", [3]float64{0.95, 1, 1.0})
	require.NoError(t, e)
	_, e = ValidateXYZ("8", [3]float64{0.95, 1.01, 0})
	assert.True(t, errors.Is(e, ErrOutOfRange))
}

func TestValidateSpectrum(t *testing.T) {
	tests := []struct {
		name                  string
		start, stop, interval int
		data                  []float64
		msg                   string
	}{
		{"ok", 400, 700, 10, flat(31, 0.5), ""},
		{"start", 370, 700, 10, nil, "Spectral parameters are out of range"},
		{"interval", 400, 700, 25, nil, "Spectral parameters are out of range"},
		{"order", 700, 700, 10, nil, "Stop value should be greater than start value"},
		{"length", 400, 700, 10, []float64{0.1, 0.2}, "Data length mismatch. Expected 31 values but got 2 values."},
		{"value", 400, 700, 10, append(flat(30, 0.2), 1.2), "Spectral data values are out of 0-1 range"},
		{"wide interval", 400, 700, 100, flat(4, 0.5), "Spectral parameters are out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ValidateSpectrum(tt.start, tt.stop, tt.interval, tt.data)
			if tt.msg == "" {
				assert.NoError(t, e)
				return
			}
			require.Error(t, e)
			assert.Equal(t, tt.msg, e.Error())
			assert.True(t, errors.Is(e, ErrOutOfRange))
		})
	}
}

func TestValidateWavelength(t *testing.T) {
	assert.NoError(t, ValidateWavelength(360))
	assert.NoError(t, ValidateWavelength(830))
	assert.Error(t, ValidateWavelength(359.9))
	assert.Error(t, ValidateWavelength(831))
}

func TestParse(t *testing.T) {
	c, e := Parse(&Args{RGB: full(255, 128, 0)}, "8")
	require.NoError(t, e)
	assert.Equal(t, RGB, c.Model)
	assert.Equal(t, 255.0, c.Factor)
	assert.InDelta(t, 128.0/255, c.Values[1], 1e-12)

	c, e = Parse(&Args{Start: ip(400), Stop: ip(700), Interval: ip(10), Data: flat(31, 0.3)}, "16")
	require.NoError(t, e)
	assert.Equal(t, Spectrum, c.Model)
	assert.Equal(t, 255.0, c.Factor)
	assert.Equal(t, 10, c.Interval)
	assert.Len(t, c.Data, 31)

	c, e = Parse(&Args{Wave: fp(550)}, "8")
	require.NoError(t, e)
	assert.Equal(t, 550.0, c.Wave)

	_, e = Parse(&Args{Lab: full(50, 0, 0)}, "10")
	assert.True(t, errors.Is(e, ErrBitDepth))

	_, e = Parse(&Args{XYZ: full(2, 0, 0)}, "8")
	assert.True(t, errors.Is(e, ErrOutOfRange))

	_, e = Parse(&Args{}, "8")
	assert.True(t, errors.Is(e, ErrNoModel))
}

func flat(n int, v float64) []float64 {
	d := make([]float64, n)
	for i := range d {
		d[i] = v
	}
	return d
}
