package colorimetry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec(t *testing.T, want, got Vec3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v", i, got)
	}
}

func TestNPMMapsWhite(t *testing.T) {
	for _, name := range []string{
		"sRGB", "ProPhoto RGB", "ITU-R BT.2020", "ACEScg",
		"Sharp RGB", "DRAGONcolor2", "FilmLight E-Gamut", "Xtreme RGB", "DCDM XYZ",
	} {
		s, e := SpaceByName(name)
		require.NoError(t, e)
		assertVec(t, s.Whitepoint.XYZ(), s.NPM().Apply(Vec3{1, 1, 1}), 1e-9)
	}

	// primaries on y = 0 are the XYZ axes themselves
	xtreme, _ := SpaceByName("Xtreme RGB")
	assertVec(t, Vec3{0, 1, 0}, xtreme.NPM().Apply(Vec3{0, 1, 0}), 1e-12)

	srgb, _ := SpaceByName("sRGB")
	assertVec(t, Vec3{0.4124, 0.2126, 0.0193}, srgb.NPM().Apply(Vec3{1, 0, 0}), 1e-4)
}

func TestSpaceByNameUnknown(t *testing.T) {
	_, e := SpaceByName("Bogus RGB")
	assert.ErrorIs(t, e, ErrUnknownSpace)
}

func TestRGBRoundTrip(t *testing.T) {
	srgb, _ := SpaceByName("sRGB")
	d50 := MustChromaticity(CIE1931, "D50")
	rgb := Vec3{0.2, 0.5, 0.7}

	for _, cat := range []string{"", CATBradford, CATCAT16} {
		xyz, e := RGBToXYZ(rgb, srgb, d50, cat)
		require.NoError(t, e)
		back, e := XYZToRGB(xyz, d50, srgb, cat)
		require.NoError(t, e)
		assertVec(t, rgb, back, 1e-9)
	}

	_, e := RGBToXYZ(rgb, srgb, d50, "Nope")
	assert.ErrorIs(t, e, ErrUnknownCAT)
}

func TestRGBToRGB(t *testing.T) {
	srgb, _ := SpaceByName("sRGB")
	bt709, _ := SpaceByName("ITU-R BT.709")
	prophoto, _ := SpaceByName("ProPhoto RGB")

	rgb := Vec3{0.3, 0.4, 0.5}
	same, e := RGBToRGB(rgb, srgb, bt709, CATBradford)
	require.NoError(t, e)
	assertVec(t, rgb, same, 1e-9)

	// adapted white stays white
	white, e := RGBToRGB(Vec3{1, 1, 1}, srgb, prophoto, CATBradford)
	require.NoError(t, e)
	assertVec(t, Vec3{1, 1, 1}, white, 1e-3)
}

func TestTransferRoundTrip(t *testing.T) {
	for name, tr := range map[string]Transfer{
		"linear":    Linear,
		"gamma 2.2": Gamma(2.2),
		"sRGB":      SRGB,
		"BT.709":    BT709,
		"ROMM":      ROMM,
		"L*":        LStar,
		"LogFilm":   REDLogFilm,
		"ERIMM":     ERIMM,
		"S-Log2":    SLog2,
		"S-Log3":    SLog3,
		"T-Log":     TLog,
		"ACEScct":   ACEScct,
	} {
		for _, v := range []float64{0, 0.001, 0.18, 0.5, 1} {
			assert.InDelta(t, v, tr.Decode(tr.Encode(v)), 1e-9, "%s at %g", name, v)
		}
	}
	assert.InDelta(t, 0.5, SRGB.Encode(0.214041), 1e-5)
	assert.InDelta(t, 0.49496, LStar.Encode(0.18), 1e-5)
	assert.InDelta(t, -0.5, Gamma(2.2).Encode(-0.217637640824031), 1e-9)
	assert.InDelta(t, 95.0/1023, REDLogFilm.Encode(0), 1e-12)
	assert.InDelta(t, 0.075, TLog.Encode(0), 1e-9)
	assert.Equal(t, 1.0, ERIMM.Encode(1000))
}

func TestACESproxy(t *testing.T) {
	assert.InDelta(t, 426.0/1023, ACESproxy.Encode(0.18), 1e-12)
	assert.InDelta(t, 0.18, ACESproxy.Decode(ACESproxy.Encode(0.18)), 0.005)
	assert.Equal(t, 64.0/1023, ACESproxy.Encode(0))
	assert.Equal(t, 940.0/1023, ACESproxy.Encode(1e6))
}

func TestST2084(t *testing.T) {
	for _, c := range []float64{0, 1, 100, 1000, 10000} {
		assert.InDelta(t, c, ST2084Decode(ST2084Encode(c, 10000), 10000), 1e-6)
	}
}

func TestLab(t *testing.T) {
	d65 := MustChromaticity(CIE1931, "D65")
	assertVec(t, Vec3{100, 0, 0}, XYZToLab(d65.XYZ(), d65), 1e-9)

	for _, lab := range []Vec3{{50, 20, -30}, {5, 1, 1}, {90, -60, 80}} {
		assertVec(t, lab, XYZToLab(LabToXYZ(lab, d65), d65), 1e-9)
	}
	assertVec(t, Vec3{50, 20, -30}, FromLCH(ToLCH(Vec3{50, 20, -30})), 1e-9)

	lab := XYZToLab(Vec3{0.20654008, 0.12197225, 0.05136952}, d65)
	assertVec(t, Vec3{41.52787529, 52.63858304, 26.92317922}, lab, 1e-4)
	assertVec(t, Vec3{41.52787529, 59.12425901, 27.08848784}, ToLCH(lab), 1e-4)

	lch := ToLCH(Vec3{50, 0, -10})
	assert.InDelta(t, 10, lch[1], 1e-9)
	assert.InDelta(t, 270, lch[2], 1e-9)
}

func TestLuv(t *testing.T) {
	d50 := MustChromaticity(CIE1931, "D50")
	assertVec(t, Vec3{100, 0, 0}, XYZToLuv(d50.XYZ(), d50), 1e-9)
	luv := Vec3{60, 30, -40}
	assertVec(t, luv, XYZToLuv(LuvToXYZ(luv, d50), d50), 1e-9)

	d65 := MustChromaticity(CIE1931, "D65")
	got := XYZToLuv(Vec3{0.20654008, 0.12197225, 0.05136952}, d65)
	assertVec(t, Vec3{41.52787529, 96.83626054, 17.75210149}, got, 1e-3)
	assertVec(t, Vec3{}, LuvToXYZ(Vec3{}, d65), 0)
}

func TestXYZToXyY(t *testing.T) {
	d65 := MustChromaticity(CIE1931, "D65")
	xy := XYZToXy(d65.XYZ())
	assert.InDelta(t, d65[0], xy[0], 1e-12)
	assert.InDelta(t, d65[1], xy[1], 1e-12)
	assertVec(t, Vec3{d65[0], d65[1], 1}, XYZToXyY(d65.XYZ()), 1e-12)
}

func TestChromaticity(t *testing.T) {
	_, ok := Chromaticity(CIE1931, "D65")
	assert.True(t, ok)
	_, ok = Chromaticity(CIE1931, "Z99")
	assert.False(t, ok)
	assert.Panics(t, func() { MustChromaticity(CIE1964, "Z99") })
}

func TestAdaptation(t *testing.T) {
	a := MustChromaticity(CIE1931, "A").XYZ()
	d65 := MustChromaticity(CIE1931, "D65").XYZ()

	for _, cat := range CATs {
		got, e := VonKries(a, a, d65, cat)
		require.NoError(t, e, cat)
		assertVec(t, d65, got, 1e-9)
	}

	_, e := CATMatrix("Nope")
	assert.ErrorIs(t, e, ErrUnknownCAT)

	xyz := Vec3{20, 30, 40}
	assertVec(t, xyz, CMCCAT2000(xyz, d65.Scale(100), d65.Scale(100), 200, 200), 1e-9)
}

func TestCCTRoundTrip(t *testing.T) {
	for _, cct := range []float64{2000, 2856, 5000, 6500, 10000} {
		u, v := planckUV(cct)
		got, duv := UVToCCT(u, v)
		assert.InDelta(t, cct, got, cct*1e-4)
		assert.InDelta(t, 0, duv, 1e-6)
	}

	u, v := planckUV(4000)
	_, duv := UVToCCT(u, v+0.005)
	assert.Greater(t, duv, 0.0)
}

func TestDeviceModels(t *testing.T) {
	red := Vec3{1, 0, 0}
	assertVec(t, Vec3{0, 1, 0.5}, RGBToHSL(red), 1e-9)
	assertVec(t, Vec3{0, 1, 1}, RGBToHSV(red), 1e-9)
	assertVec(t, Vec3{0, 0, 0}, RGBToHWB(red), 1e-9)
	assertVec(t, Vec3{0, 1, 1}, RGBToCMY(red), 1e-9)
	assert.Equal(t, [4]float64{0, 1, 1, 0}, CMYToCMYK(RGBToCMY(red)))
	assert.Equal(t, [4]float64{0, 0, 0, 1}, CMYToCMYK(Vec3{1, 1, 1}))
	assert.Equal(t, "#ff0000", RGBToHex(red))
	assert.Equal(t, "#ffffff", RGBToHex(Vec3{1.2, 1, 1}))

	gray := Vec3{0.5, 0.5, 0.5}
	assertVec(t, Vec3{0.5, 0, 0}, RGBToYCoCg(gray), 1e-12)
	assert.Zero(t, RGBToIHLS(gray)[0])
	assert.Equal(t, [4]float64{0.5, 1.0 / 3, 1.0 / 3, 1.0 / 3}, RGBToPrismatic(gray))
	assert.Equal(t, [4]float64{0, 0, 0, 0}, RGBToPrismatic(Vec3{}))

	srgb, _ := SpaceByName("sRGB")
	assert.InDelta(t, 1, RGBLuminance(Vec3{1, 1, 1}, srgb), 1e-9)

	ycbcr := RGBToYCbCr(Vec3{1, 1, 1})
	assert.InDelta(t, 235.0/255, ycbcr[0], 1e-9)
	assert.InDelta(t, 128.0/255, ycbcr[1], 1e-9)
}

func TestSpectralDistribution(t *testing.T) {
	_, e := NewSpectralDistribution(400, 700, 100, []float64{1, 2})
	assert.Error(t, e)
	_, e = NewSpectralDistribution(700, 400, 100, []float64{1, 2, 3, 4})
	assert.Error(t, e)

	sd, e := NewSpectralDistribution(400, 700, 100, []float64{0, 1, 2, 3})
	require.NoError(t, e)
	assert.Equal(t, []float64{400, 500, 600, 700}, sd.Wavelengths())
	assert.Equal(t, 0.5, sd.Value(450))
	assert.Equal(t, 0.0, sd.Value(300))
	assert.Equal(t, 3.0, sd.Value(800))

	fine := sd.Interpolate(50)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2, 2.5, 3}, fine.Values)
}

func TestPerfectReflector(t *testing.T) {
	d65, ok := IlluminantSPD("D65")
	require.True(t, ok)
	for _, name := range []string{"FL2", "HP1", "LED-B1"} {
		_, ok = IlluminantSPD(name)
		assert.False(t, ok, name)
	}

	flat := make([]float64, 41)
	for i := range flat {
		flat[i] = 1
	}
	sd, e := NewSpectralDistribution(380, 780, 10, flat)
	require.NoError(t, e)
	xyz := sd.ToXYZ(Observer1931, d65)
	assert.InDelta(t, 1, xyz[1], 1e-12)

	// a perfect reflector lands on the tabulated white point
	for _, name := range []string{"A", "B", "C", "D50", "D55", "D65", "E"} {
		spd, ok := IlluminantSPD(name)
		require.True(t, ok, name)
		xy := XYZToXy(sd.ToXYZ(Observer1931, spd))
		want := MustChromaticity(CIE1931, name)
		assert.InDelta(t, want[0], xy[0], 5e-3, name)
		assert.InDelta(t, want[1], xy[1], 5e-3, name)
	}
}

func TestTabulatedIlluminants(t *testing.T) {
	d65, _ := IlluminantSPD("D65")
	assert.Equal(t, 340.0, d65.Start)
	assert.InDelta(t, 100, d65.Value(560), 1e-4)

	b, _ := IlluminantSPD("B")
	assert.Equal(t, 770.0, b.Stop)
	assert.NotZero(t, b.Values[len(b.Values)-1])
}

func TestCMF(t *testing.T) {
	assertVec(t, Vec3{0.001368, 0.000039, 0.00645}, Observer1931.CMF(380), 1e-12)
	assert.InDelta(t, 1, Observer1931.CMF(555)[1], 1e-12)
	assert.InDelta(t, 0.01135916, Observer1931.CMF(700)[0], 1e-12)
	assertVec(t, Vec3{0.001802, 0.0000515, 0.0085}, Observer1931.CMF(382.5), 1e-9)
	assertVec(t, Vec3{0.195618, 0.18519, 1.31756}, Observer1964.CMF(470), 1e-12)
	assertVec(t, Vec3{0.431567, 0.179828, 0}, Observer1964.CMF(640), 1e-12)
	assertVec(t, Vec3{}, Observer1931.CMF(900), 0)
}

func TestDominantWavelength(t *testing.T) {
	d65 := XY{0.3127, 0.329}

	w := Observer1931.DominantWavelength(XY{0.54369557, 0.32107944}, d65)
	assert.InDelta(t, 617, w.Wavelength, 1)
	assert.InDelta(t, 0.68355, w.XYWl[0], 2e-3)
	assert.InDelta(t, 0.31628, w.XYWl[1], 2e-3)
	assert.InDelta(t, 0.62289, Observer1931.ExcitationPurity(XY{0.54369557, 0.32107944}, d65), 5e-3)
	assert.InDelta(t, 0.61358, Observer1931.ColorimetricPurity(XY{0.54369557, 0.32107944}, d65), 5e-3)

	for _, c := range []struct {
		xy XY
		wl float64
	}{
		{XY{0.64, 0.33}, 611},
		{XY{0.3, 0.6}, 549},
		{XY{0.15, 0.06}, 464},
	} {
		assert.InDelta(t, c.wl, Observer1931.DominantWavelength(c.xy, d65).Wavelength, 1, "%v", c.xy)
	}
	assert.LessOrEqual(t, Observer1931.ExcitationPurity(XY{0.64, 0.33}, d65), 1.0)

	purple := XY{0.37605506, 0.24452225}
	w = Observer1931.DominantWavelength(purple, d65)
	assert.InDelta(t, -509, w.Wavelength, 1)
	assert.InDelta(t, 0.01178, w.XYCwl[0], 3e-3)
	assert.InDelta(t, 0.73025, w.XYCwl[1], 3e-3)
	assert.InDelta(t, 509, Observer1931.ComplementaryWavelength(purple, d65).Wavelength, 1)

	assert.True(t, math.IsNaN(Observer1931.DominantWavelength(d65, d65).Wavelength))
	assert.False(t, math.IsNaN(Observer1964.DominantWavelength(XY{0.64, 0.33}, d65).Wavelength))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.24, Round(1.2351, 2))
	assert.Equal(t, -2.0, Round(-1.5, 0))
	assert.Equal(t, Vec3{0.1, 0.2, 0.3}, Vec3{0.1001, 0.19996, 0.3}.Round(3))
}

func TestSpectralSimilarityIndex(t *testing.T) {
	d65, _ := IlluminantSPD("D65")
	a, _ := IlluminantSPD("A")
	assert.Equal(t, 100.0, SpectralSimilarityIndex(d65, d65))
	assert.Equal(t, 47.0, SpectralSimilarityIndex(a, d65))

	flat := make([]float64, 31)
	for i := range flat {
		flat[i] = 1
	}
	sd, e := NewSpectralDistribution(400, 700, 10, flat)
	require.NoError(t, e)
	assert.Equal(t, 87.0, SpectralSimilarityIndex(d65, sd))
}
