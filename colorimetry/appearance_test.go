package colorimetry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	camSample = Vec3{19.01, 20.00, 21.78}
	camWhite  = Vec3{95.05, 100.00, 108.88}
)

func assertSlice(t *testing.T, want, got []float64, delta float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsNaN(want[i]) {
			assert.True(t, math.IsNaN(got[i]), "component %d of %v", i, got)
			continue
		}
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v", i, got)
	}
}

func TestHunt(t *testing.T) {
	got := XYZToHunt(camSample, camWhite, camWhite, 318.31, HuntNormalScenes, HuntReferenceCCT)
	nan := math.NaN()
	assertSlice(t, []float64{30.0462679, 0.1210508, 269.2737594, 0.0199093, 22.2097655, 0.1238964, nan, nan}, got.Slice(), 1e-6)
}

func TestATD95(t *testing.T) {
	got := XYZToATD95(camSample, camWhite, 318.31, 0, 50)
	assertSlice(t, []float64{
		1.9089869, 1.2064060, 0.1814003,
		0.1787931, 0.0286942, 0.0107584,
		0.0192182, 0.0205377, 0.0107584,
	}, got.Slice(), 1e-6)
}

func TestKim2009(t *testing.T) {
	got := XYZToKim2009(camSample, camWhite, 318.31, KimCRT, Surrounds["average"])
	assertSlice(t, []float64{
		28.8619090, 0.5592456, 219.0480668, 9.3837797,
		52.7138884, 0.4641738, 278.0602825, math.NaN(),
	}, got.Slice(), 1e-6)
}

func TestLLAB(t *testing.T) {
	got := XYZToLLAB(camSample, camWhite, 20, 318.31, LLABAverageSmall)
	assertSlice(t, []float64{37.3668650, 0.0089497, 270, 0.0002395, 0.0190186, math.NaN(), 0, -0.0190186}, got.Slice(), 1e-6)
}

func TestNayatani95(t *testing.T) {
	got := XYZToNayatani95(camSample, camWhite, 20, NayataniIlluminance, NayataniNormalisingIlluminance)
	nan := math.NaN()
	assertSlice(t, []float64{
		49.9998830, 0.0133550, 257.5232269, 0.0133550,
		62.6266735, 0.0167263, nan, nan, 50.0039154,
	}, got.Slice(), 1e-6)
}

func TestZCAM(t *testing.T) {
	got := XYZToZCAM(Vec3{185, 206, 163}, Vec3{256, 264, 202}, ZCAMLA, ZCAMYb, Surrounds["average"])
	assert.InDelta(t, 92.2504, got.J, 1e-3)
	assert.InDelta(t, 3.0217, got.C, 1e-3)
	assert.InDelta(t, 196.3246, got.H, 1e-3)
	assert.InDelta(t, 19.1320, got.S, 1e-3)
	assert.InDelta(t, 321.3408, got.Q, 1e-2)
	assert.InDelta(t, 10.5256, got.M, 1e-3)
	assert.InDelta(t, 237.6114, got.HQ, 1e-3)
	assert.InDelta(t, 34.7007, got.V, 1e-3)
	assert.InDelta(t, 25.8836, got.K, 1e-3)
	assert.InDelta(t, 91.6822, got.W, 1e-3)
	assert.True(t, math.IsNaN(got.HC))
	assert.Len(t, got.Slice(), 11)
}

func TestHueQuadrature(t *testing.T) {
	assert.InDelta(t, 0, HueQuadrature(20.14), 1e-9)
	assert.InDelta(t, 100, HueQuadrature(90), 1e-9)
	assert.InDelta(t, 400, HueQuadrature(380.14-1e-12), 1e-6)
	assert.InDelta(t, 300, zcamHues.quadrature(238.36), 1e-9)
	// hues below the first unique hue wrap to the last segment
	assert.Greater(t, zcamHues.quadrature(10), 300.0)
}

var opponentSample = Vec3{0.20654008, 0.12197225, 0.05136952}

func TestHDRCIELab(t *testing.T) {
	got := XYZToHDRCIELab(opponentSample, XY{0.3127, 0.3290}, HDRSurround, HDRAbsoluteY)
	assertVec(t, Vec3{51.8700206, 60.4763385, 32.1455191}, got, 1e-6)
}

func TestHDRIPT(t *testing.T) {
	assertVec(t, Vec3{48.3937634, 42.4499020, 22.0195403}, XYZToHDRIPT(opponentSample, HDRSurround, HDRAbsoluteY), 1e-6)
	assertVec(t, Vec3{}, XYZToHDRIPT(Vec3{}, HDRSurround, HDRAbsoluteY), 1e-12)
}

func TestIgPgTg(t *testing.T) {
	assertVec(t, Vec3{0.4242126, 0.1863249, 0.1068922}, XYZToIgPgTg(opponentSample), 1e-6)
}

func TestIPTRagoo2021(t *testing.T) {
	assertVec(t, Vec3{0.4224824, 0.2910514, 0.2041066}, XYZToIPTRagoo2021(opponentSample), 1e-6)
}

func TestYrg(t *testing.T) {
	assertVec(t, Vec3{0.1313780, 0.4903765, 0.3777739}, XYZToYrg(opponentSample), 1e-6)
	assertVec(t, Vec3{0, 0.02062, -0.05155}, XYZToYrg(Vec3{}), 1e-12)
}

func TestIzazbzSafdar2021(t *testing.T) {
	xyz := Vec3{0.2, 0.3, 0.4}
	jz := XYZToIzazbz(xyz)
	z := XYZToIzazbzSafdar2021(xyz)
	assert.Equal(t, jz[1], z[1])
	assert.Equal(t, jz[2], z[2])
	assert.NotEqual(t, jz[0], z[0])
	assert.InDelta(t, 0, XYZToIzazbzSafdar2021(Vec3{})[0], 1e-9)
}

func TestIsWithinPointerGamut(t *testing.T) {
	for _, c := range []struct {
		xy   XY
		want bool
	}{
		{XY{0.3101, 0.3162}, true},
		{XY{0.64, 0.33}, true},
		{XY{0.2, 0.7}, false},
		{XY{0.7, 0.29}, false},
		{XY{0.15, 0.06}, false},
	} {
		assert.Equal(t, c.want, IsWithinPointerGamut(c.xy), "%v", c.xy)
	}
}

func TestIsWithinMacAdamLimits(t *testing.T) {
	for _, c := range []struct {
		xyY  Vec3
		ill  string
		want bool
	}{
		{Vec3{0.3127, 0.3290, 0.5}, "D65", true},
		{Vec3{0.64, 0.33, 0.2}, "D65", true},
		{Vec3{0.64, 0.33, 0.3}, "D65", false},
		{Vec3{0.8, 0.3, 0.05}, "D65", false},
		{Vec3{0.3127, 0.3290, 1}, "D65", true},
		{Vec3{0.3101, 0.3162, 1}, "C", true},
		{Vec3{0.3127, 0.3290, 1.2}, "D65", false},
		{Vec3{0.4476, 0.4074, 0.5}, "A", true},
		{Vec3{0.15, 0.06, 0.05}, "A", false},
		{Vec3{0.64, 0.33, 0.2}, "C", true},
		{Vec3{0.3, 0.3, 0}, "C", true},
	} {
		got, e := IsWithinMacAdamLimits(c.xyY, c.ill)
		require.NoError(t, e)
		assert.Equal(t, c.want, got, "%v under %s", c.xyY, c.ill)
	}

	_, e := IsWithinMacAdamLimits(Vec3{0.3, 0.3, 0.5}, "FL2")
	assert.ErrorIs(t, e, ErrUnknownIlluminant)
}
