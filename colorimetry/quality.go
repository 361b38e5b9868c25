package colorimetry

import (
	"math"
	"sync"
)

const (
	planckC1 = 3.741771e-16
	planckC2 = 1.4388e-2
)

type planckTable struct {
	once sync.Once
	wl   []float64
	cmf  []Vec3
}

var planck1931 planckTable

func (t *planckTable) init() {
	t.once.Do(func() {
		for wl := 360.0; wl <= 830; wl += 5 {
			t.wl = append(t.wl, wl)
			t.cmf = append(t.cmf, Observer1931.CMF(wl))
		}
	})
}

// planckUV returns the CIE 1960 uv chromaticity of a blackbody at cct.
func planckUV(cct float64) (float64, float64) {
	planck1931.init()
	var xyz Vec3
	for i, wl := range planck1931.wl {
		l := wl * 1e-9
		m := planckC1 / (l * l * l * l * l * (math.Exp(planckC2/(l*cct)) - 1))
		c := planck1931.cmf[i]
		xyz[0] += m * c[0]
		xyz[1] += m * c[1]
		xyz[2] += m * c[2]
	}
	u, v := UCSToUV(XYZToUCS(xyz))
	return u, v
}

// UVToCCT finds the correlated colour temperature and Duv of a CIE 1960
// uv chromaticity by minimising the distance to the Planckian locus over
// 1000..100000 K. Duv is positive above the locus.
func UVToCCT(u, v float64) (float64, float64) {
	dist := func(mired float64) float64 {
		pu, pv := planckUV(1e6 / mired)
		return math.Hypot(u-pu, v-pv)
	}

	// coarse scan in mired, then golden section refinement
	lo, hi := 10.0, 1000.0
	best, bestD := lo, math.Inf(1)
	for m := lo; m <= hi; m += 5 {
		if d := dist(m); d < bestD {
			best, bestD = m, d
		}
	}
	a, b := math.Max(lo, best-5), math.Min(hi, best+5)
	g := (math.Sqrt(5) - 1) / 2
	c := b - g*(b-a)
	d := a + g*(b-a)
	for i := 0; i < 60 && b-a > 1e-9; i++ {
		if dist(c) < dist(d) {
			b = d
		} else {
			a = c
		}
		c = b - g*(b-a)
		d = a + g*(b-a)
	}
	mired := (a + b) / 2
	cct := 1e6 / mired
	pu, pv := planckUV(cct)
	duv := math.Hypot(u-pu, v-pv)
	if v < pv {
		duv = -duv
	}
	return cct, duv
}

// Wavelength holds a dominant or complementary wavelength with the locus
// intersections. A negative wavelength marks a purple stimulus.
type Wavelength struct {
	Wavelength float64
	XYWl       XY
	XYCwl      XY
}

// Slice returns the record shape: wavelength, xy_wl and xy_cwl.
func (w Wavelength) Slice() []interface{} {
	return []interface{}{w.Wavelength, []float64{w.XYWl[0], w.XYWl[1]}, []float64{w.XYCwl[0], w.XYCwl[1]}}
}

// rayHit intersects the ray origin + t*dir (t > 0) with segment p-q and
// returns t and the segment parameter s.
func rayHit(origin, dir, p, q XY) (float64, float64, bool) {
	ex, ey := q[0]-p[0], q[1]-p[1]
	den := dir[0]*ey - dir[1]*ex
	if den == 0 {
		return 0, 0, false
	}
	wx, wy := p[0]-origin[0], p[1]-origin[1]
	t := (wx*ey - wy*ex) / den
	s := (wx*dir[1] - wy*dir[0]) / den
	if t <= 0 || s < 0 || s > 1 {
		return 0, 0, false
	}
	return t, s, true
}

// locusHit returns the nearest intersection of the ray with the spectral
// locus and the locus sample closest to it. onLocus is false when the ray
// leaves through the purple line.
func (o *Observer) locusHit(origin, dir XY) (wl float64, at XY, onLocus bool) {
	locus := o.spectralLocus()
	bestT := math.Inf(1)
	for i := 0; i+1 < len(locus); i++ {
		p := XY{locus[i].x, locus[i].y}
		q := XY{locus[i+1].x, locus[i+1].y}
		if t, s, ok := rayHit(origin, dir, p, q); ok && t < bestT {
			bestT = t
			wl = locus[i].wl
			if s > 0.5 {
				wl = locus[i+1].wl
			}
			at = XY{origin[0] + t*dir[0], origin[1] + t*dir[1]}
			onLocus = true
		}
	}
	first, last := locus[0], locus[len(locus)-1]
	if t, _, ok := rayHit(origin, dir, XY{last.x, last.y}, XY{first.x, first.y}); ok && t < bestT {
		return math.NaN(), XY{origin[0] + t*dir[0], origin[1] + t*dir[1]}, false
	}
	return wl, at, onLocus
}

func (o *Observer) wavelength(xy, white XY, inverse bool) Wavelength {
	dir := XY{xy[0] - white[0], xy[1] - white[1]}
	if inverse {
		dir = XY{-dir[0], -dir[1]}
	}
	if dir[0] == 0 && dir[1] == 0 {
		nan := math.NaN()
		return Wavelength{Wavelength: nan, XYWl: XY{nan, nan}, XYCwl: XY{nan, nan}}
	}
	wl, at, ok := o.locusHit(white, dir)
	if ok {
		return Wavelength{Wavelength: wl, XYWl: at, XYCwl: at}
	}
	cwl, cat, _ := o.locusHit(white, XY{-dir[0], -dir[1]})
	return Wavelength{Wavelength: -cwl, XYWl: at, XYCwl: cat}
}

// DominantWavelength returns the dominant wavelength of xy seen against
// the white xy.
func (o *Observer) DominantWavelength(xy, white XY) Wavelength {
	return o.wavelength(xy, white, false)
}

// ComplementaryWavelength returns the complementary wavelength of xy.
func (o *Observer) ComplementaryWavelength(xy, white XY) Wavelength {
	return o.wavelength(xy, white, true)
}

// ExcitationPurity returns the ratio of the distances white-sample and
// white-locus.
func (o *Observer) ExcitationPurity(xy, white XY) float64 {
	w := o.DominantWavelength(xy, white)
	return math.Hypot(xy[0]-white[0], xy[1]-white[1]) /
		math.Hypot(w.XYWl[0]-white[0], w.XYWl[1]-white[1])
}

// ColorimetricPurity returns the excitation purity weighted by luminance.
func (o *Observer) ColorimetricPurity(xy, white XY) float64 {
	w := o.DominantWavelength(xy, white)
	pe := math.Hypot(xy[0]-white[0], xy[1]-white[1]) /
		math.Hypot(w.XYWl[0]-white[0], w.XYWl[1]-white[1])
	return pe * w.XYWl[1] / xy[1]
}

// WhitenessCIE2004 returns the CIE whiteness W and tint T of a sample with
// chromaticity xy and luminance y (0..100) against the white xy.
func WhitenessCIE2004(xy XY, y float64, white XY, observer string) (float64, float64) {
	w := y + 800*(white[0]-xy[0]) + 1700*(white[1]-xy[1])
	k := 1000.0
	if observer == CIE1964 {
		k = 900
	}
	t := k*(white[0]-xy[0]) - 650*(white[1]-xy[1])
	return w, t
}

// WhitenessBerger1959 uses XYZ and the white in the 0..100 domain.
func WhitenessBerger1959(xyz, white Vec3) float64 {
	return 0.333*xyz[1] + 125*xyz[2]/white[2] - 125*xyz[0]/white[0]
}

// WhitenessStensby1968 is computed from CIELAB.
func WhitenessStensby1968(lab Vec3) float64 {
	return lab[0] - 3*lab[2] + 3*lab[1]
}

// WhitenessASTME313 uses XYZ in the 0..100 domain.
func WhitenessASTME313(xyz Vec3) float64 {
	return 3.388*xyz[2] - 3*xyz[1]
}

// YellownessASTMD1925 expects XYZ under illuminant C in the 0..100 domain.
func YellownessASTMD1925(xyz Vec3) float64 {
	return 100 * (1.28*xyz[0] - 1.06*xyz[2]) / xyz[1]
}

// ASTM E313 yellowness coefficients for D65.
var yellownessE313 = map[string][2]float64{
	CIE1931: {1.2985, 1.1335},
	CIE1964: {1.3013, 1.1498},
}

// YellownessASTME313 uses XYZ in the 0..100 domain.
func YellownessASTME313(xyz Vec3, observer string) float64 {
	c, ok := yellownessE313[observer]
	if !ok {
		c = yellownessE313[CIE1931]
	}
	return 100 * (c[0]*xyz[0] - c[1]*xyz[2]) / xyz[1]
}

// LightnessAbebe2017 is the Michaelis-Menten form of Abebe et al. (2017)
// for Y in 0..100.
func LightnessAbebe2017(y float64) float64 {
	r := math.Pow(y/100, 0.58)
	return 1.448 * r / (r + 0.448)
}

func munsellY(v float64) float64 {
	return 1.1914*v - 0.22533*v*v + 0.23352*v*v*v - 0.020484*v*v*v*v + 0.00081939*v*v*v*v*v
}

// MunsellValueASTMD1535 inverts the ASTM D1535 polynomial for Y in 0..100.
func MunsellValueASTMD1535(y float64) float64 {
	if y <= 0 {
		return 0
	}
	v := 10 * math.Sqrt(y/100)
	for i := 0; i < 50; i++ {
		d := 1.1914 - 2*0.22533*v + 3*0.23352*v*v - 4*0.020484*v*v*v + 5*0.00081939*v*v*v*v
		step := (munsellY(v) - y) / d
		v -= step
		if math.Abs(step) < 1e-12 {
			break
		}
	}
	return v
}
