package colorimetry

import "math"

// HuntSurround holds the Hunt chromatic and brightness surround induction
// factors.
type HuntSurround struct {
	Nc, Nb float64
}

// Hunt surrounds (Fairchild 2013, table 12-1).
var (
	HuntSmallAreas    = HuntSurround{Nc: 1, Nb: 300}
	HuntNormalScenes  = HuntSurround{Nc: 1, Nb: 75}
	HuntTelevisionDim = HuntSurround{Nc: 1, Nb: 25}
	HuntLightBoxes    = HuntSurround{Nc: 0.7, Nb: 25}
	HuntProjectedDark = HuntSurround{Nc: 0.7, Nb: 10}
)

// HuntReferenceCCT is the correlated colour temperature assumed for the
// adapting white when deriving scotopic luminance.
const HuntReferenceCCT = 6504.0

var (
	huntUniqueHues      = [4]float64{20.14, 90.00, 164.25, 237.53}
	huntHueEccentricity = [4]float64{0.8, 0.7, 1.0, 1.2}
)

func huntResponse(x float64) float64 {
	xp := spow(x, 0.73)
	return 40 * xp / (xp + 2)
}

func huntEccentricity(h float64) float64 {
	switch {
	case h < huntUniqueHues[0]:
		return 0.856 - h/huntUniqueHues[0]*0.056
	case h > huntUniqueHues[3]:
		return 0.856 + 0.344*(360-h)/(360-huntUniqueHues[3])
	}
	i := 0
	for i < 2 && h > huntUniqueHues[i+1] {
		i++
	}
	f := (h - huntUniqueHues[i]) / (huntUniqueHues[i+1] - huntUniqueHues[i])
	return huntHueEccentricity[i] + f*(huntHueEccentricity[i+1]-huntHueEccentricity[i])
}

// XYZToHunt computes the Hunt model correlates of xyz (0..100) under the
// white xyzw and background xyzb, with adapting luminance la and white
// colour temperature cct. The illuminant is discounted and no proximal
// field or Helson-Judd effect is modelled.
func XYZToHunt(xyz, xyzw, xyzb Vec3, la float64, sr HuntSurround, cct float64) Appearance {
	yw, yb := xyzw[1], xyzb[1]
	las := 2.26 * la * spow(cct/4000-0.4, 1.0/3)
	ncb := 0.725 * spow(yw/yb, 0.2)
	nbb := ncb

	k := 1 / (5*la + 1)
	k4 := k * k * k * k
	fl := 0.2*k4*(5*la) + 0.1*(1-k4)*(1-k4)*spow(5*la, 1.0/3)

	rgbw := matHPE.Apply(xyzw)
	adapt := func(v Vec3) Vec3 {
		rgb := matHPE.Apply(v)
		var out Vec3
		for i := range out {
			bleach := 1e7 / (1e7 + 5*la*(rgbw[i]/100))
			out[i] = 1 + bleach*huntResponse(fl*rgb[i]/rgbw[i])
		}
		return out
	}
	rgba, rgbaw := adapt(xyz), adapt(xyzw)

	aa := 2*rgba[0] + rgba[1] + rgba[2]/20 - 3.05 + 1
	aaw := 2*rgbaw[0] + rgbaw[1] + rgbaw[2]/20 - 3.05 + 1

	diff := func(v Vec3) (float64, float64) {
		c1, c2, c3 := v[0]-v[1], v[1]-v[2], v[2]-v[0]
		return c1 - c2/11, 0.5 * (c2 - c3) / 4.5
	}
	rg, yb2 := diff(rgba)
	rgw, ybw := diff(rgbaw)
	h := hueDegrees(yb2, rg)
	es := huntEccentricity(h)
	ft := la / (la + 0.1)
	m := math.Hypot(100*yb2*es*10/13*sr.Nc*ncb*ft, 100*rg*es*10/13*sr.Nc*ncb)
	mw := math.Hypot(100*ybw*es*10/13*sr.Nc*ncb*ft, 100*rgw*es*10/13*sr.Nc*ncb)
	s := 50 * m / (rgba[0] + rgba[1] + rgba[2])

	achromatic := func(y, a float64) float64 {
		l := 5 * las / 2.26
		j := 0.00001 / (l + 0.00001)
		fls := 3800*j*j*l + 0.2*spow(1-j*j, 0.4)*spow(l, 1.0/6)
		bs := 0.5/(1+0.3*spow(l*(y/yw), 0.3)) + 0.5/(1+5*l)
		as := huntResponse(fls*y/yw)*3.05*bs + 0.3
		return nbb * (a - 1 + as - 0.3 + math.Sqrt(1+0.3*0.3))
	}
	a, aw := achromatic(xyz[1], aa), achromatic(yw, aaw)

	brightness := func(a, m float64) float64 {
		n1 := spow(7*aw, 0.5) / (5.33 * spow(sr.Nb, 0.13))
		n2 := 7 * aw * spow(sr.Nb, 0.362) / 200
		return spow(7*(a+m/100), 0.6)*n1 - n2
	}
	q, qw := brightness(a, m), brightness(aw, mw)

	j := 100 * spow(q/qw, 1+spow(yb/yw, 0.5))
	c := 2.44 * spow(s, 0.69) * spow(q/qw, yb/yw) * (1.64 - math.Pow(0.29, yb/yw))
	return Appearance{J: j, C: c, H: h, S: s, Q: q, M: spow(fl, 0.15) * c, HQ: math.NaN(), HC: math.NaN()}
}

// ATD95 holds the Guth (1995) ATD correlates: hue, saturation, brightness
// and the first and second stage opponent signals.
type ATD95 struct {
	H, C, Br, A1, T1, D1, A2, T2, D2 float64
}

// Slice returns h, C, Q, A1, T1, D1, A2, T2 and D2.
func (a ATD95) Slice() []float64 {
	return []float64{a.H, a.C, a.Br, a.A1, a.T1, a.D1, a.A2, a.T2, a.D2}
}

// ATD95Sigma is the constant of the ATD95 gain control.
const ATD95Sigma = 300

var (
	atdXYZToLMS = Mat3{
		{0.2435, 0.8524, -0.0516},
		{-0.3954, 1.1642, 0.0837},
		{0.0000, 0.0400, 0.6225},
	}
	atdGain  = Vec3{0.66, 1.0, 0.43}
	atdNoise = Vec3{0.024, 0.036, 0.31}
)

func atdCones(xyz Vec3) Vec3 {
	lms := atdXYZToLMS.Apply(xyz)
	for i := range lms {
		lms[i] = spow(lms[i]*atdGain[i], 0.7) + atdNoise[i]
	}
	return lms
}

// XYZToATD95 computes ATD95 for xyz (0..100) under the white xyz0, with
// adapting luminance y0 in cd/m2 and the weights k1 and k2 of the sample
// and the white in the adaptation field.
func XYZToATD95(xyz, xyz0 Vec3, y0, k1, k2 float64) ATD95 {
	retinal := func(v Vec3) Vec3 {
		for i := range v {
			v[i] = 18 * spow(y0*v[i]/100, 0.8)
		}
		return v
	}
	xyz, xyz0 = retinal(xyz), retinal(xyz0)
	lms := atdCones(xyz)
	var field Vec3
	for i := range field {
		field[i] = k1*xyz[i] + k2*xyz0[i]
	}
	lmsa := atdCones(field)
	var g Vec3
	for i := range g {
		g[i] = lms[i] * ATD95Sigma / (ATD95Sigma + lmsa[i])
	}

	a1 := 3.57*g[0] + 2.64*g[1]
	t1 := 7.18*g[0] - 6.21*g[1]
	d1 := -0.7*g[0] + 0.085*g[1] + g[2]
	a2 := 0.09 * a1
	t2 := 0.43*t1 + 0.76*d1
	d2 := d1
	final := func(v float64) float64 { return v / (200 + math.Abs(v)) }
	out := ATD95{A1: final(a1), T1: final(t1), D1: final(d1), A2: final(a2), T2: final(t2), D2: final(d2)}
	out.Br = math.Sqrt(out.A1*out.A1 + out.T1*out.T1 + out.D1*out.D1)
	out.C = math.Hypot(out.T2, out.D2) / out.A2
	out.H = out.T2 / out.D2
	return out
}

// Kim2009 media parameters E.
const (
	KimHighLuminanceLCD = 1.0
	KimTransparent      = 1.2175
	KimCRT              = 1.4572
	KimReflectivePaper  = 1.7526
)

// XYZToKim2009 computes the Kim, Weyrich and Kautz (2009) model for xyz
// (0..100) under xyzw with adapting luminance la, media parameter e and
// surround sr.
func XYZToKim2009(xyz, xyzw Vec3, la, e float64, sr Surround) Appearance {
	const nc = 0.57
	yw := xyzw[1]
	d := sr.F * (1 - (1/3.6)*math.Exp((-la-42)/92))
	toHPE := matHPE.Mul(matCAT02.Inverse())

	rgbw := matCAT02.Apply(xyzw)
	lms := toHPE.Apply(adaptCone(matCAT02.Apply(xyz), rgbw, yw, d))
	lmsw := toHPE.Apply(adaptCone(rgbw, rgbw, yw, d))

	lan := math.Pow(la, nc)
	var lp, lwp Vec3
	for i := range lp {
		x, xw := spow(lms[i], nc), spow(lmsw[i], nc)
		lp[i] = x / (x + lan)
		lwp[i] = xw / (xw + lan)
	}
	a := (40*lp[0] + 20*lp[1] + lp[2]) / 61
	aw := (40*lwp[0] + 20*lwp[1] + lwp[2]) / 61

	const aj, bj, oj, nj = 0.89, 0.24, 0.65, 3.65
	r := a / aw
	jp := spow(-(r-bj)*spow(oj, nj)/(r-bj-aj), 1/nj)
	j := 100 * (e*(jp-1) + 1)
	q := j * spow(yw, 0.1308)

	oa := (11*lp[0] - 12*lp[1] + lp[2]) / 11
	ob := (lp[0] + lp[1] - 2*lp[2]) / 9
	c := 456.5 * spow(math.Hypot(oa, ob), 0.62)
	m := c * (0.11*math.Log10(yw) + 0.61)
	h := hueDegrees(ob, oa)
	return Appearance{J: j, C: c, H: h, S: 100 * spow(m/q, 0.5), Q: q, M: m, HQ: HueQuadrature(h), HC: math.NaN()}
}

// LLAB holds the Luo, Lo and Kuo (1996) LLAB(l:c) correlates.
type LLAB struct {
	J, C, H, S, M, HC, A, B float64
}

// Slice returns J, C, h, s, M, HC, a and b.
func (l LLAB) Slice() []float64 {
	return []float64{l.J, l.C, l.H, l.S, l.M, l.HC, l.A, l.B}
}

// LLABSurround holds the LLAB induction factors.
type LLABSurround struct {
	D, FS, FL, FC float64
}

// LLAB surrounds.
var (
	LLABAverageLarge   = LLABSurround{D: 1, FS: 3, FL: 0, FC: 1}
	LLABAverageSmall   = LLABSurround{D: 1, FS: 3, FL: 1, FC: 1}
	LLABTelevisionDim  = LLABSurround{D: 0.7, FS: 3.5, FL: 1, FC: 1}
	LLABCutSheetDim    = LLABSurround{D: 1, FS: 5, FL: 1, FC: 1.1}
	LLABProjectionDark = LLABSurround{D: 0.7, FS: 4, FL: 1, FC: 1}
)

var (
	llabWhite   = Vec3{95.05, 100.00, 108.88}
	llabToCones = catMatrices[CATBradford]
)

func llabCones(xyz Vec3) Vec3 {
	return llabToCones.Apply(xyz.Scale(1 / xyz[1]))
}

// XYZToLLAB computes LLAB for xyz (0..100) under the white xyz0 with
// background luminance yb and absolute luminance l in cd/m2.
func XYZToLLAB(xyz, xyz0 Vec3, yb, l float64, sr LLABSurround) LLAB {
	rgb, rgb0, rgbr := llabCones(xyz), llabCones(xyz0), llabCones(llabWhite)
	beta := spow(rgb0[2]/rgbr[2], 0.0834)
	d := sr.D
	adapted := Vec3{
		(d*(rgbr[0]/rgb0[0]) + 1 - d) * rgb[0],
		(d*(rgbr[1]/rgb0[1]) + 1 - d) * rgb[1],
		(d*(rgbr[2]/spow(rgb0[2], beta)) + 1 - d) * spow(rgb[2], beta),
	}
	ref := llabToCones.Inverse().Apply(adapted.Scale(xyz[1]))

	f := func(x float64) float64 {
		if x > 0.008856 {
			return spow(x, 1/sr.FS)
		}
		return (spow(0.008856, 1/sr.FS)-16.0/116)/0.008856*x + 16.0/116
	}
	fy := f(ref[1] / 100)
	z := 1 + sr.FL*spow(yb/100, 0.5)
	lightness := 116*spow(fy, z) - 16
	a := 500 * (f(ref[0]/llabWhite[0]) - fy)
	b := 200 * (fy - f(ref[2]/llabWhite[2]))

	ch := 25 * math.Log(1+0.05*math.Hypot(a, b))
	lg := math.Log10(l)
	sc := 1 + 0.47*lg - 0.057*lg*lg
	sm := 0.7 + 0.02*lightness - 0.0002*lightness*lightness
	cl := ch * sm * sc * sr.FC
	h := hueDegrees(b, a)
	hr := radians(h)
	return LLAB{J: lightness, C: ch, H: h, S: ch / lightness, M: cl, HC: math.NaN(), A: cl * math.Cos(hr), B: cl * math.Sin(hr)}
}

// Nayatani95 holds the Nayatani et al. (1995) correlates. Appearance.J is
// the achromatic lightness L*p.
type Nayatani95 struct {
	Appearance
	LN float64 // normalised achromatic lightness L*n
}

// Slice returns L*p, C, h, s, Q, M, H, HC and L*n.
func (n Nayatani95) Slice() []float64 {
	return append(n.Appearance.Slice(), n.LN)
}

// Nayatani95 reference illuminances in lux.
const (
	NayataniIlluminance            = 5000.0
	NayataniNormalisingIlluminance = 1000.0
)

var nayataniXYZToRGB = Mat3{
	{0.40024, 0.70760, -0.08081},
	{-0.22630, 1.16532, 0.04570},
	{0.00000, 0.00000, 0.91822},
}

func nayataniBeta1(x float64) float64 {
	p := math.Pow(x, 0.4495)
	return (6.469 + 6.362*p) / (6.469 + p)
}

func nayataniBeta2(x float64) float64 {
	p := math.Pow(x, 0.5128)
	return 0.7844 * (8.414 + 8.091*p) / (8.414 + p)
}

func nayataniStrength(t float64) float64 {
	return 0.9394 - 0.2478*math.Sin(t) - 0.0743*math.Sin(2*t) + 0.0666*math.Sin(3*t) -
		0.0186*math.Sin(4*t) - 0.0055*math.Cos(t) - 0.0521*math.Cos(2*t) -
		0.0573*math.Cos(3*t) - 0.0061*math.Cos(4*t)
}

// XYZToNayatani95 computes the Nayatani (1995) model for xyz (0..100)
// under the white xyzn, with background luminance factor yo, adapting
// illuminance eo and normalising illuminance eor in lux.
func XYZToNayatani95(xyz, xyzn Vec3, yo, eo, eor float64) Nayatani95 {
	const noise = 1
	lor := yo * eor / (100 * math.Pi)
	w := XYZToXy(xyzn)
	xi := (0.48105*w[0] + 0.78841*w[1] - 0.08081) / w[1]
	eta := (-0.27200*w[0] + 1.11962*w[1] + 0.04570) / w[1]
	zeta := 0.91822 * (1 - w[0] - w[1]) / w[1]

	lo := yo * eo / (100 * math.Pi)
	br, bg, bb := nayataniBeta1(lo*xi), nayataniBeta1(lo*eta), nayataniBeta2(lo*zeta)
	bl := nayataniBeta1(lor)

	rgb := nayataniXYZToRGB.Apply(xyz)
	er, eg := 1.0, 1.0
	if rgb[0] >= 20*xi {
		er = 1.758
	}
	if rgb[1] >= 20*eta {
		eg = 1.758
	}
	lr := math.Log10((rgb[0] + noise) / (20*xi + noise))
	lg := math.Log10((rgb[1] + noise) / (20*eta + noise))
	lb := math.Log10((rgb[2] + noise) / (20*zeta + noise))

	q := (2.0/3*br*er*lr + 1.0/3*bg*eg*lg) * 41.69 / bl
	t := br*lr - 12.0/11*bg*lg + 1.0/11*bb*lb
	p := 1.0/9*br*lr + 1.0/9*bg*lg - 2.0/9*bb*lb

	bright := 50/bl*(2.0/3*br+1.0/3*bg) + q
	brw := (2.0/3*br*1.758*math.Log10((100*xi+noise)/(20*xi+noise)) +
		1.0/3*bg*1.758*math.Log10((100*eta+noise)/(20*eta+noise))) * 41.69 / bl
	brw += 50 / bl * (2.0/3*br + 1.0/3*bg)

	lp := q + 50
	theta := math.Mod(math.Atan2(p, t)+2*math.Pi, 2*math.Pi)
	es := nayataniStrength(theta)
	s := math.Hypot(488.93/bl*es*t, 488.93/bl*es*p)
	c := spow(lp/50, 0.7) * s
	return Nayatani95{
		Appearance: Appearance{
			J: lp, C: c, H: degrees(theta), S: s, Q: bright, M: c * brw / 100,
			HQ: math.NaN(), HC: math.NaN(),
		},
		LN: 100 * bright / brw,
	}
}

// ZCAM holds the Safdar et al. (2021) correlates, with vividness,
// blackness and whiteness after the usual eight.
type ZCAM struct {
	Appearance
	V, K, W float64
}

// Slice returns J, C, h, s, Q, M, H, HC, V, K and W.
func (z ZCAM) Slice() []float64 {
	return append(z.Appearance.Slice(), z.V, z.K, z.W)
}

// ZCAM reference viewing conditions.
const (
	ZCAMLA = 264.0
	ZCAMYb = 100.0
)

var zcamHues = hueData{
	h: [5]float64{33.44, 89.29, 146.30, 238.36, 393.44},
	e: [5]float64{0.68, 0.64, 1.52, 0.77, 0.68},
	q: [5]float64{0.0, 100.0, 200.0, 300.0, 400.0},
}

// XYZToZCAM computes ZCAM for xyz under the white xyzw, both on the same
// absolute scale, with adapting luminance la, background luminance yb and
// the surround's c as F_s.
func XYZToZCAM(xyz, xyzw Vec3, la, yb float64, sr Surround) ZCAM {
	yw := xyzw[1]
	d := sr.F * (1 - (1/3.6)*math.Exp((-la-42)/92))

	// Zhai and Luo (2018) two-step CAT02 to D65 with a unit D65 white
	rgb := matCAT02.Apply(xyz)
	rgbwb := matCAT02.Apply(xyzw)
	rgbwd := matCAT02.Apply(MustChromaticity(CIE1931, "D65").XYZ())
	rgbwo := matCAT02.Apply(Vec3{1, 1, 1})
	var adapted Vec3
	for i := range adapted {
		db := d*yw*rgbwo[i]/rgbwb[i] + 1 - d
		dd := d*rgbwo[i]/rgbwd[i] + 1 - d
		adapted[i] = db / dd * rgb[i]
	}
	xyzD65 := matCAT02.Inverse().Apply(adapted)

	fb := math.Sqrt(yb / yw)
	fl := 0.171 * spow(la, 1.0/3) * (1 - math.Exp(-48.0/9*la))
	fs := sr.C

	iz := XYZToIzazbzSafdar2021(xyzD65)
	izw := XYZToIzazbzSafdar2021(xyzw)
	h := hueDegrees(iz[2], iz[1])
	ez := 1.015 + math.Cos(radians(89.038+h))

	qp := 1.6 * fs / math.Pow(fb, 0.12)
	qm := math.Pow(fs, 2.2) * math.Sqrt(fb) * spow(fl, 0.2)
	q := 2700 * spow(iz[0], qp) * qm
	qw := 2700 * spow(izw[0], qp) * qm
	j := 100 * q / qw
	m := 100 * math.Pow(iz[1]*iz[1]+iz[2]*iz[2], 0.37) *
		spow(ez, 0.068) * spow(fl, 0.2) / (math.Pow(fb, 0.1) * spow(izw[0], 0.78))
	c := 100 * m / qw
	s := 100 * spow(fl, 0.6) * math.Sqrt(sdiv(m, q))

	return ZCAM{
		Appearance: Appearance{J: j, C: c, H: h, S: s, Q: q, M: m, HQ: zcamHues.quadrature(h), HC: math.NaN()},
		V:          math.Sqrt((j-58)*(j-58) + 3.4*c*c),
		K:          100 - 0.8*math.Sqrt(j*j+8*c*c),
		W:          100 - math.Hypot(100-j, c),
	}
}
