package colorimetry

import "math"

var (
	iptXYZToLMS = Mat3{
		{0.4002, 0.7075, -0.0807},
		{-0.2280, 1.1500, 0.0612},
		{0.0000, 0.0000, 0.9184},
	}
	iptLMSToIPT = Mat3{
		{0.4000, 0.4000, 0.2000},
		{4.4550, -4.8510, 0.3960},
		{0.8056, 0.3572, -1.1628},
	}
)

// XYZToIPT converts D65 relative XYZ (0..1) to IPT.
func XYZToIPT(xyz Vec3) Vec3 {
	lms := iptXYZToLMS.Apply(xyz)
	for i := range lms {
		lms[i] = spow(lms[i], 0.43)
	}
	return iptLMSToIPT.Apply(lms)
}

// IPTHue returns the IPT hue angle in degrees.
func IPTHue(ipt Vec3) float64 {
	return hueDegrees(ipt[2], ipt[1])
}

// XYZToIab converts XYZ with an LMS matrix, a compression exponent and an
// opponent matrix. With the IPT matrices and 0.43 it is IPT on unadapted
// input.
func XYZToIab(xyz Vec3, toLMS Mat3, exponent float64, toIab Mat3) Vec3 {
	lms := toLMS.Apply(xyz)
	for i := range lms {
		lms[i] = math.Pow(lms[i], exponent)
	}
	return toIab.Apply(lms)
}

// XYZToIabDefault applies XYZToIab with the Ebner and Fairchild matrices.
func XYZToIabDefault(xyz Vec3) Vec3 {
	return XYZToIab(xyz, iptXYZToLMS, 0.43, iptLMSToIPT)
}

var (
	icacbXYZToLMS = Mat3{
		{0.37613, 0.70431, -0.05675},
		{-0.21649, 1.15098, 0.05965},
		{0.02567, 0.16523, 0.64936},
	}
	icacbLMSToICaCb = Mat3{
		{0.4949, 0.5037, 0.0015},
		{4.2854, -4.5462, 0.2609},
		{0.3605, 1.1499, -1.5105},
	}
)

// XYZToICaCb converts D65 relative XYZ to the Froehlich (2017) ICaCb space.
func XYZToICaCb(xyz Vec3) Vec3 {
	lms := icacbXYZToLMS.Apply(xyz)
	for i := range lms {
		lms[i] = ST2084Encode(lms[i], 10000)
	}
	return icacbLMSToICaCb.Apply(lms)
}

// ICtCp method names.
const (
	ICtCp2100_1HLG = "ITU-R BT.2100-1 HLG"
	ICtCp2100_1PQ  = "ITU-R BT.2100-1 PQ"
	ICtCp2100_2HLG = "ITU-R BT.2100-2 HLG"
	ICtCp2100_2PQ  = "ITU-R BT.2100-2 PQ"
)

var (
	ictcpRGBToLMS = Mat3{
		{1688.0 / 4096, 2146.0 / 4096, 262.0 / 4096},
		{683.0 / 4096, 2951.0 / 4096, 462.0 / 4096},
		{99.0 / 4096, 309.0 / 4096, 3688.0 / 4096},
	}
	ictcpLMSToICtCp = Mat3{
		{2048.0 / 4096, 2048.0 / 4096, 0},
		{6610.0 / 4096, -13613.0 / 4096, 7003.0 / 4096},
		{17933.0 / 4096, -17390.0 / 4096, -543.0 / 4096},
	}
	ictcpLMSToICtCpHLG2 = Mat3{
		{2048.0 / 4096, 2048.0 / 4096, 0},
		{3625.0 / 4096, -7465.0 / 4096, 3840.0 / 4096},
		{9500.0 / 4096, -9212.0 / 4096, -288.0 / 4096},
	}
)

// RGBToICtCp converts linear BT.2020 RGB to ICtCp with the given method.
func RGBToICtCp(rgb Vec3, method string) Vec3 {
	lms := ictcpRGBToLMS.Apply(rgb)
	hlg := method == ICtCp2100_1HLG || method == ICtCp2100_2HLG
	for i := range lms {
		if hlg {
			lms[i] = HLGEncode(lms[i])
		} else {
			lms[i] = ST2084Encode(lms[i], 10000)
		}
	}
	if method == ICtCp2100_2HLG {
		return ictcpLMSToICtCpHLG2.Apply(lms)
	}
	return ictcpLMSToICtCp.Apply(lms)
}

// XYZToICtCp converts XYZ relative to illuminant to ICtCp via BT.2020.
func XYZToICtCp(xyz Vec3, illuminant XY, cat, method string) (Vec3, error) {
	s, e := SpaceByName("ITU-R BT.2020")
	if e != nil {
		return Vec3{}, e
	}
	rgb, e := XYZToRGB(xyz, illuminant, s, cat)
	if e != nil {
		return Vec3{}, e
	}
	return RGBToICtCp(rgb, method), nil
}

const (
	jzB  = 1.15
	jzG  = 0.66
	jzD  = -0.56
	jzD0 = 1.6295499532821566e-11
	jzP  = 1.7 * 2523.0 / 32
)

var (
	jzXYZToLMS = Mat3{
		{0.41478972, 0.579999, 0.0146480},
		{-0.2015100, 1.120649, 0.0531008},
		{-0.0166008, 0.264800, 0.6684799},
	}
	jzLMSToIzazbz = Mat3{
		{0.5, 0.5, 0},
		{3.524000, -4.066708, 0.542708},
		{0.199076, 1.096799, -1.295875},
	}
)

func jzPQ(c float64) float64 {
	y := math.Max(c, 0) / 10000
	yp := math.Pow(y, pqM1)
	return math.Pow((pqC1+pqC2*yp)/(1+pqC3*yp), jzP)
}

func jzCones(xyz Vec3) Vec3 {
	x := jzB*xyz[0] - (jzB-1)*xyz[2]
	y := jzG*xyz[1] - (jzG-1)*xyz[0]
	lms := jzXYZToLMS.Apply(Vec3{x, y, xyz[2]})
	for i := range lms {
		lms[i] = jzPQ(lms[i])
	}
	return lms
}

// XYZToIzazbz converts D65 relative XYZ to Izazbz (Safdar 2017).
func XYZToIzazbz(xyz Vec3) Vec3 {
	return jzLMSToIzazbz.Apply(jzCones(xyz))
}

// zcamEpsilon offsets I_z so that black maps to zero.
const zcamEpsilon = 3.7035226210190005e-11

// XYZToIzazbzSafdar2021 converts absolute D65 XYZ to the Izazbz variant of
// ZCAM, where I_z is the M' cone signal.
func XYZToIzazbzSafdar2021(xyz Vec3) Vec3 {
	lms := jzCones(xyz)
	iz := jzLMSToIzazbz.Apply(lms)
	iz[0] = lms[1] - zcamEpsilon
	return iz
}

// XYZToJzazbz converts D65 relative XYZ to Jzazbz (Safdar 2017).
func XYZToJzazbz(xyz Vec3) Vec3 {
	iz := XYZToIzazbz(xyz)
	jz := (1+jzD)*iz[0]/(1+jzD*iz[0]) - jzD0
	return Vec3{jz, iz[1], iz[2]}
}

var (
	okXYZToLMS = Mat3{
		{0.8189330101, 0.3618667424, -0.1288597137},
		{0.0329845436, 0.9293118715, 0.0361456387},
		{0.0482003018, 0.2643662691, 0.6338517070},
	}
	okLMSToLab = Mat3{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
)

// XYZToOklab converts D65 relative XYZ to Oklab.
func XYZToOklab(xyz Vec3) Vec3 {
	lms := okXYZToLMS.Apply(xyz)
	for i := range lms {
		lms[i] = math.Cbrt(lms[i])
	}
	return okLMSToLab.Apply(lms)
}

var (
	igXYZToLMS = Mat3{
		{2.968, 2.741, -0.649},
		{1.237, 5.969, -0.173},
		{-0.318, 0.387, 2.311},
	}
	igLMSToIgPgTg = Mat3{
		{0.117, 1.464, 0.130},
		{8.285, -8.361, 21.400},
		{-1.208, 2.412, -36.530},
	}
	igSemiSaturation = Vec3{18.36, 21.46, 19435}
)

// XYZToIgPgTg converts D65 relative XYZ to the Hellwig and Fairchild (2020)
// IgPgTg space.
func XYZToIgPgTg(xyz Vec3) Vec3 {
	lms := igXYZToLMS.Apply(xyz)
	for i := range lms {
		lms[i] = spow(lms[i]/igSemiSaturation[i], 0.427)
	}
	return igLMSToIgPgTg.Apply(lms)
}

var (
	ragooXYZToLMS = Mat3{
		{0.4321, 0.6906, -0.0930},
		{-0.1793, 1.1458, 0.0226},
		{0.0631, 0.1532, 0.7226},
	}
	ragooLMSToIPT = Mat3{
		{0.3037, 0.6688, 0.0276},
		{3.9247, -4.7339, 0.8093},
		{1.5932, -0.5205, -1.0727},
	}
)

// XYZToIPTRagoo2021 converts D65 relative XYZ to the Ragoo and Farup (2021)
// optimised IPT.
func XYZToIPTRagoo2021(xyz Vec3) Vec3 {
	lms := ragooXYZToLMS.Apply(xyz)
	for i := range lms {
		lms[i] = spow(lms[i], 0.4071)
	}
	return ragooLMSToIPT.Apply(lms)
}

var yrgXYZToLMS = Mat3{
	{0.257085, 0.859943, -0.031061},
	{-0.394427, 1.175800, 0.106423},
	{0.064856, -0.076250, 0.559067},
}

// XYZToYrg converts XYZ to the Kirk (2019) Yrg space: luminance and the
// MacLeod-Boynton like r and g chromaticities.
func XYZToYrg(xyz Vec3) Vec3 {
	lms := yrgXYZToLMS.Apply(xyz)
	y := 0.68990272*lms[0] + 0.34832189*lms[1]
	sum := lms[0] + lms[1] + lms[2]
	l, m := sdiv(lms[0], sum), sdiv(lms[1], sum)
	return Vec3{y, 1.0671*l - 0.6873*m + 0.02062, -0.0362*l + 1.7182*m - 0.05155}
}
