package convert

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/mmuldo/colorconv/colorimetry"
	"github.com/mmuldo/colorconv/input"
	"github.com/mmuldo/colorconv/result"
)

// sample is the input color as XYZ relative to one illuminant, with its D65
// and C renditions.
type sample struct {
	xyz, d65, c colorimetry.Vec3
	cat         string
}

// white holds the illuminant geometry one observer/illuminant pass needs.
type white struct {
	o      *colorimetry.Observer
	name   string
	xy     colorimetry.XY
	xyz    colorimetry.Vec3
	d65XY  colorimetry.XY
	cXY    colorimetry.XY
	d65XYZ colorimetry.Vec3
	cXYZ   colorimetry.Vec3
}

func newWhite(o *colorimetry.Observer, ill string) (white, bool) {
	xy, ok := colorimetry.Chromaticity(o.Name, ill)
	if !ok {
		return white{}, false
	}
	w := white{
		o:     o,
		name:  ill,
		xy:    xy,
		xyz:   xy.XYZ(),
		d65XY: colorimetry.MustChromaticity(o.Name, "D65"),
		cXY:   colorimetry.MustChromaticity(o.Name, "C"),
	}
	w.d65XYZ, w.cXYZ = w.d65XY.XYZ(), w.cXY.XYZ()
	return w, true
}

// withXYZ computes every XYZ derived model for observer o and illuminant
// ill. Unknown combinations are skipped.
func (r *run) withXYZ(o *colorimetry.Observer, ill string) error {
	if r.color.Model == input.Spectrum {
		if _, ok := colorimetry.IlluminantSPD(ill); !ok {
			return nil
		}
	}
	w, ok := newWhite(o, ill)
	if !ok {
		return nil
	}

	samples, e := r.samples(w)
	if e != nil {
		return e
	}
	for _, s := range samples {
		k := result.Key{Observer: o.Name, Illuminant: ill, Cat: s.cat}
		r.derived(s, w, k)
		if r.color.Model != input.RGB {
			r.xyzToRGB(s.xyz, o, ill, w.xy, k)
		}
	}
	return nil
}

// samples returns the input as XYZ under w, one sample per CAT for RGB
// input.
func (r *run) samples(w white) ([]sample, error) {
	v := colorimetry.Vec3(r.color.Values)
	switch r.color.Model {
	case input.CIELAB, input.CIELCHab:
		lab := r.workingLab()
		return []sample{{
			xyz: colorimetry.LabToXYZ(lab, w.xy),
			d65: colorimetry.LabToXYZ(lab, w.d65XY),
			c:   colorimetry.LabToXYZ(lab, w.cXY),
		}}, nil
	case input.CIELUV, input.CIELCHuv:
		luv := v
		if r.color.Model == input.CIELCHuv {
			luv = colorimetry.FromLCH(v)
		}
		return []sample{{
			xyz: colorimetry.LuvToXYZ(luv, w.xy),
			d65: colorimetry.LuvToXYZ(luv, w.d65XY),
			c:   colorimetry.LuvToXYZ(luv, w.cXY),
		}}, nil
	case input.CIEXYZ:
		return r.adapted(v, w)
	case input.Spectrum:
		spd, ok := colorimetry.IlluminantSPD(w.name)
		if !ok {
			return nil, fmt.Errorf("%w: no distribution for %q", colorimetry.ErrUnknownIlluminant, w.name)
		}
		return r.adapted(r.sd.ToXYZ(w.o, spd), w)
	case input.Wavelength:
		xyz := w.o.WavelengthToXYZ(r.color.Wave)
		return []sample{{xyz: xyz, d65: xyz, c: xyz}}, nil
	case input.RGB:
		var out []sample
		for _, cat := range r.cats() {
			xyz, e := colorimetry.RGBToXYZ(r.linear, r.space, w.xy, cat)
			if e != nil {
				return nil, e
			}
			d65, e := colorimetry.RGBToXYZ(r.linear, r.space, w.d65XY, cat)
			if e != nil {
				return nil, e
			}
			c, e := colorimetry.RGBToXYZ(r.linear, r.space, w.cXY, cat)
			if e != nil {
				return nil, e
			}
			out = append(out, sample{xyz: xyz, d65: d65, c: c, cat: cat})
		}
		return out, nil
	}
	return nil, nil
}

// adapted pairs xyz with its Bradford adaptations from the illuminant to
// D65 and C.
func (r *run) adapted(xyz colorimetry.Vec3, w white) ([]sample, error) {
	d65, e := colorimetry.VonKries(xyz, w.xyz, w.d65XYZ, colorimetry.CATBradford)
	if e != nil {
		return nil, e
	}
	c, e := colorimetry.VonKries(xyz, w.xyz, w.cXYZ, colorimetry.CATBradford)
	if e != nil {
		return nil, e
	}
	return []sample{{xyz: xyz, d65: d65, c: c}}, nil
}

// workingLab is the input Lab for Lab and LCHab input.
func (r *run) workingLab() colorimetry.Vec3 {
	v := colorimetry.Vec3(r.color.Values)
	if r.color.Model == input.CIELCHab {
		return colorimetry.FromLCH(v)
	}
	return v
}

// derived records every model computed from one XYZ sample.
func (r *run) derived(s sample, w white, k result.Key) {
	d := r.doc
	xyz := s.xyz
	xyz100 := xyz.Scale(100)
	ill100 := w.xyz.Scale(100)
	d65Ref := colorimetry.MustChromaticity(colorimetry.CIE1931, "D65")

	// CIELAB and CIELUV, with the input itself taking the place of the
	// computed value for Lab and Luv family input
	var lab, lch, luv, lchuv colorimetry.Vec3
	v := colorimetry.Vec3(r.color.Values)
	switch r.color.Model {
	case input.CIELAB:
		lab = v
		d.Record("cielab", colorimetry.XYZToLab(xyz, d65Ref).Round(4).Slice(), k)
		lch = colorimetry.ToLCH(lab).Round(4)
	case input.CIELCHab:
		lab = r.workingLab()
		d.Record("cielab", lab.Round(4).Slice(), k)
		lch = colorimetry.ToLCH(lab).Round(4)
	default:
		lab = colorimetry.XYZToLab(xyz, w.xy).Round(4)
		d.Record("cielab", lab.Slice(), k)
		lch = colorimetry.ToLCH(lab).Round(4)
	}
	d.Record("cielchab", lch.Slice(), k)

	switch r.color.Model {
	case input.CIELUV:
		luv = colorimetry.XYZToLuv(xyz, d65Ref)
		lchuv = colorimetry.ToLCH(v).Round(4)
	case input.CIELCHuv:
		luv = colorimetry.XYZToLuv(xyz, d65Ref)
		lchuv = colorimetry.ToLCH(luv).Round(4)
	default:
		luv = colorimetry.XYZToLuv(xyz, w.xy)
		lchuv = colorimetry.ToLCH(luv).Round(6)
	}
	d.Record("cieluv", luv.Round(4).Slice(), k)
	d.Record("cielchuv", lchuv.Slice(), k)

	xy := colorimetry.XYZToXy(xyz)
	u, vv := colorimetry.XyToLuvUV(xy)
	d.Record("cieluvuv", []float64{colorimetry.Round(u, 6), colorimetry.Round(vv, 6)}, k)

	// appearance models
	vc := r.opts.Viewing
	cam02 := colorimetry.XYZToCIECAM02(xyz100, ill100, vc)
	cam16 := colorimetry.XYZToCAM16(xyz100, ill100, vc)
	ciecam16 := colorimetry.XYZToCIECAM16(xyz100, ill100, vc)
	hellwig := colorimetry.XYZToHellwig2022(xyz100, ill100, vc)
	rlab := colorimetry.XYZToRLAB(xyz100, ill100, colorimetry.RLABYn, colorimetry.RLABSigmaAverage, colorimetry.RLABDHardCopy)

	d.Record("ciecam02", rounded(cam02.Slice(), 4), k)
	d.Record("cam16", rounded(cam16.Slice(), 4), k)
	d.Record("ciecam16", rounded(ciecam16.Slice(), 4), k)
	d.Record("hellwig2022", rounded(hellwig.Slice(), 4), k)
	d.Record("rlab", rounded(rlab.Slice(), 4), k)

	d.Record("hunt", rounded(colorimetry.XYZToHunt(xyz100, ill100, ill100, vc.LA, colorimetry.HuntNormalScenes, colorimetry.HuntReferenceCCT).Slice(), 4), k)
	d.Record("atd95", rounded(colorimetry.XYZToATD95(xyz100, ill100, vc.LA, 0, 50).Slice(), 4), k)
	d.Record("kim2009", rounded(colorimetry.XYZToKim2009(xyz100, ill100, vc.LA, colorimetry.KimCRT, vc.Surround).Slice(), 4), k)
	d.Record("llab", rounded(colorimetry.XYZToLLAB(xyz100, ill100, vc.Yb, vc.LA, colorimetry.LLABAverageSmall).Slice(), 4), k)
	d.Record("nayatani95", rounded(colorimetry.XYZToNayatani95(xyz100, ill100, vc.Yb,
		colorimetry.NayataniIlluminance, colorimetry.NayataniNormalisingIlluminance).Slice(), 4), k)
	d.Record("zcam", rounded(colorimetry.XYZToZCAM(xyz100, ill100, colorimetry.ZCAMLA, colorimetry.ZCAMYb, vc.Surround).Slice(), 4), k)

	d.Record("jmhciecam02", cam02.JMh().Round(4).Slice(), k)
	d.Record("jmhcam16", cam16.JMh().Round(4).Slice(), k)
	d.Record("jmhciecam16", ciecam16.JMh().Round(4).Slice(), k)
	d.Record("jmhhellwig2022", hellwig.JMh().Round(4).Slice(), k)
	for _, m := range []struct {
		name string
		k    colorimetry.UCSCoefficients
	}{
		{"lcd", colorimetry.LCD},
		{"scd", colorimetry.SCD},
		{"ucs", colorimetry.UCS},
	} {
		d.Record("cam02"+m.name, colorimetry.JMhToUCS(cam02.JMh(), m.k).Round(4).Slice(), k)
		d.Record("cam16"+m.name, colorimetry.JMhToUCS(cam16.JMh(), m.k).Round(4).Slice(), k)
	}

	// opponent spaces on D65 adapted XYZ
	ipt := colorimetry.XYZToIPT(s.d65)
	oklab := colorimetry.XYZToOklab(s.d65).Round(4)
	d.Record("icacb", colorimetry.XYZToICaCb(s.d65).Round(4).Slice(), k)
	d.Record("ipt", ipt.Round(4).Slice(), k)
	d.Record("ipt_hue", colorimetry.Round(colorimetry.IPTHue(ipt), 4), k)
	d.Record("jzazbz", colorimetry.XYZToJzazbz(s.d65).Round(5).Slice(), k)
	d.Record("izazbz", colorimetry.XYZToIzazbz(s.d65).Round(5).Slice(), k)
	d.Record("oklab", oklab.Slice(), k)
	d.Record("hdript", colorimetry.XYZToHDRIPT(s.d65, colorimetry.HDRSurround, colorimetry.HDRAbsoluteY).Round(4).Slice(), k)
	d.Record("igpgtg", colorimetry.XYZToIgPgTg(s.d65).Round(4).Slice(), k)
	d.Record("iptragoo", colorimetry.XYZToIPTRagoo2021(s.d65).Round(4).Slice(), k)
	d.Record("hdrcielab", colorimetry.XYZToHDRCIELab(xyz, w.xy, colorimetry.HDRSurround, colorimetry.HDRAbsoluteY).Round(4).Slice(), k)

	ucs := colorimetry.XYZToUCS(xyz)
	u60, v60 := colorimetry.UCSToUV(ucs)
	d.Record("osaucs", colorimetry.XYZToOSAUCS(xyz).Round(4).Slice(), k)
	d.Record("cieucs", ucs.Round(4).Slice(), k)
	d.Record("cieucsuv", []float64{colorimetry.Round(u60, 4), colorimetry.Round(v60, 4)}, k)
	d.Record("cieuvw", colorimetry.XYZToUVW(xyz100, w.xy).Round(6).Slice(), k)
	for _, m := range []struct{ key, method string }{
		{"din99", colorimetry.DIN99},
		{"din99b", colorimetry.DIN99b},
		{"din99c", colorimetry.DIN99c},
		{"din99d", colorimetry.DIN99d},
	} {
		d.Record(m.key, colorimetry.XYZToDIN99(xyz, w.xy, m.method).Round(4).Slice(), k)
	}

	kab := colorimetry.HunterKab(ill100)
	d.Record("hunterkakb", []float64{colorimetry.Round(kab[0], 4), colorimetry.Round(kab[1], 4)}, k)
	d.Record("hunterlab", colorimetry.XYZToHunterLab(xyz100, colorimetry.HunterD65XYZ, colorimetry.HunterD65Kab).Round(4).Slice(), k)
	d.Record("hunterrdab", colorimetry.XYZToHunterRdab(xyz100, colorimetry.HunterD65XYZ, colorimetry.HunterD65Kab).Round(4).Slice(), k)
	d.Record("iab", colorimetry.XYZToIabDefault(xyz).Round(4).Slice(), k)
	for _, m := range []struct{ key, method string }{
		{"ictcp_2100_1_hlg", colorimetry.ICtCp2100_1HLG},
		{"ictcp_2100_1_pq", colorimetry.ICtCp2100_1PQ},
		{"ictcp_2100_2_hlg", colorimetry.ICtCp2100_2HLG},
		{"ictcp_2100_2_pq", colorimetry.ICtCp2100_2PQ},
	} {
		ictcp, e := colorimetry.XYZToICtCp(xyz, w.xy, s.cat, m.method)
		if e != nil {
			r.log.Warn("ictcp", zap.String("method", m.method), zap.Error(e))
			continue
		}
		d.Record(m.key, ictcp.Round(4).Slice(), k)
	}
	d.Record("prolab", colorimetry.XYZToProLab(xyz, w.xy).Round(4).Slice(), k)

	// wavelength and purity
	d.Record("clrpurity", colorimetry.Round(w.o.ColorimetricPurity(xy, w.xy), 5), k)
	d.Record("expurity", colorimetry.Round(w.o.ExcitationPurity(xy, w.xy), 5), k)
	d.Record("compwave", w.o.ComplementaryWavelength(xy, w.xy).Slice(), k)
	d.Record("domwave", w.o.DominantWavelength(xy, w.xy).Slice(), k)

	// luminance based
	luminance := colorimetry.Luminance(lab[0])
	d.Record("luminance", colorimetry.Round(luminance, 4), k)
	d.Record("lightness", colorimetry.Round(colorimetry.LightnessAbebe2017(luminance), 4), k)
	cct, duv := colorimetry.UVToCCT(u60, v60)
	d.Record("cct", colorimetry.Round(cct, 2), k)
	d.Record("duv", colorimetry.Round(duv, 6), k)
	d.Record("mired", colorimetry.Round(1e6/cct, 2), k)
	d.Record("munsell_value", colorimetry.Round(colorimetry.MunsellValueASTMD1535(luminance), 6), k)

	// whiteness and yellowness
	d.Record("yellowness_d1925", colorimetry.Round(colorimetry.YellownessASTMD1925(s.c.Scale(100)), 4), k)
	d.Record("yellowness_e313", colorimetry.Round(colorimetry.YellownessASTME313(xyz100, w.o.Name), 4), k)
	wi, ti := colorimetry.WhitenessCIE2004(xy, xyz100[1], w.xy, w.o.Name)
	d.Record("whiteness_cie", colorimetry.Round(wi, 4), k)
	d.Record("tintindex_cie", colorimetry.Round(ti, 4), k)
	d.Record("whiteness_e313", colorimetry.Round(colorimetry.WhitenessASTME313(xyz100), 4), k)
	d.Record("whiteness_berger", colorimetry.Round(colorimetry.WhitenessBerger1959(xyz100, ill100), 4), k)
	d.Record("whiteness_stensby", colorimetry.Round(colorimetry.WhitenessStensby1968(lab), 4), k)

	r.css(s, lab, lch, oklab, k)

	d.Record("ciexyz", xyz.Round(8).Slice(), k)
	d.Record("xy", []float64{colorimetry.Round(xy[0], 6), colorimetry.Round(xy[1], 6)}, k)
	d.Record("xyY", colorimetry.XYZToXyY(xyz).Round(6).Slice(), k)

	// gamut membership, observer independent or fixed to the 1931 observer
	d.Record("yrg", colorimetry.XYZToYrg(xyz).Slice(), result.Key{})
	d.Record("pointer", titleBool(colorimetry.IsWithinPointerGamut(colorimetry.XYZToXy(s.c))), result.Key{})
	if w.o.Name == colorimetry.CIE1931 && isMacAdamIlluminant(w.name) {
		in, e := colorimetry.IsWithinMacAdamLimits(colorimetry.XYZToXyY(xyz), w.name)
		if e != nil {
			r.log.Warn("macadam", zap.String("illuminant", w.name), zap.Error(e))
		} else {
			d.Record("macadam", titleBool(in), result.Key{Illuminant: w.name})
		}
	}

	if r.color.Model == input.Wavelength {
		d.Record("wavelength", r.color.Wave, result.Key{})
	} else {
		d.Record("wavelength", "", result.Key{})
	}
}

// rounded rounds every finite value to n decimals. Non-finite values are
// left for the document to replace.
func rounded(vs []float64, n int) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out[i] = v
			continue
		}
		out[i] = colorimetry.Round(v, n)
	}
	return out
}

// titleBool spells b as the yes/no models are documented: True or False.
func titleBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func isMacAdamIlluminant(ill string) bool {
	for _, m := range colorimetry.MacAdamIlluminants {
		if m == ill {
			return true
		}
	}
	return false
}
