package convert

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mmuldo/colorconv/colorimetry"
	"github.com/mmuldo/colorconv/result"
)

// prepareRGB decodes the input to linear RGB and records its renditions in
// every RGB space. It returns false when the document was failed.
func (r *run) prepareRGB() bool {
	s, e := colorimetry.SpaceByName(r.opts.InputSpace)
	if e != nil {
		r.log.Warn("input colorspace", zap.Error(e))
		r.doc.Fail("RGB color space lookup failure")
		return false
	}
	r.space = s
	encoded := colorimetry.Vec3(r.color.Values)
	r.linear = s.DecodeRGB(encoded)

	r.rgbToRGB()
	r.deviceModels(encoded, s, result.Key{Illuminant: s.WhitepointName})
	return true
}

// cats returns the transforms to fan out over, a single empty one when
// adaptation is disabled.
func (r *run) cats() []string {
	if len(r.opts.Cats) == 0 {
		return []string{""}
	}
	return r.opts.Cats
}

func (r *run) rgbToRGB() {
	for _, out := range colorimetry.Spaces {
		if out.Whitepoint == r.space.Whitepoint || len(r.opts.Cats) == 0 {
			rgb, e := colorimetry.RGBToRGB(r.linear, r.space, out, "")
			if e != nil {
				r.log.Warn("rgb to rgb", zap.String("space", out.Name), zap.Error(e))
				continue
			}
			r.doc.Record(out.Name, r.denormalize(out.EncodeRGB(rgb)), result.Key{Illuminant: out.WhitepointName})
			continue
		}
		for _, cat := range r.opts.Cats {
			rgb, e := colorimetry.RGBToRGB(r.linear, r.space, out, cat)
			if e != nil {
				r.log.Warn("rgb to rgb", zap.String("space", out.Name), zap.Error(e))
				continue
			}
			r.doc.Record(out.Name, r.denormalize(out.EncodeRGB(rgb)), result.Key{Illuminant: out.WhitepointName, Cat: cat})
		}
	}
}

// denormalize scales encoded RGB back to the input bit depth.
func (r *run) denormalize(rgb colorimetry.Vec3) []float64 {
	return rgb.Scale(r.color.Factor).Round(3).Slice()
}

// xyzToRGB renders xyz, relative to ill, in every RGB space whose template
// applies to ill. Device models are derived from each rendition under the
// 2 degree observer.
func (r *run) xyzToRGB(xyz colorimetry.Vec3, o *colorimetry.Observer, ill string, illXY colorimetry.XY, k result.Key) {
	illXYZ := illXY.XYZ()
	for _, s := range colorimetry.Spaces {
		t := r.cat.Get(s.Name)
		if t == nil || !t.AppliesTo(ill) {
			continue
		}

		adapted := xyz
		if illXY != s.Whitepoint {
			adapted = colorimetry.CMCCAT2000(xyz, illXYZ, s.Whitepoint.XYZ(), 200, 200)
		}
		linear, e := colorimetry.XYZToRGB(adapted, s.Whitepoint, s, "")
		if e != nil {
			r.log.Warn("xyz to rgb", zap.String("space", s.Name), zap.String("illuminant", ill), zap.Error(e))
			continue
		}
		encoded := s.EncodeRGB(linear)
		r.doc.Record(s.Name, r.denormalize(encoded), k)

		if o.Name == colorimetry.CIE1931 {
			r.deviceModels(encoded, s, result.Key{Illuminant: ill})
		}
	}
}

// deviceModels records the models computed straight from encoded RGB.
func (r *run) deviceModels(rgb colorimetry.Vec3, s *colorimetry.RGBSpace, k result.Key) {
	cmy := colorimetry.RGBToCMY(rgb)
	cmyk := colorimetry.CMYToCMYK(cmy)
	cmy = cmy.Round(2)
	hsl := colorimetry.RGBToHSL(rgb)
	hsv := colorimetry.RGBToHSV(rgb)
	hwb := colorimetry.RGBToHWB(rgb)

	hslDenorm := percent(hsl)
	hwbDenorm := percent(hwb)

	r.doc.Record("cmy", cmy.Scale(100).Round(3).Slice(), k)
	r.doc.Record("cmyk", round4(cmyk, 2, 100), k)
	r.doc.Record("hcl", colorimetry.RGBToHCL(rgb).Round(6).Slice(), k)
	r.doc.Record("hsl", hslDenorm.Slice(), k)
	r.doc.Record("hsl_css_color", fmt.Sprintf("hsl(%sdeg %s%% %s%%);",
		pyFloat(hslDenorm[0]), pyFloat(hslDenorm[1]), pyFloat(hslDenorm[2])), k)
	r.doc.Record("hsv", percent(hsv).Slice(), k)
	r.doc.Record("hwb", hwbDenorm.Slice(), k)
	r.doc.Record("hwb_css_color", fmt.Sprintf("hwb(%sdeg %s%% %s%%);",
		pyFloat(hwbDenorm[0]), pyFloat(hwbDenorm[1]), pyFloat(hwbDenorm[2])), k)
	r.doc.Record("ihls", colorimetry.RGBToIHLS(rgb).Round(6).Slice(), k)
	r.doc.Record("prismatic", round4(colorimetry.RGBToPrismatic(rgb), 4, 1), k)
	r.doc.Record("rgbluminance", colorimetry.Round(colorimetry.RGBLuminance(rgb, s), 4), k)
	r.doc.Record("ycbcr", colorimetry.RGBToYCbCr(rgb).Round(3).Slice(), k)
	r.doc.Record("yccbccrc", colorimetry.RGBToYcCbcCrc(rgb).Round(2).Slice(), k)
	r.doc.Record("ycocg", colorimetry.RGBToYCoCg(rgb).Round(4).Slice(), k)
}

// percent scales a hue/fraction/fraction triple to degrees and percents.
func percent(v colorimetry.Vec3) colorimetry.Vec3 {
	return colorimetry.Vec3{v[0], v[1] * 100, v[2] * 100}.Round(3)
}

// round4 rounds v to n decimals, then scales it by k.
func round4(v [4]float64, n int, k float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = colorimetry.Round(colorimetry.Round(x, n)*k, n+1)
	}
	return out
}
