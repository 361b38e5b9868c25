package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mmuldo/colorconv/catalog"
	"github.com/mmuldo/colorconv/colorimetry"
	"github.com/mmuldo/colorconv/result"
)

// css records the CSS Color 4 strings of a sample. lab, lch and oklab are
// already rounded.
func (r *run) css(s sample, lab, lch, oklab colorimetry.Vec3, k result.Key) {
	d65 := colorimetry.MustChromaticity(colorimetry.CIE1931, "D65")
	d50 := colorimetry.MustChromaticity(colorimetry.CIE1931, "D50")
	xyzD65 := colorimetry.LabToXYZ(lab, d65)
	xyzD50 := colorimetry.LabToXYZ(lab, d50)

	l := colorimetry.Round(lab[0], 4)
	a := clamp(colorimetry.Round(lab[1], 4), -125, 125)
	b := clamp(colorimetry.Round(lab[2], 4), -125, 125)
	r.doc.Record("cielab_css_color", fmt.Sprintf("lab(%s %s %s);", pyFloat(l), pyFloat(a), pyFloat(b)), k)
	r.doc.Record("cielchab_css_color", fmt.Sprintf("lch(%s);", spaced(lch.Round(4))), k)

	d65s := spaced(xyzD65.Round(4))
	r.doc.Record("ciexyz_d65_css_color", fmt.Sprintf("color(xyz-d65 %s);", d65s), k)
	r.doc.Record("ciexyz_css_color", fmt.Sprintf("color(xyz %s);", d65s), k)
	r.doc.Record("ciexyz_d50_css_color", fmt.Sprintf("color(xyz-d50 %s);", spaced(xyzD50.Round(4))), k)
	r.doc.Record("oklab_css_color", fmt.Sprintf("oklab(%s);", spaced(oklab)), k)

	for _, cs := range catalog.CSSSpaces {
		space, e := colorimetry.SpaceByName(cs.Space)
		if e != nil {
			r.log.Warn("css colorspace", zap.String("space", cs.Space), zap.Error(e))
			continue
		}
		src, ill := xyzD65, d65
		if space.WhitepointName == "D50" {
			src, ill = xyzD50, d50
		}
		linear, e := colorimetry.XYZToRGB(src, ill, space, s.cat)
		if e != nil {
			r.log.Warn("css colorspace", zap.String("space", cs.Space), zap.Error(e))
			continue
		}
		encoded := space.EncodeRGB(linear).Round(4)
		r.doc.Record(cs.Key, fmt.Sprintf("color(%s %s);", cs.Keyword, spaced(encoded)), k)

		if cs.Space != "sRGB" {
			continue
		}
		r.doc.Record("linear_srgb_css_color", fmt.Sprintf("color(srgb-linear %s);", spaced(linear.Round(3))), k)
		r.doc.Record("hexadecimal", colorimetry.RGBToHex(encoded), result.Key{})
		r.namedColor(encoded)
	}
}

// namedColor records the CSS named color closest to encoded sRGB.
func (r *run) namedColor(rgb colorimetry.Vec3) {
	var c [3]float64
	for i, v := range rgb {
		c[i] = clamp(v, 0, 1)
	}
	m, e := r.pal.Nearest(c)
	if e != nil {
		r.log.Warn("named color", zap.Error(e))
		return
	}
	m.DeltaE = colorimetry.Round(m.DeltaE, 4)
	r.doc.Record("css_named_color", m.Slice(), result.Key{})
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func spaced(v colorimetry.Vec3) string {
	s := make([]string, len(v))
	for i, x := range v {
		s[i] = pyFloat(x)
	}
	return strings.Join(s, " ")
}

// pyFloat formats x the way CSS consumers of the document expect: integral
// values keep a trailing ".0", very small and very large magnitudes switch
// to exponent notation.
func pyFloat(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	if ax := math.Abs(x); ax != 0 && (ax < 1e-4 || ax >= 1e16) {
		return strconv.FormatFloat(x, 'e', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
