package palette

import (
	"fmt"
	"sort"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
)

var (
	// for RGB-to-Lab conversion
	targetIlluminant = &chromath.IlluminantRefD50
	rgb2Xyz          = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		targetIlluminant,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	lab2Xyz = chromath.NewLabTransformer(targetIlluminant)
	klch    = &deltae.KLChDefault
)

// Named is a CSS named color with its Lab equivalent.
type Named struct {
	Name string
	Hex  string
	RGB  chromath.RGB
	Lab  chromath.Lab
}

// Match is a named color and its CIEDE2000 difference from a sample.
type Match struct {
	Named
	DeltaE float64
}

// Slice returns the record shape: name, hex and difference.
func (m Match) Slice() []interface{} {
	return []interface{}{m.Name, m.Hex, m.DeltaE}
}

type byDistance []Match

func (ms byDistance) Len() int           { return len(ms) }
func (ms byDistance) Less(i, j int) bool { return ms[i].DeltaE < ms[j].DeltaE }
func (ms byDistance) Swap(i, j int)      { ms[i], ms[j] = ms[j], ms[i] }

// Palette is a set of named colors to match samples against.
type Palette []Named

// CSS returns the CSS Color 4 named colors.
func CSS() Palette {
	p := make(Palette, len(cssNamed))
	for i, c := range cssNamed {
		rgb := chromath.RGB{float64(c.hex >> 16 & 0xff), float64(c.hex >> 8 & 0xff), float64(c.hex & 0xff)}
		p[i] = Named{
			Name: c.name,
			Hex:  fmt.Sprintf("#%06x", c.hex),
			RGB:  rgb,
			Lab:  RGB2Lab(rgb),
		}
	}
	return p
}

// Rank returns every color of the palette ordered by CIEDE2000 difference
// from rgb, given as encoded sRGB in 0..1. Equal differences keep palette
// order.
func (p Palette) Rank(rgb [3]float64) []Match {
	lab := RGB2Lab(chromath.RGB{rgb[0] * 255, rgb[1] * 255, rgb[2] * 255})
	ms := make([]Match, len(p))
	for i, n := range p {
		ms[i] = Match{Named: n, DeltaE: deltae.CIE2000(n.Lab, lab, klch)}
	}
	sort.Stable(byDistance(ms))
	return ms
}

// Nearest returns the palette color closest to rgb.
func (p Palette) Nearest(rgb [3]float64) (Match, error) {
	if len(p) == 0 {
		return Match{}, fmt.Errorf("empty palette")
	}
	return p.Rank(rgb)[0], nil
}

// RGB2Lab converts an 8 bit sRGB color to its D50 Lab equivalent.
func RGB2Lab(rgb chromath.RGB) chromath.Lab {
	xyz := rgb2Xyz.Convert(rgb)
	return lab2Xyz.Invert(xyz)
}
