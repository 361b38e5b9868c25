package image

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/esimov/colorquant"
	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
)

var (
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

// ColorVol represents an RGB color, its Lab equivalent, and the number of
// pixels it takes up in a given image.
type ColorVol struct {
	RGB   color.Color
	Lab   chromath.Lab
	Count int
}

// RGB8 returns the color's 8 bit components.
func (cv ColorVol) RGB8() [3]float64 {
	r, g, b, _ := cv.RGB.RGBA()
	return [3]float64{float64(byte(r >> 8)), float64(byte(g >> 8)), float64(byte(b >> 8))}
}

// ColorVolList ranks colors by prevalence, then by lightness.
type ColorVolList []ColorVol

func (cvl ColorVolList) Len() int { return len(cvl) }
func (cvl ColorVolList) Less(i, j int) bool {
	if cvl[i].Count != cvl[j].Count {
		return cvl[i].Count > cvl[j].Count
	}
	return cvl[i].Lab.L() < cvl[j].Lab.L()
}
func (cvl ColorVolList) Swap(i, j int) { cvl[i], cvl[j] = cvl[j], cvl[i] }

// Quantize reduces img to at most num colors.
func Quantize(img image.Image, num int) image.Image {
	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, o, num, false, true)
	return o
}

// GetColors returns a map of an image's opaque colors and the number of
// times each occurs, sampling every step pixels.
func GetColors(img image.Image, step int) map[color.Color]int {
	if step < 1 {
		step = 1
	}
	m := make(map[color.Color]int)

	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x += step {
		for y := b.Min.Y; y < b.Max.Y; y += step {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a != 0 {
				m[c]++
			}
		}
	}

	return m
}

// RankColors converts a color count map to a ranked ColorVolList.
func RankColors(m map[color.Color]int) ColorVolList {
	cvl := make(ColorVolList, 0, len(m))
	for k, v := range m {
		cv := ColorVol{RGB: k, Count: v}
		rgb := cv.RGB8()
		cv.Lab = lab2Xyz.Invert(rgb2Xyz.Convert(chromath.RGB{rgb[0], rgb[1], rgb[2]}))
		cvl = append(cvl, cv)
	}

	sort.Sort(cvl)
	return cvl
}

// Spread returns the largest CIEDE2000 difference between any two colors
// of the list.
func (cvl ColorVolList) Spread() float64 {
	var max float64
	for i := range cvl {
		for j := i + 1; j < len(cvl); j++ {
			if d := deltae.CIE2000(cvl[i].Lab, cvl[j].Lab, klch); d > max {
				max = d
			}
		}
	}
	return max
}

// Dominant quantizes img to num colors, merges those within GroupDeltaE
// of each other and returns the merged colors ranked, the most prevalent
// first.
func Dominant(img image.Image, num int) (ColorVolList, error) {
	cvl := RankColors(GetColors(Quantize(img, num), 1))
	if len(cvl) == 0 {
		return nil, fmt.Errorf("image has no opaque pixels")
	}

	groups := Group(cvl, GroupDeltaE)
	out := make(ColorVolList, len(groups))
	for i, g := range groups {
		out[i] = g.Average()
	}
	sort.Sort(out)
	return out, nil
}
