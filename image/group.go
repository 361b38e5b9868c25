package image

import (
	"image/color"
	"math"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
)

// GroupDeltaE is the CIEDE2000 difference below which two colors are
// considered the same.
const GroupDeltaE = 10

// Group gathers colors within de of the first color of each group. The
// list should be ranked so every group starts at its most prevalent color.
func Group(cvl ColorVolList, de float64) []ColorVolList {
	g := make([]ColorVolList, 0)
	done := make([]bool, len(cvl))

	for i := range cvl {
		if done[i] {
			continue
		}
		group := ColorVolList{cvl[i]}
		done[i] = true

		for j := i + 1; j < len(cvl); j++ {
			if done[j] {
				continue
			}
			if deltae.CIE2000(cvl[i].Lab, cvl[j].Lab, klch) < de {
				group = append(group, cvl[j])
				done[j] = true
			}
		}
		g = append(g, group)
	}

	return g
}

// Average returns the root mean square color of the list, weighted by
// count, holding the total count.
func (cvl ColorVolList) Average() ColorVol {
	var rt, gt, bt float64
	t := 0

	for _, cv := range cvl {
		rgb := cv.RGB8()
		w := float64(cv.Count)
		rt += w * rgb[0] * rgb[0]
		gt += w * rgb[1] * rgb[1]
		bt += w * rgb[2] * rgb[2]
		t += cv.Count
	}
	if t == 0 {
		return ColorVol{}
	}

	rgb := chromath.RGB{
		math.Sqrt(rt / float64(t)),
		math.Sqrt(gt / float64(t)),
		math.Sqrt(bt / float64(t)),
	}

	return ColorVol{
		RGB: color.RGBA{
			uint8(math.Round(rgb.R())),
			uint8(math.Round(rgb.G())),
			uint8(math.Round(rgb.B())),
			255,
		},
		Lab:   lab2Xyz.Invert(rgb2Xyz.Convert(rgb)),
		Count: t,
	}
}
