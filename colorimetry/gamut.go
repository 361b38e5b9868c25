package colorimetry

import (
	"fmt"
	"math"
)

// pointerBoundary is the chromaticity outline of Pointer's (1980) gamut of
// real surface colours under illuminant C.
var pointerBoundary = []XY{
	{0.508, 0.226}, {0.538, 0.258}, {0.588, 0.280}, {0.637, 0.298},
	{0.659, 0.316}, {0.634, 0.351}, {0.594, 0.391}, {0.557, 0.427},
	{0.523, 0.462}, {0.482, 0.491}, {0.444, 0.515}, {0.409, 0.546},
	{0.371, 0.558}, {0.332, 0.573}, {0.288, 0.584}, {0.242, 0.576},
	{0.202, 0.530}, {0.177, 0.454}, {0.151, 0.389}, {0.151, 0.330},
	{0.162, 0.295}, {0.157, 0.266}, {0.159, 0.245}, {0.142, 0.214},
	{0.141, 0.195}, {0.129, 0.168}, {0.138, 0.141}, {0.145, 0.129},
	{0.145, 0.106}, {0.161, 0.094}, {0.188, 0.084}, {0.252, 0.104},
	{0.324, 0.127}, {0.393, 0.165}, {0.451, 0.199},
}

// IsWithinPointerGamut reports whether the illuminant C relative xy lies
// inside the chromaticity outline of Pointer's gamut.
func IsWithinPointerGamut(xy XY) bool {
	in := false
	n := len(pointerBoundary)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := pointerBoundary[i], pointerBoundary[j]
		if (a[1] > xy[1]) != (b[1] > xy[1]) &&
			xy[0] < (b[0]-a[0])*(xy[1]-a[1])/(b[1]-a[1])+a[0] {
			in = !in
		}
	}
	return in
}

// MacAdamIlluminants lists the illuminants with MacAdam limits.
var MacAdamIlluminants = []string{"A", "C", "D65"}

// macAdamTolerance is the XYZ distance a colour may lie outside the solid.
// It absorbs the gap between the tabulated white points and the integrated
// spectra, which puts the perfect white of C about 0.0018 outside.
const macAdamTolerance = 2.5e-3

// optimalGenerators returns the monochromatic XYZ contributions of spd for
// the 1931 observer at 5 nm, scaled so the perfect reflector has Y = 1. The
// object colour solid is the zonotope they span.
func optimalGenerators(spd *SpectralDistribution) []Vec3 {
	var gens []Vec3
	var total float64
	first, last := math.Max(360, spd.Start), math.Min(780, spd.Stop)
	for wl := first; wl <= last; wl += 5 {
		v := Observer1931.CMF(wl).Scale(spd.Value(wl))
		gens = append(gens, v)
		total += v[1]
	}
	for i := range gens {
		gens[i] = gens[i].Scale(1 / total)
	}
	return gens
}

func cross(a, b Vec3) Vec3 {
	return Vec3{a[1]*b[2] - a[2]*b[1], a[2]*b[0] - a[0]*b[2], a[0]*b[1] - a[1]*b[0]}
}

func dot(a, b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// IsWithinMacAdamLimits reports whether xyY (Y on 0..1) is an object colour
// realisable under illuminant, that is inside the solid of optimal colours.
func IsWithinMacAdamLimits(xyY Vec3, illuminant string) (bool, error) {
	spd, ok := IlluminantSPD(illuminant)
	if !ok {
		return false, fmt.Errorf("%w: %s has no MacAdam limits", ErrUnknownIlluminant, illuminant)
	}
	if xyY[1] == 0 {
		return xyY[2] == 0, nil
	}
	p := XyYToXYZ(xyY)
	gens := optimalGenerators(spd)
	var centre Vec3
	for _, g := range gens {
		for i := range centre {
			centre[i] += g[i] / 2
		}
	}
	q := Vec3{p[0] - centre[0], p[1] - centre[1], p[2] - centre[2]}

	// every facet normal of a zonotope is the cross product of two of its
	// generators
	for i := range gens {
		for j := i + 1; j < len(gens); j++ {
			n := cross(gens[i], gens[j])
			norm := math.Sqrt(dot(n, n))
			if norm < 1e-15 {
				continue
			}
			var half float64
			for _, g := range gens {
				half += math.Abs(dot(n, g)) / 2
			}
			if (math.Abs(dot(n, q))-half)/norm > macAdamTolerance {
				return false, nil
			}
		}
	}
	return true, nil
}
