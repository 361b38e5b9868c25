package colorimetry

import (
	"fmt"
	"math"
)

// Jakob2019Shape is the spectral shape of recovered reflectances.
var Jakob2019Shape = [3]float64{VisibleMin, VisibleMax, 5}

func sigmoid(x float64) float64 {
	return 0.5 + x/(2*math.Sqrt(1+x*x))
}

func jakobSD(c Vec3) *SpectralDistribution {
	start, stop, step := Jakob2019Shape[0], Jakob2019Shape[1], Jakob2019Shape[2]
	n := int(math.Round((stop-start)/step)) + 1
	values := make([]float64, n)
	for i := range values {
		l := float64(i) / float64(n-1)
		values[i] = sigmoid(c[0]*l*l + c[1]*l + c[2])
	}
	return &SpectralDistribution{Start: start, Stop: stop, Interval: step, Values: values}
}

// XYZToSDJakob2019 recovers a smooth reflectance whose colour under the
// illuminant matches xyz (0..1) for the observer. It fits the three
// coefficients of a sigmoid polynomial by damped Gauss-Newton iteration on
// the CIELAB difference and returns the distribution together with the
// remaining Delta E 1976.
func XYZToSDJakob2019(xyz Vec3, o *Observer, illuminant *SpectralDistribution) (*SpectralDistribution, float64, error) {
	perfect := jakobSD(Vec3{})
	for i := range perfect.Values {
		perfect.Values[i] = 1
	}
	white := perfect.ToXYZ(o, illuminant)
	if white[1] == 0 {
		return nil, 0, fmt.Errorf("illuminant has no luminous power")
	}
	wxy := XYZToXy(white)
	target := XYZToLab(xyz, wxy)

	residual := func(c Vec3) Vec3 {
		lab := XYZToLab(jakobSD(c).ToXYZ(o, illuminant), wxy)
		return Vec3{lab[0] - target[0], lab[1] - target[1], lab[2] - target[2]}
	}
	norm := func(r Vec3) float64 { return math.Sqrt(r[0]*r[0] + r[1]*r[1] + r[2]*r[2]) }

	var c Vec3
	r := residual(c)
	lambda := 1e-4
	for iter := 0; iter < 200 && norm(r) > 1e-6; iter++ {
		var j Mat3
		const h = 1e-6
		for k := 0; k < 3; k++ {
			cp := c
			cp[k] += h
			rp := residual(cp)
			for i := 0; i < 3; i++ {
				j[i][k] = (rp[i] - r[i]) / h
			}
		}
		// (J^T J + lambda I) step = -J^T r
		var jtj Mat3
		var jtr Vec3
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				for i := 0; i < 3; i++ {
					jtj[a][b] += j[i][a] * j[i][b]
				}
			}
			for i := 0; i < 3; i++ {
				jtr[a] += j[i][a] * r[i]
			}
		}
		improved := false
		for tries := 0; tries < 10; tries++ {
			m := jtj
			for a := 0; a < 3; a++ {
				m[a][a] += lambda * (1 + jtj[a][a])
			}
			step := m.Inverse().Apply(jtr)
			if math.IsNaN(step[0]) {
				lambda *= 10
				continue
			}
			next := Vec3{c[0] - step[0], c[1] - step[1], c[2] - step[2]}
			if rn := residual(next); norm(rn) < norm(r) {
				c, r = next, rn
				lambda = math.Max(lambda/10, 1e-12)
				improved = true
				break
			}
			lambda *= 10
		}
		if !improved {
			break
		}
	}
	return jakobSD(c), norm(r), nil
}
