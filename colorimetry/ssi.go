package colorimetry

import "math"

var (
	ssiBinWeights = [11]float64{0.5, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0.5}
	ssiWeights    = [30]float64{
		12.0 / 45, 22.0 / 45, 32.0 / 45, 40.0 / 45, 44.0 / 45,
		1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
		11.0 / 15, 3.0 / 15,
	}
)

// ssiBins samples sd from 375 to 675 nm at 1 nm, zero outside its range,
// and integrates it into thirty 10 nm bands normalised to unit sum.
func ssiBins(sd *SpectralDistribution) [30]float64 {
	var fine [301]float64
	for i := range fine {
		wl := 375 + float64(i)
		if wl >= sd.Start && wl <= sd.Stop {
			fine[i] = sd.Value(wl)
		}
	}
	var bins [30]float64
	var total float64
	for i := range bins {
		for j, w := range ssiBinWeights {
			bins[i] += w * fine[i*10+j]
		}
		total += bins[i]
	}
	if total != 0 {
		for i := range bins {
			bins[i] /= total
		}
	}
	return bins
}

// SpectralSimilarityIndex returns the Academy Spectral Similarity Index of
// test against ref, an integer from 0 to 100 where 100 is identical.
func SpectralSimilarityIndex(test, ref *SpectralDistribution) float64 {
	t, r := ssiBins(test), ssiBins(ref)
	var mean float64
	for _, v := range r {
		mean += v
	}
	mean /= float64(len(r))

	var wdr [32]float64
	for i := range t {
		wdr[i+1] = sdiv(t[i]-r[i], r[i]+mean) * ssiWeights[i]
	}
	var m float64
	for i := 0; i < 30; i++ {
		c := 0.22*wdr[i] + 0.56*wdr[i+1] + 0.22*wdr[i+2]
		m += c * c
	}
	return math.Round(100 - 32*math.Sqrt(m))
}
