package colorimetry

import "sync"

// Standard observer names, as used for document keys.
const (
	CIE1931 = "CIE 1931 2 Degree Standard Observer"
	CIE1964 = "CIE 1964 10 Degree Standard Observer"
)

// Visible range bounds in nm [CIE 015:2018, pg. 21].
const (
	VisibleMin = 360
	VisibleMax = 830
)

// Observer is a set of color matching functions.
type Observer struct {
	Name string
	cmf  cmfTable

	once  sync.Once
	locus []locusPoint
}

type locusPoint struct {
	wl   float64
	x, y float64
}

// Observer1931 is the CIE 1931 2 degree standard observer.
var Observer1931 = &Observer{Name: CIE1931, cmf: cie1931}

// Observer1964 is the CIE 1964 10 degree standard observer.
var Observer1964 = &Observer{Name: CIE1964, cmf: cie1964}

// Observers lists both standard observers in fan-out order.
var Observers = []*Observer{Observer1931, Observer1964}

// ObserverByName returns the observer called name, or nil.
func ObserverByName(name string) *Observer {
	for _, o := range Observers {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// CMF returns the color matching function values at wl nm.
func (o *Observer) CMF(wl float64) Vec3 {
	return o.cmf.at(wl)
}

// WavelengthToXYZ returns the tristimulus values of a monochromatic stimulus.
func (o *Observer) WavelengthToXYZ(wl float64) Vec3 {
	return o.cmf.at(wl)
}

// spectralLocus samples the locus chromaticities at 1 nm over the visible
// range. Consecutive samples with the same chromaticity are dropped.
func (o *Observer) spectralLocus() []locusPoint {
	o.once.Do(func() {
		for wl := float64(VisibleMin); wl <= VisibleMax; wl++ {
			xyz := o.cmf.at(wl)
			s := xyz[0] + xyz[1] + xyz[2]
			if s <= 0 {
				continue
			}
			p := locusPoint{wl: wl, x: xyz[0] / s, y: xyz[1] / s}
			if n := len(o.locus); n > 0 && o.locus[n-1].x == p.x && o.locus[n-1].y == p.y {
				continue
			}
			o.locus = append(o.locus, p)
		}
	})
	return o.locus
}
