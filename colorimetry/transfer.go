package colorimetry

import (
	"math"

	"github.com/jkl1337/go-chromath"
)

// Transfer is a pair of component transfer functions. Encode maps scene
// linear values to the non-linear signal, Decode is its inverse.
type Transfer struct {
	Encode func(float64) float64
	Decode func(float64) float64
}

// Linear is the identity transfer.
var Linear = Transfer{
	Encode: func(x float64) float64 { return x },
	Decode: func(x float64) float64 { return x },
}

// companded adapts a chromath compander to a per component transfer.
func companded(c chromath.Compander) Transfer {
	return Transfer{
		Encode: func(x float64) float64 { return c.Compand(chromath.Point{x})[0] },
		Decode: func(x float64) float64 { return c.Linearize(chromath.Point{x})[0] },
	}
}

// Gamma returns a pure power law transfer. Negative values are mirrored.
func Gamma(g float64) Transfer {
	return companded(chromath.GammaCompander.Init(&chromath.RGBSpace{Gamma: chromath.Gamma(g)}))
}

// SRGB is the IEC 61966-2-1 piecewise curve.
var SRGB = Transfer{
	Encode: func(x float64) float64 {
		if x <= 0.0031308 {
			return 12.92 * x
		}
		return 1.055*math.Pow(x, 1/2.4) - 0.055
	},
	Decode: func(v float64) float64 {
		if v <= 0.04045 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	},
}

// BT709 is the ITU-R BT.709 and BT.601 OETF, also used by BT.2020 at 10 bits.
var BT709 = Transfer{
	Encode: func(x float64) float64 {
		if x < 0.018 {
			return 4.5 * x
		}
		return 1.099*math.Pow(x, 0.45) - 0.099
	},
	Decode: func(v float64) float64 {
		if v < 0.081 {
			return v / 4.5
		}
		return math.Pow((v+0.099)/1.099, 1/0.45)
	},
}

// SMPTE240M is the SMPTE 240M OETF.
var SMPTE240M = Transfer{
	Encode: func(x float64) float64 {
		if x < 0.0228 {
			return 4 * x
		}
		return 1.1115*math.Pow(x, 0.45) - 0.1115
	},
	Decode: func(v float64) float64 {
		if v < 0.0913 {
			return v / 4
		}
		return math.Pow((v+0.1115)/1.1115, 1/0.45)
	},
}

const rommEt = 1.0 / 512

// ROMM is the ROMM RGB (ProPhoto) curve.
var ROMM = Transfer{
	Encode: func(x float64) float64 {
		if x < rommEt {
			return 16 * x
		}
		return math.Pow(x, 1/1.8)
	},
	Decode: func(v float64) float64 {
		if v < 16*rommEt {
			return v / 16
		}
		return math.Pow(v, 1.8)
	},
}

var rimmVClip = 1.099*math.Pow(2, 0.45) - 0.099

// RIMM is the RIMM RGB curve with E_clip = 2.
var RIMM = Transfer{
	Encode: func(x float64) float64 {
		return BT709.Encode(x) / rimmVClip
	},
	Decode: func(v float64) float64 {
		return BT709.Decode(v * rimmVClip)
	},
}

// LStar encodes relative luminance as CIE L*/100, as ECI RGB v2 does.
var LStar = companded(chromath.LstarCompander.Init(nil))

// DCDM is the SMPTE 428-1 digital cinema encoding.
var DCDM = Transfer{
	Encode: func(x float64) float64 { return spow(x*48/52.37, 1/2.6) },
	Decode: func(v float64) float64 { return spow(v, 2.6) * 52.37 / 48 },
}

// ACEScc is the ACEScc logarithmic curve.
var ACEScc = Transfer{
	Encode: func(x float64) float64 {
		switch {
		case x <= 0:
			return (math.Log2(math.Pow(2, -16)) + 9.72) / 17.52
		case x < math.Pow(2, -15):
			return (math.Log2(math.Pow(2, -16)+x*0.5) + 9.72) / 17.52
		}
		return (math.Log2(x) + 9.72) / 17.52
	},
	Decode: func(v float64) float64 {
		switch {
		case v < (9.72-15)/17.52:
			return (math.Pow(2, v*17.52-9.72) - math.Pow(2, -16)) * 2
		case v < (math.Log2(65504)+9.72)/17.52:
			return math.Pow(2, v*17.52-9.72)
		}
		return 65504
	},
}

// ACEScct is the ACEScct logarithmic curve with its linear toe.
var ACEScct = Transfer{
	Encode: func(x float64) float64 {
		if x <= 0.0078125 {
			return 10.5402377416545*x + 0.0729055341958355
		}
		return (math.Log2(x) + 9.72) / 17.52
	},
	Decode: func(v float64) float64 {
		if v <= 0.155251141552511 {
			return (v - 0.0729055341958355) / 10.5402377416545
		}
		return math.Pow(2, v*17.52-9.72)
	},
}

// ACESproxy is the 10 bit ACESproxy encoding, quantised to legal code
// values and normalised to 0..1.
var ACESproxy = Transfer{
	Encode: func(x float64) float64 {
		cv := 64.0
		if x > math.Pow(2, -9.72) {
			cv = math.Round((math.Log2(x)+2.5)*50 + 425)
			cv = math.Max(64, math.Min(940, cv))
		}
		return cv / 1023
	},
	Decode: func(v float64) float64 {
		return math.Pow(2, (v*1023-425)/50-2.5)
	},
}

// LogC3 is ARRI LogC3 at EI 800.
var LogC3 = func() Transfer {
	const (
		cut = 0.010591
		a   = 5.555556
		b   = 0.052272
		c   = 0.247190
		d   = 0.385537
		e   = 5.367655
		f   = 0.092809
	)
	return Transfer{
		Encode: func(x float64) float64 {
			if x > cut {
				return c*math.Log10(a*x+b) + d
			}
			return e*x + f
		},
		Decode: func(t float64) float64 {
			if t > e*cut+f {
				return (math.Pow(10, (t-d)/c) - b) / a
			}
			return (t - f) / e
		},
	}
}()

// LogC4 is ARRI LogC4.
var LogC4 = func() Transfer {
	a := (math.Pow(2, 18) - 16) / 117.45
	b := (1023.0 - 95) / 1023
	c := 95.0 / 1023
	s := (7 * math.Ln2 * math.Pow(2, 7-14*c/b)) / (a * b)
	t := (math.Pow(2, 14*(-c/b)+6) - 64) / a
	return Transfer{
		Encode: func(x float64) float64 {
			if x >= t {
				return (math.Log2(a*x+64)-6)/14*b + c
			}
			return (x - t) / s
		},
		Decode: func(v float64) float64 {
			if v >= 0 {
				return (math.Pow(2, 14*(v-c)/b+6) - 64) / a
			}
			return v*s + t
		},
	}
}()

// BlackmagicGen5 is the Blackmagic Film Generation 5 curve.
var BlackmagicGen5 = func() Transfer {
	const (
		a      = 0.08692876065491224
		b      = 0.005494072432257808
		c      = 0.5300133392291939
		d      = 8.283605932402494
		e      = 0.09246575342465753
		linCut = 0.005
	)
	logCut := d*linCut + e
	return Transfer{
		Encode: func(x float64) float64 {
			if x < linCut {
				return d*x + e
			}
			return a*math.Log(x+b) + c
		},
		Decode: func(y float64) float64 {
			if y < logCut {
				return (y - e) / d
			}
			return math.Exp((y-c)/a) - b
		},
	}
}()

// DaVinciIntermediate is the DaVinci Intermediate log curve.
var DaVinciIntermediate = func() Transfer {
	const (
		a      = 0.0075
		b      = 7.0
		c      = 0.07329248
		m      = 10.44426855
		linCut = 0.00262409
		logCut = 0.02740668
	)
	return Transfer{
		Encode: func(x float64) float64 {
			if x <= linCut {
				return x * m
			}
			return (math.Log2(x+a) + b) * c
		},
		Decode: func(v float64) float64 {
			if v <= logCut {
				return v / m
			}
			return math.Pow(2, v/c-b) - a
		},
	}
}()

// DLog is DJI D-Log.
var DLog = Transfer{
	Encode: func(x float64) float64 {
		if x <= 0.0078 {
			return 6.025*x + 0.0929
		}
		return math.Log10(x*0.9892+0.0108)*0.256663 + 0.584555
	},
	Decode: func(y float64) float64 {
		if y <= 0.14 {
			return (y - 0.0929) / 6.025
		}
		return (math.Pow(10, 3.89616*y-2.27752) - 0.0108) / 0.9892
	},
}

// FLog is Fujifilm F-Log.
var FLog = func() Transfer {
	const (
		cut1 = 0.00089
		cut2 = 0.100537775223865
		a    = 0.555556
		b    = 0.009468
		c    = 0.344676
		d    = 0.790453
		e    = 8.735631
		f    = 0.092864
	)
	return Transfer{
		Encode: func(x float64) float64 {
			if x < cut1 {
				return e*x + f
			}
			return c*math.Log10(a*x+b) + d
		},
		Decode: func(y float64) float64 {
			if y < cut2 {
				return (y - f) / e
			}
			return (math.Pow(10, (y-d)/c) - b) / a
		},
	}
}()

// NLog is Nikon N-Log.
var NLog = func() Transfer {
	const (
		cut1 = 0.328
		a    = 650.0 / 1023
		b    = 0.0075
		c    = 150.0 / 1023
		d    = 619.0 / 1023
	)
	cut2 := a * math.Cbrt(cut1+b)
	return Transfer{
		Encode: func(y float64) float64 {
			if y < cut1 {
				return a * math.Cbrt(y+b)
			}
			return c*math.Log(y) + d
		},
		Decode: func(x float64) float64 {
			if x < cut2 {
				r := x / a
				return r*r*r - b
			}
			return math.Exp((x - d) / c)
		},
	}
}()

// Protune is the GoPro Protune curve.
var Protune = Transfer{
	Encode: func(x float64) float64 { return math.Log(x*112+1) / math.Log(113) },
	Decode: func(v float64) float64 { return (math.Pow(113, v) - 1) / 112 },
}

// Log3G10 is RED Log3G10, third revision.
var Log3G10 = func() Transfer {
	const (
		a = 0.224282
		b = 155.975327
		c = 0.01
		g = 15.1927
	)
	return Transfer{
		Encode: func(x float64) float64 {
			x += c
			if x < 0 {
				return x * g
			}
			return a * math.Log10(x*b+1)
		},
		Decode: func(y float64) float64 {
			if y < 0 {
				return y/g - c
			}
			return (math.Pow(10, y/a)-1)/b - c
		},
	}
}()

// SLog3 is Sony S-Log3.
var SLog3 = Transfer{
	Encode: func(x float64) float64 {
		if x >= 0.01125 {
			return (420 + math.Log10((x+0.01)/(0.18+0.01))*261.5) / 1023
		}
		return (x*(171.2102946929-95)/0.01125 + 95) / 1023
	},
	Decode: func(y float64) float64 {
		if y >= 171.2102946929/1023 {
			return math.Pow(10, (y*1023-420)/261.5)*(0.18+0.01) - 0.01
		}
		return (y*1023 - 95) * 0.01125 / (171.2102946929 - 95)
	},
}

// SLog2 is Sony S-Log2 at 10 bits, normalised legal range with reflection
// input.
var SLog2 = func() Transfer {
	const toe = 0.030001222851889303
	return Transfer{
		Encode: func(x float64) float64 {
			x = x * 155 / 219 / 0.9
			y := x*5 + toe
			if x >= 0 {
				y = 0.432699*math.Log10(x+0.037584) + 0.616596 + 0.03
			}
			return (y*876 + 64) / 1023
		},
		Decode: func(v float64) float64 {
			y := (v*1023 - 64) / 876
			x := (y - toe) / 5
			if y >= toe {
				x = math.Pow(10, (y-0.616596-0.03)/0.432699) - 0.037584
			}
			return x * 0.9 * 219 / 155
		},
	}
}()

// TLog is the FilmLight T-Log curve.
var TLog = func() Transfer {
	const (
		w = 128.0
		g = 16.0
		o = 0.075
	)
	b := 1 / (0.7107 + 1.2359*math.Log(w*g))
	gs := g / (1 - o)
	c := b / gs
	a := 1 - b*math.Log(w+c)
	y0 := a + b*math.Log(c)
	s := (1 - o) / (1 - y0)
	bigA, bigB, bigG := 1+(a-1)*s, b*s, gs*s
	return Transfer{
		Encode: func(x float64) float64 {
			if x < 0 {
				return bigG*x + o
			}
			return math.Log(x+c)*bigB + bigA
		},
		Decode: func(t float64) float64 {
			if t < o {
				return (t - o) / bigG
			}
			return math.Exp((t-bigA)/bigB) - c
		},
	}
}()

// REDLogFilm is the Cineon curve with the RED black offset.
var REDLogFilm = func() Transfer {
	off := math.Pow(10, (95.0-685)/300)
	return Transfer{
		Encode: func(x float64) float64 {
			return (685 + 300*math.Log10(x*(1-off)+off)) / 1023
		},
		Decode: func(y float64) float64 {
			return (math.Pow(10, (1023*y-685)/300) - off) / (1 - off)
		},
	}
}()

// ERIMM is the ERIMM RGB logarithmic curve with E_min = 0.001 and
// E_clip = 316.2.
var ERIMM = func() Transfer {
	const (
		eMin  = 0.001
		eClip = 316.2
	)
	et := math.E * eMin
	span := math.Log(eClip) - math.Log(eMin)
	vt := (math.Log(et) - math.Log(eMin)) / span
	return Transfer{
		Encode: func(x float64) float64 {
			switch {
			case x < 0:
				return 0
			case x <= et:
				return vt * x / et
			case x > eClip:
				return 1
			}
			return (math.Log(x) - math.Log(eMin)) / span
		},
		Decode: func(v float64) float64 {
			if v <= vt {
				return v * et / vt
			}
			return math.Exp(v*span + math.Log(eMin))
		},
	}
}()

// VLog is Panasonic V-Log.
var VLog = func() Transfer {
	const (
		cut1 = 0.01
		cut2 = 0.181
		b    = 0.00873
		c    = 0.241514
		d    = 0.598206
	)
	return Transfer{
		Encode: func(x float64) float64 {
			if x < cut1 {
				return 5.6*x + 0.125
			}
			return c*math.Log10(x+b) + d
		},
		Decode: func(y float64) float64 {
			if y < cut2 {
				return (y - 0.125) / 5.6
			}
			return math.Pow(10, (y-d)/c) - b
		},
	}
}()

// SMPTE ST 2084 perceptual quantizer constants.
const (
	pqM1 = 2610.0 / 4096 / 4
	pqM2 = 2523.0 / 4096 * 128
	pqC1 = 3424.0 / 4096
	pqC2 = 2413.0 / 4096 * 32
	pqC3 = 2392.0 / 4096 * 32
)

// ST2084Encode maps absolute luminance in cd/m2 to the PQ signal, with
// peak as the luminance of a signal of 1.
func ST2084Encode(c, peak float64) float64 {
	y := math.Max(c, 0) / peak
	yp := math.Pow(y, pqM1)
	return math.Pow((pqC1+pqC2*yp)/(1+pqC3*yp), pqM2)
}

// ST2084Decode is the inverse of ST2084Encode.
func ST2084Decode(n, peak float64) float64 {
	np := math.Pow(math.Max(n, 0), 1/pqM2)
	return peak * math.Pow(math.Max(np-pqC1, 0)/(pqC2-pqC3*np), 1/pqM1)
}

// ITU-R BT.2100 hybrid log-gamma OETF constants.
const (
	hlgA = 0.17883277
	hlgB = 0.28466892
	hlgC = 0.55991073
)

// HLGEncode is the BT.2100 HLG reference OETF.
func HLGEncode(e float64) float64 {
	if e <= 1.0/12 {
		return math.Sqrt(3 * math.Max(e, 0))
	}
	return hlgA*math.Log(12*e-hlgB) + hlgC
}

// HLGDecode is the inverse of HLGEncode.
func HLGDecode(v float64) float64 {
	if v <= 0.5 {
		return v * v / 3
	}
	return (math.Exp((v-hlgC)/hlgA) + hlgB) / 12
}
