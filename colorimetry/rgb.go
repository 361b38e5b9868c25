package colorimetry

import (
	"fmt"
	"sync"

	"github.com/jkl1337/go-chromath"
)

// ErrUnknownSpace is returned when an RGB colourspace is not registered.
var ErrUnknownSpace = fmt.Errorf("unknown RGB color space")

// RGBSpace is an additive RGB colourspace defined by its primaries,
// white point and component transfer.
type RGBSpace struct {
	Name           string
	Primaries      [3]XY
	Whitepoint     XY
	WhitepointName string
	Transfer

	once sync.Once
	npm  Mat3
	inv  Mat3
}

// NPM returns the normalised primary matrix, mapping linear RGB to XYZ
// relative to the space white point.
func (s *RGBSpace) NPM() Mat3 {
	s.once.Do(func() {
		if s.Primaries[0][1] == 0 || s.Primaries[1][1] == 0 || s.Primaries[2][1] == 0 {
			s.npm = primaryMatrix(s.Primaries, s.Whitepoint)
			s.inv = s.npm.Inverse()
			return
		}
		p := chromath.XyYPrimary{
			Xr: s.Primaries[0][0], Yr: s.Primaries[0][1],
			Xg: s.Primaries[1][0], Yg: s.Primaries[1][1],
			Xb: s.Primaries[2][0], Yb: s.Primaries[2][1],
		}
		s.npm = fromChromath(p.RGBTransform(chromath.XYZ(s.Whitepoint.XYZ())))
		s.inv = s.npm.Inverse()
	})
	return s.npm
}

// primaryMatrix scales the primaries' xyz columns so that RGB 1, 1, 1 maps
// to the white point. It serves primaries on the y = 0 line, which chromath
// cannot normalise.
func primaryMatrix(prims [3]XY, white XY) Mat3 {
	var p Mat3
	for j, c := range prims {
		p[0][j], p[1][j], p[2][j] = c[0], c[1], 1-c[0]-c[1]
	}
	return p.Mul(diag(p.Inverse().Apply(white.XYZ())))
}

func (s *RGBSpace) invNPM() Mat3 {
	s.NPM()
	return s.inv
}

// EncodeRGB applies the encoding transfer to every component.
func (s *RGBSpace) EncodeRGB(rgb Vec3) Vec3 {
	return Vec3{s.Encode(rgb[0]), s.Encode(rgb[1]), s.Encode(rgb[2])}
}

// DecodeRGB applies the decoding transfer to every component.
func (s *RGBSpace) DecodeRGB(rgb Vec3) Vec3 {
	return Vec3{s.Decode(rgb[0]), s.Decode(rgb[1]), s.Decode(rgb[2])}
}

// RGBToXYZ converts linear RGB to XYZ, adapted from the space white to
// illuminant with cat. An empty cat skips adaptation.
func RGBToXYZ(rgb Vec3, s *RGBSpace, illuminant XY, cat string) (Vec3, error) {
	xyz := s.NPM().Apply(rgb)
	if cat == "" || illuminant == s.Whitepoint {
		return xyz, nil
	}
	return VonKries(xyz, s.Whitepoint.XYZ(), illuminant.XYZ(), cat)
}

// XYZToRGB converts XYZ relative to illuminant into linear RGB of s.
func XYZToRGB(xyz Vec3, illuminant XY, s *RGBSpace, cat string) (Vec3, error) {
	if cat != "" && illuminant != s.Whitepoint {
		var e error
		xyz, e = VonKries(xyz, illuminant.XYZ(), s.Whitepoint.XYZ(), cat)
		if e != nil {
			return Vec3{}, e
		}
	}
	return s.invNPM().Apply(xyz), nil
}

// RGBToRGB converts linear RGB between two spaces.
func RGBToRGB(rgb Vec3, in, out *RGBSpace, cat string) (Vec3, error) {
	xyz := in.NPM().Apply(rgb)
	if cat != "" && in.Whitepoint != out.Whitepoint {
		var e error
		xyz, e = VonKries(xyz, in.Whitepoint.XYZ(), out.Whitepoint.XYZ(), cat)
		if e != nil {
			return Vec3{}, e
		}
	}
	return out.invNPM().Apply(xyz), nil
}

var (
	wpD50  = XY{0.3457, 0.3585}
	wpD55  = XY{0.33242, 0.34743}
	wpD65  = XY{0.3127, 0.3290}
	wpC    = XY{0.31006, 0.31616}
	wpE    = XY{1.0 / 3, 1.0 / 3}
	wpACES = XY{0.32168, 0.33767}
	wpDCI  = XY{0.314, 0.351}
	wpBMD  = XY{0.3127170, 0.3290312}

	primBT709   = [3]XY{{0.64, 0.33}, {0.30, 0.60}, {0.15, 0.06}}
	primBT2020  = [3]XY{{0.708, 0.292}, {0.170, 0.797}, {0.131, 0.046}}
	primP3      = [3]XY{{0.680, 0.320}, {0.265, 0.690}, {0.150, 0.060}}
	primNTSC    = [3]XY{{0.67, 0.33}, {0.21, 0.71}, {0.14, 0.08}}
	primSMPTEC  = [3]XY{{0.630, 0.340}, {0.310, 0.595}, {0.155, 0.070}}
	primPAL     = [3]XY{{0.64, 0.33}, {0.29, 0.60}, {0.15, 0.06}}
	primROMM    = [3]XY{{0.7347, 0.2653}, {0.1596, 0.8404}, {0.0366, 0.0001}}
	primAP0     = [3]XY{{0.7347, 0.2653}, {0.0, 1.0}, {0.0001, -0.0770}}
	primAP1     = [3]XY{{0.713, 0.293}, {0.165, 0.830}, {0.128, 0.044}}
	primSGamut3 = [3]XY{{0.730, 0.280}, {0.140, 0.855}, {0.100, -0.050}}

	primDRAGON = [3]XY{{0.758656085373520, 0.330854867324288}, {0.294559821502894, 0.708194422299885}, {0.106243758903126, -0.029050852256350}}
)

func space(name string, p [3]XY, wp XY, wpName string, t Transfer) *RGBSpace {
	return &RGBSpace{Name: name, Primaries: p, Whitepoint: wp, WhitepointName: wpName, Transfer: t}
}

// Spaces holds every supported RGB colourspace in catalog order.
var Spaces = []*RGBSpace{
	space("ACES2065-1", primAP0, wpACES, "ACES", Linear),
	space("ACEScc", primAP1, wpACES, "ACES", ACEScc),
	space("ACEScct", primAP1, wpACES, "ACES", ACEScct),
	space("ACEScg", primAP1, wpACES, "ACES", Linear),
	space("ACESproxy", primAP1, wpACES, "ACES", ACESproxy),
	space("ARRI Wide Gamut 3", [3]XY{{0.6840, 0.3130}, {0.2210, 0.8480}, {0.0861, -0.1020}}, wpD65, "D65", LogC3),
	space("ARRI Wide Gamut 4", [3]XY{{0.7347, 0.2653}, {0.1424, 0.8576}, {0.0991, -0.0308}}, wpD65, "D65", LogC4),
	space("Adobe RGB (1998)", [3]XY{{0.64, 0.33}, {0.21, 0.71}, {0.15, 0.06}}, wpD65, "D65", Gamma(563.0/256)),
	space("Adobe Wide Gamut RGB", [3]XY{{0.7347, 0.2653}, {0.1152, 0.8264}, {0.1566, 0.0177}}, wpD50, "D50", Gamma(563.0/256)),
	space("Apple RGB", [3]XY{{0.625, 0.340}, {0.280, 0.595}, {0.155, 0.070}}, wpD65, "D65", Gamma(1.8)),
	space("Best RGB", [3]XY{{0.7347, 0.2653}, {0.2150, 0.7750}, {0.1300, 0.0350}}, wpD50, "D50", Gamma(2.2)),
	space("Beta RGB", [3]XY{{0.6888, 0.3112}, {0.1986, 0.7551}, {0.1265, 0.0352}}, wpD50, "D50", Gamma(2.2)),
	space("Blackmagic Wide Gamut", [3]XY{{0.7177215, 0.3171181}, {0.2280410, 0.8615690}, {0.1005841, -0.0820452}}, wpBMD, "Blackmagic Wide Gamut", BlackmagicGen5),
	space("CIE RGB", [3]XY{{0.7347, 0.2653}, {0.2738, 0.7174}, {0.1666, 0.0089}}, wpE, "E", Gamma(2.2)),
	space("Cinema Gamut", [3]XY{{0.74, 0.27}, {0.17, 1.14}, {0.08, -0.1}}, wpD65, "D65", Linear),
	space("ColorMatch RGB", [3]XY{{0.630, 0.340}, {0.295, 0.605}, {0.150, 0.075}}, wpD50, "D50", Gamma(1.8)),
	space("DCDM XYZ", [3]XY{{1, 0}, {0, 1}, {0, 0}}, wpE, "E", DCDM),
	space("DCI-P3", primP3, wpDCI, "DCI-P3", Gamma(2.6)),
	space("DCI-P3-P", [3]XY{{0.740, 0.270}, {0.220, 0.780}, {0.090, -0.090}}, wpDCI, "DCI-P3", Gamma(2.6)),
	space("DJI D-Gamut", [3]XY{{0.71, 0.31}, {0.21, 0.88}, {0.09, -0.08}}, wpD65, "D65", DLog),
	space("DRAGONcolor", primDRAGON, wpD65, "D65", REDLogFilm),
	space("DRAGONcolor2", [3]XY{primDRAGON[0], primDRAGON[1], {0.144259923003400, 0.051254565564512}}, wpD65, "D65", REDLogFilm),
	space("DaVinci Wide Gamut", [3]XY{{0.8000, 0.3130}, {0.1682, 0.9877}, {0.0790, -0.1155}}, wpD65, "D65", DaVinciIntermediate),
	space("Display P3", primP3, wpD65, "D65", SRGB),
	space("Don RGB 4", [3]XY{{0.696, 0.300}, {0.215, 0.765}, {0.130, 0.035}}, wpD50, "D50", Gamma(2.2)),
	space("EBU Tech. 3213-E", primPAL, wpD65, "D65", Gamma(2.8)),
	space("ECI RGB v2", primNTSC, wpD50, "D50", LStar),
	space("ERIMM RGB", primROMM, wpD50, "D50", ERIMM),
	space("Ekta Space PS 5", [3]XY{{0.695, 0.305}, {0.260, 0.700}, {0.110, 0.005}}, wpD50, "D50", Gamma(2.2)),
	space("F-Gamut", primBT2020, wpD65, "D65", FLog),
	space("FilmLight E-Gamut", [3]XY{{0.8, 0.3177}, {0.18, 0.9}, {0.065, -0.0805}}, wpD65, "D65", TLog),
	space("ITU-R BT.2020", primBT2020, wpD65, "D65", BT709),
	space("ITU-R BT.470 - 525", primNTSC, wpC, "C", Gamma(2.8)),
	space("ITU-R BT.470 - 625", primPAL, wpD65, "D65", Gamma(2.8)),
	space("ITU-R BT.709", primBT709, wpD65, "D65", BT709),
	space("ITU-T H.273 - 22 Unspecified", [3]XY{{0.630, 0.340}, {0.295, 0.605}, {0.155, 0.077}}, wpD65, "D65", Linear),
	space("ITU-T H.273 - Generic Film", [3]XY{{0.681, 0.319}, {0.243, 0.692}, {0.145, 0.049}}, wpC, "C", Linear),
	space("Max RGB", [3]XY{{0.73413379, 0.26586621}, {0.10039113, 0.89960887}, {0.03621495, 0}}, wpD50, "D50", Gamma(2.2)),
	space("N-Gamut", primBT2020, wpD65, "D65", NLog),
	space("NTSC (1953)", primNTSC, wpC, "C", BT709),
	space("NTSC (1987)", primSMPTEC, wpD65, "D65", BT709),
	space("P3-D65", primP3, wpD65, "D65", Gamma(2.6)),
	space("Pal/Secam", primPAL, wpD65, "D65", BT709),
	space("PLASA ANSI E1.54", primROMM, XY{0.4254, 0.4044}, "PLASA ANSI E1.54", Linear),
	space("ProPhoto RGB", primROMM, wpD50, "D50", ROMM),
	space("Protune Native", [3]XY{{0.69848046, 0.19302645}, {0.32955538, 1.02459662}, {0.10844263, -0.03467857}}, wpD65, "D65", Protune),
	space("REDWideGamutRGB", [3]XY{{0.780308, 0.304253}, {0.121595, 1.493994}, {0.095612, -0.084589}}, wpD65, "D65", Log3G10),
	space("REDcolor", [3]XY{{0.701058563171395, 0.330180975940326}, {0.298811317306316, 0.615421066008501}, {0.135038675369242, 0.050202213111600}}, wpD65, "D65", REDLogFilm),
	space("REDcolor2", [3]XY{{0.897407221929776, 0.330776225980374}, {0.296022070419351, 0.684635364142713}, {0.100213802738474, -0.058621858981839}}, wpD65, "D65", REDLogFilm),
	space("REDcolor3", [3]XY{{0.702598658402457, 0.330185588938754}, {0.295782023745571, 0.689748376564350}, {0.111238524973213, -0.004635541488220}}, wpD65, "D65", REDLogFilm),
	space("REDcolor4", [3]XY{{0.702598154635966, 0.330185096210515}, {0.295782328047165, 0.689748630549510}, {0.144459236489795, 0.050837936780044}}, wpD65, "D65", REDLogFilm),
	space("RIMM RGB", primROMM, wpD50, "D50", RIMM),
	space("ROMM RGB", primROMM, wpD50, "D50", ROMM),
	space("Russell RGB", [3]XY{{0.69, 0.31}, {0.18, 0.77}, {0.10, 0.02}}, wpD55, "D55", Gamma(2.2)),
	space("S-Gamut", primSGamut3, wpD65, "D65", SLog2),
	space("S-Gamut3", primSGamut3, wpD65, "D65", SLog3),
	space("S-Gamut3.Cine", [3]XY{{0.766, 0.275}, {0.225, 0.800}, {0.089, -0.087}}, wpD65, "D65", SLog3),
	space("SMPTE 240M", primSMPTEC, wpD65, "D65", SMPTE240M),
	space("SMPTE C", primSMPTEC, wpD65, "D65", Gamma(2.2)),
	space("Sharp RGB", [3]XY{{0.6898, 0.3206}, {0.0736, 0.9003}, {0.1166, -0.0374}}, wpE, "E", Linear),
	space("V-Gamut", [3]XY{{0.730, 0.280}, {0.165, 0.840}, {0.100, -0.030}}, wpD65, "D65", VLog),
	space("Venice S-Gamut3", [3]XY{{0.740464264304292, 0.279364374750660}, {0.089241145423286, 0.893809528608105}, {0.110488236673827, -0.052579333080476}}, wpD65, "D65", SLog3),
	space("Venice S-Gamut3.Cine", [3]XY{{0.775901871567345, 0.274502392854799}, {0.188682902773355, 0.828684937020288}, {0.101337382499301, -0.089187517306263}}, wpD65, "D65", SLog3),
	space("Xtreme RGB", [3]XY{{1, 0}, {0, 1}, {0, 0}}, wpD50, "D50", Gamma(2.2)),
	space("sRGB", primBT709, wpD65, "D65", SRGB),
}

var spacesByName = func() map[string]*RGBSpace {
	m := make(map[string]*RGBSpace, len(Spaces))
	for _, s := range Spaces {
		m[s.Name] = s
	}
	return m
}()

// SpaceByName looks up a registered colourspace.
func SpaceByName(name string) (*RGBSpace, error) {
	s, ok := spacesByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpace, name)
	}
	return s, nil
}
