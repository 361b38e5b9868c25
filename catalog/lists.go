package catalog

import "fmt"

// Illuminant list selectors accepted by --illuminant_list.
const (
	ListAll     = "All"
	ListCIE     = "CIE"
	ListISO7589 = "ISO_7589"
)

// ISO 7589 sensitometric illuminants.
var ISO7589Illuminants = []string{
	"ISO 7589 Sensitometric Daylight",
	"ISO 7589 Sensitometric Studio Tungsten",
	"ISO 7589 Sensitometric Photoflood",
	"ISO 7589 Sensitometric Printer",
}

// CIEIlluminants are the CIE standard illuminants accepted as input
// illuminants.
var CIEIlluminants = []string{
	"A", "D50", "D55", "D65", "D75",
	"FL1", "FL2", "FL3",
	"FL3.1", "FL3.2", "FL3.3", "FL3.4", "FL3.5", "FL3.6", "FL3.7", "FL3.8",
	"FL3.9", "FL3.10", "FL3.11", "FL3.12", "FL3.13", "FL3.14", "FL3.15",
	"FL4", "FL5", "FL6", "FL7", "FL8", "FL9", "FL10", "FL11", "FL12",
	"HP1", "HP2", "HP3", "HP4", "HP5",
	"ID50", "ID65",
	"LED-B1", "LED-B2", "LED-B3", "LED-B4", "LED-B5", "LED-BH1", "LED-RGB1",
	"LED-V1", "LED-V2",
}

// CIENonStandard are illuminants some RGB spaces use that CIE no longer
// lists as standard.
var CIENonStandard = []string{"B", "C", "D60", "E"}

// RGBIlluminants covers every white point an RGB space in the catalog uses.
// C and E are present because some spaces are defined under them.
var RGBIlluminants = func() []string {
	l := []string{"A", "C", "D50", "D55", "D65", "D75", "E"}
	l = append(l, CIEIlluminants[5:]...)
	l = append(l, ISO7589Illuminants...)
	return append(l, "ACES", "Blackmagic Wide Gamut", "DCI-P3")
}()

// IlluminantList resolves an --illuminant_list selector.
func IlluminantList(name string) ([]string, error) {
	switch name {
	case ListAll, "":
		return RGBIlluminants, nil
	case ListCIE:
		return CIEIlluminants, nil
	case ListISO7589:
		return ISO7589Illuminants, nil
	}
	return nil, fmt.Errorf("unknown illuminant list %q", name)
}

// IsCIEIlluminant reports whether name may be used as input illuminant.
func IsCIEIlluminant(name string) bool {
	for _, i := range CIEIlluminants {
		if i == name {
			return true
		}
	}
	return false
}

// CSSSpaces are the RGB spaces CSS Color 4 has color() keywords for.
var CSSSpaces = []struct {
	Space   string
	Keyword string
	Key     string
}{
	{"sRGB", "srgb", "srgb_css_color"},
	{"Adobe RGB (1998)", "a98-rgb", "a98_rgb_css_color"},
	{"Display P3", "display-p3", "display_p3_css_color"},
	{"ITU-R BT.2020", "rec2020", "rec_2020_css_color"},
	{"ProPhoto RGB", "prophoto-rgb", "prophoto_rgb_css_color"},
}
