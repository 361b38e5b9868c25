/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorconv/catalog"
	"github.com/mmuldo/colorconv/colorimetry"
	"github.com/mmuldo/colorconv/convert"
	"github.com/mmuldo/colorconv/input"
	"github.com/mmuldo/colorconv/report"
)

// config keys bound to convert flags
var convertConfigKeys = map[string]string{
	"bitdepth":         "bitdepth",
	"observer":         "observer",
	"input_illuminant": "input_illuminant",
	"input_colorspace": "input_colorspace",
	"cat":              "cat",
	"illuminant_list":  "illuminant_list",
	"viewing.la":       "adapting_luminance",
	"viewing.yb":       "background_luminance",
	"viewing.surround": "surround",
}

var tm30Formats = []string{"Full", "Intermediate", "Simple"}

// newConvertCmd returns the convert command with its own flag set.
func newConvertCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "convert",
		Short: "Converts one color to every supported color model",
		Long: `Converts one color to every supported color model.

Exactly one input is used, the first complete one in this order: CIELAB,
CIELCHab, CIELUV, CIELCHuv, CIEXYZ, RGB, spectrum, wavelength, image.
Spectral data may be given comma separated or as trailing arguments:

  colorconv convert --start 400 --stop 700 --interval 100 --data 0.1 0.5 0.7 0.9`,
		RunE: runConvert,
	}

	f := c.Flags()
	f.SortFlags = false

	f.String("bitdepth", "8", "bit depth of input values: 8, 15+1, 16 or 32")
	f.String("precalc", "", "precalculated data in JSON format")
	f.String("observer", colorimetry.CIE1931, "standard observer")
	f.String("input_illuminant", "D65", "standard illuminant of input values")
	f.StringSlice("cat", colorimetry.CATs, "chromatic adaptation transforms, None disables adaptation")
	f.String("illuminant_list", catalog.ListAll, "illuminants to convert under: All, CIE or ISO_7589")
	f.String("plotpath", "", "spectral plot path, .svg is appended when missing (not supported)")
	f.String("template", "", "pongo2 template to render the result with instead of printing JSON")

	f.Float64("adapting_luminance", colorimetry.DefaultViewingConditions.LA, "adapting field luminance L_A in cd/m2")
	f.Float64("background_luminance", colorimetry.DefaultViewingConditions.Yb, "relative background luminance Y_b")
	f.String("surround", "average", "surround: average, dim or dark")

	f.Float64("lstar", 0, "CIELAB lightness value, 0-100")
	f.Float64("astar", 0, "CIELAB a* value, any bit depth")
	f.Float64("bstar", 0, "CIELAB b* value, any bit depth")

	f.Float64("lchab_l_val", 0, "CIELCHab lightness value, 0-100")
	f.Float64("lchab_ch_val", 0, "CIELCHab chroma value, any bit depth")
	f.Float64("lchab_ab_val", 0, "CIELCHab hue value, any bit depth")

	f.Float64("l_val", 0, "CIELUV lightness value, any bit depth, 0-100")
	f.Float64("u_val", 0, "CIELUV u* value, any bit depth")
	f.Float64("v_val", 0, "CIELUV v* value, any bit depth")

	f.Float64("lchuv_l_val", 0, "CIELCHuv lightness value, 0-100")
	f.Float64("lchuv_ch_val", 0, "CIELCHuv chroma value, any bit depth")
	f.Float64("lchuv_uv_val", 0, "CIELCHuv hue value, any bit depth")

	f.Float64("x_val", 0, "CIEXYZ X value, 0-1")
	f.Float64("y_val", 0, "CIEXYZ Y value, luminance, 0-1")
	f.Float64("z_val", 0, "CIEXYZ Z value, 0-1")

	f.Float64("red", 0, "red value, any bit depth")
	f.Float64("green", 0, "green value, any bit depth")
	f.Float64("blue", 0, "blue value, any bit depth")
	f.String("input_colorspace", "sRGB", "RGB color space of input values")

	f.Int("start", 0, "start of distribution, between 380-750 nm")
	f.Int("stop", 0, "end of distribution, between 400-780 nm")
	f.Int("interval", 0, "interval between measurements, in nm, 1-20")
	f.String("spectype", "", "spectral distribution type: Emissive, Reflective or Transmissive")
	f.StringSlice("data", nil, "spectral values, 0-1")
	f.Int("intrpl_intrvl", 0, "smaller interval to interpolate to, between 1-5 nm")
	f.String("tm30path", "", "IES TM-30 report path (not supported)")
	f.String("tm30format", "", "IES TM-30 report format: Full, Intermediate or Simple")

	f.Float64("wave", 0, "wavelength in nm")

	f.String("image", "", "image file whose dominant color is converted")

	for key, name := range convertConfigKeys {
		_ = viper.BindPFlag(key, f.Lookup(name))
	}

	return c
}

func init() {
	rootCmd.AddCommand(newConvertCmd())
}

func runConvert(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()

	a, e := inputArgs(f, args)
	if e != nil {
		return usage(e)
	}
	depth, e := input.ParseBitDepth(viper.GetString("bitdepth"))
	if e != nil {
		return usage(e)
	}
	opts, e := convertOptions(f, depth)
	if e != nil {
		return usage(e)
	}

	c, e := input.Parse(a, depth)
	if errors.Is(e, input.ErrNoModel) {
		return usage(e)
	}
	if e != nil {
		return e
	}

	p, e := convert.New(logger, opts)
	if e != nil {
		return e
	}
	doc, e := p.Run(context.Background(), c)
	if e != nil {
		return e
	}

	if path, _ := f.GetString("template"); path != "" {
		tpl, e := report.FromFile(path)
		if e != nil {
			return e
		}
		s, e := tpl.Render(doc.Map())
		if e != nil {
			return e
		}
		fmt.Fprint(cmd.OutOrStdout(), s)
		return nil
	}

	b, e := json.Marshal(doc)
	if e != nil {
		return e
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

// inputArgs collects the input values that were given on the command line.
// Trailing arguments continue --data.
func inputArgs(f *pflag.FlagSet, args []string) (*input.Args, error) {
	a := &input.Args{
		Lab:   triple(f, "lstar", "astar", "bstar"),
		LCHab: triple(f, "lchab_l_val", "lchab_ch_val", "lchab_ab_val"),
		Luv:   triple(f, "l_val", "u_val", "v_val"),
		LCHuv: triple(f, "lchuv_l_val", "lchuv_ch_val", "lchuv_uv_val"),
		XYZ:   triple(f, "x_val", "y_val", "z_val"),
		RGB:   triple(f, "red", "green", "blue"),
	}
	a.Start = intFlag(f, "start")
	a.Stop = intFlag(f, "stop")
	a.Interval = intFlag(f, "interval")
	if f.Changed("wave") {
		w, _ := f.GetFloat64("wave")
		a.Wave = &w
	}
	a.ImagePath, _ = f.GetString("image")

	if !f.Changed("data") {
		if len(args) > 0 {
			return nil, fmt.Errorf("unrecognized arguments: %s", strings.Join(args, " "))
		}
		return a, nil
	}
	data, _ := f.GetStringSlice("data")
	data = append(data, args...)
	a.Data = make([]float64, 0, len(data))
	for _, s := range data {
		v, e := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if e != nil {
			return nil, fmt.Errorf("argument --data: invalid float value: %q", s)
		}
		a.Data = append(a.Data, v)
	}
	return a, nil
}

func triple(f *pflag.FlagSet, names ...string) input.Triple {
	var t input.Triple
	for i, n := range names {
		if f.Changed(n) {
			v, _ := f.GetFloat64(n)
			t[i] = &v
		}
	}
	return t
}

func intFlag(f *pflag.FlagSet, name string) *int {
	if !f.Changed(name) {
		return nil
	}
	v, _ := f.GetInt(name)
	return &v
}

// convertOptions validates the conversion settings of flags and config.
func convertOptions(f *pflag.FlagSet, depth input.BitDepth) (convert.Options, error) {
	opts := convert.DefaultOptions()
	opts.Depth = depth

	if o := viper.GetString("observer"); colorimetry.ObserverByName(o) == nil {
		return opts, fmt.Errorf("argument --observer: invalid choice: %q", o)
	}

	opts.InputIlluminant = viper.GetString("input_illuminant")
	if !catalog.IsCIEIlluminant(opts.InputIlluminant) {
		return opts, fmt.Errorf("argument --input_illuminant: invalid choice: %q", opts.InputIlluminant)
	}
	opts.InputSpace = viper.GetString("input_colorspace")

	cats, e := parseCats(viper.GetStringSlice("cat"))
	if e != nil {
		return opts, e
	}
	opts.Cats = cats

	if opts.Illuminants, e = catalog.IlluminantList(viper.GetString("illuminant_list")); e != nil {
		return opts, fmt.Errorf("argument --illuminant_list: %w", e)
	}

	opts.SpecType, _ = f.GetString("spectype")
	switch opts.SpecType {
	case "", convert.Emissive, convert.Reflective, convert.Transmissive:
	default:
		return opts, fmt.Errorf("argument --spectype: invalid choice: %q", opts.SpecType)
	}

	opts.Interpolate, _ = f.GetInt("intrpl_intrvl")
	if f.Changed("intrpl_intrvl") && (opts.Interpolate < 1 || opts.Interpolate > 5) {
		return opts, fmt.Errorf("argument --intrpl_intrvl: must be between 1 and 5 nm")
	}

	if format, _ := f.GetString("tm30format"); format != "" && !contains(tm30Formats, format) {
		return opts, fmt.Errorf("argument --tm30format: invalid choice: %q", format)
	}
	opts.TM30Path, _ = f.GetString("tm30path")

	opts.PlotPath, _ = f.GetString("plotpath")
	if opts.PlotPath != "" && !strings.HasSuffix(opts.PlotPath, ".svg") {
		opts.PlotPath += ".svg"
	}

	surround, e := colorimetry.SurroundByName(viper.GetString("viewing.surround"))
	if e != nil {
		return opts, fmt.Errorf("argument --surround: %w", e)
	}
	opts.Viewing = colorimetry.ViewingConditions{
		LA:       viper.GetFloat64("viewing.la"),
		Yb:       viper.GetFloat64("viewing.yb"),
		Surround: surround,
	}

	if precalc, _ := f.GetString("precalc"); precalc != "" {
		opts.Precalc = []byte(precalc)
		if strings.HasPrefix(precalc, "@") {
			if opts.Precalc, e = ioutil.ReadFile(precalc[1:]); e != nil {
				return opts, fmt.Errorf("argument --precalc: %w", e)
			}
		}
	}

	return opts, nil
}

// parseCats resolves the --cat list: None disables adaptation and an empty
// list selects every transform.
func parseCats(cats []string) ([]string, error) {
	if len(cats) == 1 && cats[0] == "None" {
		return nil, nil
	}
	if len(cats) == 0 {
		return colorimetry.CATs, nil
	}
	for _, c := range cats {
		if _, e := colorimetry.CATMatrix(c); e != nil {
			return nil, fmt.Errorf("argument --cat: invalid choice: %q", c)
		}
	}
	return cats, nil
}

func contains(l []string, s string) bool {
	for _, x := range l {
		if x == s {
			return true
		}
	}
	return false
}
