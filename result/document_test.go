package result

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmuldo/colorconv/catalog"
)

const (
	obs = "CIE 1931 2 Degree Standard Observer"
)

func newDoc(t *testing.T) *Document {
	c, e := catalog.Parse([]byte(`{
		"cielab": {"name": "CIELAB", "illuminant": "all", "codes": ["L*", "a*", "b*"]},
		"cct": {"name": "CCT", "illuminant": "all", "codes": ["T"]},
		"pointer": {"name": "Pointer", "illuminant": "none"}
	}`))
	require.NoError(t, e)
	return New(c)
}

func TestNewCopiesTemplates(t *testing.T) {
	d := newDoc(t)
	assert.Equal(t, []string{"cct", "cielab", "pointer"}, d.Keys())
	assert.Equal(t, "CIELAB", d.Entries["cielab"]["name"])
}

func TestRecordNesting(t *testing.T) {
	d := newDoc(t)

	d.Record("cielab", []float64{50, 1, 2}, Key{Observer: obs, Illuminant: "D65"})
	assert.Equal(t,
		map[string]interface{}{"L*": 50.0, "a*": 1.0, "b*": 2.0},
		d.Value("cielab", Key{Observer: obs, Illuminant: "D65"}))

	d.Record("cielab", []float64{40, 0, 0}, Key{Observer: obs, Illuminant: "D50", Cat: "Bradford"})
	assert.Equal(t, 40.0,
		d.Value("cielab", Key{Observer: obs, Illuminant: "D50", Cat: "Bradford"}).(map[string]interface{})["L*"])

	d.Record("cielab", []float64{1, 2, 3}, Key{Illuminant: "D65"})
	assert.Equal(t, 3.0, d.Entries["cielab"]["D65"].(map[string]interface{})["b*"])

	d.Record("cielab", []float64{1, 2, 3}, Key{Illuminant: "D65", Cat: "CAT02"})
	assert.Equal(t, 2.0, d.Entries["cielab"]["D65"].(map[string]interface{})["CAT02"].(map[string]interface{})["a*"])

	d.Record("pointer", "True", Key{})
	assert.Equal(t, "True", d.Entries["pointer"][None])
}

func TestRecordScalarIsZipped(t *testing.T) {
	d := newDoc(t)
	d.Record("cct", 6504.0, Key{Observer: obs, Illuminant: "D65"})
	assert.Equal(t, map[string]interface{}{"T": 6504.0}, d.Value("cct", Key{Observer: obs, Illuminant: "D65"}))
}

func TestRecordUnknownModel(t *testing.T) {
	d := newDoc(t)
	d.Record("extra", 1.0, Key{})
	assert.Equal(t, Entry{None: 1.0}, d.Entries["extra"])
}

func TestRecordSanitizes(t *testing.T) {
	d := newDoc(t)
	d.Record("cielab", []float64{math.NaN(), math.Inf(1), 1}, Key{Illuminant: "A"})
	assert.Equal(t,
		map[string]interface{}{"L*": "-", "a*": "-", "b*": 1.0},
		d.Entries["cielab"]["A"])

	d.Record("sr", map[string]float64{"360.0": math.NaN()}, Key{})
	assert.Equal(t, map[string]interface{}{"360.0": "-"}, d.Entries["sr"][None])

	b, e := json.Marshal(d)
	require.NoError(t, e)
	assert.NotContains(t, string(b), "NaN")
}

func TestMerge(t *testing.T) {
	d := newDoc(t)
	require.NoError(t, d.Merge(nil))
	require.NoError(t, d.Merge([]byte(`{"cct": {"name": "precalc"}, "new": {"x": 1}}`)))
	assert.Equal(t, Entry{"name": "precalc"}, d.Entries["cct"])
	assert.Equal(t, Entry{"x": 1.0}, d.Entries["new"])
	assert.Equal(t, "CIELAB", d.Entries["cielab"]["name"])

	assert.Error(t, d.Merge([]byte(`{`)))
	assert.Error(t, d.Merge([]byte(`{"cct": 5}`)))
}

func TestFail(t *testing.T) {
	d := newDoc(t)
	d.Fail("RGB color space lookup failure")
	b, e := json.Marshal(d)
	require.NoError(t, e)
	assert.JSONEq(t, `{"error": "RGB color space lookup failure"}`, string(b))
}
