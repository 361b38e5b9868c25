package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, e := Load()
	require.NoError(t, e)
	require.Len(t, c.Keys, len(c.Templates))

	// file order is kept
	assert.Equal(t, "ACES2065-1", c.Keys[0])

	lab := c.Get("cielab")
	require.NotNil(t, lab)
	assert.Equal(t, "CIELAB", lab.Name)
	assert.Equal(t, "CIE Fundamentals", lab.Section)
	assert.Equal(t, []string{"L*", "a*", "b*"}, lab.Codes)
	assert.True(t, lab.AppliesTo("FL2"))

	srgb := c.Get("sRGB")
	require.NotNil(t, srgb)
	assert.True(t, srgb.AppliesTo("D65"))
	assert.False(t, srgb.AppliesTo("D50"))

	assert.Nil(t, c.Get("nope"))
}

func TestFieldsIsACopy(t *testing.T) {
	c, e := Load()
	require.NoError(t, e)

	f := c.Get("cielab").Fields()
	assert.Equal(t, "CIELAB", f["name"])
	f["name"] = "changed"
	assert.Equal(t, "CIELAB", c.Get("cielab").Fields()["name"])
}

func TestSections(t *testing.T) {
	c, e := Load()
	require.NoError(t, e)
	s := c.Sections()
	assert.Equal(t, "RGB Color Spaces", s[0])
	assert.Contains(t, s, "Color Appearance Models")
}

func TestParse(t *testing.T) {
	c, e := Parse([]byte(`{
		"b": {"name": "B", "illuminant": ["A", "C"], "codes": ["x"]},
		"a": {"name": "A", "illuminant": "all"}
	}`))
	require.NoError(t, e)
	assert.Equal(t, []string{"b", "a"}, c.Keys)
	assert.True(t, c.Get("b").AppliesTo("C"))
	assert.False(t, c.Get("b").AppliesTo("D65"))
	assert.True(t, c.Get("a").AppliesTo("D65"))

	_, e = Parse([]byte(`[]`))
	assert.Error(t, e)
	_, e = Parse([]byte(`{"a": 1}`))
	assert.Error(t, e)
}

func TestIlluminantList(t *testing.T) {
	l, e := IlluminantList(ListAll)
	require.NoError(t, e)
	assert.Contains(t, l, "C")
	assert.Contains(t, l, "DCI-P3")

	l, e = IlluminantList(ListISO7589)
	require.NoError(t, e)
	assert.Len(t, l, 4)

	_, e = IlluminantList("Some")
	assert.Error(t, e)

	assert.True(t, IsCIEIlluminant("FL3.15"))
	assert.False(t, IsCIEIlluminant("C"))
}

func TestDefaultsKeepTheirShape(t *testing.T) {
	c, e := Load()
	require.NoError(t, e)

	assert.Equal(t, "Viewing Conditions: average", c.Get("zcam").Defaults)
	for _, k := range []string{"jmhhellwig2022", "llab", "nayatani95", "rlab"} {
		assert.IsType(t, "", c.Get(k).Defaults, k)
	}

	atd, ok := c.Get("atd95").Defaults.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 318.31, atd["Y<sub>0</sub>"])
	assert.Nil(t, c.Get("cielab").Defaults)
}
