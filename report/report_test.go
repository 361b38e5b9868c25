package report

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var doc = map[string]interface{}{
	"cct": map[string]interface{}{"name": "CCT"},
	"Adobe RGB (1998)": map[string]interface{}{
		"name": "Adobe RGB (1998)",
		"D65":  map[string]interface{}{"R": 1.0, "G": 2.0, "B": 3.0},
	},
}

func TestRender(t *testing.T) {
	tpl, e := FromString(`{% for m in models %}{{ m }};{% endfor %}{{ result.cct.name }}`)
	require.NoError(t, e)
	out, e := tpl.Render(doc)
	require.NoError(t, e)
	assert.Equal(t, "Adobe RGB (1998);cct;CCT", out)
}

func TestModelFilter(t *testing.T) {
	tpl, e := FromString(`{% with a=result|model:"Adobe RGB (1998)" %}{{ a.D65.G }}{% endwith %}|{{ result|model:"missing" }}`)
	require.NoError(t, e)
	out, e := tpl.Render(doc)
	require.NoError(t, e)
	assert.Equal(t, "2.000000|", out)
}

func TestJSONFilter(t *testing.T) {
	tpl, e := FromString(`{{ result.cct|tojson }}`)
	require.NoError(t, e)
	out, e := tpl.Render(doc)
	require.NoError(t, e)
	assert.Equal(t, `{"name":"CCT"}`, out)
}

func TestRenderError(t *testing.T) {
	tpl, e := FromString(`{% if error %}failed: {{ error }}{% endif %}`)
	require.NoError(t, e)
	out, e := tpl.Render(map[string]interface{}{"error": "RGB color space lookup failure"})
	require.NoError(t, e)
	assert.Equal(t, "failed: RGB color space lookup failure", out)

	out, e = tpl.Render(doc)
	require.NoError(t, e)
	assert.Empty(t, out)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.tpl")
	require.NoError(t, ioutil.WriteFile(path, []byte(`{{ x }}`), 0644))
	tpl, e := FromFile(path)
	require.NoError(t, e)
	out, e := tpl.Execute(map[string]interface{}{"x": "ok"})
	require.NoError(t, e)
	assert.Equal(t, "ok", out)

	_, e = FromFile(filepath.Join(t.TempDir(), "missing.tpl"))
	assert.Error(t, e)

	_, e = FromString(`{% if %}`)
	assert.Error(t, e)
}
