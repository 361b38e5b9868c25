// Package report renders a conversion result through a pongo2 template.
package report

import (
	"encoding/json"
	"sort"

	"github.com/flosch/pongo2"
)

func init() {
	pongo2.RegisterFilter("model", filterModel)
	pongo2.RegisterFilter("tojson", filterJSON)
}

// Template wraps a compiled pongo2 template.
type Template struct {
	tpl *pongo2.Template
}

// FromFile compiles the template at path.
func FromFile(path string) (*Template, error) {
	tpl, e := pongo2.FromFile(path)
	if e != nil {
		return nil, e
	}
	return &Template{tpl}, nil
}

// FromString compiles a template held in memory.
func FromString(s string) (*Template, error) {
	tpl, e := pongo2.FromString(s)
	if e != nil {
		return nil, e
	}
	return &Template{tpl}, nil
}

// Render executes the template with the document. The context holds the
// document as result, its sorted model keys as models and, for error
// documents, the message as error. Model keys that are not identifiers are
// reached with the model filter: {{ result|model:"Adobe RGB (1998)" }}.
func (t *Template) Render(doc map[string]interface{}) (string, error) {
	ctxt := pongo2.Context{"result": doc}

	if msg, ok := doc["error"]; ok && len(doc) == 1 {
		ctxt["error"] = msg
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	ctxt["models"] = keys

	return t.tpl.Execute(ctxt)
}

// Execute runs the template with an arbitrary context.
func (t *Template) Execute(ctxt map[string]interface{}) (string, error) {
	return t.tpl.Execute(pongo2.Context(ctxt))
}

func filterModel(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	m, ok := in.Interface().(map[string]interface{})
	if !ok {
		return pongo2.AsValue(nil), nil
	}
	return pongo2.AsValue(m[param.String()]), nil
}

func filterJSON(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	b, e := json.Marshal(in.Interface())
	if e != nil {
		return nil, &pongo2.Error{Sender: "filter:tojson", OrigError: e}
	}
	return pongo2.AsSafeValue(string(b)), nil
}
