package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed templates.json
var templatesJSON []byte

// Template describes one output model: its display metadata and the codes
// its values are zipped onto.
type Template struct {
	Key         string
	Name        string                 `json:"name"`
	Section     string                 `json:"section"`
	UIGroup     string                 `json:"ui_group"`
	Description string                 `json:"description"`
	Observer    string                 `json:"observer"`
	Defaults    interface{}            `json:"defaults"`
	Labels      []string               `json:"labels"`
	Codes       []string               `json:"codes"`
	Units       []string               `json:"units"`
	Illuminants []string               `json:"-"`

	fields map[string]interface{}
}

// AppliesTo reports whether the template is computed under illuminant.
func (t *Template) AppliesTo(illuminant string) bool {
	for _, i := range t.Illuminants {
		if i == "all" || i == illuminant {
			return true
		}
	}
	return false
}

// Fields returns a fresh copy of the template's raw fields.
func (t *Template) Fields() map[string]interface{} {
	m := make(map[string]interface{}, len(t.fields))
	for k, v := range t.fields {
		m[k] = v
	}
	return m
}

// Catalog is the ordered set of model templates.
type Catalog struct {
	Keys      []string
	Templates map[string]*Template
}

// Get returns the template for key, or nil.
func (c *Catalog) Get(key string) *Template {
	return c.Templates[key]
}

// Sections returns the section names in first-seen order.
func (c *Catalog) Sections() []string {
	var out []string
	seen := make(map[string]bool)
	for _, k := range c.Keys {
		s := c.Templates[k].Section
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// Load parses the embedded template catalog.
func Load() (*Catalog, error) {
	return Parse(templatesJSON)
}

// Parse reads a catalog document: a JSON object of template objects. Key
// order is kept.
func Parse(data []byte) (*Catalog, error) {
	d := json.NewDecoder(bytes.NewReader(data))
	if e := expectDelim(d, '{'); e != nil {
		return nil, e
	}

	c := &Catalog{Templates: make(map[string]*Template)}
	for d.More() {
		tok, e := d.Token()
		if e != nil {
			return nil, e
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("catalog: unexpected token %v", tok)
		}

		var raw json.RawMessage
		if e = d.Decode(&raw); e != nil {
			return nil, fmt.Errorf("catalog: template %q: %w", key, e)
		}
		t, e := parseTemplate(key, raw)
		if e != nil {
			return nil, e
		}
		if _, dup := c.Templates[key]; !dup {
			c.Keys = append(c.Keys, key)
		}
		c.Templates[key] = t
	}
	if e := expectDelim(d, '}'); e != nil {
		return nil, e
	}
	return c, nil
}

func parseTemplate(key string, raw json.RawMessage) (*Template, error) {
	t := &Template{Key: key}
	if e := json.Unmarshal(raw, t); e != nil {
		return nil, fmt.Errorf("catalog: template %q: %w", key, e)
	}
	if e := json.Unmarshal(raw, &t.fields); e != nil {
		return nil, fmt.Errorf("catalog: template %q: %w", key, e)
	}

	switch v := t.fields["illuminant"].(type) {
	case string:
		t.Illuminants = []string{v}
	case []interface{}:
		for _, i := range v {
			if s, ok := i.(string); ok {
				t.Illuminants = append(t.Illuminants, s)
			}
		}
	}
	return t, nil
}

func expectDelim(d *json.Decoder, want json.Delim) error {
	tok, e := d.Token()
	if e != nil {
		return e
	}
	if got, ok := tok.(json.Delim); !ok || got != want {
		return fmt.Errorf("catalog: expected %q, got %v", want, tok)
	}
	return nil
}
