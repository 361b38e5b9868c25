package result

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/mmuldo/colorconv/catalog"
)

// None is the key values without observer or illuminant are stored under.
const None = "None"

// Entry is one model's section of the document: the template fields plus
// the recorded values keyed by observer, illuminant and CAT.
type Entry map[string]interface{}

// Document is the full conversion result, keyed by model.
type Document struct {
	Entries map[string]Entry
	// Failure replaces the whole document with {"error": Failure}.
	Failure string
}

// Key locates a value inside an entry. Empty members are not used.
type Key struct {
	Observer   string
	Illuminant string
	Cat        string
}

// New creates a document holding every template of c, with no values.
func New(c *catalog.Catalog) *Document {
	d := &Document{Entries: make(map[string]Entry, len(c.Keys))}
	for _, k := range c.Keys {
		d.Entries[k] = Entry(c.Get(k).Fields())
	}
	return d
}

// Merge replaces top-level entries with those of a precalculated JSON
// object.
func (d *Document) Merge(precalc []byte) error {
	if len(precalc) == 0 {
		return nil
	}
	var m map[string]json.RawMessage
	if e := json.Unmarshal(precalc, &m); e != nil {
		return fmt.Errorf("precalc: %w", e)
	}
	for k, raw := range m {
		var entry Entry
		if e := json.Unmarshal(raw, &entry); e != nil {
			return fmt.Errorf("precalc: entry %q: %w", k, e)
		}
		d.Entries[k] = entry
	}
	return nil
}

// Fail turns the document into an error document.
func (d *Document) Fail(msg string) {
	d.Failure = msg
}

// Record stores value for model at k. If the entry has codes, the value is
// zipped onto them first, a scalar becoming a one-element list. Non-finite
// numbers are replaced with "-".
func (d *Document) Record(model string, value interface{}, k Key) {
	entry, ok := d.Entries[model]
	if !ok {
		entry = make(Entry)
		d.Entries[model] = entry
	}

	value = sanitize(value)
	if codes := entry.codes(); codes != nil {
		value = zip(codes, value)
	}

	switch {
	case k.Observer != "":
		byIll := child(entry, k.Observer)
		if k.Cat == "" {
			byIll[k.Illuminant] = value
		} else {
			child(byIll, k.Illuminant)[k.Cat] = value
		}
	case k.Illuminant != "":
		if k.Cat == "" {
			entry[k.Illuminant] = value
		} else {
			child(entry, k.Illuminant)[k.Cat] = value
		}
	default:
		entry[None] = value
	}
}

// Value returns the recorded value at k, or nil.
func (d *Document) Value(model string, k Key) interface{} {
	var cur interface{} = map[string]interface{}(d.Entries[model])
	path := []string{k.Observer, k.Illuminant, k.Cat}
	if k.Observer == "" && k.Illuminant == "" {
		path = []string{None}
	}
	for _, p := range path {
		if p == "" {
			continue
		}
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil
		}
		cur = m[p]
	}
	return cur
}

// Keys returns the model keys in sorted order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.Entries))
	for k := range d.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns the document as plain maps, for templates.
func (d *Document) Map() map[string]interface{} {
	if d.Failure != "" {
		return map[string]interface{}{"error": d.Failure}
	}
	m := make(map[string]interface{}, len(d.Entries))
	for k, v := range d.Entries {
		m[k] = map[string]interface{}(v)
	}
	return m
}

// MarshalJSON emits the document compactly.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Map())
}

func (e Entry) codes() []string {
	switch c := e["codes"].(type) {
	case []string:
		return c
	case []interface{}:
		out := make([]string, 0, len(c))
		for _, v := range c {
			s, ok := v.(string)
			if !ok {
				return nil
			}
			out = append(out, s)
		}
		return out
	}
	return nil
}

// child returns m[k] as a map, replacing whatever else is there.
func child(m map[string]interface{}, k string) map[string]interface{} {
	if c, ok := m[k].(map[string]interface{}); ok {
		return c
	}
	c := make(map[string]interface{})
	m[k] = c
	return c
}

func zip(codes []string, value interface{}) map[string]interface{} {
	var values []interface{}
	switch v := value.(type) {
	case []interface{}:
		values = v
	case []string:
		for _, s := range v {
			values = append(values, s)
		}
	default:
		values = []interface{}{v}
	}

	out := make(map[string]interface{}, len(codes))
	for i, c := range codes {
		if i >= len(values) {
			break
		}
		out[c] = values[i]
	}
	return out
}

// sanitize normalizes numeric slices to []interface{} and replaces NaN and
// Inf with "-".
func sanitize(value interface{}) interface{} {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "-"
		}
		return v
	case []float64:
		out := make([]interface{}, len(v))
		for i, f := range v {
			out[i] = sanitize(f)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, x := range v {
			out[i] = sanitize(x)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, x := range v {
			out[k] = sanitize(x)
		}
		return out
	case map[string]float64:
		out := make(map[string]interface{}, len(v))
		for k, f := range v {
			out[k] = sanitize(f)
		}
		return out
	}
	return value
}
