package etdoc

import (
	"iter"
	"reflect"
	"strings"

	"github.com/reoring/etdoc/internal/syntax"
)

// Reserved keys.
const (
	KeyDescription = syntax.DescriptionKey
	KeyQueries     = "queries"
	// KeyQuery is accepted as an alias of KeyQueries on encode.
	KeyQuery = "query"
)

// Document is an ordered mapping from key to value. Values are scalars
// (string, int64, float64, *apd.Decimal, bool, nil), nested *Document values,
// sequences ([]any) or a Set. The zero value is an empty Document.
type Document struct {
	keys   []string
	values map[string]any
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{values: map[string]any{}}
}

// Len returns the number of keys.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d *Document) Keys() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.keys...)
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.values[key]
	return v, ok
}

// Set stores value under key. Overwriting an existing key keeps its position.
func (d *Document) Set(key string, value any) {
	if d.values == nil {
		d.values = map[string]any{}
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Delete removes key, if present.
func (d *Document) Delete(key string) {
	if d == nil {
		return
	}
	if _, ok := d.values[key]; !ok {
		return
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i:i], d.keys[i+1:]...)
			break
		}
	}
}

// All iterates over the entries in insertion order.
func (d *Document) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if d == nil {
			return
		}
		for _, k := range d.keys {
			if !yield(k, d.values[k]) {
				return
			}
		}
	}
}

// SetPath stores value at a nested path, creating intermediate documents.
// A non-document value found on the way is replaced.
func (d *Document) SetPath(path []string, value any) {
	if len(path) == 0 {
		return
	}
	cur := d
	for _, p := range path[:len(path)-1] {
		next, ok := cur.values[p].(*Document)
		if !ok {
			next = NewDocument()
			cur.Set(p, next)
		}
		cur = next
	}
	cur.Set(path[len(path)-1], value)
}

// Description returns the reserved description text.
func (d *Document) Description() string {
	v, _ := d.Get(KeyDescription)
	s, _ := v.(string)
	return s
}

// Queries returns the reserved query mapping, or nil when there is none.
func (d *Document) Queries() *Document {
	v, _ := d.Get(KeyQueries)
	q, _ := v.(*Document)
	return q
}

// Map converts the document into plain Go maps, recursively. Key order is
// lost; it is meant for comparisons and for callers wanting map[string]any.
func (d *Document) Map() map[string]any {
	if d == nil {
		return nil
	}
	out := make(map[string]any, len(d.keys))
	for _, k := range d.keys {
		out[k] = plainValue(d.values[k])
	}
	return out
}

func plainValue(v any) any {
	switch t := v.(type) {
	case *Document:
		return t.Map()
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = plainValue(t[i])
		}
		return out
	case Set:
		return plainValue([]any(t))
	}
	return v
}

// Set is an unordered collection rendered like a sequence. Elements keep
// their first-occurrence order.
type Set []any

// NewSet returns a Set of elems without duplicates.
func NewSet(elems ...any) Set {
	s := make(Set, 0, len(elems))
	for _, e := range elems {
		dup := false
		for _, have := range s {
			if reflect.DeepEqual(have, e) {
				dup = true
				break
			}
		}
		if !dup {
			s = append(s, e)
		}
	}
	return s
}

// splitPath splits a dotted key. Keys with empty segments are kept whole.
func splitPath(key string) []string {
	parts := strings.Split(key, ".")
	for _, p := range parts {
		if p == "" {
			return []string{key}
		}
	}
	return parts
}
