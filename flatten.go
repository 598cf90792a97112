package etdoc

import (
	"fmt"
	"reflect"
	"sort"
)

// Pair is one flattened attribute: a dotted path and a scalar or collection.
type Pair struct {
	Path  string
	Value any
}

type entry struct {
	key   string
	value any
}

// Flatten turns a nested mapping into dotted-path pairs. With sorted set,
// each nesting level is ordered alphabetically by its local key before its
// children are expanded; otherwise the input order is kept (Go maps are
// visited in key order).
func Flatten(v any, sorted bool) ([]Pair, error) {
	entries, ok := mappingEntries(v)
	if !ok {
		return nil, &InvalidInputError{Got: fmt.Sprintf("%T", v)}
	}
	return flattenEntries(nil, "", entries, sorted), nil
}

func flattenEntries(dst []Pair, prefix string, entries []entry, sorted bool) []Pair {
	if sorted {
		entries = append([]entry(nil), entries...)
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	}
	for _, e := range entries {
		path := e.key
		if prefix != "" {
			path = prefix + "." + e.key
		}
		if sub, ok := mappingEntries(e.value); ok {
			dst = flattenEntries(dst, path, sub, sorted)
			continue
		}
		dst = append(dst, Pair{Path: path, Value: e.value})
	}
	return dst
}

func isMapping(v any) bool {
	_, ok := mappingEntries(v)
	return ok
}

// mappingEntries lists the entries of any supported mapping type.
func mappingEntries(v any) ([]entry, bool) {
	switch t := v.(type) {
	case *Document:
		return documentEntries(t), true
	case Document:
		return documentEntries(&t), true
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]entry, len(keys))
		for i, k := range keys {
			out[i] = entry{key: k, value: t[k]}
		}
		return out, true
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	out := make([]entry, len(keys))
	for i, k := range keys {
		out[i] = entry{key: k.String(), value: rv.MapIndex(k).Interface()}
	}
	return out, true
}

func documentEntries(d *Document) []entry {
	out := make([]entry, 0, d.Len())
	for k, v := range d.All() {
		out = append(out, entry{key: k, value: v})
	}
	return out
}
