package etdoc

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	attributeMarker = "-"
	queryMarker     = "~"
	valueIndent     = "    "
)

// rendered is one attribute or query in its final text form.
type rendered struct {
	text      string
	multiLine bool
}

// Encode renders a mapping as canonical document text: the description as a
// comment section, the remaining attributes flattened into sorted dotted
// paths, then the queries in insertion order. Sections are separated by one
// blank line, as is every multi-line entry from its neighbours.
//
// v must be a *Document, a Document or a map with string keys; anything else
// yields an *InvalidInputError. A mapping found inside a sequence or set
// yields an *IllegalNestedHashError, and a key that is empty or contains
// whitespace an *InvalidKeyError. Empty nested mappings produce no line and
// are absent after a decode. Indentation shared by every line of a
// multi-line value is not preserved either.
func Encode(v any) (string, error) {
	entries, ok := mappingEntries(v)
	if !ok {
		return "", &InvalidInputError{Got: fmt.Sprintf("%T", v)}
	}

	var (
		desc    any
		hasDesc bool
		attrs   []entry
		queries = NewDocument()
	)
	for _, e := range entries {
		switch e.key {
		case KeyDescription:
			desc, hasDesc = e.value, true
		case KeyQueries, KeyQuery:
			qs, ok := mappingEntries(e.value)
			if !ok {
				return "", &InvalidInputError{Got: fmt.Sprintf("%s: %T", e.key, e.value)}
			}
			for _, q := range qs {
				queries.Set(q.key, q.value)
			}
		default:
			attrs = append(attrs, e)
		}
	}

	var sections []string
	if hasDesc {
		s, err := displayValue(desc, KeyDescription)
		if err != nil {
			return "", err
		}
		sections = append(sections, renderComment(s))
	}

	var items []rendered
	for _, p := range flattenEntries(nil, "", attrs, true) {
		r, err := renderEntry(attributeMarker, p.Path, p.Value)
		if err != nil {
			return "", err
		}
		items = append(items, r)
	}
	if len(items) > 0 {
		sections = append(sections, joinEntries(items))
	}

	items = items[:0]
	for k, v := range queries.All() {
		r, err := renderEntry(queryMarker, k, v)
		if err != nil {
			return "", err
		}
		items = append(items, r)
	}
	if len(items) > 0 {
		sections = append(sections, joinEntries(items))
	}

	return strings.Join(sections, "\n\n"), nil
}

// Marshal is Encode returning bytes.
func Marshal(v any) ([]byte, error) {
	s, err := Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func renderComment(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l == "" {
			lines[i] = "#"
			continue
		}
		lines[i] = "# " + l
	}
	return strings.Join(lines, "\n")
}

func renderEntry(marker, key string, value any) (rendered, error) {
	if !validKey(key) {
		return rendered{}, &InvalidKeyError{Key: key}
	}
	s, err := displayValue(value, key)
	if err != nil {
		return rendered{}, err
	}
	lines := valueLines(s)
	header := marker + " " + key + " ="
	if len(lines) < 2 {
		if len(lines) == 0 || lines[0] == "" {
			return rendered{text: header}, nil
		}
		return rendered{text: header + " " + lines[0]}, nil
	}

	var b strings.Builder
	b.WriteString(header)
	for _, l := range lines {
		b.WriteByte('\n')
		if l != "" {
			b.WriteString(valueIndent)
			b.WriteString(l)
		}
	}
	return rendered{text: b.String(), multiLine: true}, nil
}

// valueLines splits a value into lines. Whitespace-only lines become empty,
// and leading and trailing empty lines are dropped, since neither survives
// a decode.
func valueLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			lines[i] = ""
		}
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func joinEntries(items []rendered) string {
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			if it.multiLine || items[i-1].multiLine {
				b.WriteString("\n\n")
			} else {
				b.WriteByte('\n')
			}
		}
		b.WriteString(it.text)
	}
	return b.String()
}

// validKey reports whether key survives a decode as a single token.
func validKey(key string) bool {
	return key != "" && strings.IndexFunc(key, unicode.IsSpace) < 0
}
