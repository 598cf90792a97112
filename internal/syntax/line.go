// Package syntax splits document text into classified lines and groups them
// into blocks, each of which yields exactly one key/value pair.
package syntax

import (
	"regexp"
	"strings"
)

// Kind classifies a single physical line.
type Kind int

const (
	KindComment Kind = iota
	KindStaticAttribute
	KindDynamicQuery
	KindContinuation
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindComment:
		return "comment"
	case KindStaticAttribute:
		return "static_attribute"
	case KindDynamicQuery:
		return "dynamic_query"
	case KindContinuation:
		return "continuation"
	case KindEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

const (
	commentMarker = '#'
	queryMarker   = '~'
)

var (
	staticAttributeRE = regexp.MustCompile(`^-\s(\S+)\s=(?:\s(.*))?$`)
	dynamicQueryRE    = regexp.MustCompile(`^~\s(\S+)\s=(?:\s(.*))?$`)
	continuationRE    = regexp.MustCompile(`^ {2} *\S`)
)

// Classify determines the kind of a line from its content alone.
// Content that matches none of the kinds yields a *CannotIdentifyError.
func Classify(content string) (Kind, error) {
	switch {
	case strings.HasPrefix(content, string(commentMarker)):
		return KindComment, nil
	case staticAttributeRE.MatchString(content):
		return KindStaticAttribute, nil
	case dynamicQueryRE.MatchString(content):
		return KindDynamicQuery, nil
	case continuationRE.MatchString(content):
		return KindContinuation, nil
	case content == "":
		return KindEmpty, nil
	}
	return 0, &CannotIdentifyError{Content: content}
}

// Line is a physical line of a document together with its 1-based position
// and its kind.
type Line struct {
	Content string
	Number  int
	Kind    Kind

	key  string
	rest string
}

// NewLine classifies content and returns the resulting Line. Header lines
// (attributes and queries) also have their key and inline rest captured.
func NewLine(content string, number int) (Line, error) {
	kind, err := Classify(content)
	if err != nil {
		if ce, ok := err.(*CannotIdentifyError); ok {
			ce.Line = number
		}
		return Line{}, err
	}
	l := Line{Content: content, Number: number, Kind: kind}
	var m []string
	switch kind {
	case KindStaticAttribute:
		m = staticAttributeRE.FindStringSubmatch(content)
	case KindDynamicQuery:
		m = dynamicQueryRE.FindStringSubmatch(content)
	}
	if m != nil {
		l.key = m[1]
		l.rest = strings.TrimSpace(m[2])
	}
	return l, nil
}

// IsHeader reports whether the line starts an attribute or a query.
func (l Line) IsHeader() bool {
	return l.Kind == KindStaticAttribute || l.Kind == KindDynamicQuery
}

// Key returns the identifier of a header line, or "" for other kinds.
func (l Line) Key() string { return l.key }

// Rest returns the trimmed text after " = " on a header line.
func (l Line) Rest() string { return l.rest }

// SplitLines splits text into classified lines numbered from 1. A trailing
// carriage return is dropped from every line, and a final newline ends the
// last line rather than starting a new one.
func SplitLines(text string) ([]Line, error) {
	raw := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	lines := make([]Line, 0, len(raw))
	for i, content := range raw {
		l, err := NewLine(strings.TrimSuffix(content, "\r"), i+1)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, nil
}

// indentation counts the leading spaces of s.
func indentation(s string) int {
	return len(s) - len(strings.TrimLeft(s, " "))
}
