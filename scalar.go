package etdoc

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

var (
	integerRE = regexp.MustCompile(`^-?\d+$`)
	floatRE   = regexp.MustCompile(`^-?\d+\.\d+$`)
)

// coerceValue converts the text of a single-line attribute into a Go value.
// Bracketed text becomes a sequence of coerced elements.
func coerceValue(text string, mode NumberMode) any {
	if len(text) >= 2 && text[0] == '[' && text[len(text)-1] == ']' {
		return coerceList(text[1:len(text)-1], mode)
	}
	return coerceScalar(text, mode)
}

func coerceList(inner string, mode NumberMode) []any {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return []any{}
	}
	parts := strings.Split(inner, ",")
	out := make([]any, len(parts))
	for i, p := range parts {
		out[i] = coerceScalar(strings.TrimSpace(p), mode)
	}
	return out
}

func coerceScalar(text string, mode NumberMode) any {
	switch {
	case text == "":
		return ""
	case integerRE.MatchString(text):
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return n
		}
		// out of int64 range
		if d, _, err := apd.NewFromString(text); err == nil {
			return d
		}
	case floatRE.MatchString(text):
		if mode == NumberDecimal {
			if d, _, err := apd.NewFromString(text); err == nil {
				return d
			}
		}
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return f
		}
	}
	return text
}

// displayValue renders a scalar or collection the way it appears after " = ".
// path is only used for error reporting.
func displayValue(v any, path string) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return formatFloat(t, 64), nil
	case float32:
		return formatFloat(float64(t), 32), nil
	case *apd.Decimal:
		if t == nil {
			return "", nil
		}
		return t.Text('f'), nil
	case []any:
		return displayList(t, path)
	case Set:
		return displayList(t, path)
	case *Document, Document:
		return "", &IllegalNestedHashError{Path: path, Element: v}
	case fmt.Stringer:
		return t.String(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Slice, reflect.Array:
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return displayList(elems, path)
	case reflect.Map:
		return "", &IllegalNestedHashError{Path: path, Element: v}
	}
	return fmt.Sprint(v), nil
}

func displayList(elems []any, path string) (string, error) {
	parts := make([]string, len(elems))
	for i, e := range elems {
		if isMapping(e) {
			return "", &IllegalNestedHashError{Path: path, Element: e}
		}
		s, err := displayValue(e, path)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

// formatFloat renders f in its shortest form, keeping a fractional digit so
// the text decodes back into a float.
func formatFloat(f float64, bits int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
