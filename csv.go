package etdoc

import "strings"

// EncodeCSV renders a mapping as "path,value" lines, one per flattened
// attribute, in input order. Reserved keys get no special treatment.
func EncodeCSV(v any) (string, error) {
	pairs, err := Flatten(v, false)
	if err != nil {
		return "", err
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		s, err := displayValue(p.Value, p.Path)
		if err != nil {
			return "", err
		}
		lines[i] = p.Path + "," + s
	}
	return strings.Join(lines, "\n"), nil
}
