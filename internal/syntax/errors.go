package syntax

import "fmt"

// CannotIdentifyError reports a line that matches none of the line kinds.
type CannotIdentifyError struct {
	Line    int // 1-based; 0 when the content was classified on its own.
	Content string
}

func (e *CannotIdentifyError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: cannot identify line %q", e.Line, e.Content)
	}
	return fmt.Sprintf("cannot identify line %q", e.Content)
}

// ParserError reports lines that classify correctly but cannot be grouped
// into a valid block.
type ParserError struct {
	Line    int
	Key     string // Key of the offending block, if any.
	Message string
}

func (e *ParserError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Key, e.Message)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}
