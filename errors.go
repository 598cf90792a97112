package etdoc

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/reoring/etdoc/i18n"
	"github.com/reoring/etdoc/internal/syntax"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeCannotIdentify    = "cannot_identify"
	CodeParseError        = "parse_error"
	CodeIllegalNestedHash = "illegal_nested_hash"
	CodeInvalidInput      = "invalid_input"
	CodeInvalidKey        = "invalid_key"
	// CodeNotCanonical is reported by tools comparing text with its
	// re-encoded form.
	CodeNotCanonical = "not_canonical"
)

// CannotIdentifyError reports a line matching none of the line kinds.
type CannotIdentifyError = syntax.CannotIdentifyError

// ParserError reports a multi-line value whose first line carries an inline
// value, or a continuation line with no open multi-line value.
type ParserError = syntax.ParserError

// IllegalNestedHashError reports a sequence or set element that is itself a
// mapping.
type IllegalNestedHashError struct {
	Path    string // Dotted path of the collection.
	Element any
}

func (e *IllegalNestedHashError) Error() string {
	return fmt.Sprintf("illegal nested hash in %s: %v", e.Path, e.Element)
}

// InvalidInputError reports an encoder input that is not a mapping.
type InvalidInputError struct {
	Got string // Go type of the rejected value.
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: expected a mapping, got %s", e.Got)
}

// InvalidKeyError reports an encoder key that cannot be written as an
// attribute or query key.
type InvalidKeyError struct {
	Key string // Dotted path of the rejected key.
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid key %q: keys must be non-empty and free of whitespace", e.Key)
}

// Issue is a flat, code-based view of any codec error.
type Issue struct {
	Code    string
	Line    int    // 1-based line in the decoded text (0 when not applicable).
	Path    string // Dotted attribute path (encoder errors).
	Message string // Localized via i18n.
	Content string // Offending line, when known.
	Cause   error
}

func (i Issue) Error() string {
	if i.Line > 0 {
		return fmt.Sprintf("%s at line %d", i.Code, i.Line)
	}
	if i.Path != "" {
		return fmt.Sprintf("%s at %s", i.Code, i.Path)
	}
	return i.Code
}

func (i Issue) Unwrap() error { return i.Cause }

// AsIssue extracts an Issue from an error using errors.As internally.
func AsIssue(err error) (Issue, bool) {
	if err == nil {
		return Issue{}, false
	}
	var (
		ce *CannotIdentifyError
		pe *ParserError
		ne *IllegalNestedHashError
		ie *InvalidInputError
		ke *InvalidKeyError
		is Issue
	)
	switch {
	case errors.As(err, &is):
		return is, true
	case errors.As(err, &ce):
		return newIssue(CodeCannotIdentify, ce.Line, "", ce.Content, "", err), true
	case errors.As(err, &pe):
		return newIssue(CodeParseError, pe.Line, pe.Key, "", pe.Message, err), true
	case errors.As(err, &ne):
		return newIssue(CodeIllegalNestedHash, 0, ne.Path, "", "", err), true
	case errors.As(err, &ie):
		return newIssue(CodeInvalidInput, 0, "", "", "", err), true
	case errors.As(err, &ke):
		return newIssue(CodeInvalidKey, 0, ke.Key, "", "", err), true
	}
	return Issue{}, false
}

func newIssue(code string, line int, path, content, reason string, cause error) Issue {
	data := map[string]string{"path": path, "reason": reason}
	if line > 0 {
		data["line"] = strconv.Itoa(line)
	}
	return Issue{
		Code:    code,
		Line:    line,
		Path:    path,
		Message: i18n.T(code, data),
		Content: content,
		Cause:   cause,
	}
}
