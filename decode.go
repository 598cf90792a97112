package etdoc

import (
	"github.com/reoring/etdoc/internal/syntax"
)

// LineKind classifies a single line of document text.
type LineKind = syntax.Kind

const (
	LineComment         LineKind = syntax.KindComment
	LineStaticAttribute LineKind = syntax.KindStaticAttribute
	LineDynamicQuery    LineKind = syntax.KindDynamicQuery
	LineContinuation    LineKind = syntax.KindContinuation
	LineEmpty           LineKind = syntax.KindEmpty
)

// Classify reports the kind of a single line. Content matching no kind
// yields a *CannotIdentifyError.
func Classify(content string) (LineKind, error) {
	return syntax.Classify(content)
}

// Decode parses document text into a Document.
//
// Comments are joined into the "description" key, query lines are collected
// under "queries" (their values stay textual), and every other attribute is
// stored with its value coerced to an integer, float or sequence where the
// text allows it. Dotted keys are stored as nested documents. Any line that
// cannot be classified or grouped fails the whole call.
func Decode(text string, opts ...DecodeOpt) (*Document, error) {
	opt := lastDecodeOpt(opts)
	lines, err := syntax.SplitLines(text)
	if err != nil {
		return nil, err
	}
	blocks, err := syntax.Group(lines)
	if err != nil {
		return nil, err
	}

	doc := NewDocument()
	for _, b := range blocks {
		switch {
		case b.Kind() == syntax.CommentBlock:
			appendDescription(doc, b.Value())
		case b.IsQuery():
			q := doc.Queries()
			if q == nil {
				q = NewDocument()
				doc.Set(KeyQueries, q)
			}
			q.Set(b.Key(), b.Value())
		case b.Kind() == syntax.MultiLineBlock:
			doc.SetPath(splitPath(b.Key()), b.Value())
		default:
			doc.SetPath(splitPath(b.Key()), coerceValue(b.Value(), opt.Numbers))
		}
	}
	return doc, nil
}

// DecodeBytes is Decode for a byte slice.
func DecodeBytes(data []byte, opts ...DecodeOpt) (*Document, error) {
	return Decode(string(data), opts...)
}

func appendDescription(doc *Document, text string) {
	if prev, ok := doc.Get(KeyDescription); ok {
		if s, ok := prev.(string); ok {
			text = s + "\n" + text
		}
	}
	doc.Set(KeyDescription, text)
}
