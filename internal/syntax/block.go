package syntax

import "strings"

// BlockKind is the closed set of block variants.
type BlockKind int

const (
	CommentBlock BlockKind = iota
	SingleLineBlock
	MultiLineBlock
)

func (k BlockKind) String() string {
	switch k {
	case CommentBlock:
		return "comment"
	case SingleLineBlock:
		return "single_line"
	case MultiLineBlock:
		return "multi_line"
	default:
		return "unknown"
	}
}

// DescriptionKey is the key every comment block maps to.
const DescriptionKey = "description"

// Block is a contiguous run of lines producing one key/value pair. Its kind
// is fixed when the block is opened.
type Block struct {
	kind  BlockKind
	lines []Line
}

func newCommentBlock(l Line) Block {
	return Block{kind: CommentBlock, lines: []Line{l}}
}

func newSingleLineBlock(l Line) Block {
	return Block{kind: SingleLineBlock, lines: []Line{l}}
}

// newMultiLineBlock opens a multi-line block on header. A value may not be
// split between the header line and its continuation lines.
func newMultiLineBlock(header Line) (Block, error) {
	if header.Rest() != "" {
		return Block{}, &ParserError{
			Line:    header.Number,
			Key:     header.Key(),
			Message: "multi-line value must start on the line after its key",
		}
	}
	return Block{kind: MultiLineBlock, lines: []Line{header}}, nil
}

// with returns a copy of b extended by l.
func (b Block) with(l Line) Block {
	lines := make([]Line, len(b.lines), len(b.lines)+1)
	copy(lines, b.lines)
	return Block{kind: b.kind, lines: append(lines, l)}
}

func (b Block) Kind() BlockKind { return b.kind }

// Lines returns the member lines in source order.
func (b Block) Lines() []Line { return b.lines }

// FirstLine is the 1-based number of the block's first line.
func (b Block) FirstLine() int {
	if len(b.lines) == 0 {
		return 0
	}
	return b.lines[0].Number
}

// IsQuery reports whether the block's header carries the query marker.
func (b Block) IsQuery() bool {
	return len(b.lines) > 0 && strings.HasPrefix(b.lines[0].Content, string(queryMarker))
}

// Key returns the key of the pair the block produces.
func (b Block) Key() string {
	switch b.kind {
	case CommentBlock:
		return DescriptionKey
	case SingleLineBlock, MultiLineBlock:
		return b.lines[0].Key()
	}
	return ""
}

// Value returns the textual value of the pair the block produces. Scalar
// coercion is left to the caller.
func (b Block) Value() string {
	switch b.kind {
	case CommentBlock:
		return b.commentValue()
	case SingleLineBlock:
		return b.lines[0].Rest()
	case MultiLineBlock:
		return b.multiLineValue()
	}
	return ""
}

func (b Block) commentValue() string {
	parts := make([]string, len(b.lines))
	for i, l := range b.lines {
		s := strings.TrimPrefix(l.Content, string(commentMarker))
		parts[i] = strings.TrimPrefix(s, " ")
	}
	return strings.Join(parts, "\n")
}

// multiLineValue strips the indentation shared by all continuation lines.
// Deeper indentation stays part of the value; indentation common to every
// value line is not distinguishable from the block's own and is removed.
func (b Block) multiLineValue() string {
	body := b.lines[1:]
	for len(body) > 0 && body[len(body)-1].Kind == KindEmpty {
		body = body[:len(body)-1]
	}
	indent := -1
	for _, l := range body {
		if l.Kind != KindContinuation {
			continue
		}
		if n := indentation(l.Content); indent < 0 || n < indent {
			indent = n
		}
	}
	parts := make([]string, len(body))
	for i, l := range body {
		if l.Kind == KindEmpty {
			continue
		}
		parts[i] = l.Content[indent:]
	}
	return strings.Join(parts, "\n")
}
