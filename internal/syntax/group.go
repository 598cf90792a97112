package syntax

// scanState tells which kind of block, if any, is open for more lines.
type scanState int

const (
	stateIdle scanState = iota
	stateInComment
	stateInMultiLine
)

// scan is the value threaded through the grouping fold. current is only
// meaningful while state is not stateIdle.
type scan struct {
	state   scanState
	current Block
	done    []Block
}

// Group partitions lines into blocks in a single forward pass with one line
// of lookahead. Blank lines outside multi-line values are dropped.
func Group(lines []Line) ([]Block, error) {
	s := scan{}
	for i, l := range lines {
		var next *Line
		if i+1 < len(lines) {
			next = &lines[i+1]
		}
		var err error
		if s, err = s.step(l, next); err != nil {
			return nil, err
		}
	}
	return s.close().done, nil
}

// close moves the open block, if any, to the finished blocks.
func (s scan) close() scan {
	if s.state == stateIdle {
		return s
	}
	return scan{state: stateIdle, done: append(s.done, s.current)}
}

func (s scan) open(state scanState, b Block) scan {
	s = s.close()
	return scan{state: state, current: b, done: s.done}
}

func (s scan) extend(l Line) scan {
	return scan{state: s.state, current: s.current.with(l), done: s.done}
}

func (s scan) step(l Line, next *Line) (scan, error) {
	switch l.Kind {
	case KindEmpty:
		if s.state == stateInMultiLine {
			return s.extend(l), nil
		}
		return s, nil
	case KindContinuation:
		if s.state != stateInMultiLine {
			return s, &ParserError{Line: l.Number, Message: "continuation line outside a multi-line value"}
		}
		return s.extend(l), nil
	case KindComment:
		if s.state == stateInComment {
			return s.extend(l), nil
		}
		return s.open(stateInComment, newCommentBlock(l)), nil
	case KindStaticAttribute, KindDynamicQuery:
		if next != nil && next.Kind == KindContinuation {
			b, err := newMultiLineBlock(l)
			if err != nil {
				return s, err
			}
			return s.open(stateInMultiLine, b), nil
		}
		s = s.close()
		s.done = append(s.done, newSingleLineBlock(l))
		return s, nil
	}
	return s, &ParserError{Line: l.Number, Message: "unexpected line kind " + l.Kind.String()}
}
