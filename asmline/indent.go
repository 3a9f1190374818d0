package asmline

import "fmt"

// Indent computes the target indentation column for a classified line:
// labels and directives flush left, doc comments flush left, single-delimiter
// comment lines to the comment column, everything else to the first tab stop.
// Any fault during evaluation degrades to column 0 rather than propagating;
// a wrong indent is recoverable, a dropped keystroke is not.
func (s *Session) Indent(cls Classification) (col int) {
	defer func() {
		if recover() != nil {
			col = 0
		}
	}()
	cls.check()
	switch {
	case cls.Kind == Label || cls.Kind == Directive:
		return 0
	case cls.Kind == Comment && cls.Doc:
		return 0
	case cls.Kind == Comment && s.conf.Repeatable:
		return s.CommentColumn
	default:
		return s.NextTabStop(0)
	}
}

// NextTabStop returns the smallest configured tab stop strictly greater than
// col, falling back to the next TabWidth multiple once the configured stops
// are exhausted.
func (s *Session) NextTabStop(col int) int {
	for _, stop := range s.TabStops {
		if stop > col {
			return stop
		}
	}
	w := s.TabWidth
	if w <= 0 {
		w = 8
	}
	return (col/w + 1) * w
}

// check panics unless the classification's spans are non-negative, ordered
// left to right, and non-overlapping.
func (cls Classification) check() {
	at := 0
	for _, sp := range []Span{cls.LabelSpan, cls.OpSpan, cls.OperandSpan, cls.CommentSpan} {
		if sp.End < sp.Start {
			panic(fmt.Sprintf("asmline: reversed span %v", sp))
		}
		if sp.Empty() {
			continue
		}
		if sp.Start < at {
			panic(fmt.Sprintf("asmline: span %v out of order", sp))
		}
		at = sp.End
	}
}
