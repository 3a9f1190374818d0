package asmline

import (
	"fmt"
	"io"
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case Blank:
		return "Blank"
	case Label:
		return "Label"
	case Directive:
		return "Directive"
	case Operation:
		return "Operation"
	case Comment:
		return "Comment"
	}
	return fmt.Sprintf("InvalidKind%d", int(k))
}

// String returns the style's name.
func (st Style) String() string {
	switch st {
	case Semicolon:
		return "Semicolon"
	case Hash:
		return "Hash"
	case Star:
		return "Star"
	case At:
		return "At"
	case SlashSlash:
		return "SlashSlash"
	case SlashStar:
		return "SlashStar"
	}
	return fmt.Sprintf("InvalidStyle%d", int(st))
}

// Format writes a textual representation of the receiver, providing improved
// fmt.Printf display. Produces a "[start,end)" range form.
func (sp Span) Format(f fmt.State, _ rune) {
	fmt.Fprintf(f, "[%v,%v)", sp.Start, sp.End)
}

// Format writes a textual representation of the receiver, providing improved
// fmt.Printf display. Produces a terse "Kind part[i,j) ..." form, adding
// register spans under `%+v`.
func (cls Classification) Format(f fmt.State, _ rune) {
	io.WriteString(f, cls.Kind.String())
	if cls.Doc {
		io.WriteString(f, "(doc)")
	}
	if cls.Open {
		io.WriteString(f, "(open)")
	}
	if !cls.LabelSpan.Empty() {
		fmt.Fprintf(f, " label%v", cls.LabelSpan)
	}
	if !cls.OpSpan.Empty() {
		if cls.OpDirective {
			fmt.Fprintf(f, " directive%v", cls.OpSpan)
		} else {
			fmt.Fprintf(f, " op%v", cls.OpSpan)
		}
	}
	if !cls.OperandSpan.Empty() {
		fmt.Fprintf(f, " operand%v", cls.OperandSpan)
	}
	if !cls.CommentSpan.Empty() {
		fmt.Fprintf(f, " comment%v", cls.CommentSpan)
	}
	if f.Flag('+') {
		for _, reg := range cls.Registers {
			fmt.Fprintf(f, " reg%v", reg)
		}
	}
}
