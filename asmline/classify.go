// Package asmline classifies single lines of assembly source into labels,
// directives, operations, and comments, and derives indentation targets from
// that classification.
//
// Assembly syntax varies per toolchain and is deliberately permissive, so
// there is no grammar here: classification is an ordered list of prefix
// pattern rules, first match wins. Each line is classified independently of
// its neighbors; the only cross-line state is whether the previous line left
// a block comment open, which the caller threads back in via the open flag.
package asmline

import (
	"regexp"
	"strings"
)

// Kind is the primary syntactic category of a classified line.
type Kind int

// Kind constants, in rule precedence order.
const (
	Unknown Kind = iota
	Blank
	Label
	Directive
	Operation
	Comment
)

// Span is a half-open [Start, End) byte range within a line.
type Span struct {
	Start, End int
}

// Empty reports whether the span covers no bytes.
func (sp Span) Empty() bool { return sp.End <= sp.Start }

// Len returns the number of bytes covered.
func (sp Span) Len() int {
	if sp.Empty() {
		return 0
	}
	return sp.End - sp.Start
}

// Contains reports whether pos falls within the span.
func (sp Span) Contains(pos int) bool { return sp.Start <= pos && pos < sp.End }

// Text returns the span's bytes within line, or "" if the span exceeds it.
func (sp Span) Text(line string) string {
	if sp.Empty() || sp.Start < 0 || sp.End > len(line) {
		return ""
	}
	return line[sp.Start:sp.End]
}

// Classification is the result of classifying one line. Spans are
// non-overlapping and ordered left to right; an empty span means the line has
// no such part.
type Classification struct {
	Kind Kind

	// Doc marks a repeated-delimiter comment line (e.g. ";;;"), flushed
	// left rather than aligned to the comment column.
	Doc bool

	// Open reports that the line leaves a block comment open; the caller
	// passes it as the open flag when classifying the next line.
	Open bool

	LabelSpan   Span
	OpSpan      Span
	OperandSpan Span
	CommentSpan Span

	// OpDirective marks a label line whose trailing token is a directive,
	// as in the reserve-space idiom `buf: .word 10`.
	OpDirective bool

	// Registers locates %word tokens anywhere in the line. Highlight data
	// only; it never influences Kind or indentation.
	Registers []Span
}

var (
	reDirective = regexp.MustCompile(`^\s*(\.\w+)`)
	reLabel     = regexp.MustCompile(`^[\w.$]+`)
	reOperation = regexp.MustCompile(`^(\(\w*\)?)?[ \t]+([\w.$]+)`)
	reRegister  = regexp.MustCompile(`%\w+`)
)

// Classify determines the line's syntactic category and sub-spans under the
// session's active comment style. The open flag marks the line as a
// continuation of a block comment left open by the previous line. The result
// is retained as the session's most recent pass for InsideComment queries.
func (s *Session) Classify(line string, open bool) Classification {
	cls := s.classify(line, open)
	for _, m := range reRegister.FindAllStringIndex(line, -1) {
		cls.Registers = append(cls.Registers, Span{m[0], m[1]})
	}
	s.last = cls
	s.haveLast = true
	return cls
}

func (s *Session) classify(line string, open bool) Classification {
	conf := s.conf

	// continuation of an open block comment; closes at the first end
	// delimiter, no nesting
	if open && conf.End != "" {
		if i := strings.Index(line, conf.End); i >= 0 {
			return Classification{Kind: Comment, CommentSpan: Span{0, i + len(conf.End)}}
		}
		return Classification{Kind: Comment, Open: true, CommentSpan: Span{0, len(line)}}
	}

	// repeated-delimiter doc comment
	if conf.Repeatable {
		i := indentWidth(line)
		n := i
		for n < len(line) && line[n] == conf.Start[0] {
			n++
		}
		if n-i >= 3 {
			return Classification{Kind: Comment, Doc: true, CommentSpan: Span{i, len(line)}}
		}
	}

	comment, stillOpen := conf.commentSpan(line)
	content := line
	if !comment.Empty() {
		content = line[:comment.Start]
	}

	cls := Classification{CommentSpan: comment, Open: stillOpen}
	switch {
	case ruleDirective(content, &cls):
	case ruleLabel(content, &cls):
	case ruleOperation(content, &cls):
	case !comment.Empty() && strings.TrimSpace(content) == "":
		cls.Kind = Comment
	case strings.TrimSpace(line) == "":
		cls.Kind = Blank
	default:
		cls.Kind = Unknown
	}
	return cls
}

// ruleDirective matches a leading `.word`-style token not immediately
// followed by a colon (that would be a local label).
func ruleDirective(content string, cls *Classification) bool {
	m := reDirective.FindStringSubmatchIndex(content)
	if m == nil {
		return false
	}
	if end := m[3]; end < len(content) && content[end] == ':' {
		return false
	}
	cls.Kind = Directive
	cls.OpSpan = Span{m[2], m[3]}
	cls.OperandSpan = operandAfter(content, m[3])
	return true
}

// ruleLabel matches a word-or-local-label token at column 0, optionally
// followed by a colon, optionally followed by whitespace and a secondary
// token. A secondary token beginning with '.' is a directive attached to the
// label rather than an operation.
func ruleLabel(content string, cls *Classification) bool {
	m := reLabel.FindStringIndex(content)
	if m == nil {
		return false
	}
	cls.Kind = Label
	cls.LabelSpan = Span{0, m[1]}
	i := m[1]
	if i < len(content) && content[i] == ':' {
		i++
	}
	j := i
	for j < len(content) && (content[j] == ' ' || content[j] == '\t') {
		j++
	}
	if j > i && j < len(content) {
		k := j
		for k < len(content) && content[k] != ' ' && content[k] != '\t' {
			k++
		}
		cls.OpSpan = Span{j, k}
		cls.OpDirective = content[j] == '.'
		cls.OperandSpan = operandAfter(content, k)
	}
	return true
}

// ruleOperation matches an indented operation line, tolerating an optional
// parenthesized condition prefix whose closing paren may be missing. The
// prefix tolerance is inherited behavior; do not add balance validation.
func ruleOperation(content string, cls *Classification) bool {
	m := reOperation.FindStringSubmatchIndex(content)
	if m == nil {
		return false
	}
	cls.Kind = Operation
	cls.OpSpan = Span{m[4], m[5]}
	cls.OperandSpan = operandAfter(content, m[5])
	return true
}

// operandAfter spans the remaining content after an operation token, with
// surrounding whitespace trimmed.
func operandAfter(content string, from int) Span {
	i := from
	for i < len(content) && (content[i] == ' ' || content[i] == '\t') {
		i++
	}
	j := len(content)
	for j > i && (content[j-1] == ' ' || content[j-1] == '\t') {
		j--
	}
	if j <= i {
		return Span{}
	}
	return Span{i, j}
}

func indentWidth(line string) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}
