package asmline

import (
	"errors"
	"strings"
)

// Style selects the session's comment convention.
type Style int

// The supported comment styles. The first four use a single repeatable
// delimiter character; SlashStar is the only style with a distinct end
// delimiter and therefore the only one that can span lines.
const (
	Semicolon Style = iota
	Hash
	Star
	At
	SlashSlash
	SlashStar
)

// Config is the delimiter triple a Style resolves to.
type Config struct {
	Start string
	End   string

	// Repeatable marks Start as a single character that repeats, as in
	// ";;;" doc comments.
	Repeatable bool
}

var styleConfigs = [...]Config{
	Semicolon:  {Start: ";", Repeatable: true},
	Hash:       {Start: "#", Repeatable: true},
	Star:       {Start: "*", Repeatable: true},
	At:         {Start: "@", Repeatable: true},
	SlashSlash: {Start: "//"},
	SlashStar:  {Start: "/*", End: "*/"},
}

// ErrUnknownStyle is returned by Activate for an unrecognized Style value;
// the previously active style remains in effect.
var ErrUnknownStyle = errors.New("asmline: unknown comment style")

// Session carries the per-editing-session configuration every core call
// reads: the active comment style, tab stops, comment column, and the key
// command gating flags. It also retains the most recent classification pass
// for InsideComment queries. One Session serves one open buffer; it is not
// safe for concurrent use.
//
// Use NewSession to get usable defaults; the zero value has no active
// comment style until Activate is called.
type Session struct {
	// TabStops are the configured indentation columns, non-decreasing.
	// When exhausted or empty, indentation falls back to TabWidth
	// multiples.
	TabStops []int

	// TabWidth is the uniform stop width used beyond TabStops.
	TabWidth int

	// CommentColumn is where single-delimiter comment lines align.
	CommentColumn int

	ColonAfterLabel   bool
	TabAfterOperation bool
	NewlineAfterLabel bool

	style Style
	conf  Config

	last     Classification
	haveLast bool
}

// NewSession returns a session with the conventional defaults: semicolon
// comments, 8-column tab width, comment column 32, colon-after-label and
// tab-after-operation on.
func NewSession() *Session {
	return &Session{
		TabWidth:          8,
		CommentColumn:     32,
		ColonAfterLabel:   true,
		TabAfterOperation: true,
		style:             Semicolon,
		conf:              styleConfigs[Semicolon],
	}
}

// Activate switches the session's comment style, returning the resolved
// delimiter config. Activating the already-active style is a no-op. An
// unrecognized style is rejected with ErrUnknownStyle and the previous style
// stays active. The new delimiters take effect from the next Classify call;
// already-classified lines are not revisited.
func (s *Session) Activate(style Style) (Config, error) {
	if style < 0 || int(style) >= len(styleConfigs) {
		return s.conf, ErrUnknownStyle
	}
	s.style = style
	s.conf = styleConfigs[style]
	return s.conf, nil
}

// Style returns the active comment style.
func (s *Session) Style() Style { return s.style }

// Config returns the active style's delimiter config.
func (s *Session) Config() Config { return s.conf }

// InsideComment reports whether the character immediately before pos was
// part of a comment span in the most recent classification pass. Positions
// at or before the start of the line are never inside a comment.
func (s *Session) InsideComment(pos int) bool {
	if !s.haveLast || pos <= 0 {
		return false
	}
	return s.last.CommentSpan.Contains(pos - 1)
}

// commentSpan locates the first comment under conf within line, returning
// its span and whether a block comment remains open at end of line. A block
// comment closes at the first end delimiter; there is no nesting and no
// escaping.
func (conf Config) commentSpan(line string) (Span, bool) {
	if conf.Start == "" {
		return Span{}, false
	}
	i := strings.Index(line, conf.Start)
	if i < 0 {
		return Span{}, false
	}
	if conf.End == "" {
		return Span{i, len(line)}, false
	}
	rest := line[i+len(conf.Start):]
	j := strings.Index(rest, conf.End)
	if j < 0 {
		return Span{i, len(line)}, true
	}
	return Span{i, i + len(conf.Start) + j + len(conf.End)}, false
}
