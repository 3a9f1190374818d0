// Package keys implements the decision logic behind the interactive editing
// keys: space, colon, hash, and the comment delimiter. Each handler consumes
// the current line text and cursor column and produces an ordered list of
// primitive edit actions for the host to apply; none of them touch a buffer
// directly.
package keys

import (
	"strings"

	"github.com/yegvla/asmr-mode/asmline"
	"github.com/yegvla/asmr-mode/internal/editact"
)

// Space jumps to the next tab stop when pressed at line start, or anywhere
// within the first tab stop's width outside a comment while tab-after-
// operation is enabled. Otherwise it inserts a literal space.
func Space(sess *asmline.Session, line string, col int) []editact.Action {
	col = clampCol(line, col)
	if col == 0 {
		return []editact.Action{editact.MoveTo(sess.NextTabStop(0))}
	}
	sess.Classify(line, false)
	if col < sess.NextTabStop(0) && sess.TabAfterOperation && !sess.InsideComment(col) {
		return []editact.Action{editact.MoveTo(sess.NextTabStop(col))}
	}
	return []editact.Action{editact.Insert(" ")}
}

// Colon completes a label when the text before the cursor is a bare token
// reaching back to line start: trailing whitespace is deleted, a colon is
// inserted when colon-after-label is enabled, the cursor jumps to the next
// tab stop, and a newline follows when newline-after-label is enabled.
// Anywhere else the colon insertion alone applies, under the same gate.
func Colon(sess *asmline.Session, line string, col int) []editact.Action {
	col = clampCol(line, col)
	prefix := line[:col]
	label := strings.TrimRight(prefix, " \t")
	if label == "" || strings.ContainsAny(label, " \t") {
		if sess.ColonAfterLabel {
			return []editact.Action{editact.Insert(":")}
		}
		return nil
	}

	var acts []editact.Action
	at := len(label)
	if at < col {
		acts = append(acts, editact.Delete(at, col))
	}
	if sess.ColonAfterLabel {
		acts = append(acts, editact.Insert(":"))
		at++
	}
	acts = append(acts, editact.MoveTo(sess.NextTabStop(at)))
	if sess.NewlineAfterLabel {
		acts = append(acts, editact.Newline())
	}
	return acts
}

// Hash deletes any whitespace-only prefix before the cursor and then inserts
// the '#' character, so immediate directives land flush left.
func Hash(sess *asmline.Session, line string, col int) []editact.Action {
	col = clampCol(line, col)
	if strings.TrimLeft(line[:col], " \t") == "" {
		var acts []editact.Action
		if col > 0 {
			acts = append(acts, editact.Delete(0, col))
		}
		return append(acts, editact.Insert("#"))
	}
	return []editact.Action{editact.Insert("#")}
}

// Comment handles the comment-delimiter key for styles whose start delimiter
// is a single character; for any other style it reports unhandled. The
// four-way decision:
//
//  1. right after a comment-start run that is not itself inside a comment:
//     break to a new line, reinsert the run, and realign;
//  2. after only whitespace on a comment continuation line (open): realign
//     by replacing the leading whitespace with the delimiter and a space;
//  3. inside a comment: insert the literal character;
//  4. otherwise unhandled, the host's generic comment behavior applies.
func Comment(sess *asmline.Session, line string, col int, open bool) ([]editact.Action, bool) {
	conf := sess.Config()
	if len(conf.Start) != 1 {
		return nil, false
	}
	col = clampCol(line, col)
	sess.Classify(line, open)
	ch := conf.Start[0]

	run := 0
	for i := col; i > 0 && line[i-1] == ch; i-- {
		run++
	}

	switch {
	case run >= 1 && !sess.InsideComment(col-run):
		delim := strings.Repeat(string(ch), run) + " "
		acts := []editact.Action{editact.Newline()}
		if run < 3 && conf.Repeatable {
			acts = append(acts, editact.MoveTo(sess.CommentColumn))
		}
		return append(acts, editact.Insert(delim)), true

	case open && strings.TrimLeft(line[:col], " \t") == "":
		var acts []editact.Action
		if col > 0 {
			acts = append(acts, editact.Delete(0, col))
		}
		return append(acts, editact.Insert(string(ch)+" ")), true

	case sess.InsideComment(col):
		return []editact.Action{editact.InsertRune(rune(ch))}, true
	}
	return nil, false
}

func clampCol(line string, col int) int {
	if col < 0 {
		return 0
	}
	if col > len(line) {
		return len(line)
	}
	return col
}
