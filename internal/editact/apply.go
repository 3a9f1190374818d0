package editact

import "bytes"

// Apply plays actions against a single-line buffer with the cursor at col,
// returning the resulting text (possibly multi-line once a Newline applies)
// and the cursor's column on its final line. Moving the cursor past the end
// of its line pads with spaces, the way an editor indents to a column.
// Delete ranges address the text as it stands when the delete applies.
func Apply(line string, col int, actions []Action) (string, int) {
	text := []byte(line)
	cur := clamp(col, 0, len(text))
	for _, act := range actions {
		switch act.Op {
		case OpInsert:
			text = splice(text, cur, 0, []byte(act.Text))
			cur += len(act.Text)

		case OpDelete:
			a := clamp(act.Start, 0, len(text))
			b := clamp(act.End, a, len(text))
			text = splice(text, a, b-a, nil)
			switch {
			case cur >= b:
				cur -= b - a
			case cur > a:
				cur = a
			}

		case OpMove:
			start := lineStart(text, cur)
			end := lineEnd(text, cur)
			want := start + act.Col
			if want < start {
				want = start
			}
			if want > end {
				text = splice(text, end, 0, bytes.Repeat([]byte{' '}, want-end))
			}
			cur = want

		case OpNewline:
			text = splice(text, cur, 0, []byte{'\n'})
			cur++
		}
	}
	return string(text), cur - lineStart(text, cur)
}

func splice(text []byte, at, del int, ins []byte) []byte {
	out := make([]byte, 0, len(text)-del+len(ins))
	out = append(out, text[:at]...)
	out = append(out, ins...)
	out = append(out, text[at+del:]...)
	return out
}

func lineStart(text []byte, at int) int {
	if i := bytes.LastIndexByte(text[:at], '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

func lineEnd(text []byte, at int) int {
	if i := bytes.IndexByte(text[at:], '\n'); i >= 0 {
		return at + i
	}
	return len(text)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
