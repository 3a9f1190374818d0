// Package editact describes primitive buffer edits. The interactive key
// commands produce ordered Action lists and leave applying them to the host
// editor; Apply is a reference applier for tests and the batch CLI.
package editact

import "fmt"

// Op discriminates the Action variants.
type Op int

// The primitive edit operations.
const (
	OpInsert Op = iota
	OpDelete
	OpMove
	OpNewline
)

// Action is one primitive edit. Which fields are meaningful depends on Op:
// Text for OpInsert, Start/End for OpDelete, Col for OpMove.
type Action struct {
	Op    Op
	Text  string
	Start int
	End   int
	Col   int
}

// Insert inserts s at the cursor.
func Insert(s string) Action { return Action{Op: OpInsert, Text: s} }

// InsertRune inserts a single character at the cursor.
func InsertRune(r rune) Action { return Action{Op: OpInsert, Text: string(r)} }

// Delete removes the half-open byte range [start, end) from the line.
func Delete(start, end int) Action { return Action{Op: OpDelete, Start: start, End: end} }

// MoveTo moves the cursor to the given column on its current line.
func MoveTo(col int) Action { return Action{Op: OpMove, Col: col} }

// Newline breaks the line at the cursor.
func Newline() Action { return Action{Op: OpNewline} }

// Format writes a textual representation of the receiver, providing improved
// fmt.Printf display.
func (a Action) Format(f fmt.State, _ rune) {
	switch a.Op {
	case OpInsert:
		fmt.Fprintf(f, "insert(%q)", a.Text)
	case OpDelete:
		fmt.Fprintf(f, "delete[%v,%v)", a.Start, a.End)
	case OpMove:
		fmt.Fprintf(f, "moveTo(%v)", a.Col)
	case OpNewline:
		fmt.Fprintf(f, "newline")
	default:
		fmt.Fprintf(f, "invalidOp%v", int(a.Op))
	}
}
