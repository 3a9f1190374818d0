package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yegvla/asmr-mode/asmline"
)

func testSession(t *testing.T, style asmline.Style) *asmline.Session {
	t.Helper()
	sess := asmline.NewSession()
	sess.TabStops = []int{16, 24}
	sess.CommentColumn = 40
	_, err := sess.Activate(style)
	require.NoError(t, err)
	return sess
}

func TestReindent(t *testing.T) {
	sess := testSession(t, asmline.Semicolon)

	src := strings.Join([]string{
		";;; Widget routines",
		"start:      mov r0, r1",
		"  .align 4",
		"        add r1, r2 ; sum",
		"; note",
		"",
	}, "\n")

	want := strings.Join([]string{
		";;; Widget routines",
		"start:          mov r0, r1",
		".align 4",
		strings.Repeat(" ", 16) + "add r1, r2 ; sum",
		strings.Repeat(" ", 40) + "; note",
		"",
	}, "\n")

	assert.Equal(t, want, reindent(sess, src))
}

func TestReindentThreadsBlockComments(t *testing.T) {
	sess := testSession(t, asmline.SlashStar)

	src := strings.Join([]string{
		"/* intro",
		"continues */",
		"start: mov r0, r1",
		"",
	}, "\n")

	// block comment lines carry no special indent rule under a
	// non-repeatable style, so they land on the first tab stop; the line
	// after the close classifies normally again
	want := strings.Join([]string{
		strings.Repeat(" ", 16) + "/* intro",
		strings.Repeat(" ", 16) + "continues */",
		"start:          mov r0, r1",
		"",
	}, "\n")

	assert.Equal(t, want, reindent(sess, src))
}

func TestReindentNoFinalNewline(t *testing.T) {
	sess := testSession(t, asmline.Semicolon)
	assert.Equal(t, ".text", reindent(sess, "  .text"))
}

func TestParseTabStops(t *testing.T) {
	stops, err := parseTabStops("16,24")
	require.NoError(t, err)
	assert.Equal(t, []int{16, 24}, stops)

	_, err = parseTabStops("16,8")
	assert.Error(t, err, "decreasing stops rejected")

	_, err = parseTabStops("16,x")
	assert.Error(t, err)
}
