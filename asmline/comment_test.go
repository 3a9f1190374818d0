package asmline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/yegvla/asmr-mode/asmline"
)

func TestActivate(t *testing.T) {
	t.Run("styles resolve", func(t *testing.T) {
		sess := NewSession()
		for style, want := range map[Style]Config{
			Semicolon:  {Start: ";", Repeatable: true},
			Hash:       {Start: "#", Repeatable: true},
			Star:       {Start: "*", Repeatable: true},
			At:         {Start: "@", Repeatable: true},
			SlashSlash: {Start: "//"},
			SlashStar:  {Start: "/*", End: "*/"},
		} {
			conf, err := sess.Activate(style)
			require.NoError(t, err)
			assert.Equal(t, want, conf, "style %v", style)
			assert.Equal(t, style, sess.Style())
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		sess := NewSession()
		first, err := sess.Activate(Hash)
		require.NoError(t, err)

		line := "# note"
		before := sess.Classify(line, false)

		again, err := sess.Activate(Hash)
		require.NoError(t, err)
		assert.Equal(t, first, again)
		assert.Equal(t, before, sess.Classify(line, false))
	})

	t.Run("unknown style rejected", func(t *testing.T) {
		sess := NewSession()
		prior := sess.Config()

		conf, err := sess.Activate(Style(42))
		assert.ErrorIs(t, err, ErrUnknownStyle)
		assert.Equal(t, prior, conf, "prior config stays active")
		assert.Equal(t, Semicolon, sess.Style())

		conf, err = sess.Activate(Style(-1))
		assert.ErrorIs(t, err, ErrUnknownStyle)
		assert.Equal(t, prior, conf)
	})

	t.Run("switch takes effect next classify", func(t *testing.T) {
		sess := NewSession()
		cls := sess.Classify("; note", false)
		assert.Equal(t, Comment, cls.Kind)

		_, err := sess.Activate(Hash)
		require.NoError(t, err)
		cls = sess.Classify("; note", false)
		assert.Equal(t, Unknown, cls.Kind, "semicolon no longer comments")
		cls = sess.Classify("# note", false)
		assert.Equal(t, Comment, cls.Kind)
	})
}

func TestInsideComment(t *testing.T) {
	sess := NewSession()

	t.Run("before any pass", func(t *testing.T) {
		assert.False(t, sess.InsideComment(3))
	})

	t.Run("trailing comment", func(t *testing.T) {
		sess.Classify("    mov r0, r1 ; copy", false)
		assert.False(t, sess.InsideComment(15), "char before is operand whitespace")
		assert.True(t, sess.InsideComment(16), "char before is the delimiter")
		assert.True(t, sess.InsideComment(21), "char before is comment text")
		assert.False(t, sess.InsideComment(8))
	})

	t.Run("positions before line start", func(t *testing.T) {
		sess.Classify("; all comment", false)
		assert.False(t, sess.InsideComment(0))
		assert.False(t, sess.InsideComment(-4))
		assert.True(t, sess.InsideComment(1))
	})

	t.Run("block comment span", func(t *testing.T) {
		_, err := sess.Activate(SlashStar)
		require.NoError(t, err)
		sess.Classify("no end here", true)
		assert.True(t, sess.InsideComment(5))
		assert.True(t, sess.InsideComment(11))
	})
}
