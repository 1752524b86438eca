package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorPeekAndAdvance(t *testing.T) {
	c := NewCursor("ab")

	assert.Equal(t, byte('a'), c.Peek())
	assert.Equal(t, byte('a'), c.Peek(), "peek must not consume")
	assert.Equal(t, byte('a'), c.Advance())
	assert.Equal(t, byte('b'), c.Advance())
	assert.False(t, c.NotFinished())

	assert.Equal(t, byte(0), c.Peek())
	assert.Equal(t, byte(0), c.Advance())
	assert.Equal(t, 2, c.Offset())
}

func TestCursorTracksLines(t *testing.T) {
	c := NewCursor("a\nb")
	c.Advance()
	c.Advance()

	assert.Equal(t, Position{Line: 2, Column: 1, Offset: 2}, c.Position())
}

func TestCursorRestIncludes(t *testing.T) {
	c := NewCursor(`"abc"`)
	assert.True(t, c.RestIncludes('"'))
	assert.True(t, c.RestIncludes('b'))
	assert.False(t, c.RestIncludes('z'))

	c = NewCursor(`"`)
	assert.False(t, c.RestIncludes('"'), "the lookahead itself does not count")
}

func TestCursorCurrentWordIncludesEquals(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"a= b", true},
		{"+=", true},
		{"ab =c", false},
		{" =x", true},
		{"abc", false},
		{"", false},
	}

	for _, tt := range tests {
		c := NewCursor(tt.input)
		assert.Equal(t, tt.expected, c.CurrentWordIncludesEquals(), "input %q", tt.input)
	}
}

func TestCursorOpAssignLookahead(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"+=", true},
		{"**= 2", true},
		{"[]=", true},
		{"<=", true},
		{"+ =", false},
		{"<<<<=", false},
		{"a+=", false},
		{"==", false},
		{"", false},
	}

	for _, tt := range tests {
		c := NewCursor(tt.input)
		assert.Equal(t, tt.expected, c.OpAssignLookahead(), "input %q", tt.input)
	}
}

func TestCursorCaptureWhile(t *testing.T) {
	c := NewCursor("abc123 rest")

	assert.Equal(t, "abc", c.CaptureWhile(isLetter, 0, 0))
	assert.Equal(t, "123 ", c.CaptureWhile(isNumber, 0, 1))
	assert.Equal(t, "rest", c.CaptureWhile(isLetter, 0, 0))
	assert.False(t, c.NotFinished())
}

func TestCursorCaptureLeadAndTrail(t *testing.T) {
	c := NewCursor("'quoted' tail")

	quoted := c.CaptureWhile(func(ch byte) bool { return ch != '\'' }, 1, 1)
	assert.Equal(t, "'quoted'", quoted)
	assert.Equal(t, byte(' '), c.Peek())
}

func TestCursorCaptureUntil(t *testing.T) {
	c := NewCursor("# note\nnext")

	assert.Equal(t, "# note", c.CaptureUntil(isNewline, 0, 0))
	assert.Equal(t, byte('\n'), c.Peek())
}

func TestCursorCaptureStopsAtEnd(t *testing.T) {
	c := NewCursor("ab")

	assert.Equal(t, "ab", c.CaptureUntil(isNewline, 1, 5))
	assert.Equal(t, 2, c.Offset())
	assert.Equal(t, "", c.CaptureWhile(isLetter, 3, 3))
}
