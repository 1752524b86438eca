package lexer

import "strings"

// opAssignReach bounds how far ahead an '=' may sit for the lookahead to
// treat the current word as a compound assignment.
const opAssignReach = 4

type Predicate func(c byte) bool

// Cursor is a forward-only view over the remaining input. Peeking never
// moves it and nothing moves it backwards.
type Cursor struct {
	source string
	offset int
	line   int
	column int
}

func NewCursor(source string) *Cursor {
	return &Cursor{
		source: source,
		line:   1,
		column: 1,
	}
}

// Peek returns the lookahead byte, or 0 once the input is exhausted.
func (c *Cursor) Peek() byte {
	if !c.NotFinished() {
		return 0
	}
	return c.source[c.offset]
}

// Advance consumes and returns the lookahead byte. At the end of input it
// returns 0 and leaves the cursor where it is.
func (c *Cursor) Advance() byte {
	if !c.NotFinished() {
		return 0
	}
	ch := c.source[c.offset]
	c.offset++
	if ch == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	return ch
}

func (c *Cursor) NotFinished() bool {
	return c.offset < len(c.source)
}

func (c *Cursor) Offset() int {
	return c.offset
}

func (c *Cursor) Position() Position {
	return Position{Line: c.line, Column: c.column, Offset: c.offset}
}

// RestIncludes reports whether ch occurs strictly after the lookahead.
func (c *Cursor) RestIncludes(ch byte) bool {
	if c.offset+1 >= len(c.source) {
		return false
	}
	return strings.IndexByte(c.source[c.offset+1:], ch) >= 0
}

// CurrentWordIncludesEquals reports whether an '=' appears between the
// lookahead and the next space. A space under the cursor itself does not
// end the word.
func (c *Cursor) CurrentWordIncludesEquals() bool {
	rest := c.rest()
	end := len(rest)
	if len(rest) > 1 {
		if i := strings.IndexByte(rest[1:], ' '); i >= 0 {
			end = i + 1
		}
	}
	return containsEqualSign(rest[:end])
}

// OpAssignLookahead reports whether the cursor sits on the first character
// of a compound assignment operator such as "+=", "<<=" or "[]=".
func (c *Cursor) OpAssignLookahead() bool {
	if !c.CurrentWordIncludesEquals() {
		return false
	}
	if strings.IndexByte(c.rest(), '=') >= opAssignReach {
		return false
	}
	return isOpAssignStart(c.Peek())
}

// CaptureWhile advances lead times, then while pred holds for the
// lookahead, then trail times, and returns everything it consumed.
func (c *Cursor) CaptureWhile(pred Predicate, lead, trail int) string {
	return c.capture(pred, true, lead, trail)
}

// CaptureUntil is CaptureWhile with the predicate negated.
func (c *Cursor) CaptureUntil(pred Predicate, lead, trail int) string {
	return c.capture(pred, false, lead, trail)
}

func (c *Cursor) capture(pred Predicate, want bool, lead, trail int) string {
	start := c.offset
	c.advanceN(lead)
	for c.NotFinished() && pred(c.Peek()) == want {
		c.Advance()
	}
	c.advanceN(trail)
	return c.source[start:c.offset]
}

func (c *Cursor) advanceN(n int) {
	for i := 0; i < n && c.NotFinished(); i++ {
		c.Advance()
	}
}

func (c *Cursor) rest() string {
	return c.source[c.offset:]
}
