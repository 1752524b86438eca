// Package lexer turns Zodiac source text into a flat sequence of tokens in
// a single forward pass.
//
// Unsupported lexical forms:
//   - nested or interpolated strings, %q/%w style literals
//   - heredocs
//   - regular expressions
//   - the '<=>' operator
package lexer

const msgUnterminatedString = "String not terminated"

type Lexer struct {
	cursor *Cursor
	rules  []Rule
	tokens []Token
}

func New(source string) *Lexer {
	return &Lexer{
		cursor: NewCursor(source),
		rules:  rules(),
	}
}

// Tokenize lexes source in one call. On failure no tokens are returned.
func Tokenize(source string) ([]Token, error) {
	return New(source).Tokenize()
}

func (l *Lexer) Tokenize() ([]Token, error) {
	for l.cursor.NotFinished() {
		tok, ok, err := dispatch(l.rules, l.cursor)
		if err != nil {
			return nil, err
		}
		if ok {
			l.tokens = append(l.tokens, tok)
		}
	}
	if l.tokens == nil {
		return []Token{}, nil
	}
	return l.tokens, nil
}

// Extractors.

func extractComment(c *Cursor) (string, error) {
	return c.CaptureUntil(isNewline, 0, 0), nil
}

func extractNewline(c *Cursor) (string, error) {
	return string(c.Advance()), nil
}

func extractOpAssign(c *Cursor) (string, error) {
	return c.CaptureUntil(func(ch byte) bool { return ch == '=' }, 0, 1), nil
}

func extractSymbol(c *Cursor) (string, error) {
	first := c.Advance()
	if c.NotFinished() && isComplexSymbol(first, c.Peek()) {
		return string([]byte{first, c.Advance()}), nil
	}
	return string(first), nil
}

func extractIdentifier(c *Cursor) (string, error) {
	return c.CaptureWhile(isAlphaNum, 0, 0), nil
}

// extractString closes on the first quote-class character, whichever quote
// opened the literal.
func extractString(c *Cursor) (string, error) {
	if !c.RestIncludes(c.Peek()) {
		return "", &LexError{
			Message:  msgUnterminatedString,
			Position: c.Position(),
			Length:   1,
		}
	}
	return c.CaptureWhile(func(ch byte) bool { return !isStringStart(ch) }, 1, 1), nil
}

func extractNumber(c *Cursor) (string, error) {
	value := c.CaptureWhile(isNumber, 0, 0)
	if c.Peek() == '.' {
		value += c.CaptureWhile(isNumber, 1, 0)
	}
	return value, nil
}
