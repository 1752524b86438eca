package lexer

// Extractor consumes one lexeme from the cursor and returns its text.
type Extractor func(c *Cursor) (string, error)

// Rule pairs a token kind with the trigger that selects it and the
// extractor that consumes it.
type Rule struct {
	Kind    Kind
	Trigger func(c *Cursor) bool
	Extract Extractor
}

// rules returns the rule table in priority order. OP_ASGN must come before
// SYMBOL: both trigger on characters like '+' and '<'.
func rules() []Rule {
	return []Rule{
		{Kind: COMMENT, Trigger: peekIs(isCommentStart), Extract: extractComment},
		{Kind: NEWLINE, Trigger: peekIs(isNewline), Extract: extractNewline},
		{Kind: OP_ASGN, Trigger: (*Cursor).OpAssignLookahead, Extract: extractOpAssign},
		{Kind: SYMBOL, Trigger: peekIs(isSymbolStart), Extract: extractSymbol},
		{Kind: IDENTIFIER, Trigger: peekIs(isAlpha), Extract: extractIdentifier},
		{Kind: STRING, Trigger: peekIs(isStringStart), Extract: extractString},
		{Kind: NUMBER, Trigger: peekIs(isNumber), Extract: extractNumber},
	}
}

func peekIs(pred Predicate) func(c *Cursor) bool {
	return func(c *Cursor) bool {
		return pred(c.Peek())
	}
}

// dispatch runs the first rule whose trigger matches the lookahead. When no
// rule matches, one character is dropped and ok is false.
func dispatch(table []Rule, c *Cursor) (tok Token, ok bool, err error) {
	for _, rule := range table {
		if !rule.Trigger(c) {
			continue
		}
		pos := c.Position()
		value, err := rule.Extract(c)
		if err != nil {
			return Token{}, false, err
		}
		return Token{Kind: rule.Kind, Value: value, Position: pos}, true, nil
	}

	c.Advance()
	return Token{}, false, nil
}
