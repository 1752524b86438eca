package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleOrder(t *testing.T) {
	var kinds []Kind
	for _, rule := range rules() {
		kinds = append(kinds, rule.Kind)
	}

	assert.Equal(t, Kinds(), kinds)
}

func TestDispatchPrefersOpAssignOverSymbol(t *testing.T) {
	c := NewCursor("+= 1")

	tok, ok, err := dispatch(rules(), c)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, OP_ASGN, tok.Kind)
	assert.Equal(t, "+=", tok.Value)
}

func TestDispatchSkipsUnmatched(t *testing.T) {
	c := NewCursor(" x")

	_, ok, err := dispatch(rules(), c)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Offset())
}

func TestDispatchUsesFirstMatch(t *testing.T) {
	table := []Rule{
		{Kind: NUMBER, Trigger: peekIs(isNumber), Extract: func(c *Cursor) (string, error) {
			return string(c.Advance()), nil
		}},
		{Kind: IDENTIFIER, Trigger: peekIs(isAlphaNum), Extract: extractIdentifier},
	}

	tok, ok, err := dispatch(table, NewCursor("7up"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, NUMBER, tok.Kind)
	assert.Equal(t, "7", tok.Value)
}

func TestDispatchPropagatesExtractorError(t *testing.T) {
	c := NewCursor("'open")

	_, ok, err := dispatch(rules(), c)
	assert.False(t, ok)

	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, msgUnterminatedString, lexErr.Message)
}
