package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharacterClasses(t *testing.T) {
	tests := []struct {
		name  string
		pred  Predicate
		match string
		miss  string
	}{
		{"letter", isLetter, "azAZ", "09_#é"},
		{"number", isNumber, "0123456789", "aZ_."},
		{"underscore", isUnderscore, "_", "a0-"},
		{"alpha", isAlpha, "aZ_", "09$"},
		{"alphaNum", isAlphaNum, "aZ_09", "$.-"},
		{"symbolStart", isSymbolStart, "=.:[]{}+-*/%&|^><@~$!?;", "(),#\"'a0 "},
		{"doubleSymbol", isDoubleSymbol, "=*<>|&@:.", "+-/[]%^"},
		{"opAssignStart", isOpAssignStart, "+-*/%|^><&[]", "=.:@~!?"},
		{"stringStart", isStringStart, "\"'`", "#a("},
		{"commentStart", isCommentStart, "#", "/\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < len(tt.match); i++ {
				assert.True(t, tt.pred(tt.match[i]), "expected %q to match", tt.match[i])
			}
			for i := 0; i < len(tt.miss); i++ {
				assert.False(t, tt.pred(tt.miss[i]), "expected %q not to match", tt.miss[i])
			}
			assert.False(t, tt.pred(0))
		})
	}
}

func TestContainsEqualSign(t *testing.T) {
	assert.True(t, containsEqualSign("a=b"))
	assert.True(t, containsEqualSign("="))
	assert.False(t, containsEqualSign("ab"))
	assert.False(t, containsEqualSign(""))
}

func TestComplexSymbol(t *testing.T) {
	for _, pair := range []string{"+@", "-@", "[]", "=~", "==", "**", "<<", ">>", "||", "&&", "@@", "::", ".."} {
		assert.True(t, isComplexSymbol(pair[0], pair[1]), pair)
	}
	for _, pair := range []string{"++", "--", "//", "][", "~=", "@+", "=>", "<>", "{}"} {
		assert.False(t, isComplexSymbol(pair[0], pair[1]), pair)
	}
}
