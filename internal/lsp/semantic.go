package lsp

import (
	"strings"

	"zodiac/internal/lexer"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

var kindTokenTypes = map[lexer.Kind]string{
	lexer.COMMENT:    "comment",
	lexer.OP_ASGN:    "operator",
	lexer.SYMBOL:     "operator",
	lexer.IDENTIFIER: "variable",
	lexer.STRING:     "string",
	lexer.NUMBER:     "number",
}

// collectSemanticTokens maps lexer tokens to semantic tokens. Newlines carry
// no highlighting and multi-line strings are only marked on their first line.
func collectSemanticTokens(tokens []lexer.Token) []SemanticToken {
	var result []SemanticToken

	for _, tok := range tokens {
		tokenType, ok := kindTokenTypes[tok.Kind]
		if !ok {
			continue
		}

		text := tok.Value
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			text = text[:i]
		}

		result = append(result, SemanticToken{
			Line:      uint32(tok.Position.Line - 1),   // LSP uses 0-based line numbers
			StartChar: uint32(tok.Position.Column - 1), // LSP uses 0-based column numbers
			Length:    uint32(len(text)),
			TokenType: indexOf(tokenType, SemanticTokenTypes),
		})
	}

	return result
}

// encodeSemanticTokens applies the LSP delta-line, delta-start encoding.
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := []uint32{}
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
