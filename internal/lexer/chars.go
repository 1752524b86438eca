package lexer

import "strings"

const (
	symbolChars       = "=.:[]{}+-*/%&|^><@~$!?;"
	doubleSymbolChars = "=*<>|&@:."
	opAssignChars     = "+-*/%|^><&[]"
	stringStartChars  = "\"'`"
)

// Pairs that form one operator without being a doubled character.
var complexPairs = map[string]bool{
	"+@": true,
	"-@": true,
	"[]": true,
	"=~": true,
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isNumber(c byte) bool {
	return '0' <= c && c <= '9'
}

func isUnderscore(c byte) bool {
	return c == '_'
}

func isAlpha(c byte) bool {
	return isLetter(c) || isUnderscore(c)
}

func isAlphaNum(c byte) bool {
	return isLetter(c) || isNumber(c) || isUnderscore(c)
}

func isSymbolStart(c byte) bool {
	return oneOf(c, symbolChars)
}

func isDoubleSymbol(c byte) bool {
	return oneOf(c, doubleSymbolChars)
}

func isOpAssignStart(c byte) bool {
	return oneOf(c, opAssignChars)
}

func isStringStart(c byte) bool {
	return oneOf(c, stringStartChars)
}

func isCommentStart(c byte) bool {
	return c == '#'
}

func isNewline(c byte) bool {
	return c == '\n'
}

func containsEqualSign(text string) bool {
	return strings.IndexByte(text, '=') >= 0
}

func isComplexSymbol(a, b byte) bool {
	if complexPairs[string([]byte{a, b})] {
		return true
	}
	return isDoubleSymbol(a) && a == b
}

// oneOf reports whether c is in set. The zero byte never matches so an
// exhausted cursor is not mistaken for a real character.
func oneOf(c byte, set string) bool {
	return c != 0 && strings.IndexByte(set, c) >= 0
}
