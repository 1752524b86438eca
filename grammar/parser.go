package grammar

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"zodiac/internal/lexer"
)

func newParser() (*participle.Parser[Program], error) {
	return participle.Build[Program](
		participle.Lexer(ZodiacLexer),
		participle.Elide("Comment"),
		participle.UseLookahead(2),
	)
}

func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseString(path, string(source))
}

// ParseString parses source into statements. A lexing failure is returned
// as the underlying *lexer.LexError.
func ParseString(filename, source string) (*Program, error) {
	parser, err := newParser()
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	program, err := parser.ParseString(filename, source)
	if err != nil {
		var lexErr *lexer.LexError
		if errors.As(err, &lexErr) {
			return nil, lexErr
		}
		return nil, err
	}
	return program, nil
}

// SyntaxError extracts the position and message of a participle parse
// failure.
func SyntaxError(err error) (lexer.Position, string, bool) {
	var pe participle.Error
	if !errors.As(err, &pe) {
		return lexer.Position{}, "", false
	}
	pos := pe.Position()
	return lexer.Position{Line: pos.Line, Column: pos.Column, Offset: pos.Offset}, pe.Message(), true
}
