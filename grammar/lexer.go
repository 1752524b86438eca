package grammar

import (
	"io"
	"strings"

	plexer "github.com/alecthomas/participle/v2/lexer"
	"zodiac/internal/lexer"
)

// symbolNames maps each Zodiac token kind to the name used in grammar tags.
var symbolNames = map[lexer.Kind]string{
	lexer.COMMENT:    "Comment",
	lexer.NEWLINE:    "Newline",
	lexer.OP_ASGN:    "OpAsgn",
	lexer.SYMBOL:     "Symbol",
	lexer.IDENTIFIER: "Identifier",
	lexer.STRING:     "String",
	lexer.NUMBER:     "Number",
}

// ZodiacLexer feeds participle with tokens produced by the Zodiac tokenizer.
var ZodiacLexer plexer.Definition = &definition{}

type definition struct{}

func (d *definition) Symbols() map[string]plexer.TokenType {
	symbols := map[string]plexer.TokenType{"EOF": plexer.EOF}
	for kind, name := range symbolNames {
		symbols[name] = plexer.TokenType(kind)
	}
	return symbols
}

func (d *definition) Lex(filename string, r io.Reader) (plexer.Lexer, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, string(source))
}

func (d *definition) LexString(filename string, source string) (plexer.Lexer, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return &tokenStream{
		filename: filename,
		tokens:   tokens,
		end:      endPosition(filename, source),
	}, nil
}

type tokenStream struct {
	filename string
	tokens   []lexer.Token
	current  int
	end      plexer.Position
}

func (s *tokenStream) Next() (plexer.Token, error) {
	if s.current >= len(s.tokens) {
		return plexer.EOFToken(s.end), nil
	}
	tok := s.tokens[s.current]
	s.current++
	return plexer.Token{
		Type:  plexer.TokenType(tok.Kind),
		Value: tok.Value,
		Pos:   toPosition(s.filename, tok.Position),
	}, nil
}

func toPosition(filename string, pos lexer.Position) plexer.Position {
	return plexer.Position{
		Filename: filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

func endPosition(filename, source string) plexer.Position {
	line := strings.Count(source, "\n") + 1
	column := len(source) - strings.LastIndexByte(source, '\n')
	return plexer.Position{
		Filename: filename,
		Offset:   len(source),
		Line:     line,
		Column:   column,
	}
}
