package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Program is a sequence of statements. Blank lines and stray terminators
// between statements are skipped.
type Program struct {
	Pos        lexer.Position
	Statements []*Statement `( @@ | Newline | ";" )*`
}

// Statement is a run of elements up to a terminator (a newline or ';').
// Expressions are not given any inner structure.
type Statement struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Elements   []*Element `@@+`
	Terminator string     `( @Newline | @";" )?`
}

type Element struct {
	Pos        lexer.Position
	OpAsgn     *string `  @OpAsgn`
	Identifier *string `| @Identifier`
	String     *string `| @String`
	Number     *string `| @Number`
	Symbol     *string `| (?! ";") @Symbol`
}

// Text returns the source text of whichever token the element captured.
func (e *Element) Text() string {
	switch {
	case e.OpAsgn != nil:
		return *e.OpAsgn
	case e.Identifier != nil:
		return *e.Identifier
	case e.String != nil:
		return *e.String
	case e.Number != nil:
		return *e.Number
	case e.Symbol != nil:
		return *e.Symbol
	}
	return ""
}

// Kind names the token type of the element, matching the grammar symbols.
func (e *Element) Kind() string {
	switch {
	case e.OpAsgn != nil:
		return "OpAsgn"
	case e.Identifier != nil:
		return "Identifier"
	case e.String != nil:
		return "String"
	case e.Number != nil:
		return "Number"
	case e.Symbol != nil:
		return "Symbol"
	}
	return ""
}
