package lexer

import "fmt"

type Kind int

const (
	COMMENT Kind = iota
	NEWLINE
	OP_ASGN
	SYMBOL
	IDENTIFIER
	STRING
	NUMBER
)

var kindNames = [...]string{
	COMMENT:    "COMMENT",
	NEWLINE:    "NEWLINE",
	OP_ASGN:    "OP_ASGN",
	SYMBOL:     "SYMBOL",
	IDENTIFIER: "IDENTIFIER",
	STRING:     "STRING",
	NUMBER:     "NUMBER",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalYAML renders the kind by name in token dumps.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Kinds lists every token kind in rule priority order.
func Kinds() []Kind {
	return []Kind{COMMENT, NEWLINE, OP_ASGN, SYMBOL, IDENTIFIER, STRING, NUMBER}
}

type Position struct {
	Line   int `yaml:"line"`   // 1-based
	Column int `yaml:"column"` // 1-based
	Offset int `yaml:"offset"` // 0-based absolute index in input
}

type Token struct {
	Kind     Kind     `yaml:"kind"`
	Value    string   `yaml:"value"`
	Position Position `yaml:"position"`
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Kind, t.Value)
}

// LexError is the only failure the tokenizer reports.
type LexError struct {
	Message  string
	Position Position // where the offending lexeme starts
	Length   int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Position.Line, e.Position.Column)
}
