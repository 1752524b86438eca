package errors

import (
	"fmt"

	"zodiac/internal/lexer"
)

// ErrorBuilder provides a fluent interface for creating compiler errors
type ErrorBuilder struct {
	err CompilerError
}

func NewError(code, message string, pos lexer.Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	b.err.Length = length
	return b
}

func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

func (b *ErrorBuilder) Build() CompilerError {
	return b.err
}

// FromLexError converts a tokenizer failure into a reportable error.
func FromLexError(lexErr *lexer.LexError) CompilerError {
	return NewError(ErrorUnterminatedString, lexErr.Message, lexErr.Position).
		WithLength(lexErr.Length).
		WithSuggestion("add a closing quote to end the string literal").
		WithNote("strings end at the first quote character of any kind: \", ' or `").
		Build()
}

// InvalidStatement reports a statement the grammar rejected.
func InvalidStatement(message string, pos lexer.Position) CompilerError {
	return NewError(ErrorInvalidStatement, fmt.Sprintf("invalid statement: %s", message), pos).Build()
}
