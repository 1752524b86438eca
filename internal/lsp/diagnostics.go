package lsp

import (
	"errors"

	protocol "github.com/tliron/glsp/protocol_3_16"
	zerrors "zodiac/internal/errors"
	"zodiac/internal/lexer"
)

const diagnosticSource = "zodiac-lexer"

// ConvertLexError turns a tokenizer failure into LSP diagnostics. A nil error
// yields an empty list, which clears stale diagnostics on the client.
func ConvertLexError(err error) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	var lexErr *lexer.LexError
	if !errors.As(err, &lexErr) {
		return diagnostics
	}

	length := lexErr.Length
	if length <= 0 {
		length = 1
	}

	line := uint32(lexErr.Position.Line - 1)     // Convert to 0-based indexing
	start := uint32(lexErr.Position.Column - 1) // Convert to 0-based indexing

	return append(diagnostics, protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: start},
			End:   protocol.Position{Line: line, Character: start + uint32(length)},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: zerrors.ErrorUnterminatedString},
		Source:   ptrString(diagnosticSource),
		Message:  lexErr.Message,
	})
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
