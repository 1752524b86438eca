package errors

// Error codes for the Zodiac compiler.
//
// Error code ranges:
// E0100-E0199: Lexer and parser errors
const (
	// E0100: String literal without a closing quote
	ErrorUnterminatedString = "E0100"

	// E0101: Statement could not be parsed
	ErrorInvalidStatement = "E0101"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnterminatedString:
		return "String literal is opened but never closed"
	case ErrorInvalidStatement:
		return "Statement does not match the grammar"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Lexer/Parser"
	default:
		return "Unknown"
	}
}
