package cli

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
	"zodiac/internal/lexer"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

func validFormat(format string) bool {
	return format == FormatText || format == FormatYAML
}

// WriteTokens dumps tokens either as one aligned line per token or as a
// YAML sequence.
func WriteTokens(w io.Writer, tokens []lexer.Token, format string) error {
	switch format {
	case FormatText:
		for _, tok := range tokens {
			pos := fmt.Sprintf("%d:%d", tok.Position.Line, tok.Position.Column)
			if _, err := fmt.Fprintf(w, "%-8s %-10s %q\n", pos, tok.Kind, tok.Value); err != nil {
				return err
			}
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tokens); err != nil {
			return fmt.Errorf("failed to encode tokens: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
