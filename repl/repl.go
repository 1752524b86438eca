// Package repl reads Zodiac source line by line and prints its tokens.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"zodiac/internal/lexer"
)

const PROMPT = ">> "

// Start runs until in is exhausted.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		tokens, err := lexer.Tokenize(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}

		for _, tok := range tokens {
			fmt.Fprintln(out, tok)
		}
	}
}
