// Package cli implements the zodiac command line: `compile` tokenizes and
// parses a source file, `repl` tokenizes lines read interactively.
package cli

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/user"
	"time"

	"github.com/fatih/color"
	"zodiac/grammar"
	"zodiac/internal/errors"
	"zodiac/internal/lexer"
	"zodiac/repl"
)

const usage = "Usage: zodiac compile [-format text|yaml] <file.zd>\n       zodiac repl\n"

type CLI struct {
	args []string
}

func New(args []string) *CLI {
	return &CLI{args: args}
}

// Compile reports whether the first argument is the compile command.
func (c *CLI) Compile() bool {
	return len(c.args) > 0 && c.args[0] == "compile"
}

func (c *CLI) Repl() bool {
	return len(c.args) > 0 && c.args[0] == "repl"
}

// Run executes the command selected by args and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := New(args)
	switch {
	case c.Compile():
		return c.compile(stdout, stderr)
	case c.Repl():
		name := "there"
		if u, err := user.Current(); err == nil {
			name = u.Username
		}
		fmt.Fprintf(stdout, "Welcome to the Zodiac REPL, %s!\n", name)
		repl.Start(stdin, stdout)
		return 0
	default:
		fmt.Fprint(stderr, usage)
		return 1
	}
}

func (c *CLI) compile(stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", FormatText, "token output format: text or yaml")
	if err := fs.Parse(c.args[1:]); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprint(stderr, usage)
		return 1
	}
	if !validFormat(*format) {
		fmt.Fprintf(stderr, "unknown format %q\n", *format)
		return 1
	}

	startTime := time.Now()
	path := fs.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "failed to read file: %v\n", err)
		return 1
	}

	reporter := errors.NewErrorReporter(path, string(source))
	red := color.New(color.FgRed)

	tokens, err := lexer.Tokenize(string(source))
	if err != nil {
		var lexErr *lexer.LexError
		if stderrors.As(err, &lexErr) {
			fmt.Fprint(stderr, reporter.FormatError(errors.FromLexError(lexErr)))
		} else {
			fmt.Fprintf(stderr, "%v\n", err)
		}
		red.Fprintf(stderr, "Compilation failed after %s\n", formatDuration(time.Since(startTime)))
		return 1
	}

	if err := WriteTokens(stdout, tokens, *format); err != nil {
		fmt.Fprintf(stderr, "failed to write tokens: %v\n", err)
		return 1
	}

	program, err := grammar.ParseString(path, string(source))
	if err != nil {
		if pos, msg, ok := grammar.SyntaxError(err); ok {
			fmt.Fprint(stderr, reporter.FormatError(errors.InvalidStatement(msg, pos)))
		} else {
			fmt.Fprintf(stderr, "%v\n", err)
		}
		red.Fprintf(stderr, "Compilation failed after %s\n", formatDuration(time.Since(startTime)))
		return 1
	}

	if *format == FormatText {
		fmt.Fprint(stdout, program.String())
	}
	color.New(color.FgGreen).Fprintf(stdout, "Successfully processed %s (%d tokens, %d statements) in %s\n",
		path, len(tokens), len(program.Statements), formatDuration(time.Since(startTime)))
	return 0
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
