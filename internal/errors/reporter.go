package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"zodiac/internal/lexer"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
)

// CompilerError is a positioned, user-facing diagnostic.
type CompilerError struct {
	Level       ErrorLevel
	Code        string         // E0100 etc.
	Message     string
	Position    lexer.Position // start of the offending span
	Length      int
	Suggestions []Suggestion
	Notes       []string
	HelpText    string
}

type Suggestion struct {
	Message string
}

func (e CompilerError) Error() string {
	return fmt.Sprintf("%s[%s]: %s at %d:%d", e.Level, e.Code, e.Message, e.Position.Line, e.Position.Column)
}

// ErrorReporter renders compiler errors against the source they refer to.
type ErrorReporter struct {
	filename string
	lines    []string
}

func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError renders err as a header, a file:line:col pointer, the
// offending line with a caret marker and the line on either side.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder

	levelColor := er.levelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if err.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, err.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", levelColor(string(err.Level)), err.Message)
	}

	width := er.gutterWidth(err.Position.Line)
	indent := strings.Repeat(" ", width)
	gutter := dim("│")

	fmt.Fprintf(&b, "%s %s %s:%d:%d\n", indent, dim("-->"), er.filename, err.Position.Line, err.Position.Column)
	fmt.Fprintf(&b, "%s %s\n", indent, gutter)

	line := err.Position.Line
	if line > 1 && line-1 <= len(er.lines) {
		fmt.Fprintf(&b, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, line-1)), gutter, er.lines[line-2])
	}
	if line >= 1 && line <= len(er.lines) {
		fmt.Fprintf(&b, "%s %s %s\n", bold(fmt.Sprintf("%*d", width, line)), gutter, er.lines[line-1])
		fmt.Fprintf(&b, "%s %s %s\n", indent, gutter, er.createMarker(err.Position.Column, err.Length, err.Level))
	}
	if line >= 1 && line < len(er.lines) {
		fmt.Fprintf(&b, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, line+1)), gutter, er.lines[line])
	}

	cyan := color.New(color.FgCyan).SprintFunc()
	for i, s := range err.Suggestions {
		label := "    "
		if i == 0 {
			label = "help: try"
		}
		fmt.Fprintf(&b, "%s %s %s\n", indent, cyan(label), s.Message)
	}

	blue := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, gutter, blue("note:"), note)
	}

	if err.HelpText != "" {
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, gutter, green("help:"), err.HelpText)
	}

	b.WriteString("\n")
	return b.String()
}

func (er *ErrorReporter) levelColor(level ErrorLevel) func(...interface{}) string {
	if level == Warning {
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	}
	return color.New(color.FgRed, color.Bold).SprintFunc()
}

// createMarker underlines length columns starting at column.
func (er *ErrorReporter) createMarker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))
	return spaces + er.levelColor(level)(strings.Repeat("^", length))
}

func (er *ErrorReporter) gutterWidth(line int) int {
	return max(3, len(fmt.Sprintf("%d", line)))
}
