package grammar

import (
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (s *Statement) String() string {
	parts := make([]string, 0, len(s.Elements))
	for _, e := range s.Elements {
		parts = append(parts, e.Text())
	}
	line := strings.Join(parts, " ")
	if s.Terminator == ";" {
		line += ";"
	}
	return line
}
