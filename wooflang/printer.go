package wooflang

import (
	"strconv"
	"strings"
)

// String renders the node in canonical Woof syntax; printing a parsed node
// and re-parsing it yields a structurally equal tree.

func (n *Number) String() string {
	return strconv.Itoa(n.Value)
}

func (s *Symbol) String() string {
	return s.Name
}

func (s *Str) String() string {
	var sb strings.Builder
	sb.WriteString(`"`)
	for _, r := range s.Value {
		if r == '\\' || r == '"' {
			sb.WriteRune('\\')
		}
		sb.WriteRune(r)
	}
	sb.WriteString(`"`)
	return sb.String()
}

func (l *Lambda) String() string {
	var sb strings.Builder
	sb.WriteString("{lambda {")
	sb.WriteString(strings.Join(l.Params, " "))
	sb.WriteString("}")
	for _, node := range l.Body {
		sb.WriteString(" ")
		sb.WriteString(node.String())
	}
	sb.WriteString("}")
	return sb.String()
}

func (d *Define) String() string {
	var sb strings.Builder
	sb.WriteString("{define ")
	if d.Doc != nil {
		sb.WriteString((&Str{Value: *d.Doc}).String())
		sb.WriteString(" ")
	}
	sb.WriteString(d.Name)
	sb.WriteString(" ")
	sb.WriteString(d.Value.String())
	sb.WriteString("}")
	return sb.String()
}

func (a *Application) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(a.Operator.String())
	for _, node := range a.Operands {
		sb.WriteString(" ")
		sb.WriteString(node.String())
	}
	sb.WriteString(")")
	return sb.String()
}

func Print(node Node) string {
	return node.String()
}

func PrintProgram(nodes []Node) string {
	var sb strings.Builder
	for i, node := range nodes {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(node.String())
	}
	return sb.String()
}
