package wooflang

import (
	"fmt"
	"strings"
)

type DiagKind uint8

const (
	DiagUnknown DiagKind = iota
	DiagMissingOperator
	DiagMissingCloseParen
	DiagMissingDefineSymbol
	DiagMissingDefineForm
	DiagMissingDefineCloseBrace
	DiagMissingParamList
	DiagDuplicateParam
	DiagMissingParamClose
	DiagMissingLambdaBody
	DiagMissingLambdaCloseBrace
	DiagUnknownSpecial
	DiagUnparsedInput
)

func (k DiagKind) Message() string {
	switch k {
	case DiagMissingOperator:
		return "application: missing operator"
	case DiagMissingCloseParen:
		return "application: missing close parenthesis"
	case DiagMissingDefineSymbol:
		return "define: missing symbol"
	case DiagMissingDefineForm:
		return "define: missing form"
	case DiagMissingDefineCloseBrace:
		return "define: missing close brace"
	case DiagMissingParamList:
		return "lambda: missing parameter list"
	case DiagDuplicateParam:
		return "lambda: duplicate parameter names"
	case DiagMissingParamClose:
		return "lambda: missing parameter list close brace"
	case DiagMissingLambdaBody:
		return "lambda: missing body"
	case DiagMissingLambdaCloseBrace:
		return "lambda: missing close brace"
	case DiagUnknownSpecial:
		return "woof: unable to parse special form"
	case DiagUnparsedInput:
		return "woof: unparsed input"
	}
	return "woof: parse error"
}

// Diagnostic pinpoints a malformed construct. At is the opening delimiter of
// the construct being parsed, not the point of ultimate failure; that anchor
// stays useful even when the problem token is elsewhere or absent.
type Diagnostic struct {
	Kind DiagKind
	At   Token
}

func (d *Diagnostic) Summary() string {
	return fmt.Sprintf("%s at line %d, column %d", d.Kind.Message(), d.At.Pos.Line, d.At.Pos.Column)
}

func (d *Diagnostic) Error() string {
	pos := d.At.Pos
	if pos.Source == nil {
		return d.Summary()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", d.Kind.Message(), pos.Source.Name, pos.Line, pos.Column))

	// Line content
	lines := pos.Source.Lines
	idx := pos.Line - 1
	if idx >= 0 && idx < len(lines) {
		line := lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		// Caret
		runes := []rune(line)
		col := pos.Column - 1
		for i, r := range runes {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				w := runeWidth(r)
				for k := 0; k < w; k++ {
					sb.WriteString(" ")
				}
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
