package wooflang

func isWhitespace(t Token) bool {
	switch t.Sym {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func isDigit(t Token) bool {
	return t.Sym >= '0' && t.Sym <= '9'
}

func isSymbolStart(t Token) bool {
	r := t.Sym
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
		return true
	}
	switch r {
	case '+', '-', '*', '/', '_', '<', '>', '=', '!', '?':
		return true
	}
	return false
}

func isSymbolRune(t Token) bool {
	return isSymbolStart(t) || isDigit(t)
}

func isStringSpecial(t Token) bool {
	return t.Sym == '\\' || t.Sym == '"'
}

func sym(r rune) Parser[Token] {
	return Satisfy(func(t Token) bool {
		return t.Sym == r
	})
}

var (
	whitespace = Many1(Satisfy(isWhitespace))
	comment    = SkipThen(sym(';'), Many0(Satisfy(func(t Token) bool {
		return t.Sym != '\n'
	})))
	trivia = Choice(
		Map(whitespace, toUnit),
		Map(comment, toUnit),
	)
)

func toUnit([]Token) struct{} {
	return struct{}{}
}

// Munch skips leading whitespace and comments, then runs p.
func Munch[T any](p Parser[T]) Parser[T] {
	return SkipThen(Many0(trivia), p)
}

var (
	openParen  = Munch(sym('('))
	closeParen = Munch(sym(')'))
	openBrace  = Munch(sym('{'))
	closeBrace = Munch(sym('}'))
)

var number = Munch(Map(Many1(Satisfy(isDigit)), func(digits []Token) *Number {
	n := 0
	for _, t := range digits {
		n = n*10 + int(t.Sym-'0')
	}
	return &Number{
		Tok:   digits[0],
		Value: n,
	}
}))

var symbol = Munch(Bind(Satisfy(isSymbolStart), func(first Token) Parser[*Symbol] {
	return Map(Many0(Satisfy(isSymbolRune)), func(rest []Token) *Symbol {
		runes := make([]rune, 0, len(rest)+1)
		runes = append(runes, first.Sym)
		for _, t := range rest {
			runes = append(runes, t.Sym)
		}
		return &Symbol{
			Tok:  first,
			Name: string(runes),
		}
	})
}))

var (
	// escape is a backslash followed by a backslash or quote; normal is any
	// other rune, by negative lookahead rather than peeking.
	escape     = SkipThen(sym('\\'), Satisfy(isStringSpecial))
	normal     = Negate1(Satisfy(isStringSpecial))
	stringRune = Choice(escape, normal)
)

var str = Munch(Bind(sym('"'), func(open Token) Parser[*Str] {
	return ThenSkip(Map(Many0(stringRune), func(runes []Token) *Str {
		buf := make([]rune, 0, len(runes))
		for _, t := range runes {
			buf = append(buf, t.Sym)
		}
		return &Str{
			Tok:   open,
			Value: string(buf),
		}
	}), sym('"'))
}))

func keyword(name string) Parser[*Symbol] {
	return Check(symbol, func(s *Symbol) bool {
		return s.Name == name
	})
}

// formParser is assigned in init to break the declaration cycle between form
// and the structural parsers below.
var formParser Parser[Node]

func init() {
	formParser = Choice(
		Map(symbol, func(s *Symbol) Node { return s }),
		Map(number, func(n *Number) Node { return n }),
		Map(str, func(s *Str) Node { return s }),
		application,
		special,
	)
}

func form(c Cursor) Outcome[Node] {
	return formParser(c)
}

// application parses "(" form form* ")". The opening parenthesis is the
// point of no return: everything after it is committed, anchored there.
func application(c Cursor) Outcome[Node] {
	open := openParen(c)
	if !open.IsSuccess() {
		return relay[Node](open)
	}
	at := open.Value

	operator := Commit(DiagMissingOperator, at, Parser[Node](form))(open.Rest)
	if !operator.IsSuccess() {
		return relay[Node](operator)
	}

	operands := Many0(Parser[Node](form))(operator.Rest)
	if operands.IsError() {
		return relay[Node](operands)
	}

	closing := Commit(DiagMissingCloseParen, at, closeParen)(operands.Rest)
	if !closing.IsSuccess() {
		return relay[Node](closing)
	}

	return Success[Node](&Application{
		Tok:      at,
		Operator: operator.Value,
		Operands: operands.Value,
	}, closing.Rest)
}

// define parses "{" "define" docstring? symbol form "}". Failure before the
// keyword has matched backtracks; after it, failures are hard errors.
func define(c Cursor) Outcome[Node] {
	open := openBrace(c)
	if !open.IsSuccess() {
		return relay[Node](open)
	}
	at := open.Value

	kw := keyword("define")(open.Rest)
	if !kw.IsSuccess() {
		return relay[Node](kw)
	}

	doc := Optional(str)(kw.Rest)
	if doc.IsError() {
		return relay[Node](doc)
	}

	name := Commit(DiagMissingDefineSymbol, at, symbol)(doc.Rest)
	if !name.IsSuccess() {
		return relay[Node](name)
	}

	value := Commit(DiagMissingDefineForm, at, Parser[Node](form))(name.Rest)
	if !value.IsSuccess() {
		return relay[Node](value)
	}

	closing := Commit(DiagMissingDefineCloseBrace, at, closeBrace)(value.Rest)
	if !closing.IsSuccess() {
		return relay[Node](closing)
	}

	var docText *string
	if doc.Value != nil {
		text := (*doc.Value).Value
		docText = &text
	}
	return Success[Node](&Define{
		Tok:   at,
		Doc:   docText,
		Name:  name.Value.Name,
		Value: value.Value,
	}, closing.Rest)
}

// lambda parses "{" "lambda" "{" symbol* "}" form+ "}". A duplicate
// parameter name is a hard error anchored at the parameter list's brace.
func lambda(c Cursor) Outcome[Node] {
	open := openBrace(c)
	if !open.IsSuccess() {
		return relay[Node](open)
	}
	at := open.Value

	kw := keyword("lambda")(open.Rest)
	if !kw.IsSuccess() {
		return relay[Node](kw)
	}

	paramOpen := Commit(DiagMissingParamList, at, openBrace)(kw.Rest)
	if !paramOpen.IsSuccess() {
		return relay[Node](paramOpen)
	}

	params := Many0(symbol)(paramOpen.Rest)
	if params.IsError() {
		return relay[Node](params)
	}

	names := make([]string, 0, len(params.Value))
	seen := make(map[string]struct{}, len(params.Value))
	for _, p := range params.Value {
		if _, ok := seen[p.Name]; ok {
			return Errored[Node](&Diagnostic{
				Kind: DiagDuplicateParam,
				At:   paramOpen.Value,
			})
		}
		seen[p.Name] = struct{}{}
		names = append(names, p.Name)
	}

	paramClose := Commit(DiagMissingParamClose, at, closeBrace)(params.Rest)
	if !paramClose.IsSuccess() {
		return relay[Node](paramClose)
	}

	body := Commit(DiagMissingLambdaBody, at, Many1(Parser[Node](form)))(paramClose.Rest)
	if !body.IsSuccess() {
		return relay[Node](body)
	}

	closing := Commit(DiagMissingLambdaCloseBrace, at, closeBrace)(body.Rest)
	if !closing.IsSuccess() {
		return relay[Node](closing)
	}

	return Success[Node](&Lambda{
		Tok:    at,
		Params: names,
		Body:   body.Value,
	}, closing.Rest)
}

// special is define or lambda; a "{" followed by neither keyword is a hard
// error, so the enclosing form choice cannot fail uninformatively.
func special(c Cursor) Outcome[Node] {
	return Choice(
		Parser[Node](define),
		Parser[Node](lambda),
		Bind(openBrace, func(open Token) Parser[Node] {
			return Raise[Node](DiagUnknownSpecial, open)
		}),
	)(c)
}

// program parses form* then trailing trivia then end of input. It never
// fails: zero forms is a valid program, and leftover tokens are an error at
// the first of them.
func program(sink func(Node)) Parser[[]Node] {
	return func(c Cursor) Outcome[[]Node] {
		var nodes []Node
		for {
			o := form(c)
			if o.IsError() {
				return relay[[]Node](o)
			}
			if o.IsFailure() {
				break
			}
			nodes = append(nodes, o.Value)
			if sink != nil {
				sink(o.Value)
			}
			c = o.Rest
		}

		trailing := Many0(trivia)(c)
		c = trailing.Rest

		if end := End(c); end.IsSuccess() {
			return Success(nodes, c)
		}
		first, _ := c.First()
		return Errored[[]Node](&Diagnostic{
			Kind: DiagUnparsedInput,
			At:   first,
		})
	}
}
