package wooflang

import "testing"

func cursorOf(text string) Cursor {
	return NewCursor(Tag(NewSource("test", text)))
}

func TestItem(t *testing.T) {
	if o := Item(cursorOf("")); !o.IsFailure() {
		t.Fatal("expected failure on empty cursor")
	}

	o := Item(cursorOf("ab"))
	if !o.IsSuccess() {
		t.Fatal("expected success")
	}
	if o.Value.Sym != 'a' {
		t.Fatalf("got %q", o.Value.Sym)
	}
	if o.Rest.Len() != 1 {
		t.Fatalf("got %d remaining", o.Rest.Len())
	}
	next := Item(o.Rest)
	if !next.IsSuccess() || next.Value.Sym != 'b' {
		t.Fatal("order not preserved")
	}
}

func TestSatisfy(t *testing.T) {
	isA := Satisfy(func(tok Token) bool {
		return tok.Sym == 'a'
	})
	if o := isA(cursorOf("ab")); !o.IsSuccess() || o.Value.Sym != 'a' {
		t.Fatal("expected a")
	}
	if o := isA(cursorOf("ba")); !o.IsFailure() {
		t.Fatal("expected failure")
	}
	if o := isA(cursorOf("")); !o.IsFailure() {
		t.Fatal("expected failure on empty cursor")
	}
}

func TestMap(t *testing.T) {
	digit := Map(Satisfy(func(tok Token) bool {
		return tok.Sym >= '0' && tok.Sym <= '9'
	}), func(tok Token) int {
		return int(tok.Sym - '0')
	})
	o := digit(cursorOf("7x"))
	if !o.IsSuccess() || o.Value != 7 {
		t.Fatalf("got %v", o.Value)
	}
	if o := digit(cursorOf("x7")); !o.IsFailure() {
		t.Fatal("expected failure to propagate")
	}
}

func TestBind(t *testing.T) {
	pair := Bind(Item, func(first Token) Parser[string] {
		return Map(Item, func(second Token) string {
			return string([]rune{first.Sym, second.Sym})
		})
	})
	o := pair(cursorOf("xyz"))
	if !o.IsSuccess() || o.Value != "xy" {
		t.Fatalf("got %v", o.Value)
	}
	if o.Rest.Len() != 1 {
		t.Fatalf("got %d remaining", o.Rest.Len())
	}
	if o := pair(cursorOf("x")); !o.IsFailure() {
		t.Fatal("expected failure")
	}
}

func TestSkipThenThenSkip(t *testing.T) {
	a := sym('a')
	b := sym('b')

	o := SkipThen(a, b)(cursorOf("ab"))
	if !o.IsSuccess() || o.Value.Sym != 'b' {
		t.Fatal("expected b")
	}

	o = ThenSkip(a, b)(cursorOf("ab"))
	if !o.IsSuccess() || o.Value.Sym != 'a' {
		t.Fatal("expected a")
	}
	if o := ThenSkip(a, b)(cursorOf("ac")); !o.IsFailure() {
		t.Fatal("expected failure")
	}
}

func TestChoiceLeftBias(t *testing.T) {
	qRan := false
	q := func(c Cursor) Outcome[Token] {
		qRan = true
		return Item(c)
	}

	o := Choice(sym('a'), q)(cursorOf("ab"))
	if !o.IsSuccess() || o.Value.Sym != 'a' {
		t.Fatal("expected a")
	}
	if qRan {
		t.Fatal("second alternative evaluated after success")
	}

	o = Choice(sym('x'), q)(cursorOf("ab"))
	if !o.IsSuccess() || o.Value.Sym != 'a' {
		t.Fatal("expected second alternative against the original cursor")
	}
	if !qRan {
		t.Fatal("second alternative not tried")
	}
}

func TestChoiceKeepsError(t *testing.T) {
	at := Token{Pos: Pos{Line: 1, Column: 1}}
	qRan := false
	q := func(c Cursor) Outcome[Token] {
		qRan = true
		return Item(c)
	}

	o := Choice(Raise[Token](DiagUnparsedInput, at), q)(cursorOf("ab"))
	if !o.IsError() {
		t.Fatal("error swallowed by choice")
	}
	if qRan {
		t.Fatal("alternative tried after error")
	}
}

func TestMany0(t *testing.T) {
	as := Many0(sym('a'))

	o := as(cursorOf("aab"))
	if !o.IsSuccess() || len(o.Value) != 2 {
		t.Fatalf("got %d values", len(o.Value))
	}
	if o.Rest.Len() != 1 {
		t.Fatalf("got %d remaining", o.Rest.Len())
	}

	// never fails
	o = as(cursorOf("bbb"))
	if !o.IsSuccess() || len(o.Value) != 0 {
		t.Fatal("expected empty success")
	}
	if o.Rest.Len() != 3 {
		t.Fatal("cursor changed")
	}

	at := Token{}
	errs := Many0(SkipThen(sym('a'), Raise[Token](DiagUnparsedInput, at)))
	if o := errs(cursorOf("ab")); !o.IsError() {
		t.Fatal("error swallowed by repetition")
	}
}

func TestMany1(t *testing.T) {
	as := Many1(sym('a'))
	if o := as(cursorOf("ab")); !o.IsSuccess() || len(o.Value) != 1 {
		t.Fatal("expected one value")
	}
	if o := as(cursorOf("b")); !o.IsFailure() {
		t.Fatal("expected failure on zero matches")
	}
}

func TestNegate1(t *testing.T) {
	notA := Negate1(sym('a'))

	o := notA(cursorOf("ba"))
	if !o.IsSuccess() || o.Value.Sym != 'b' {
		t.Fatal("expected b")
	}
	if o := notA(cursorOf("ab")); !o.IsFailure() {
		t.Fatal("expected failure when inner parser succeeds")
	}
	if o := notA(cursorOf("")); !o.IsFailure() {
		t.Fatal("expected failure on empty cursor")
	}

	at := Token{}
	if o := Negate1(Raise[Token](DiagUnparsedInput, at))(cursorOf("ab")); !o.IsError() {
		t.Fatal("error swallowed by negation")
	}
}

func TestOptional(t *testing.T) {
	optA := Optional(sym('a'))

	o := optA(cursorOf("ab"))
	if !o.IsSuccess() || o.Value == nil || o.Value.Sym != 'a' {
		t.Fatal("expected a")
	}

	o = optA(cursorOf("ba"))
	if !o.IsSuccess() || o.Value != nil {
		t.Fatal("expected nil success")
	}
	if o.Rest.Len() != 2 {
		t.Fatal("cursor changed")
	}
}

func TestEnd(t *testing.T) {
	if o := End(cursorOf("")); !o.IsSuccess() {
		t.Fatal("expected success on empty cursor")
	}
	if o := End(cursorOf("a")); !o.IsFailure() {
		t.Fatal("expected failure on non-empty cursor")
	}
}

func TestCommit(t *testing.T) {
	at := Token{Pos: Pos{Line: 3, Column: 7}}

	o := Commit(DiagMissingOperator, at, sym('a'))(cursorOf("ab"))
	if !o.IsSuccess() {
		t.Fatal("success converted")
	}

	o = Commit(DiagMissingOperator, at, sym('a'))(cursorOf("ba"))
	if !o.IsError() {
		t.Fatal("failure not converted to error")
	}
	if o.Diag.Kind != DiagMissingOperator || o.Diag.At.Pos.Line != 3 || o.Diag.At.Pos.Column != 7 {
		t.Fatalf("got %v", o.Diag)
	}

	inner := &Diagnostic{Kind: DiagUnparsedInput, At: at}
	o = Commit(DiagMissingOperator, at, func(Cursor) Outcome[Token] {
		return Errored[Token](inner)
	})(cursorOf("ab"))
	if !o.IsError() || o.Diag != inner {
		t.Fatal("existing error not propagated unchanged")
	}
}

func TestCatch(t *testing.T) {
	at := Token{}
	caught := Catch(Raise[Token](DiagMissingOperator, at), func(diag *Diagnostic) Parser[Token] {
		if diag.Kind != DiagMissingOperator {
			t.Fatalf("got %v", diag.Kind)
		}
		return Item
	})
	o := caught(cursorOf("ab"))
	if !o.IsSuccess() || o.Value.Sym != 'a' {
		t.Fatal("handler not run against the original cursor")
	}
}
