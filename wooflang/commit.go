package wooflang

// Commit runs p with backtracking disabled: a failure becomes an error
// anchored at the given token. Use it only after a rule is disambiguated,
// e.g. after the keyword separating define from lambda has matched; a commit
// placed earlier would wrongly block sibling alternatives.
func Commit[T any](kind DiagKind, at Token, p Parser[T]) Parser[T] {
	return func(c Cursor) Outcome[T] {
		o := p(c)
		if o.IsFailure() {
			return Errored[T](&Diagnostic{
				Kind: kind,
				At:   at,
			})
		}
		return o
	}
}

// Raise always errors, consuming nothing.
func Raise[T any](kind DiagKind, at Token) Parser[T] {
	return func(Cursor) Outcome[T] {
		return Errored[T](&Diagnostic{
			Kind: kind,
			At:   at,
		})
	}
}

// Catch intercepts an error from p, running the handler's parser against the
// original cursor. The only way to recover a committed error.
func Catch[T any](p Parser[T], handler func(*Diagnostic) Parser[T]) Parser[T] {
	return func(c Cursor) Outcome[T] {
		o := p(c)
		if o.IsError() {
			return handler(o.Diag)(c)
		}
		return o
	}
}
