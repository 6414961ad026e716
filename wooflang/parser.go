package wooflang

// Parser is a pure function from a cursor to an outcome.
type Parser[T any] func(Cursor) Outcome[T]

// Item consumes exactly one token, failing on an empty cursor. Every other
// token-consuming parser is built on it.
func Item(c Cursor) Outcome[Token] {
	if c.Empty() {
		return Fail[Token]()
	}
	token, rest := c.next()
	return Success(token, rest)
}

// Check filters a parser's success through a predicate, turning a rejected
// value into a failure.
func Check[T any](p Parser[T], pred func(T) bool) Parser[T] {
	return func(c Cursor) Outcome[T] {
		o := p(c)
		if o.IsSuccess() && !pred(o.Value) {
			return Fail[T]()
		}
		return o
	}
}

func Satisfy(pred func(Token) bool) Parser[Token] {
	return Check(Item, pred)
}

func Map[A, B any](p Parser[A], fn func(A) B) Parser[B] {
	return func(c Cursor) Outcome[B] {
		o := p(c)
		if !o.IsSuccess() {
			return relay[B](o)
		}
		return Success(fn(o.Value), o.Rest)
	}
}

// Bind sequences two parsers, the second depending on the first's value. The
// cursor threads through the chain; failure or error short-circuits it.
func Bind[A, B any](p Parser[A], fn func(A) Parser[B]) Parser[B] {
	return func(c Cursor) Outcome[B] {
		o := p(c)
		if !o.IsSuccess() {
			return relay[B](o)
		}
		return fn(o.Value)(o.Rest)
	}
}

// SkipThen runs p then q, keeping q's value.
func SkipThen[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return func(c Cursor) Outcome[B] {
		o := p(c)
		if !o.IsSuccess() {
			return relay[B](o)
		}
		return q(o.Rest)
	}
}

// ThenSkip runs p then q, keeping p's value.
func ThenSkip[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return func(c Cursor) Outcome[A] {
		o := p(c)
		if !o.IsSuccess() {
			return o
		}
		r := q(o.Rest)
		if !r.IsSuccess() {
			return relay[A](r)
		}
		return Success(o.Value, r.Rest)
	}
}

// Choice tries each parser against the same cursor, returning the first
// success. An error is returned as-is, never suppressed to try the next
// alternative; that asymmetry is what separates failure from error.
func Choice[T any](parsers ...Parser[T]) Parser[T] {
	return func(c Cursor) Outcome[T] {
		for _, p := range parsers {
			o := p(c)
			if !o.IsFailure() {
				return o
			}
		}
		return Fail[T]()
	}
}

// Many0 repeats p zero or more times, stopping without failing at the first
// failure. An error from p aborts the whole repetition.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return func(c Cursor) Outcome[[]T] {
		var values []T
		for {
			o := p(c)
			if o.IsError() {
				return relay[[]T](o)
			}
			if o.IsFailure() {
				return Success(values, c)
			}
			values = append(values, o.Value)
			c = o.Rest
		}
	}
}

func Many1[T any](p Parser[T]) Parser[[]T] {
	return Check(Many0(p), func(values []T) bool {
		return len(values) > 0
	})
}

// Negate1 consumes one token iff p does not succeed at the current position.
// An error from p propagates.
func Negate1[T any](p Parser[T]) Parser[Token] {
	return func(c Cursor) Outcome[Token] {
		o := p(c)
		if o.IsError() {
			return relay[Token](o)
		}
		if o.IsSuccess() {
			return Fail[Token]()
		}
		return Item(c)
	}
}

// Optional turns p's failure into a nil success; it never fails itself.
func Optional[T any](p Parser[T]) Parser[*T] {
	return func(c Cursor) Outcome[*T] {
		o := p(c)
		if o.IsError() {
			return relay[*T](o)
		}
		if o.IsFailure() {
			return Success[*T](nil, c)
		}
		value := o.Value
		return Success(&value, o.Rest)
	}
}

// End succeeds only on an empty cursor.
func End(c Cursor) Outcome[struct{}] {
	if !c.Empty() {
		return Fail[struct{}]()
	}
	return Success(struct{}{}, c)
}
