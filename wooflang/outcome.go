package wooflang

// Outcome is the three-way result of running a parser: success with a value
// and the remaining cursor, recoverable failure, or a diagnostic-carrying
// error that no Choice may swallow.
type Outcome[T any] struct {
	Value T
	Rest  Cursor
	Diag  *Diagnostic
	kind  outcomeKind
}

type outcomeKind uint8

const (
	outcomeFailure outcomeKind = iota
	outcomeSuccess
	outcomeError
)

func Success[T any](value T, rest Cursor) Outcome[T] {
	return Outcome[T]{
		Value: value,
		Rest:  rest,
		kind:  outcomeSuccess,
	}
}

func Fail[T any]() Outcome[T] {
	return Outcome[T]{
		kind: outcomeFailure,
	}
}

func Errored[T any](diag *Diagnostic) Outcome[T] {
	return Outcome[T]{
		Diag: diag,
		kind: outcomeError,
	}
}

func (o Outcome[T]) IsSuccess() bool {
	return o.kind == outcomeSuccess
}

func (o Outcome[T]) IsFailure() bool {
	return o.kind == outcomeFailure
}

func (o Outcome[T]) IsError() bool {
	return o.kind == outcomeError
}

// relay carries a failure or error over to another result type.
func relay[B, A any](o Outcome[A]) Outcome[B] {
	switch o.kind {
	case outcomeFailure:
		return Fail[B]()
	case outcomeError:
		return Errored[B](o.Diag)
	}
	panic("relay on success")
}
