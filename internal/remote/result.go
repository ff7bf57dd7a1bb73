package remote

import "github.com/bnema/coach-cli/internal/domain"

// Result is the outcome of one store operation: either a value or a classified failure.
type Result[T any] struct {
	Value   T
	Err     error
	Kind    domain.ErrorKind
	Message string
}

func Ok[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

func Fail[T any](kind domain.ErrorKind, message string, err error) Result[T] {
	return Result[T]{Kind: kind, Message: message, Err: err}
}

func (r Result[T]) OK() bool {
	return r.Err == nil
}

func (r Result[T]) Unwrap() (T, error) {
	return r.Value, r.Err
}
