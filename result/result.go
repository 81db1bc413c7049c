// Package result models the outcome of an operation as either a success,
// optionally carrying a value, or a failure carrying an error, so expected
// failures travel as plain values instead of panics.
package result

import "fmt"

// Result holds either a success value of type T or a failure error. Which of
// the two it is gets decided once, by the constructor, and never changes.
// Build instances with Success or Failure only; the zero Result is an empty
// failure.
type Result[T any] struct {
	value T
	err   error
	state state
}

// Success wraps value in a successful Result. Any value is accepted,
// including T's zero value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, state: stateSuccess}
}

// Failure wraps err in a failed Result. The value slot keeps T's zero value.
// A nil err still yields a failure: the tag is stored explicitly, never
// inferred from the error.
func Failure[T any](err error) Result[T] {
	return Result[T]{err: err, state: stateFailure}
}

// IsSuccess reports whether r was built by Success.
func (r Result[T]) IsSuccess() bool {
	return r.state == stateSuccess
}

// IsFailure reports whether r was built by Failure.
func (r Result[T]) IsFailure() bool {
	return !r.IsSuccess()
}

// Value returns the success value. On a failure it returns T's zero value,
// which is not meaningful data; check IsSuccess first, or use Get or Unwrap.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure error, nil on a success.
func (r Result[T]) Err() error {
	return r.err
}

// Get returns the value and error as an ordinary Go pair.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Unwrap returns the success value, and panics with the error on a failure.
func (r Result[T]) Unwrap() T {
	if r.IsFailure() {
		panic(r.err)
	}
	return r.value
}

// UnwrapOr returns the success value, or fallback on a failure.
func (r Result[T]) UnwrapOr(fallback T) T {
	return ternary(r.IsSuccess(), r.value, fallback)
}

// UnwrapOrElse returns the success value, or the result of calling fallback
// on a failure. fallback is only called when needed.
func (r Result[T]) UnwrapOrElse(fallback func() T) T {
	if r.IsSuccess() {
		return r.value
	}
	return fallback()
}

func (r Result[T]) String() string {
	if r.IsSuccess() {
		return fmt.Sprintf("%v(%v)", r.state, r.value)
	}
	return fmt.Sprintf("%v(%v)", r.state, r.err)
}
