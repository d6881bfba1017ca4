// Package result defines NetworkResult, the value every remote call in the
// sync engine returns instead of an error.
//
// A NetworkResult is exactly one of three variants:
//   - [Success]: the server answered with a 2xx status and a decoded value;
//   - [Failure]: the server answered with a non-2xx status;
//   - [NetworkException]: no usable answer arrived (transport error,
//     timeout, cancellation or an undecodable body).
//
// The interface carries an unexported method typed on T, so no other package
// can add a fourth variant and a variant of another value type does not
// satisfy it. Use [Fold] to handle all three cases at once.
package result

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoResult stands in for the cause when a nil NetworkResult is folded.
var ErrNoResult = errors.New("no network result")

// NetworkResult is the outcome of one remote call.
type NetworkResult[T any] interface {
	// StatusCode returns the HTTP status of the answer, or 0 when no answer
	// was received.
	StatusCode() int

	isNetworkResult(T)
}

// Success carries the decoded response of a 2xx answer.
type Success[T any] struct {
	Value T
	Code  int
}

// Failure carries the status and raw body of a non-2xx answer.
type Failure[T any] struct {
	Code int
	Body []byte
}

// NetworkException carries the reason no answer was received.
type NetworkException[T any] struct {
	Cause error
}

func (s Success[T]) StatusCode() int          { return s.Code }
func (f Failure[T]) StatusCode() int          { return f.Code }
func (e NetworkException[T]) StatusCode() int { return 0 }

func (Success[T]) isNetworkResult(T)          {}
func (Failure[T]) isNetworkResult(T)          {}
func (NetworkException[T]) isNetworkResult(T) {}

func (f Failure[T]) Error() string {
	text := http.StatusText(f.Code)
	if len(f.Body) > 0 {
		return fmt.Sprintf("http %d %s: %s", f.Code, text, f.Body)
	}
	return fmt.Sprintf("http %d %s", f.Code, text)
}

func (e NetworkException[T]) Error() string {
	return fmt.Sprintf("network exception: %v", e.Cause)
}

func (e NetworkException[T]) Unwrap() error {
	return e.Cause
}

// OK builds a Success with status 200.
func OK[T any](v T) NetworkResult[T] {
	return Success[T]{Value: v, Code: http.StatusOK}
}

// Fold calls exactly one of the handlers depending on the variant of r.
// A nil r is treated as a NetworkException.
func Fold[T, R any](
	r NetworkResult[T],
	onSuccess func(value T, code int) R,
	onFailure func(code int, body []byte) R,
	onException func(cause error) R,
) R {
	switch v := r.(type) {
	case Success[T]:
		return onSuccess(v.Value, v.Code)
	case Failure[T]:
		return onFailure(v.Code, v.Body)
	case NetworkException[T]:
		return onException(v.Cause)
	default:
		return onException(ErrNoResult)
	}
}

// Unwrapped returns the value of a Success. For any other variant it
// returns the zero value and an error describing the variant.
func Unwrapped[T any](r NetworkResult[T]) (T, error) {
	var zero T
	switch v := r.(type) {
	case Success[T]:
		return v.Value, nil
	case Failure[T]:
		return zero, v
	case NetworkException[T]:
		return zero, v
	default:
		return zero, NetworkException[T]{Cause: ErrNoResult}
	}
}

// Failed reports whether r is anything other than a Success.
func Failed[T any](r NetworkResult[T]) bool {
	_, ok := r.(Success[T])
	return !ok
}

// Map converts the value of a Success with fn and keeps the other variants.
func Map[T, R any](r NetworkResult[T], fn func(T) R) NetworkResult[R] {
	return Fold(r,
		func(v T, code int) NetworkResult[R] { return Success[R]{Value: fn(v), Code: code} },
		func(code int, body []byte) NetworkResult[R] { return Failure[R]{Code: code, Body: body} },
		func(cause error) NetworkResult[R] { return NetworkException[R]{Cause: cause} },
	)
}

// Discard drops the value of a Success, keeping only the variant and status.
func Discard[T any](r NetworkResult[T]) NetworkResult[struct{}] {
	return Map(r, func(T) struct{} { return struct{}{} })
}
