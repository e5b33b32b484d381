package types

import (
	"errors"
	"fmt"
)

// Either holds exactly one of a failure value E or a success value A.
// It encapsulates both outcomes without raising, and every combinator on it
// propagates a Failure unchanged.
//
// The zero value is a Failure holding the zero E; build values with Failure or Success.
type Either[E, A any] struct {
	failure   E
	success   A
	isSuccess bool
}

// Failure creates a failed Either. The payload must not be nil.
func Failure[E, A any](value E) Either[E, A] {
	mustNotBeNil(value, "failure payload")
	return Either[E, A]{failure: value}
}

// Success creates a successful Either. The payload must not be nil.
func Success[E, A any](value A) Either[E, A] {
	mustNotBeNil(value, "success payload")
	return Either[E, A]{success: value, isSuccess: true}
}

// IsSuccess returns true if the Either holds a success value.
func (e Either[E, A]) IsSuccess() bool {
	return e.isSuccess
}

// IsFailure returns true if the Either holds a failure value.
func (e Either[E, A]) IsFailure() bool {
	return !e.isSuccess
}

// SuccessValue returns the success payload and whether it is present.
func (e Either[E, A]) SuccessValue() (A, bool) {
	return e.success, e.isSuccess
}

// FailureValue returns the failure payload and whether it is present.
func (e Either[E, A]) FailureValue() (E, bool) {
	return e.failure, !e.isSuccess
}

// Resolve eliminates the failure arm by converting it into a success value.
func (e Either[E, A]) Resolve(f func(E) A) A {
	if e.isSuccess {
		return e.success
	}
	return f(e.failure)
}

// Or returns this Either if successful, otherwise returns the other Either.
func (e Either[E, A]) Or(other Either[E, A]) Either[E, A] {
	if e.isSuccess {
		return e
	}
	return other
}

// Swap exchanges the two arms.
func (e Either[E, A]) Swap() Either[A, E] {
	if e.isSuccess {
		return Failure[A, E](e.success)
	}
	return Success[A](e.failure)
}

// Match runs exactly one of the handlers.
func (e Either[E, A]) Match(onFailure func(E), onSuccess func(A)) {
	if e.isSuccess {
		onSuccess(e.success)
	} else {
		onFailure(e.failure)
	}
}

// String implements fmt.Stringer for debugging.
func (e Either[E, A]) String() string {
	if e.isSuccess {
		return fmt.Sprintf("Success(%v)", e.success)
	}
	return fmt.Sprintf("Failure(%v)", e.failure)
}

// Map transforms the success value, leaving failures unchanged.
// This is a standalone function to work around Go's generic method limitations.
func Map[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if !e.isSuccess {
		return Either[E, B]{failure: e.failure}
	}
	return Success[E](f(e.success))
}

// MapFailure transforms the failure value, leaving successes unchanged.
func MapFailure[E, A, F any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isSuccess {
		return Either[F, A]{success: e.success, isSuccess: true}
	}
	return Failure[F, A](f(e.failure))
}

// FlatMap applies a function that returns an Either, avoiding nested values.
// It never calls f on a Failure.
func FlatMap[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if !e.isSuccess {
		return Either[E, B]{failure: e.failure}
	}
	return f(e.success)
}

// Chain is an alias for FlatMap.
func Chain[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	return FlatMap(e, f)
}

// FlatMapFailure is the recovery path: it sequences only on Failure.
func FlatMapFailure[E, A, F any](e Either[E, A], f func(E) Either[F, A]) Either[F, A] {
	if e.isSuccess {
		return Either[F, A]{success: e.success, isSuccess: true}
	}
	return f(e.failure)
}

// Fold eliminates both arms into a single value of a common type.
func Fold[E, A, C any](e Either[E, A], onFailure func(E) C, onSuccess func(A) C) C {
	if e.isSuccess {
		return onSuccess(e.success)
	}
	return onFailure(e.failure)
}

// Zip pairs two successes, short-circuiting to the first Failure encountered.
func Zip[E, A, B any](e Either[E, A], other Either[E, B]) Either[E, Pair[A, B]] {
	return FlatMap(e, func(a A) Either[E, Pair[A, B]] {
		return Map(other, func(b B) Pair[A, B] { return PairOf(a, b) })
	})
}

// ZipFailure pairs two failures, short-circuiting to the first Success encountered.
func ZipFailure[E, F, A any](e Either[E, A], other Either[F, A]) Either[Pair[E, F], A] {
	return FlatMapFailure(e, func(x E) Either[Pair[E, F], A] {
		return MapFailure(other, func(y F) Pair[E, F] { return PairOf(x, y) })
	})
}

// FromOk converts a comma-ok result into an Either, failing with Unit when ok is false.
func FromOk[A any](value A, ok bool) Either[Unit, A] {
	if !ok {
		return Failure[Unit, A](UnitValue)
	}
	return Success[Unit](value)
}

// FromError converts a standard Go (value, error) pair into an Either.
func FromError[A any](value A, err error) Either[error, A] {
	if err != nil {
		return Failure[error, A](err)
	}
	return Success[error](value)
}

// ErrPanic marks failures that were produced by recovering a panic.
var ErrPanic = errors.New("operation panicked")

// FromTry runs a risky operation and captures both a returned error and a panic as a Failure.
// It is the only place where abnormal termination is absorbed into a value.
func FromTry[A any](f func() (A, error)) Either[error, A] {
	value, err := try(f)
	return FromError(value, err)
}

func try[A any](f func() (A, error)) (value A, err error) {
	defer func() {
		if r := recover(); r != nil {
			if cause, ok := r.(error); ok {
				err = fmt.Errorf("%w: %w", ErrPanic, cause)
			} else {
				err = fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}
	}()
	return f()
}
