package types

import "iter"

// Iterate returns the unbounded lazy sequence seed, next(seed), next(next(seed)), ...
// Each value is computed only when the consumer asks for it.
func Iterate[T any](seed T, next func(T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := seed; yield(current); current = next(current) {
		}
	}
}

// Filter keeps the values of seq that satisfy keep.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// First returns the first value of seq and stops it, failing with Unit when seq is empty.
func First[T any](seq iter.Seq[T]) Either[Unit, T] {
	var found T
	ok := false
	for v := range seq {
		found, ok = v, true
		break
	}
	return Either[Unit, T]{failure: UnitValue, success: found, isSuccess: ok}
}

// Take returns at most n values of seq.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}
