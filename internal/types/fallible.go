package types

// FallibleReader is a deferred computation of the environment R that either fails with E
// or succeeds with A. Chained steps stop at the first Failure: once a step fails, no later
// step sees the environment for the rest of that Run.
type FallibleReader[R, E, A any] struct {
	run Reader[R, Either[E, A]]
}

// FallibleOf wraps a function of the environment that already returns an Either.
func FallibleOf[R, E, A any](f func(R) Either[E, A]) FallibleReader[R, E, A] {
	return FallibleReader[R, E, A]{run: ReaderOf(f)}
}

// FromReader lifts a Reader whose output is always a success.
func FromReader[E, R, A any](r Reader[R, A]) FallibleReader[R, E, A] {
	return FallibleReader[R, E, A]{run: MapReader(r, Success[E, A])}
}

// Lift wraps an infallible function of the environment.
func Lift[E, R, A any](f func(R) A) FallibleReader[R, E, A] {
	return FromReader[E](ReaderOf(f))
}

// Pure lifts a value that depends on neither the environment nor can fail.
func Pure[R, E, A any](value A) FallibleReader[R, E, A] {
	return FromReader[E](PureReader[R](value))
}

// Fail lifts a failure that does not depend on the environment.
func Fail[R, A, E any](value E) FallibleReader[R, E, A] {
	return FallibleOf(Constant[R](Failure[E, A](value)))
}

// FallibleFromSupplier lifts an environment-independent infallible computation.
func FallibleFromSupplier[R, E, A any](s func() A) FallibleReader[R, E, A] {
	return FromReader[E](ReaderFromSupplier[R](s))
}

// Run executes the computation. It never panics for domain failures; a nil environment
// is a programming error and does panic.
func (r FallibleReader[R, E, A]) Run(env R) Either[E, A] {
	return r.run.Run(env)
}

// Reader exposes the underlying reader of Either values.
func (r FallibleReader[R, E, A]) Reader() Reader[R, Either[E, A]] {
	return r.run
}

// MapF transforms the success value.
func MapF[R, E, A, B any](r FallibleReader[R, E, A], f func(A) B) FallibleReader[R, E, B] {
	mustNotBeNil(f, "map function")
	return FallibleReader[R, E, B]{run: MapReader(r.run, func(e Either[E, A]) Either[E, B] {
		return Map(e, f)
	})}
}

// MapFailureF transforms the failure value.
func MapFailureF[R, E, A, F any](r FallibleReader[R, E, A], f func(E) F) FallibleReader[R, F, A] {
	mustNotBeNil(f, "map function")
	return FallibleReader[R, F, A]{run: MapReader(r.run, func(e Either[E, A]) Either[F, A] {
		return MapFailure(e, f)
	})}
}

// FlatMapF runs r and, only on success, runs the reader chosen from its value against the
// same environment. On failure the environment is not passed any further.
func FlatMapF[R, E, A, B any](r FallibleReader[R, E, A], f func(A) FallibleReader[R, E, B]) FallibleReader[R, E, B] {
	mustNotBeNil(f, "flatMap function")
	return FallibleOf(func(env R) Either[E, B] {
		return FlatMap(r.run.run(env), func(a A) Either[E, B] {
			return f(a).run.run(env)
		})
	})
}

// ZipF runs r and then, only if r succeeded, other; the two values are paired.
func ZipF[R, E, A, B any](r FallibleReader[R, E, A], other FallibleReader[R, E, B]) FallibleReader[R, E, Pair[A, B]] {
	return FlatMapF(r, func(a A) FallibleReader[R, E, Pair[A, B]] {
		return MapF(other, func(b B) Pair[A, B] { return PairOf(a, b) })
	})
}

// ZipLeftF sequences both readers and keeps the value of r.
func ZipLeftF[R, E, A, B any](r FallibleReader[R, E, A], other FallibleReader[R, E, B]) FallibleReader[R, E, A] {
	return MapF(ZipF(r, other), Pair[A, B].First)
}

// ZipRightF sequences both readers and keeps the value of other.
func ZipRightF[R, E, A, B any](r FallibleReader[R, E, A], other FallibleReader[R, E, B]) FallibleReader[R, E, B] {
	return MapF(ZipF(r, other), Pair[A, B].Second)
}

// LocalF adapts a reader that needs a narrower environment N to run against a wider W.
func LocalF[W, N, E, A any](r FallibleReader[N, E, A], project func(W) N) FallibleReader[W, E, A] {
	return FallibleReader[W, E, A]{run: LocalReader(r.run, project)}
}
