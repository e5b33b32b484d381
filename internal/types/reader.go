package types

// Reader is a deferred computation that needs an environment R to produce an A.
// Nothing runs until Run is called with an environment.
type Reader[R, A any] struct {
	run func(R) A
}

// ReaderOf wraps a function of the environment.
func ReaderOf[R, A any](f func(R) A) Reader[R, A] {
	mustNotBeNil(f, "reader function")
	return Reader[R, A]{run: f}
}

// Ask returns the environment itself.
func Ask[R any]() Reader[R, R] {
	return ReaderOf(Identity[R])
}

// PureReader lifts a value that does not depend on the environment.
func PureReader[R, A any](value A) Reader[R, A] {
	return ReaderOf(Constant[R](value))
}

// ReaderFromSupplier lifts an environment-independent computation; it runs on every Run.
func ReaderFromSupplier[R, A any](s func() A) Reader[R, A] {
	mustNotBeNil(s, "reader supplier")
	return ReaderOf(func(R) A { return s() })
}

// Run executes the computation. A nil environment is a programming error and panics.
func (r Reader[R, A]) Run(env R) A {
	mustNotBeNil(env, "reader environment")
	return r.run(env)
}

// MapReader transforms the output of a reader.
func MapReader[R, A, B any](r Reader[R, A], f func(A) B) Reader[R, B] {
	mustNotBeNil(f, "map function")
	return ReaderOf(Compose(r.run, f))
}

// AndThenReader feeds the output of r as the environment of next.
func AndThenReader[R, A, B any](r Reader[R, A], next Reader[A, B]) Reader[R, B] {
	return MapReader(r, next.run)
}

// FlatMapReader sequences r with a reader chosen from its output; both share the environment.
func FlatMapReader[R, A, B any](r Reader[R, A], f func(A) Reader[R, B]) Reader[R, B] {
	mustNotBeNil(f, "flatMap function")
	return ReaderOf(func(env R) B {
		return f(r.run(env)).run(env)
	})
}

// ZipReader runs r then other against the same environment and pairs the outputs.
func ZipReader[R, A, B any](r Reader[R, A], other Reader[R, B]) Reader[R, Pair[A, B]] {
	return FlatMapReader(r, func(a A) Reader[R, Pair[A, B]] {
		return MapReader(other, func(b B) Pair[A, B] { return PairOf(a, b) })
	})
}

// ZipLeftReader runs both readers and keeps the output of r.
func ZipLeftReader[R, A, B any](r Reader[R, A], other Reader[R, B]) Reader[R, A] {
	return MapReader(ZipReader(r, other), Pair[A, B].First)
}

// ZipRightReader runs both readers and keeps the output of other.
func ZipRightReader[R, A, B any](r Reader[R, A], other Reader[R, B]) Reader[R, B] {
	return MapReader(ZipReader(r, other), Pair[A, B].Second)
}

// LocalReader adapts a reader that needs a narrower environment N to run against a wider W.
// For interface environments the projection is usually the identity conversion.
func LocalReader[W, N, A any](r Reader[N, A], project func(W) N) Reader[W, A] {
	mustNotBeNil(project, "environment projection")
	return ReaderOf(Compose(project, r.run))
}
