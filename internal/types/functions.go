package types

// Both runs f and g against the same input and pairs their outputs, f first.
func Both[A, B, C any](f func(A) B, g func(A) C) func(A) Pair[B, C] {
	return func(a A) Pair[B, C] {
		b := f(a)
		return PairOf(b, g(a))
	}
}

// KeepLeft runs f then g against the same input and keeps the output of f.
func KeepLeft[A, B, C any](f func(A) B, g func(A) C) func(A) B {
	return Compose(Both(f, g), Pair[B, C].First)
}

// KeepRight runs f then g against the same input and keeps the output of g.
func KeepRight[A, B, C any](f func(A) B, g func(A) C) func(A) C {
	return Compose(Both(f, g), Pair[B, C].Second)
}

// Flatten feeds the same input to a function and then to the function it returns.
func Flatten[A, B any](f func(A) func(A) B) func(A) B {
	return func(a A) B {
		return f(a)(a)
	}
}

// ChainFunc sequences f with a function selected from f's output; both see the same input.
func ChainFunc[A, B, C any](f func(A) B, g func(B) func(A) C) func(A) C {
	return func(a A) C {
		return g(f(a))(a)
	}
}

// Compose applies f and then g.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Identity returns the supplied value unchanged.
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that ignores its input and always returns v.
func Constant[A, T any](v T) func(A) T {
	return func(A) T {
		return v
	}
}
