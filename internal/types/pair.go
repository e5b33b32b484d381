package types

import "fmt"

// Pair is an immutable ordered two-element product.
// Two pairs of comparable components compare equal with == when both components are equal.
type Pair[A, B any] struct {
	first  A
	second B
}

// PairOf creates a Pair. Neither component may be nil.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	mustNotBeNil(first, "pair first component")
	mustNotBeNil(second, "pair second component")
	return Pair[A, B]{first: first, second: second}
}

// First returns the left component.
func (p Pair[A, B]) First() A {
	return p.first
}

// Second returns the right component.
func (p Pair[A, B]) Second() B {
	return p.second
}

// Values returns both components.
func (p Pair[A, B]) Values() (A, B) {
	return p.first, p.second
}

// String implements fmt.Stringer.
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.first, p.second)
}

// BimapPair transforms each side of the pair independently.
func BimapPair[A, B, C, D any](p Pair[A, B], f func(A) C, g func(B) D) Pair[C, D] {
	return PairOf(f(p.first), g(p.second))
}

// MapFirst transforms the left component.
func MapFirst[A, B, C any](p Pair[A, B], f func(A) C) Pair[C, B] {
	return PairOf(f(p.first), p.second)
}

// MapSecond transforms the right component.
func MapSecond[A, B, D any](p Pair[A, B], g func(B) D) Pair[A, D] {
	return PairOf(p.first, g(p.second))
}
