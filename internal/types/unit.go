// Package types provides the functional programming primitives the game is built on.
package types

// Unit is the result of a computation that is run only for its effect.
type Unit struct{}

// UnitValue is the single value of Unit.
var UnitValue = Unit{}

// String implements fmt.Stringer.
func (Unit) String() string {
	return "()"
}
