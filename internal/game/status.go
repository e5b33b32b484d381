// Package game implements the immutable hangman state machine.
package game

// Status is the lifecycle stage of a game.
type Status int

const (
	// Playing is the initial status; every other status is terminal.
	Playing Status = iota
	// Won means every letter of the word was guessed.
	Won
	// Lost means the miss threshold was reached.
	Lost
	// Abandoned means the player entered something that is not a letter.
	Abandoned
)

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s != Playing
}

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Playing:
		return "PLAYING"
	case Won:
		return "WON"
	case Lost:
		return "LOST"
	case Abandoned:
		return "ABANDONED"
	default:
		return "UNKNOWN"
	}
}
