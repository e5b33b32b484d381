package game

import (
	"slices"
	"strings"
)

// Placeholder stands in for a letter that has not been guessed yet.
const Placeholder = "_"

// Hint shows every guessed letter of the word and a placeholder for the rest.
func (s State) Hint() string {
	cells := make([]string, 0, len(s.word))
	for _, r := range s.word {
		if slices.Contains(s.played, r) {
			cells = append(cells, string(r))
		} else {
			cells = append(cells, Placeholder)
		}
	}
	return strings.Join(cells, " ")
}

// MistakesLine lists the missed letters in play order.
func (s State) MistakesLine() string {
	misses := s.Misses()
	parts := make([]string, len(misses))
	for i, r := range misses {
		parts[i] = string(r)
	}
	return "Mistakes: " + strings.Join(parts, ", ")
}

// String renders the hint, the gallows and the mistakes, one per line.
func (s State) String() string {
	return strings.Join([]string{
		s.Hint(),
		Gallows(len(s.played)),
		s.MistakesLine(),
	}, "\n")
}
