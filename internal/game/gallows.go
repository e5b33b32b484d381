package game

import "strings"

// gallows holds the stages of the drawing, indexed by the number of played letters.
var gallows = [...]string{
	`
  +---+
      |
      |
      |
      |
=========`,
	`
  +---+
  |   |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
  |   |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|   |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 /    |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 / \  |
=========`,
}

// Stages returns the number of gallows drawings.
func Stages() int {
	return len(gallows)
}

// Gallows returns the drawing for the given number of played letters.
// Out-of-range counts are clamped rather than treated as an error: counts past the
// last stage keep showing the full drawing and negative counts show the empty one.
func Gallows(played int) string {
	if played < 0 {
		played = 0
	}
	if played >= len(gallows) {
		played = len(gallows) - 1
	}
	return strings.TrimPrefix(gallows[played], "\n")
}
