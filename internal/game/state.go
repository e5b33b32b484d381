package game

import (
	"slices"
	"strings"
	"unicode"
)

// Threshold is the number of missed letters that loses the game.
const Threshold = 7

// State is an immutable snapshot of one game. Transitions return a new State
// and never modify the receiver.
type State struct {
	player string
	word   string
	played []rune
	status Status
}

// Initialize starts a game for player with the given secret word, normalized to upper case.
func Initialize(player, word string) State {
	return State{
		player: player,
		word:   strings.ToUpper(word),
		status: Playing,
	}
}

// Player returns the player's name.
func (s State) Player() string {
	return s.player
}

// Word returns the secret word.
func (s State) Word() string {
	return s.word
}

// Status returns the current status.
func (s State) Status() Status {
	return s.status
}

// IsFinished reports whether the game reached a terminal status.
func (s State) IsFinished() bool {
	return s.status.IsTerminal()
}

// Played returns the played letters in the order they were played.
func (s State) Played() []rune {
	return slices.Clone(s.played)
}

// HasPlayed reports whether letter was already played.
func (s State) HasPlayed(letter rune) bool {
	return slices.Contains(s.played, unicode.ToUpper(letter))
}

// Misses returns the played letters that are not in the word, in play order.
func (s State) Misses() []rune {
	letters := s.wordLetters()
	var misses []rune
	for _, r := range s.played {
		if !slices.Contains(letters, r) {
			misses = append(misses, r)
		}
	}
	return misses
}

// Remaining returns the distinct letters of the word that have not been played yet.
func (s State) Remaining() []rune {
	var remaining []rune
	for _, r := range s.wordLetters() {
		if !slices.Contains(s.played, r) {
			remaining = append(remaining, r)
		}
	}
	return remaining
}

// Play applies one guess and returns the resulting state.
//
// A terminal state or an already played letter leaves the state unchanged. A character
// that is not a letter abandons the game without being recorded as a guess.
func (s State) Play(letter rune) State {
	letter = unicode.ToUpper(letter)
	if s.status.IsTerminal() || s.HasPlayed(letter) {
		return s
	}
	if !unicode.IsLetter(letter) {
		return s.with(s.played, Abandoned)
	}

	remaining := s.Remaining()
	played := append(slices.Clone(s.played), letter)

	if slices.Contains(remaining, letter) {
		if len(remaining) == 1 {
			return s.with(played, Won)
		}
		return s.with(played, Playing)
	}

	next := s.with(played, Playing)
	if len(next.Misses()) >= Threshold {
		return s.with(played, Lost)
	}
	return next
}

// Equal reports whether two states hold the same player, word, letters and status.
func (s State) Equal(other State) bool {
	return s.player == other.player &&
		s.word == other.word &&
		s.status == other.status &&
		slices.Equal(s.played, other.played)
}

func (s State) with(played []rune, status Status) State {
	return State{
		player: s.player,
		word:   s.word,
		played: played,
		status: status,
	}
}

// wordLetters returns the distinct letters of the word in first-occurrence order.
func (s State) wordLetters() []rune {
	var letters []rune
	for _, r := range s.word {
		if !slices.Contains(letters, r) {
			letters = append(letters, r)
		}
	}
	return letters
}
