// Package services provides the runtime collaborators the game runs against:
// console input and output and the word supply.
package services

import (
	"errors"
	"unicode/utf8"

	"github.com/gallows/hangman/internal/types"
)

// ErrEmptyInput is returned when a character is requested from an empty line.
var ErrEmptyInput = errors.New("empty input")

// Console reads lines from and prints lines to the player.
type Console interface {
	// ReadLine returns the next line without its line terminator
	ReadLine() (string, error)
	// Println prints a message followed by a newline; it always succeeds
	Println(message string) types.Unit
}

// Dictionary supplies secret words.
type Dictionary interface {
	PickWord() string
}

// Environment is everything the game driver needs from the outside world.
type Environment interface {
	Console
	Dictionary
	// ReadCharacter returns the first character of the next line
	ReadCharacter() (rune, error)
}

// LiveEnvironment combines a Console and a Dictionary into an Environment.
type LiveEnvironment struct {
	console    Console
	dictionary Dictionary
}

// NewLiveEnvironment creates an Environment backed by console and dictionary.
func NewLiveEnvironment(console Console, dictionary Dictionary) *LiveEnvironment {
	return &LiveEnvironment{
		console:    console,
		dictionary: dictionary,
	}
}

// ReadLine reads a line from the console.
func (e *LiveEnvironment) ReadLine() (string, error) {
	return e.console.ReadLine()
}

// Println prints a message on the console.
func (e *LiveEnvironment) Println(message string) types.Unit {
	return e.console.Println(message)
}

// PickWord picks a word from the dictionary.
func (e *LiveEnvironment) PickWord() string {
	return e.dictionary.PickWord()
}

// ReadCharacter reads a line and returns its first character.
func (e *LiveEnvironment) ReadCharacter() (rune, error) {
	return FirstCharacter(e.console)
}

// FirstCharacter reads a line from console and returns its first character.
func FirstCharacter(console Console) (rune, error) {
	line, err := console.ReadLine()
	if err != nil {
		return 0, err
	}
	r, size := utf8.DecodeRuneInString(line)
	if size == 0 {
		return 0, ErrEmptyInput
	}
	return r, nil
}
