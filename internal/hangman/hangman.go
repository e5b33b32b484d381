// Package hangman composes the game out of deferred steps that run against a services.Environment.
//
// Every step is a value. Nothing touches the console or the dictionary until a program is
// Run with an environment, and a failed step stops the rest of the program: no prompt is
// printed and no line is read after the first failure.
package hangman

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gallows/hangman/internal/game"
	"github.com/gallows/hangman/internal/services"
	"github.com/gallows/hangman/internal/types"
)

// Env is the environment every step runs against.
type Env = services.Environment

// Failure messages.
const (
	ErrInvalidName      = "Invalid name"
	ErrInvalidCharacter = "Invalid character"
	ErrGameInterrupted  = "Game interrupted"
)

// Prompts.
const (
	NamePrompt   = "Please enter your name: "
	WordPrompt   = "Picking a secret word..."
	LetterPrompt = "Please enter a letter from a-z or any other to quit: "
)

// PrintLn prints message when run.
func PrintLn(message string) types.FallibleReader[Env, string, types.Unit] {
	return types.Lift[string](func(e Env) types.Unit { return e.Println(message) })
}

// ValidateName accepts any non-empty name.
func ValidateName(name string) types.Either[string, string] {
	if name == "" {
		return types.Failure[string, string](ErrInvalidName)
	}
	return types.Success[string](name)
}

var (
	askForName = PrintLn(NamePrompt)

	readName = types.FallibleOf(func(e Env) types.Either[string, string] {
		line := types.MapFailure(types.FromTry(e.ReadLine), types.Constant[error](ErrInvalidName))
		return types.FlatMap(line, ValidateName)
	})

	// GetPlayersName asks for the player's name and reads it.
	GetPlayersName = types.ZipRightF(askForName, readName)

	askForWord = PrintLn(WordPrompt)

	pickWord = types.Lift[string](func(e Env) string { return e.PickWord() })

	// GetWord announces and picks the secret word.
	GetWord = types.ZipRightF(askForWord, types.MapF(pickWord, strings.ToUpper))

	// InitializeGameState reads the name, then picks the word and starts the game.
	InitializeGameState = types.MapF(types.ZipF(GetPlayersName, GetWord), newGame)

	askForLetter = PrintLn(LetterPrompt)

	readCharacter = types.FallibleOf(func(e Env) types.Either[string, rune] {
		return types.MapFailure(types.FromTry(e.ReadCharacter), types.Constant[error](ErrInvalidCharacter))
	})

	// GetLetter asks for a letter and reads it in upper case.
	GetLetter = types.MapF(types.ZipRightF(askForLetter, readCharacter), unicode.ToUpper)

	// Hangman plays one full game and returns its final state.
	Hangman = types.FlatMapF(types.FlatMapF(InitializeGameState, PrintGameState), func(hs game.State) types.FallibleReader[Env, string, game.State] {
		return GameLoop(types.Success[string](hs))
	})

	// Program plays a game and announces the result.
	Program = types.FlatMapF(Hangman, func(hs game.State) types.FallibleReader[Env, string, game.State] {
		return types.MapF(PrintResult(hs), types.Constant[types.Unit](hs))
	})
)

func newGame(p types.Pair[string, string]) game.State {
	return game.Initialize(p.Values())
}

func evaluateLetter(p types.Pair[game.State, rune]) game.State {
	hs, letter := p.Values()
	return hs.Play(letter)
}

// PrintGameState renders hs and passes it on.
func PrintGameState(hs game.State) types.FallibleReader[Env, string, game.State] {
	return types.MapF(PrintLn(hs.String()), types.Constant[types.Unit](hs))
}

// Turn asks for one letter, plays it and renders the new state.
func Turn(hs game.State) types.FallibleReader[Env, string, game.State] {
	played := types.MapF(types.ZipF(types.Pure[Env, string](hs), GetLetter), evaluateLetter)
	return types.FlatMapF(played, PrintGameState)
}

// GameLoop plays turns from start until the game finishes or a turn fails.
// Turns are produced lazily from an unbounded sequence and the first finished
// state (or the first failure) is taken.
func GameLoop(start types.Either[string, game.State]) types.FallibleReader[Env, string, game.State] {
	return types.FallibleOf(func(e Env) types.Either[string, game.State] {
		states := types.Iterate(start, func(s types.Either[string, game.State]) types.Either[string, game.State] {
			return types.FlatMap(s, func(hs game.State) types.Either[string, game.State] {
				return Turn(hs).Run(e)
			})
		})
		finished := types.Filter(states, func(s types.Either[string, game.State]) bool {
			return types.Fold(s, types.Constant[string](true), game.State.IsFinished)
		})
		return types.First(finished).Resolve(func(types.Unit) types.Either[string, game.State] {
			return types.Failure[string, game.State](ErrGameInterrupted)
		})
	})
}

// ResultMessage is the closing line for a finished game.
func ResultMessage(hs game.State) string {
	return fmt.Sprintf("%s has %s!!!", hs.Player(), hs.Status())
}

// PrintResult announces the outcome of hs.
func PrintResult(hs game.State) types.FallibleReader[Env, string, types.Unit] {
	return PrintLn(ResultMessage(hs))
}
