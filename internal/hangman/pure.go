package hangman

import (
	"strings"
	"unicode"

	"github.com/gallows/hangman/internal/game"
	"github.com/gallows/hangman/internal/types"
)

// The variant below has no failure channel. Input that cannot be read counts as empty:
// an empty name is accepted and an unreadable letter abandons the game.

func printFn(message string) func(Env) types.Unit {
	return func(e Env) types.Unit { return e.Println(message) }
}

func readLineOrEmpty(e Env) string {
	line, err := e.ReadLine()
	if err != nil {
		return ""
	}
	return line
}

func readLetterOrNone(e Env) rune {
	r, err := e.ReadCharacter()
	if err != nil {
		return 0
	}
	return unicode.ToUpper(r)
}

func pickUpperWord(e Env) string {
	return strings.ToUpper(e.PickWord())
}

var (
	// InitGame asks for the name, reads it, picks the word and starts the game,
	// composed from plain functions of the environment.
	InitGame = types.Compose(
		types.Both(
			types.KeepRight(printFn(NamePrompt), readLineOrEmpty),
			types.KeepRight(printFn(WordPrompt), pickUpperWord),
		),
		newGame,
	)

	getLetterOrNone = types.ZipRightReader(types.ReaderOf(printFn(LetterPrompt)), types.ReaderOf(readLetterOrNone))

	// PureProgram is Program without failure handling.
	PureProgram = types.FlatMapReader(
		types.FlatMapReader(types.FlatMapReader(types.ReaderOf(InitGame), printStateReader), pureGameLoop),
		func(hs game.State) types.Reader[Env, game.State] {
			return types.MapReader(types.ReaderOf(printFn(ResultMessage(hs))), types.Constant[types.Unit](hs))
		},
	)
)

func printStateReader(hs game.State) types.Reader[Env, game.State] {
	return types.MapReader(types.ReaderOf(printFn(hs.String())), types.Constant[types.Unit](hs))
}

func pureTurn(hs game.State) types.Reader[Env, game.State] {
	played := types.MapReader(types.ZipReader(types.PureReader[Env](hs), getLetterOrNone), evaluateLetter)
	return types.FlatMapReader(played, printStateReader)
}

func pureGameLoop(hs game.State) types.Reader[Env, game.State] {
	return types.ReaderOf(func(e Env) game.State {
		states := types.Iterate(hs, func(s game.State) game.State { return pureTurn(s).Run(e) })
		return types.First(types.Filter(states, game.State.IsFinished)).Resolve(types.Constant[types.Unit](hs))
	})
}
