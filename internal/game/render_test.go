package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Hint(t *testing.T) {
	s := Initialize("Ada", "CAT")
	assert.Equal(t, "_ _ _", s.Hint())

	s = s.Play('C')
	assert.Equal(t, "C _ _", s.Hint())

	s = s.Play('A').Play('T')
	assert.Equal(t, "C A T", s.Hint())

	assert.Equal(t, "B O O _", Initialize("Ada", "BOOK").Play('O').Play('B').Hint())
}

func TestState_MistakesLine(t *testing.T) {
	assert.Equal(t, "Mistakes: ", Initialize("Ada", "CAT").MistakesLine())
	assert.Equal(t, "Mistakes: Q, W", playAll(Initialize("Ada", "CAT"), "QCW").MistakesLine())
}

func TestState_String(t *testing.T) {
	s := playAll(Initialize("Ada", "CAT"), "QC")
	lines := strings.Split(s.String(), "\n")

	assert.Equal(t, "C _ _", lines[0])
	assert.Equal(t, "Mistakes: Q", lines[len(lines)-1])
	assert.Equal(t, Gallows(2), strings.Join(lines[1:len(lines)-1], "\n"))
}

func TestGallows(t *testing.T) {
	assert.Equal(t, 8, Stages())

	t.Run("every stage is distinct", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < Stages(); i++ {
			stage := Gallows(i)
			assert.False(t, seen[stage], "stage %d repeats", i)
			assert.False(t, strings.HasPrefix(stage, "\n"))
			seen[stage] = true
		}
	})

	t.Run("out of range counts are clamped", func(t *testing.T) {
		assert.Equal(t, Gallows(0), Gallows(-1))
		assert.Equal(t, Gallows(Stages()-1), Gallows(Stages()))
		assert.Equal(t, Gallows(Stages()-1), Gallows(26))
	})

	t.Run("rendering a long game does not panic", func(t *testing.T) {
		s := playAll(Initialize("Ada", "QUIZZICAL"), "EOTNSRDHQUIZ")
		assert.NotPanics(t, func() { _ = s.String() })
	})
}
