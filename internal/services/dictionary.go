package services

import (
	_ "embed"
	"math/rand/v2"
	"strings"
	"sync"
	"unicode"
)

//go:embed words.txt
var embeddedWords string

// DefaultWords returns the built-in word list.
func DefaultWords() []string {
	return NormalizeWords(strings.Split(embeddedWords, "\n"))
}

// NormalizeWords trims and upper-cases words and drops blank or non-alphabetic entries.
func NormalizeWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w != "" && IsAlphabetic(w) {
			out = append(out, w)
		}
	}
	return out
}

// IsAlphabetic reports whether every character of s is a letter.
func IsAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// DictionaryFunc adapts a function to the Dictionary interface.
type DictionaryFunc func() string

// PickWord calls f.
func (f DictionaryFunc) PickWord() string {
	return f()
}

// FixedDictionary always picks word.
func FixedDictionary(word string) Dictionary {
	return DictionaryFunc(func() string { return word })
}

// RandomDictionary picks words uniformly from a list.
type RandomDictionary struct {
	mu    sync.Mutex
	words []string
	rng   *rand.Rand
}

// NewRandomDictionary creates a dictionary over words. A zero seed draws from the
// runtime's random source; any other seed gives a reproducible sequence.
func NewRandomDictionary(words []string, seed uint64) *RandomDictionary {
	if len(words) == 0 {
		words = DefaultWords()
	}
	var src rand.Source
	if seed == 0 {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	} else {
		src = rand.NewPCG(seed, seed)
	}
	return &RandomDictionary{
		words: append([]string(nil), words...),
		rng:   rand.New(src),
	}
}

// PickWord returns a random word from the list.
func (d *RandomDictionary) PickWord() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.words[d.rng.IntN(len(d.words))]
}

// Words returns a copy of the word list.
func (d *RandomDictionary) Words() []string {
	return append([]string(nil), d.words...)
}
