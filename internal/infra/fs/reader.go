// Package fs reads word list files.
package fs

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gallows/hangman/internal/types"
)

// ErrBinaryFile is returned for files that do not look like text.
var ErrBinaryFile = errors.New("not a text file")

// ReadFile reads the entire contents of a file.
func ReadFile(path string) types.Either[error, []byte] {
	data, err := os.ReadFile(path)
	return types.FromError(data, err)
}

// ReadWords reads a word list with one word per line. Blank lines and lines
// starting with '#' are skipped; words are returned as written, trimmed.
func ReadWords(path string) types.Either[error, []string] {
	data := types.FlatMap(ReadFile(path), func(data []byte) types.Either[error, []byte] {
		if !IsTextContent(data) {
			return types.Failure[error, []byte](fmt.Errorf("%s: %w", path, ErrBinaryFile))
		}
		return types.Success[error](data)
	})
	return types.Map(data, parseWords)
}

func parseWords(data []byte) []string {
	var words []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words
}

// IsTextContent determines if the given byte slice contains text content.
func IsTextContent(data []byte) bool {
	if len(data) == 0 {
		return true
	}

	// Null bytes are common in binary files
	if bytes.Contains(data, []byte{0}) {
		return false
	}

	if !utf8.Valid(data) {
		return false
	}

	nonPrintable := 0
	for _, b := range data {
		if b < 32 && b != '\t' && b != '\n' && b != '\r' {
			nonPrintable++
		}
	}

	// More than 30% control bytes is treated as binary
	return float64(nonPrintable)/float64(len(data)) <= 0.30
}
