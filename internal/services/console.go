package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gallows/hangman/internal/observability/logging"
	"github.com/gallows/hangman/internal/types"
)

// LiveConsole implements Console over a reader and a writer, normally stdin and stdout.
type LiveConsole struct {
	reader *bufio.Reader
	writer io.Writer
	logger logging.Logger
	ctx    context.Context
}

// NewLiveConsole creates a console. Nil streams default to os.Stdin and os.Stdout.
func NewLiveConsole(ctx context.Context, r io.Reader, w io.Writer, logger logging.Logger) *LiveConsole {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &LiveConsole{
		reader: bufio.NewReader(r),
		writer: w,
		logger: logger,
		ctx:    ctx,
	}
}

// ReadLine reads the next line without its line terminator. Other whitespace is kept.
// A final line without a terminator is returned; an exhausted stream returns io.EOF.
func (c *LiveConsole) ReadLine() (string, error) {
	text, err := c.reader.ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		c.logger.Debug(c.ctx, "Console read failed", "error", err)
		return "", err
	}
	line := strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
	c.logger.Debug(c.ctx, "Console line read", "length", len(line))
	return line, nil
}

// Println writes message and a newline. Write errors are logged, not returned.
func (c *LiveConsole) Println(message string) types.Unit {
	if _, err := fmt.Fprintln(c.writer, message); err != nil {
		c.logger.Warn(c.ctx, "Console write failed", "error", err)
	}
	return types.UnitValue
}
