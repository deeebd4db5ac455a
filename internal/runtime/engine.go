// Package runtime implements the prompt validation loops.
//
// The Engine owns the line-oriented stream pair for the duration of a
// prompt: it writes the wrapped prompt text plus any option block or range
// hint, blocks for exactly one line of input, validates it, and either
// returns a typed value, reprompts, or signals session exit. Loops are
// unbounded; only a valid answer, an exit word, or a stream failure ends
// one.
package runtime

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/parley/pkg/domain"
)

// Rejection messages. Validation failures are recovered locally: print,
// reprompt, never surfaced past the loop.
const (
	msgNotAnOption = "That wasn't one of the options."
	msgPickNumber  = "Please pick a number."
)

// ContentRenderer transforms prompt text before display (e.g. markdown to
// ANSI). A rendering failure falls back to the raw text.
type ContentRenderer func(string) (string, error)

// Engine runs the validation loops over an injected stream pair. It is
// single-threaded and fully synchronous; at most one blocking read is
// pending at any time.
type Engine struct {
	cfg      *domain.Config
	reader   *bufio.Reader
	writer   io.Writer
	logger   *slog.Logger
	renderer ContentRenderer
}

// NewEngine creates an Engine. Nil reader/writer default to Stdin/Stdout,
// a nil config to domain.DefaultConfig, and a nil logger to a no-op.
func NewEngine(cfg *domain.Config, r io.Reader, w io.Writer, logger *slog.Logger, renderer ContentRenderer) *Engine {
	if cfg == nil {
		cfg = domain.DefaultConfig()
	}
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		cfg:      cfg,
		reader:   bufio.NewReader(r),
		writer:   w,
		logger:   logger,
		renderer: renderer,
	}
}

// readLine blocks for one line. Only the trailing line delimiter is
// stripped; validation compares the rest verbatim (no trimming, no case
// folding). A final unterminated line before EOF still counts as a line.
func (e *Engine) readLine() (string, error) {
	text, err := e.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || text == "" {
			e.logger.Error("input stream failure", "error", err)
			return "", fmt.Errorf("input error: %w", err)
		}
	}
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	return text, nil
}

// farewell prints the goodbye line and returns the exit sentinel. Callers
// return the error unmodified so it reaches the top of the session.
func (e *Engine) farewell() error {
	e.logger.Debug("exit word received")
	fmt.Fprintln(e.writer, e.cfg.Farewell)
	return domain.ErrExitRequested
}

// display writes prompt text, through the renderer when one is configured.
func (e *Engine) display(text string) {
	if e.renderer != nil {
		if rendered, err := e.renderer(text); err == nil {
			fmt.Fprintln(e.writer, strings.TrimRight(rendered, "\n"))
			return
		}
	}
	fmt.Fprintln(e.writer, text)
}
