package parley

import (
	"io"
	"log/slog"

	"github.com/aretw0/parley/internal/runtime"
	"github.com/aretw0/parley/pkg/domain"
)

// ContentRenderer transforms prompt text before display, letting a host
// plug in markdown-to-ANSI rendering without coupling the core to a TUI
// library. A rendering failure falls back to the raw text.
type ContentRenderer func(string) (string, error)

// Session is the high-level entry point for the Parley library. It wraps
// the internal runtime engine and provides the prompt API for consumers.
//
// A Session is single-threaded: it owns its stream pair exclusively while a
// prompt is active, and at most one blocking read is pending at a time.
// Hosts that need concurrent prompts must serialize them externally.
type Session struct {
	cfg      *domain.Config
	input    io.Reader
	output   io.Writer
	logger   *slog.Logger
	renderer ContentRenderer

	engine *runtime.Engine
}

// Option defines a functional option for configuring a Session.
type Option func(*Session)

// WithInput sets the line-oriented input stream. Defaults to os.Stdin.
func WithInput(r io.Reader) Option {
	return func(s *Session) {
		s.input = r
	}
}

// WithOutput sets the output stream. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		s.output = w
	}
}

// WithLogger injects a structured logger for debug-level prompt events.
// Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithConfig replaces the default prompt configuration (exit words, wrap
// widths, farewell text).
func WithConfig(cfg *domain.Config) Option {
	return func(s *Session) {
		s.cfg = cfg
	}
}

// WithRenderer sets a ContentRenderer applied to prompt text.
func WithRenderer(r ContentRenderer) Option {
	return func(s *Session) {
		s.renderer = r
	}
}

// New creates a Session bound to Stdin/Stdout unless options say otherwise.
func New(opts ...Option) *Session {
	s := &Session{
		cfg: domain.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}

	var renderer runtime.ContentRenderer
	if s.renderer != nil {
		renderer = runtime.ContentRenderer(s.renderer)
	}
	s.engine = runtime.NewEngine(s.cfg, s.input, s.output, s.logger, renderer)
	return s
}

// Choose presents an enumerated choice and returns the matched key. It
// loops until the raw input line equals one of the option keys exactly, or
// an exit word ends the session. An empty OptionSet is a configuration
// error returned before anything is read.
func (s *Session) Choose(prompt string, options *domain.OptionSet) (string, error) {
	return s.engine.Choose(prompt, options, false)
}

// ChooseDescription behaves like Choose but returns the description mapped
// to the matched key instead of the key itself.
func (s *Session) ChooseDescription(prompt string, options *domain.OptionSet) (string, error) {
	return s.engine.Choose(prompt, options, true)
}

// YesNo asks a yes/no question and returns "y" or "n".
func (s *Session) YesNo(prompt string) (string, error) {
	return s.Choose(prompt, domain.NewOptionSet().Add("y", "yes").Add("n", "no"))
}

// TrueFalse asks a true/false question and returns the boolean.
func (s *Session) TrueFalse(prompt string) (bool, error) {
	key, err := s.Choose(prompt, domain.NewOptionSet().Add("t", "True").Add("f", "False"))
	if err != nil {
		return false, err
	}
	return key == "t", nil
}

// Number prompts for a number with no bound checking. The coercion rule
// decides int versus float from the raw text; kind applies a final
// representation cast (domain.AsEntered keeps the coerced tag).
func (s *Session) Number(prompt string, kind domain.OutputKind) (domain.Number, error) {
	return s.engine.Number(prompt, kind)
}

// NumberInRange prompts for a number inside an inclusive range. Reversed
// bounds are swapped silently; a normalized range with min == max is a
// configuration error returned before anything is read.
func (s *Session) NumberInRange(prompt string, rng domain.Range, kind domain.OutputKind) (domain.Number, error) {
	return s.engine.NumberInRange(prompt, rng, kind)
}
