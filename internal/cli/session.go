// Package cli wires the cobra commands to prompt sessions.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/parley"
	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/internal/presentation/tui"
	"github.com/aretw0/parley/internal/quiz"
	"github.com/aretw0/parley/pkg/domain"
)

// RunOptions carries the global CLI flags.
type RunOptions struct {
	Debug bool
	Plain bool
}

// newSession builds a Session from the CLI flags. The markdown renderer is
// only attached when stdout is a real terminal and --plain was not given.
func newSession(opts RunOptions) *parley.Session {
	logger := logging.NewNop()
	if opts.Debug {
		logger = logging.New(slog.LevelDebug)
	}

	sessionOpts := []parley.Option{parley.WithLogger(logger)}
	if !opts.Plain && tui.IsInteractive(os.Stdout) {
		sessionOpts = append(sessionOpts, parley.WithRenderer(tui.NewRenderer()))
	}
	return parley.New(sessionOpts...)
}

// RunAsk runs a single choice prompt from --option key=value pairs.
func RunAsk(opts RunOptions, prompt string, pairs []string, wantDescription bool) error {
	options := domain.NewOptionSet()
	for _, pair := range pairs {
		key, desc, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return fmt.Errorf("invalid option %q: expected key=description", pair)
		}
		options.Add(key, desc)
	}

	session := newSession(opts)
	var (
		answer string
		err    error
	)
	if wantDescription {
		answer, err = session.ChooseDescription(prompt, options)
	} else {
		answer, err = session.Choose(prompt, options)
	}
	if err != nil {
		return err
	}
	fmt.Println(answer)
	return nil
}

// RunNumber runs a numeric prompt, range-restricted when both bounds are
// given.
func RunNumber(opts RunOptions, prompt string, min, max *float64, kindName string) error {
	kind, err := domain.ParseOutputKind(kindName)
	if err != nil {
		return err
	}
	if (min == nil) != (max == nil) {
		return fmt.Errorf("--min and --max must be given together")
	}

	session := newSession(opts)
	var n domain.Number
	if min != nil {
		n, err = session.NumberInRange(prompt, domain.NewRange(*min, *max), kind)
	} else {
		n, err = session.Number(prompt, kind)
	}
	if err != nil {
		return err
	}
	fmt.Println(n.String())
	return nil
}

// RunQuiz loads a YAML script and walks the user through it.
func RunQuiz(opts RunOptions, path string) error {
	script, err := quiz.Load(path)
	if err != nil {
		return err
	}

	if !opts.Plain && tui.IsInteractive(os.Stdout) {
		tui.PrintBanner(os.Stdout, parley.Version)
	}
	return quiz.Run(script, newSession(opts), os.Stdout)
}
