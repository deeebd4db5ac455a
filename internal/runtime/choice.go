package runtime

import (
	"fmt"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/wrap"
)

// Choose runs the enumerated-choice validation loop. Each iteration prints
// the wrapped prompt and the full option block, blocks for one raw line,
// and compares it for exact equality against the option keys. A match
// returns the key (or its description when wantDescription is set); an exit
// word ends the session; anything else prints a rejection line and loops.
//
// An option key always wins over an exit word of the same spelling, so a
// caller can legitimately offer "exit" as a choice.
func (e *Engine) Choose(prompt string, options *domain.OptionSet, wantDescription bool) (string, error) {
	if options.Len() == 0 {
		return "", domain.NewConfigError("choice prompt needs at least one option")
	}

	// Wrapped once; the option list is fixed for the life of the call.
	wrapped := wrap.Wrap(prompt, e.cfg.WrapWidth, e.cfg.PromptIndent)
	block := FormatOptions(options, e.cfg)

	for {
		e.display(wrapped)
		fmt.Fprintln(e.writer, block)

		line, err := e.readLine()
		if err != nil {
			return "", err
		}

		if desc, ok := options.Get(line); ok {
			e.logger.Debug("choice accepted", "key", line)
			if wantDescription {
				return desc, nil
			}
			return line, nil
		}
		if e.cfg.IsExitWord(line) {
			return "", e.farewell()
		}

		e.logger.Debug("choice rejected", "input", line)
		fmt.Fprintln(e.writer, msgNotAnOption)
	}
}
