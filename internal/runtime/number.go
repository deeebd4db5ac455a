package runtime

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/wrap"
)

// hintPrinter formats range bounds with grouped thousands separators,
// e.g. "999,999,999". Fixed locale; this is display formatting, not
// localization.
var hintPrinter = message.NewPrinter(language.English)

// Number runs the unrestricted numeric loop: any line that coerces to a
// number is accepted, then cast to the requested output kind.
func (e *Engine) Number(prompt string, kind domain.OutputKind) (domain.Number, error) {
	e.display(wrap.Wrap(prompt, e.cfg.WrapWidth, e.cfg.PromptIndent))

	n, err := e.acceptNumber()
	if err != nil {
		return domain.Number{}, err
	}
	return n.As(kind), nil
}

// NumberInRange runs the range-restricted numeric loop. The range is
// normalized first (swapping reversed bounds is cosmetic); a normalized
// range with min == max is a configuration error raised before any read.
// The range hint prints once per call, not once per invalid attempt.
func (e *Engine) NumberInRange(prompt string, rng domain.Range, kind domain.OutputKind) (domain.Number, error) {
	rng = rng.Normalize()
	if err := rng.Validate(); err != nil {
		return domain.Number{}, err
	}

	e.display(wrap.Wrap(prompt, e.cfg.WrapWidth, e.cfg.PromptIndent))
	fmt.Fprintf(e.writer, "(min = %s, max = %s)\n", formatBound(rng.Min), formatBound(rng.Max))

	for {
		n, err := e.acceptNumber()
		if err != nil {
			return domain.Number{}, err
		}
		if rng.Contains(n) {
			return n.As(kind), nil
		}
		e.logger.Debug("number out of range", "value", n.String(), "min", rng.Min, "max", rng.Max)
		fmt.Fprintf(e.writer, "Please pick a number between %s and %s.\n", formatBound(rng.Min), formatBound(rng.Max))
	}
}

// acceptNumber reads lines until one coerces to a number. Parse failures
// are retryable and stay local to this loop; exit words are checked before
// any parse attempt.
func (e *Engine) acceptNumber() (domain.Number, error) {
	for {
		line, err := e.readLine()
		if err != nil {
			return domain.Number{}, err
		}
		if e.cfg.IsExitWord(line) {
			return domain.Number{}, e.farewell()
		}

		n, err := domain.Coerce(line)
		if err != nil {
			e.logger.Debug("number rejected", "input", line)
			fmt.Fprintln(e.writer, msgPickNumber)
			continue
		}
		e.logger.Debug("number accepted", "value", n.String(), "kind", n.Kind.String())
		return n, nil
	}
}

// formatBound renders a range bound: integral values as grouped integers,
// fractional ones with their decimals intact.
func formatBound(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return hintPrinter.Sprintf("%d", int64(v))
	}
	return hintPrinter.Sprintf("%v", v)
}
