// Package wrap provides greedy text wrapping with hanging indentation for
// terminal prompts.
package wrap

import "strings"

// Wrap re-flows text into lines strictly under width characters. The text is
// split on whitespace; tokens accumulate onto the current line while the
// line stays under width, and every continuation line is prefixed with
// indent spaces (the hanging indent). The final partial line is always
// flushed, so no token is ever dropped.
//
// Text that already fits within width minus the indent allowance is returned
// unchanged, which makes Wrap idempotent on short input.
func Wrap(text string, width, indent int) string {
	if len(text) <= width-indent {
		return text
	}

	var lines []string
	line := ""
	for _, term := range strings.Fields(text) {
		if len(line)+len(term) < width {
			line += term + " "
			continue
		}
		lines = append(lines, strings.TrimRight(line, " "))
		line = term + " "
	}
	lines = append(lines, strings.TrimRight(line, " "))

	joined := strings.Join(lines, "\n"+strings.Repeat(" ", indent))
	// A token longer than the width flushes an empty first line; strip the
	// leading break artifact it leaves behind.
	return strings.TrimLeft(joined, "\n ")
}
