package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders prompt markdown using
// glamour, auto-detecting light/dark terminal backgrounds. Word wrapping is
// left to the prompt engine, so glamour's own wrapping is disabled.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		// Fall back to identity rendering rather than failing the session.
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
