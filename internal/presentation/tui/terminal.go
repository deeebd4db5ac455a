package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether w is a real terminal. The CLI gates the
// banner and the markdown renderer on this, so piped output stays plain.
func IsInteractive(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
