package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Parley ASCII banner with a warm gradient.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"  ____            _            ", "#fbbf24"},
		{" |  _ \\ __ _ _ __| | ___ _   _ ", "#fb923c"},
		{" | |_) / _` | '__| |/ _ \\ | | |", "#f87171"},
		{" |  __/ (_| | |  | |  __/ |_| |", "#e879f9"},
		{" |_|   \\__,_|_|  |_|\\___|\\__, |", "#c084fc"},
		{"                         |___/ ", "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintf(w, "  v%s\n\n", version)
}
