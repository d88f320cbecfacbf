package main

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Report writes a diagnostic block to w. The Error: headers are highlighted
// when the output is a terminal.
type Report func(w io.Writer, diagnostic string)

const errorHeader = "Error:"

func (Module) Report(
	output Output,
) Report {
	colored := false
	if f, ok := output.(*os.File); ok {
		colored = term.IsTerminal(int(f.Fd()))
	}
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9"))

	return func(w io.Writer, diagnostic string) {
		if colored {
			lines := strings.Split(diagnostic, "\n")
			for i, line := range lines {
				if rest, ok := strings.CutPrefix(line, errorHeader); ok {
					lines[i] = style.Render(errorHeader) + rest
				}
			}
			diagnostic = strings.Join(lines, "\n")
		}
		if !strings.HasSuffix(diagnostic, "\n") {
			diagnostic += "\n"
		}
		_, _ = io.WriteString(w, diagnostic)
	}
}
