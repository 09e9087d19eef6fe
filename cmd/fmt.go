package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown renders markdown for the terminal, falling back to the
// raw text when the renderer is unavailable.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// printMarkdown renders markdown to stdout.
func printMarkdown(md string) {
	fmt.Print(renderMarkdown(md))
}
