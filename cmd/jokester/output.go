package jokester

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/term"
	"github.com/mistweaverco/jokester/internal/config"
)

// GetOutputMode returns the current output mode from config
func GetOutputMode() config.OutputMode {
	if mode := getColorConfig().Output; mode != "" {
		return mode
	}
	return config.OutputModeRich
}

// ShouldUsePlainOutput returns true if output should be plain (no colors, no icons)
func ShouldUsePlainOutput() bool {
	return GetOutputMode() == config.OutputModePlain
}

// ShouldUseJSONOutput returns true if output should be JSON
func ShouldUseJSONOutput() bool {
	return GetOutputMode() == config.OutputModeJSON
}

// PrintJSON outputs data as JSON
func PrintJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// renderMarkdown renders markdown content using glamour, falling back to
// the raw markdown when rendering is not possible.
func renderMarkdown(w io.Writer, markdown string) {
	width := 80
	if tw, _, err := term.GetSize(os.Stdout.Fd()); err == nil && tw > 0 {
		width = tw
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		rendered, renderErr := glamour.Render(markdown, "dark")
		if renderErr != nil {
			fmt.Fprint(w, markdown)
			return
		}
		fmt.Fprint(w, rendered)
		return
	}

	rendered, err := r.Render(markdown)
	if err != nil {
		fmt.Fprint(w, markdown)
		return
	}
	fmt.Fprint(w, rendered)
}

// escapeMarkdown keeps joke text from being interpreted as markup
func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`,
		"[", `\[`, "]", `\]`, "<", `\<`, ">", `\>`,
	)
	return replacer.Replace(s)
}
