package jokester

import (
	"fmt"
	"io"

	"github.com/charmbracelet/huh/spinner"
	"github.com/mistweaverco/jokester/internal/joke"
	applog "github.com/mistweaverco/jokester/internal/lib/log"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print one random joke and exit",
	Long: `Fetch a single random joke and print it without starting the TUI.

The output format follows --output:
  rich   - rendered markdown (default)
  plain  - plain text, no colors
  json   - a JSON object with the display text

A failed fetch prints the failure message and still exits with status 0.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags, err := resolveFlags()
		if err != nil {
			return err
		}

		fetcher := newFetcherFn(flags)
		logger := applog.NewLogger(cmd.ErrOrStderr())

		var display joke.Display
		action := func() {
			display.Refresh(cmd.Context(), fetcher, logger)
		}
		if err := runWithSpinnerFn("Fetching a joke...", action); err != nil {
			return err
		}

		return printJoke(cmd.OutOrStdout(), display.View())
	},
}

var richTitle = iconJoke + " Random Joke"

type jokeOutput struct {
	Text string `json:"text"`
}

func printJoke(w io.Writer, text string) error {
	switch {
	case ShouldUseJSONOutput():
		return PrintJSON(w, jokeOutput{Text: text})
	case ShouldUsePlainOutput():
		_, err := fmt.Fprintln(w, text)
		return err
	case !shouldUseColors():
		_, err := fmt.Fprintf(w, "%s\n\n%s\n", richTitle, text)
		return err
	default:
		renderMarkdown(w, fmt.Sprintf("# %s\n\n%s\n", richTitle, escapeMarkdown(text)))
		return nil
	}
}

// runWithSpinner shows a spinner while action runs, only when stdout is a terminal.
func runWithSpinner(title string, action func()) error {
	if !isTerminalFn() || ShouldUseJSONOutput() {
		action()
		return nil
	}
	return spinner.New().Title(title).Action(action).Run()
}

var runWithSpinnerFn = runWithSpinner
