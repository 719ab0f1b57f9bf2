package joke

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mistweaverco/jokester/internal/lib/jokeapi"
)

const (
	Placeholder = "Loading..."
	FailureText = "Failed to fetch joke. Please try again."
	Separator   = " - "

	// LogMessage prefixes the diagnostic emitted for a failed fetch.
	LogMessage = "Error fetching joke"
)

// Fetcher retrieves one joke from the joke API.
type Fetcher interface {
	Fetch(ctx context.Context) (jokeapi.JokeResponse, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) (jokeapi.JokeResponse, error)

func (f FetcherFunc) Fetch(ctx context.Context) (jokeapi.JokeResponse, error) {
	return f(ctx)
}

func Format(j jokeapi.JokeResponse) string {
	return j.Setup + Separator + j.Punchline
}

// FetchAndDisplay performs one fetch and returns the text to display.
// Failures never propagate: they become FailureText and a single error record.
func FetchAndDisplay(ctx context.Context, f Fetcher, logger *slog.Logger) string {
	j, err := f.Fetch(ctx)
	if err != nil {
		if logger != nil {
			logger.Error(LogMessage, "error", err)
		}
		return FailureText
	}
	return Format(j)
}

// Display holds the text shown to the user. The zero value is empty.
type Display struct {
	mu   sync.Mutex
	text string
}

func (d *Display) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

// View returns the text, or Placeholder while it is empty.
func (d *Display) View() string {
	return Render(d.Text())
}

// Set replaces the text wholesale.
func (d *Display) Set(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.text = text
}

// Refresh runs FetchAndDisplay and stores the outcome.
// Overlapping calls are not coordinated; whichever completes last wins.
func (d *Display) Refresh(ctx context.Context, f Fetcher, logger *slog.Logger) {
	d.Set(FetchAndDisplay(ctx, f, logger))
}

func Render(text string) string {
	if text == "" {
		return Placeholder
	}
	return text
}
