package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mistweaverco/jokester/internal/config"
	"github.com/mistweaverco/jokester/internal/joke"
	"github.com/mistweaverco/jokester/internal/modal"
	"github.com/muesli/termenv"
)

const (
	title       = "😂 Random Joke 🎉"
	buttonLabel = "😂 Get New Joke 😂"
	footer      = "Created by Asadullah Shafique"
)

var (
	// General styles
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	accent    = lipgloss.Color("#c33764")

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1, 4)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	jokeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#444444", Dark: "#EEEEEE"}).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#ff9a9e")).
			Padding(1, 2).
			MarginBottom(1)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent).
			Padding(0, 3)

	footerStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)
)

const maxJokeWidth = 60

type keyMap struct {
	NewJoke key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewJoke, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NewJoke}, {k.Help, k.Quit}}
}

var keys = keyMap{
	NewJoke: key.NewBinding(
		key.WithKeys("enter", " ", "n"),
		key.WithHelp("enter/space/n", "get new joke"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

const keyHelpText = `enter, space, n   get a new joke
?                 show this help
q, ctrl+c         quit`

// jokeMsg carries the outcome of one completed fetch-and-display action.
type jokeMsg struct {
	text string
}

type model struct {
	ctx     context.Context
	fetcher joke.Fetcher
	logger  *slog.Logger

	// display is shared by every copy of the model and only set from Update.
	display *joke.Display

	keys      keyMap
	help      help.Model
	modal     modal.Modal
	showModal bool

	width, height int
}

// Options configures the joke widget.
type Options struct {
	Fetcher joke.Fetcher
	Logger  *slog.Logger
	Color   config.ColorMode
}

func initialModel(ctx context.Context, opts Options) model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return model{
		ctx:     ctx,
		fetcher: opts.Fetcher,
		logger:  logger,
		display: &joke.Display{},
		keys:    keys,
		help:    help.New(),
	}
}

// Init fetches the first joke. Bubble Tea calls it once per program.
func (m model) Init() tea.Cmd {
	return m.fetchJoke()
}

// fetchJoke runs one fetch-and-display action off the event loop.
// In-flight commands are never cancelled or deduplicated.
func (m model) fetchJoke() tea.Cmd {
	ctx, fetcher, logger := m.ctx, m.fetcher, m.logger
	return func() tea.Msg {
		return jokeMsg{text: joke.FetchAndDisplay(ctx, fetcher, logger)}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.modal = m.modal.SetSize(msg.Width, msg.Height)
		return m, nil

	case jokeMsg:
		// Arrival order is completion order, so the last completed fetch wins.
		m.display.Set(msg.text)
		return m, nil

	case tea.KeyMsg:
		if m.showModal {
			m.modal, cmd = m.modal.Update(msg)
			if m.modal.Closed() {
				m.showModal = false
			}
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.modal = modal.New(keyHelpText, "info").SetSize(m.width, m.height)
			m.showModal = true
			return m, nil
		case key.Matches(msg, m.keys.NewJoke):
			return m, m.fetchJoke()
		}
	}

	return m, nil
}

func (m model) View() string {
	if m.showModal {
		return m.modal.View()
	}

	width := maxJokeWidth
	if m.width > 0 {
		width = max(min(width, m.width-12), 10)
	}

	card := cardStyle.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render(title),
		jokeStyle.Width(width).Render(m.display.View()),
		buttonStyle.Render(buttonLabel),
	))

	content := lipgloss.JoinVertical(lipgloss.Center, card, footerStyle.Render(footer), m.help.View(m.keys))
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// setColorProfile applies the configured color mode to lipgloss.
func setColorProfile(mode config.ColorMode) {
	switch mode {
	case config.ColorModeNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case config.ColorModeAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// Show runs the joke widget until the user quits or ctx is done.
func Show(ctx context.Context, opts Options) error {
	setColorProfile(opts.Color)
	p := tea.NewProgram(initialModel(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
