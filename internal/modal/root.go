package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Define key mappings
type keyMap struct {
	Quit  key.Binding
	Close key.Binding
}

var keys = keyMap{
	Quit:  key.NewBinding(key.WithKeys("ctrl+c")),
	Close: key.NewBinding(key.WithKeys("esc", "enter", "?")),
}

var borderColors = map[string]lipgloss.TerminalColor{
	"info":    lipgloss.Color("205"),
	"error":   lipgloss.Color("#ff0000"),
	"success": lipgloss.Color("#00ff00"),
	"warning": lipgloss.Color("#ffaa00"),
}

// Modal is an overlay box closed with esc or enter.
type Modal struct {
	Message string
	Type    string // info, error, success or warning
	width   int
	height  int
	keys    keyMap
}

func New(msg string, typ string) Modal {
	return Modal{
		Message: msg,
		Type:    typ,
		keys:    keys,
	}
}

// Closed reports whether the modal has been dismissed.
func (m Modal) Closed() bool {
	return m.Message == ""
}

func (m Modal) SetSize(width, height int) Modal {
	m.width = width
	m.height = height
	return m
}

func (m Modal) Update(msg tea.Msg) (Modal, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Close) {
			return Modal{}, nil // Returning an empty modal closes it.
		}
		return m, nil
	}

	return m, nil
}

func (m Modal) View() string {
	maxLineWidth := 0
	lines := strings.Split(m.Message, "\n")
	for _, line := range lines {
		maxLineWidth = max(maxLineWidth, lipgloss.Width(line))
	}

	modalWidth := maxLineWidth + 6 // padding and border
	if m.width > 0 && modalWidth > m.width-4 {
		modalWidth = max(m.width-4, 10)
	}

	borderColor, ok := borderColors[m.Type]
	if !ok {
		borderColor = borderColors["info"]
	}

	content := lipgloss.NewStyle().Align(lipgloss.Left).Render(m.Message)
	closeButton := lipgloss.NewStyle().Padding(0, 1).Render("[Close]")

	modalBox := lipgloss.NewStyle().
		Width(modalWidth).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Center, content, "", closeButton))

	if m.width == 0 || m.height == 0 {
		return modalBox
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modalBox)
}
