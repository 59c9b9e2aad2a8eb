// Package prompt asks the user for the name of the file to create.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// ErrCancelled is returned when the user dismisses the prompt.
var ErrCancelled = errors.New("prompt cancelled by user")

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#b4befe")).Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
)

// Model is a single-line input that finishes on enter.
type Model struct {
	title     string
	input     textinput.Model
	errMsg    string
	done      bool
	cancelled bool
}

// NewModel creates the prompt model. initial pre-fills the input.
func NewModel(title, initial string) *Model {
	input := textinput.New()
	input.Placeholder = "name.ext"
	input.Prompt = "> "
	input.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("#b4befe")),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086")),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color("#cba6f7"),
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	input.SetWidth(50)
	input.SetValue(initial)

	return &Model{title: title, input: input}
}

// Value returns the trimmed input.
func (m *Model) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Init focuses the input.
func (m *Model) Init() tea.Cmd {
	return m.input.Focus()
}

// Update handles key presses.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if m.Value() == "" {
				m.errMsg = "file name must not be empty"
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		}
		m.errMsg = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt inline.
func (m *Model) View() tea.View {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("✗ " + m.errMsg))
		b.WriteString("\n")
	}
	if !m.done && !m.cancelled {
		b.WriteString(hintStyle.Render("enter confirm • esc cancel"))
		b.WriteString("\n")
	}

	var view tea.View
	view.Content = lipgloss.NewLayer(b.String())
	return view
}

// FileName runs the prompt and returns the entered name.
func FileName(title string) (string, error) {
	p := tea.NewProgram(NewModel(title, ""))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	m, ok := final.(*Model)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}
	if m.cancelled || !m.done {
		return "", ErrCancelled
	}
	return m.Value(), nil
}
