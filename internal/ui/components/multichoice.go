package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"zenstudy/internal/ui/theme"
)

// MultiChoice is a lettered-option selector for quiz questions. The
// chosen key can be changed until the session is finished; Reveal
// switches the component into review coloring.
type MultiChoice struct {
	Prompt     string
	Keys       []string
	Options    map[string]string
	CorrectKey string

	Cursor int
	Chosen string
	Reveal bool
}

// NewMultiChoice creates a selector over the given option keys.
func NewMultiChoice(prompt string, keys []string, options map[string]string, correctKey string) MultiChoice {
	return MultiChoice{
		Prompt:     prompt,
		Keys:       keys,
		Options:    options,
		CorrectKey: correctKey,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Direct letter keys
// choose the matching option.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Reveal {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Keys)-1 {
			m.Cursor++
		}
	case "enter", " ":
		m.Chosen = m.Keys[m.Cursor]
	default:
		for i, k := range m.Keys {
			if key == k {
				m.Cursor = i
				m.Chosen = k
			}
		}
	}

	return m, nil
}

// View renders the prompt and options.
func (m MultiChoice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Prompt) + "\n\n"

	for i, key := range m.Keys {
		prefix := "  "
		if i == m.Cursor && !m.Reveal {
			prefix = "▸ "
		}
		marker := " "
		if key == m.Chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, strings.ToUpper(key), m.Options[key])

		switch {
		case m.Reveal && key == m.CorrectKey:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case m.Reveal && key == m.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case m.Reveal:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case key == m.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case i == m.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// IsCorrect reports whether the chosen key matches the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Chosen != "" && m.Chosen == m.CorrectKey
}
