// Package notebooks implements the notebook picker used before a study
// or quiz session.
package notebooks

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"zenstudy/internal/app"
	"zenstudy/internal/quiz"
	"zenstudy/internal/quizgen"
	"zenstudy/internal/router"
	"zenstudy/internal/screen"
	"zenstudy/internal/screens/quizscreen"
	"zenstudy/internal/screens/study"
	"zenstudy/internal/ui/components"
	"zenstudy/internal/ui/layout"
)

// Mode selects what picking a notebook leads to.
type Mode int

const (
	ModeStudy Mode = iota
	ModeQuiz
)

// PickerScreen lists notebooks and pushes the chosen session screen.
type PickerScreen struct {
	mode Mode
	menu components.Menu
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates a picker for the given mode. Quiz mode adds an extra
// entry covering every notebook at once.
func New(state *app.State, mode Mode, explainer *quizgen.Explainer, generator *quizgen.Generator, analyzer *quizgen.Analyzer) *PickerScreen {
	var items []components.MenuItem

	for _, nb := range state.Notebooks {
		nb := nb
		items = append(items, components.MenuItem{
			Label:    nb.Name,
			Disabled: len(nb.Flashcards) == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					if mode == ModeStudy {
						return router.PushScreenMsg{Screen: study.New(state, explainer, nb.ID)}
					}
					return router.PushScreenMsg{
						Screen: quizscreen.New(state, generator, analyzer, nb.ID, nb.Flashcards),
					}
				}
			},
		})
	}

	if mode == ModeQuiz {
		items = append(items, components.MenuItem{
			Label:    "Todos os cadernos",
			Disabled: len(state.AllFlashcards()) == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quizscreen.New(state, generator, analyzer, quiz.SubjectGlobal, state.AllFlashcards()),
					}
				}
			},
		})
	}

	return &PickerScreen{mode: mode, menu: components.NewMenu(items)}
}

func (s *PickerScreen) Init() tea.Cmd {
	return nil
}

func (s *PickerScreen) Title() string {
	if s.mode == ModeQuiz {
		return "Simulado"
	}
	return "Estudar"
}

func (s *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Escolher"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (s *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *PickerScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(s.menu.View())
}
