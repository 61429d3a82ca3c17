// Package home implements the main menu with the daily goal rings and
// streak summary.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"zenstudy/internal/app"
	"zenstudy/internal/quizgen"
	"zenstudy/internal/router"
	"zenstudy/internal/screen"
	"zenstudy/internal/screens/history"
	"zenstudy/internal/screens/notebooks"
	"zenstudy/internal/ui/components"
	"zenstudy/internal/ui/layout"
	"zenstudy/internal/ui/theme"
)

// HomeScreen is the main screen of the application.
type HomeScreen struct {
	state       *app.State
	menu        components.Menu
	editingGoal bool
	goalInput   components.TextInput
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
)

// New creates a new HomeScreen.
func New(state *app.State, generator *quizgen.Generator, explainer *quizgen.Explainer, analyzer *quizgen.Analyzer) *HomeScreen {
	items := []components.MenuItem{
		{Label: "ESTUDAR FLASHCARDS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: notebooks.New(state, notebooks.ModeStudy, explainer, generator, analyzer),
				}
			}
		}},
		{Label: "SIMULADO COM IA", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: notebooks.New(state, notebooks.ModeQuiz, explainer, generator, analyzer),
				}
			}
		}},
		{Label: "HISTÓRICO", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(state)}
			}
		}},
		{Label: "SAIR", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{state: state, menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.editingGoal {
		return h.updateGoalEditor(msg)
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "q":
			return h, tea.Quit
		case "m":
			h.editingGoal = true
			h.goalInput = components.NewTextInput(
				fmt.Sprintf("%d", h.state.Tracker.Stats().DailyCardGoal), true, 4)
			return h, h.goalInput.Init()
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// updateGoalEditor handles keys while the daily card goal is being edited.
func (h *HomeScreen) updateGoalEditor(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			h.editingGoal = false
			return h, nil
		case "enter":
			goal, err := h.goalInput.NumericValue()
			if err != nil || goal <= 0 {
				h.goalInput.Submit(false)
				return h, nil
			}
			h.state.Tracker.Stats().DailyCardGoal = goal
			h.state.SaveStats(context.Background())
			h.editingGoal = false
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.goalInput, cmd = h.goalInput.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	us := h.state.Tracker.Stats()
	cw := components.CardWidth(width)

	var sections []string

	sections = append(sections, theme.Title.Width(cw).Render("ZenStudy"))
	sections = append(sections, theme.Subtitle.Width(cw).Render(
		fmt.Sprintf("★ Sequência: %d dia(s)", us.StreakDays)))

	goals := strings.Join([]string{
		components.NewProgressBar("Cartões ", float64(us.CardProgressPercent())/100, true, cw-4).View(),
		components.NewProgressBar("Questões", float64(us.QuestionProgressPercent())/100, true, cw-4).View(),
	}, "\n")
	sections = append(sections, components.PanelCard(goals, cw))

	if h.editingGoal {
		editor := strings.Join([]string{
			theme.Subtitle.Render("Meta diária de cartões:"),
			h.goalInput.View(),
		}, "\n")
		sections = append(sections, components.PanelCard(editor, cw))
	} else {
		sections = append(sections, h.menu.View())
	}

	return lipgloss.NewStyle().
		Width(width).Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(sections, "\n\n"))
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.editingGoal {
		return []layout.KeyHint{
			{Key: "enter", Description: "salvar"},
			{Key: "esc", Description: "cancelar"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "navegar"},
		{Key: "enter", Description: "selecionar"},
		{Key: "m", Description: "meta diária"},
		{Key: "q", Description: "sair"},
	}
}

func (h *HomeScreen) Title() string {
	return "Início"
}
