// Package history shows past quiz sessions and the derived performance
// analytics: hot topics, per-subject accuracy, and the personal best.
package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"zenstudy/internal/analytics"
	"zenstudy/internal/app"
	"zenstudy/internal/quiz"
	"zenstudy/internal/screen"
	"zenstudy/internal/ui/components"
	"zenstudy/internal/ui/layout"
	"zenstudy/internal/ui/theme"
)

const maxSessionsShown = 10

// HistoryScreen implements screen.Screen for the quiz history report.
type HistoryScreen struct {
	state    *app.State
	selected int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(state *app.State) *HistoryScreen {
	return &HistoryScreen{state: state}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "Histórico"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	history := s.history()
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < min(len(history), maxSessionsShown)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) history() []quiz.Result {
	return s.state.Tracker.Stats().QuizHistory
}

func (s *HistoryScreen) View(width, height int) string {
	history := s.history()
	if len(history) == 0 {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Nenhum simulado realizado ainda.")
	}

	cw := components.CardWidth(width)
	var sections []string

	best := analytics.BestAccuracy(history)
	sections = append(sections, theme.Title.Render(
		fmt.Sprintf("Melhor desempenho: %.0f%%", best*100)))

	sections = append(sections, components.PanelCard(s.renderSessions(history), cw))
	sections = append(sections, components.PanelCard(s.renderHotTopics(history), cw))
	sections = append(sections, components.PanelCard(s.renderSubjects(history), cw))

	return lipgloss.NewStyle().
		Width(width).Height(height).
		Align(lipgloss.Center, lipgloss.Top).
		Render(strings.Join(sections, "\n"))
}

func (s *HistoryScreen) renderSessions(history []quiz.Result) string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("Simulados recentes") + "\n")

	shown := history
	if len(shown) > maxSessionsShown {
		shown = shown[:maxSessionsShown]
	}
	for i, res := range shown {
		line := fmt.Sprintf("%s  %s  %d/%d (%.0f%%)",
			res.Timestamp.Format("02/01 15:04"),
			s.subjectName(res.SubjectID),
			res.CorrectAnswers, res.TotalQuestions, res.Accuracy()*100)
		if i == s.selected {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Body.Render("  "+line) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *HistoryScreen) renderHotTopics(history []quiz.Result) string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("Temas para revisar") + "\n")

	for _, topic := range analytics.HotTopics(history, analytics.DefaultHotTopicLimit) {
		style := theme.Body
		if topic.Accuracy < 0.5 {
			style = theme.Incorrect
		}
		b.WriteString(style.Render(fmt.Sprintf("  %-28s %3.0f%%  (%d/%d)",
			topic.Topic, topic.Accuracy*100, topic.Correct, topic.Total)) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *HistoryScreen) renderSubjects(history []quiz.Result) string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("Desempenho por caderno") + "\n")

	ids := make([]string, 0, len(s.state.Notebooks)+1)
	for _, nb := range s.state.Notebooks {
		ids = append(ids, nb.ID)
	}
	ids = append(ids, quiz.SubjectGlobal)

	for _, stat := range analytics.SubjectSummary(history, ids) {
		if stat.Sessions == 0 {
			continue
		}
		b.WriteString(theme.Body.Render(fmt.Sprintf("  %-28s %3.0f%%  (%d simulados)",
			s.subjectName(stat.SubjectID), stat.Accuracy*100, stat.Sessions)) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *HistoryScreen) subjectName(id string) string {
	if id == quiz.SubjectGlobal {
		return "Todos os cadernos"
	}
	if nb, ok := s.state.Notebook(id); ok {
		return nb.Name
	}
	return id
}
