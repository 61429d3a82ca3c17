// Package quizscreen runs one AI-generated quiz: loading, question
// navigation, scoring, and the post-quiz report.
package quizscreen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"zenstudy/internal/app"
	"zenstudy/internal/notebook"
	"zenstudy/internal/quiz"
	"zenstudy/internal/quizgen"
	"zenstudy/internal/screen"
	"zenstudy/internal/ui/components"
	"zenstudy/internal/ui/layout"
	"zenstudy/internal/ui/theme"
)

type phase int

const (
	phaseLoading phase = iota
	phaseFailed
	phaseActive
	phaseDone
)

// questionsMsg delivers the generated quiz. QuizID ties the response to
// the screen instance that requested it; a stale result is dropped.
type questionsMsg struct {
	QuizID    string
	Questions []quiz.Question
	Err       error
}

// analysisMsg delivers the post-quiz feedback text.
type analysisMsg struct {
	QuizID string
	Text   string
}

// QuizScreen implements screen.Screen for a quiz session.
type QuizScreen struct {
	state     *app.State
	generator *quizgen.Generator
	analyzer  *quizgen.Analyzer
	subjectID string
	cards     []notebook.Flashcard

	quizID  string
	phase   phase
	errMsg  string
	session *quiz.Session
	choice  components.MultiChoice

	result    *quiz.Result
	analysis  string
	analyzing bool
	reviewIdx int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the given subject and flashcard corpus.
func New(state *app.State, generator *quizgen.Generator, analyzer *quizgen.Analyzer, subjectID string, cards []notebook.Flashcard) *QuizScreen {
	return &QuizScreen{
		state:     state,
		generator: generator,
		analyzer:  analyzer,
		subjectID: subjectID,
		cards:     cards,
		quizID:    uuid.NewString(),
		session:   quiz.NewSession(subjectID),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	id := s.quizID
	gen := s.generator
	cards := s.cards
	if len(cards) == 0 {
		return func() tea.Msg {
			return questionsMsg{QuizID: id, Err: quiz.ErrNoFlashcards}
		}
	}
	return func() tea.Msg {
		questions, err := gen.Generate(context.Background(), cards)
		return questionsMsg{QuizID: id, Questions: questions, Err: err}
	}
}

func (s *QuizScreen) Title() string {
	return "Simulado"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseActive:
		hints := []layout.KeyHint{
			{Key: "a-e", Description: "Responder"},
			{Key: "←→", Description: "Navegar"},
		}
		if s.session.AtLast() {
			if _, ok := s.session.Answer(s.session.Current()); ok {
				hints = append(hints, layout.KeyHint{Key: "F", Description: "Finalizar"})
			}
		}
		return hints
	case phaseDone:
		return []layout.KeyHint{
			{Key: "←→", Description: "Revisar questões"},
			{Key: "Esc", Description: "Voltar"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Voltar"}}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsMsg:
		if msg.QuizID != s.quizID || s.phase != phaseLoading {
			return s, nil
		}
		if msg.Err != nil {
			s.phase = phaseFailed
			if errors.Is(msg.Err, quiz.ErrNoFlashcards) {
				s.errMsg = "Adicione flashcards antes de gerar um simulado."
			} else {
				s.errMsg = "Falha na geração do simulado pela IA."
			}
			return s, nil
		}
		if err := s.session.Start(msg.Questions); err != nil {
			s.phase = phaseFailed
			s.errMsg = "Falha na geração do simulado pela IA."
			return s, nil
		}
		s.phase = phaseActive
		s.syncChoice()
		return s, nil

	case analysisMsg:
		if msg.QuizID != s.quizID {
			return s, nil
		}
		s.analyzing = false
		s.analysis = msg.Text
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseActive:
		return s.handleActiveKey(msg)
	case phaseDone:
		switch msg.String() {
		case "left", "h":
			if s.reviewIdx > 0 {
				s.reviewIdx--
			}
		case "right", "l":
			if s.reviewIdx < len(s.result.PerQuestion)-1 {
				s.reviewIdx++
			}
		}
	}
	return s, nil
}

func (s *QuizScreen) handleActiveKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		s.session.GoPrevious()
		s.syncChoice()
		return s, nil
	case "right", "l", "n":
		s.session.GoNext()
		s.syncChoice()
		return s, nil
	case "f":
		return s, s.finish()
	}

	before := s.choice.Chosen
	s.choice, _ = s.choice.Update(msg)
	if s.choice.Chosen != "" && s.choice.Chosen != before {
		s.session.SelectAnswer(s.session.Current(), s.choice.Chosen)
	}
	return s, nil
}

// syncChoice rebuilds the selector for the current question, restoring
// a previously chosen answer.
func (s *QuizScreen) syncChoice() {
	q, err := s.session.Question(s.session.Current())
	if err != nil {
		return
	}
	s.choice = components.NewMultiChoice(q.Prompt, quiz.OptionKeys, q.Options, q.CorrectKey)
	if key, ok := s.session.Answer(s.session.Current()); ok {
		s.choice.Chosen = key
		for i, k := range quiz.OptionKeys {
			if k == key {
				s.choice.Cursor = i
			}
		}
	}
}

// finish scores the session, persists it, and only then requests the
// AI analysis. A failed analysis never undoes the saved result.
func (s *QuizScreen) finish() tea.Cmd {
	res, err := s.session.Finish()
	if err != nil {
		return nil
	}

	s.state.Tracker.RecordQuizSession(*res, time.Now())
	s.state.SaveStats(context.Background())

	s.phase = phaseDone
	s.result = res
	s.analyzing = true

	id := s.quizID
	analyzer := s.analyzer
	answered := res.PerQuestion
	return func() tea.Msg {
		return analysisMsg{QuizID: id, Text: analyzer.Analyze(context.Background(), answered)}
	}
}

func (s *QuizScreen) View(width, height int) string {
	switch s.phase {
	case phaseLoading:
		return centered(width, height, theme.Hint.Render("Gerando simulado com IA..."))
	case phaseFailed:
		return centered(width, height,
			theme.Incorrect.Render(s.errMsg)+"\n\n"+theme.Hint.Render("Esc para voltar"))
	case phaseActive:
		return s.viewActive(width, height)
	default:
		return s.viewDone(width, height)
	}
}

func (s *QuizScreen) viewActive(width, height int) string {
	q, err := s.session.Question(s.session.Current())
	if err != nil {
		return ""
	}

	head := theme.Subtitle.Render(fmt.Sprintf("Questão %d / %d  ·  %s · %s",
		s.session.Current()+1, s.session.Len(), q.SourceLabel, q.Topic))

	body := s.choice.View()

	content := head + "\n\n" + body
	if s.session.AtLast() {
		_, answered := s.session.Answer(s.session.Current())
		finish := components.NewButton("FINALIZAR (f)", answered, nil)
		content += "\n\n" + finish.View()
	}
	return lipgloss.NewStyle().
		Width(width).Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(components.PanelCard(content, components.CardWidth(width)))
}

func (s *QuizScreen) viewDone(width, height int) string {
	var sections []string

	score := fmt.Sprintf("Acertos: %d / %d  (%.0f%%)",
		s.result.CorrectAnswers, s.result.TotalQuestions, s.result.Accuracy()*100)
	sections = append(sections, theme.Title.Render(score))

	pq := s.result.PerQuestion[s.reviewIdx]
	review := components.NewMultiChoice(pq.Question.Prompt, quiz.OptionKeys, pq.Question.Options, pq.Question.CorrectKey)
	review.Chosen = pq.UserAnswer
	review.Reveal = true

	head := theme.Subtitle.Render(fmt.Sprintf("Questão %d / %d · %s",
		s.reviewIdx+1, len(s.result.PerQuestion), pq.Question.Topic))
	body := head + "\n\n" + review.View() + "\n" + theme.Hint.Render(pq.Question.Explanation)
	sections = append(sections, components.PanelCard(body, components.CardWidth(width)))

	switch {
	case s.analyzing:
		sections = append(sections, theme.Hint.Render("Analisando sua performance..."))
	case s.analysis != "":
		sections = append(sections, components.PanelCard(s.analysis, components.CardWidth(width)))
	}

	return lipgloss.NewStyle().
		Width(width).Height(height).
		Align(lipgloss.Center, lipgloss.Top).
		Render(strings.Join(sections, "\n\n"))
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
