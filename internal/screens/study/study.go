// Package study implements the flashcard review screen: flip through a
// notebook's cards, grade mastery, and ask the tutor to go deeper.
package study

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"zenstudy/internal/app"
	"zenstudy/internal/notebook"
	"zenstudy/internal/quizgen"
	"zenstudy/internal/screen"
	"zenstudy/internal/ui/components"
	"zenstudy/internal/ui/layout"
	"zenstudy/internal/ui/theme"
)

// deepenMsg carries the tutor explanation for one deepen request. Seq
// identifies the request so a stale response is never applied.
type deepenMsg struct {
	Seq  int
	Text string
}

// StudyScreen implements screen.Screen for flashcard review.
type StudyScreen struct {
	state      *app.State
	explainer  *quizgen.Explainer
	notebookID string
	cards      []notebook.Flashcard

	idx       int
	flipped   bool
	reviewed  map[int]bool
	deepening bool
	deepenSeq int
	deepenTxt string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a StudyScreen over one notebook's flashcards.
func New(state *app.State, explainer *quizgen.Explainer, notebookID string) *StudyScreen {
	var cards []notebook.Flashcard
	if nb, ok := state.Notebook(notebookID); ok {
		cards = nb.Flashcards
	}
	return &StudyScreen{
		state:      state,
		explainer:  explainer,
		notebookID: notebookID,
		cards:      cards,
		reviewed:   make(map[int]bool),
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return nil
}

func (s *StudyScreen) Title() string {
	if nb, ok := s.state.Notebook(s.notebookID); ok {
		return nb.Name
	}
	return "Estudo"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if !s.flipped {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Virar"},
			{Key: "←→", Description: "Navegar"},
			{Key: "Esc", Description: "Voltar"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Virar"},
		{Key: "1/2/3", Description: "Domínio"},
		{Key: "D", Description: "Aprofundar"},
		{Key: "←→", Description: "Navegar"},
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case deepenMsg:
		if msg.Seq != s.deepenSeq {
			return s, nil
		}
		s.deepening = false
		s.deepenTxt = msg.Text
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if len(s.cards) == 0 {
		return s, nil
	}

	switch msg.String() {
	case "enter", " ":
		s.flip()
	case "right", "l", "n":
		s.move(1)
	case "left", "h", "p":
		s.move(-1)
	case "1":
		s.grade(notebook.MasteryNew)
	case "2":
		s.grade(notebook.MasteryLearning)
	case "3":
		s.grade(notebook.MasteryMastered)
	case "d":
		if s.flipped && !s.deepening {
			return s, s.deepen()
		}
	}
	return s, nil
}

// flip turns the card. The first reveal of an answer counts as one
// review toward the daily goal.
func (s *StudyScreen) flip() {
	s.flipped = !s.flipped
	if s.flipped && !s.reviewed[s.idx] {
		s.reviewed[s.idx] = true
		s.state.Tracker.RecordCardReview(s.notebookID, time.Now())
		s.state.SaveStats(context.Background())
	}
}

func (s *StudyScreen) move(delta int) {
	next := s.idx + delta
	if next < 0 || next >= len(s.cards) {
		return
	}
	s.idx = next
	s.flipped = false
	s.deepenTxt = ""
	s.deepening = false
	s.deepenSeq++
}

// grade updates the current card's mastery level and persists the
// notebook collection.
func (s *StudyScreen) grade(level notebook.MasteryLevel) {
	if !s.flipped {
		return
	}
	card := s.cards[s.idx]
	nb, ok := s.state.Notebook(s.notebookID)
	if !ok {
		return
	}
	if stored, ok := nb.Card(card.ID); ok {
		stored.Mastery = level
		s.cards[s.idx].Mastery = level
		s.state.SaveNotebooks(context.Background())
	}
}

// deepen requests a tutor explanation for the current card.
func (s *StudyScreen) deepen() tea.Cmd {
	s.deepening = true
	s.deepenSeq++
	seq := s.deepenSeq
	card := s.cards[s.idx]
	explainer := s.explainer
	return func() tea.Msg {
		return deepenMsg{Seq: seq, Text: explainer.Deepen(context.Background(), card)}
	}
}

func (s *StudyScreen) View(width, height int) string {
	if len(s.cards) == 0 {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Este caderno ainda não tem flashcards.")
	}

	card := s.cards[s.idx]

	face := notebook.PlainText(card.Question)
	if s.flipped {
		face = notebook.PlainText(card.Answer)
	}

	counter := theme.Subtitle.Render(
		fmt.Sprintf("%d / %d  ·  %s", s.idx+1, len(s.cards), masteryLabel(card.Mastery)))

	var sections []string
	sections = append(sections, counter)

	cardHeight := height - lipgloss.Height(counter) - 2
	panel := s.deepenPanel(width)
	if panel != "" {
		cardHeight -= lipgloss.Height(panel) + 1
	}
	if cardHeight < 5 {
		cardHeight = 5
	}
	sections = append(sections, components.FlashcardFace(face, s.flipped, width, cardHeight))

	if panel != "" {
		sections = append(sections, panel)
	}

	return strings.Join(sections, "\n")
}

func (s *StudyScreen) deepenPanel(width int) string {
	switch {
	case s.deepening:
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Render(theme.Hint.Render("Consultando o tutor..."))
	case s.deepenTxt != "":
		panel := components.PanelCard(s.deepenTxt, components.CardWidth(width))
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(panel)
	}
	return ""
}

func masteryLabel(level notebook.MasteryLevel) string {
	switch level {
	case notebook.MasteryLearning:
		return "aprendendo"
	case notebook.MasteryMastered:
		return "dominado"
	default:
		return "novo"
	}
}
