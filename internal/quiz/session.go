package quiz

import (
	"time"

	"github.com/google/uuid"
)

// State is the session lifecycle phase.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted
)

// Session drives one quiz run from generated questions through scoring.
// Forward navigation is gated on the current question being answered, so a
// user can never skip ahead past an unanswered question; backward
// navigation is unrestricted and answers may be changed until Finish.
type Session struct {
	subjectID string
	questions []Question
	current   int
	answers   map[int]string
	state     State
}

// NewSession creates a session bound to a subject (notebook id, or
// SubjectGlobal when quizzing across every notebook).
func NewSession(subjectID string) *Session {
	if subjectID == "" {
		subjectID = SubjectGlobal
	}
	return &Session{
		subjectID: subjectID,
		answers:   make(map[int]string),
	}
}

// Start loads the generated questions and moves to InProgress.
func (s *Session) Start(questions []Question) error {
	if s.state != StateNotStarted {
		return ErrSessionFinished
	}
	if len(questions) == 0 {
		return ErrNoQuestions
	}
	s.questions = questions
	s.current = 0
	s.state = StateInProgress
	return nil
}

// State returns the lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// Current returns the active question index.
func (s *Session) Current() int {
	return s.current
}

// Len returns the question count.
func (s *Session) Len() int {
	return len(s.questions)
}

// Question returns the question at index i.
func (s *Session) Question(i int) (Question, error) {
	if i < 0 || i >= len(s.questions) {
		return Question{}, ErrIndexOutOfRange
	}
	return s.questions[i], nil
}

// Answer returns the recorded choice for question i, if any.
func (s *Session) Answer(i int) (string, bool) {
	key, ok := s.answers[i]
	return key, ok
}

// SelectAnswer records (or overwrites) the choice for question i. The user
// may change an answer while on the question or after navigating back.
func (s *Session) SelectAnswer(i int, choiceKey string) error {
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	if i < 0 || i >= len(s.questions) {
		return ErrIndexOutOfRange
	}
	s.answers[i] = choiceKey
	return nil
}

// GoNext advances to the next question. Silently a no-op when the current
// question is unanswered or already at the last index.
func (s *Session) GoNext() {
	if s.state != StateInProgress {
		return
	}
	if _, answered := s.answers[s.current]; !answered {
		return
	}
	if s.current < len(s.questions)-1 {
		s.current++
	}
}

// GoPrevious steps back one question; no-op at index 0.
func (s *Session) GoPrevious() {
	if s.state != StateInProgress {
		return
	}
	if s.current > 0 {
		s.current--
	}
}

// AtLast reports whether the session is on the final question.
func (s *Session) AtLast() bool {
	return s.current == len(s.questions)-1
}

// Finish scores the session and returns its immutable Result. Valid only
// while in progress and only once the final question has an answer; a
// second call is rejected. Scoring is exact, case-sensitive key equality
// with no partial credit.
func (s *Session) Finish() (*Result, error) {
	switch s.state {
	case StateNotStarted:
		return nil, ErrNotInProgress
	case StateCompleted:
		return nil, ErrSessionFinished
	}
	if _, ok := s.answers[len(s.questions)-1]; !ok {
		return nil, ErrUnansweredFinal
	}

	perQuestion := make([]Answered, len(s.questions))
	correct := 0
	for i, q := range s.questions {
		answer := s.answers[i]
		isCorrect := answer == q.CorrectKey
		if isCorrect {
			correct++
		}
		perQuestion[i] = Answered{
			Question:   q,
			UserAnswer: answer,
			IsCorrect:  isCorrect,
		}
	}

	s.state = StateCompleted
	return &Result{
		ID:             uuid.NewString(),
		SubjectID:      s.subjectID,
		Timestamp:      time.Now(),
		TotalQuestions: len(s.questions),
		CorrectAnswers: correct,
		PerQuestion:    perQuestion,
	}, nil
}
