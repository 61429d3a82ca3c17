package quiz

import (
	"errors"
	"testing"
)

func fiveQuestions() []Question {
	keys := []string{"a", "b", "c", "d", "e"}
	qs := make([]Question, 5)
	for i := range qs {
		qs[i] = Question{
			Topic:      "Topic",
			Prompt:     "Prompt",
			Options:    map[string]string{"a": "A", "b": "B", "c": "C", "d": "D", "e": "E"},
			CorrectKey: keys[i],
		}
	}
	return qs
}

func startedSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession("nb-1")
	if err := s.Start(fiveQuestions()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestStart_RequiresQuestions(t *testing.T) {
	s := NewSession("nb-1")
	if err := s.Start(nil); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("Start(nil) = %v, want ErrNoQuestions", err)
	}
	if s.State() != StateNotStarted {
		t.Error("failed Start must not change state")
	}
}

func TestScoring_ExactKeyMatch(t *testing.T) {
	s := startedSession(t)

	// Correct keys are [a b c d e]; the user answers [a x c d z].
	answers := []string{"a", "x", "c", "d", "z"}
	for i, key := range answers {
		if err := s.SelectAnswer(i, key); err != nil {
			t.Fatalf("SelectAnswer(%d): %v", i, err)
		}
	}

	res, err := s.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if res.CorrectAnswers != 3 {
		t.Errorf("CorrectAnswers = %d, want 3", res.CorrectAnswers)
	}
	if res.TotalQuestions != 5 {
		t.Errorf("TotalQuestions = %d, want 5", res.TotalQuestions)
	}
	if res.SubjectID != "nb-1" {
		t.Errorf("SubjectID = %q, want nb-1", res.SubjectID)
	}
	if res.ID == "" {
		t.Error("result has no id")
	}
	wantCorrect := []bool{true, false, true, true, false}
	for i, pq := range res.PerQuestion {
		if pq.IsCorrect != wantCorrect[i] {
			t.Errorf("PerQuestion[%d].IsCorrect = %v, want %v", i, pq.IsCorrect, wantCorrect[i])
		}
		if pq.UserAnswer != answers[i] {
			t.Errorf("PerQuestion[%d].UserAnswer = %q, want %q", i, pq.UserAnswer, answers[i])
		}
	}
}

func TestGoNext_GatedOnAnswer(t *testing.T) {
	s := startedSession(t)

	s.GoNext()
	if s.Current() != 0 {
		t.Errorf("Current = %d, want 0 (unanswered question blocks forward nav)", s.Current())
	}

	s.SelectAnswer(0, "a")
	s.GoNext()
	if s.Current() != 1 {
		t.Errorf("Current = %d, want 1", s.Current())
	}
}

func TestGoNext_StopsAtLastIndex(t *testing.T) {
	s := startedSession(t)
	for i := 0; i < 5; i++ {
		s.SelectAnswer(i, "a")
		s.GoNext()
	}
	if s.Current() != 4 {
		t.Errorf("Current = %d, want 4", s.Current())
	}
	if !s.AtLast() {
		t.Error("AtLast = false at final index")
	}
}

func TestGoPrevious_UnrestrictedBackward(t *testing.T) {
	s := startedSession(t)
	s.GoPrevious()
	if s.Current() != 0 {
		t.Errorf("Current = %d, want 0 (no-op at index 0)", s.Current())
	}

	s.SelectAnswer(0, "a")
	s.GoNext()
	s.GoPrevious()
	if s.Current() != 0 {
		t.Errorf("Current = %d, want 0", s.Current())
	}
}

func TestSelectAnswer_OverwritesPriorChoice(t *testing.T) {
	s := startedSession(t)
	s.SelectAnswer(0, "b")
	s.SelectAnswer(0, "a")

	key, ok := s.Answer(0)
	if !ok || key != "a" {
		t.Errorf("Answer(0) = %q, %v; want a, true", key, ok)
	}
}

func TestSelectAnswer_RejectsOutOfRange(t *testing.T) {
	s := startedSession(t)
	if err := s.SelectAnswer(9, "a"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("SelectAnswer(9) = %v, want ErrIndexOutOfRange", err)
	}
	if err := s.SelectAnswer(-1, "a"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("SelectAnswer(-1) = %v, want ErrIndexOutOfRange", err)
	}
}

func TestFinish_RequiresFinalAnswer(t *testing.T) {
	s := startedSession(t)
	for i := 0; i < 4; i++ {
		s.SelectAnswer(i, "a")
	}
	if _, err := s.Finish(); !errors.Is(err, ErrUnansweredFinal) {
		t.Errorf("Finish = %v, want ErrUnansweredFinal", err)
	}
	if s.State() != StateInProgress {
		t.Error("failed Finish must keep the session in progress")
	}
}

func TestFinish_RejectsSecondCall(t *testing.T) {
	s := startedSession(t)
	for i := 0; i < 5; i++ {
		s.SelectAnswer(i, "a")
	}
	if _, err := s.Finish(); err != nil {
		t.Fatalf("first Finish: %v", err)
	}
	if _, err := s.Finish(); !errors.Is(err, ErrSessionFinished) {
		t.Errorf("second Finish = %v, want ErrSessionFinished", err)
	}
}

func TestNewSession_EmptySubjectFallsBackToGlobal(t *testing.T) {
	s := NewSession("")
	s.Start(fiveQuestions())
	for i := 0; i < 5; i++ {
		s.SelectAnswer(i, "e")
	}
	res, err := s.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if res.SubjectID != SubjectGlobal {
		t.Errorf("SubjectID = %q, want %q", res.SubjectID, SubjectGlobal)
	}
}

func TestResult_Accuracy(t *testing.T) {
	tests := []struct {
		correct, total int
		want           float64
	}{
		{3, 5, 0.6},
		{0, 5, 0},
		{5, 5, 1},
		{0, 0, 0},
	}
	for _, tt := range tests {
		r := Result{CorrectAnswers: tt.correct, TotalQuestions: tt.total}
		if got := r.Accuracy(); got != tt.want {
			t.Errorf("Accuracy(%d/%d) = %v, want %v", tt.correct, tt.total, got, tt.want)
		}
	}
}
