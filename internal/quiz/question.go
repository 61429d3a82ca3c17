// Package quiz implements the quiz session state machine: question
// navigation, answer recording, completion detection, and scoring.
package quiz

import "time"

// OptionKeys are the five lettered choices every generated question carries.
var OptionKeys = []string{"a", "b", "c", "d", "e"}

// SubjectGlobal is the subject id used when a quiz spans all notebooks.
const SubjectGlobal = "global"

// Question is one multiple-choice question. Immutable once generated for
// a session; results embed copies so later flashcard edits never rewrite
// history.
type Question struct {
	SourceLabel string            `json:"sourceLabel"`
	Topic       string            `json:"topic"`
	Prompt      string            `json:"prompt"`
	Options     map[string]string `json:"options"`
	CorrectKey  string            `json:"correctKey"`
	Explanation string            `json:"explanation"`
}

// Answered pairs a question with the user's choice for it.
type Answered struct {
	Question   Question `json:"question"`
	UserAnswer string   `json:"userAnswer"`
	IsCorrect  bool     `json:"isCorrect"`
}

// Result is the immutable snapshot of a completed session, created exactly
// once by Session.Finish and appended to the front of the history log.
type Result struct {
	ID             string     `json:"id"`
	SubjectID      string     `json:"subjectId"`
	Timestamp      time.Time  `json:"timestamp"`
	TotalQuestions int        `json:"totalQuestions"`
	CorrectAnswers int        `json:"correctAnswers"`
	PerQuestion    []Answered `json:"perQuestion"`
}

// Accuracy returns the session's correct ratio in [0, 1].
func (r Result) Accuracy() float64 {
	if r.TotalQuestions == 0 {
		return 0
	}
	return float64(r.CorrectAnswers) / float64(r.TotalQuestions)
}
