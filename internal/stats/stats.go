// Package stats tracks daily study goals, streaks, and the quiz history
// counters shared by flashcard review and quiz completion.
package stats

import (
	"time"

	"zenstudy/internal/quiz"
)

// Default daily goals applied when the user has not configured any.
const (
	DefaultDailyCardGoal     = 20
	DefaultDailyQuestionGoal = 10
)

// UserStats is the single persistent record of study activity. It is
// loaded once at startup and saved back by the caller after every
// mutation.
type UserStats struct {
	DailyCardGoal     int            `json:"dailyCardGoal"`
	DailyQuestionGoal int            `json:"dailyQuestionGoal"`
	SubjectGoals      map[string]int `json:"subjectGoals"`

	CardsReviewedToday     int            `json:"cardsReviewedToday"`
	QuestionsAnsweredToday int            `json:"questionsAnsweredToday"`
	SubjectReviews         map[string]int `json:"subjectReviews"`

	StreakDays   int       `json:"streakDays"`
	LastStudy    time.Time `json:"lastStudy"`
	TotalReviews int       `json:"totalReviews"`

	// QuizHistory is kept newest first.
	QuizHistory []quiz.Result `json:"quizHistory,omitempty"`
}

// NewUserStats returns the stats record used when no prior data exists.
func NewUserStats() *UserStats {
	return &UserStats{
		DailyCardGoal:     DefaultDailyCardGoal,
		DailyQuestionGoal: DefaultDailyQuestionGoal,
		SubjectGoals:      map[string]int{},
		SubjectReviews:    map[string]int{},
	}
}

// DailyCardTarget is the sum of all nonzero per-subject goals when any
// are set, otherwise the global daily goal.
func (s *UserStats) DailyCardTarget() int {
	var sum int
	for _, goal := range s.SubjectGoals {
		if goal > 0 {
			sum += goal
		}
	}
	if sum > 0 {
		return sum
	}
	return s.DailyCardGoal
}

// ProgressPercent reports done/target as a percentage, capped at 100.
func ProgressPercent(done, target int) int {
	if target < 1 {
		target = 1
	}
	pct := 100 * done / target
	if pct > 100 {
		return 100
	}
	return pct
}

// CardProgressPercent is today's flashcard progress against the
// effective daily card target.
func (s *UserStats) CardProgressPercent() int {
	return ProgressPercent(s.CardsReviewedToday, s.DailyCardTarget())
}

// QuestionProgressPercent is today's quiz progress against the daily
// question goal.
func (s *UserStats) QuestionProgressPercent() int {
	return ProgressPercent(s.QuestionsAnsweredToday, s.DailyQuestionGoal)
}
