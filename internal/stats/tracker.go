package stats

import (
	"time"

	"zenstudy/internal/quiz"
)

// Tracker applies study events to a UserStats record. It mutates the
// record in place; persisting the result is the caller's job.
type Tracker struct {
	stats *UserStats
}

// NewTracker wraps an existing stats record.
func NewTracker(stats *UserStats) *Tracker {
	return &Tracker{stats: stats}
}

// Stats returns the tracked record.
func (t *Tracker) Stats() *UserStats {
	return t.stats
}

// RecordCardReview counts one reviewed flashcard for the given subject
// and advances the streak.
func (t *Tracker) RecordCardReview(subjectID string, now time.Time) {
	t.rollover(now)
	t.stats.CardsReviewedToday++
	t.stats.TotalReviews++
	if subjectID != "" {
		if t.stats.SubjectReviews == nil {
			t.stats.SubjectReviews = map[string]int{}
		}
		t.stats.SubjectReviews[subjectID]++
	}
	t.touch(now)
}

// RecordQuizSession prepends a completed session to the history and
// counts its questions toward today's progress.
func (t *Tracker) RecordQuizSession(res quiz.Result, now time.Time) {
	t.rollover(now)
	t.stats.QuestionsAnsweredToday += res.TotalQuestions
	t.stats.QuizHistory = append([]quiz.Result{res}, t.stats.QuizHistory...)
	t.touch(now)
}

// rollover zeroes the daily counters when the calendar day has changed
// since the last recorded activity.
func (t *Tracker) rollover(now time.Time) {
	if t.stats.LastStudy.IsZero() || sameDay(t.stats.LastStudy, now) {
		return
	}
	t.stats.CardsReviewedToday = 0
	t.stats.QuestionsAnsweredToday = 0
	t.stats.SubjectReviews = map[string]int{}
}

// touch updates the streak and the last-study timestamp. Activity on the
// same day keeps the streak, the next calendar day extends it, and any
// longer gap restarts it at 1.
func (t *Tracker) touch(now time.Time) {
	switch {
	case t.stats.LastStudy.IsZero():
		t.stats.StreakDays = 1
	case sameDay(t.stats.LastStudy, now):
		// Already counted for today.
	case sameDay(t.stats.LastStudy.AddDate(0, 0, 1), now):
		t.stats.StreakDays++
	default:
		t.stats.StreakDays = 1
	}
	t.stats.LastStudy = now
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
