// Package analytics derives weak-area and accuracy summaries from
// completed quiz sessions.
package analytics

import (
	"sort"

	"zenstudy/internal/quiz"
)

// TopicFallback is the bucket for questions generated without a topic label.
const TopicFallback = "Geral"

// DefaultHotTopicLimit bounds the hot-topics report when no limit is given.
const DefaultHotTopicLimit = 5

// TopicStat is the per-topic accuracy across every answered question in
// the history, regardless of which session it came from.
type TopicStat struct {
	Topic    string
	Correct  int
	Total    int
	Accuracy float64
}

// SubjectStat summarizes all sessions recorded against one subject.
type SubjectStat struct {
	SubjectID string
	Sessions  int
	Accuracy  float64
}

// HotTopics flattens the per-question results of every session, groups
// them by topic, and returns the worst-performing topics first. Ties keep
// the order in which topics were first encountered. A limit <= 0 falls
// back to DefaultHotTopicLimit.
func HotTopics(history []quiz.Result, limit int) []TopicStat {
	if limit <= 0 {
		limit = DefaultHotTopicLimit
	}

	index := make(map[string]int)
	var stats []TopicStat
	for _, res := range history {
		for _, pq := range res.PerQuestion {
			topic := pq.Question.Topic
			if topic == "" {
				topic = TopicFallback
			}
			i, ok := index[topic]
			if !ok {
				i = len(stats)
				index[topic] = i
				stats = append(stats, TopicStat{Topic: topic})
			}
			stats[i].Total++
			if pq.IsCorrect {
				stats[i].Correct++
			}
		}
	}

	for i := range stats {
		stats[i].Accuracy = float64(stats[i].Correct) / float64(stats[i].Total)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Accuracy < stats[j].Accuracy
	})

	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

// SubjectSummary reports the mean of per-session accuracy for each given
// subject. Sessions are weighted equally regardless of question count.
// Subjects without any recorded session report accuracy 0.
func SubjectSummary(history []quiz.Result, subjects []string) []SubjectStat {
	stats := make([]SubjectStat, len(subjects))
	for i, id := range subjects {
		stats[i].SubjectID = id
		var sum float64
		for _, res := range history {
			if res.SubjectID != id {
				continue
			}
			stats[i].Sessions++
			sum += res.Accuracy()
		}
		if stats[i].Sessions > 0 {
			stats[i].Accuracy = sum / float64(stats[i].Sessions)
		}
	}
	return stats
}

// BestAccuracy returns the highest single-session accuracy in the
// history, or 0 when the history is empty.
func BestAccuracy(history []quiz.Result) float64 {
	var best float64
	for _, res := range history {
		if acc := res.Accuracy(); acc > best {
			best = acc
		}
	}
	return best
}
