// Package quizgen produces multiple-choice quizzes, deeper explanations,
// and post-quiz feedback from flashcard content via an LLM provider.
package quizgen

// Config bounds quiz generation.
type Config struct {
	// MaxCards caps how many flashcards are sent to the provider.
	MaxCards int

	// QuestionCount is the number of questions per quiz.
	QuestionCount int

	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the limits used by the app.
func DefaultConfig() Config {
	return Config{
		MaxCards:      20,
		QuestionCount: 5,
		MaxTokens:     4096,
		Temperature:   0.7,
	}
}
