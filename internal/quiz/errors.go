package quiz

import "errors"

var (
	// ErrNoFlashcards means there was nothing to generate a quiz from.
	// Surfaced before the generation collaborator is ever invoked.
	ErrNoFlashcards = errors.New("quiz: at least one flashcard is required")

	// ErrNoQuestions means Start was called with an empty question list.
	ErrNoQuestions = errors.New("quiz: session needs at least one question")

	// ErrNotInProgress means an operation requires an active session.
	ErrNotInProgress = errors.New("quiz: session is not in progress")

	// ErrSessionFinished means Finish was called on a completed session.
	ErrSessionFinished = errors.New("quiz: session already finished")

	// ErrUnansweredFinal means Finish was called before the last question
	// had an answer recorded.
	ErrUnansweredFinal = errors.New("quiz: final question is unanswered")

	// ErrIndexOutOfRange means an answer targeted a nonexistent question.
	ErrIndexOutOfRange = errors.New("quiz: question index out of range")
)
