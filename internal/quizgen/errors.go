package quizgen

import (
	"errors"
	"fmt"
)

// ErrNoCards indicates generation was requested without any flashcards.
var ErrNoCards = errors.New("no flashcards to generate from")

// GenerationError indicates the provider failed to produce a usable quiz.
// No partial results are kept.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("quiz generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
