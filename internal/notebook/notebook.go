// Package notebook holds the study material model: notebooks of
// flashcards and annotated documents.
package notebook

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"zenstudy/internal/annotate"
)

// DocumentKind discriminates how a document's source is rendered.
type DocumentKind string

const (
	KindPDF   DocumentKind = "pdf"
	KindImage DocumentKind = "image"
)

// MasteryLevel is the spaced-review stage of one flashcard.
type MasteryLevel string

const (
	MasteryNew      MasteryLevel = "new"
	MasteryLearning MasteryLevel = "learning"
	MasteryMastered MasteryLevel = "mastered"
)

// Flashcard is one question/answer pair. Question and Answer may carry
// HTML markup from the rich-text editor; use PlainText before sending
// either to an external service.
type Flashcard struct {
	ID         string       `json:"id"`
	NotebookID string       `json:"notebookId"`
	Question   string       `json:"question"`
	Answer     string       `json:"answer"`
	CreatedAt  time.Time    `json:"createdAt"`
	Mastery    MasteryLevel `json:"masteryLevel"`
}

// Document is a PDF or image the user annotates. Annotations are stored
// in document space and persisted with the document.
type Document struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Kind        DocumentKind          `json:"kind"`
	SourceURL   string                `json:"sourceUrl"`
	Annotations []annotate.Annotation `json:"annotations"`
}

// Notebook groups documents and flashcards under one subject.
type Notebook struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Documents  []Document  `json:"documents"`
	Flashcards []Flashcard `json:"flashcards"`
}

// NewNotebook creates an empty notebook with a fresh id.
func NewNotebook(name string) Notebook {
	return Notebook{
		ID:   uuid.NewString(),
		Name: name,
	}
}

// NewFlashcard creates a new-mastery card bound to a notebook.
// Timestamps are stored in UTC so persisted cards compare equal to
// in-memory ones.
func NewFlashcard(notebookID, question, answer string) Flashcard {
	return Flashcard{
		ID:         uuid.NewString(),
		NotebookID: notebookID,
		Question:   question,
		Answer:     answer,
		CreatedAt:  time.Now().UTC(),
		Mastery:    MasteryNew,
	}
}

// Card returns the flashcard with the given id, if present.
func (n *Notebook) Card(id string) (*Flashcard, bool) {
	for i := range n.Flashcards {
		if n.Flashcards[i].ID == id {
			return &n.Flashcards[i], true
		}
	}
	return nil, false
}

// Doc returns the document with the given id, if present.
func (n *Notebook) Doc(id string) (*Document, bool) {
	for i := range n.Documents {
		if n.Documents[i].ID == id {
			return &n.Documents[i], true
		}
	}
	return nil, false
}

// AddFlashcard appends a new card to the notebook and returns it.
func (n *Notebook) AddFlashcard(question, answer string) Flashcard {
	card := NewFlashcard(n.ID, question, answer)
	n.Flashcards = append(n.Flashcards, card)
	return card
}

// Find returns the notebook matching key by id or, failing that, by
// case-insensitive name.
func Find(nbs []Notebook, key string) (*Notebook, bool) {
	for i := range nbs {
		if nbs[i].ID == key {
			return &nbs[i], true
		}
	}
	for i := range nbs {
		if strings.EqualFold(nbs[i].Name, key) {
			return &nbs[i], true
		}
	}
	return nil, false
}
