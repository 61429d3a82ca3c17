package app

import (
	"context"
	"fmt"
	"os"

	"zenstudy/internal/notebook"
	"zenstudy/internal/stats"
	"zenstudy/internal/store"
)

// State is the mutable application state shared by all screens.
// Screens mutate Notebooks and the tracker in place and call the save
// helpers afterwards.
type State struct {
	Store     *store.Store
	Notebooks []notebook.Notebook
	Tracker   *stats.Tracker
}

// LoadState opens the stored collections, seeding defaults when the
// store is empty.
func LoadState(ctx context.Context, st *store.Store) (*State, error) {
	nbs, err := st.LoadOrSeedNotebooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load notebooks: %w", err)
	}
	us, err := st.LoadOrSeedStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	return &State{
		Store:     st,
		Notebooks: nbs,
		Tracker:   stats.NewTracker(us),
	}, nil
}

// Notebook returns the notebook with the given id, if present.
func (s *State) Notebook(id string) (*notebook.Notebook, bool) {
	for i := range s.Notebooks {
		if s.Notebooks[i].ID == id {
			return &s.Notebooks[i], true
		}
	}
	return nil, false
}

// AllFlashcards returns every card across all notebooks.
func (s *State) AllFlashcards() []notebook.Flashcard {
	var cards []notebook.Flashcard
	for _, nb := range s.Notebooks {
		cards = append(cards, nb.Flashcards...)
	}
	return cards
}

// SaveNotebooks persists the whole collection. A failed save is retried
// once: the in-memory state stays authoritative either way, so a
// persistent failure only costs durability, not the session.
func (s *State) SaveNotebooks(ctx context.Context) {
	if err := s.Store.SaveNotebooks(ctx, s.Notebooks); err != nil {
		if err = s.Store.SaveNotebooks(ctx, s.Notebooks); err != nil {
			fmt.Fprintf(os.Stderr, "warning: save notebooks: %v\n", err)
		}
	}
}

// SaveStats persists the stats record with the same retry-once rule.
func (s *State) SaveStats(ctx context.Context) {
	us := s.Tracker.Stats()
	if err := s.Store.SaveStats(ctx, us); err != nil {
		if err = s.Store.SaveStats(ctx, us); err != nil {
			fmt.Fprintf(os.Stderr, "warning: save stats: %v\n", err)
		}
	}
}
