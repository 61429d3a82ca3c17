package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"zenstudy/internal/annotate"
	"zenstudy/internal/notebook"
	"zenstudy/internal/quiz"
	"zenstudy/internal/stats"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNotebooks_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	nbs := []notebook.Notebook{
		{
			ID:   "nb-1",
			Name: "Direito Constitucional",
			Documents: []notebook.Document{
				{
					ID:   "doc-1",
					Name: "Resumo",
					Kind: notebook.KindPDF,
					Annotations: []annotate.Annotation{
						{
							ID:      "ann-1",
							Kind:    annotate.KindDraw,
							Points:  []annotate.Point{{X: 1, Y: 2}, {X: 3, Y: 4}},
							Color:   "#4f46e5",
							Width:   3,
							Opacity: 1,
						},
						{
							ID:      "ann-2",
							Kind:    annotate.KindHighlight,
							Points:  []annotate.Point{{X: 5, Y: 6}, {X: 7, Y: 8}},
							Color:   "#fbbf24",
							Width:   14,
							Opacity: 0.4,
						},
					},
				},
			},
			Flashcards: []notebook.Flashcard{
				{
					ID:         "card-1",
					NotebookID: "nb-1",
					Question:   "<b>Pergunta?</b>",
					Answer:     "Resposta.",
					CreatedAt:  time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
					Mastery:    notebook.MasteryLearning,
				},
			},
		},
		{ID: "nb-2", Name: "Português"},
	}

	require.NoError(t, s.SaveNotebooks(ctx, nbs))

	got, err := s.LoadNotebooks(ctx)
	require.NoError(t, err)
	require.Equal(t, nbs, got)
}

func TestNotebooks_ReplaceOnSave(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveNotebooks(ctx, []notebook.Notebook{
		{ID: "nb-1", Name: "A"},
		{ID: "nb-2", Name: "B"},
	}))
	require.NoError(t, s.SaveNotebooks(ctx, []notebook.Notebook{
		{ID: "nb-3", Name: "C"},
	}))

	got, err := s.LoadNotebooks(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "nb-3", got[0].ID)
}

func TestLoadOrSeedNotebooks_EmptyStoreSeeds(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	got, err := s.LoadOrSeedNotebooks(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Direito Constitucional", got[0].Name)
	require.Len(t, got[0].Flashcards, 1)

	// The seed must have been persisted.
	persisted, err := s.LoadNotebooks(ctx)
	require.NoError(t, err)
	require.Equal(t, got, persisted)
}

func TestLoadOrSeedNotebooks_KeepsExistingData(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveNotebooks(ctx, []notebook.Notebook{{ID: "mine", Name: "Meu caderno"}}))

	got, err := s.LoadOrSeedNotebooks(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "mine", got[0].ID)
}

func TestNotebooks_AddedCardPersists(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	nbs := []notebook.Notebook{notebook.NewNotebook("Português")}
	nbs[0].AddFlashcard("O que é crase?", "Fusão da preposição 'a' com o artigo 'a'.")
	require.NoError(t, s.SaveNotebooks(ctx, nbs))

	got, err := s.LoadNotebooks(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Flashcards, 1)

	// UTC timestamps make the persisted card compare equal to the
	// in-memory one.
	require.Equal(t, nbs[0].Flashcards[0], got[0].Flashcards[0])
}

func TestStats_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	us, err := s.LoadStats(ctx)
	require.NoError(t, err)
	require.Nil(t, us, "empty store must report no stats")

	saved := stats.NewUserStats()
	saved.StreakDays = 4
	saved.CardsReviewedToday = 7
	saved.LastStudy = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	saved.QuizHistory = []quiz.Result{
		{ID: "r1", SubjectID: "nb-1", TotalQuestions: 5, CorrectAnswers: 3,
			Timestamp: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, s.SaveStats(ctx, saved))

	got, err := s.LoadStats(ctx)
	require.NoError(t, err)
	require.Equal(t, saved, got)

	// Second save overwrites the single row.
	saved.StreakDays = 5
	require.NoError(t, s.SaveStats(ctx, saved))
	got, err = s.LoadStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, got.StreakDays)
}

func TestLoadOrSeedStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	got, err := s.LoadOrSeedStats(ctx)
	require.NoError(t, err)
	require.Equal(t, stats.DefaultDailyCardGoal, got.DailyCardGoal)

	persisted, err := s.LoadStats(ctx)
	require.NoError(t, err)
	require.NotNil(t, persisted)
}

func TestAppendAndCountLLMCalls(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendLLMCall(ctx, LLMCallRecord{
		Provider: "mock", Model: "mock", Purpose: "quiz-gen",
		LatencyMs: 12, Success: true, InputTokens: 100, OutputTokens: 50,
	}))
	require.NoError(t, s.AppendLLMCall(ctx, LLMCallRecord{
		Provider: "mock", Model: "mock", Purpose: "quiz-gen",
		Success: false, ErrorMessage: "boom",
	}))

	ok, failed, err := s.CountLLMCalls(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, ok)
	require.Equal(t, 1, failed)
}

func TestListAndGetLLMCalls(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendLLMCall(ctx, LLMCallRecord{
		Provider: "mock", Model: "mock", Purpose: "quiz-gen",
		Success: true, RequestBody: "first",
	}))
	require.NoError(t, s.AppendLLMCall(ctx, LLMCallRecord{
		Provider: "mock", Model: "mock", Purpose: "deepen",
		Success: true, RequestBody: "second",
	}))

	calls, err := s.ListLLMCalls(ctx, 10)
	require.NoError(t, err)
	require.Len(t, calls, 2)
	// Newest first.
	require.Equal(t, "deepen", calls[0].Purpose)
	require.Equal(t, "quiz-gen", calls[1].Purpose)

	got, err := s.GetLLMCall(ctx, calls[1].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "first", got.RequestBody)

	missing, err := s.GetLLMCall(ctx, 9999)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestLLMCallUsage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.AppendLLMCall(ctx, LLMCallRecord{
			Provider: "mock", Model: "mock", Purpose: "quiz-gen",
			Success: true, InputTokens: 100, OutputTokens: 50, LatencyMs: 10,
		}))
	}

	usage, err := s.LLMCallUsage(ctx)
	require.NoError(t, err)
	require.Len(t, usage, 1)
	require.Equal(t, "quiz-gen", usage[0].Purpose)
	require.Equal(t, 3, usage[0].Calls)
	require.Equal(t, 300, usage[0].InputTokens)
	require.Equal(t, 150, usage[0].OutputTokens)
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.LoadOrSeedNotebooks(ctx)
	require.NoError(t, err)
	_, err = s.LoadOrSeedStats(ctx)
	require.NoError(t, err)
	require.NoError(t, s.AppendLLMCall(ctx, LLMCallRecord{
		Provider: "mock", Model: "mock", Purpose: "quiz-gen", Success: true,
	}))

	require.NoError(t, s.Reset(ctx))

	nbs, err := s.LoadNotebooks(ctx)
	require.NoError(t, err)
	require.Empty(t, nbs)

	us, err := s.LoadStats(ctx)
	require.NoError(t, err)
	require.Nil(t, us)

	ok, failed, err := s.CountLLMCalls(ctx)
	require.NoError(t, err)
	require.Zero(t, ok+failed)
}
