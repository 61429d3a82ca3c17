package quizgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"zenstudy/internal/llm"
	"zenstudy/internal/notebook"
	"zenstudy/internal/quiz"
)

func TestDeepen_ReturnsExplanation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"Uma analogia: ..."`)})
	exp := NewExplainer(mock, DefaultConfig())

	card := notebook.Flashcard{Question: "<b>O que é soberania?</b>", Answer: "Poder supremo."}
	got := exp.Deepen(context.Background(), card)
	if got != "Uma analogia: ..." {
		t.Errorf("Deepen = %q", got)
	}

	sent := mock.Calls[0].Messages[0].Content
	if strings.Contains(sent, "<b>") {
		t.Error("markup reached the prompt")
	}
	if !strings.Contains(sent, "O que é soberania?") {
		t.Error("card question missing from prompt")
	}
}

func TestDeepen_FallbackOnFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	exp := NewExplainer(mock, DefaultConfig())

	if got := exp.Deepen(context.Background(), notebook.Flashcard{}); got != FallbackDeepen {
		t.Errorf("Deepen = %q, want %q", got, FallbackDeepen)
	}
}

func TestDeepen_FallbackOnEmptyResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`""`)})
	exp := NewExplainer(mock, DefaultConfig())

	if got := exp.Deepen(context.Background(), notebook.Flashcard{}); got != FallbackEmpty {
		t.Errorf("Deepen = %q, want %q", got, FallbackEmpty)
	}
}

func TestAnalyze_SummarizesResults(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"## Diagnóstico"`)})
	an := NewAnalyzer(mock, DefaultConfig())

	answered := []quiz.Answered{
		{Question: quiz.Question{Topic: "Fundamentos", CorrectKey: "a"}, UserAnswer: "a", IsCorrect: true},
		{Question: quiz.Question{Topic: "", CorrectKey: "c"}, UserAnswer: "b", IsCorrect: false},
	}

	got := an.Analyze(context.Background(), answered)
	if got != "## Diagnóstico" {
		t.Errorf("Analyze = %q", got)
	}

	sent := mock.Calls[0].Messages[0].Content
	if !strings.Contains(sent, "Q1: Acertou - TEMA: Fundamentos") {
		t.Errorf("summary missing correct line:\n%s", sent)
	}
	if !strings.Contains(sent, "Q2: Errou - TEMA: Geral | ERRO: O usuário marcou b mas o correto era c") {
		t.Errorf("summary missing error line:\n%s", sent)
	}
}

func TestAnalyze_FallbackOnFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	an := NewAnalyzer(mock, DefaultConfig())

	if got := an.Analyze(context.Background(), nil); got != FallbackAnalyze {
		t.Errorf("Analyze = %q, want %q", got, FallbackAnalyze)
	}
}
