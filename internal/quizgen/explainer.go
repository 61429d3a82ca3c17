package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"zenstudy/internal/llm"
	"zenstudy/internal/notebook"
)

// Fallback messages shown when the provider is unavailable. Explanation
// and analysis failures never surface as errors to the caller.
const (
	FallbackDeepen  = "Erro de conexão com o tutor."
	FallbackEmpty   = "Não foi possível aprofundar."
	FallbackAnalyze = "Erro ao analisar performance. Simulado salvo no histórico."
)

// Explainer produces a deeper explanation for one flashcard.
type Explainer struct {
	provider llm.Provider
	config   Config
}

// NewExplainer creates an Explainer with the given provider and config.
func NewExplainer(provider llm.Provider, cfg Config) *Explainer {
	return &Explainer{provider: provider, config: cfg}
}

// Deepen asks for a tutor-style explanation of the card. On any failure
// it returns a fallback message, never an error.
func (e *Explainer) Deepen(ctx context.Context, card notebook.Flashcard) string {
	ctx = llm.WithPurpose(ctx, llm.PurposeDeepen)

	prompt := fmt.Sprintf(`Professor Particular. Explique o porquê desta questão:
Q: %s
A: %s
Use analogia e exemplo prático. Markdown.`,
		notebook.PlainText(card.Question), notebook.PlainText(card.Answer))

	req := llm.Request{
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens: e.config.MaxTokens,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return FallbackDeepen
	}

	text := rawText(resp.Content)
	if text == "" {
		return FallbackEmpty
	}
	return text
}

// rawText unwraps a schemaless response, which providers return as a
// JSON-encoded string.
func rawText(content json.RawMessage) string {
	var s string
	if err := json.Unmarshal(content, &s); err != nil {
		return string(content)
	}
	return s
}
