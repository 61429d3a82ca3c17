package quizgen

import (
	"context"
	"fmt"
	"strings"

	"zenstudy/internal/analytics"
	"zenstudy/internal/llm"
	"zenstudy/internal/quiz"
)

const analyzerSystemPrompt = `Você é um Analista de Performance de Estudantes.
Analise o simulado e crie um feedback técnico e motivador em Markdown:
1. **Diagnóstico por Tema**: identifique quais temas precisam de re-estudo imediato.
2. **Padrão de Erro**: o estudante está errando por confundir conceitos ou falta de atenção?
3. **Ações Práticas**: liste 3 passos concretos para a próxima sessão de estudos.
Use uma linguagem de mentor, emojis discretos e formatação clara.`

// Analyzer produces post-quiz feedback from the per-question results.
type Analyzer struct {
	provider llm.Provider
	config   Config
}

// NewAnalyzer creates an Analyzer with the given provider and config.
func NewAnalyzer(provider llm.Provider, cfg Config) *Analyzer {
	return &Analyzer{provider: provider, config: cfg}
}

// Analyze summarizes a finished session. The session must already be
// persisted when this is called; a provider failure only costs the
// feedback text, so it returns a fallback message instead of an error.
func (a *Analyzer) Analyze(ctx context.Context, answered []quiz.Answered) string {
	ctx = llm.WithPurpose(ctx, llm.PurposeAnalyze)

	req := llm.Request{
		System: analyzerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "RESULTADOS:\n" + summarize(answered)},
		},
		MaxTokens: a.config.MaxTokens,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return FallbackAnalyze
	}

	text := rawText(resp.Content)
	if text == "" {
		return FallbackAnalyze
	}
	return text
}

// summarize renders the per-question outcomes for the prompt.
func summarize(answered []quiz.Answered) string {
	var b strings.Builder
	for i, pq := range answered {
		topic := pq.Question.Topic
		if topic == "" {
			topic = analytics.TopicFallback
		}
		outcome := "Acertou"
		detail := "Nenhum"
		if !pq.IsCorrect {
			outcome = "Errou"
			detail = fmt.Sprintf("O usuário marcou %s mas o correto era %s",
				pq.UserAnswer, pq.Question.CorrectKey)
		}
		fmt.Fprintf(&b, "Q%d: %s - TEMA: %s | ERRO: %s\n", i+1, outcome, topic, detail)
	}
	return strings.TrimRight(b.String(), "\n")
}
