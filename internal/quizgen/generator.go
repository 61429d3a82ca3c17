package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"zenstudy/internal/llm"
	"zenstudy/internal/notebook"
	"zenstudy/internal/quiz"
)

const generatorSystemPrompt = `Você é um Especialista em Concursos.
Crie um simulado de múltipla escolha (A até E) baseado exclusivamente nos
flashcards fornecidos. Cada questão deve ter exatamente cinco opções, uma
única correta, um tema curto e uma explicação objetiva. Responda APENAS o
JSON conforme o esquema.`

// Generator turns a flashcard corpus into a multiple-choice quiz of
// Config.QuestionCount questions.
type Generator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates a Generator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// quizOutput is the raw LLM response before validation.
type quizOutput struct {
	Questions []struct {
		Banca           string            `json:"banca"`
		Tema            string            `json:"tema"`
		Enunciado       string            `json:"enunciado"`
		Opcoes          map[string]string `json:"opcoes"`
		RespostaCorreta string            `json:"respostaCorreta"`
		Explicacao      string            `json:"explicacao"`
	} `json:"questions"`
}

// Generate produces the quiz questions for the given flashcards.
// At most MaxCards cards are sent, with markup stripped to plain text.
// A malformed or incomplete response fails the whole generation.
func (g *Generator) Generate(ctx context.Context, cards []notebook.Flashcard) ([]quiz.Question, error) {
	if len(cards) == 0 {
		return nil, ErrNoCards
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeQuizGen)

	req := llm.Request{
		System: generatorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: g.buildUserMessage(cards)},
		},
		Schema:      QuizSchema(g.config.QuestionCount),
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{Err: fmt.Errorf("parse response: %w", err)}
	}

	questions, err := g.convert(raw)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}
	return questions, nil
}

// buildUserMessage formats the flashcard corpus for the prompt.
func (g *Generator) buildUserMessage(cards []notebook.Flashcard) string {
	if g.config.MaxCards > 0 && len(cards) > g.config.MaxCards {
		cards = cards[:g.config.MaxCards]
	}

	var b strings.Builder
	b.WriteString("Flashcards:\n")
	for i, card := range cards {
		fmt.Fprintf(&b, "FC%d: P: %s | R: %s\n",
			i+1, notebook.PlainText(card.Question), notebook.PlainText(card.Answer))
	}
	fmt.Fprintf(&b, "\nGere %d questões.", g.config.QuestionCount)
	return b.String()
}

// convert checks the raw output and maps it onto quiz questions.
func (g *Generator) convert(raw quizOutput) ([]quiz.Question, error) {
	if len(raw.Questions) != g.config.QuestionCount {
		return nil, fmt.Errorf("got %d questions, want %d", len(raw.Questions), g.config.QuestionCount)
	}

	questions := make([]quiz.Question, 0, len(raw.Questions))
	for i, q := range raw.Questions {
		if q.Enunciado == "" {
			return nil, fmt.Errorf("question %d: empty statement", i+1)
		}
		options := make(map[string]string, len(quiz.OptionKeys))
		for _, key := range quiz.OptionKeys {
			text, ok := q.Opcoes[key]
			if !ok || text == "" {
				return nil, fmt.Errorf("question %d: missing option %q", i+1, key)
			}
			options[key] = text
		}
		if _, ok := options[q.RespostaCorreta]; !ok {
			return nil, fmt.Errorf("question %d: correct key %q not among options", i+1, q.RespostaCorreta)
		}
		questions = append(questions, quiz.Question{
			SourceLabel: q.Banca,
			Topic:       q.Tema,
			Prompt:      q.Enunciado,
			Options:     options,
			CorrectKey:  q.RespostaCorreta,
			Explanation: q.Explicacao,
		})
	}
	return questions, nil
}
