package quizgen

import (
	"fmt"

	"zenstudy/internal/llm"
)

// QuizSchema builds the JSON schema for a quiz generation response
// with exactly count questions. Field names follow the PT-BR exam
// vocabulary used in the prompts. The name carries the count because
// compiled schemas are cached by name.
func QuizSchema(count int) *llm.Schema {
	return &llm.Schema{
		Name:        fmt.Sprintf("quiz-questions-%d", count),
		Description: "A multiple-choice mock exam generated from flashcards",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type":     "array",
					"minItems": count,
					"maxItems": count,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"banca": map[string]any{
								"type":        "string",
								"description": "Exam board style the question imitates",
							},
							"tema": map[string]any{
								"type":        "string",
								"description": "Topic label used for performance analytics",
							},
							"enunciado": map[string]any{
								"type":        "string",
								"description": "The question statement",
							},
							"opcoes": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"a": map[string]any{"type": "string"},
									"b": map[string]any{"type": "string"},
									"c": map[string]any{"type": "string"},
									"d": map[string]any{"type": "string"},
									"e": map[string]any{"type": "string"},
								},
								"required":             []any{"a", "b", "c", "d", "e"},
								"additionalProperties": false,
							},
							"respostaCorreta": map[string]any{
								"type": "string",
								"enum": []any{"a", "b", "c", "d", "e"},
							},
							"explicacao": map[string]any{
								"type":        "string",
								"description": "Why the correct option is right",
							},
						},
						"required":             []any{"banca", "tema", "enunciado", "opcoes", "respostaCorreta", "explicacao"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"questions"},
			"additionalProperties": false,
		},
	}
}
