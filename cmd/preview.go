package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"zenstudy/internal/llm"
	"zenstudy/internal/notebook"
	"zenstudy/internal/quiz"
	"zenstudy/internal/quizgen"
	"zenstudy/internal/store"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview AI-generated quiz questions (no database)",
	Long: `Generate and interactively answer quiz questions from ad-hoc flashcards.

This is a stateless developer tool. Nothing is saved: no notebooks, no stats,
no history. Useful for evaluating question quality and prompt changes.
Pass card pairs with repeated --card "question|answer" flags, or omit them
to use the starter notebook's cards.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringArray("card", nil, `Flashcard as "question|answer" (repeatable)`)
	previewCmd.Flags().Int("count", quizgen.DefaultConfig().QuestionCount, "Number of questions to generate")
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	pairs, _ := cmd.Flags().GetStringArray("card")
	count, _ := cmd.Flags().GetInt("count")

	cards, err := previewCards(pairs)
	if err != nil {
		return err
	}

	provider, err := llm.NewProviderFromEnv(ctx, store.NopCallLog{})
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	cfg := quizgen.DefaultConfig()
	cfg.QuestionCount = count
	gen := quizgen.NewGenerator(provider, cfg)

	fmt.Printf("Generating %d questions from %d cards with %s...\n\n",
		count, len(cards), provider.ModelID())

	questions, err := gen.Generate(ctx, cards)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	correct := 0
	for i, q := range questions {
		fmt.Printf("[%d/%d] %s\n", i+1, len(questions), q.Prompt)
		for _, key := range quiz.OptionKeys {
			fmt.Printf("  %s) %s\n", key, q.Options[key])
		}

		answer := readOption(reader)
		if answer == q.CorrectKey {
			correct++
			fmt.Println("Correto!")
		} else {
			fmt.Printf("Errado. Resposta: %s) %s\n", q.CorrectKey, q.Options[q.CorrectKey])
		}
		if q.Explanation != "" {
			fmt.Println(" ", q.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("Resultado: %d/%d\n", correct, len(questions))
	return nil
}

// previewCards parses --card pairs, falling back to the starter notebook.
func previewCards(pairs []string) ([]notebook.Flashcard, error) {
	if len(pairs) == 0 {
		return notebook.Seed()[0].Flashcards, nil
	}
	cards := make([]notebook.Flashcard, 0, len(pairs))
	for _, p := range pairs {
		q, a, ok := strings.Cut(p, "|")
		if !ok {
			return nil, fmt.Errorf("invalid --card %q: expected \"question|answer\"", p)
		}
		cards = append(cards, notebook.Flashcard{
			ID:        fmt.Sprintf("preview-%d", len(cards)+1),
			Question:  strings.TrimSpace(q),
			Answer:    strings.TrimSpace(a),
			CreatedAt: time.Now(),
			Mastery:   notebook.MasteryNew,
		})
	}
	return cards, nil
}

func readOption(reader *bufio.Reader) string {
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return ""
		}
		choice := strings.ToLower(strings.TrimSpace(line))
		for _, key := range quiz.OptionKeys {
			if choice == key {
				return choice
			}
		}
		fmt.Println("Responda com a, b, c, d ou e.")
	}
}
