package cmd

import (
	"fmt"
	"os"

	"zenstudy/internal/app"
	"zenstudy/internal/llm"
	"zenstudy/internal/quizgen"
	"zenstudy/internal/screen"
	"zenstudy/internal/screens/notebooks"
	"zenstudy/internal/store"

	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Ir direto para a revisão de flashcards",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		state, err := app.LoadState(ctx, st)
		if err != nil {
			return fmt.Errorf("load state: %w", err)
		}

		provider, err := llm.NewProviderFromEnv(ctx, st)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			provider = llm.NewMockProvider()
		}

		cfg := quizgen.DefaultConfig()
		generator := quizgen.NewGenerator(provider, cfg)
		explainer := quizgen.NewExplainer(provider, cfg)
		analyzer := quizgen.NewAnalyzer(provider, cfg)

		return app.Run(app.Options{
			State: state,
			HomeFactory: func() screen.Screen {
				return notebooks.New(state, notebooks.ModeStudy, explainer, generator, analyzer)
			},
		})
	},
}
