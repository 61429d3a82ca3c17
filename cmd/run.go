package cmd

import (
	"fmt"
	"os"

	"zenstudy/internal/app"
	"zenstudy/internal/llm"
	"zenstudy/internal/quizgen"
	"zenstudy/internal/screen"
	"zenstudy/internal/screens/home"
	"zenstudy/internal/store"

	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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
		fmt.Fprintln(os.Stderr, "Quiz generation will be unavailable.")
		provider = llm.NewMockProvider()
	}

	cfg := quizgen.DefaultConfig()
	generator := quizgen.NewGenerator(provider, cfg)
	explainer := quizgen.NewExplainer(provider, cfg)
	analyzer := quizgen.NewAnalyzer(provider, cfg)

	return app.Run(app.Options{
		State: state,
		HomeFactory: func() screen.Screen {
			return home.New(state, generator, explainer, analyzer)
		},
	})
}
