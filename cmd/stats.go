package cmd

import (
	"context"
	"fmt"
	"strings"

	"zenstudy/internal/analytics"
	"zenstudy/internal/store"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		us, err := s.LoadStats(ctx)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		if us == nil {
			fmt.Println("No study activity recorded yet.")
			return nil
		}

		sep := strings.Repeat("─", 44)

		fmt.Println("Today")
		fmt.Println(sep)
		fmt.Printf("Cards reviewed:      %d / %d\n", us.CardsReviewedToday, us.DailyCardTarget())
		fmt.Printf("Questions answered:  %d / %d\n", us.QuestionsAnsweredToday, us.DailyQuestionGoal)
		fmt.Println()

		fmt.Println("All time")
		fmt.Println(sep)
		fmt.Printf("Streak:              %d day(s)\n", us.StreakDays)
		fmt.Printf("Total reviews:       %d\n", us.TotalReviews)
		fmt.Printf("Quiz sessions:       %d\n", len(us.QuizHistory))
		if best := analytics.BestAccuracy(us.QuizHistory); len(us.QuizHistory) > 0 {
			fmt.Printf("Best accuracy:       %.0f%%\n", best*100)
		}

		succeeded, failed, err := s.CountLLMCalls(ctx)
		if err != nil {
			return fmt.Errorf("count llm calls: %w", err)
		}
		if succeeded+failed > 0 {
			fmt.Println()
			fmt.Println("LLM")
			fmt.Println(sep)
			fmt.Printf("Calls:               %d ok, %d failed\n", succeeded, failed)
		}
		return nil
	},
}
