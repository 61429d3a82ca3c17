package cmd

import (
	"context"
	"fmt"
	"strings"

	"zenstudy/internal/notebook"
	"zenstudy/internal/store"

	"github.com/spf13/cobra"
)

var notebooksCmd = &cobra.Command{
	Use:   "notebooks",
	Short: "List and edit notebooks",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		nbs, err := s.LoadNotebooks(context.Background())
		if err != nil {
			return fmt.Errorf("load notebooks: %w", err)
		}
		if len(nbs) == 0 {
			fmt.Println("No notebooks yet. Run `zenstudy` to create the starter notebook.")
			return nil
		}

		fmt.Printf("%-14s  %-30s  %6s  %5s\n", "ID", "Name", "Cards", "Docs")
		fmt.Println(strings.Repeat("─", 62))
		for _, nb := range nbs {
			name := nb.Name
			if len(name) > 30 {
				name = name[:30]
			}
			fmt.Printf("%-14s  %-30s  %6d  %5d\n", nb.ID, name, len(nb.Flashcards), len(nb.Documents))
		}
		return nil
	},
}

var notebooksCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an empty notebook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("notebook name cannot be empty")
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		nbs, err := s.LoadNotebooks(ctx)
		if err != nil {
			return fmt.Errorf("load notebooks: %w", err)
		}
		if _, ok := notebook.Find(nbs, name); ok {
			return fmt.Errorf("notebook %q already exists", name)
		}

		nb := notebook.NewNotebook(name)
		nbs = append(nbs, nb)
		if err := s.SaveNotebooks(ctx, nbs); err != nil {
			return fmt.Errorf("save notebooks: %w", err)
		}

		fmt.Printf("Created notebook %q (%s)\n", nb.Name, nb.ID)
		return nil
	},
}

var notebooksAddCmd = &cobra.Command{
	Use:   "add <notebook>",
	Short: "Add flashcards to a notebook",
	Long: `Add plain-text flashcards to an existing notebook.

The notebook may be referenced by id or name. Pass cards with repeated
--card "question|answer" flags.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, _ := cmd.Flags().GetStringArray("card")
		if len(pairs) == 0 {
			return fmt.Errorf("pass at least one --card \"question|answer\"")
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		nbs, err := s.LoadOrSeedNotebooks(ctx)
		if err != nil {
			return fmt.Errorf("load notebooks: %w", err)
		}
		nb, ok := notebook.Find(nbs, args[0])
		if !ok {
			return fmt.Errorf("notebook %q not found, run `zenstudy notebooks`", args[0])
		}

		for _, p := range pairs {
			q, a, cut := strings.Cut(p, "|")
			q, a = strings.TrimSpace(q), strings.TrimSpace(a)
			if !cut || q == "" || a == "" {
				return fmt.Errorf("invalid --card %q: expected \"question|answer\"", p)
			}
			nb.AddFlashcard(q, a)
		}
		if err := s.SaveNotebooks(ctx, nbs); err != nil {
			return fmt.Errorf("save notebooks: %w", err)
		}

		fmt.Printf("Added %d card(s) to %q (%d total)\n", len(pairs), nb.Name, len(nb.Flashcards))
		return nil
	},
}

func init() {
	notebooksAddCmd.Flags().StringArray("card", nil, `Flashcard as "question|answer" (repeatable)`)
	notebooksCmd.AddCommand(notebooksCreateCmd, notebooksAddCmd)
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
