package store

import (
	"context"
	"encoding/json"
	"fmt"

	"zenstudy/internal/notebook"
)

// SaveNotebooks replaces the whole notebook collection in one
// transaction. Row order is preserved through the position column.
func (s *Store) SaveNotebooks(ctx context.Context, nbs []notebook.Notebook) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM notebooks`); err != nil {
		return fmt.Errorf("clear notebooks: %w", err)
	}

	for i, nb := range nbs {
		data, err := json.Marshal(nb)
		if err != nil {
			return fmt.Errorf("marshal notebook %s: %w", nb.ID, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO notebooks (id, position, data) VALUES (?, ?, ?)`,
			nb.ID, i, string(data))
		if err != nil {
			return fmt.Errorf("insert notebook %s: %w", nb.ID, err)
		}
	}

	return tx.Commit()
}

// LoadNotebooks returns the stored collection in saved order, or nil
// when nothing has been saved yet.
func (s *Store) LoadNotebooks(ctx context.Context) ([]notebook.Notebook, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT data FROM notebooks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query notebooks: %w", err)
	}
	defer rows.Close()

	var nbs []notebook.Notebook
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan notebook: %w", err)
		}
		var nb notebook.Notebook
		if err := json.Unmarshal([]byte(data), &nb); err != nil {
			return nil, fmt.Errorf("unmarshal notebook: %w", err)
		}
		nbs = append(nbs, nb)
	}
	return nbs, rows.Err()
}

// LoadOrSeedNotebooks returns the stored collection, seeding and saving
// the starter notebook when the store is empty or unreadable.
func (s *Store) LoadOrSeedNotebooks(ctx context.Context) ([]notebook.Notebook, error) {
	nbs, err := s.LoadNotebooks(ctx)
	if err == nil && len(nbs) > 0 {
		return nbs, nil
	}

	seed := notebook.Seed()
	if saveErr := s.SaveNotebooks(ctx, seed); saveErr != nil {
		return seed, fmt.Errorf("save seed notebooks: %w", saveErr)
	}
	return seed, nil
}
