package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"zenstudy/internal/stats"
)

// SaveStats replaces the single stats record.
func (s *Store) SaveStats(ctx context.Context, us *stats.UserStats) error {
	data, err := json.Marshal(us)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO user_stats (id, data) VALUES (1, ?)
		 ON CONFLICT (id) DO UPDATE SET data = excluded.data`,
		string(data))
	if err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}

// LoadStats returns the stored stats record, or nil when none exists.
func (s *Store) LoadStats(ctx context.Context) (*stats.UserStats, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM user_stats WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}

	var us stats.UserStats
	if err := json.Unmarshal([]byte(data), &us); err != nil {
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}
	return &us, nil
}

// LoadOrSeedStats returns the stored stats, falling back to a fresh
// default record (persisted immediately) when none exists.
func (s *Store) LoadOrSeedStats(ctx context.Context) (*stats.UserStats, error) {
	us, err := s.LoadStats(ctx)
	if err == nil && us != nil {
		return us, nil
	}

	fresh := stats.NewUserStats()
	if saveErr := s.SaveStats(ctx, fresh); saveErr != nil {
		return fresh, fmt.Errorf("save seed stats: %w", saveErr)
	}
	return fresh, nil
}
