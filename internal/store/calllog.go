package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMCallRecord captures one request to an LLM provider.
type LLMCallRecord struct {
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	Success      bool
	InputTokens  int
	OutputTokens int
	RequestBody  string
	ResponseBody string
	ErrorMessage string
}

// CallLog receives LLM call records. The llm package logs through this
// interface so it never depends on the concrete store.
type CallLog interface {
	AppendLLMCall(ctx context.Context, rec LLMCallRecord) error
}

// AppendLLMCall writes one call record to the llm_calls table.
func (s *Store) AppendLLMCall(ctx context.Context, rec LLMCallRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_calls
		 (created_at, provider, model, purpose, latency_ms, success,
		  input_tokens, output_tokens, request_body, response_body, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), rec.Provider, rec.Model, rec.Purpose,
		rec.LatencyMs, rec.Success,
		rec.InputTokens, rec.OutputTokens,
		rec.RequestBody, rec.ResponseBody, rec.ErrorMessage)
	if err != nil {
		return fmt.Errorf("append llm call: %w", err)
	}
	return nil
}

// CountLLMCalls reports how many calls have been logged, split by
// success. Used by the stats command.
func (s *Store) CountLLMCalls(ctx context.Context) (succeeded, failed int, err error) {
	err = s.db.QueryRowContext(ctx,
		`SELECT
		   COALESCE(SUM(CASE WHEN success THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN success THEN 0 ELSE 1 END), 0)
		 FROM llm_calls`).Scan(&succeeded, &failed)
	if err != nil {
		return 0, 0, fmt.Errorf("count llm calls: %w", err)
	}
	return succeeded, failed, nil
}

// LLMCallRow is a stored call record with its database identity.
type LLMCallRow struct {
	ID        int64
	CreatedAt time.Time
	LLMCallRecord
}

// ListLLMCalls returns the most recent call records, newest first.
func (s *Store) ListLLMCalls(ctx context.Context, limit int) ([]LLMCallRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, provider, model, purpose, latency_ms, success,
		        input_tokens, output_tokens, request_body, response_body, error_message
		 FROM llm_calls ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list llm calls: %w", err)
	}
	defer rows.Close()

	var out []LLMCallRow
	for rows.Next() {
		var r LLMCallRow
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Provider, &r.Model, &r.Purpose,
			&r.LatencyMs, &r.Success, &r.InputTokens, &r.OutputTokens,
			&r.RequestBody, &r.ResponseBody, &r.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan llm call: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetLLMCall returns one call record by ID, or nil when it does not exist.
func (s *Store) GetLLMCall(ctx context.Context, id int64) (*LLMCallRow, error) {
	var r LLMCallRow
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, provider, model, purpose, latency_ms, success,
		        input_tokens, output_tokens, request_body, response_body, error_message
		 FROM llm_calls WHERE id = ?`, id).
		Scan(&r.ID, &r.CreatedAt, &r.Provider, &r.Model, &r.Purpose,
			&r.LatencyMs, &r.Success, &r.InputTokens, &r.OutputTokens,
			&r.RequestBody, &r.ResponseBody, &r.ErrorMessage)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get llm call: %w", err)
	}
	return &r, nil
}

// LLMUsage aggregates token counts per purpose.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMCallUsage aggregates logged calls by purpose.
func (s *Store) LLMCallUsage(ctx context.Context) ([]LLMUsage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT purpose, COUNT(*), COALESCE(SUM(input_tokens), 0),
		        COALESCE(SUM(output_tokens), 0), COALESCE(AVG(latency_ms), 0)
		 FROM llm_calls GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("llm usage: %w", err)
	}
	defer rows.Close()

	var out []LLMUsage
	for rows.Next() {
		var u LLMUsage
		var avg float64
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &avg); err != nil {
			return nil, fmt.Errorf("scan llm usage: %w", err)
		}
		u.AvgLatencyMs = int64(avg)
		out = append(out, u)
	}
	return out, rows.Err()
}

// NopCallLog discards records. Useful in tests and commands that never
// reach the network.
type NopCallLog struct{}

func (NopCallLog) AppendLLMCall(context.Context, LLMCallRecord) error { return nil }
