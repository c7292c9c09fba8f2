package store

import (
	"context"
	"fmt"
	"time"
)

// Event is one privacy-preserving record of an inspected request. The
// prompt itself is never stored, only its hash and a redacted preview.
type Event struct {
	ID         string        `json:"id"`
	Timestamp  time.Time     `json:"timestamp"`
	Host       string        `json:"host"`
	Service    string        `json:"service"`
	Profile    string        `json:"profile,omitempty"`
	PromptHash string        `json:"prompt_hash"`
	Preview    string        `json:"preview,omitempty"`
	Category   string        `json:"category,omitempty"`
	Confidence float32       `json:"confidence"`
	Action     string        `json:"action"`
	Source     string        `json:"source"`
	Tier       int           `json:"tier,omitempty"`
	Duration   time.Duration `json:"duration"`
	Mode       string        `json:"mode,omitempty"`
}

// EventStats summarizes events since a point in time.
type EventStats struct {
	Total      int64            `json:"total"`
	ByAction   map[string]int64 `json:"by_action"`
	ByCategory map[string]int64 `json:"by_category"`
}

// RecordEvent appends an event.
func (s *Store) RecordEvent(ctx context.Context, e Event) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO events
		(id, ts, host, service, profile, prompt_hash, preview, category, confidence, action, source, tier, duration_us, mode)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, unixNano(e.Timestamp), e.Host, e.Service, e.Profile, e.PromptHash, e.Preview,
		e.Category, float64(e.Confidence), e.Action, e.Source, e.Tier, e.Duration.Microseconds(), e.Mode,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// RecentEvents returns up to limit events, newest first.
func (s *Store) RecentEvents(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `SELECT
		id, ts, host, service, profile, prompt_hash, preview, category, confidence, action, source, tier, duration_us, mode
		FROM events ORDER BY ts DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		var ts, durUS int64
		var conf float64
		if err := rows.Scan(&e.ID, &ts, &e.Host, &e.Service, &e.Profile, &e.PromptHash, &e.Preview,
			&e.Category, &conf, &e.Action, &e.Source, &e.Tier, &durUS, &e.Mode); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Timestamp = fromNano(ts)
		e.Confidence = float32(conf)
		e.Duration = time.Duration(durUS) * time.Microsecond
		out = append(out, e)
	}
	return out, rows.Err()
}

// EventStats counts events at or after since.
func (s *Store) EventStats(ctx context.Context, since time.Time) (EventStats, error) {
	st := EventStats{ByAction: map[string]int64{}, ByCategory: map[string]int64{}}
	rows, err := s.db.QueryContext(ctx,
		`SELECT action, category, COUNT(*) FROM events WHERE ts >= ? GROUP BY action, category`,
		unixNano(since))
	if err != nil {
		return st, fmt.Errorf("query event stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var action, category string
		var n int64
		if err := rows.Scan(&action, &category, &n); err != nil {
			return st, fmt.Errorf("scan event stats: %w", err)
		}
		st.Total += n
		st.ByAction[action] += n
		if category != "" {
			st.ByCategory[category] += n
		}
	}
	return st, rows.Err()
}

// PruneEvents deletes events older than before and returns how many.
func (s *Store) PruneEvents(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE ts < ?`, unixNano(before))
	if err != nil {
		return 0, fmt.Errorf("prune events: %w", err)
	}
	return res.RowsAffected()
}
