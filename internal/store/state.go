package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// StateRecord is the single durable filtering-state row.
type StateRecord struct {
	Mode      string     `json:"mode"`
	Until     *time.Time `json:"until,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
	UpdatedBy string     `json:"updated_by,omitempty"`
}

// SeqEntry is one row of the state sequence log.
type SeqEntry struct {
	Seq   int64     `json:"seq"`
	Event string    `json:"event"`
	Actor string    `json:"actor,omitempty"`
	At    time.Time `json:"at"`
}

// DefaultMode is reported before any state was written.
const DefaultMode = "active"

// FilteringState reads the current state row. A fresh database reports
// the default mode.
func (s *Store) FilteringState(ctx context.Context) (StateRecord, error) {
	var rec StateRecord
	var until sql.NullInt64
	var updated int64
	err := s.db.QueryRowContext(ctx,
		`SELECT mode, until, updated_at, updated_by FROM filtering_state WHERE id = 1`).
		Scan(&rec.Mode, &until, &updated, &rec.UpdatedBy)
	if errors.Is(err, sql.ErrNoRows) {
		return StateRecord{Mode: DefaultMode}, nil
	}
	if err != nil {
		return StateRecord{}, fmt.Errorf("read filtering state: %w", err)
	}
	if until.Valid {
		t := fromNano(until.Int64)
		rec.Until = &t
	}
	rec.UpdatedAt = fromNano(updated)
	return rec, nil
}

// SetFilteringState writes the state row and appends exactly one entry to
// the sequence log in the same transaction. It returns the new sequence.
func (s *Store) SetFilteringState(ctx context.Context, rec StateRecord, event, actor string) (int64, error) {
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now()
	}
	var until any
	if rec.Until != nil {
		until = unixNano(*rec.Until)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin state write: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT INTO filtering_state (id, mode, until, updated_at, updated_by)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET mode = excluded.mode, until = excluded.until,
			updated_at = excluded.updated_at, updated_by = excluded.updated_by`,
		rec.Mode, until, unixNano(rec.UpdatedAt), actor); err != nil {
		return 0, fmt.Errorf("write filtering state: %w", err)
	}
	res, err := tx.ExecContext(ctx, `INSERT INTO state_seq (event, actor, ts) VALUES (?, ?, ?)`,
		event, actor, unixNano(rec.UpdatedAt))
	if err != nil {
		return 0, fmt.Errorf("append state sequence: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read state sequence: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit state write: %w", err)
	}
	return seq, nil
}

// CurrentSeq returns the highest sequence number, 0 when empty.
func (s *Store) CurrentSeq(ctx context.Context) (int64, error) {
	var seq sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(seq) FROM state_seq`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("read state sequence: %w", err)
	}
	return seq.Int64, nil
}

// SeqSince returns log entries after seq, oldest first.
func (s *Store) SeqSince(ctx context.Context, seq int64) ([]SeqEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, event, actor, ts FROM state_seq WHERE seq > ? ORDER BY seq`, seq)
	if err != nil {
		return nil, fmt.Errorf("query state sequence: %w", err)
	}
	defer rows.Close()
	var out []SeqEntry
	for rows.Next() {
		var e SeqEntry
		var ts int64
		if err := rows.Scan(&e.Seq, &e.Event, &e.Actor, &ts); err != nil {
			return nil, fmt.Errorf("scan state sequence: %w", err)
		}
		e.At = fromNano(ts)
		out = append(out, e)
	}
	return out, rows.Err()
}
