package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Session attributes a client to a household profile until it expires.
type Session struct {
	ID         string    `json:"id"`
	Profile    string    `json:"profile"`
	Username   string    `json:"username,omitempty"`
	ClientAddr string    `json:"client_addr,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// SaveSession inserts or replaces a session.
func (s *Store) SaveSession(ctx context.Context, sess Session) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO sessions
		(id, profile, username, client_addr, created_at, expires_at) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET profile = excluded.profile, username = excluded.username,
			client_addr = excluded.client_addr, expires_at = excluded.expires_at`,
		sess.ID, sess.Profile, sess.Username, sess.ClientAddr, unixNano(sess.CreatedAt), unixNano(sess.ExpiresAt))
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Session returns the session with id.
func (s *Store) Session(ctx context.Context, id string) (Session, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, profile, username, client_addr, created_at, expires_at
		FROM sessions WHERE id = ?`, id)
	return scanSession(row)
}

// ListSessions returns sessions unexpired at now.
func (s *Store) ListSessions(ctx context.Context, now time.Time) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, profile, username, client_addr, created_at, expires_at
		FROM sessions WHERE expires_at > ? ORDER BY created_at`, unixNano(now))
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()
	var out []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

// DeleteSession removes one session.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions removes sessions expired at now.
func (s *Store) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, unixNano(now))
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (Session, error) {
	var sess Session
	var created, expires int64
	err := row.Scan(&sess.ID, &sess.Profile, &sess.Username, &sess.ClientAddr, &created, &expires)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("scan session: %w", err)
	}
	sess.CreatedAt = fromNano(created)
	sess.ExpiresAt = fromNano(expires)
	return sess, nil
}
