// Package store persists events, filtering state, the state sequence log,
// site registry changes, and sessions in a local SQLite database.
//
// Several processes share one database file: the proxy reads it, the CLI
// and admin surfaces write it. WAL mode and a busy timeout keep them from
// tripping over each other.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a keyed row does not exist.
var ErrNotFound = errors.New("not found")

// FileName is the database file inside the data directory.
const FileName = "chatwarden.db"

// Store wraps the database handle.
type Store struct {
	db   *sql.DB
	path string
}

var migrations = []string{
	`CREATE TABLE events (
		id          TEXT PRIMARY KEY,
		ts          INTEGER NOT NULL,
		host        TEXT NOT NULL,
		service     TEXT NOT NULL,
		profile     TEXT NOT NULL DEFAULT '',
		prompt_hash TEXT NOT NULL,
		preview     TEXT NOT NULL DEFAULT '',
		category    TEXT NOT NULL DEFAULT '',
		confidence  REAL NOT NULL DEFAULT 0,
		action      TEXT NOT NULL,
		source      TEXT NOT NULL,
		tier        INTEGER NOT NULL DEFAULT 0,
		duration_us INTEGER NOT NULL DEFAULT 0,
		mode        TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX events_ts ON events(ts);
	CREATE TABLE filtering_state (
		id         INTEGER PRIMARY KEY CHECK (id = 1),
		mode       TEXT NOT NULL,
		until      INTEGER,
		updated_at INTEGER NOT NULL,
		updated_by TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE state_seq (
		seq   INTEGER PRIMARY KEY AUTOINCREMENT,
		event TEXT NOT NULL,
		actor TEXT NOT NULL DEFAULT '',
		ts    INTEGER NOT NULL
	);
	CREATE TABLE custom_sites (
		pattern      TEXT PRIMARY KEY,
		display_name TEXT NOT NULL,
		category     TEXT NOT NULL DEFAULT '',
		parser_id    TEXT NOT NULL DEFAULT '',
		enabled      INTEGER NOT NULL DEFAULT 1,
		priority     INTEGER NOT NULL DEFAULT 0,
		created_at   INTEGER NOT NULL
	);
	CREATE TABLE disabled_sites (
		pattern     TEXT PRIMARY KEY,
		disabled_at INTEGER NOT NULL
	);
	CREATE TABLE sessions (
		id          TEXT PRIMARY KEY,
		profile     TEXT NOT NULL,
		username    TEXT NOT NULL DEFAULT '',
		client_addr TEXT NOT NULL DEFAULT '',
		created_at  INTEGER NOT NULL,
		expires_at  INTEGER NOT NULL
	);
	CREATE INDEX sessions_client ON sessions(client_addr);`,
}

// Open opens or creates the database at path and applies migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "synchronous(NORMAL)")
	db, err := sql.Open("sqlite", "file:"+path+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &Store{db: db, path: path}
	if err := s.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path is the database file.
func (s *Store) Path() string { return s.path }

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("create schema_version: %w", err)
	}
	var version int
	err := s.db.QueryRowContext(ctx, `SELECT version FROM schema_version LIMIT 1`).Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := s.db.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES (0)`); err != nil {
			return fmt.Errorf("init schema_version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read schema_version: %w", err)
	}

	for i := version; i < len(migrations); i++ {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", i+1, err)
		}
		if _, err := tx.ExecContext(ctx, migrations[i]); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
		if _, err := tx.ExecContext(ctx, `UPDATE schema_version SET version = ?`, i+1); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", i+1, err)
		}
	}
	return nil
}

// SchemaVersion reports the applied migration count.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	err := s.db.QueryRowContext(ctx, `SELECT version FROM schema_version LIMIT 1`).Scan(&v)
	return v, err
}

func unixNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromNano(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
