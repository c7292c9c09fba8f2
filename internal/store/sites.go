package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ppiankov/chatwarden/internal/sites"
)

var _ sites.Persister = (*Store)(nil)

// LoadSites returns custom entries and disabled bundled patterns.
func (s *Store) LoadSites(ctx context.Context) ([]sites.Entry, []string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT pattern, display_name, category, parser_id, enabled, priority FROM custom_sites ORDER BY pattern`)
	if err != nil {
		return nil, nil, fmt.Errorf("query custom sites: %w", err)
	}
	var custom []sites.Entry
	for rows.Next() {
		var e sites.Entry
		var enabled int
		if err := rows.Scan(&e.Pattern, &e.DisplayName, &e.Category, &e.ParserID, &enabled, &e.Priority); err != nil {
			rows.Close()
			return nil, nil, fmt.Errorf("scan custom site: %w", err)
		}
		e.Enabled = enabled == 1
		e.Source = sites.SourceCustom
		custom = append(custom, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	drows, err := s.db.QueryContext(ctx, `SELECT pattern FROM disabled_sites ORDER BY pattern`)
	if err != nil {
		return nil, nil, fmt.Errorf("query disabled sites: %w", err)
	}
	defer drows.Close()
	var disabled []string
	for drows.Next() {
		var p string
		if err := drows.Scan(&p); err != nil {
			return nil, nil, fmt.Errorf("scan disabled site: %w", err)
		}
		disabled = append(disabled, p)
	}
	return custom, disabled, drows.Err()
}

// SaveCustomSite inserts or replaces a custom entry.
func (s *Store) SaveCustomSite(ctx context.Context, e sites.Entry) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO custom_sites
		(pattern, display_name, category, parser_id, enabled, priority, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(pattern) DO UPDATE SET display_name = excluded.display_name,
			category = excluded.category, parser_id = excluded.parser_id,
			enabled = excluded.enabled, priority = excluded.priority`,
		e.Pattern, e.DisplayName, e.Category, e.ParserID, boolToInt(e.Enabled), e.Priority, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("save custom site: %w", err)
	}
	return nil
}

// DeleteCustomSite removes a custom entry.
func (s *Store) DeleteCustomSite(ctx context.Context, pattern string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM custom_sites WHERE pattern = ?`, pattern)
	if err != nil {
		return fmt.Errorf("delete custom site: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("custom site %s: %w", pattern, ErrNotFound)
	}
	return nil
}

// SetSiteDisabled records or clears the disable of a bundled pattern.
func (s *Store) SetSiteDisabled(ctx context.Context, pattern string, disabled bool) error {
	var err error
	if disabled {
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO disabled_sites (pattern, disabled_at) VALUES (?, ?) ON CONFLICT(pattern) DO NOTHING`,
			pattern, time.Now().UnixNano())
	} else {
		_, err = s.db.ExecContext(ctx, `DELETE FROM disabled_sites WHERE pattern = ?`, pattern)
	}
	if err != nil {
		return fmt.Errorf("set site disabled: %w", err)
	}
	return nil
}
