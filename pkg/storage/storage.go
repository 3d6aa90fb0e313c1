// Package storage is the local, per-viewer contact-status store: a
// mapping from record identifier to the millisecond timestamp the
// viewer marked it contacted. The ingestion pipeline never writes it.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite"
)

type Store struct {
	sql *sql.DB
}

func Open(path string) (*Store, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	// Ensure schema exists for convenience.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS contacted (
  identifier   TEXT PRIMARY KEY,
  contacted_at INTEGER NOT NULL
);
	`); err != nil {
		return nil, err
	}
	return &Store{sql: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sql == nil {
		return nil
	}
	return s.sql.Close()
}

// Mark records that a company was contacted at the given time.
// Marking again overwrites the timestamp.
func (s *Store) Mark(ctx context.Context, identifier string, at time.Time) error {
	_, err := s.sql.ExecContext(ctx,
		`INSERT INTO contacted(identifier, contacted_at) VALUES(?, ?)
		 ON CONFLICT(identifier) DO UPDATE SET contacted_at = excluded.contacted_at`,
		identifier, at.UnixMilli())
	return err
}

// Unmark clears the contacted status. Unmarking an unknown identifier
// is a no-op.
func (s *Store) Unmark(ctx context.Context, identifier string) error {
	_, err := s.sql.ExecContext(ctx, `DELETE FROM contacted WHERE identifier = ?`, identifier)
	return err
}

func (s *Store) IsContacted(ctx context.Context, identifier string) (bool, error) {
	var n int
	err := s.sql.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacted WHERE identifier = ?`, identifier).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ContactedMap returns the full identifier -> millisecond-timestamp
// mapping. Absence of a key means "not contacted".
func (s *Store) ContactedMap(ctx context.Context) (map[string]int64, error) {
	rows, err := s.sql.QueryContext(ctx, `SELECT identifier, contacted_at FROM contacted`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var id string
		var at int64
		if err := rows.Scan(&id, &at); err != nil {
			return nil, err
		}
		out[id] = at
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.sql.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacted`).Scan(&n)
	return n, err
}

// ExportJSON serializes the store as a flat JSON object mapping
// identifier to millisecond timestamp.
func (s *Store) ExportJSON(ctx context.Context) ([]byte, error) {
	m, err := s.ContactedMap(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(m, "", "  ")
}

// ImportJSON merges an exported JSON object into the store, replacing
// timestamps for identifiers already present.
func (s *Store) ImportJSON(ctx context.Context, data []byte) error {
	var m map[string]int64
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	tx, err := s.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for id, at := range m {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO contacted(identifier, contacted_at) VALUES(?, ?)
			 ON CONFLICT(identifier) DO UPDATE SET contacted_at = excluded.contacted_at`,
			id, at); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
