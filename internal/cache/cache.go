// Package cache tracks which (pod, type) emissions are already
// up to date, so PodDriver can count unchanged types on a repeat run
// (it still writes every type's file). Backed by modernc.org/sqlite, a pure-Go driver, so
// fanxpy needs no cgo toolchain to build.
package cache

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Manifest is a content-hash cache keyed by (pod, type).
type Manifest struct {
	db *sql.DB
}

// Open creates or opens the sqlite manifest at path, creating its
// schema if absent.
func Open(path string) (*Manifest, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS emissions (
	pod TEXT NOT NULL,
	type TEXT NOT NULL,
	content_hash TEXT NOT NULL,
	PRIMARY KEY (pod, type)
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}
	return &Manifest{db: db}, nil
}

// Close releases the underlying database handle.
func (m *Manifest) Close() error {
	return m.db.Close()
}

// UpToDate reports whether (pod, type) was last recorded with exactly
// contentHash, meaning PodDriver counts the type as unchanged.
func (m *Manifest) UpToDate(pod, typ, contentHash string) (bool, error) {
	var existing string
	err := m.db.QueryRow(
		`SELECT content_hash FROM emissions WHERE pod = ? AND type = ?`, pod, typ,
	).Scan(&existing)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query cache: %w", err)
	}
	return existing == contentHash, nil
}

// Record upserts the content hash recorded for (pod, type).
func (m *Manifest) Record(pod, typ, contentHash string) error {
	_, err := m.db.Exec(
		`INSERT INTO emissions (pod, type, content_hash) VALUES (?, ?, ?)
		 ON CONFLICT (pod, type) DO UPDATE SET content_hash = excluded.content_hash`,
		pod, typ, contentHash,
	)
	if err != nil {
		return fmt.Errorf("record cache entry: %w", err)
	}
	return nil
}
