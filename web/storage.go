// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package web provides the web-document half of the helpers toolbelt.
package web

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// STORAGE
// =============================================================================

// Storage is a persistent JSON key-value store backed by SQLite.
// Keys are strings; values are stored as their JSON encoding.
//
// The store assumes single-writer-at-a-time semantics are provided by
// the underlying database; it adds no locking or transactions of its
// own beyond the single statement each call issues.
type Storage struct {
	db *sql.DB
}

const storageSchema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// OpenStorage opens (creating if necessary) a store at the given
// database path. The parent directory is created when missing.
func OpenStorage(path string) (*Storage, error) {
	if path == "" {
		return nil, errors.New("storage path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage database: %w", err)
	}
	if _, err := db.Exec(storageSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize storage schema: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SetJSON stores the JSON encoding of v under key. It returns false
// when v cannot be encoded (functions, channels, cycles) or when the
// write fails; the underlying error is not recoverable by the caller.
//
// Note the asymmetry with GetJSON, which propagates decode errors.
// The two halves of the pair drifted apart in the implementations this
// mirrors; the asymmetry is preserved for compatibility.
func (s *Storage) SetJSON(key string, v any) bool {
	if s == nil || s.db == nil || key == "" {
		return false
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return false
	}
	_, err = s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(encoded),
	)
	return err == nil
}

// GetJSON returns the decoded value stored under key, or (nil, nil)
// when the key is absent. A stored value that fails to decode
// propagates the decode error unmodified.
func (s *Storage) GetJSON(key string) (any, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("storage is not open")
	}
	var encoded string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&encoded)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	var v any
	if err := json.Unmarshal([]byte(encoded), &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Remove deletes the value stored under key. Removing an absent key is
// not an error.
func (s *Storage) Remove(key string) error {
	if s == nil || s.db == nil {
		return errors.New("storage is not open")
	}
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}

// Keys returns all keys currently present in the store.
func (s *Storage) Keys() ([]string, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("storage is not open")
	}
	rows, err := s.db.Query(`SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()
	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
