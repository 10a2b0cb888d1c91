package main

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"
)

const (
	prefKeySidebarOpen  = "sidebar_open"
	prefKeyItemsPerPage = "items_per_page"
)

// prefStore is a typed key-value wrapper over a sqlite table in the user
// config dir. Reads that fail type coercion report absence instead of an
// error; writes are fire-and-forget with no cross-key guarantee.
type prefStore struct {
	db   *sql.DB
	path string
}

func openPrefStore() (*prefStore, error) {
	dir := resolveConfigDir()
	if err := ensureDir(dir); err != nil {
		return nil, err
	}
	sqlitePath := filepath.Join(dir, "prefs.sqlite")
	return openPrefStoreAt(sqlitePath)
}

func openPrefStoreAt(sqlitePath string) (*prefStore, error) {
	db, err := sql.Open("sqlite", sqlitePath)
	if err != nil {
		return nil, err
	}
	if err := migratePrefStore(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &prefStore{db: db, path: sqlitePath}, nil
}

func migratePrefStore(db *sql.DB) error {
	statements := []string{
		`PRAGMA journal_mode=WAL;`,
		`CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL DEFAULT ''
		);`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("preference store migration failed: %w", err)
		}
	}
	return nil
}

func (s *prefStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *prefStore) getString(key string) (string, bool) {
	if s == nil || s.db == nil {
		return "", false
	}
	var value string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (s *prefStore) setString(key, value string) {
	if s == nil || s.db == nil {
		return
	}
	_, _ = s.db.Exec(`INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
}

// GetInt reads an integer preference. A stored value that does not parse
// is treated as absent and left untouched.
func (s *prefStore) GetInt(key string) (int, bool) {
	raw, ok := s.getString(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s *prefStore) SetInt(key string, value int) {
	s.setString(key, strconv.Itoa(value))
}

// GetBool reads a boolean stored as "0"/"1". Any other value is absent.
func (s *prefStore) GetBool(key string) (bool, bool) {
	raw, ok := s.getString(key)
	if !ok {
		return false, false
	}
	switch raw {
	case "1":
		return true, true
	case "0":
		return false, true
	default:
		return false, false
	}
}

func (s *prefStore) SetBool(key string, value bool) {
	if value {
		s.setString(key, "1")
	} else {
		s.setString(key, "0")
	}
}
