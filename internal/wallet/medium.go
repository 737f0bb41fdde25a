// Package wallet provides wallet-scoped key-value persistence for game
// state. Every read and write is namespaced by an opaque wallet identity so
// that no data leaks between wallets. Values are JSON-encoded strings over a
// pluggable Medium; the default durable medium is SQLite (pure Go driver),
// with a transparent in-memory fallback when the durable medium is
// unavailable.
package wallet

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Medium is a durable string-keyed storage backend.
// Implementations must be safe for concurrent use.
type Medium interface {
	// Get returns the raw value for key and whether it was present.
	Get(key string) (string, bool, error)

	// Set stores the raw value under key, overwriting any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Keys returns all stored keys that start with prefix.
	Keys(prefix string) ([]string, error)

	// Close releases any resources held by the medium.
	Close() error
}

// SQLiteMedium stores key-value pairs in a single SQLite table.
type SQLiteMedium struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite-backed medium at the given path.
// It creates parent directories as needed and runs schema migration.
func OpenSQLite(dbPath string) (*SQLiteMedium, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("wallet: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("wallet: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("wallet: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("wallet: cannot connect to database: %w", err)
	}

	m := &SQLiteMedium{db: db}
	if err := m.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("wallet: migration failed: %w", err)
	}

	return m, nil
}

// migrate creates the key-value schema if it doesn't exist.
func (m *SQLiteMedium) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		);
	`
	_, err := m.db.Exec(schema)
	return err
}

// Get returns the raw value for key and whether it was present.
func (m *SQLiteMedium) Get(key string) (string, bool, error) {
	var value string
	err := m.db.QueryRow("SELECT v FROM kv WHERE k = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("wallet: cannot read key %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores the raw value under key, overwriting any previous value.
func (m *SQLiteMedium) Set(key, value string) error {
	_, err := m.db.Exec(
		"INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("wallet: cannot write key %q: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (m *SQLiteMedium) Delete(key string) error {
	_, err := m.db.Exec("DELETE FROM kv WHERE k = ?", key)
	if err != nil {
		return fmt.Errorf("wallet: cannot delete key %q: %w", key, err)
	}
	return nil
}

// Keys returns all stored keys that start with prefix.
func (m *SQLiteMedium) Keys(prefix string) ([]string, error) {
	rows, err := m.db.Query(
		"SELECT k FROM kv WHERE k LIKE ? || '%' ORDER BY k",
		prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("wallet: cannot enumerate keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("wallet: cannot scan key row: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("wallet: key iteration error: %w", err)
	}
	return keys, nil
}

// Close closes the database connection.
func (m *SQLiteMedium) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

// MemoryMedium is a volatile in-process medium used when the durable medium
// is unavailable. Behavior matches SQLiteMedium except data does not survive
// process restart.
type MemoryMedium struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryMedium creates an empty in-memory medium.
func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{data: make(map[string]string)}
}

// Get returns the raw value for key and whether it was present.
func (m *MemoryMedium) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set stores the raw value under key.
func (m *MemoryMedium) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Delete removes key.
func (m *MemoryMedium) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Keys returns all stored keys that start with prefix.
func (m *MemoryMedium) Keys(prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.data {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// Close is a no-op for the in-memory medium.
func (m *MemoryMedium) Close() error {
	return nil
}
