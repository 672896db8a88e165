package kvstore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/heyojules/flippr/internal/kvstore/migrate"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "modernc.org/sqlite"
)

// SQL stores key-value entries in a single table of a DuckDB or SQLite
// database.
type SQL struct {
	db     *sql.DB
	mu     sync.RWMutex
	driver string
	path   string
}

// OpenSQL opens or creates the database at path using driver ("duckdb" or
// "sqlite") and applies pending migrations. An empty path gives an in-memory
// DuckDB database; SQLite requires a path.
func OpenSQL(driver, path string) (*SQL, error) {
	switch driver {
	case DriverDuckDB, DriverSQLite:
	default:
		return nil, fmt.Errorf("kvstore: unsupported sql driver %q", driver)
	}
	if path == "" && driver == DriverSQLite {
		return nil, errors.New("kvstore: sqlite requires a path")
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), defaultDirMode); err != nil {
			return nil, fmt.Errorf("kvstore: mkdir: %w", err)
		}
	}

	db, err := sql.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("kvstore: open %s: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("kvstore: ping %s: %w", driver, err)
	}
	if _, err := migrate.NewRunner(db).Run(); err != nil {
		db.Close()
		return nil, fmt.Errorf("kvstore: migrate: %w", err)
	}

	return &SQL{db: db, driver: driver, path: path}, nil
}

// Get returns the value stored under key.
func (s *SQL) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow("SELECT payload FROM kv WHERE name = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kvstore: get %q: %w", key, err)
	}
	return value, true, nil
}

// Set upserts value under key.
func (s *SQL) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO kv (name, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("kvstore: set %q: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQL) Close() error {
	return s.db.Close()
}

// Driver returns the database/sql driver name in use.
func (s *SQL) Driver() string {
	return s.driver
}

// Path returns the database file, "" for in-memory DuckDB.
func (s *SQL) Path() string {
	return s.path
}
