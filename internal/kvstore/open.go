package kvstore

import (
	"fmt"

	"github.com/heyojules/flippr/internal/model"
)

// Supported store drivers.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverDuckDB = "duckdb"
	DriverMemory = "memory"
)

// Drivers lists every driver accepted by Open.
var Drivers = []string{DriverFile, DriverSQLite, DriverDuckDB, DriverMemory}

// Open returns the store selected by driver. path is ignored for memory.
func Open(driver, path string) (model.KV, error) {
	switch driver {
	case DriverFile:
		f, err := OpenFile(path)
		if err != nil {
			return nil, err
		}
		return f, nil
	case DriverSQLite, DriverDuckDB:
		s, err := OpenSQL(driver, path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("kvstore: unknown driver %q", driver)
	}
}

// Describe names the backend behind kv and where it lives, for logs.
func Describe(kv model.KV) string {
	switch s := kv.(type) {
	case *File:
		return DriverFile + " " + s.Path()
	case *SQL:
		if s.Path() == "" {
			return s.Driver() + " (in-memory)"
		}
		return s.Driver() + " " + s.Path()
	case *Memory:
		return DriverMemory
	default:
		return fmt.Sprintf("%T", kv)
	}
}
