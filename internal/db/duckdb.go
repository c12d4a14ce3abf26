package db

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/marcboeker/go-duckdb"
)

var (
	dbInstance *sql.DB
	dbOnce     sync.Once
	dbErr      error

	extMu  sync.Mutex
	loaded = map[string]bool{}
)

// GetDB returns the process-wide in-memory DuckDB handle used to read feedback
// files. Extensions are loaded on demand with LoadExtension.
func GetDB() (*sql.DB, error) {
	dbOnce.Do(func() {
		dbInstance, dbErr = initializeDuckDB()
	})
	return dbInstance, dbErr
}

func initializeDuckDB() (*sql.DB, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open DuckDB: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to DuckDB: %w", err)
	}

	return db, nil
}

// LoadExtension loads a DuckDB extension, falling back to INSTALL only when it
// is neither bundled nor already cached locally.
func LoadExtension(db *sql.DB, name string) error {
	extMu.Lock()
	defer extMu.Unlock()

	if loaded[name] {
		return nil
	}

	if _, err := db.Exec("LOAD " + name); err != nil {
		if _, err := db.Exec("INSTALL " + name); err != nil {
			return fmt.Errorf("failed to install %s extension: %w", name, err)
		}
		if _, err := db.Exec("LOAD " + name); err != nil {
			return fmt.Errorf("failed to load %s extension: %w", name, err)
		}
	}

	loaded[name] = true
	return nil
}
