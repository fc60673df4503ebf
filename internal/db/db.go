// Package db owns the SQLite store backing the front desk.
//
// The store is strictly in-memory: every process starts from the seeded
// inventory and all data is gone when the process ends. There is no file
// path and no migration machinery on purpose.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// memoryDSN keeps the whole store in process memory. cache=shared lets the
// connection pool see one database instead of one per connection.
const memoryDSN = "file:frontdesk?mode=memory&cache=shared"

// Open opens the in-memory database and creates the schema.
func Open() (*sql.DB, error) {
	database, err := sql.Open("sqlite3", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A second connection to a shared-cache memory DB would race the first
	// on locks; the front desk is single-actor anyway.
	database.SetMaxOpenConns(1)

	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := database.Exec(SchemaSQL); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}
