package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const defaultSqlitePath = "./workshop.db"

// ConnectSqlite opens the local sqlite file backing the snapshot repository.
// WAL keeps the write-through saves cheap; the busy timeout covers the rare
// overlap with external inspection tools.
//
// Env vars:
//   - SQLITE_PATH (default: ./workshop.db)
func ConnectSqlite() (*sqlx.DB, error) {
	path := getenvDefault("SQLITE_PATH", defaultSqlitePath)
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000", path)

	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database at %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite database at %s: %w", path, err)
	}
	return db, nil
}
