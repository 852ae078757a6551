package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/YoshitsuguKoike/filerepo/internal/infrastructure/transaction"
)

// dbExecutor is an interface for executing database queries
// Both *sql.DB and *sql.Tx implement this interface
type dbExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// getDB returns the transaction stored in ctx, or db when there is none
func getDB(ctx context.Context, db *sql.DB) dbExecutor {
	if tx, ok := transaction.GetTxFromContext(ctx); ok {
		return tx
	}
	return db
}

// Open opens (creating if needed) the database at path and applies migrations
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := NewMigrator(db).Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

// nextValue returns MAX(column)+1 for table, or 1 when the table is empty
func nextValue(ctx context.Context, db dbExecutor, table, column string) (int, error) {
	var current sql.NullInt64
	query := fmt.Sprintf("SELECT MAX(%s) FROM %s", column, table)
	if err := db.QueryRowContext(ctx, query).Scan(&current); err != nil {
		return 0, fmt.Errorf("query max %s.%s failed: %w", table, column, err)
	}
	if !current.Valid {
		return 1, nil
	}
	return int(current.Int64) + 1, nil
}
