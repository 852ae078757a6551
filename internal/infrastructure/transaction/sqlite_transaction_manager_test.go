package transaction_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoshitsuguKoike/filerepo/internal/infrastructure/transaction"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "tx.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec("CREATE TABLE items (id INTEGER PRIMARY KEY)")
	require.NoError(t, err)
	return db
}

func countItems(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM items").Scan(&n))
	return n
}

func TestInTransaction_Commit(t *testing.T) {
	db := setupTestDB(t)
	tm := transaction.NewSQLiteTransactionManager(db)

	err := tm.InTransaction(context.Background(), func(txCtx context.Context) error {
		tx, ok := transaction.GetTxFromContext(txCtx)
		require.True(t, ok)
		_, err := tx.ExecContext(txCtx, "INSERT INTO items (id) VALUES (1)")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countItems(t, db))
}

func TestInTransaction_RollbackOnError(t *testing.T) {
	db := setupTestDB(t)
	tm := transaction.NewSQLiteTransactionManager(db)
	boom := errors.New("boom")

	err := tm.InTransaction(context.Background(), func(txCtx context.Context) error {
		tx, _ := transaction.GetTxFromContext(txCtx)
		if _, err := tx.ExecContext(txCtx, "INSERT INTO items (id) VALUES (1)"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countItems(t, db))
}

func TestInTransaction_JoinsOuterTransaction(t *testing.T) {
	db := setupTestDB(t)
	tm := transaction.NewSQLiteTransactionManager(db)

	err := tm.InTransaction(context.Background(), func(outer context.Context) error {
		outerTx, _ := transaction.GetTxFromContext(outer)
		return tm.InTransaction(outer, func(inner context.Context) error {
			innerTx, ok := transaction.GetTxFromContext(inner)
			require.True(t, ok)
			assert.Same(t, outerTx, innerTx)
			_, err := innerTx.ExecContext(inner, "INSERT INTO items (id) VALUES (7)")
			return err
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countItems(t, db))
}

func TestGetTxFromContext_Empty(t *testing.T) {
	_, ok := transaction.GetTxFromContext(context.Background())
	assert.False(t, ok)
}
