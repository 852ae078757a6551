package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigration_NewDatabase(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "new.db"))
	require.NoError(t, err)
	defer db.Close()

	migrator := NewMigrator(db)

	require.NoError(t, migrator.ensureMigrationsTable())
	version, err := migrator.Version()
	require.NoError(t, err)
	assert.Equal(t, 0, version)

	require.NoError(t, migrator.Migrate())

	version, err = migrator.Version()
	require.NoError(t, err)
	assert.Equal(t, initialSchemaVersion, version)

	for _, table := range []string{"comments", "users"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigration_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "idem.db"))
	require.NoError(t, err)
	defer db.Close()

	migrator := NewMigrator(db)
	require.NoError(t, migrator.Migrate())
	require.NoError(t, migrator.Migrate())

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSplitSQLStatements(t *testing.T) {
	input := `-- header comment
CREATE TABLE a (id INTEGER);

-- another
CREATE TABLE b (id INTEGER);
`
	got := splitSQLStatements(input)
	assert.Equal(t, []string{"CREATE TABLE a (id INTEGER)", "CREATE TABLE b (id INTEGER)"}, got)
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "filerepo.db")

	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM comments").Scan(&count))
	assert.Equal(t, 0, count)
}
