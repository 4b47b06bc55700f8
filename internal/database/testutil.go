package database

import (
	"database/sql"
	"testing"

	"github.com/ccradio/rotation-bot/migrator/sqlite"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// SetupTestDB returns a migrated in-memory database that is closed when the
// test ends.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open test database")

	// each pooled connection would get its own empty in-memory database
	conn.SetMaxOpenConns(1)

	require.NoError(t, sqlite.Migrate(conn), "failed to migrate test database")

	db := &DB{conn: conn}
	t.Cleanup(func() {
		require.NoError(t, db.Close(), "failed to close test database")
	})
	return db
}

// countRows returns the number of rows in table.
func countRows(t *testing.T, db *DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.conn.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}
