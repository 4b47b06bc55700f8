// Package sqlite applies the embedded schema migrations.
package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

//go:embed sql/*.sql
var migrations embed.FS

// Migrate brings the maps, daily content, duel and tip tables up to date.
// Applied versions are tracked by darwin and never run twice.
func Migrate(db *sql.DB) error {
	if err := sqlmigrator.New(db, darwin.SqliteDialect{}).Migrate(migrations, "sql"); err != nil {
		return fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}
	return nil
}
