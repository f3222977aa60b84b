package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

// SqlFiles holds the tenant, record and wish ledger schema, applied in file order.
//
//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate brings the birthday schema up to date. Already applied files are
// skipped, so it runs on every start.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := migrator.Migrate(SqlFiles, "sql"); err != nil {
		return fmt.Errorf("failed to migrate birthday schema: %w", err)
	}
	return nil
}
