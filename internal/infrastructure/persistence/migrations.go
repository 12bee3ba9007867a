package persistence

import (
	"context"
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"

	"cancer_api/pkg/dbmigrate"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate creates the tables used by the repositories. It is idempotent.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if err := dbmigrate.FromFS(ctx, db, migrations, "migrations"); err != nil {
		return fmt.Errorf("dbmigrate.FromFS: %w", err)
	}

	return nil
}
