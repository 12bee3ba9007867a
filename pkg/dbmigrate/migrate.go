// Package dbmigrate applies plain SQL schema files. Files are expected to be
// idempotent (CREATE ... IF NOT EXISTS), there is no version table.
package dbmigrate

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
)

// FromFile executes all SQL queries from the files over a database
// connection.
func FromFile(ctx context.Context, db *sqlx.DB, fileNames ...string) error {
	for _, fileName := range fileNames {
		fileBytes, err := os.ReadFile(fileName)
		if err != nil {
			return fmt.Errorf("os.ReadFile: %w", err)
		}

		if err = exec(ctx, db, string(fileBytes)); err != nil {
			return fmt.Errorf("exec(%s): %w", fileName, err)
		}
	}

	return nil
}

// FromFS executes every *.sql file of dir in lexical order.
func FromFS(ctx context.Context, db *sqlx.DB, fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("fs.ReadDir: %w", err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}

	slices.Sort(names)

	for _, name := range names {
		fileBytes, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("fs.ReadFile: %w", err)
		}

		if err = exec(ctx, db, string(fileBytes)); err != nil {
			return fmt.Errorf("exec(%s): %w", name, err)
		}
	}

	return nil
}

// exec runs statements one by one since not every driver accepts several
// statements in a single Exec.
func exec(ctx context.Context, db *sqlx.DB, script string) error {
	for _, statement := range strings.Split(script, ";") {
		if strings.TrimSpace(statement) == "" {
			continue
		}

		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("db.ExecContext: %w", err)
		}
	}

	return nil
}
