package dbmigrate_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // sqlite driver for tests
	"github.com/stretchr/testify/require"

	"cancer_api/pkg/dbmigrate"
)

func TestFromFS(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	db, err := sqlx.Open("sqlite3", ":memory:")
	rq.NoError(err)

	defer db.Close()

	db.SetMaxOpenConns(1)

	fsys := fstest.MapFS{
		"migrations/002_insert.sql": {Data: []byte("INSERT INTO items (name) VALUES ('a');\nINSERT INTO items (name) VALUES ('b');\n")},
		"migrations/001_create.sql": {Data: []byte("CREATE TABLE IF NOT EXISTS items (name TEXT NOT NULL);")},
		"migrations/README.md":      {Data: []byte("not sql")},
	}

	rq.NoError(dbmigrate.FromFS(ctx, db, fsys, "migrations"))

	var count int

	rq.NoError(db.GetContext(ctx, &count, "SELECT COUNT(*) FROM items"))
	rq.Equal(2, count)
}

func TestFromFile(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	db, err := sqlx.Open("sqlite3", ":memory:")
	rq.NoError(err)

	defer db.Close()

	db.SetMaxOpenConns(1)

	fileName := filepath.Join(t.TempDir(), "schema.sql")
	rq.NoError(os.WriteFile(fileName, []byte("CREATE TABLE items (name TEXT);"), 0o600))

	rq.NoError(dbmigrate.FromFile(ctx, db, fileName))
	rq.Error(dbmigrate.FromFile(ctx, db, fileName))
	rq.Error(dbmigrate.FromFile(ctx, db, filepath.Join(t.TempDir(), "missing.sql")))
}
