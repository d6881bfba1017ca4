// Package migrations embeds the goose schema migrations of both databases:
// the device SQLite store under client/ and the server PostgreSQL store
// under server/.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed client/*.sql
var clientMigrations embed.FS

//go:embed server/*.sql
var serverMigrations embed.FS

// Schema selects a migration set.
type Schema struct {
	fs      fs.FS
	dir     string
	dialect goose.Dialect
}

var (
	// Client is the schema of the device store.
	Client = Schema{fs: clientMigrations, dir: "client", dialect: goose.DialectSQLite3}
	// Server is the schema of the sync server store.
	Server = Schema{fs: serverMigrations, dir: "server", dialect: goose.DialectPostgres}
)

var errNilDB = errors.New("db is nil")

// Migrate applies every pending migration of schema to db.
func Migrate(db *sql.DB, schema Schema) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(schema.fs)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(string(schema.dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, schema.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
