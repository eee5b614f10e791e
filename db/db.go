// Package db opens the SQLite database and keeps its schema in the
// latest version. Migrations are embedded so the binary carries its
// own schema.
package db

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Open opens the database and runs pending schema migrations. The
// returned error may be migrate.ErrNoChange, which means the schema
// was already in the latest version; callers decide whether that is
// worth reporting.
func Open(dataSourceName string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}
	return conn, Migrate(conn)
}

func Migrate(conn *sql.DB) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	driver, err := sqlite.WithInstance(conn, &sqlite.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return err
	}
	return m.Up()
}
