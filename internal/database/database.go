package database

import (
	"database/sql"
	"fmt"

	"github.com/brianbaso/Social-Blog-App/internal/database/migrations"
	_ "github.com/mattn/go-sqlite3"
)

type Database struct {
	DBConn *sql.DB
}

// NewDatabase opens the SQLite database at dsn and brings the schema
// up to date. dsn may be a file path or a file: URI (useful for
// in-memory databases in tests).
func NewDatabase(dsn string) (*Database, error) {
	dbconn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := dbconn.Ping(); err != nil {
		dbconn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrations.Up(dbconn); err != nil {
		dbconn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Database{DBConn: dbconn}, nil
}

func (d *Database) Close() error {
	return d.DBConn.Close()
}
