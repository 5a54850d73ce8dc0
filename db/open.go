// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

// Dialects, named after the database/sql driver that serves them
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
	DialectPGX      = "pgx"
)

// Applied through the DSN so every pooled connection gets them
var sqlitePragmas = []string{
	"busy_timeout(5000)",
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
}

// Open connects to the store for the given dialect and verifies the connection.
// The returned pool is safe for concurrent use by every handler.
func Open(ctx context.Context, dialect, dsn string) (*sql.DB, error) {
	switch dialect {
	case DialectSQLite, DialectPostgres, DialectPGX:
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}

	if dialect == DialectSQLite {
		dsn = sqliteDSN(dsn)
	}

	database, err := sql.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}

	if dialect == DialectSQLite {
		// SQLite serializes writers; a small pool keeps lock contention low
		database.SetMaxOpenConns(4)
		database.SetMaxIdleConns(4)
	} else {
		database.SetMaxOpenConns(25)
		database.SetMaxIdleConns(5)
	}
	database.SetConnMaxIdleTime(30 * time.Minute)

	if err := database.PingContext(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return database, nil
}

// sqliteDSN appends the connection pragmas to a file path or file: URI
func sqliteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	var b strings.Builder
	b.WriteString(dsn)
	for _, pragma := range sqlitePragmas {
		b.WriteString(sep)
		b.WriteString("_pragma=")
		b.WriteString(pragma)
		sep = "&"
	}
	return b.String()
}
