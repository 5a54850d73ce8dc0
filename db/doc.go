// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db owns the connection pool, the schema, and every SQL statement.

# Opening a Connection

Open selects the driver by dialect and pings the store:

	conn, err := db.Open(ctx, db.DialectPostgres, "postgres://...")

Dialects:

  - sqlite: modernc.org/sqlite, DSN is a file path or file: URI
  - postgres: github.com/lib/pq
  - pgx: github.com/jackc/pgx/v5/stdlib

Every statement uses $N placeholders, which all three drivers accept.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn, db.DialectSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - questions: id, title, category, description
  - answers: id, question_id, content
  - question_votes: id, question_id, vote
  - answer_votes: id, answer_id, vote

	questions 1──* answers
	questions 1──* question_votes
	answers   1──* answer_votes

Parent columns are plain integers with no foreign key constraint. Removing
a question removes its answers and votes in the same transaction.

# Store

Store wraps the pool. Writes that depend on a parent row fold the existence
check into the statement itself (UPDATE ... RETURNING, INSERT ... SELECT
WHERE EXISTS), so a concurrent delete cannot slip between check and write.
A missing row is reported as ErrNotFound.

# Search

BuildSearchQuery turns a QuestionFilter into a statement with one
case-insensitive substring predicate per non-blank term:

	query, args, err := db.BuildSearchQuery(db.DialectPostgres, db.QuestionFilter{Category: "go"})
	// SELECT ... WHERE LOWER(category) LIKE LOWER($1) ESCAPE '\' ORDER BY id

On SQLite the fold function is unicode_fold, registered with the driver
at init, since the built-in LOWER leaves non-ASCII letters alone.

Placeholder numbers follow the order values were appended. An empty filter
returns ErrEmptyFilter.
*/
package db
