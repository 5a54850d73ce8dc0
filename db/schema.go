// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, dialect string) error {
	identity := "BIGSERIAL PRIMARY KEY"
	if dialect == DialectSQLite {
		identity = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	for _, stmt := range schema {
		stmt = strings.ReplaceAll(stmt, "{{identity}}", identity)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// Parent references are plain integer columns; cascades happen in the store.
var schema = []string{
	// Questions
	`CREATE TABLE IF NOT EXISTS questions (
    id {{identity}},
    title TEXT NOT NULL,
    category TEXT NOT NULL,
    description TEXT NOT NULL
)`,

	// Answers
	`CREATE TABLE IF NOT EXISTS answers (
    id {{identity}},
    question_id BIGINT NOT NULL,
    content TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_answers_question_id ON answers(question_id)`,

	// Votes
	`CREATE TABLE IF NOT EXISTS question_votes (
    id {{identity}},
    question_id BIGINT NOT NULL,
    vote BIGINT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_question_votes_question_id ON question_votes(question_id)`,

	`CREATE TABLE IF NOT EXISTS answer_votes (
    id {{identity}},
    answer_id BIGINT NOT NULL,
    vote BIGINT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_answer_votes_answer_id ON answer_votes(answer_id)`,
}
