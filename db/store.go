// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/quickly-ask/models"
)

// ErrNotFound is returned when the referenced row does not exist
var ErrNotFound = errors.New("not found")

// Store runs every statement against the shared connection pool.
type Store struct {
	db      *sql.DB
	dialect string
}

// NewStore wraps a pool opened by Open with the same dialect
func NewStore(database *sql.DB, dialect string) *Store {
	return &Store{db: database, dialect: dialect}
}

// ListQuestions returns all questions in id order
func (s *Store) ListQuestions(ctx context.Context) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, category, description
		FROM questions
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return scanQuestions(rows)
}

// SearchQuestions returns questions whose title and/or category contain the filter terms
func (s *Store) SearchQuestions(ctx context.Context, filter QuestionFilter) ([]models.Question, error) {
	query, args, err := BuildSearchQuery(s.dialect, filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return scanQuestions(rows)
}

func (s *Store) GetQuestion(ctx context.Context, id int64) (models.Question, error) {
	var q models.Question
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, category, description
		FROM questions
		WHERE id = $1
	`, id).Scan(&q.ID, &q.Title, &q.Category, &q.Description)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("get question: %w", err)
	}
	return q, nil
}

func (s *Store) CreateQuestion(ctx context.Context, req models.QuestionRequest) (models.Question, error) {
	var q models.Question
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO questions (title, description, category)
		VALUES ($1, $2, $3)
		RETURNING id, title, category, description
	`, req.Title, req.Description, req.Category).Scan(&q.ID, &q.Title, &q.Category, &q.Description)

	if err != nil {
		return models.Question{}, fmt.Errorf("create question: %w", err)
	}
	return q, nil
}

// UpdateQuestion replaces every field of a question.
// The existence check and the update are one statement.
func (s *Store) UpdateQuestion(ctx context.Context, id int64, req models.QuestionRequest) (models.Question, error) {
	var q models.Question
	err := s.db.QueryRowContext(ctx, `
		UPDATE questions
		SET title = $2, description = $3, category = $4
		WHERE id = $1
		RETURNING id, title, category, description
	`, id, req.Title, req.Description, req.Category).Scan(&q.ID, &q.Title, &q.Category, &q.Description)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("update question: %w", err)
	}
	return q, nil
}

// DeleteQuestion removes a question together with its answers and all their votes
func (s *Store) DeleteQuestion(ctx context.Context, id int64) error {
	_, err := s.deleteQuestionTree(ctx, id)
	return err
}

// deleteQuestionTree removes a question and everything that references it in
// one transaction. It returns the number of answers removed.
func (s *Store) deleteQuestionTree(ctx context.Context, id int64) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete question: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete question: %w", err)
	}
	if n == 0 {
		return 0, ErrNotFound
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM answer_votes
		WHERE answer_id IN (SELECT id FROM answers WHERE question_id = $1)
	`, id)
	if err != nil {
		return 0, fmt.Errorf("delete answer votes: %w", err)
	}

	res, err = tx.ExecContext(ctx, `DELETE FROM answers WHERE question_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete answers: %w", err)
	}
	answers, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete answers: %w", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM question_votes WHERE question_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete question votes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return answers, nil
}

func scanQuestions(rows *sql.Rows) ([]models.Question, error) {
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Title, &q.Category, &q.Description); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}
