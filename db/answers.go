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

// ListAnswers returns the answers of a question in id order.
// An unknown question yields an empty list.
func (s *Store) ListAnswers(ctx context.Context, questionID int64) ([]models.Answer, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT questions.id, answers.id, answers.content
		FROM answers
		INNER JOIN questions ON questions.id = answers.question_id
		WHERE questions.id = $1
		ORDER BY answers.id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	defer rows.Close()

	answers := []models.Answer{}
	for rows.Next() {
		var a models.Answer
		if err := rows.Scan(&a.QuestionID, &a.AnswerID, &a.Content); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answers: %w", err)
	}
	return answers, nil
}

// CreateAnswer inserts an answer only if the question exists, in a single statement
func (s *Store) CreateAnswer(ctx context.Context, questionID int64, content string) (models.Answer, error) {
	var a models.Answer
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO answers (question_id, content)
		SELECT CAST($1 AS BIGINT), CAST($2 AS TEXT)
		WHERE EXISTS (SELECT 1 FROM questions WHERE id = $1)
		RETURNING question_id, id, content
	`, questionID, content).Scan(&a.QuestionID, &a.AnswerID, &a.Content)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Answer{}, ErrNotFound
	}
	if err != nil {
		return models.Answer{}, fmt.Errorf("create answer: %w", err)
	}
	return a, nil
}

// DeleteAnswers removes every answer of a question and then the question
// itself, atomically. It returns the number of answers removed.
func (s *Store) DeleteAnswers(ctx context.Context, questionID int64) (int64, error) {
	return s.deleteQuestionTree(ctx, questionID)
}
