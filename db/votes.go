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

// Votes are append-only: every call inserts a new row.

func (s *Store) CreateQuestionVote(ctx context.Context, questionID int64, vote int) (models.QuestionVote, error) {
	var v models.QuestionVote
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO question_votes (question_id, vote)
		SELECT CAST($1 AS BIGINT), CAST($2 AS BIGINT)
		WHERE EXISTS (SELECT 1 FROM questions WHERE id = $1)
		RETURNING id, question_id, vote
	`, questionID, vote).Scan(&v.ID, &v.QuestionID, &v.Vote)

	if errors.Is(err, sql.ErrNoRows) {
		return models.QuestionVote{}, ErrNotFound
	}
	if err != nil {
		return models.QuestionVote{}, fmt.Errorf("create question vote: %w", err)
	}
	return v, nil
}

func (s *Store) CreateAnswerVote(ctx context.Context, answerID int64, vote int) (models.AnswerVote, error) {
	var v models.AnswerVote
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO answer_votes (answer_id, vote)
		SELECT CAST($1 AS BIGINT), CAST($2 AS BIGINT)
		WHERE EXISTS (SELECT 1 FROM answers WHERE id = $1)
		RETURNING id, answer_id, vote
	`, answerID, vote).Scan(&v.ID, &v.AnswerID, &v.Vote)

	if errors.Is(err, sql.ErrNoRows) {
		return models.AnswerVote{}, ErrNotFound
	}
	if err != nil {
		return models.AnswerVote{}, fmt.Errorf("create answer vote: %w", err)
	}
	return v, nil
}

// QuestionVoteTally counts and sums the votes cast on a question
func (s *Store) QuestionVoteTally(ctx context.Context, questionID int64) (models.QuestionVoteTally, error) {
	var t models.QuestionVoteTally
	err := s.db.QueryRowContext(ctx, `
		SELECT q.id, COUNT(v.id), CAST(COALESCE(SUM(v.vote), 0) AS BIGINT)
		FROM questions q
		LEFT JOIN question_votes v ON v.question_id = q.id
		WHERE q.id = $1
		GROUP BY q.id
	`, questionID).Scan(&t.QuestionID, &t.Count, &t.Score)

	if errors.Is(err, sql.ErrNoRows) {
		return models.QuestionVoteTally{}, ErrNotFound
	}
	if err != nil {
		return models.QuestionVoteTally{}, fmt.Errorf("tally question votes: %w", err)
	}
	return t, nil
}

// AnswerVoteTally counts and sums the votes cast on an answer
func (s *Store) AnswerVoteTally(ctx context.Context, answerID int64) (models.AnswerVoteTally, error) {
	var t models.AnswerVoteTally
	err := s.db.QueryRowContext(ctx, `
		SELECT a.id, COUNT(v.id), CAST(COALESCE(SUM(v.vote), 0) AS BIGINT)
		FROM answers a
		LEFT JOIN answer_votes v ON v.answer_id = a.id
		WHERE a.id = $1
		GROUP BY a.id
	`, answerID).Scan(&t.AnswerID, &t.Count, &t.Score)

	if errors.Is(err, sql.ErrNoRows) {
		return models.AnswerVoteTally{}, ErrNotFound
	}
	if err != nil {
		return models.AnswerVoteTally{}, fmt.Errorf("tally answer votes: %w", err)
	}
	return t, nil
}
