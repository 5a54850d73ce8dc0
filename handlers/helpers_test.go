// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/danielhkuo/quickly-ask/db"
	"github.com/danielhkuo/quickly-ask/models"
	"github.com/danielhkuo/quickly-ask/testutil"
)

type testDB struct {
	conn *sql.DB
}

func (d *testDB) count(t *testing.T, query string, args ...interface{}) int {
	t.Helper()
	return testutil.CountRows(t, d.conn, query, args...)
}

var errBroken = errors.New("connection refused")

// failingStore satisfies every store interface and fails every call.
type failingStore struct{}

func (failingStore) ListQuestions(context.Context) ([]models.Question, error) {
	return nil, errBroken
}

func (failingStore) SearchQuestions(context.Context, db.QuestionFilter) ([]models.Question, error) {
	return nil, errBroken
}

func (failingStore) GetQuestion(context.Context, int64) (models.Question, error) {
	return models.Question{}, errBroken
}

func (failingStore) CreateQuestion(context.Context, models.QuestionRequest) (models.Question, error) {
	return models.Question{}, errBroken
}

func (failingStore) UpdateQuestion(context.Context, int64, models.QuestionRequest) (models.Question, error) {
	return models.Question{}, errBroken
}

func (failingStore) DeleteQuestion(context.Context, int64) error {
	return errBroken
}

func (failingStore) ListAnswers(context.Context, int64) ([]models.Answer, error) {
	return nil, errBroken
}

func (failingStore) CreateAnswer(context.Context, int64, string) (models.Answer, error) {
	return models.Answer{}, errBroken
}

func (failingStore) DeleteAnswers(context.Context, int64) (int64, error) {
	return 0, errBroken
}

func (failingStore) CreateQuestionVote(context.Context, int64, int) (models.QuestionVote, error) {
	return models.QuestionVote{}, errBroken
}

func (failingStore) CreateAnswerVote(context.Context, int64, int) (models.AnswerVote, error) {
	return models.AnswerVote{}, errBroken
}

func (failingStore) QuestionVoteTally(context.Context, int64) (models.QuestionVoteTally, error) {
	return models.QuestionVoteTally{}, errBroken
}

func (failingStore) AnswerVoteTally(context.Context, int64) (models.AnswerVoteTally, error) {
	return models.AnswerVoteTally{}, errBroken
}
