// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-ask/db"
	"github.com/danielhkuo/quickly-ask/models"
)

// Handlers depend on these rather than *db.Store so tests can swap in fakes.

type QuestionStore interface {
	ListQuestions(ctx context.Context) ([]models.Question, error)
	SearchQuestions(ctx context.Context, filter db.QuestionFilter) ([]models.Question, error)
	GetQuestion(ctx context.Context, id int64) (models.Question, error)
	CreateQuestion(ctx context.Context, req models.QuestionRequest) (models.Question, error)
	UpdateQuestion(ctx context.Context, id int64, req models.QuestionRequest) (models.Question, error)
	DeleteQuestion(ctx context.Context, id int64) error
}

type AnswerStore interface {
	ListAnswers(ctx context.Context, questionID int64) ([]models.Answer, error)
	CreateAnswer(ctx context.Context, questionID int64, content string) (models.Answer, error)
	DeleteAnswers(ctx context.Context, questionID int64) (int64, error)
}

type VoteStore interface {
	CreateQuestionVote(ctx context.Context, questionID int64, vote int) (models.QuestionVote, error)
	CreateAnswerVote(ctx context.Context, answerID int64, vote int) (models.AnswerVote, error)
	QuestionVoteTally(ctx context.Context, questionID int64) (models.QuestionVoteTally, error)
	AnswerVoteTally(ctx context.Context, answerID int64) (models.AnswerVoteTally, error)
}

// pathID parses a numeric path value. A value that is not a base-10
// integer cannot name any row, so callers treat !ok as not found.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
