// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-ask/cliparse"
	"github.com/danielhkuo/quickly-ask/db"
	"github.com/danielhkuo/quickly-ask/middleware"
	"github.com/danielhkuo/quickly-ask/models"
)

const msgAnswerNotFound = "Answer not found."

type VotingHandler struct {
	store VoteStore
	cfg   cliparse.Config
}

func NewVotingHandler(store VoteStore, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{store: store, cfg: cfg}
}

// VoteQuestion handles POST /questions/{id}/vote
func (h *VotingHandler) VoteQuestion(w http.ResponseWriter, r *http.Request, req models.VoteRequest) {
	questionID, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, msgQuestionNotFound)
		return
	}

	vote, err := h.store.CreateQuestionVote(r.Context(), questionID, *req.Vote)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, msgQuestionNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to record question vote", "error", err, "question_id", questionID)
		middleware.StoreErrorResponse(w, h.cfg.Debug, "Unable to vote question.", err)
		return
	}

	slog.Info("question vote recorded", "question_id", questionID, "vote", vote.Vote)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Vote on the question has been recorded successfully.",
		Data:    vote,
	})
}

// VoteAnswer handles POST /answers/{id}/vote
func (h *VotingHandler) VoteAnswer(w http.ResponseWriter, r *http.Request, req models.VoteRequest) {
	answerID, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, msgAnswerNotFound)
		return
	}

	vote, err := h.store.CreateAnswerVote(r.Context(), answerID, *req.Vote)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, msgAnswerNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to record answer vote", "error", err, "answer_id", answerID)
		middleware.StoreErrorResponse(w, h.cfg.Debug, "Unable to vote answer.", err)
		return
	}

	slog.Info("answer vote recorded", "answer_id", answerID, "vote", vote.Vote)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Vote on the answer has been recorded successfully.",
		Data:    vote,
	})
}

// GetQuestionVotes handles GET /questions/{id}/votes
func (h *VotingHandler) GetQuestionVotes(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, msgQuestionNotFound)
		return
	}

	tally, err := h.store.QuestionVoteTally(r.Context(), questionID)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, msgQuestionNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to tally question votes", "error", err, "question_id", questionID)
		middleware.StoreErrorResponse(w, h.cfg.Debug, "Unable to fetch votes.", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DataResponse{Data: tally})
}

// GetAnswerVotes handles GET /answers/{id}/votes
func (h *VotingHandler) GetAnswerVotes(w http.ResponseWriter, r *http.Request) {
	answerID, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, msgAnswerNotFound)
		return
	}

	tally, err := h.store.AnswerVoteTally(r.Context(), answerID)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, msgAnswerNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to tally answer votes", "error", err, "answer_id", answerID)
		middleware.StoreErrorResponse(w, h.cfg.Debug, "Unable to fetch votes.", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DataResponse{Data: tally})
}
