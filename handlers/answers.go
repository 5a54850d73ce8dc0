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

type AnswerHandler struct {
	store AnswerStore
	cfg   cliparse.Config
}

func NewAnswerHandler(store AnswerStore, cfg cliparse.Config) *AnswerHandler {
	return &AnswerHandler{store: store, cfg: cfg}
}

// ListAnswers handles GET /questions/{id}/answers
func (h *AnswerHandler) ListAnswers(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathID(r, "id")
	if !ok {
		// Nothing can match, same as a question without answers
		middleware.JSONResponse(w, http.StatusOK, models.DataResponse{Data: []models.Answer{}})
		return
	}

	answers, err := h.store.ListAnswers(r.Context(), questionID)
	if err != nil {
		slog.Error("failed to list answers", "error", err, "question_id", questionID)
		middleware.StoreErrorResponse(w, h.cfg.Debug, "Unable to fetch answers.", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DataResponse{Data: answers})
}

// CreateAnswer handles POST /questions/{id}/answers
func (h *AnswerHandler) CreateAnswer(w http.ResponseWriter, r *http.Request, req models.AnswerRequest) {
	questionID, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, msgQuestionNotFound)
		return
	}

	answer, err := h.store.CreateAnswer(r.Context(), questionID, req.Content)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, msgQuestionNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to create answer", "error", err, "question_id", questionID)
		middleware.StoreErrorResponse(w, h.cfg.Debug, "Unable to create answers.", err)
		return
	}

	slog.Info("answer created", "question_id", questionID, "answer_id", answer.AnswerID)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "Answer created successfully.",
		Data:    answer,
	})
}

// DeleteAnswers handles DELETE /questions/{id}/answers
// Removing the answers also removes the question itself.
func (h *AnswerHandler) DeleteAnswers(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, msgQuestionNotFound)
		return
	}

	removed, err := h.store.DeleteAnswers(r.Context(), questionID)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, msgQuestionNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to delete answers", "error", err, "question_id", questionID)
		middleware.StoreErrorResponse(w, h.cfg.Debug, "Unable to delete answers.", err)
		return
	}

	slog.Info("answers deleted", "question_id", questionID, "answers_removed", removed)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "All answers for the question have been deleted successfully.",
	})
}
