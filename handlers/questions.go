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

const msgQuestionNotFound = "Question not found."

type QuestionHandler struct {
	store QuestionStore
	cfg   cliparse.Config
}

func NewQuestionHandler(store QuestionStore, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{store: store, cfg: cfg}
}

// ListQuestions handles GET /questions
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.store.ListQuestions(r.Context())
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		middleware.StoreErrorResponse(w, h.cfg.Debug, "Unable to fetch questions.", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, questions)
}

// SearchQuestions handles GET /questions/search?title=&category=
func (h *QuestionHandler) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	filter := db.QuestionFilter{
		Title:    r.URL.Query().Get("title"),
		Category: r.URL.Query().Get("category"),
	}
	if filter.IsEmpty() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid search parameters.")
		return
	}

	questions, err := h.store.SearchQuestions(r.Context(), filter)
	if errors.Is(err, db.ErrEmptyFilter) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid search parameters.")
		return
	}
	if err != nil {
		slog.Error("failed to search questions", "error", err, "title", filter.Title, "category", filter.Category)
		middleware.StoreErrorResponse(w, h.cfg.Debug, "Unable to fetch a question.", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DataResponse{Data: questions})
}

// GetQuestion handles GET /questions/{id}
func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, msgQuestionNotFound)
		return
	}

	question, err := h.store.GetQuestion(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, msgQuestionNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to get question", "error", err, "question_id", id)
		middleware.StoreErrorResponse(w, h.cfg.Debug, "Unable to fetch questions.", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DataResponse{
		Data: []models.Question{question},
	})
}

// CreateQuestion handles POST /questions
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request, req models.QuestionRequest) {
	question, err := h.store.CreateQuestion(r.Context(), req)
	if err != nil {
		slog.Error("failed to create question", "error", err)
		middleware.StoreErrorResponse(w, h.cfg.Debug, "Unable to create question.", err)
		return
	}

	slog.Info("question created", "question_id", question.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "Question created successfully.",
		Data:    question,
	})
}

// UpdateQuestion handles PUT /questions/{id}
func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request, req models.QuestionRequest) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, msgQuestionNotFound)
		return
	}

	question, err := h.store.UpdateQuestion(r.Context(), id, req)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, msgQuestionNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to update question", "error", err, "question_id", id)
		middleware.StoreErrorResponse(w, h.cfg.Debug, "Unable to update question.", err)
		return
	}

	slog.Info("question updated", "question_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Question updated successfully.",
		Data:    question,
	})
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, msgQuestionNotFound)
		return
	}

	err := h.store.DeleteQuestion(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, msgQuestionNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to delete question", "error", err, "question_id", id)
		middleware.StoreErrorResponse(w, h.cfg.Debug, "Unable to delete question.", err)
		return
	}

	slog.Info("question deleted", "question_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Question post has been deleted successfully.",
	})
}
