// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-ask/cliparse"
	"github.com/danielhkuo/quickly-ask/db"
	"github.com/danielhkuo/quickly-ask/docs"
	"github.com/danielhkuo/quickly-ask/handlers"
	"github.com/danielhkuo/quickly-ask/middleware"
)

func NewRouter(database *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()
	store := db.NewStore(database, cfg.DatabaseType)

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(store, cfg)
	answerHandler := handlers.NewAnswerHandler(store, cfg)
	votingHandler := handlers.NewVotingHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Questions
	mux.HandleFunc("GET /questions", middleware.WithLogging(questionHandler.ListQuestions))
	mux.HandleFunc("GET /questions/search", middleware.WithLogging(questionHandler.SearchQuestions))
	mux.HandleFunc("GET /questions/{id}", middleware.WithLogging(questionHandler.GetQuestion))
	mux.HandleFunc("POST /questions", middleware.WithLogging(middleware.WithValidBody(questionHandler.CreateQuestion)))
	mux.HandleFunc("PUT /questions/{id}", middleware.WithLogging(middleware.WithValidBody(questionHandler.UpdateQuestion)))
	mux.HandleFunc("DELETE /questions/{id}", middleware.WithLogging(questionHandler.DeleteQuestion))

	// Answers
	mux.HandleFunc("GET /questions/{id}/answers", middleware.WithLogging(answerHandler.ListAnswers))
	mux.HandleFunc("POST /questions/{id}/answers", middleware.WithLogging(middleware.WithValidBody(answerHandler.CreateAnswer)))
	mux.HandleFunc("DELETE /questions/{id}/answers", middleware.WithLogging(answerHandler.DeleteAnswers))

	// Votes
	mux.HandleFunc("POST /questions/{id}/vote", middleware.WithLogging(middleware.WithValidBody(votingHandler.VoteQuestion)))
	mux.HandleFunc("POST /answers/{id}/vote", middleware.WithLogging(middleware.WithValidBody(votingHandler.VoteAnswer)))
	mux.HandleFunc("GET /questions/{id}/votes", middleware.WithLogging(votingHandler.GetQuestionVotes))
	mux.HandleFunc("GET /answers/{id}/votes", middleware.WithLogging(votingHandler.GetAnswerVotes))

	// API documentation
	docHandler, err := docs.NewHandler(docs.New("http://localhost:" + strconv.Itoa(cfg.Port)))
	if err != nil {
		slog.Error("api documentation unavailable", "error", err)
	} else {
		mux.HandleFunc("GET /docs/openapi.yaml", middleware.WithLogging(docHandler.ServeYAML))
		mux.HandleFunc("GET /docs/openapi.json", middleware.WithLogging(docHandler.ServeJSON))
	}

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-ask API v1"))
	})

	return mux
}
