// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Ask API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(conn, cfg)

# Endpoints

Health:

	GET /health

Questions:

	GET    /questions        - List all questions
	GET    /questions/search - Search by title and/or category
	GET    /questions/{id}   - Get one question
	POST   /questions        - Create question
	PUT    /questions/{id}   - Replace question fields
	DELETE /questions/{id}   - Delete question, its answers and votes

Answers:

	GET    /questions/{id}/answers - List answers
	POST   /questions/{id}/answers - Answer a question
	DELETE /questions/{id}/answers - Delete all answers and the question

Votes:

	POST /questions/{id}/vote  - Vote on a question
	POST /answers/{id}/vote    - Vote on an answer
	GET  /questions/{id}/votes - Question vote tally
	GET  /answers/{id}/votes   - Answer vote tally

Documentation:

	GET /docs/openapi.yaml
	GET /docs/openapi.json

# Handler Initialization

The router wraps the pool in a db.Store and hands it to each handler:

	store := db.NewStore(conn, db.DialectSQLite)
	questionHandler := handlers.NewQuestionHandler(store, cfg)
	answerHandler := handlers.NewAnswerHandler(store, cfg)
	votingHandler := handlers.NewVotingHandler(store, cfg)

Write routes run WithValidBody before the handler.
*/
package router
