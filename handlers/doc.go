// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Ask API.

# Handler Types

  - QuestionHandler: list, search, get, create, update and delete questions
  - AnswerHandler: list, create and delete the answers of a question
  - VotingHandler: record votes and report tallies

Each handler depends on a narrow store interface and the server Config:

	questionHandler := handlers.NewQuestionHandler(store, cfg)

Handlers that take a body have the signature of middleware.ValidatedHandler
and are registered through middleware.WithValidBody, so they only ever see a
decoded, validated payload.

# Errors

Every error body is {"message": "..."}. Unknown or non-numeric ids answer
404. Store failures answer 500; with Debug set the message also carries the
store error.

# Deletion

Deleting a question and deleting its answers both remove the question, its
answers and every vote on them in one transaction.
*/
package handlers
