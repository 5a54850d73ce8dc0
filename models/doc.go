// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON, each with a Validate method:

  - QuestionRequest: title, description, category (all required)
  - AnswerRequest: content (required, at most MaxContentLength characters)
  - VoteRequest: vote (required integer)

# Response Types

Types for JSON responses:

  - DataResponse: data
  - MessageResponse: message, data (optional)
  - ErrorResponse: message

# Domain Types

Rows as returned by the store:

  - Question: id, title, category, description
  - Answer: question_id, answer_id, content
  - QuestionVote, AnswerVote: append-only vote records
  - QuestionVoteTally, AnswerVoteTally: vote count and sum
*/
package models
