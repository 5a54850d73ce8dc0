package models

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxContentLength is the longest answer content accepted, in characters
const MaxContentLength = 300

// Validation errors
var (
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrCategoryRequired    = errors.New("category is required")
	ErrContentRequired     = errors.New("content is required")
	ErrContentTooLong      = errors.New("content must be at most 300 characters")
	ErrVoteRequired        = errors.New("vote is required")
)

// Request types

type QuestionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Validate checks that every field of a question payload is present
func (q QuestionRequest) Validate() error {
	if strings.TrimSpace(q.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(q.Description) == "" {
		return ErrDescriptionRequired
	}
	if strings.TrimSpace(q.Category) == "" {
		return ErrCategoryRequired
	}
	return nil
}

type AnswerRequest struct {
	Content string `json:"content"`
}

// Validate checks that content is present and within MaxContentLength
func (a AnswerRequest) Validate() error {
	if strings.TrimSpace(a.Content) == "" {
		return ErrContentRequired
	}
	if utf8.RuneCountInString(a.Content) > MaxContentLength {
		return ErrContentTooLong
	}
	return nil
}

// Vote is a pointer so a missing field can be told apart from zero.
// Non-integer JSON values fail decoding before Validate runs.
type VoteRequest struct {
	Vote *int `json:"vote"`
}

func (v VoteRequest) Validate() error {
	if v.Vote == nil {
		return ErrVoteRequired
	}
	return nil
}

// Response types

type DataResponse struct {
	Data interface{} `json:"data"`
}

type MessageResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Domain types

type Question struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type Answer struct {
	QuestionID int64  `json:"question_id"`
	AnswerID   int64  `json:"answer_id"`
	Content    string `json:"content"`
}

type QuestionVote struct {
	ID         int64 `json:"id"`
	QuestionID int64 `json:"question_id"`
	Vote       int   `json:"vote"`
}

type AnswerVote struct {
	ID       int64 `json:"id"`
	AnswerID int64 `json:"answer_id"`
	Vote     int   `json:"vote"`
}

// Vote tallies

type QuestionVoteTally struct {
	QuestionID int64 `json:"question_id"`
	Count      int64 `json:"count"`
	Score      int64 `json:"score"` // sum of all votes
}

type AnswerVoteTally struct {
	AnswerID int64 `json:"answer_id"`
	Count    int64 `json:"count"`
	Score    int64 `json:"score"`
}

// Error response

type ErrorResponse struct {
	Message string `json:"message"`
}
