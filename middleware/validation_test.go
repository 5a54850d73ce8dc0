// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-ask/models"
)

func TestWithValidBody_Question(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		expectedStatus int
		expectCalled   bool
	}{
		{"valid payload", `{"title":"T","description":"D","category":"C"}`, http.StatusOK, true},
		{"missing title", `{"description":"D","category":"C"}`, http.StatusBadRequest, false},
		{"missing description", `{"title":"T","category":"C"}`, http.StatusBadRequest, false},
		{"empty category", `{"title":"T","description":"D","category":""}`, http.StatusBadRequest, false},
		{"malformed JSON", `{"title":`, http.StatusBadRequest, false},
		{"empty body", ``, http.StatusBadRequest, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			handler := WithValidBody(func(w http.ResponseWriter, r *http.Request, q models.QuestionRequest) {
				called = true
				if q.Title != "T" {
					t.Errorf("Expected decoded title 'T', got '%s'", q.Title)
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("POST", "/questions", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			handler(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected status %d, got %d", tc.expectedStatus, w.Code)
			}
			if called != tc.expectCalled {
				t.Errorf("Expected handler called = %v, got %v", tc.expectCalled, called)
			}
			if w.Code == http.StatusBadRequest {
				var resp models.ErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode error: %v", err)
				}
				if resp.Message != InvalidRequestMessage {
					t.Errorf("Expected message '%s', got '%s'", InvalidRequestMessage, resp.Message)
				}
			}
		})
	}
}

func TestWithValidBody_Answer(t *testing.T) {
	testCases := []struct {
		name           string
		content        string
		expectedStatus int
	}{
		{"short content", "fine", http.StatusOK},
		{"exactly 300 characters", strings.Repeat("x", 300), http.StatusOK},
		{"301 characters", strings.Repeat("x", 301), http.StatusBadRequest},
		{"missing content", "", http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithValidBody(func(w http.ResponseWriter, r *http.Request, a models.AnswerRequest) {
				w.WriteHeader(http.StatusOK)
			})

			body, _ := json.Marshal(map[string]string{"content": tc.content})
			req := httptest.NewRequest("POST", "/questions/1/answers", strings.NewReader(string(body)))
			w := httptest.NewRecorder()
			handler(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected status %d, got %d", tc.expectedStatus, w.Code)
			}
		})
	}
}

func TestWithValidBody_Vote(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		expectedStatus int
		expectedVote   int
	}{
		{"upvote", `{"vote":1}`, http.StatusOK, 1},
		{"downvote", `{"vote":-1}`, http.StatusOK, -1},
		{"zero is an integer", `{"vote":0}`, http.StatusOK, 0},
		{"missing vote", `{}`, http.StatusBadRequest, 0},
		{"null vote", `{"vote":null}`, http.StatusBadRequest, 0},
		{"fractional vote", `{"vote":1.5}`, http.StatusBadRequest, 0},
		{"string vote", `{"vote":"1"}`, http.StatusBadRequest, 0},
		{"trailing data", `{"vote":1} junk`, http.StatusBadRequest, 0},
		{"beyond 32 bits", `{"vote":9999999999}`, http.StatusOK, 9999999999},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got *int
			handler := WithValidBody(func(w http.ResponseWriter, r *http.Request, v models.VoteRequest) {
				got = v.Vote
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("POST", "/questions/1/vote", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			handler(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected status %d, got %d", tc.expectedStatus, w.Code)
			}
			if tc.expectedStatus == http.StatusOK {
				if got == nil || *got != tc.expectedVote {
					t.Errorf("Expected vote %d, got %v", tc.expectedVote, got)
				}
			}
		})
	}
}
