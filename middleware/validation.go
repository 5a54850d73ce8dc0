// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"net/http"
)

// InvalidRequestMessage is the body text for every rejected payload
const InvalidRequestMessage = "Invalid request data."

// maxBodyBytes caps request payloads
const maxBodyBytes = 1 << 20

// Validator is a request payload that can check its own required fields
type Validator interface {
	Validate() error
}

// ValidatedHandler receives a payload that already passed validation
type ValidatedHandler[T Validator] func(w http.ResponseWriter, r *http.Request, payload T)

// WithValidBody decodes the JSON body into T and rejects the request with
// 400 before next runs when decoding or validation fails.
func WithValidBody[T Validator](next ValidatedHandler[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		var payload T
		if err := ParseJSONBody(r, &payload); err != nil {
			slog.Debug("rejected request body", "path", r.URL.Path, "error", err)
			ErrorResponse(w, http.StatusBadRequest, InvalidRequestMessage)
			return
		}
		if err := payload.Validate(); err != nil {
			slog.Debug("rejected request body", "path", r.URL.Path, "error", err)
			ErrorResponse(w, http.StatusBadRequest, InvalidRequestMessage)
			return
		}

		next(w, r, payload)
	}
}
