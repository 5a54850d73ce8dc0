// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /questions", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Each request gets an X-Request-ID, reused from the caller when
one is sent.

# Payload Validation

WithValidBody decodes and validates the JSON body before the handler runs:

	mux.HandleFunc("POST /questions",
		middleware.WithLogging(middleware.WithValidBody(questionHandler.CreateQuestion)))

The handler receives the decoded payload. Malformed JSON and failed
Validate calls are answered with 400 {"message":"Invalid request data."}.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Question not found.")
	middleware.StoreErrorResponse(w, cfg.Debug, "Unable to fetch questions.", err)

StoreErrorResponse appends the store error text only in debug mode.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
