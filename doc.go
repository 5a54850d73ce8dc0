// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Ask API server.

Quickly Ask is a small Q&A service. Users post questions, answer them and
cast votes on both.

# Starting the Server

The server reads a .env file if present, then environment variables, then
CLI flags:

	DATABASE_URL=quickly-ask.db go run .

Or against PostgreSQL:

	go run . -t pgx -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 4001)
  - DATABASE_TYPE (-t): sqlite, postgres or pgx (default: sqlite)
  - DEBUG (-debug): Debug logging and store error detail in 500 responses
  - LOG_FORMAT (-log-format): auto, text or json (default: auto)

# Architecture

  - handlers: HTTP request handlers (questions, answers, votes)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, body validation, JSON helpers
  - models: Request/response and row types
  - db: Connection, schema and the SQL store
  - docs: OpenAPI document
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
