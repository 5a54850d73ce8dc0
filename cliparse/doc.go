// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 4001)
  - DatabaseURL: SQLite file path or PostgreSQL connection string (required)
  - DatabaseType: sqlite, postgres (lib/pq) or pgx (default: sqlite)
  - Debug: Append store errors to 500 responses, log at debug level
  - LogFormat: auto, text or json (default: auto)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-debug       Debug mode (true/false)
	-log-format  Log format

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	DEBUG         → -debug
	LOG_FORMAT    → -log-format

CLI flags take precedence over environment variables. main loads a .env
file into the environment before ParseFlags runs.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - PORT is not a number
  - DATABASE_TYPE or LOG_FORMAT has an unknown value
  - DEBUG is not a boolean
*/
package cliparse
