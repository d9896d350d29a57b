// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cliparse.LoadDotEnv()
	cfg, err := cliparse.ParseFlags(os.Args[1:])

LoadDotEnv reads a .env file (if present) without overriding variables
already set in the environment.

# Config Fields

  - Port: Server listen port (default: 3318)
  - BaseURL: Backend API base URL (required)
  - StorageType: memory, sqlite, postgres or redis (default: sqlite)
  - DatabaseURL: sqlite DSN or PostgreSQL connection string
  - RedisURL: Redis connection URL
  - APITimeout: Backend request timeout (default: 10s)
  - LogLevel, LogFormat: passed to logging.Init
  - AllowedOrigins: origins allowed to call the API cross-origin

# CLI Flags

	-p           Server port
	-api         Backend API base URL
	-s           Storage type
	-d           Database URL
	-redis       Redis URL
	-timeout     Backend request timeout
	-log-level   Log level
	-log-format  Log format
	-origins     Comma-separated CORS origins

# Environment Variables

Flags fall back to environment variables:

	PORT         → -p
	BASE_URL     → -api
	STORAGE_TYPE → -s
	DATABASE_URL → -d
	REDIS_URL    → -redis
	API_TIMEOUT  → -timeout
	LOG_LEVEL    → -log-level
	LOG_FORMAT   → -log-format
	ALLOWED_ORIGINS → -origins

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - BASE_URL is missing
  - the storage type is unknown
  - postgres storage has no DATABASE_URL
  - redis storage has no REDIS_URL
*/
package cliparse
