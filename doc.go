// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Pick web front.

The web front serves the poll application's pages, keeps visitors without a
session away from protected pages, and checks the stored session token
against the Quickly Pick API before rendering them.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	BASE_URL=https://api.quickly-pick.example go run .

Or with flags:

	go run . -p 3318 -api https://api.quickly-pick.example -s memory

A .env file in the working directory is loaded first.

# Configuration

Required settings:

  - BASE_URL (-api): API server that answers /get-user-token

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - STORAGE_TYPE (-s): memory, sqlite, postgres or redis (default: sqlite)
  - DATABASE_URL (-d): sqlite DSN or PostgreSQL connection string
  - REDIS_URL (-redis): redis:// URL, required for redis storage
  - API_TIMEOUT (-timeout): session check timeout (default: 10s)
  - LOG_LEVEL, LOG_FORMAT: slog level and text or json output
  - ALLOWED_ORIGINS (-origins): comma separated CORS allow-list

# Architecture

  - routes: navigation table and lazily loaded views
  - guard: session cookie check in front of every page
  - session: token validation, display name state
  - notify: flash notifications shown on the next page load
  - storage: per-client key-value storage (memory, SQL, redis, cookies)
  - handlers, router, middleware: HTTP surface
  - cliparse, logging, metrics, db: configuration and infrastructure

See package documentation for each component.
*/
package main
