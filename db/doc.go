// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the storage database and creates its schema.

# Connecting

Open supports the pure-Go sqlite driver and PostgreSQL:

	conn, err := db.Open("sqlite", "file:quickly-pick-web.db")
	conn, err := db.Open("postgres", "postgres://...")

sqlite connections are limited to one open connection, which also keeps
":memory:" databases shared across queries.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - client_storage: per-client key/value pairs (token, username,
    notifications), primary key (client_id, key)
*/
package db
