// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMultilineItem is returned when a queue item contains a newline
var ErrMultilineItem = errors.New("queue item must not contain a newline")

// SQL stores values in the client_storage table and queues in client_queue
// (see db.CreateSchema).
// Queries are written to run unchanged on sqlite and postgres.
type SQL struct {
	db *sql.DB
}

func NewSQL(db *sql.DB) *SQL {
	return &SQL{db: db}
}

func (b *SQL) Store(clientID string) Store {
	return &sqlStore{db: b.db, clientID: clientID}
}

type sqlStore struct {
	db       *sql.DB
	clientID string
}

func (s *sqlStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM client_storage WHERE client_id = $1 AND key = $2
	`, s.clientID, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

func (s *sqlStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO client_storage (client_id, key, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (client_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, s.clientID, key, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (s *sqlStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM client_storage WHERE client_id = $1 AND key = $2
	`, s.clientID, key)
	if err != nil {
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}
	return nil
}

func (b *SQL) Queue(clientID string) Queue {
	return &sqlQueue{db: b.db, clientID: clientID}
}

// sqlQueue keeps a whole queue in one row as newline-terminated items.
// Push appends in a single upsert and PopAll deletes with RETURNING,
// so neither needs a read-modify-write.
type sqlQueue struct {
	db       *sql.DB
	clientID string
}

func (q *sqlQueue) Push(ctx context.Context, name, item string) error {
	if strings.Contains(item, "\n") {
		return ErrMultilineItem
	}

	_, err := q.db.ExecContext(ctx, `
		INSERT INTO client_queue (client_id, name, items, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (client_id, name) DO UPDATE SET
			items = client_queue.items || excluded.items,
			updated_at = excluded.updated_at
	`, q.clientID, name, item+"\n", time.Now())
	if err != nil {
		return fmt.Errorf("failed to push to %q: %w", name, err)
	}
	return nil
}

func (q *sqlQueue) PopAll(ctx context.Context, name string) ([]string, error) {
	var items string
	err := q.db.QueryRowContext(ctx, `
		DELETE FROM client_queue WHERE client_id = $1 AND name = $2
		RETURNING items
	`, q.clientID, name).Scan(&items)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to pop %q: %w", name, err)
	}
	return splitItems(items), nil
}

func splitItems(items string) []string {
	var out []string
	for _, item := range strings.Split(items, "\n") {
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
