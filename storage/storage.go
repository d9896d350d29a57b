// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import "context"

// Store is a string key/value store belonging to one browser client.
// Removing a missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Queue is an append-only list of items per name, belonging to one client.
// Push and PopAll are atomic with respect to each other, so concurrent
// pushes are never lost and an item is popped exactly once.
type Queue interface {
	Push(ctx context.Context, name, item string) error
	PopAll(ctx context.Context, name string) ([]string, error)
}

// Backend hands out the Store and Queue for a client id
type Backend interface {
	Store(clientID string) Store
	Queue(clientID string) Queue
}
