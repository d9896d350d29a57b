// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/danielhkuo/quickly-pick-web/models"
	"github.com/danielhkuo/quickly-pick-web/storage"
)

// Context is one client's in-memory session state
type Context struct {
	mu          sync.RWMutex
	displayName string
}

func (c *Context) DisplayName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.displayName
}

func (c *Context) SetDisplayName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.displayName = name
}

// setIfEmpty stores name unless a display name is already set
func (c *Context) setIfEmpty(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.displayName == "" {
		c.displayName = name
	}
}

// Contexts holds the Context of every client that has a display name.
// Clients without one get a fresh Context per request and are not kept,
// so anonymous traffic does not grow the map.
type Contexts struct {
	mu      sync.Mutex
	clients map[string]*Context
}

func NewContexts() *Contexts {
	return &Contexts{clients: make(map[string]*Context)}
}

// Lookup returns the kept Context for a client, if any
func (cs *Contexts) Lookup(clientID string) (*Context, bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	c, ok := cs.clients[clientID]
	return c, ok
}

// Sync runs SyncDisplayName for a client and returns its Context.
// The Context is kept only once it holds a display name.
func (cs *Contexts) Sync(ctx context.Context, clientID string, store storage.Store) (*Context, error) {
	if c, ok := cs.Lookup(clientID); ok {
		return c, SyncDisplayName(ctx, c, store)
	}

	c := &Context{}
	if err := SyncDisplayName(ctx, c, store); err != nil {
		return c, err
	}
	if c.DisplayName() == "" {
		return c, nil
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()
	if existing, ok := cs.clients[clientID]; ok {
		return existing, nil
	}
	cs.clients[clientID] = c
	return c, nil
}

// Len reports how many clients are kept
func (cs *Contexts) Len() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return len(cs.clients)
}

// Forget drops a client's context
func (cs *Contexts) Forget(clientID string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	delete(cs.clients, clientID)
}

// SyncDisplayName copies the stored username into sc once.
// A non-empty display name is never overwritten.
func SyncDisplayName(ctx context.Context, sc *Context, store storage.Store) error {
	if sc.DisplayName() != "" {
		return nil
	}

	name, _, err := store.Get(ctx, models.KeyUsername)
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	sc.setIfEmpty(name)
	return nil
}
