// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage provides per-client key/value storage behind one interface.

Each browser client (identified by the qp_client cookie) gets its own Store,
the server-side counterpart of the browser's local storage:

	store := backend.Store(clientID)
	token, ok, err := store.Get(ctx, models.KeyToken)
	err = store.Set(ctx, models.KeyUsername, "alice")
	err = store.Remove(ctx, models.KeyToken)

# Queues

Backend.Queue gives each client append-only lists. Push and PopAll are
atomic, so concurrent requests from one client never lose an item:

	q := backend.Queue(clientID)
	err := q.Push(ctx, "notifications", item)
	items, err := q.PopAll(ctx, "notifications")

# Backends

  - Memory: in-process maps, for development and tests
  - SQL: client_storage and client_queue tables on sqlite (modernc.org/sqlite)
    or PostgreSQL. A queue is one row appended with a single upsert and
    popped with DELETE ... RETURNING.
  - Redis: one hash per client at client:{id}:storage, and one list per
    queue at client:{id}:queue:{name}, popped inside MULTI/EXEC

# Cookies

CookieStore puts the same interface over request cookies, so code that
only needs get/set/remove does not care where a value lives. The guard and
the page renderer read the session cookie through it.
*/
package storage
