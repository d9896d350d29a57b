// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers of the web front.

# Handler Types

  - PageHandler: renders every route of the navigation table
  - StorageHandler: per-client key/value API
  - NotificationHandler: queues notifications for the next page load

Handlers are created with their dependencies injected:

	pages := handlers.NewPageHandler(registry, guard, validator, backend, contexts)

# Page Loads

Requests reach PageHandler only after the navigation guard has let them
through. For each page:

 1. The route's view is resolved through the lazy Registry
 2. Protected routes (not login, landing or signup) run the session
    validator; a teardown ends in a redirect to /login
 3. The client's display name is synced from storage once
 4. Pending notifications are drained and the view is rendered

A backend that cannot be reached yields 502 instead of logging the user out.

# Client Storage

	GET    /api/storage/{key} → Get
	PUT    /api/storage/{key} → Put ({"value": "..."})
	DELETE /api/storage/{key} → Delete

The login view uses this to persist the token and username keys.

# Notifications

	POST /api/notifications → Show ({"message", "type", "duration"})
*/
package handlers
