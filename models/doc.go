// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines shared names, request/response types and view data.

# Route Names

Every navigable page has a symbolic name:

  - RouteHome: /home
  - RouteLogin: /login
  - RouteSignup: /signup
  - RouteLanding: /
  - RouteCreatePoll: /create-poll
  - RoutePollDetails: /poll/:id

# Storage Keys

Per-client storage uses fixed keys:

  - KeyToken: bearer credential for the backend
  - KeyUsername: display name
  - KeyNotifications: pending notification queue (JSON)

# Request Types

  - SetValueRequest: value
  - ShowNotificationRequest: message, type, duration (ms)

# Response Types

  - ValueResponse: key, value
  - ErrorResponse: error, message

# View Data

PageData is passed to every view template and carries the route name,
path parameters, the client's display name and drained notifications.
*/
package models
