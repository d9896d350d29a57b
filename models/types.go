// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Route names
const (
	RouteHome        = "home"
	RouteLogin       = "login"
	RouteSignup      = "signup"
	RouteLanding     = "landing"
	RouteCreatePoll  = "create-poll"
	RoutePollDetails = "poll-details"
)

// Client storage keys
const (
	KeyToken         = "token"
	KeyUsername      = "username"
	KeyNotifications = "notifications"
)

// Request types

type SetValueRequest struct {
	Value string `json:"value"`
}

// Duration is in milliseconds; zero means the default
type ShowNotificationRequest struct {
	Message  string `json:"message"`
	Type     string `json:"type"`
	Duration int    `json:"duration"`
}

// Response types

type ValueResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Domain types

type Notification struct {
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	DurationMS int       `json:"duration"`
	CreatedAt  time.Time `json:"created_at"`
}

// PageData is what every view template receives
type PageData struct {
	RouteName     string
	Path          string
	Params        map[string]string
	DisplayName   string
	CSRFToken     string
	Notifications []Notification
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
