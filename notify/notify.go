// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/quickly-pick-web/models"
	"github.com/danielhkuo/quickly-pick-web/storage"
)

// Severity values
const (
	Success = "success"
	Warning = "warning"
	Error   = "error"
	Default = "default"
	Info    = "info"
)

const DefaultDuration = 3000 * time.Millisecond

// Sink receives notifications for display
type Sink interface {
	Enqueue(ctx context.Context, n models.Notification) error
}

type options struct {
	severity string
	duration time.Duration
}

type Option func(*options)

// WithSeverity sets the notification type; unknown values become Default
func WithSeverity(s string) Option {
	return func(o *options) { o.severity = s }
}

// WithDuration sets how long the notification stays visible
func WithDuration(d time.Duration) Option {
	return func(o *options) { o.duration = d }
}

// Show queues a notification. Errors are logged, never returned.
func Show(ctx context.Context, sink Sink, message string, opts ...Option) {
	o := options{severity: Success, duration: DefaultDuration}
	for _, opt := range opts {
		opt(&o)
	}
	if o.duration <= 0 {
		o.duration = DefaultDuration
	}

	n := models.Notification{
		Message:    message,
		Type:       Normalize(o.severity),
		DurationMS: int(o.duration / time.Millisecond),
		CreatedAt:  time.Now(),
	}

	if err := sink.Enqueue(ctx, n); err != nil {
		slog.Error("failed to enqueue notification", "type", n.Type, "error", err)
	}
}

// Normalize maps a severity onto the supported set
func Normalize(s string) string {
	switch s {
	case Success, Warning, Error, Default, Info:
		return s
	case "":
		return Success
	}
	return Default
}

// QueueSink keeps pending notifications in a client's queue, one JSON
// object per item
type QueueSink struct {
	Queue storage.Queue
}

func (s QueueSink) Enqueue(ctx context.Context, n models.Notification) error {
	b, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}
	return s.Queue.Push(ctx, models.KeyNotifications, string(b))
}

// Drain returns the pending notifications, oldest first, and clears the queue.
// Unreadable items are dropped.
func (s QueueSink) Drain(ctx context.Context) ([]models.Notification, error) {
	items, err := s.Queue.PopAll(ctx, models.KeyNotifications)
	if err != nil {
		return nil, err
	}

	var pending []models.Notification
	for _, item := range items {
		var n models.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			slog.Warn("discarding unreadable notification", "error", err)
			continue
		}
		pending = append(pending, n)
	}
	return pending, nil
}
