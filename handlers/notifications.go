// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/danielhkuo/quickly-pick-web/metrics"
	"github.com/danielhkuo/quickly-pick-web/middleware"
	"github.com/danielhkuo/quickly-pick-web/models"
	"github.com/danielhkuo/quickly-pick-web/notify"
	"github.com/danielhkuo/quickly-pick-web/storage"
)

type NotificationHandler struct {
	backend storage.Backend
	metrics *metrics.Metrics
}

func NewNotificationHandler(backend storage.Backend, m *metrics.Metrics) *NotificationHandler {
	return &NotificationHandler{backend: backend, metrics: m}
}

// Show handles POST /api/notifications
// Queues a notification for the caller's next page load
func (h *NotificationHandler) Show(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.ClientID(r.Context())
	if clientID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "client id cookie required")
		return
	}

	var req models.ShowNotificationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Message == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "message is required")
		return
	}

	opts := []notify.Option{notify.WithSeverity(req.Type)}
	if req.Duration > 0 {
		opts = append(opts, notify.WithDuration(time.Duration(req.Duration)*time.Millisecond))
	}

	notify.Show(r.Context(), notify.QueueSink{Queue: h.backend.Queue(clientID)}, req.Message, opts...)
	h.metrics.Notifications.WithLabelValues(notify.Normalize(req.Type)).Inc()

	w.WriteHeader(http.StatusAccepted)
}
