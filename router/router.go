// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danielhkuo/quickly-pick-web/cliparse"
	"github.com/danielhkuo/quickly-pick-web/guard"
	"github.com/danielhkuo/quickly-pick-web/handlers"
	"github.com/danielhkuo/quickly-pick-web/metrics"
	"github.com/danielhkuo/quickly-pick-web/middleware"
	"github.com/danielhkuo/quickly-pick-web/routes"
	"github.com/danielhkuo/quickly-pick-web/session"
	"github.com/danielhkuo/quickly-pick-web/storage"
	"github.com/danielhkuo/quickly-pick-web/views"
)

func NewRouter(backend storage.Backend, cfg cliparse.Config, reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	m := metrics.New(reg)

	table := routes.Default(views.Loaders())
	g := guard.New()
	validator := session.NewValidator(cfg.BaseURL, &http.Client{Timeout: cfg.APITimeout}, m)

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(routes.NewRegistry(table), g, validator, backend, session.NewContexts())
	storageHandler := handlers.NewStorageHandler(backend)
	notificationHandler := handlers.NewNotificationHandler(backend, m)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", metrics.Handler(reg))

	// Pages, each behind the navigation guard
	for _, route := range table.Routes() {
		mux.Handle(routes.Pattern(route), guard.Middleware(g, table, m, pageHandler.Serve(route)))
	}
	mux.Handle("GET /", guard.Middleware(g, table, m, http.HandlerFunc(pageHandler.NotFound)))

	// Client storage
	mux.HandleFunc("GET /api/storage/{key}", storageHandler.Get)
	mux.HandleFunc("PUT /api/storage/{key}", storageHandler.Put)
	mux.HandleFunc("DELETE /api/storage/{key}", storageHandler.Delete)

	// Notifications
	mux.HandleFunc("POST /api/notifications", notificationHandler.Show)

	return middleware.WithLogging(middleware.CORS(cfg.AllowedOrigins)(middleware.WithClient(mux)))
}
