// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-pick-web/auth"
	"github.com/danielhkuo/quickly-pick-web/guard"
	"github.com/danielhkuo/quickly-pick-web/middleware"
	"github.com/danielhkuo/quickly-pick-web/models"
	"github.com/danielhkuo/quickly-pick-web/notify"
	"github.com/danielhkuo/quickly-pick-web/routes"
	"github.com/danielhkuo/quickly-pick-web/session"
	"github.com/danielhkuo/quickly-pick-web/storage"
	"github.com/danielhkuo/quickly-pick-web/views"
)

type PageHandler struct {
	registry  *routes.Registry
	guard     *guard.Guard
	validator *session.Validator
	backend   storage.Backend
	contexts  *session.Contexts
}

func NewPageHandler(registry *routes.Registry, g *guard.Guard, v *session.Validator, backend storage.Backend, contexts *session.Contexts) *PageHandler {
	return &PageHandler{
		registry:  registry,
		guard:     g,
		validator: v,
		backend:   backend,
		contexts:  contexts,
	}
}

// Serve returns the handler for one route of the table.
// Protected routes check the stored token before rendering.
func (h *PageHandler) Serve(route routes.Route) http.HandlerFunc {
	paramNames := routes.ParamNames(route)

	return func(w http.ResponseWriter, r *http.Request) {
		view, err := h.registry.Resolve(route.Name)
		if err != nil {
			slog.Error("failed to resolve view", "route", route.Name, "error", err)
			renderError(w, http.StatusInternalServerError, "Page unavailable")
			return
		}

		clientID := middleware.ClientID(r.Context())
		if clientID == "" {
			slog.Error("page served without client id", "route", route.Name)
			renderError(w, http.StatusInternalServerError, "Missing client id")
			return
		}
		store := h.backend.Store(clientID)

		if !h.guard.IsPublic(route.Name) {
			nav := session.NewHTTPNavigator(w, r)
			err := h.validator.Check(r.Context(), store, nav)
			if errors.Is(err, session.ErrTransport) {
				slog.Error("session check failed", "route", route.Name, "error", err)
				renderError(w, http.StatusBadGateway, "Could not reach the server, try again shortly")
				return
			}
			if err != nil {
				slog.Error("session check failed", "route", route.Name, "error", err)
				renderError(w, http.StatusInternalServerError, "Session storage error")
				return
			}
			if nav.Redirected() {
				// the login redirect reloads the app, which starts a fresh session context
				h.contexts.Forget(clientID)
				return
			}
		}

		sc, err := h.contexts.Sync(r.Context(), clientID, store)
		if err != nil {
			slog.Warn("failed to sync display name", "error", err)
		}

		pending, err := notify.QueueSink{Queue: h.backend.Queue(clientID)}.Drain(r.Context())
		if err != nil {
			slog.Warn("failed to drain notifications", "error", err)
		}

		csrf, _ := auth.CSRFToken(r.Context(), storage.NewCookieStore(nil, r))

		params := make(map[string]string, len(paramNames))
		for _, name := range paramNames {
			params[name] = r.PathValue(name)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = view.Render(w, models.PageData{
			RouteName:     route.Name,
			Path:          r.URL.Path,
			Params:        params,
			DisplayName:   sc.DisplayName(),
			CSRFToken:     csrf,
			Notifications: pending,
		})
		if err != nil {
			slog.Error("failed to render view", "route", route.Name, "error", err)
		}
	}
}

// NotFound renders paths outside the route table. The guard has already
// sent clients without a session to the login page.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	renderError(w, http.StatusNotFound, "Page not found")
}

func renderError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := views.ErrorPage(w, status, message); err != nil {
		slog.Error("failed to render error page", "error", err)
	}
}
