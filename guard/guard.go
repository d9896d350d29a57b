// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package guard

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/danielhkuo/quickly-pick-web/auth"
	"github.com/danielhkuo/quickly-pick-web/metrics"
	"github.com/danielhkuo/quickly-pick-web/models"
	"github.com/danielhkuo/quickly-pick-web/routes"
	"github.com/danielhkuo/quickly-pick-web/storage"
)

// Target is one end of a navigation. Name is empty for unknown paths.
type Target struct {
	Name string
	Path string
}

// Decision is the guard's verdict: proceed when RedirectTo is empty,
// otherwise redirect to the named route.
type Decision struct {
	RedirectTo string
}

func (d Decision) Proceed() bool { return d.RedirectTo == "" }

// Guard decides whether a navigation may go ahead
type Guard struct {
	Public map[string]bool
	Login  string
	Home   string
}

// New returns the guard used by the application: login, landing and
// signup are reachable without a session.
func New() *Guard {
	return &Guard{
		Public: map[string]bool{
			models.RouteLogin:   true,
			models.RouteLanding: true,
			models.RouteSignup:  true,
		},
		Login: models.RouteLogin,
		Home:  models.RouteHome,
	}
}

// Check runs before a navigation commits.
// Redirect targets are public or require a session, so following one never loops.
func (g *Guard) Check(to, from Target, hasSession bool) Decision {
	if !g.Public[to.Name] && !hasSession {
		return Decision{RedirectTo: g.Login}
	}
	if to.Name == g.Login && hasSession {
		return Decision{RedirectTo: g.Home}
	}
	return Decision{}
}

// IsPublic reports whether a route is reachable without a session
func (g *Guard) IsPublic(name string) bool {
	return g.Public[name]
}

// Middleware applies the guard to every request before next runs
func Middleware(g *Guard, table *routes.Table, m *metrics.Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		to := target(table, r.URL.Path)
		from := Target{}
		if ref, err := url.Parse(r.Referer()); err == nil && ref.Path != "" {
			from = target(table, ref.Path)
		}

		hasSession := auth.HasSession(r.Context(), storage.NewCookieStore(nil, r))
		d := g.Check(to, from, hasSession)
		if d.Proceed() {
			m.GuardDecisions.WithLabelValues(to.Name, metrics.OutcomeProceed).Inc()
			next.ServeHTTP(w, r)
			return
		}

		path, err := table.PathFor(d.RedirectTo, nil)
		if err != nil {
			slog.Error("guard redirect target missing", "target", d.RedirectTo, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		m.GuardDecisions.WithLabelValues(to.Name, metrics.OutcomeRedirect).Inc()
		slog.Info("navigation redirected",
			"to", to.Name,
			"from", from.Name,
			"path", r.URL.Path,
			"redirect", d.RedirectTo,
		)
		http.Redirect(w, r, path, http.StatusFound)
	})
}

func target(table *routes.Table, path string) Target {
	r, _, ok := table.Match(path)
	if !ok {
		return Target{Path: path}
	}
	return Target{Name: r.Name, Path: path}
}
