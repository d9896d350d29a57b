// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package routes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/quickly-pick-web/models"
	"github.com/danielhkuo/quickly-pick-web/views"
)

var ErrUnknownRoute = errors.New("unknown route")

// Route maps a path pattern to a named view. ":name" segments are parameters.
type Route struct {
	Path string
	Name string
	Load views.Loader
}

// Params holds the values of a route's ":name" segments
type Params map[string]string

// Table is the fixed set of navigable routes, in match order
type Table struct {
	routes []Route
}

func NewTable(routes ...Route) *Table {
	return &Table{routes: routes}
}

// Default builds the application's route table.
// loaders supplies the deferred view factory for each route name.
func Default(loaders map[string]views.Loader) *Table {
	return NewTable(
		Route{Path: "/home", Name: models.RouteHome, Load: loaders[models.RouteHome]},
		Route{Path: "/login", Name: models.RouteLogin, Load: loaders[models.RouteLogin]},
		Route{Path: "/signup", Name: models.RouteSignup, Load: loaders[models.RouteSignup]},
		Route{Path: "/", Name: models.RouteLanding, Load: loaders[models.RouteLanding]},
		Route{Path: "/create-poll", Name: models.RouteCreatePoll, Load: loaders[models.RouteCreatePoll]},
		Route{Path: "/poll/:id", Name: models.RoutePollDetails, Load: loaders[models.RoutePollDetails]},
	)
}

// Routes returns a copy of the table's routes
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Match finds the route for a URL path
func (t *Table) Match(path string) (Route, Params, bool) {
	got := splitPath(path)
	for _, r := range t.routes {
		if params, ok := matchSegments(splitPath(r.Path), got); ok {
			return r, params, true
		}
	}
	return Route{}, nil, false
}

// Lookup finds a route by name
func (t *Table) Lookup(name string) (Route, bool) {
	for _, r := range t.routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}

// PathFor builds the URL path of a named route
func (t *Table) PathFor(name string, params Params) (string, error) {
	r, ok := t.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}

	segs := splitPath(r.Path)
	for i, s := range segs {
		if !strings.HasPrefix(s, ":") {
			continue
		}
		v, ok := params[s[1:]]
		if !ok || v == "" {
			return "", fmt.Errorf("route %s: missing param %s", name, s[1:])
		}
		segs[i] = v
	}
	return "/" + strings.Join(segs, "/"), nil
}

// ParamNames lists a route's ":name" parameters in order
func ParamNames(r Route) []string {
	var names []string
	for _, s := range splitPath(r.Path) {
		if strings.HasPrefix(s, ":") {
			names = append(names, s[1:])
		}
	}
	return names
}

// Pattern converts a route path into an http.ServeMux GET pattern
func Pattern(r Route) string {
	segs := splitPath(r.Path)
	if len(segs) == 0 {
		return "GET /{$}"
	}
	for i, s := range segs {
		if strings.HasPrefix(s, ":") {
			segs[i] = "{" + s[1:] + "}"
		}
	}
	return "GET /" + strings.Join(segs, "/")
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func matchSegments(pattern, path []string) (Params, bool) {
	if len(pattern) != len(path) {
		return nil, false
	}
	params := Params{}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if path[i] == "" {
				return nil, false
			}
			params[p[1:]] = path[i]
			continue
		}
		if p != path[i] {
			return nil, false
		}
	}
	return params, true
}
