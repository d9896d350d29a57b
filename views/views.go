// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-pick-web/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var ErrNoTemplate = errors.New("no template for view")

// View renders one page
type View interface {
	Render(w io.Writer, data models.PageData) error
}

// Loader builds a view on demand. It runs the first time a route is visited.
type Loader func() (View, error)

var funcs = template.FuncMap{
	"ago": func(t time.Time) string { return humanize.Time(t) },
	"seconds": func(ms int) string {
		return humanize.FtoaWithDigits(float64(ms)/1000, 1) + "s"
	},
}

type page struct {
	tmpl *template.Template
}

func (p *page) Render(w io.Writer, data models.PageData) error {
	return p.tmpl.ExecuteTemplate(w, "layout", data)
}

// Template returns a loader that parses the layout plus templates/{name}.html
func Template(name string) Loader {
	return func() (View, error) {
		file := "templates/" + name + ".html"
		if _, err := fs.Stat(templateFS, file); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNoTemplate, name)
		}

		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse view %s: %w", name, err)
		}
		return &page{tmpl: tmpl}, nil
	}
}

// Loaders returns a template loader for every route name
func Loaders() map[string]Loader {
	names := []string{
		models.RouteHome,
		models.RouteLogin,
		models.RouteSignup,
		models.RouteLanding,
		models.RouteCreatePoll,
		models.RoutePollDetails,
	}

	loaders := make(map[string]Loader, len(names))
	for _, name := range names {
		loaders[name] = Template(name)
	}
	return loaders
}

var errorPage = template.Must(
	template.New("error").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/error.html"),
)

// ErrorPage renders the shared error template
func ErrorPage(w io.Writer, status int, message string) error {
	return errorPage.ExecuteTemplate(w, "layout", map[string]any{
		"Status":  status,
		"Message": message,
	})
}
