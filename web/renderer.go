// Package web holds the embedded HTML templates and the echo.Renderer
// implementation that executes them.
package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the embedded page templates by file name.
type Renderer struct {
	templates *template.Template
}

// funcs are the helpers available inside templates.
var funcs = template.FuncMap{
	// has reports whether a string slice contains a value; used to mark
	// the selected genres on edit forms.
	"has": func(list []string, v string) bool {
		for _, item := range list {
			if item == v {
				return true
			}
		}
		return false
	},
}

// NewRenderer parses every template under web/templates.
func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
