// Package view renders the embedded HTML templates. html/template escapes all
// interpolated values, which is the whole injection-safety story for user
// supplied titles, descriptions, names and search terms.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates
var files embed.FS

// Data is the template context, Twig-style: a flat name->value mapping.
type Data map[string]any

type Renderer struct {
	tpl *template.Template
}

func New() (*Renderer, error) {
	tpl, err := template.ParseFS(files,
		"templates/*.html",
		"templates/auth/*.html",
		"templates/tickets/*.html",
	)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Render executes the named template into a buffer first so a template error
// yields a clean 500 instead of a half-written page.
func (rd *Renderer) Render(w http.ResponseWriter, status int, name string, data Data) {
	if data == nil {
		data = Data{}
	}
	var buf bytes.Buffer
	if err := rd.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
