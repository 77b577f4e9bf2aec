// Package views renders the embedded HTML templates. Pages are server
// rendered: the browser gets finished markup and every interaction is a
// plain form post or link.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/nipia/imobiliaria-dashboard/catalog"
	"github.com/nipia/imobiliaria-dashboard/models"
	"github.com/nipia/imobiliaria-dashboard/toast"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Page is the envelope every template receives. User and Caps drive which
// controls render; Toasts are shown once by the layout.
type Page struct {
	Title  string
	User   *models.User
	Caps   models.Capabilities
	Toasts []toast.Toast
	Data   any
}

type Views struct {
	t *template.Template
}

func New() (*Views, error) {
	funcs := template.FuncMap{
		"displayPrice": catalog.DisplayPrice,
		"location":     catalog.Location,
		"features":     catalog.Features,
		"roleLabel":    models.RoleLabel,
	}
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Views{t: t}, nil
}

func (v *Views) Render(w http.ResponseWriter, name string, page Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := v.t.ExecuteTemplate(w, name, page); err != nil {
		log.Printf("Error rendering template %s: %v", name, err)
	}
}
