package web

import (
	"database/sql"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/bledarhoxha/prona/internal/auth"
	"github.com/bledarhoxha/prona/internal/catalog"
	webembed "github.com/bledarhoxha/prona/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"price": func(p float64) string {
			if p == float64(int64(p)) {
				return fmt.Sprintf("€%d", int64(p))
			}
			return fmt.Sprintf("€%.2f", p)
		},
		"size": func(s float64) string {
			if s == float64(int64(s)) {
				return fmt.Sprintf("%d m²", int64(s))
			}
			return fmt.Sprintf("%.1f m²", s)
		},
		"typeName": func(t string) string {
			switch t {
			case "apartment":
				return "Apartment"
			case "house":
				return "House"
			case "land":
				return "Land"
			default:
				return t
			}
		},
		"statusName": func(s string) string {
			switch s {
			case "sale":
				return "For Sale"
			case "rent":
				return "For Rent"
			default:
				return s
			}
		},
	}
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"home.html",
		"properties.html",
		"property_detail.html",
		"about.html",
		"contact.html",
		"login.html",
		"admin.html",
		"admin_form.html",
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title   string
	User    *auth.Claims
	Error   string
	Success string
}

// Server holds all dependencies for page handlers.
type Server struct {
	DB        *sql.DB
	Catalog   *catalog.Service
	Templates *Templates
	JWTSecret string

	pages *pageCache
}
