package web

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bledarhoxha/prona/internal/catalog"
	webembed "github.com/bledarhoxha/prona/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sql.DB, svc *catalog.Service, jwtSecret string) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:        db,
		Catalog:   svc,
		Templates: templates,
		JWTSecret: jwtSecret,
		pages:     newPageCache(svc),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	cookieAuth := CookieAuthMiddleware(jwtSecret, db)

	// Static assets.
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Public pages.
	r.Get("/", s.HomePage)
	r.Get("/properties", s.PropertiesPage)
	r.Get("/properties/{id}", s.PropertyDetailPage)
	r.Get("/about", s.AboutPage)
	r.Get("/contact", s.ContactPage)

	r.Get("/admin/login", s.LoginPage)
	r.Post("/admin/login", s.LoginSubmit)
	r.Post("/admin/logout", s.Logout)

	// Staff-only management pages.
	r.Group(func(r chi.Router) {
		r.Use(cookieAuth)
		r.Get("/admin", s.AdminPage)
		r.Get("/admin/properties/new", s.AdminNewPage)
		r.Post("/admin/properties/new", s.AdminCreateSubmit)
		r.Get("/admin/properties/{id}", s.AdminEditPage)
		r.Post("/admin/properties/{id}", s.AdminUpdateSubmit)
		r.Post("/admin/properties/{id}/delete", s.AdminDeleteSubmit)
	})

	return r, nil
}
