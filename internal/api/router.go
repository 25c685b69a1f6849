package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bledarhoxha/prona/internal/catalog"
)

// NewRouter creates the API router with all endpoints registered.
// Reads are public; mutations carry the caller's identity into the
// catalog, which enforces the admin requirement itself.
func NewRouter(db *sql.DB, svc *catalog.Service, jwtSecret string, corsOrigins []string) http.Handler {
	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	propertiesHandler := &PropertiesHandler{Catalog: svc}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if len(corsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}))
	}
	r.Use(IdentityMiddleware(jwtSecret, db))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)
		r.Put("/auth/password", authHandler.ChangePassword)

		r.Route("/properties", func(r chi.Router) {
			r.Get("/", propertiesHandler.List)
			r.Get("/featured", propertiesHandler.Featured)
			r.Post("/", propertiesHandler.Create)
			r.Get("/{id}", propertiesHandler.Get)
			r.Put("/{id}", propertiesHandler.Update)
			r.Delete("/{id}", propertiesHandler.Delete)
			r.Post("/{id}/photos", propertiesHandler.UploadPhoto)
			r.Get("/{id}/photos/{photoID}", propertiesHandler.GetPhoto)
		})
	})

	return r
}
