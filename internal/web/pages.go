package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bledarhoxha/prona/internal/filter"
	"github.com/bledarhoxha/prona/internal/model"
	"github.com/bledarhoxha/prona/internal/store"
)

// HomePage handles GET /. It shows the featured listings.
func (s *Server) HomePage(w http.ResponseWriter, r *http.Request) {
	featured, err := s.pages.featured(r.Context())
	if err != nil {
		slog.Error("failed to load featured listings", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "home.html", &struct {
		PageData
		Featured []model.Property
	}{
		PageData: PageData{Title: "Prona"},
		Featured: featured,
	})
}

// PropertiesPage handles GET /properties. Query parameters seed the
// filter, so links like /properties?type=apartment work as entry points.
func (s *Server) PropertiesPage(w http.ResponseWriter, r *http.Request) {
	props, err := s.pages.properties(r.Context())
	if err != nil {
		slog.Error("failed to list properties", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	spec := filter.FromQuery(r.URL.Query())
	filtered := filter.Apply(props, spec)

	s.Templates.Render(w, "properties.html", &struct {
		PageData
		Properties []model.Property
		Filter     filter.Spec
		Total      int
	}{
		PageData:   PageData{Title: "Properties"},
		Properties: filtered,
		Filter:     spec,
		Total:      len(props),
	})
}

// PropertyDetailPage handles GET /properties/{id}.
func (s *Server) PropertyDetailPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := s.Catalog.Get(r.Context(), id)
	if err != nil {
		catalogPageError(w, err)
		return
	}

	s.Templates.Render(w, "property_detail.html", &struct {
		PageData
		Property *model.Property
	}{
		PageData: PageData{Title: p.Title},
		Property: p,
	})
}

// AboutPage handles GET /about.
func (s *Server) AboutPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "about.html", &PageData{Title: "About Us"})
}

// ContactPage handles GET /contact. The contact details live in settings
// so staff can change them without a deploy.
func (s *Server) ContactPage(w http.ResponseWriter, r *http.Request) {
	email, err := store.GetSetting(r.Context(), s.DB, "contact_email", "info@prona.al")
	if err != nil {
		slog.Error("failed to load contact email", "error", err)
	}
	phone, err := store.GetSetting(r.Context(), s.DB, "contact_phone", "+355 4 222 0000")
	if err != nil {
		slog.Error("failed to load contact phone", "error", err)
	}
	address, err := store.GetSetting(r.Context(), s.DB, "contact_address", "Rruga e Kavajës, Tirana, Albania")
	if err != nil {
		slog.Error("failed to load contact address", "error", err)
	}

	s.Templates.Render(w, "contact.html", &struct {
		PageData
		Email   string
		Phone   string
		Address string
	}{
		PageData: PageData{Title: "Contact"},
		Email:    email,
		Phone:    phone,
		Address:  address,
	})
}
