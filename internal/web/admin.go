package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/bledarhoxha/prona/internal/auth"
	"github.com/bledarhoxha/prona/internal/catalog"
	"github.com/bledarhoxha/prona/internal/model"
	"github.com/bledarhoxha/prona/internal/store"
)

// LoginPage handles GET /admin/login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "login.html", &PageData{Title: "Sign In"})
}

// LoginSubmit handles POST /admin/login. Only admin accounts get a
// session; a valid password on a non-admin account is still rejected.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	if email == "" || password == "" {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Sign In",
			Error: "Enter your email and password.",
		})
		return
	}

	user, err := store.GetUserByEmail(r.Context(), s.DB, email)
	if err != nil || user == nil || user.DeletedAt != nil {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Sign In",
			Error: "Wrong email or password.",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Sign In",
			Error: "Wrong email or password.",
		})
		return
	}

	if !user.Admin {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Sign In",
			Error: "This account has no admin access.",
		})
		return
	}

	token, err := auth.GenerateToken(s.JWTSecret, user.ID, user.Email, user.Admin)
	if err != nil {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Sign In",
			Error: "Sign-in failed, try again.",
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   86400, // 24 hours
	})

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout handles POST /admin/logout. The session token is revoked, not
// just dropped from the browser, so a copied cookie dies with the session.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("token"); err == nil && cookie.Value != "" {
		claims, err := auth.ValidateToken(s.JWTSecret, cookie.Value)
		if err == nil && claims.ID != "" && claims.ExpiresAt != nil {
			if err := store.RevokeToken(r.Context(), s.DB, claims.ID, claims.ExpiresAt.Time); err != nil {
				slog.Error("failed to revoke token", "error", err)
			}
		}
	}

	clearAuthCookie(w)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// AdminPage handles GET /admin. It lists every property for management.
func (s *Server) AdminPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	props, err := s.Catalog.List(r.Context())
	if err != nil {
		slog.Error("failed to list properties", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "admin.html", &struct {
		PageData
		Properties []model.Property
	}{
		PageData:   PageData{Title: "Manage Properties", User: claims},
		Properties: props,
	})
}

// AdminNewPage handles GET /admin/properties/new.
func (s *Server) AdminNewPage(w http.ResponseWriter, r *http.Request) {
	s.renderForm(w, r, &model.Property{Type: model.TypeApartment, Status: model.StatusSale}, "")
}

// AdminCreateSubmit handles POST /admin/properties/new.
func (s *Server) AdminCreateSubmit(w http.ResponseWriter, r *http.Request) {
	p, err := propertyFromForm(r)
	if err != nil {
		s.renderForm(w, r, p, err.Error())
		return
	}

	created, err := s.Catalog.Create(r.Context(), webIdentity(r.Context()), p)
	if err != nil {
		if errors.Is(err, model.ErrInvalid) {
			s.renderForm(w, r, p, err.Error())
			return
		}
		slog.Error("failed to create property", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/properties/"+created.ID, http.StatusSeeOther)
}

// AdminEditPage handles GET /admin/properties/{id}.
func (s *Server) AdminEditPage(w http.ResponseWriter, r *http.Request) {
	p, err := s.Catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		catalogPageError(w, err)
		return
	}
	s.renderForm(w, r, p, "")
}

// AdminUpdateSubmit handles POST /admin/properties/{id}.
func (s *Server) AdminUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := propertyFromForm(r)
	if err != nil {
		p.ID = id
		s.renderForm(w, r, p, err.Error())
		return
	}

	patch := &model.PropertyPatch{
		Title:       &p.Title,
		Description: &p.Description,
		Location:    &p.Location,
		Price:       &p.Price,
		Type:        &p.Type,
		Status:      &p.Status,
		Size:        &p.Size,
		Rooms:       &p.Rooms,
		Bathrooms:   &p.Bathrooms,
		Images:      &p.Images,
		Featured:    &p.Featured,
	}

	if _, err := s.Catalog.Update(r.Context(), webIdentity(r.Context()), id, patch); err != nil {
		if errors.Is(err, model.ErrInvalid) {
			p.ID = id
			s.renderForm(w, r, p, err.Error())
			return
		}
		catalogPageError(w, err)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// AdminDeleteSubmit handles POST /admin/properties/{id}/delete.
func (s *Server) AdminDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.Catalog.Delete(r.Context(), webIdentity(r.Context()), id); err != nil {
		catalogPageError(w, err)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (s *Server) renderForm(w http.ResponseWriter, r *http.Request, p *model.Property, errMsg string) {
	s.Templates.Render(w, "admin_form.html", &struct {
		PageData
		Property *model.Property
		Types    []string
		Statuses []string
	}{
		PageData: PageData{Title: "Edit Property", User: GetWebClaims(r.Context()), Error: errMsg},
		Property: p,
		Types:    []string{model.TypeApartment, model.TypeHouse, model.TypeLand},
		Statuses: []string{model.StatusSale, model.StatusRent},
	})
}

// propertyFromForm parses the admin form. Numeric fields are strict: a
// value that does not parse is an error shown to the user, never silently
// treated as zero. The partially parsed property is returned either way
// so the form can be re-rendered with the submitted values.
func propertyFromForm(r *http.Request) (*model.Property, error) {
	p := &model.Property{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Location:    strings.TrimSpace(r.FormValue("location")),
		Type:        r.FormValue("type"),
		Status:      r.FormValue("status"),
		Featured:    r.FormValue("featured") == "on",
		Images:      []string{},
	}

	for _, line := range strings.Split(r.FormValue("images"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			p.Images = append(p.Images, line)
		}
	}

	var err error
	if p.Price, err = parseFloatField(r.FormValue("price"), "price"); err != nil {
		return p, err
	}
	if p.Size, err = parseFloatField(r.FormValue("size"), "size"); err != nil {
		return p, err
	}
	if p.Rooms, err = parseIntField(r.FormValue("rooms"), "rooms"); err != nil {
		return p, err
	}
	if p.Bathrooms, err = parseIntField(r.FormValue("bathrooms"), "bathrooms"); err != nil {
		return p, err
	}

	return p, nil
}

func parseFloatField(value, name string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return f, nil
}

func parseIntField(value, name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", name)
	}
	return n, nil
}

// catalogPageError writes the page-level response for a catalog error.
func catalogPageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		http.Error(w, "property not found", http.StatusNotFound)
	case errors.Is(err, catalog.ErrUnauthorized):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		slog.Error("catalog error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
