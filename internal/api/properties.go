package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bledarhoxha/prona/internal/auth"
	"github.com/bledarhoxha/prona/internal/catalog"
	"github.com/bledarhoxha/prona/internal/imaging"
	"github.com/bledarhoxha/prona/internal/model"
	"github.com/bledarhoxha/prona/internal/store"
)

// PropertiesHandler handles the property catalog endpoints.
type PropertiesHandler struct {
	Catalog *catalog.Service
}

// List handles GET /api/properties.
func (h *PropertiesHandler) List(w http.ResponseWriter, r *http.Request) {
	props, err := h.Catalog.List(r.Context())
	if err != nil {
		catalogError(w, err)
		return
	}
	if props == nil {
		props = []model.Property{}
	}
	jsonResponse(w, http.StatusOK, props)
}

// Featured handles GET /api/properties/featured.
func (h *PropertiesHandler) Featured(w http.ResponseWriter, r *http.Request) {
	props, err := h.Catalog.Featured(r.Context(), store.FeaturedLimit)
	if err != nil {
		catalogError(w, err)
		return
	}
	if props == nil {
		props = []model.Property{}
	}
	jsonResponse(w, http.StatusOK, props)
}

// Get handles GET /api/properties/{id}.
func (h *PropertiesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.Catalog.Get(r.Context(), id)
	if err != nil {
		catalogError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, p)
}

// Create handles POST /api/properties.
func (h *PropertiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p model.Property
	if err := decodeJSON(r, &p); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Catalog.Create(r.Context(), GetIdentity(r.Context()), &p)
	if err != nil {
		catalogError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, created)
}

// Update handles PUT /api/properties/{id}.
func (h *PropertiesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch model.PropertyPatch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if patch.IsEmpty() {
		jsonError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	updated, err := h.Catalog.Update(r.Context(), GetIdentity(r.Context()), id, &patch)
	if err != nil {
		catalogError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/properties/{id}.
func (h *PropertiesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Catalog.Delete(r.Context(), GetIdentity(r.Context()), id); err != nil {
		catalogError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "property deleted"})
}

// UploadPhoto handles POST /api/properties/{id}/photos. The photo is
// processed, stored, and its locator appended to the listing's images so
// it becomes part of the ordered gallery (first upload becomes the cover).
func (h *PropertiesHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	identity := GetIdentity(r.Context())
	if !auth.Authorized(identity) {
		catalogError(w, catalog.ErrUnauthorized)
		return
	}

	p, err := h.Catalog.Get(r.Context(), id)
	if err != nil {
		catalogError(w, err)
		return
	}

	// Limit to 10 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "photo file required")
		return
	}
	defer file.Close()

	photo, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	photoID, err := store.SavePhoto(r.Context(), h.Catalog.DB, id, photo.Data, photo.MIME)
	if err != nil {
		catalogError(w, err)
		return
	}

	locator := fmt.Sprintf("/api/properties/%s/photos/%d", id, photoID)
	images := append(p.Images, locator)
	updated, err := h.Catalog.Update(r.Context(), identity, id, &model.PropertyPatch{Images: &images})
	if err != nil {
		catalogError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]any{
		"url":    locator,
		"images": updated.Images,
	})
}

// GetPhoto handles GET /api/properties/{id}/photos/{photoID}. With
// ?size=thumb a small rendition is produced for listing cards.
func (h *PropertiesHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	photoID, err := strconv.ParseInt(chi.URLParam(r, "photoID"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid photo id")
		return
	}

	data, mime, err := store.GetPhoto(r.Context(), h.Catalog.DB, photoID)
	if err != nil {
		catalogError(w, err)
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no such photo")
		return
	}

	if r.URL.Query().Get("size") == "thumb" {
		thumb, err := imaging.Thumbnail(bytes.NewReader(data))
		if err != nil {
			catalogError(w, err)
			return
		}
		data, mime = thumb.Data, thumb.MIME
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
