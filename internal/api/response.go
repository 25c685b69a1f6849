package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bledarhoxha/prona/internal/catalog"
	"github.com/bledarhoxha/prona/internal/model"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("encoding response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// catalogError maps a catalog failure onto the right status code.
// Unauthorized and not-found are normal negative outcomes; anything else
// is a store failure and is surfaced as a 500 instead of being masked as
// empty data.
func catalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrUnauthorized):
		jsonError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, catalog.ErrNotFound):
		jsonError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrInvalid):
		jsonError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("catalog operation failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}
