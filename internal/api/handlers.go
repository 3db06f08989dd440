package api

import (
	"encoding/json"
	"net/http"

	"github.com/maksimkurb/wpa-netman/internal/config"
	"github.com/maksimkurb/wpa-netman/internal/store"
)

// Handler manages all API endpoints. It holds the effective settings
// loaded when the server started; the API never mutates them.
type Handler struct {
	cfg *config.Config
}

// NewHandler creates a new API handler with the given settings.
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// store returns the fragment store for the configured networks directory.
func (h *Handler) store() *store.Store {
	return store.New(h.cfg.GetAbsNetworksDir())
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(DataResponse{Data: data})
}

// writeJSONData writes a successful JSON response with data.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// writeCreated writes a 201 Created response with data.
func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, data)
}

// writeNoContent writes a 204 No Content response.
func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// decodeJSON decodes JSON from the request body.
func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
