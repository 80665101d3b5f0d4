package qr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the qr-info endpoint.
type Handler struct{ store SetupStore }

func NewHandler(store SetupStore) *Handler { return &Handler{store: store} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/qr-info", h.getInfo)
}

func (h *Handler) getInfo(w http.ResponseWriter, r *http.Request) {
	pos, err := h.store.Load()
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			respond(w, http.StatusNotFound, map[string]string{
				"error": "No se encontró configuración de caja. Corre el comando de setup primero.",
			})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	respond(w, http.StatusOK, InfoResponse{
		QRImage:       pos.QR.Image,
		ExternalPOSID: pos.ExternalID,
	})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
