package order

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomasferreyra/verduqr-backend/internal/mercadopago"
	"github.com/tomasferreyra/verduqr-backend/internal/monitoring"
)

// Handler exposes the fixed-QR order HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/create-order", h.createOrder)               // POST /api/create-order
		r.Get("/check-order/{order_id}", h.checkOrderStatus) // GET  /api/check-order/{id}
	})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "Monto es requerido"})
		return
	}
	if req.Amount == nil || *req.Amount <= 0 {
		respond(w, http.StatusBadRequest, map[string]string{"error": "Monto es requerido"})
		return
	}

	ref, err := h.service.CreateOrder(r.Context(), *req.Amount)
	if err != nil {
		monitoring.TickOrderCreateFailed()
		slog.Error("No se pudo cargar el monto al QR", slog.Any("error", err))

		var apiErr *mercadopago.APIError
		if errors.As(err, &apiErr) {
			respond(w, apiErr.StatusCode, map[string]interface{}{
				"error":   "No se pudo cargar el monto al QR",
				"details": apiErr.Details(),
			})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	monitoring.TickOrderCreated()
	respond(w, http.StatusOK, CreateOrderResponse{
		Status:            "success",
		Message:           "Monto cargado al QR fijo",
		ExternalReference: ref,
	})
}

func (h *Handler) checkOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	status, err := h.service.CheckStatus(r.Context(), orderID)
	if err != nil {
		monitoring.TickStatusCheckFailed()
		slog.Error("No se pudo consultar el estado del pago", slog.Any("error", err))

		var apiErr *mercadopago.APIError
		if errors.As(err, &apiErr) {
			respond(w, apiErr.StatusCode, map[string]interface{}{
				"error":   "No se pudo consultar el estado del pago",
				"details": apiErr.Details(),
			})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	monitoring.TickStatusChecked()
	respond(w, http.StatusOK, status)
}

// respond writes a JSON body with the given status code.
func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
