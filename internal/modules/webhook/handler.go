package webhook

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomasferreyra/verduqr-backend/internal/monitoring"
)

// Handler receives asynchronous payment notifications from the provider.
//
// The payload is logged and acknowledged, nothing more: no signature
// verification and no local state to update. Payment confirmation happens
// through the check-order polling endpoint instead of trusting this channel.
type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/webhook", h.receive)
}

func (h *Handler) receive(w http.ResponseWriter, r *http.Request) {
	monitoring.TickWebhookReceived()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error("failed to read webhook body", slog.Any("error", err))
		w.WriteHeader(http.StatusOK)
		return
	}
	defer r.Body.Close()

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		// The provider is always acked, whatever it sent.
		slog.Info("webhook received", slog.String("raw", string(body)))
		w.WriteHeader(http.StatusOK)
		return
	}

	slog.Info("webhook received", slog.Any("payload", payload))
	w.WriteHeader(http.StatusOK)
}
