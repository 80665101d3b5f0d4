package main

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomasferreyra/verduqr-backend/internal/config"
	"github.com/tomasferreyra/verduqr-backend/internal/mercadopago"
	"github.com/tomasferreyra/verduqr-backend/internal/modules/order"
	"github.com/tomasferreyra/verduqr-backend/internal/modules/qr"
	"github.com/tomasferreyra/verduqr-backend/internal/modules/webhook"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, reading configuration from the environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Provider client ─────────────────────────────────────
	mpClient := mercadopago.NewClient(cfg.BaseURL, cfg.AccessToken, cfg.UserID)

	// ── Fixed-QR orders ─────────────────────────────────────
	orderService := order.NewService(mpClient, cfg.ExternalStoreID, cfg.ExternalPOSID)
	order.NewHandler(orderService).RegisterRoutes(router)

	// ── QR info (provisioning result) ───────────────────────
	setupStore := qr.NewFileStore(cfg.SetupFile)
	qr.NewHandler(setupStore).RegisterRoutes(router)

	// ── Provider webhook ────────────────────────────────────
	webhook.NewHandler().RegisterRoutes(router)

	// ── Prometheus metrics ──────────────────────────────────
	router.Handle("/metrics", promhttp.Handler())

	// ── Start Server ────────────────────────────────────────
	slog.Info("VerduQR API server starting", slog.String("port", cfg.Port))
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
