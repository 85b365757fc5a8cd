// Package httptransport exposes the bot's ops HTTP surface: health,
// Prometheus metrics, and a token-protected view of recent action records.
// The moderation pipeline does not depend on anything here.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"modbot/internal/platform/middleware"
)

// NewRouter wires the ops endpoints. validator guards everything mounted by
// handler.Register.
func NewRouter(handler *Handler, validator middleware.TokenValidator, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(validator, logger))
		handler.Register(r)
	})

	return r
}
