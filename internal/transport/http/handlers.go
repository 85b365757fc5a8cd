package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"modbot/internal/actions"
)

// ActionLister reads recent action records; satisfied by *actions.Service.
type ActionLister interface {
	ListRecent(ctx context.Context, guildID int64, limit int) ([]actions.Record, error)
}

// Handler is the thin HTTP layer over the ops surface. It delegates to the
// action service without embedding business logic.
type Handler struct {
	lister ActionLister
	logger *slog.Logger
}

func NewHandler(lister ActionLister, logger *slog.Logger) *Handler {
	return &Handler{lister: lister, logger: logger}
}

// Register mounts the authenticated ops endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/actions", h.HandleListActions)
}

type actionResponse struct {
	ID          int64  `json:"id"`
	GuildID     uint64 `json:"guild_id"`
	Kind        string `json:"kind"`
	Created     string `json:"created"`
	CreatedByID uint64 `json:"created_by_id"`
}

// HandleListActions handles GET /actions?guild_id=...&limit=...
func (h *Handler) HandleListActions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	guildID, err := strconv.ParseUint(r.URL.Query().Get("guild_id"), 10, 64)
	if err != nil {
		http.Error(w, "guild_id is required", http.StatusBadRequest)
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 500 {
			http.Error(w, "limit must be between 1 and 500", http.StatusBadRequest)
			return
		}
	}

	recs, err := h.lister.ListRecent(ctx, int64(guildID), limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "listing actions failed",
			"guild_id", guildID,
			"error", err,
		)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]actionResponse, 0, len(recs))
	for _, rec := range recs {
		payload := actions.NewPayload(rec)
		out = append(out, actionResponse{
			ID:          rec.ID,
			GuildID:     payload.GuildID,
			Kind:        string(payload.Kind),
			Created:     payload.Created.Format(time.RFC3339Nano),
			CreatedByID: payload.CreatedByID,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		h.logger.ErrorContext(ctx, "encoding actions response failed", "error", err)
	}
}
