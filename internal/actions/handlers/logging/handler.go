// Package logging provides an action handler that records every created
// action to the process log. Cheap operational visibility when no external
// sink is configured.
package logging

import (
	"context"
	"log/slog"

	"modbot/internal/actions"
)

// Handler logs created actions at info level.
type Handler struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// Name identifies this handler in dispatcher logs and metrics.
func (h *Handler) Name() string { return "logging" }

func (h *Handler) OnActionCreated(ctx context.Context, actionID int64, data actions.Payload) error {
	h.logger.InfoContext(ctx, "action created",
		"action_id", actionID,
		"action_kind", data.Kind,
		"guild_id", data.GuildID,
		"created_by", data.CreatedByID,
		"created", data.Created,
	)
	return nil
}
