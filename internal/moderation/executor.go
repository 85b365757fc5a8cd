package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"modbot/internal/gateway"
	"modbot/internal/moderation/metrics"
)

// DeleteReason is the machine-readable reason recorded with every purged
// message.
const DeleteReason = "Unauthorized Invite Link"

const noticeTemplate = "Sorry %s your invite link has been removed - please don't post links to other guilds"

// Executor performs the moderation action once the gate chain yields
// proceed: delete the offending message, then post one explanatory reply
// mentioning the author. Both steps are best-effort; each is always
// attempted and their failures are reported together, never masking one
// another.
type Executor struct {
	client  gateway.Client
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewExecutor(client gateway.Client, logger *slog.Logger, m *metrics.Metrics) *Executor {
	return &Executor{client: client, logger: logger, metrics: m}
}

// Execute removes the message and notifies the author in the originating
// channel. The returned error joins the independent sub-step failures.
func (e *Executor) Execute(ctx context.Context, msg gateway.Message) error {
	var deleteErr, notifyErr error

	if err := e.client.DeleteMessage(ctx, msg.Ref(), DeleteReason); err != nil {
		deleteErr = fmt.Errorf("delete message %d: %w", msg.ID, err)
		e.metrics.IncrementActionStep("delete", "error")
	} else {
		e.metrics.IncrementActionStep("delete", "ok")
	}

	mention := mentionFor(msg)
	if err := e.client.SendMessage(ctx, msg.ChannelID, fmt.Sprintf(noticeTemplate, mention)); err != nil {
		notifyErr = fmt.Errorf("notify channel %d: %w", msg.ChannelID, err)
		e.metrics.IncrementActionStep("notify", "error")
	} else {
		e.metrics.IncrementActionStep("notify", "ok")
	}

	return errors.Join(deleteErr, notifyErr)
}

func mentionFor(msg gateway.Message) string {
	if member, ok := msg.AsGuildMember(); ok && member.Mention != "" {
		return member.Mention
	}
	return fmt.Sprintf("<@%d>", msg.AuthorID)
}
