package moderation

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"modbot/internal/actions"
	"modbot/internal/gateway"
)

// ActionRecorder persists the infraction fact after a moderation action;
// satisfied by *actions.Service.
type ActionRecorder interface {
	Create(ctx context.Context, guildID int64, kind actions.Kind, createdByID int64) (actions.Record, error)
}

// Pipeline drives real-time invite purging. It has exactly two states,
// stopped and running: Start subscribes to the message-created and
// message-edited event classes and Stop releases both subscriptions. Both
// transitions are idempotent; stopping a stopped pipeline is a no-op.
//
// Both event classes converge on one handling path that evaluates the
// current content - edits are judged by their post-edit text, not the diff.
type Pipeline struct {
	client   gateway.Client
	chain    *Chain
	executor *Executor
	recorder ActionRecorder
	logger   *slog.Logger
	tracer   trace.Tracer

	mu   sync.Mutex
	subs []gateway.Subscription
}

// NewPipeline wires the pipeline in its stopped state. recorder may be nil
// when infraction records are not wanted.
func NewPipeline(
	client gateway.Client,
	chain *Chain,
	executor *Executor,
	recorder ActionRecorder,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		client:   client,
		chain:    chain,
		executor: executor,
		recorder: recorder,
		logger:   logger,
		tracer:   otel.Tracer("modbot/moderation"),
	}
}

// Start transitions to running. Calling Start on a running pipeline is a
// no-op.
func (p *Pipeline) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.subs != nil {
		return
	}
	p.subs = []gateway.Subscription{
		p.client.SubscribeMessageCreated(p.handle),
		p.client.SubscribeMessageEdited(p.handle),
	}
}

// Stop transitions to stopped, releasing both subscriptions. Calling Stop on
// a stopped pipeline is a no-op.
func (p *Pipeline) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, sub := range p.subs {
		sub.Cancel()
	}
	p.subs = nil
}

// Running reports whether the pipeline currently holds its subscriptions.
func (p *Pipeline) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.subs != nil
}

// handle processes one inbound message through the gate chain and, on
// proceed, the executor. Failures are contained here: nothing escapes to
// the event source.
func (p *Pipeline) handle(ctx context.Context, msg gateway.Message) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.ErrorContext(ctx, "moderation pipeline panic", "err", r, "message_id", msg.ID)
		}
	}()

	ctx, span := p.tracer.Start(ctx, "moderation.Pipeline.handle",
		trace.WithAttributes(attribute.Int64("message.id", int64(msg.ID))))
	defer span.End()

	verdict := p.chain.Evaluate(ctx, msg)
	if !verdict.Proceed {
		return
	}

	if err := p.executor.Execute(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, "moderation action incomplete",
			"message_id", msg.ID,
			"error", err,
		)
	} else {
		p.logger.InfoContext(ctx, "invite link removed",
			"message_id", msg.ID,
			"author_id", msg.AuthorID,
			"matches", len(verdict.Matches),
		)
	}

	p.recordInfraction(ctx, msg)
}

// recordInfraction persists the infraction as an action record, which fans
// out to the registered action handlers. Recording failure never affects the
// moderation action already taken.
func (p *Pipeline) recordInfraction(ctx context.Context, msg gateway.Message) {
	if p.recorder == nil {
		return
	}
	channel, ok := msg.AsGuildChannel()
	if !ok {
		return
	}
	if _, err := p.recorder.Create(ctx, int64(channel.GuildID), actions.KindInfractionCreated, int64(p.client.BotUserID())); err != nil {
		p.logger.ErrorContext(ctx, "recording infraction failed",
			"message_id", msg.ID,
			"guild_id", channel.GuildID,
			"error", err,
		)
	}
}
