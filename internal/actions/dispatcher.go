package actions

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"modbot/internal/actions/metrics"
)

// Handler observes created action records. Handlers are opaque capabilities:
// they may have arbitrary side effects, and their failures never affect the
// creating operation or each other.
type Handler interface {
	OnActionCreated(ctx context.Context, actionID int64, data Payload) error
}

// namedHandler lets a handler report a stable identity for logs and metrics.
type namedHandler interface {
	Name() string
}

// Dispatcher notifies an ordered set of handlers about created action
// records. The handler list is fixed at construction and read-only
// afterwards, so dispatch needs no synchronization.
type Dispatcher struct {
	handlers []Handler
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

// Option configures the Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets a logger for failure reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// NewDispatcher builds a dispatcher over the given handlers. Handlers run in
// the order given here.
func NewDispatcher(handlers []Handler, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		handlers: append([]Handler(nil), handlers...),
		logger:   slog.Default(),
		tracer:   otel.Tracer("modbot/actions"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NotifyCreated invokes every registered handler with the same payload,
// sequentially in registration order. A handler failure is logged with the
// handler identity and action id, counted, and never prevents the remaining
// handlers from running. The underlying record is already committed; nothing
// here can roll it back.
func (d *Dispatcher) NotifyCreated(ctx context.Context, rec Record) {
	ctx, span := d.tracer.Start(ctx, "actions.NotifyCreated",
		trace.WithAttributes(
			attribute.Int64("action.id", rec.ID),
			attribute.String("action.kind", string(rec.Kind)),
		))
	defer span.End()

	start := time.Now()
	payload := NewPayload(rec)
	for _, h := range d.handlers {
		if err := h.OnActionCreated(ctx, rec.ID, payload); err != nil {
			d.logger.ErrorContext(ctx, "action handler failed",
				"handler", handlerName(h),
				"action_id", rec.ID,
				"action_kind", rec.Kind,
				"error", err,
			)
			d.metrics.IncrementHandlerFailure(handlerName(h))
		}
	}
	d.metrics.ObserveDispatchLatency(time.Since(start))
}

func handlerName(h Handler) string {
	if n, ok := h.(namedHandler); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", h)
}
