package actions

import (
	"context"
	"fmt"

	"modbot/internal/actions/metrics"
)

// Service creates action records and fans out creation notifications. The
// dispatcher fires after the store write commits and before Create returns
// success, so every caller that observes a created record knows the handlers
// were notified.
type Service struct {
	store      Store
	dispatcher *Dispatcher
	metrics    *metrics.Metrics
}

// NewService wires a service over its store and dispatcher.
func NewService(store Store, dispatcher *Dispatcher, m *metrics.Metrics) *Service {
	return &Service{store: store, dispatcher: dispatcher, metrics: m}
}

// Create persists a new action record and notifies all registered handlers.
// Handler failures do not surface here; the record is committed either way.
func (s *Service) Create(ctx context.Context, guildID int64, kind Kind, createdByID int64) (Record, error) {
	rec, err := s.store.Create(ctx, guildID, kind, createdByID)
	if err != nil {
		return Record{}, fmt.Errorf("create %s action: %w", kind, err)
	}
	s.metrics.IncrementCreated(string(kind))
	s.dispatcher.NotifyCreated(ctx, rec)
	return rec, nil
}

// ListRecent returns up to limit records for a guild, newest first.
func (s *Service) ListRecent(ctx context.Context, guildID int64, limit int) ([]Record, error) {
	return s.store.ListRecent(ctx, guildID, limit)
}
