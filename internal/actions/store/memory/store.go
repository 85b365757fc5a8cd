package memory

import (
	"context"
	"sync"
	"time"

	"modbot/internal/actions"
)

// Store is an in-memory action record store. Identifiers are monotonic per
// process; timestamps are UTC at creation.
type Store struct {
	mu      sync.RWMutex
	nextID  int64
	records map[int64][]actions.Record
}

func New() *Store {
	return &Store{nextID: 1, records: make(map[int64][]actions.Record)}
}

func (s *Store) Create(_ context.Context, guildID int64, kind actions.Kind, createdByID int64) (actions.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := actions.Record{
		ID:          s.nextID,
		GuildID:     guildID,
		Kind:        kind,
		Created:     time.Now().UTC(),
		CreatedByID: createdByID,
	}
	s.nextID++
	s.records[guildID] = append(s.records[guildID], rec)
	return rec, nil
}

func (s *Store) ListRecent(_ context.Context, guildID int64, limit int) ([]actions.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := s.records[guildID]
	out := make([]actions.Record, 0, limit)
	for i := len(recs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, recs[i])
	}
	return out, nil
}
