package actions

import "context"

// Store is the persistence boundary for action records. Create assigns the
// identifier and creation timestamp durably; the returned record is the
// committed fact. Swap with concrete storage without touching callers.
type Store interface {
	Create(ctx context.Context, guildID int64, kind Kind, createdByID int64) (Record, error)

	// ListRecent returns up to limit records for a guild, newest first.
	ListRecent(ctx context.Context, guildID int64, limit int) ([]Record, error)
}
