// Package actions holds the domain action record model and the dispatch bus
// that notifies registered handlers when a record is created. Moderation and
// promotion features both create their actions through this package.
package actions

import "time"

// Kind classifies a domain action.
type Kind string

const (
	// Promotion actions.
	KindCampaignCreated Kind = "campaign_created"
	KindCommentCreated  Kind = "comment_created"
	KindCampaignClosed  Kind = "campaign_closed"

	// Moderation actions.
	KindInfractionCreated Kind = "infraction_created"
)

// Record is the immutable fact of a domain action having been durably
// created. ID and Created are assigned exactly once, by the store, at
// creation; records are never updated or deleted by this subsystem.
//
// Identifiers are kept in their signed storage form; Payload widens them for
// consumers.
type Record struct {
	ID          int64
	GuildID     int64
	Kind        Kind
	Created     time.Time
	CreatedByID int64
}

// Payload is the projection of a Record handed to action handlers. It is a
// fully populated snapshot: no field access touches storage. Guild and
// creator identifiers carry the platform's unsigned form.
type Payload struct {
	GuildID     uint64
	Kind        Kind
	Created     time.Time
	CreatedByID uint64
}

// NewPayload projects a persisted record into its notification payload. The
// signed-to-unsigned widening is deterministic and total: it is the inverse
// of the narrowing applied when platform identifiers were stored.
func NewPayload(rec Record) Payload {
	return Payload{
		GuildID:     uint64(rec.GuildID),
		Kind:        rec.Kind,
		Created:     rec.Created,
		CreatedByID: uint64(rec.CreatedByID),
	}
}
