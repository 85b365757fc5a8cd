package promotions

import (
	"context"

	"modbot/internal/actions"
)

// ActionCreator creates action records; satisfied by *actions.Service.
type ActionCreator interface {
	Create(ctx context.Context, guildID int64, kind actions.Kind, createdByID int64) (actions.Record, error)
}

// Recorder records promotion lifecycle events as action records, which fans
// the notification out to all registered handlers.
type Recorder struct {
	actions ActionCreator
}

func NewRecorder(creator ActionCreator) *Recorder {
	return &Recorder{actions: creator}
}

// CampaignCreated records that a member opened a promotion campaign.
func (r *Recorder) CampaignCreated(ctx context.Context, guildID, createdByID int64) (actions.Record, error) {
	return r.actions.Create(ctx, guildID, actions.KindCampaignCreated, createdByID)
}

// CommentCreated records a comment on a promotion campaign.
func (r *Recorder) CommentCreated(ctx context.Context, guildID, createdByID int64) (actions.Record, error) {
	return r.actions.Create(ctx, guildID, actions.KindCommentCreated, createdByID)
}

// CampaignClosed records that a campaign reached its outcome.
func (r *Recorder) CampaignClosed(ctx context.Context, guildID, createdByID int64) (actions.Record, error) {
	return r.actions.Create(ctx, guildID, actions.KindCampaignClosed, createdByID)
}
