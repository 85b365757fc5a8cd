package moderation

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"modbot/internal/gateway"
)

// Designation is an externally managed, per-channel classification affecting
// whether automated policy applies.
type Designation string

// DesignationUnmoderated marks a channel as exempt from automated moderation.
const DesignationUnmoderated Designation = "unmoderated"

// DesignationService answers channel designation queries. Lookups are
// mandatory checks for the gate chain: an error fails closed (no action).
type DesignationService interface {
	HasDesignation(ctx context.Context, guildID, channelID gateway.Snowflake, d Designation) (bool, error)
}

// Claim is an authorization grant exempting an actor from a specific policy.
type Claim string

// ClaimPostInviteLink exempts its holder from invite-link purging.
const ClaimPostInviteLink Claim = "post_invite_link"

// AuthorizationService answers claim queries. Like designations, an error
// fails closed.
type AuthorizationService interface {
	HasClaim(ctx context.Context, guildID, userID gateway.Snowflake, c Claim) (bool, error)
}
