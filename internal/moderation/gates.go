package moderation

import (
	"context"
	"log/slog"
	"time"

	"modbot/internal/gateway"
	"modbot/internal/moderation/metrics"
)

// SkipReason is the machine-readable code attached to a skip verdict. Each
// gate has its own code so a decision can be debugged without re-deriving it.
type SkipReason string

const (
	// SkipShape: author is not a guild member or channel is not guild-scoped.
	SkipShape SkipReason = "shape"
	// SkipSelf: the bot authored the message.
	SkipSelf SkipReason = "self"
	// SkipUnmoderated: the channel carries the unmoderated designation.
	SkipUnmoderated SkipReason = "unmoderated"
	// SkipDesignationError: the designation lookup failed; fail closed.
	SkipDesignationError SkipReason = "designation_error"
	// SkipNoMatch: the content contains no invite link.
	SkipNoMatch SkipReason = "no_match"
	// SkipMatchTimeout: pattern matching exceeded its hard timeout.
	SkipMatchTimeout SkipReason = "match_timeout"
	// SkipOwnGuildInvite: every matched invite points back to this guild.
	SkipOwnGuildInvite SkipReason = "own_guild_invite"
	// SkipExempt: the author holds the post-invite-link claim.
	SkipExempt SkipReason = "exempt"
	// SkipAuthorizationError: the claim lookup failed; fail closed.
	SkipAuthorizationError SkipReason = "authorization_error"
)

// Verdict is the transient result of running the gate chain over one
// message. On proceed, Matches carries the foreign invite URLs that
// triggered it.
type Verdict struct {
	Proceed bool
	Reason  SkipReason
	Matches []string
}

func skip(reason SkipReason) Verdict {
	return Verdict{Reason: reason}
}

// Chain evaluates the policy gates over one inbound message, in a fixed
// order, short-circuiting on the first skip. The chain only decides; it
// never acts. All fields are read-only after construction, so one Chain
// serves any number of concurrent messages.
type Chain struct {
	client        gateway.Client
	designations  DesignationService
	authorization AuthorizationService
	matcher       *InviteMatcher
	lookupTimeout time.Duration
	logger        *slog.Logger
	metrics       *metrics.Metrics
}

// NewChain wires the gate chain. lookupTimeout bounds each external call a
// gate performs.
func NewChain(
	client gateway.Client,
	designations DesignationService,
	authorization AuthorizationService,
	matcher *InviteMatcher,
	lookupTimeout time.Duration,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Chain {
	return &Chain{
		client:        client,
		designations:  designations,
		authorization: authorization,
		matcher:       matcher,
		lookupTimeout: lookupTimeout,
		logger:        logger,
		metrics:       m,
	}
}

// Evaluate runs the gates in order: shape, self-exclusion, designation,
// pattern, scope exclusion, authorization. The first skip wins and no
// further gate runs. Designation and authorization lookups fail closed;
// invite listing fails open.
func (c *Chain) Evaluate(ctx context.Context, msg gateway.Message) Verdict {
	v := c.evaluate(ctx, msg)
	if v.Proceed {
		c.metrics.IncrementVerdict("proceed")
	} else {
		c.metrics.IncrementVerdict(string(v.Reason))
	}
	return v
}

func (c *Chain) evaluate(ctx context.Context, msg gateway.Message) Verdict {
	member, memberOK := msg.AsGuildMember()
	channel, channelOK := msg.AsGuildChannel()
	if !memberOK || !channelOK {
		c.logger.DebugContext(ctx, "message skipped: not in a guild channel or author not a guild member",
			"message_id", msg.ID,
			"author_id", msg.AuthorID,
		)
		return skip(SkipShape)
	}

	if member.UserID == c.client.BotUserID() {
		c.logger.DebugContext(ctx, "message skipped: authored by the bot",
			"message_id", msg.ID,
		)
		return skip(SkipSelf)
	}

	unmoderated, err := c.channelUnmoderated(ctx, channel)
	if err != nil {
		c.logger.WarnContext(ctx, "designation lookup failed, skipping message",
			"message_id", msg.ID,
			"channel_id", channel.ChannelID,
			"error", err,
		)
		return skip(SkipDesignationError)
	}
	if unmoderated {
		c.logger.DebugContext(ctx, "message skipped: channel designated unmoderated",
			"message_id", msg.ID,
			"channel_id", channel.ChannelID,
		)
		return skip(SkipUnmoderated)
	}

	start := time.Now()
	matches, err := c.matcher.Match(ctx, msg.Content)
	c.metrics.ObserveMatchLatency(time.Since(start))
	if err != nil {
		c.logger.WarnContext(ctx, "invite match timed out, skipping message",
			"message_id", msg.ID,
			"error", err,
		)
		return skip(SkipMatchTimeout)
	}
	if len(matches) == 0 {
		c.logger.DebugContext(ctx, "message skipped: content contains no invite link",
			"message_id", msg.ID,
		)
		return skip(SkipNoMatch)
	}

	// Allow invites to the guild in which the message was posted. When the
	// platform cannot list invites this gate fails open: no exclusions.
	matches = c.excludeOwnGuild(ctx, msg, channel.GuildID, matches)
	if len(matches) == 0 {
		c.logger.DebugContext(ctx, "message skipped: invite was to this guild",
			"message_id", msg.ID,
			"guild_id", channel.GuildID,
		)
		return skip(SkipOwnGuildInvite)
	}

	exempt, err := c.authorExempt(ctx, channel.GuildID, member.UserID)
	if err != nil {
		c.logger.WarnContext(ctx, "claim lookup failed, skipping message",
			"message_id", msg.ID,
			"author_id", member.UserID,
			"error", err,
		)
		return skip(SkipAuthorizationError)
	}
	if exempt {
		c.logger.DebugContext(ctx, "message skipped: author holds the post-invite-link claim",
			"message_id", msg.ID,
			"author_id", member.UserID,
		)
		return skip(SkipExempt)
	}

	return Verdict{Proceed: true, Matches: matches}
}

func (c *Chain) channelUnmoderated(ctx context.Context, channel gateway.GuildChannel) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.lookupTimeout)
	defer cancel()
	return c.designations.HasDesignation(ctx, channel.GuildID, channel.ChannelID, DesignationUnmoderated)
}

func (c *Chain) excludeOwnGuild(ctx context.Context, msg gateway.Message, guildID gateway.Snowflake, matches []string) []string {
	ctx, cancel := context.WithTimeout(ctx, c.lookupTimeout)
	defer cancel()

	invites, err := c.client.ListActiveInvites(ctx, guildID)
	if err != nil {
		c.logger.DebugContext(ctx, "active invite listing unavailable, applying no exclusions",
			"message_id", msg.ID,
			"guild_id", guildID,
			"error", err,
		)
		return matches
	}
	return subtract(matches, invites)
}

func (c *Chain) authorExempt(ctx context.Context, guildID, userID gateway.Snowflake) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.lookupTimeout)
	defer cancel()
	return c.authorization.HasClaim(ctx, guildID, userID, ClaimPostInviteLink)
}
