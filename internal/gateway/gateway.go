// Package gateway defines the contract between the bot and the external chat
// platform. The bot consumes it as a narrow interface: two message event
// subscriptions in, three side-effecting operations out. The real platform
// adapter lives outside this module; Bus plus a Transport implementation is
// enough to run the pipeline in-process.
package gateway

import "context"

// Snowflake is a platform-assigned 64-bit identifier.
type Snowflake uint64

// MessageRef locates one message on the platform.
type MessageRef struct {
	GuildID   Snowflake
	ChannelID Snowflake
	MessageID Snowflake
}

// Member is the guild-scoped view of a message author. It exists only when
// the author is a recognized guild member.
type Member struct {
	UserID  Snowflake
	GuildID Snowflake
	// Mention is the platform markup that pings the member in a message.
	Mention string
}

// GuildChannel is the guild-scoped view of a message channel. It exists only
// when the channel belongs to a guild.
type GuildChannel struct {
	ChannelID Snowflake
	GuildID   Snowflake
}

// Message is the normalized view of an inbound message event. Edited messages
// are normalized to their post-edit content before they reach any consumer;
// nothing downstream sees the prior content.
type Message struct {
	ID        Snowflake
	ChannelID Snowflake
	AuthorID  Snowflake
	Content   string

	// Member and Channel are optional guild-scoped views, populated by the
	// platform adapter when the capabilities exist. Consumers branch through
	// the probe methods below, never on concrete types.
	Member  *Member
	Channel *GuildChannel
}

// AsGuildMember reports the author's guild membership view, if any.
func (m Message) AsGuildMember() (Member, bool) {
	if m.Member == nil {
		return Member{}, false
	}
	return *m.Member, true
}

// AsGuildChannel reports the channel's guild-scoped view, if any.
func (m Message) AsGuildChannel() (GuildChannel, bool) {
	if m.Channel == nil {
		return GuildChannel{}, false
	}
	return *m.Channel, true
}

// Ref builds the platform reference for this message. GuildID is zero for
// messages outside a guild.
func (m Message) Ref() MessageRef {
	ref := MessageRef{ChannelID: m.ChannelID, MessageID: m.ID}
	if ch, ok := m.AsGuildChannel(); ok {
		ref.GuildID = ch.GuildID
	}
	return ref
}

// MessageHandler consumes one inbound message event. Handlers must not block
// other events; the event source invokes them independently per message.
type MessageHandler func(ctx context.Context, msg Message)

// Subscription is a live event subscription. Cancel releases it; cancelling
// an already-cancelled subscription is a no-op.
type Subscription interface {
	Cancel()
}

// Client is the platform surface the bot consumes.
type Client interface {
	// BotUserID is the bot's own identity on the platform.
	BotUserID() Snowflake

	// SubscribeMessageCreated registers a handler for newly created messages.
	SubscribeMessageCreated(h MessageHandler) Subscription

	// SubscribeMessageEdited registers a handler for edited messages. The
	// handler receives the post-edit content.
	SubscribeMessageEdited(h MessageHandler) Subscription

	// DeleteMessage removes a message, citing a machine-readable reason.
	DeleteMessage(ctx context.Context, ref MessageRef, reason string) error

	// SendMessage posts text to a channel.
	SendMessage(ctx context.Context, channelID Snowflake, text string) error

	// ListActiveInvites returns the URLs of the guild's currently active
	// invite links. Platforms or permission sets that cannot list invites
	// return sentinel.ErrUnavailable.
	ListActiveInvites(ctx context.Context, guildID Snowflake) ([]string, error)
}
