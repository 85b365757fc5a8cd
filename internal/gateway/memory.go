package gateway

import (
	"context"
	"fmt"
	"sync"

	"modbot/pkg/platform/sentinel"
)

// MemoryTransport is an in-process Transport. It records deletions and sent
// messages and serves a configured set of active invites per guild. Used for
// local development and tests; the real platform adapter replaces it in
// production wiring.
type MemoryTransport struct {
	mu       sync.Mutex
	deleted  []Deletion
	sent     []SentMessage
	invites  map[Snowflake][]string
	failures MemoryFailures
}

// Deletion records one DeleteMessage call.
type Deletion struct {
	Ref    MessageRef
	Reason string
}

// SentMessage records one SendMessage call.
type SentMessage struct {
	ChannelID Snowflake
	Text      string
}

// MemoryFailures injects failures into individual transport operations.
type MemoryFailures struct {
	Delete  error
	Send    error
	Invites error
}

// NewMemoryTransport builds an empty in-process transport.
func NewMemoryTransport() *MemoryTransport {
	return &MemoryTransport{invites: make(map[Snowflake][]string)}
}

// SetActiveInvites configures the active invite URLs for a guild.
func (t *MemoryTransport) SetActiveInvites(guildID Snowflake, urls []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.invites[guildID] = append([]string(nil), urls...)
}

// FailWith injects operation failures for subsequent calls.
func (t *MemoryTransport) FailWith(f MemoryFailures) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures = f
}

func (t *MemoryTransport) DeleteMessage(_ context.Context, ref MessageRef, reason string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.failures.Delete != nil {
		return t.failures.Delete
	}
	t.deleted = append(t.deleted, Deletion{Ref: ref, Reason: reason})
	return nil
}

func (t *MemoryTransport) SendMessage(_ context.Context, channelID Snowflake, text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.failures.Send != nil {
		return t.failures.Send
	}
	t.sent = append(t.sent, SentMessage{ChannelID: channelID, Text: text})
	return nil
}

func (t *MemoryTransport) ListActiveInvites(_ context.Context, guildID Snowflake) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.failures.Invites != nil {
		return nil, t.failures.Invites
	}
	urls, ok := t.invites[guildID]
	if !ok {
		return nil, fmt.Errorf("invites for guild %d: %w", guildID, sentinel.ErrUnavailable)
	}
	return append([]string(nil), urls...), nil
}

// Deletions returns a copy of all recorded deletions.
func (t *MemoryTransport) Deletions() []Deletion {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Deletion(nil), t.deleted...)
}

// Sent returns a copy of all recorded sent messages.
func (t *MemoryTransport) Sent() []SentMessage {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]SentMessage(nil), t.sent...)
}
