// Package designations provides implementations of the moderation
// designation port: an in-memory service for tests and standalone runs, and
// a Redis-backed cache to put in front of a remote service.
package designations

import (
	"context"
	"fmt"
	"sync"

	"modbot/internal/gateway"
	"modbot/internal/moderation"
)

type key struct {
	guildID   gateway.Snowflake
	channelID gateway.Snowflake
	kind      moderation.Designation
}

// Memory is an in-memory designation service.
type Memory struct {
	mu  sync.RWMutex
	set map[key]struct{}
}

func NewMemory() *Memory {
	return &Memory{set: make(map[key]struct{})}
}

// Designate marks a channel with a designation.
func (m *Memory) Designate(guildID, channelID gateway.Snowflake, d moderation.Designation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.set[key{guildID, channelID, d}] = struct{}{}
}

// Remove clears a channel designation.
func (m *Memory) Remove(guildID, channelID gateway.Snowflake, d moderation.Designation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.set, key{guildID, channelID, d})
}

func (m *Memory) HasDesignation(_ context.Context, guildID, channelID gateway.Snowflake, d moderation.Designation) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.set[key{guildID, channelID, d}]
	return ok, nil
}

func cacheKey(guildID, channelID gateway.Snowflake, d moderation.Designation) string {
	return fmt.Sprintf("designation:%d:%d:%s", guildID, channelID, d)
}
