// Package claims provides an in-memory implementation of the moderation
// authorization port, for tests and standalone runs. Production deployments
// adapt the guild's real authorization service instead.
package claims

import (
	"context"
	"sync"

	"modbot/internal/gateway"
	"modbot/internal/moderation"
)

type key struct {
	guildID gateway.Snowflake
	userID  gateway.Snowflake
	claim   moderation.Claim
}

// Memory is an in-memory claim registry.
type Memory struct {
	mu  sync.RWMutex
	set map[key]struct{}
}

func NewMemory() *Memory {
	return &Memory{set: make(map[key]struct{})}
}

// Grant gives a user a claim within a guild.
func (m *Memory) Grant(guildID, userID gateway.Snowflake, c moderation.Claim) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.set[key{guildID, userID, c}] = struct{}{}
}

// Revoke removes a previously granted claim.
func (m *Memory) Revoke(guildID, userID gateway.Snowflake, c moderation.Claim) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.set, key{guildID, userID, c})
}

func (m *Memory) HasClaim(_ context.Context, guildID, userID gateway.Snowflake, c moderation.Claim) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.set[key{guildID, userID, c}]
	return ok, nil
}
