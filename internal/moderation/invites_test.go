package moderation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modbot/pkg/platform/sentinel"
)

func newTestMatcher() *InviteMatcher {
	return NewInviteMatcher(2 * time.Second)
}

func TestInviteMatcher_FindsInviteLinks(t *testing.T) {
	matcher := newTestMatcher()
	ctx := context.Background()

	cases := map[string][]string{
		"join my server: https://discord.gg/abc123":  {"https://discord.gg/abc123"},
		"discord.gg/abc123":                          {"discord.gg/abc123"},
		"WWW.DISCORD.GG/ABC123":                      {"WWW.DISCORD.GG/ABC123"},
		"see https://discordapp.com/invite/xyz here": {"https://discordapp.com/invite/xyz"},
		"http://discord.io/short":                    {"http://discord.io/short"},
		"two: discord.gg/one and discord.me/two":     {"discord.gg/one", "discord.me/two"},
	}
	for content, want := range cases {
		matches, err := matcher.Match(ctx, content)
		require.NoError(t, err, content)
		assert.Equal(t, want, matches, content)
	}
}

func TestInviteMatcher_NoMatch(t *testing.T) {
	matcher := newTestMatcher()
	ctx := context.Background()

	for _, content := range []string{
		"hello world",
		"https://example.com/discord",
		"discord.gg is a domain but no code follows",
		"",
	} {
		matches, err := matcher.Match(ctx, content)
		require.NoError(t, err, content)
		assert.Empty(t, matches, content)
	}
}

func TestSubtract(t *testing.T) {
	matches := []string{"discord.gg/one", "discord.gg/two", "discord.gg/three"}

	assert.Equal(t,
		[]string{"discord.gg/one", "discord.gg/three"},
		subtract(matches, []string{"discord.gg/two"}))
	assert.Empty(t, subtract(matches, matches))
	assert.Equal(t, matches, subtract(matches, nil))
}

func TestInviteMatcher_ExpiredContext(t *testing.T) {
	matcher := newTestMatcher()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := matcher.Match(ctx, "https://discord.gg/abc123")
	require.ErrorIs(t, err, sentinel.ErrTimeout)
}
