package claims_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modbot/internal/moderation"
	"modbot/internal/moderation/claims"
)

func TestMemoryGrantAndRevoke(t *testing.T) {
	ctx := context.Background()
	mem := claims.NewMemory()

	has, err := mem.HasClaim(ctx, 100, 7, moderation.ClaimPostInviteLink)
	require.NoError(t, err)
	assert.False(t, has)

	mem.Grant(100, 7, moderation.ClaimPostInviteLink)

	has, err = mem.HasClaim(ctx, 100, 7, moderation.ClaimPostInviteLink)
	require.NoError(t, err)
	assert.True(t, has)

	mem.Revoke(100, 7, moderation.ClaimPostInviteLink)

	has, err = mem.HasClaim(ctx, 100, 7, moderation.ClaimPostInviteLink)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestMemoryScopesClaimsByGuild(t *testing.T) {
	ctx := context.Background()
	mem := claims.NewMemory()

	mem.Grant(100, 7, moderation.ClaimPostInviteLink)

	has, err := mem.HasClaim(ctx, 101, 7, moderation.ClaimPostInviteLink)
	require.NoError(t, err)
	assert.False(t, has)
}
