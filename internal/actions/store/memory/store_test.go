package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modbot/internal/actions"
)

func TestStore_CreateAssignsMonotonicIDs(t *testing.T) {
	store := New()
	ctx := context.Background()

	first, err := store.Create(ctx, 100, actions.KindCampaignCreated, 7)
	require.NoError(t, err)
	second, err := store.Create(ctx, 100, actions.KindCommentCreated, 8)
	require.NoError(t, err)

	assert.Equal(t, first.ID+1, second.ID)
	assert.False(t, first.Created.IsZero())
	assert.Equal(t, "UTC", first.Created.Location().String())
}

func TestStore_ListRecentNewestFirst(t *testing.T) {
	store := New()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.Create(ctx, 100, actions.KindInfractionCreated, 7)
		require.NoError(t, err)
	}
	_, err := store.Create(ctx, 200, actions.KindCampaignClosed, 7)
	require.NoError(t, err)

	recs, err := store.ListRecent(ctx, 100, 3)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Greater(t, recs[0].ID, recs[1].ID)
	assert.Greater(t, recs[1].ID, recs[2].ID)
	for _, rec := range recs {
		assert.Equal(t, int64(100), rec.GuildID)
	}
}

func TestStore_ListRecentUnknownGuildIsEmpty(t *testing.T) {
	store := New()

	recs, err := store.ListRecent(context.Background(), 404, 10)
	require.NoError(t, err)
	assert.Empty(t, recs)
}
