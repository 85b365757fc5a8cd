//go:build integration

package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modbot/internal/actions"
	"modbot/pkg/testutil/containers"
)

const schema = `
CREATE TABLE IF NOT EXISTS action_records (
	id            BIGSERIAL PRIMARY KEY,
	guild_id      BIGINT      NOT NULL,
	kind          TEXT        NOT NULL,
	created       TIMESTAMP   NOT NULL,
	created_by_id BIGINT      NOT NULL
)`

func TestStore_Postgres(t *testing.T) {
	pc := containers.NewPostgresContainer(t)
	ctx := context.Background()

	_, err := pc.DB.ExecContext(ctx, schema)
	require.NoError(t, err)

	store := New(pc.DB)

	first, err := store.Create(ctx, 100, actions.KindCampaignCreated, 7)
	require.NoError(t, err)
	assert.Positive(t, first.ID)
	assert.False(t, first.Created.IsZero())
	assert.Equal(t, actions.KindCampaignCreated, first.Kind)

	second, err := store.Create(ctx, 100, actions.KindInfractionCreated, 999)
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	_, err = store.Create(ctx, 200, actions.KindCommentCreated, 8)
	require.NoError(t, err)

	recs, err := store.ListRecent(ctx, 100, 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, second.ID, recs[0].ID)
	assert.Equal(t, first.ID, recs[1].ID)
	assert.Equal(t, int64(999), recs[0].CreatedByID)
}
