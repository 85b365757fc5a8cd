//go:build integration

package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"modbot/internal/actions"
	"modbot/pkg/testutil/containers"
)

func TestHandler_PublishesActionNotification(t *testing.T) {
	rc := containers.NewRedpandaContainer(t)
	ctx := context.Background()

	handler, err := New(ctx, []string{rc.Broker}, "modbot.actions.test")
	require.NoError(t, err)
	t.Cleanup(handler.Close)

	created := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	err = handler.OnActionCreated(ctx, 17, actions.Payload{
		GuildID:     100,
		Kind:        actions.KindCampaignCreated,
		Created:     created,
		CreatedByID: 7,
	})
	require.NoError(t, err)

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(rc.Broker),
		kgo.ConsumeTopics("modbot.actions.test"),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	t.Cleanup(consumer.Close)

	fetchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	fetches := consumer.PollFetches(fetchCtx)
	require.NoError(t, fetches.Err())

	records := fetches.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "100", string(records[0].Key))

	var got struct {
		ID          string `json:"ID"`
		ActionID    int64  `json:"ActionID"`
		GuildID     uint64 `json:"GuildID"`
		Kind        string `json:"Kind"`
		Created     string `json:"Created"`
		CreatedByID uint64 `json:"CreatedByID"`
	}
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, int64(17), got.ActionID)
	assert.Equal(t, uint64(100), got.GuildID)
	assert.Equal(t, string(actions.KindCampaignCreated), got.Kind)
	assert.Equal(t, created.Format(time.RFC3339Nano), got.Created)
	assert.Equal(t, uint64(7), got.CreatedByID)
}
