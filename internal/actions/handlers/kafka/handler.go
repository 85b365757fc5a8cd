// Package kafka publishes action creation notifications to a Kafka topic so
// out-of-process consumers (analytics, audit retention) can react without
// coupling to the bot.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"modbot/internal/actions"
)

// Handler is an actions.Handler that publishes each created action as a JSON
// event. Publishing is synchronous; an error surfaces to the dispatcher where
// it is isolated from other handlers.
type Handler struct {
	client *kgo.Client
	topic  string
}

// payload is the wire form of one action notification. Field values mirror
// actions.Payload; timestamps are RFC3339Nano.
type payload struct {
	ID          string `json:"ID"`
	ActionID    int64  `json:"ActionID"`
	GuildID     uint64 `json:"GuildID"`
	Kind        string `json:"Kind"`
	Created     string `json:"Created"`
	CreatedByID uint64 `json:"CreatedByID"`
}

// New connects to the brokers and ensures the topic exists.
func New(ctx context.Context, brokers []string, topic string) (*Handler, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}

	if err := ensureTopic(ctx, client, topic); err != nil {
		client.Close()
		return nil, err
	}
	return &Handler{client: client, topic: topic}, nil
}

func ensureTopic(ctx context.Context, client *kgo.Client, topic string) error {
	admin := kadm.NewClient(client)
	resp, err := admin.CreateTopic(ctx, 1, 1, nil, topic)
	if err != nil && !errors.Is(err, kerr.TopicAlreadyExists) {
		return fmt.Errorf("create topic %s: %w", topic, err)
	}
	if resp.Err != nil && !errors.Is(resp.Err, kerr.TopicAlreadyExists) {
		return fmt.Errorf("create topic %s: %w", topic, resp.Err)
	}
	return nil
}

// Name identifies this handler in dispatcher logs and metrics.
func (h *Handler) Name() string { return "kafka" }

// OnActionCreated publishes the notification, keyed by guild so one guild's
// actions stay ordered within a partition.
func (h *Handler) OnActionCreated(ctx context.Context, actionID int64, data actions.Payload) error {
	value, err := json.Marshal(payload{
		ID:          uuid.NewString(),
		ActionID:    actionID,
		GuildID:     data.GuildID,
		Kind:        string(data.Kind),
		Created:     data.Created.Format(time.RFC3339Nano),
		CreatedByID: data.CreatedByID,
	})
	if err != nil {
		return fmt.Errorf("marshal action %d: %w", actionID, err)
	}

	rec := &kgo.Record{
		Topic: h.topic,
		Key:   []byte(strconv.FormatUint(data.GuildID, 10)),
		Value: value,
	}
	if err := h.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("produce action %d: %w", actionID, err)
	}
	return nil
}

// Close flushes and releases the Kafka client.
func (h *Handler) Close() {
	h.client.Close()
}
