package actions

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedCall struct {
	actionID int64
	payload  Payload
}

type captureHandler struct {
	name  string
	err   error
	calls []capturedCall
}

func (h *captureHandler) Name() string { return h.name }

func (h *captureHandler) OnActionCreated(_ context.Context, actionID int64, data Payload) error {
	h.calls = append(h.calls, capturedCall{actionID: actionID, payload: data})
	return h.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRecord() Record {
	return Record{
		ID:          17,
		GuildID:     100,
		Kind:        KindCampaignCreated,
		Created:     time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC),
		CreatedByID: 7,
	}
}

func TestDispatcher_PayloadMatchesRecord(t *testing.T) {
	handler := &captureHandler{name: "capture"}
	d := NewDispatcher([]Handler{handler}, WithLogger(testLogger()))

	rec := testRecord()
	d.NotifyCreated(context.Background(), rec)

	require.Len(t, handler.calls, 1)
	call := handler.calls[0]
	assert.Equal(t, rec.ID, call.actionID)
	assert.Equal(t, uint64(rec.GuildID), call.payload.GuildID)
	assert.Equal(t, rec.Kind, call.payload.Kind)
	assert.Equal(t, rec.Created, call.payload.Created)
	assert.Equal(t, uint64(rec.CreatedByID), call.payload.CreatedByID)
}

func TestDispatcher_AllHandlersNotifiedOnce(t *testing.T) {
	first := &captureHandler{name: "first"}
	second := &captureHandler{name: "second"}
	third := &captureHandler{name: "third"}
	d := NewDispatcher([]Handler{first, second, third}, WithLogger(testLogger()))

	d.NotifyCreated(context.Background(), testRecord())

	for _, h := range []*captureHandler{first, second, third} {
		assert.Len(t, h.calls, 1, "handler %s", h.name)
	}
}

func TestDispatcher_HandlerFailureIsIsolated(t *testing.T) {
	first := &captureHandler{name: "first", err: errors.New("sink unavailable")}
	second := &captureHandler{name: "second"}
	d := NewDispatcher([]Handler{first, second}, WithLogger(testLogger()))

	d.NotifyCreated(context.Background(), testRecord())

	assert.Len(t, first.calls, 1)
	assert.Len(t, second.calls, 1, "handler after a failing one must still be notified")
}

func TestDispatcher_HandlersRunInRegistrationOrder(t *testing.T) {
	var order []string
	mk := func(name string) Handler {
		return handlerFunc(func() { order = append(order, name) })
	}
	d := NewDispatcher([]Handler{mk("a"), mk("b"), mk("c")}, WithLogger(testLogger()))

	d.NotifyCreated(context.Background(), testRecord())

	assert.Equal(t, []string{"a", "b", "c"}, order)
}

type handlerFunc func()

func (f handlerFunc) OnActionCreated(context.Context, int64, Payload) error {
	f()
	return nil
}

func TestNewPayload_WideningIsDeterministic(t *testing.T) {
	rec := testRecord()
	// Storage keeps platform ids in signed form; large platform ids show up
	// negative there and must round-trip through the widening.
	rec.GuildID = -1
	rec.CreatedByID = -9223372036854775808

	payload := NewPayload(rec)
	assert.Equal(t, uint64(18446744073709551615), payload.GuildID)
	assert.Equal(t, uint64(9223372036854775808), payload.CreatedByID)
	assert.Equal(t, payload, NewPayload(rec))
}
