package gateway

import (
	"context"
	"sync"
)

// Transport carries the side-effecting platform operations for a Bus. The
// platform adapter implements it against the real chat API; MemoryTransport
// implements it in-process.
type Transport interface {
	DeleteMessage(ctx context.Context, ref MessageRef, reason string) error
	SendMessage(ctx context.Context, channelID Snowflake, text string) error
	ListActiveInvites(ctx context.Context, guildID Snowflake) ([]string, error)
}

// Bus implements Client over an injected Transport. The platform adapter
// pumps inbound events through the Publish methods; subscribers receive them
// synchronously in the publisher's goroutine, so the adapter controls
// concurrency by publishing from one goroutine per event.
type Bus struct {
	botUserID Snowflake
	transport Transport

	mu      sync.RWMutex
	nextID  int
	created map[int]MessageHandler
	edited  map[int]MessageHandler
}

// NewBus builds a Bus for the given bot identity and transport.
func NewBus(botUserID Snowflake, transport Transport) *Bus {
	return &Bus{
		botUserID: botUserID,
		transport: transport,
		created:   make(map[int]MessageHandler),
		edited:    make(map[int]MessageHandler),
	}
}

func (b *Bus) BotUserID() Snowflake { return b.botUserID }

func (b *Bus) SubscribeMessageCreated(h MessageHandler) Subscription {
	return b.subscribe(b.created, h)
}

func (b *Bus) SubscribeMessageEdited(h MessageHandler) Subscription {
	return b.subscribe(b.edited, h)
}

func (b *Bus) subscribe(set map[int]MessageHandler, h MessageHandler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	set[id] = h
	return &subscription{bus: b, set: set, id: id}
}

// PublishMessageCreated delivers a message-created event to all subscribers.
func (b *Bus) PublishMessageCreated(ctx context.Context, msg Message) {
	b.publish(ctx, b.created, msg)
}

// PublishMessageEdited delivers a message-edited event to all subscribers.
// msg must already carry the post-edit content.
func (b *Bus) PublishMessageEdited(ctx context.Context, msg Message) {
	b.publish(ctx, b.edited, msg)
}

func (b *Bus) publish(ctx context.Context, set map[int]MessageHandler, msg Message) {
	b.mu.RLock()
	handlers := make([]MessageHandler, 0, len(set))
	for _, h := range set {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, msg)
	}
}

func (b *Bus) DeleteMessage(ctx context.Context, ref MessageRef, reason string) error {
	return b.transport.DeleteMessage(ctx, ref, reason)
}

func (b *Bus) SendMessage(ctx context.Context, channelID Snowflake, text string) error {
	return b.transport.SendMessage(ctx, channelID, text)
}

func (b *Bus) ListActiveInvites(ctx context.Context, guildID Snowflake) ([]string, error) {
	return b.transport.ListActiveInvites(ctx, guildID)
}

type subscription struct {
	bus  *Bus
	set  map[int]MessageHandler
	id   int
	once sync.Once
}

func (s *subscription) Cancel() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		defer s.bus.mu.Unlock()
		delete(s.set, s.id)
	})
}
