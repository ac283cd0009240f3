package event

import (
	"sync"

	"github.com/google/uuid"
)

// Handler is called with each event delivered to a subscription.
type Handler func(Envelope)

// Bus routes envelopes to topic subscribers. Delivery is synchronous
// and in no particular order across subscribers.
// Bus is safe for concurrent use, though the engine publishes from a
// single goroutine.
type Bus struct {
	mu   sync.RWMutex
	subs map[Topic]map[string]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic]map[string]Handler)}
}

// Subscribe registers a handler for a topic and returns the
// subscription ID used to unsubscribe.
func (b *Bus) Subscribe(topic Topic, h Handler) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[string]Handler)
	}
	b.subs[topic][id] = h
	return id
}

// Unsubscribe removes a subscription. Unknown IDs are ignored.
func (b *Bus) Unsubscribe(topic Topic, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if handlers, ok := b.subs[topic]; ok {
		delete(handlers, id)
		if len(handlers) == 0 {
			delete(b.subs, topic)
		}
	}
}

// Publish delivers the envelope to every subscriber of its topic.
func (b *Bus) Publish(env Envelope) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[env.Topic]))
	for _, h := range b.subs[env.Topic] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(env)
	}
}
