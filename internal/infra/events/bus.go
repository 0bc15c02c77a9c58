package events

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Bus is a synchronous in-process event bus.
// Domains publish after their transaction commits, so subscribers always
// observe committed state.
type Bus struct {
	mu       sync.RWMutex
	subscribers map[string][]Subscriber
	logger   *zap.Logger
}

// NewBus creates a new event bus.
func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{
		subscribers: make(map[string][]Subscriber),
		logger:   logger.Named("events"),
	}
}

// Register adds sub for each of its event types.
func (b *Bus) Register(sub Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, eventType := range sub.EventTypes() {
		b.subscribers[eventType] = append(b.subscribers[eventType], sub)
	}
}

// Publish delivers event to its subscribers in registration order. A failing
// or panicking subscriber is logged and skipped.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.subscribers[event.EventType()]
	b.mu.RUnlock()

	b.logger.Debug("publishing event",
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID().String()),
		zap.String("aggregate_id", event.AggregateID().String()),
		zap.Int("subscriber_count", len(subs)),
	)

	for _, sub := range subs {
		if err := b.dispatch(sub, event); err != nil {
			b.logger.Error("event subscriber failed",
				zap.String("event_type", event.EventType()),
				zap.String("event_id", event.EventID().String()),
				zap.Error(err),
			)
		}
	}
}

func (b *Bus) dispatch(sub Subscriber, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("subscriber panic: %v", r)
		}
	}()
	return sub.Notify(event)
}

// SubscriberCount returns how many subscribers receive eventType.
func (b *Bus) SubscriberCount(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers[eventType])
}
