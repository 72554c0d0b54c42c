package events

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Bus is an in-process EventPublisher. Subscribers that fall behind miss
// events rather than stalling the publisher.
type Bus struct {
	mu       sync.RWMutex
	subs     map[int]chan Event
	nextID   int
	closed   bool
	sequence atomic.Int64
}

// NewBus creates a bus with no subscribers
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Publish stamps the event with a sequence number and timestamp and delivers it
func (b *Bus) Publish(event Event) {
	event.SequenceID = b.sequence.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for id, ch := range b.subs {
		select {
		case ch <- event:
		default:
			slog.Warn("dropping event for slow subscriber",
				"subscriber", id,
				"event_type", event.Type,
				"sequence_id", event.SequenceID)
		}
	}
}

// Subscribe registers a new subscriber
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() { b.unsubscribe(id) })
	}
}

func (b *Bus) unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

// Close closes all subscriber channels
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
	return nil
}
