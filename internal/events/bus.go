// Package events provides an in-process bus that tells UIs when label state
// changed so they can re-render.
package events

import (
	"log/slog"
	"sync"
	"time"
)

// defaultBuffer is the per-subscriber channel capacity
const defaultBuffer = 16

// Bus delivers events to any number of subscribers without ever blocking the
// publisher. A subscriber whose buffer is full misses the event; since every
// event only means "state changed, read it again", a later event carries the
// same information.
type Bus struct {
	mu          sync.Mutex
	subscribers map[int]chan Event
	nextID      int
	sequence    int64
	buffer      int
	closed      bool
	logger      *slog.Logger
}

// NewBus creates an empty bus. A nil logger falls back to slog.Default().
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subscribers: make(map[int]chan Event),
		buffer:      defaultBuffer,
		logger:      logger,
	}
}

// Publish stamps the event with a timestamp and sequence number and hands it
// to every subscriber. Publishing on a closed bus is a no-op.
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.sequence++
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			b.logger.Debug("dropping event for slow subscriber",
				"subscriber", id,
				"event_type", event.Type,
				"sequence", event.SequenceID)
		}
	}
}

// Subscribe registers a listener. Calling the returned func more than once is safe.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subscribers[id]; ok {
				delete(b.subscribers, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

// Close closes every subscriber channel. Subsequent Subscribe calls return
// an already closed channel.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
	return nil
}

// LastSequence returns the sequence number of the most recent event.
func (b *Bus) LastSequence() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sequence
}
