package events

// EventPublisher defines the interface for fanning out state change events.
// This interface allows for loose coupling and easier testing by depending
// on behavior rather than concrete implementation.
type EventPublisher interface {
	// Publish stamps the event and delivers it to every subscriber
	Publish(event Event)

	// Subscribe registers a new listener. The returned cancel func
	// unregisters it and closes the channel.
	Subscribe() (<-chan Event, func())

	// Close closes every subscriber channel
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
