package events

// EventPublisher defines the interface for sending and receiving events.
// This interface allows for loose coupling and easier testing by depending
// on behavior rather than concrete implementation.
type EventPublisher interface {
	// Publish delivers an event to every current subscriber without blocking
	Publish(event Event)

	// Subscribe registers a subscriber with the given channel buffer and
	// returns its channel plus a function that unsubscribes and closes it
	Subscribe(buffer int) (<-chan Event, func())

	// Close closes every subscriber channel; later publishes are dropped
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
