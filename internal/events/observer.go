package events

// DispatchObserver receives notifications about dispatch activity.
// Implementations must be safe for concurrent use and must not block;
// the bus calls them synchronously while dispatching.
type DispatchObserver interface {
	// EventPosted fires once per Post with the subscription count seen
	// at snapshot time
	EventPosted(eventType EventType, subscriptions int)

	// EventDelivered fires after a handler returns without error
	EventDelivered(eventType EventType, priority Priority)

	// DeliverySkipped fires when a canceled event bypasses a
	// subscription without ReceiveCanceled
	DeliverySkipped(eventType EventType, priority Priority)
}
