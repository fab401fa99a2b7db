package events

// HandlerFunc processes a single event. Mutations the handler makes to
// the payload are visible to later subscribers and to the poster.
type HandlerFunc func(event Event) error

// Binding attaches a handler to one event type. Callers build bindings
// explicitly and pass them to Bus.Register; there is no reflective
// discovery of handler methods.
type Binding struct {
	Type EventType

	// Priority defaults to PriorityNormal (the zero value)
	Priority Priority

	// ReceiveCanceled lets the handler see events even after an earlier
	// subscriber canceled them
	ReceiveCanceled bool

	Handler HandlerFunc
}

// On creates a binding for the given event type at normal priority
func On(eventType EventType, handler HandlerFunc) Binding {
	return Binding{Type: eventType, Handler: handler}
}

// WithPriority sets the binding's dispatch priority
func (b Binding) WithPriority(priority Priority) Binding {
	b.Priority = priority
	return b
}

// WithReceiveCanceled marks the binding to receive canceled events
func (b Binding) WithReceiveCanceled() Binding {
	b.ReceiveCanceled = true
	return b
}
