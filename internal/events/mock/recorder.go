package mockevents

import (
	"sync"

	"github.com/KirkDiggler/gamebus/internal/events"
)

// Recorder implements a scripted event handler for testing. Handle
// records every event it receives and optionally cancels the event or
// returns a predetermined error.
type Recorder struct {
	mu       sync.Mutex
	name     string
	received []events.Event
	err      error
	cancel   bool
}

// NewRecorder creates a new recorder
func NewRecorder(name string) *Recorder {
	return &Recorder{name: name}
}

// Name returns the recorder's name
func (r *Recorder) Name() string {
	return r.name
}

// SetError makes Handle return the given error
func (r *Recorder) SetError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// CancelOnHandle makes Handle cancel cancelable events it receives
func (r *Recorder) CancelOnHandle() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancel = true
}

// Handle records the event; usable directly as an events.HandlerFunc
func (r *Recorder) Handle(event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.received = append(r.received, event)
	if r.cancel {
		if c, ok := event.(events.Cancelable); ok {
			c.SetCanceled(true)
		}
	}
	return r.err
}

// Received returns a copy of the recorded events
func (r *Recorder) Received() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]events.Event, len(r.received))
	copy(out, r.received)
	return out
}

// CallCount returns how many events Handle has recorded
func (r *Recorder) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.received)
}

// Reset clears recorded events and scripted behavior
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.received = nil
	r.err = nil
	r.cancel = false
}
