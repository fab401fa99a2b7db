package events

import (
	"log"
	"reflect"
	"sort"
	"sync"

	"github.com/KirkDiggler/gamebus/internal/errors"
	"github.com/KirkDiggler/gamebus/internal/uuid"
)

// subscription is one registered binding. Owned exclusively by the bus:
// created on Register, removed on Unregister or Clear.
type subscription struct {
	id      string
	owner   any
	binding Binding
	seq     uint64 // registration order, tiebreak within a priority
}

// Bus manages event subscriptions and dispatches posted events to them
// in priority order. Dispatch is synchronous on the posting goroutine;
// registration and dispatch may happen from different goroutines.
type Bus struct {
	mu            sync.RWMutex
	subscriptions map[EventType][]*subscription
	nextSeq       uint64
	idGen         uuid.Generator
	observer      DispatchObserver
}

// BusOption configures a Bus at construction time
type BusOption func(*Bus)

// WithObserver attaches a dispatch observer to the bus
func WithObserver(observer DispatchObserver) BusOption {
	return func(b *Bus) {
		b.observer = observer
	}
}

// WithIDGenerator overrides the subscription ID generator
func WithIDGenerator(gen uuid.Generator) BusOption {
	return func(b *Bus) {
		b.idGen = gen
	}
}

// NewBus creates a new event bus
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{
		subscriptions: make(map[EventType][]*subscription),
		idGen:         uuid.NewGoogleUUIDGenerator(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var (
	defaultBus  *Bus
	defaultOnce sync.Once
)

// Default returns the process-wide bus, creating it on first use. Code
// that needs an isolated bus (tests, simulations) should construct one
// with NewBus instead.
func Default() *Bus {
	defaultOnce.Do(func() {
		defaultBus = NewBus()
	})
	return defaultBus
}

// Register inserts one subscription per binding under that binding's
// event type. The owner identifies the subscriptions for a later
// Unregister and must be a comparable value, typically a pointer to the
// handler's struct. Re-registering the same owner creates additional
// independent subscriptions; the bus does no duplicate detection.
func (b *Bus) Register(owner any, bindings ...Binding) error {
	if owner == nil {
		return errors.InvalidArgument("owner is required")
	}
	if !reflect.TypeOf(owner).Comparable() {
		return errors.InvalidArgumentf("owner type %T is not comparable", owner)
	}
	for i, binding := range bindings {
		if binding.Type == "" {
			return errors.InvalidArgumentf("binding %d has no event type", i)
		}
		if binding.Handler == nil {
			return errors.InvalidArgumentf("binding %d for event %s has no handler", i, binding.Type)
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, binding := range bindings {
		sub := &subscription{
			id:      b.idGen.New(),
			owner:   owner,
			binding: binding,
			seq:     b.nextSeq,
		}
		b.nextSeq++

		bucket := append(b.subscriptions[binding.Type], sub)
		sort.SliceStable(bucket, func(i, j int) bool {
			if bucket[i].binding.Priority != bucket[j].binding.Priority {
				return bucket[i].binding.Priority < bucket[j].binding.Priority
			}
			return bucket[i].seq < bucket[j].seq
		})
		b.subscriptions[binding.Type] = bucket

		log.Printf("EventBus: registered subscription %s for event %s at priority %s",
			sub.id, binding.Type, binding.Priority)
	}

	return nil
}

// Unregister removes all subscriptions belonging to the owner across
// all event types. No-op if the owner was never registered.
func (b *Bus) Unregister(owner any) {
	if owner == nil || !reflect.TypeOf(owner).Comparable() {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	removed := 0
	for eventType, bucket := range b.subscriptions {
		kept := bucket[:0]
		for _, sub := range bucket {
			if sub.owner == owner {
				removed++
				continue
			}
			kept = append(kept, sub)
		}
		if len(kept) == 0 {
			delete(b.subscriptions, eventType)
			continue
		}
		b.subscriptions[eventType] = kept
	}

	if removed > 0 {
		log.Printf("EventBus: unregistered owner %T, removed %d subscriptions", owner, removed)
	}
}

// Post dispatches an event to every subscription of its type, highest
// priority first. A canceled event skips subscribers whose binding did
// not set ReceiveCanceled; the chain itself always runs to the end, so
// a later ReceiveCanceled subscriber may still un-cancel. The first
// handler error stops dispatch and propagates to the poster.
func (b *Bus) Post(event Event) error {
	if event == nil {
		return errors.InvalidArgument("cannot post nil event")
	}

	subs := b.snapshot(event.GetType())
	if b.observer != nil {
		b.observer.EventPosted(event.GetType(), len(subs))
	}
	if len(subs) == 0 {
		return nil
	}

	// Dispatch runs on the snapshot without holding the lock, so
	// handlers may register or unregister without deadlocking.
	for _, sub := range subs {
		if c, ok := event.(Cancelable); ok && c.IsCanceled() && !sub.binding.ReceiveCanceled {
			if b.observer != nil {
				b.observer.DeliverySkipped(event.GetType(), sub.binding.Priority)
			}
			continue
		}

		if err := sub.binding.Handler(event); err != nil {
			return errors.Wrapf(err, "subscription %s failed handling event %s", sub.id, event.GetType())
		}
		if b.observer != nil {
			b.observer.EventDelivered(event.GetType(), sub.binding.Priority)
		}
	}

	return nil
}

// snapshot returns a copy of the subscription bucket for an event type
func (b *Bus) snapshot(eventType EventType) []*subscription {
	b.mu.RLock()
	defer b.mu.RUnlock()

	bucket := b.subscriptions[eventType]
	if len(bucket) == 0 {
		return nil
	}

	subs := make([]*subscription, len(bucket))
	copy(subs, bucket)
	return subs
}

// Clear removes all subscriptions
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscriptions = make(map[EventType][]*subscription)
	log.Printf("EventBus: cleared all subscriptions")
}

// ListenerCount returns the number of subscriptions for an event type
func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subscriptions[eventType])
}

// TotalListenerCount returns the number of subscriptions across all
// event types
func (b *Bus) TotalListenerCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	total := 0
	for _, bucket := range b.subscriptions {
		total += len(bucket)
	}
	return total
}
