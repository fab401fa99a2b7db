package events_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/gamebus/internal/entities"
	"github.com/KirkDiggler/gamebus/internal/events"
)

// Registration and dispatch from separate goroutines must not race;
// dispatch iterates a snapshot, so it never observes a half-updated
// registry.
func TestEventBus_ConcurrentRegisterAndPost(t *testing.T) {
	bus := events.NewBus()

	var g errgroup.Group
	const workers = 8
	const iterations = 50

	for w := 0; w < workers; w++ {
		owner := fmt.Sprintf("worker-%d", w)
		g.Go(func() error {
			for i := 0; i < iterations; i++ {
				if err := bus.Register(owner,
					events.On(events.EventTypeEntityUpdate, func(e events.Event) error {
						return nil
					})); err != nil {
					return err
				}
				if err := bus.Post(events.NewEntityUpdateEvent(
					entities.NewEntity("Grunk"), int64(i))); err != nil {
					return err
				}
				bus.Unregister(owner)
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Zero(t, bus.TotalListenerCount())
}

// A handler may register further subscriptions mid-dispatch; they take
// effect on the next post, not the one in flight.
func TestEventBus_RegisterDuringDispatch(t *testing.T) {
	bus := events.NewBus()

	lateCalls := 0
	require.NoError(t, bus.Register("bootstrap",
		events.On(events.EventTypeTurnStart, func(e events.Event) error {
			return bus.Register("late",
				events.On(events.EventTypeTurnStart, func(e events.Event) error {
					lateCalls++
					return nil
				}))
		})))

	require.NoError(t, bus.Post(events.NewTurnStartEvent(1)))
	assert.Zero(t, lateCalls, "subscription added mid-dispatch must not fire in the same post")

	require.NoError(t, bus.Post(events.NewTurnStartEvent(2)))
	assert.Equal(t, 1, lateCalls, "the added subscription fires on the next post")
}
