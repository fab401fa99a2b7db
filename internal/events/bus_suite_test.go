package events_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gamebus/internal/entities"
	"github.com/KirkDiggler/gamebus/internal/events"
	mockevents "github.com/KirkDiggler/gamebus/internal/events/mock"
	"github.com/KirkDiggler/gamebus/internal/uuid"
)

type EventBusSuite struct {
	suite.Suite
	bus *events.Bus
}

func TestEventBusSuite(t *testing.T) {
	suite.Run(t, new(EventBusSuite))
}

func (s *EventBusSuite) SetupTest() {
	s.bus = events.NewBus(events.WithIDGenerator(uuid.NewSequentialGenerator("sub")))
}

func (s *EventBusSuite) TestRecorderReceivesEvents() {
	recorder := mockevents.NewRecorder("observer")
	s.Require().NoError(s.bus.Register(recorder,
		events.On(events.EventTypeEntityHurt, recorder.Handle)))

	event := events.NewEntityHurtEvent(entities.NewEntity("Grunk"),
		entities.DamageSource{Kind: "fire"}, 6)
	s.Require().NoError(s.bus.Post(event))

	s.Equal(1, recorder.CallCount())
	s.Same(event, recorder.Received()[0])
}

func (s *EventBusSuite) TestRecorderCancelGatesOtherSubscribers() {
	canceler := mockevents.NewRecorder("canceler")
	canceler.CancelOnHandle()
	late := mockevents.NewRecorder("late")

	s.Require().NoError(s.bus.Register(canceler,
		events.On(events.EventTypeEntityDeath, canceler.Handle).
			WithPriority(events.PriorityHighest)))
	s.Require().NoError(s.bus.Register(late,
		events.On(events.EventTypeEntityDeath, late.Handle)))

	death := events.NewEntityDeathEvent(entities.NewEntity("Mira"),
		entities.DamageSource{Kind: "attack"})
	s.Require().NoError(s.bus.Post(death))

	s.Equal(1, canceler.CallCount())
	s.Zero(late.CallCount())
	s.True(death.IsCanceled())
}

func (s *EventBusSuite) TestRecorderErrorPropagates() {
	recorder := mockevents.NewRecorder("failer")
	recorder.SetError(errors.New("handler exploded"))

	s.Require().NoError(s.bus.Register(recorder,
		events.On(events.EventTypeItemPickup, recorder.Handle)))

	pickup := events.NewItemPickupEvent(entities.NewEntity("Bolt"),
		&entities.ItemStack{Key: "mana_orb", Name: "Mana Orb", Count: 1})
	err := s.bus.Post(pickup)

	s.Require().Error(err)
	s.Contains(err.Error(), "handler exploded")
}

func (s *EventBusSuite) TestListenerCounts() {
	recorder := mockevents.NewRecorder("observer")
	s.Require().NoError(s.bus.Register(recorder,
		events.On(events.EventTypeEntityHurt, recorder.Handle),
		events.On(events.EventTypeEntityFall, recorder.Handle),
		events.On(events.EventTypeEntityFall, recorder.Handle)))

	s.Equal(1, s.bus.ListenerCount(events.EventTypeEntityHurt))
	s.Equal(2, s.bus.ListenerCount(events.EventTypeEntityFall))
	s.Zero(s.bus.ListenerCount(events.EventTypeEntityJump))
	s.Equal(3, s.bus.TotalListenerCount())
}

func (s *EventBusSuite) TestClear() {
	recorder := mockevents.NewRecorder("observer")
	s.Require().NoError(s.bus.Register(recorder,
		events.On(events.EventTypeEntityHurt, recorder.Handle)))

	s.bus.Clear()

	s.Zero(s.bus.TotalListenerCount())
	s.Require().NoError(s.bus.Post(events.NewEntityHurtEvent(
		entities.NewEntity("Grunk"), entities.DamageSource{Kind: "attack"}, 3)))
	s.Zero(recorder.CallCount())
}

func (s *EventBusSuite) TestResultableOutcome() {
	s.Require().NoError(s.bus.Register("pickup-gate",
		events.On(events.EventTypeItemPickup, func(e events.Event) error {
			pickup := e.(*events.ItemPickupEvent)
			if pickup.Item.Key == "mana_orb" {
				pickup.SetResult(events.ResultDeny)
			}
			return nil
		})))

	pickup := events.NewItemPickupEvent(entities.NewEntity("Iggy"),
		&entities.ItemStack{Key: "mana_orb", Name: "Mana Orb", Count: 1})
	s.Require().NoError(s.bus.Post(pickup))

	s.Equal(events.ResultDeny, pickup.GetResult())
	s.False(pickup.IsCanceled())
}
