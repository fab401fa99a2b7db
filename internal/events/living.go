package events

import (
	"github.com/KirkDiggler/gamebus/internal/entities"
)

// EntityUpdateEvent is posted once per simulation tick for each live
// entity
type EntityUpdateEvent struct {
	BaseEvent
	Tick int64
}

// NewEntityUpdateEvent creates an update event for one tick
func NewEntityUpdateEvent(entity *entities.Entity, tick int64) *EntityUpdateEvent {
	return &EntityUpdateEvent{
		BaseEvent: BaseEvent{Type: EventTypeEntityUpdate, Entity: entity},
		Tick:      tick,
	}
}

// EntityHurtEvent is posted when an entity is damaged, before any
// damage is applied. Cancelable; handlers may also adjust Amount.
type EntityHurtEvent struct {
	CancelableEvent
	Source entities.DamageSource
	Amount int
}

// NewEntityHurtEvent creates a hurt event
func NewEntityHurtEvent(entity *entities.Entity, source entities.DamageSource, amount int) *EntityHurtEvent {
	return &EntityHurtEvent{
		CancelableEvent: CancelableEvent{BaseEvent: BaseEvent{Type: EventTypeEntityHurt, Entity: entity}},
		Source:          source,
		Amount:          amount,
	}
}

// EntityDeathEvent is posted when an entity dies. Cancelable, which is
// how a handler resurrects the entity.
type EntityDeathEvent struct {
	CancelableEvent
	Source entities.DamageSource
}

// NewEntityDeathEvent creates a death event
func NewEntityDeathEvent(entity *entities.Entity, source entities.DamageSource) *EntityDeathEvent {
	return &EntityDeathEvent{
		CancelableEvent: CancelableEvent{BaseEvent: BaseEvent{Type: EventTypeEntityDeath, Entity: entity}},
		Source:          source,
	}
}

// EntityFallEvent is posted when an entity hits the ground, before
// fall damage is calculated. Cancelable; handlers modify Distance to
// change the outcome of the fall.
type EntityFallEvent struct {
	CancelableEvent
	Distance float64
}

// NewEntityFallEvent creates a fall event
func NewEntityFallEvent(entity *entities.Entity, distance float64) *EntityFallEvent {
	return &EntityFallEvent{
		CancelableEvent: CancelableEvent{BaseEvent: BaseEvent{Type: EventTypeEntityFall, Entity: entity}},
		Distance:        distance,
	}
}

// EntityJumpEvent is posted whenever an entity jumps
type EntityJumpEvent struct {
	BaseEvent
}

// NewEntityJumpEvent creates a jump event
func NewEntityJumpEvent(entity *entities.Entity) *EntityJumpEvent {
	return &EntityJumpEvent{
		BaseEvent: BaseEvent{Type: EventTypeEntityJump, Entity: entity},
	}
}

// EntityDropsEvent is posted when a killed entity drops items.
// Cancelable; handlers may add to or remove from Drops.
type EntityDropsEvent struct {
	CancelableEvent
	Source       entities.DamageSource
	Drops        []*entities.ItemStack
	LootingLevel int
	RecentlyHit  bool
}

// NewEntityDropsEvent creates a drops event
func NewEntityDropsEvent(entity *entities.Entity, source entities.DamageSource, drops []*entities.ItemStack) *EntityDropsEvent {
	return &EntityDropsEvent{
		CancelableEvent: CancelableEvent{BaseEvent: BaseEvent{Type: EventTypeEntityDrops, Entity: entity}},
		Source:          source,
		Drops:           drops,
	}
}

// TurnStartEvent is posted at the beginning of a simulation round
type TurnStartEvent struct {
	BaseEvent
	Round int
}

// NewTurnStartEvent creates a turn start event
func NewTurnStartEvent(round int) *TurnStartEvent {
	return &TurnStartEvent{
		BaseEvent: BaseEvent{Type: EventTypeTurnStart},
		Round:     round,
	}
}

// TurnEndEvent is posted at the end of a simulation round
type TurnEndEvent struct {
	BaseEvent
	Round int
}

// NewTurnEndEvent creates a turn end event
func NewTurnEndEvent(round int) *TurnEndEvent {
	return &TurnEndEvent{
		BaseEvent: BaseEvent{Type: EventTypeTurnEnd},
		Round:     round,
	}
}
