package events

import (
	"github.com/KirkDiggler/gamebus/internal/entities"
)

// ItemPickupEvent is posted when an entity picks up an item stack.
// Cancelable, and resultable: ResultDeny keeps the stack out of the
// inventory without consuming it, which is how orb-style items that
// apply on pickup are implemented.
type ItemPickupEvent struct {
	CancelableEvent
	EventResult
	Item *entities.ItemStack
}

// NewItemPickupEvent creates a pickup event
func NewItemPickupEvent(entity *entities.Entity, item *entities.ItemStack) *ItemPickupEvent {
	return &ItemPickupEvent{
		CancelableEvent: CancelableEvent{BaseEvent: BaseEvent{Type: EventTypeItemPickup, Entity: entity}},
		Item:            item,
	}
}

// ArrowNockEvent is posted when an entity starts drawing a bow.
// Cancelable; a canceling handler sets Result to the stack the caller
// should be left holding instead.
type ArrowNockEvent struct {
	CancelableEvent
	Bow    *entities.ItemStack
	Result *entities.ItemStack
}

// NewArrowNockEvent creates a nock event
func NewArrowNockEvent(entity *entities.Entity, bow *entities.ItemStack) *ArrowNockEvent {
	return &ArrowNockEvent{
		CancelableEvent: CancelableEvent{BaseEvent: BaseEvent{Type: EventTypeArrowNock, Entity: entity}},
		Bow:             bow,
	}
}

// ArrowLooseEvent is posted when an entity releases a drawn bow.
// Cancelable; Charge is the number of ticks the bow was drawn and may
// be modified by handlers before the shot resolves.
type ArrowLooseEvent struct {
	CancelableEvent
	Bow    *entities.ItemStack
	Charge int
}

// NewArrowLooseEvent creates a loose event
func NewArrowLooseEvent(entity *entities.Entity, bow *entities.ItemStack, charge int) *ArrowLooseEvent {
	return &ArrowLooseEvent{
		CancelableEvent: CancelableEvent{BaseEvent: BaseEvent{Type: EventTypeArrowLoose, Entity: entity}},
		Bow:             bow,
		Charge:          charge,
	}
}

// HarvestCheckEvent is posted when an entity breaks a block, before
// the block releases its drops. Not cancelable; handlers flip Success
// to control whether the harvest yields anything.
type HarvestCheckEvent struct {
	BaseEvent
	Block   string
	Success bool
}

// NewHarvestCheckEvent creates a harvest check event
func NewHarvestCheckEvent(entity *entities.Entity, block string, success bool) *HarvestCheckEvent {
	return &HarvestCheckEvent{
		BaseEvent: BaseEvent{Type: EventTypeHarvestCheck, Entity: entity},
		Block:     block,
		Success:   success,
	}
}
