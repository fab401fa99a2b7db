package events

// Event type constants
const (
	// Entity Events
	EventTypeEntityUpdate EventType = "entity_update"
	EventTypeEntityHurt   EventType = "entity_hurt"
	EventTypeEntityDeath  EventType = "entity_death"
	EventTypeEntityFall   EventType = "entity_fall"
	EventTypeEntityJump   EventType = "entity_jump"
	EventTypeEntityDrops  EventType = "entity_drops"

	// Item Events
	EventTypeItemPickup   EventType = "item_pickup"
	EventTypeArrowNock    EventType = "arrow_nock"
	EventTypeArrowLoose   EventType = "arrow_loose"
	EventTypeHarvestCheck EventType = "harvest_check"

	// Tick Events
	EventTypeTurnStart EventType = "turn_start"
	EventTypeTurnEnd   EventType = "turn_end"
)
