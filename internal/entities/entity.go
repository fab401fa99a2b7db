package entities

import "github.com/google/uuid"

// Entity is an opaque reference to a live game object. Event payloads
// carry entities so handlers can identify who an occurrence concerns;
// the event bus itself never interprets them.
type Entity struct {
	ID   string
	Name string
	Tags []string
}

// NewEntity creates an entity with a generated ID
func NewEntity(name string, tags ...string) *Entity {
	return &Entity{
		ID:   uuid.New().String(),
		Name: name,
		Tags: tags,
	}
}

// HasTag reports whether the entity carries the given tag
func (e *Entity) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ItemStack identifies a stack of items held or dropped by an entity
type ItemStack struct {
	Key   string
	Name  string
	Count int
}

// DamageSource describes what caused a hurt or death occurrence
type DamageSource struct {
	Kind     string // "attack", "fall", "fire", etc.
	Attacker *Entity
}
