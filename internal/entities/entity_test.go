package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/gamebus/internal/entities"
)

func TestNewEntity(t *testing.T) {
	entity := entities.NewEntity("Grunk", "warded", "npc")

	assert.NotEmpty(t, entity.ID)
	assert.Equal(t, "Grunk", entity.Name)
	assert.True(t, entity.HasTag("warded"))
	assert.True(t, entity.HasTag("npc"))
	assert.False(t, entity.HasTag("feather"))
}

func TestNewEntity_UniqueIDs(t *testing.T) {
	a := entities.NewEntity("Mira")
	b := entities.NewEntity("Mira")

	assert.NotEqual(t, a.ID, b.ID)
}
