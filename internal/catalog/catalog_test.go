package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasses(t *testing.T) {
	passes := Passes()
	require.Len(t, passes, 7)

	// Catalog order is display order.
	assert.Equal(t, "first-tracks", passes[0].ID)
	assert.Equal(t, "private-office", passes[6].ID)

	for _, p := range passes {
		inv, ok := InventoryFor(p.ID)
		require.True(t, ok, "pass %s has no inventory entry", p.ID)
		assert.Greater(t, inv.DailyCapacity, 0)
		assert.NotEmpty(t, inv.Spaces)
	}
}

func TestCapacityFor(t *testing.T) {
	assert.Equal(t, 12, CapacityFor("first-tracks"))
	assert.Equal(t, 1, CapacityFor("the-gate"))
	assert.Equal(t, 4, CapacityFor("gondola-month"))
	assert.Equal(t, 1, CapacityFor("private-office"))

	t.Run("unknown pass defaults to zero", func(t *testing.T) {
		assert.Equal(t, 0, CapacityFor("snowcat"))
	})
}

func TestPassByID(t *testing.T) {
	p, ok := PassByID("mountain-local")
	require.True(t, ok)
	assert.Equal(t, 175, p.Price)
	assert.Equal(t, CategoryMonthly, p.Category)
	assert.False(t, p.Category.PerDay())

	day, ok := PassByID("first-tracks")
	require.True(t, ok)
	assert.True(t, day.Category.PerDay())

	_, ok = PassByID("snowcat")
	assert.False(t, ok)
}

func TestSharedPoolPassIDs(t *testing.T) {
	t.Run("gondola variants share one physical pool", func(t *testing.T) {
		pool := SharedPoolPassIDs("gondola-month")
		assert.ElementsMatch(t, []string{"gondola-month", "gondola-commitment"}, pool)
	})

	t.Run("flex passes share the flex desk pool", func(t *testing.T) {
		pool := SharedPoolPassIDs("first-tracks")
		assert.ElementsMatch(t, []string{"first-tracks", "base-lodge", "mountain-local"}, pool)
	})

	t.Run("private offices stand alone", func(t *testing.T) {
		assert.Equal(t, []string{"the-gate"}, SharedPoolPassIDs("the-gate"))
		assert.Equal(t, []string{"private-office"}, SharedPoolPassIDs("private-office"))
	})

	t.Run("unknown pass has no pool", func(t *testing.T) {
		assert.Nil(t, SharedPoolPassIDs("snowcat"))
	})
}
