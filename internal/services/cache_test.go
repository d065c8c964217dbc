package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook/internal/models"
)

func TestCache_ReplaceCopiesInput(t *testing.T) {
	var c listCache

	src := []models.Service{{ID: "a", Name: "Haircut"}}
	c.Replace(src)
	src[0].Name = "mutated"

	got := c.Snapshot()
	require.Len(t, got, 1)
	assert.Equal(t, "Haircut", got[0].Name, "cache must not alias the caller's slice")
}

func TestCache_SnapshotIsACopy(t *testing.T) {
	var c listCache
	c.Replace([]models.Service{{ID: "a", Name: "Haircut"}})

	snap := c.Snapshot()
	snap[0].Name = "mutated"

	assert.Equal(t, "Haircut", c.Snapshot()[0].Name)
}

func TestCache_AppendKeepsOrder(t *testing.T) {
	var c listCache
	c.Append(models.Service{ID: "a"})
	c.Append(models.Service{ID: "b"})

	got := c.Snapshot()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestCache_PatchByIdentity(t *testing.T) {
	var c listCache
	c.Replace([]models.Service{
		{ID: "a", Name: "Haircut", Price: "150000", Creator: "Nguyen Van A", CreatedAt: "2024-01-02T03:04:05Z"},
		{ID: "b", Name: "Manicure", Price: "90000"},
	})

	assert.True(t, c.Patch("a", "Haircut deluxe", "200000"))
	assert.False(t, c.Patch("missing", "x", "1"))

	got := c.Snapshot()
	assert.Equal(t, "Haircut deluxe", got[0].Name)
	assert.Equal(t, "200000", got[0].Price)
	assert.Equal(t, "Nguyen Van A", got[0].Creator)
	assert.Equal(t, "2024-01-02T03:04:05Z", got[0].CreatedAt)
	assert.Equal(t, "Manicure", got[1].Name, "other entries stay untouched")
}

func TestCache_RemoveByIdentity(t *testing.T) {
	var c listCache
	c.Replace([]models.Service{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	assert.True(t, c.Remove("b"))
	assert.False(t, c.Remove("b"))

	got := c.Snapshot()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}
