package ecs

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
)

// TestCacheBasicOperations tests the basic operations of the SimpleCache
func TestCacheBasicOperations(t *testing.T) {
	const capacity = 10
	cache := FactoryNewCache[string](capacity)

	items := []string{"item1", "item2", "item3", "item4", "item5"}
	for i, item := range items {
		index, err := cache.Register(item, item)
		assert.NilError(t, err)
		assert.Equal(t, index, i)
	}
	assert.Equal(t, cache.Len(), len(items))

	for i, item := range items {
		index, found := cache.GetIndex(item)
		assert.Assert(t, found)
		assert.Equal(t, index, i)
		assert.Equal(t, *cache.GetItem(i), item)
		assert.Equal(t, *cache.GetItem32(uint32(i)), item)
	}

	_, found := cache.GetIndex("nonexistent")
	assert.Assert(t, !found)
}

func TestCacheCapacity(t *testing.T) {
	cache := FactoryNewCache[int](2)
	_, err := cache.Register("a", 1)
	assert.NilError(t, err)
	_, err = cache.Register("b", 2)
	assert.NilError(t, err)

	index, err := cache.Register("c", 3)
	assert.Equal(t, index, -1)
	var full RegistryFullError
	assert.Assert(t, errors.As(err, &full))
}

func TestCachePointersWriteThrough(t *testing.T) {
	cache := FactoryNewCache[registration](4)
	index, err := cache.Register("slot", registration{name: "slot"})
	assert.NilError(t, err)

	cache.GetItem(index).id = 3
	assert.Equal(t, cache.GetItem32(uint32(index)).id, ComponentID(3))

	_, found := cache.GetIndex("slot")
	assert.Assert(t, found)
}
