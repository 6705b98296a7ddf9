package ecs

import (
	"github.com/TheBitDrifter/mask"
	"github.com/rotisserie/eris"
)

// ComponentID is the registration slot of a component store. It doubles as
// the store's bit in query masks.
type ComponentID uint32

type registration struct {
	id    ComponentID
	name  string
	store ComponentStore
}

// registry keeps component stores in registration order. Slots are never
// removed: unregistering clears the store so the order of the remaining
// slots, and the slot a name returns to, stay fixed.
type registry struct {
	slots  Cache[registration]
	active mask.Mask
}

func newRegistry(capacity int) registry {
	return registry{
		slots: FactoryNewCache[registration](capacity),
	}
}

func (r *registry) register(store ComponentStore) (ComponentID, error) {
	name := store.Name()
	if idx, found := r.slots.GetIndex(name); found {
		slot := r.slots.GetItem(idx)
		if slot.store != nil {
			return 0, ComponentRegisteredError{Name: name}
		}
		slot.store = store
		r.active.Mark(uint32(slot.id))
		return slot.id, nil
	}
	idx, err := r.slots.Register(name, registration{name: name, store: store})
	if err != nil {
		return 0, err
	}
	slot := r.slots.GetItem(idx)
	slot.id = ComponentID(idx)
	r.active.Mark(uint32(slot.id))
	return slot.id, nil
}

func (r *registry) unregister(id ComponentID) (string, error) {
	if !r.isActive(id) {
		return "", eris.Wrapf(ErrUnknownComponent, "component id %d", id)
	}
	slot := r.slots.GetItem32(uint32(id))
	slot.store = nil
	r.active.Unmark(uint32(id))
	return slot.name, nil
}

func (r *registry) isActive(id ComponentID) bool {
	if int(id) >= r.slots.Len() {
		return false
	}
	var bit mask.Mask
	bit.Mark(uint32(id))
	return r.active.ContainsAll(bit)
}

// each visits active slots in registration order.
func (r *registry) each(fn func(reg *registration)) {
	for i := 0; i < r.slots.Len(); i++ {
		reg := r.slots.GetItem(i)
		if reg.store == nil {
			continue
		}
		fn(reg)
	}
}

func (r *registry) lookup(store ComponentStore) (ComponentID, bool) {
	idx, found := r.slots.GetIndex(store.Name())
	if !found {
		return 0, false
	}
	reg := r.slots.GetItem(idx)
	if reg.store != store {
		return 0, false
	}
	return reg.id, true
}

// maskOf marks every active store holding id.
func (r *registry) maskOf(id ID) mask.Mask {
	var m mask.Mask
	r.each(func(reg *registration) {
		if reg.store.Contains(id) {
			m.Mark(uint32(reg.id))
		}
	})
	return m
}

// maskFor marks the bits of stores. complete is false when any of them is
// not registered.
func (r *registry) maskFor(stores []ComponentStore) (m mask.Mask, complete bool) {
	complete = true
	for _, store := range stores {
		id, ok := r.lookup(store)
		if !ok {
			complete = false
			continue
		}
		m.Mark(uint32(id))
	}
	return m, complete
}
