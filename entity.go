package ecs

import "fmt"

// ID identifies an entity within one EntityManager. IDs start at 0, grow
// by one per spawn and are never reused.
type ID uint64

// ID lets a bare id be used wherever a Keyed is accepted.
func (id ID) ID() ID {
	return id
}

var _ Keyed = &Entity{}

// Entity owns one id. Destroying it removes the id from every component
// registered with the EntityManager that spawned it.
//
// Go has no destructors, so end of scope is spelled out:
//
//	e := em.Spawn()
//	defer e.Destroy()
//
// or EntityManager.Scope.
type Entity struct {
	id        ID
	manager   *EntityManager
	destroyed bool
}

func (e *Entity) ID() ID {
	return e.id
}

func (e *Entity) Alive() bool {
	return e != nil && !e.destroyed
}

// Destroy runs the cascading cleanup. Only the first call that completes
// has an effect; a destroy that panics leaves the entity alive so it can
// be retried.
func (e *Entity) Destroy() {
	if e == nil || e.destroyed {
		return
	}
	// set before cleanup so a store destroying e again from Remove is a no-op
	e.destroyed = true
	defer func() {
		if r := recover(); r != nil {
			e.destroyed = false
			panic(r)
		}
	}()
	e.manager.destroy(e.id)
}

// Close is Destroy in io.Closer form.
func (e *Entity) Close() error {
	e.Destroy()
	return nil
}

func (e *Entity) String() string {
	if e.destroyed {
		return fmt.Sprintf("Entity(%d, destroyed)", e.id)
	}
	return fmt.Sprintf("Entity(%d)", e.id)
}
