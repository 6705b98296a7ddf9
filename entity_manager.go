package ecs

import (
	"iter"
	"slices"

	"github.com/rs/zerolog"
)

// EntityManager allocates entity ids and destroys them across every
// registered component store. A *EntityManager may be shared freely; all
// copies of the pointer act on the same state.
//
// Mutating calls hold the manager exclusively for their duration. Calling
// back into a mutating method from inside one (for example spawning from a
// store's Remove during a destroy) panics with a *BorrowError.
type EntityManager struct {
	counter  ID
	live     []ID
	registry registry
	held     string
	logger   zerolog.Logger
}

type Option func(*EntityManager)

func WithLogger(logger zerolog.Logger) Option {
	return func(em *EntityManager) {
		em.logger = logger
	}
}

// WithMaxComponents overrides Config.MaxComponents for one manager. It is
// capped at mask.MaxBits.
func WithMaxComponents(n int) Option {
	return func(em *EntityManager) {
		if n > 0 {
			em.registry = newRegistry(clampComponents(n))
		}
	}
}

func newEntityManager(opts ...Option) *EntityManager {
	em := &EntityManager{
		registry: newRegistry(Config.maxComponents),
		logger:   Config.logger,
	}
	for _, opt := range opts {
		opt(em)
	}
	return em
}

// Spawn allocates the next id.
func (em *EntityManager) Spawn() *Entity {
	em.acquire("spawn")
	defer em.release()

	id := em.counter
	em.counter++
	em.live = append(em.live, id)

	em.logger.Trace().Uint64("entity_id", uint64(id)).Msg("spawned entity")
	return &Entity{id: id, manager: em}
}

// Scope spawns an entity, runs fn with it and destroys it on every exit
// path, including a panic in fn.
func (em *EntityManager) Scope(fn func(e *Entity) error) error {
	e := em.Spawn()
	defer e.Destroy()
	return fn(e)
}

// RegisterComponent adds store to the cleanup list. Destroys run stores in
// the order they were registered. Entities destroyed before this call are
// not revisited.
func (em *EntityManager) RegisterComponent(store ComponentStore) (ComponentID, error) {
	em.acquire("register_component")
	defer em.release()

	id, err := em.registry.register(store)
	if err != nil {
		return 0, err
	}
	em.logger.Debug().
		Int("component_id", int(id)).
		Str("component_name", store.Name()).
		Msg("registered component")
	return id, nil
}

// UnregisterComponent stops destroys from reaching the store in slot id.
// Registering a store of the same name again reuses the slot.
func (em *EntityManager) UnregisterComponent(id ComponentID) error {
	em.acquire("unregister_component")
	defer em.release()

	name, err := em.registry.unregister(id)
	if err != nil {
		return err
	}
	em.logger.Debug().
		Int("component_id", int(id)).
		Str("component_name", name).
		Msg("unregistered component")
	return nil
}

// Components lists active registrations in cleanup order.
func (em *EntityManager) Components() []ComponentID {
	var ids []ComponentID
	em.registry.each(func(reg *registration) {
		ids = append(ids, reg.id)
	})
	return ids
}

// ComponentName returns the store name registered in slot id.
func (em *EntityManager) ComponentName(id ComponentID) (string, bool) {
	if !em.registry.isActive(id) {
		return "", false
	}
	return em.registry.slots.GetItem32(uint32(id)).name, true
}

func (em *EntityManager) Alive(id ID) bool {
	_, found := slices.BinarySearch(em.live, id)
	return found
}

// Len is the number of live entities.
func (em *EntityManager) Len() int {
	return len(em.live)
}

// Entities yields a snapshot of live ids in ascending order.
func (em *EntityManager) Entities() iter.Seq[ID] {
	return slices.Values(slices.Clone(em.live))
}

func (em *EntityManager) destroy(id ID) {
	em.acquire("destroy")
	defer em.release()

	em.registry.each(func(reg *registration) {
		reg.store.Remove(id)
	})
	// untracked last: a destroy that panics in a store stays retryable
	if i, found := slices.BinarySearch(em.live, id); found {
		em.live = slices.Delete(em.live, i, i+1)
	}
	em.logger.Trace().Uint64("entity_id", uint64(id)).Msg("destroyed entity")
}

func (em *EntityManager) acquire(op string) {
	if em.held != "" {
		panic(&BorrowError{Target: "entity manager", Held: em.held, Requested: op})
	}
	em.held = op
}

func (em *EntityManager) release() {
	em.held = ""
}
