/*
Package ecs is a small Entity-Component-System core: entity ids with owned
lifetimes, and structure-of-arrays component storage that is cleaned up
automatically when an entity is destroyed.

Core Concepts:

  - Entity: an owning handle on an ID. Destroying it removes the ID from
    every registered component.
  - EntityManager: allocates IDs and runs the cascading cleanup.
  - ComponentManager: storage for one component type. Each field is a column
    of a shared table, so every field of a row belongs to the same entity.
  - Query / Cursor: joins several components by entity.

Component managers come either from FactoryNewManager, which stores whole
records, or from ecsgen, which generates a per-field manager with views for
any struct marked //ecs:component.

Basic Usage:

	em := ecs.Factory.NewEntityManager()

	positions, _ := ecs.FactoryNewManager[Position]()
	velocities, _ := ecs.FactoryNewManager[Velocity]()
	em.RegisterComponent(positions)
	em.RegisterComponent(velocities)

	e := em.Spawn()
	defer e.Destroy()
	positions.Add(e, &Position{X: 1})
	velocities.Add(e, nil)

	for id, vel := range velocities.Iter() {
		if pos, ok := positions.GetMut(id); ok {
			pos.X += vel.Value().X
		}
	}

Iteration takes a runtime borrow on the manager. Any number of Iter loops
may overlap, IterMut is exclusive, and Add or Remove during a loop is
applied once the loop ends.
*/
package ecs
