package physics

import (
	"github.com/TheBitDrifter/ecs"
)

// World wires the physics components to one EntityManager.
type World struct {
	Entities   *ecs.EntityManager
	Transforms *TransformManager
	Velocities *VelocityManager
	Labels     *LabelManager
}

func NewWorld(opts ...ecs.Option) (*World, error) {
	w := &World{Entities: ecs.Factory.NewEntityManager(opts...)}

	var err error
	if w.Transforms, err = NewTransformManager(); err != nil {
		return nil, err
	}
	if w.Velocities, err = NewVelocityManager(); err != nil {
		return nil, err
	}
	if w.Labels, err = NewLabelManager(); err != nil {
		return nil, err
	}
	for _, store := range []ecs.ComponentStore{w.Transforms, w.Velocities, w.Labels} {
		if _, err := w.Entities.RegisterComponent(store); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Integrate moves every transform that has a velocity by velocity*dt and
// returns how many were moved.
func (w *World) Integrate(dt float64) int {
	moved := 0
	for id, vel := range w.Velocities.Iter() {
		t, ok := w.Transforms.GetMut(id)
		if !ok {
			continue
		}
		*t.X += vel.X() * dt
		*t.Y += vel.Y() * dt
		moved++
	}
	return moved
}

// Moving returns a cursor over entities with a transform and a velocity.
func (w *World) Moving() *ecs.Cursor {
	query := ecs.Factory.NewQuery()
	node := query.And(w.Transforms, w.Velocities)
	return ecs.Factory.NewCursor(node, w.Entities)
}
