package ecs

import (
	"testing"

	"gotest.tools/v3/assert"
)

type queryFixture struct {
	em       *EntityManager
	position *Manager[Position]
	velocity *Manager[Velocity]
	health   *Manager[Health]
}

func newQueryFixture(t *testing.T) queryFixture {
	f := queryFixture{
		em:       Factory.NewEntityManager(),
		position: mustManager[Position](t),
		velocity: mustManager[Velocity](t),
		health:   mustManager[Health](t),
	}
	for _, store := range []ComponentStore{f.position, f.velocity, f.health} {
		_, err := f.em.RegisterComponent(store)
		assert.NilError(t, err)
	}
	return f
}

func (f queryFixture) spawn(count int, stores ...ComponentStore) {
	for i := 0; i < count; i++ {
		e := f.em.Spawn()
		for _, store := range stores {
			switch store {
			case f.position:
				f.position.Add(e, nil)
			case f.velocity:
				f.velocity.Add(e, nil)
			case f.health:
				f.health.Add(e, nil)
			}
		}
	}
}

// TestQueryFiltering tests the basic query filtering capabilities
func TestQueryFiltering(t *testing.T) {
	type entitySetup struct {
		components []string
		count      int
	}

	tests := []struct {
		name            string
		entitySetups    []entitySetup
		queryType       string // "and", "or", "not", "complex"
		expectedMatches int
	}{
		{
			name: "And query matches exact",
			entitySetups: []entitySetup{
				{[]string{"pos", "vel"}, 5},
				{[]string{"pos"}, 10},
				{[]string{"vel"}, 15},
			},
			queryType:       "and",
			expectedMatches: 5,
		},
		{
			name: "Or query matches either",
			entitySetups: []entitySetup{
				{[]string{"pos", "vel"}, 5},
				{[]string{"pos"}, 10},
				{[]string{"vel"}, 15},
				{nil, 7},
			},
			queryType:       "or",
			expectedMatches: 30, // 5 + 10 + 15
		},
		{
			name: "Not query excludes",
			entitySetups: []entitySetup{
				{[]string{"pos", "vel"}, 5},
				{[]string{"pos"}, 10},
				{[]string{"vel"}, 15},
				{[]string{"health"}, 20},
				{nil, 3},
			},
			queryType:       "not",
			expectedMatches: 33, // 10 + 20 + 3
		},
		{
			name: "Complex query",
			entitySetups: []entitySetup{
				{[]string{"pos", "vel", "health"}, 5},
				{[]string{"pos", "vel"}, 10},
				{[]string{"pos", "health"}, 15},
				{[]string{"vel", "health"}, 20},
				{[]string{"pos"}, 25},
				{[]string{"vel"}, 30},
				{[]string{"health"}, 35},
			},
			queryType:       "complex",
			expectedMatches: 30, // (P AND V) OR (P AND H) = 10 + 15 + 5 (counted once)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newQueryFixture(t)
			byName := map[string]ComponentStore{"pos": f.position, "vel": f.velocity, "health": f.health}
			for _, setup := range tt.entitySetups {
				var stores []ComponentStore
				for _, name := range setup.components {
					stores = append(stores, byName[name])
				}
				f.spawn(setup.count, stores...)
			}

			query := Factory.NewQuery()
			var node QueryNode
			switch tt.queryType {
			case "and":
				node = query.And(f.position, f.velocity)
			case "or":
				node = query.Or(f.position, f.velocity)
			case "not":
				node = query.Not(f.velocity)
			case "complex":
				node = query.Or(
					query.And(f.position, f.velocity),
					query.And(f.position, f.health),
				)
			}

			cursor := Factory.NewCursor(node, f.em)
			count := 0
			for cursor.Next() {
				count++
			}
			assert.Equal(t, count, tt.expectedMatches)
			assert.Equal(t, cursor.TotalMatched(), tt.expectedMatches)
		})
	}
}

func TestQueryNotWithChildren(t *testing.T) {
	f := newQueryFixture(t)
	f.spawn(2, f.position, f.velocity)
	f.spawn(3, f.position, f.health)
	f.spawn(4, f.health)

	query := Factory.NewQuery()
	node := query.Not(f.velocity, query.And(f.position, f.health))

	assert.Equal(t, Factory.NewCursor(node, f.em).TotalMatched(), 4)
}

func TestQueryUnregisteredComponent(t *testing.T) {
	f := newQueryFixture(t)
	stray := mustManager[struct{ Z int }](t)
	f.spawn(3, f.position)

	query := Factory.NewQuery()
	assert.Equal(t, Factory.NewCursor(query.And(f.position, stray), f.em).TotalMatched(), 0)
	assert.Equal(t, Factory.NewCursor(query.Or(f.position, stray), f.em).TotalMatched(), 3)
}

func TestQueryRootEvaluate(t *testing.T) {
	f := newQueryFixture(t)
	f.spawn(1, f.position)

	empty := Factory.NewQuery()
	assert.Equal(t, Factory.NewCursor(empty, f.em).TotalMatched(), 0)

	query := Factory.NewQuery()
	query.And(f.position)
	assert.Equal(t, Factory.NewCursor(query, f.em).TotalMatched(), 1)
}

func TestCursorSkipsDestroyed(t *testing.T) {
	em := Factory.NewEntityManager()
	position := mustManager[Position](t)
	_, err := em.RegisterComponent(position)
	assert.NilError(t, err)

	entities := make([]*Entity, 4)
	for i := range entities {
		entities[i] = em.Spawn()
		position.Add(entities[i], nil)
	}

	cursor := Factory.NewCursor(Factory.NewQuery().And(position), em)
	var ids []ID
	for id := range cursor.Entities() {
		ids = append(ids, id)
		if id == 0 {
			entities[2].Destroy()
		}
	}
	assert.DeepEqual(t, ids, []ID{0, 1, 3})

	// the cursor resets and can be walked again
	ids = ids[:0]
	for cursor.Next() {
		ids = append(ids, cursor.ID())
	}
	assert.DeepEqual(t, ids, []ID{0, 1, 3})
}
