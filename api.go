package ecs

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

// Keyed resolves to the ID used as a storage key. Both ID and *Entity
// implement it.
type Keyed interface {
	ID() ID
}

// ComponentStore is the part of a component manager the EntityManager
// needs: cleanup on destroy and membership checks for queries.
type ComponentStore interface {
	Name() string
	Contains(id ID) bool
	Remove(id ID)
}

// ComponentManager is the storage contract for one component type C.
// V is the read-only view and M the mutable view of one stored row.
//
// Add with a nil record stores the zero value. Re-adding replaces every
// field. Remove is idempotent. Iter and IterMut walk ids in ascending order.
type ComponentManager[C, V, M any] interface {
	ComponentStore
	Add(key Keyed, data *C)
	Len() int
	Get(id ID) (V, bool)
	GetMut(id ID) (M, bool)
	Iter() iter.Seq2[ID, V]
	IterMut() iter.Seq2[ID, M]
}

type Query interface {
	QueryNode
	And(items ...interface{}) QueryNode
	Or(items ...interface{}) QueryNode
	Not(items ...interface{}) QueryNode
}

// QueryNode matches against the mask of registered components that hold
// an entity.
type QueryNode interface {
	Evaluate(entityMask mask.Mask, em *EntityManager) bool
}

type iCursor interface {
	Entities() iter.Seq[ID]
	Next() bool
}

type Cache[T any] interface {
	GetIndex(string) (int, bool)
	GetItem(int) *T
	GetItem32(uint32) *T
	Register(string, T) (int, error)
	Len() int
}
