package ecs

import (
	"iter"
	"slices"
)

var _ iCursor = &Cursor{}

// Cursor walks the live entities of an EntityManager that match a query,
// in ascending id order. The set of candidates is fixed when iteration
// starts; ids destroyed during the walk are skipped.
type Cursor struct {
	query QueryNode
	em    *EntityManager

	ids     []ID
	index   int
	current ID

	initialized bool
}

func newCursor(query QueryNode, em *EntityManager) *Cursor {
	return &Cursor{
		query: query,
		em:    em,
	}
}

func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	}
	for c.index < len(c.ids) {
		id := c.ids[c.index]
		c.index++
		if c.matches(id) {
			c.current = id
			return true
		}
	}
	c.Reset()
	return false
}

// ID is the entity the cursor currently points at.
func (c *Cursor) ID() ID {
	return c.current
}

func (c *Cursor) Entities() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		defer c.Reset()
		for c.Next() {
			if !yield(c.current) {
				return
			}
		}
	}
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.ids = slices.Clone(c.em.live)
	c.index = 0
	c.initialized = true
}

func (c *Cursor) matches(id ID) bool {
	if !c.em.Alive(id) {
		return false
	}
	return c.query.Evaluate(c.em.registry.maskOf(id), c.em)
}

func (c *Cursor) Reset() {
	c.ids = nil
	c.index = 0
	c.current = 0
	c.initialized = false
}

func (c *Cursor) TotalMatched() int {
	total := 0
	for _, id := range c.em.live {
		if c.matches(id) {
			total++
		}
	}
	return total
}
