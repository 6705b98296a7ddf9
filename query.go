package ecs

import (
	"github.com/TheBitDrifter/mask"
)

type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

type compositeNode struct {
	op         Operation
	children   []QueryNode
	components []ComponentStore
}

type query struct {
	root QueryNode
}

func newQuery() Query {
	return &query{}
}

func newCompositeNode(op Operation, components []ComponentStore) *compositeNode {
	return &compositeNode{
		op:         op,
		children:   make([]QueryNode, 0),
		components: components,
	}
}

func (n *compositeNode) Evaluate(entityMask mask.Mask, em *EntityManager) bool {
	// Unregistered stores hold nothing as far as the query is concerned
	nodeMask, complete := em.registry.maskFor(n.components)

	switch n.op {
	case OpAnd:
		if !complete || !entityMask.ContainsAll(nodeMask) {
			return false
		}
		for _, child := range n.children {
			if !child.Evaluate(entityMask, em) {
				return false
			}
		}
		return true

	case OpOr:
		if entityMask.ContainsAny(nodeMask) {
			return true
		}
		for _, child := range n.children {
			if child.Evaluate(entityMask, em) {
				return true
			}
		}
		return false

	case OpNot:
		if len(n.children) == 0 {
			return entityMask.ContainsNone(nodeMask)
		}
		for _, child := range n.children {
			if child.Evaluate(entityMask, em) {
				return false
			}
		}
		return !entityMask.ContainsAny(nodeMask)
	}
	return false
}

func (q *query) And(items ...interface{}) QueryNode {
	return q.node(OpAnd, items)
}

func (q *query) Or(items ...interface{}) QueryNode {
	return q.node(OpOr, items)
}

func (q *query) Not(items ...interface{}) QueryNode {
	return q.node(OpNot, items)
}

func (q *query) node(op Operation, items []interface{}) QueryNode {
	components, children := q.processItems(items...)
	node := newCompositeNode(op, components)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) processItems(items ...interface{}) ([]ComponentStore, []QueryNode) {
	components := make([]ComponentStore, 0)
	children := make([]QueryNode, 0)

	for _, item := range items {
		switch v := item.(type) {
		case ComponentStore:
			components = append(components, v)
		case []ComponentStore:
			components = append(components, v...)
		case QueryNode:
			children = append(children, v)
		}
	}

	return components, children
}

func (q *query) Evaluate(entityMask mask.Mask, em *EntityManager) bool {
	if q.root == nil {
		return false
	}
	return q.root.Evaluate(entityMask, em)
}
