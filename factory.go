package ecs

import "github.com/TheBitDrifter/table"

type factory struct{}

var Factory factory

func (f factory) NewEntityManager(opts ...Option) *EntityManager {
	return newEntityManager(opts...)
}

// NewStore builds a store with one column per element type. Generated
// managers call it with the columns of their fields.
func (f factory) NewStore(name string, columns ...table.ElementType) (*Store, error) {
	return newStore(name, table.Factory.NewSchema(), columns...)
}

func (f factory) NewQuery() Query {
	return newQuery()
}

func (f factory) NewCursor(query QueryNode, em *EntityManager) *Cursor {
	return newCursor(query, em)
}

func FactoryNewField[T any]() Field[T] {
	iden := table.FactoryNewElementType[T]()
	return Field[T]{
		ElementType: iden,
		Accessor:    table.FactoryNewAccessor[T](iden),
	}
}

// FactoryNewManager returns a Manager named after C.
func FactoryNewManager[C any]() (*Manager[C], error) {
	field := FactoryNewField[C]()
	store, err := Factory.NewStore(componentName[C](), field.Column())
	if err != nil {
		return nil, err
	}
	return &Manager[C]{field: field, store: store}, nil
}

func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		itemIndices: make(map[string]int),
		maxCapacity: cap,
	}
}
