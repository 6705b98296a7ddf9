package ecs

import (
	"iter"
	"reflect"

	"github.com/TheBitDrifter/table"
)

var _ ComponentManager[struct{}, View[struct{}], *struct{}] = &Manager[struct{}]{}

// Manager stores whole records of C in a single column. Use it when a
// generated per-field manager is not needed.
type Manager[C any] struct {
	field Field[C]
	store *Store
}

// View is a read-only handle on one stored record.
type View[C any] struct {
	ptr *C
}

// Value returns a copy of the stored record.
func (v View[C]) Value() C {
	return *v.ptr
}

func (m *Manager[C]) Name() string {
	return m.store.Name()
}

// Store exposes the backing store, mostly for Pending and Locked checks.
func (m *Manager[C]) Store() *Store {
	return m.store
}

func (m *Manager[C]) Add(key Keyed, data *C) {
	var c C
	if data != nil {
		c = *data
	}
	m.store.Put(key.ID(), func(row int, tbl table.Table) {
		*m.field.At(row, tbl) = c
	})
}

func (m *Manager[C]) Remove(id ID) {
	m.store.Delete(id)
}

// Clear drops every record. It fails while a traversal is active.
func (m *Manager[C]) Clear() error {
	return m.store.Reset()
}

func (m *Manager[C]) Contains(id ID) bool {
	return m.store.Contains(id)
}

func (m *Manager[C]) Len() int {
	return m.store.Len()
}

func (m *Manager[C]) Get(id ID) (View[C], bool) {
	row, ok := m.store.Row(id)
	if !ok {
		return View[C]{}, false
	}
	return View[C]{ptr: m.field.At(row, m.store.Table())}, true
}

func (m *Manager[C]) GetMut(id ID) (*C, bool) {
	row, ok := m.store.Row(id)
	if !ok {
		return nil, false
	}
	return m.field.At(row, m.store.Table()), true
}

func (m *Manager[C]) Iter() iter.Seq2[ID, View[C]] {
	return func(yield func(ID, View[C]) bool) {
		tbl := m.store.Table()
		for id, row := range m.store.Rows() {
			if !yield(id, View[C]{ptr: m.field.At(row, tbl)}) {
				return
			}
		}
	}
}

func (m *Manager[C]) IterMut() iter.Seq2[ID, *C] {
	return func(yield func(ID, *C) bool) {
		tbl := m.store.Table()
		for id, row := range m.store.RowsMut() {
			if !yield(id, m.field.At(row, tbl)) {
				return
			}
		}
	}
}

func componentName[C any]() string {
	typ := reflect.TypeFor[C]()
	if name := typ.Name(); name != "" {
		return name
	}
	return typ.String()
}
