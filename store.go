package ecs

import (
	"iter"
	"slices"

	"github.com/TheBitDrifter/table"
	iter_util "github.com/TheBitDrifter/util/iter"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// RowWriter fills in the columns of one row.
type RowWriter func(row int, tbl table.Table)

// Store is the table-backed row storage behind a component manager.
// Every column of the component lives in the same table, so a row either
// exists for an id in all columns or in none.
//
// Rows move when the table swap-deletes, so the store keeps each id's
// EntryID and resolves the current row through the entry index.
//
// A Store is locked while any traversal is active. Put and Delete issued
// while locked are queued and applied when the last traversal ends.
type Store struct {
	name    string
	tbl     table.Table
	index   table.EntryIndex
	entries map[ID]table.EntryID
	order   []ID
	readers int
	writer  bool
	queue   opQueue
	logger  zerolog.Logger
}

func newStore(name string, schema table.Schema, columns ...table.ElementType) (*Store, error) {
	if len(columns) == 0 {
		return nil, eris.Wrapf(ErrNoColumns, "store %q", name)
	}
	for _, column := range columns {
		schema.Register(column)
	}
	index := table.Factory.NewEntryIndex()
	tbl, err := table.NewTableBuilder().
		WithSchema(schema).
		WithEntryIndex(index).
		WithElementTypes(columns...).
		WithEvents(Config.tableEvents).
		Build()
	if err != nil {
		return nil, eris.Wrapf(err, "failed to build table for store %q", name)
	}
	return &Store{
		name:    name,
		tbl:     tbl,
		index:   index,
		entries: make(map[ID]table.EntryID),
		queue:   newOpQueue(),
		logger:  Config.logger,
	}, nil
}

func (s *Store) Name() string {
	return s.name
}

func (s *Store) Table() table.Table {
	return s.tbl
}

// Columns lists the element types the store was built with.
func (s *Store) Columns() []table.ElementType {
	return iter_util.Collect(s.tbl.ElementTypes())
}

func (s *Store) Len() int {
	return len(s.order)
}

func (s *Store) Contains(id ID) bool {
	_, ok := s.entries[id]
	return ok
}

// Row returns the current row of id.
func (s *Store) Row(id ID) (int, bool) {
	eid, ok := s.entries[id]
	if !ok {
		return 0, false
	}
	return s.row(id, eid), true
}

func (s *Store) Locked() bool {
	return s.writer || s.readers > 0
}

// Pending reports how many operations wait for the store to unlock.
func (s *Store) Pending() int {
	return s.queue.Len()
}

// Put creates or overwrites the row for id and hands it to write.
func (s *Store) Put(id ID, write RowWriter) {
	if s.Locked() {
		s.queue.enqueueOp(operation{typ: opPut, id: id, write: write})
		return
	}
	s.put(id, write)
}

// Delete drops the row for id. Missing ids are ignored.
func (s *Store) Delete(id ID) {
	if s.Locked() {
		s.queue.enqueueOp(operation{typ: opDelete, id: id})
		return
	}
	s.delete(id)
}

// Reset drops every row.
func (s *Store) Reset() error {
	if s.Locked() {
		return LockedStorageError{Store: s.name}
	}
	for _, id := range slices.Clone(s.order) {
		s.delete(id)
	}
	return nil
}

// Rows yields (id, row) pairs in ascending id order. Several Rows
// traversals may overlap; none may overlap RowsMut.
func (s *Store) Rows() iter.Seq2[ID, int] {
	return s.rows(false)
}

// RowsMut is Rows with exclusive access to the store.
func (s *Store) RowsMut() iter.Seq2[ID, int] {
	return s.rows(true)
}

func (s *Store) rows(exclusive bool) iter.Seq2[ID, int] {
	return func(yield func(ID, int) bool) {
		s.acquire(exclusive)
		defer s.release(exclusive)

		// order is stable here: mutations are queued while locked
		for _, id := range s.order {
			if !yield(id, s.row(id, s.entries[id])) {
				return
			}
		}
	}
}

func (s *Store) acquire(exclusive bool) {
	requested := "iter"
	if exclusive {
		requested = "iter_mut"
	}
	switch {
	case s.writer:
		panic(&BorrowError{Target: s.name, Held: "iter_mut", Requested: requested})
	case exclusive && s.readers > 0:
		panic(&BorrowError{Target: s.name, Held: "iter", Requested: requested})
	}
	if exclusive {
		s.writer = true
		return
	}
	s.readers++
}

func (s *Store) release(exclusive bool) {
	if exclusive {
		s.writer = false
	} else {
		s.readers--
	}
	if !s.Locked() {
		s.processOperationQueue()
	}
}

// row resolves the current table row of eid.
func (s *Store) row(id ID, eid table.EntryID) int {
	entry, err := s.index.Entry(int(eid) - 1)
	if err != nil {
		panic(eris.Wrapf(err, "store %q: lost row of entity %d", s.name, id))
	}
	return entry.Index()
}

func (s *Store) put(id ID, write RowWriter) {
	eid, ok := s.entries[id]
	if !ok {
		entries, err := s.tbl.NewEntries(1)
		if err != nil {
			panic(eris.Wrapf(err, "store %q: failed to create row for entity %d", s.name, id))
		}
		eid = entries[0].ID()
		s.entries[id] = eid
		s.insertOrdered(id)
	}
	write(s.row(id, eid), s.tbl)
}

// delete swap-removes the row of id. The table moves its last row into
// the gap and updates that entry's index.
func (s *Store) delete(id ID) {
	eid, ok := s.entries[id]
	if !ok {
		return
	}
	if _, err := s.tbl.DeleteEntries(s.row(id, eid)); err != nil {
		panic(eris.Wrapf(err, "store %q: failed to delete row for entity %d", s.name, id))
	}
	delete(s.entries, id)
	if i, found := slices.BinarySearch(s.order, id); found {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

func (s *Store) insertOrdered(id ID) {
	// ids are spawned in ascending order, so appending is the common case
	if n := len(s.order); n == 0 || s.order[n-1] < id {
		s.order = append(s.order, id)
		return
	}
	i, _ := slices.BinarySearch(s.order, id)
	s.order = slices.Insert(s.order, i, id)
}
