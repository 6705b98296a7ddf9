package ecs

import (
	"fmt"
	"iter"
)

// Test component types
type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Current, Max int
}

// recordingStore logs every Remove call into a shared journal.
type recordingStore struct {
	name     string
	journal  *[]string
	held     map[ID]bool
	onRemove func(ID)
}

func newRecordingStore(name string, journal *[]string) *recordingStore {
	return &recordingStore{name: name, journal: journal, held: make(map[ID]bool)}
}

func (s *recordingStore) Name() string {
	return s.name
}

func (s *recordingStore) Contains(id ID) bool {
	return s.held[id]
}

func (s *recordingStore) Remove(id ID) {
	*s.journal = append(*s.journal, fmt.Sprintf("%s:%d", s.name, id))
	delete(s.held, id)
	if s.onRemove != nil {
		s.onRemove(id)
	}
}

func mustManager[C any](t interface{ Fatalf(string, ...any) }) *Manager[C] {
	m, err := FactoryNewManager[C]()
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}
	return m
}

func capturePanic(fn func()) (recovered any) {
	defer func() {
		recovered = recover()
	}()
	fn()
	return nil
}

func collectIDs[V any](seq iter.Seq2[ID, V]) []ID {
	var ids []ID
	for id := range seq {
		ids = append(ids, id)
	}
	return ids
}
