package ecs

type operation struct {
	typ   operationType
	id    ID
	write RowWriter
}

type operationType int

const (
	opPut operationType = iota
	opDelete
)

// opQueue holds Put and Delete calls made while a store is locked.
// Both operations fully determine the final state of a row, so for one id
// only the latest survives.
type opQueue struct {
	ops     []operation
	pending map[ID]int
}

func newOpQueue() opQueue {
	return opQueue{
		pending: make(map[ID]int),
	}
}

func (q *opQueue) enqueueOp(op operation) {
	if idx, exists := q.pending[op.id]; exists {
		q.ops[idx] = op
		return
	}
	q.pending[op.id] = len(q.ops)
	q.ops = append(q.ops, op)
}

func (q *opQueue) Len() int {
	return len(q.ops)
}

func (s *Store) processOperationQueue() {
	if len(s.queue.ops) == 0 {
		return
	}
	ops := s.queue.ops
	s.queue.ops = nil
	clear(s.queue.pending)

	for _, op := range ops {
		switch op.typ {
		case opPut:
			s.put(op.id, op.write)
		case opDelete:
			s.delete(op.id)
		}
	}
	s.logger.Trace().
		Str("store", s.name).
		Int("operations", len(ops)).
		Msg("applied queued operations")
}
