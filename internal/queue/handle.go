// Package queue provides the shared, cheaply cloneable handle through
// which many TCP connections operate on one logical priority queue.
//
// This mirrors the Rust original's PQueue<T>, an Arc<Mutex<PriorityQueue>>
// wrapper: cloning it never duplicates state, every clone observes the
// same queue. In Go the equivalent is simply a struct holding a pointer to
// the shared *pqueue.Index — copying the struct copies the pointer, not
// the pointee, and the garbage collector releases the Index once every
// handle referencing it has gone out of scope.
package queue

import "pqueue/internal/pqueue"

// Handle is a thin, copyable reference to one logical Index. Copying a
// Handle by value (or passing it around) is the idiomatic Go equivalent of
// cloning the Rust Arc — all copies share the same underlying state.
type Handle struct {
	index *pqueue.Index
}

// New creates a fresh, empty queue and returns a handle to it.
func New() Handle {
	return Handle{index: pqueue.New()}
}

// Clone returns a handle sharing the same underlying queue. It exists
// alongside Go's normal value-copy semantics purely to make the sharing
// intent explicit at call sites (accept loops, tests) the way the source's
// .clone() calls do.
func (h Handle) Clone() Handle {
	return h
}

// Update applies an additive score change to id.
func (h Handle) Update(id string, delta int64) (pqueue.UpdateResult, error) {
	return h.index.Update(id, delta)
}

// Peek returns the highest-scoring id without removing it.
func (h Handle) Peek() (string, bool) {
	return h.index.Peek()
}

// Next pops and returns the highest-scoring id.
func (h Handle) Next() (string, bool) {
	return h.index.Next()
}

// Score returns the current score for id, if tracked.
func (h Handle) Score(id string) (int64, bool) {
	return h.index.Score(id)
}

// Stats returns a snapshot of the queue's counters.
func (h Handle) Stats() pqueue.Stats {
	return h.index.StatsSnapshot()
}
