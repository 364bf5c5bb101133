// Package pqueue implements the dual-index priority queue core: identity
// to score lookup, ordered extraction of the highest-scoring item, and the
// live statistics counters that ride along with every mutation.
package pqueue

import (
	"container/heap"
	"container/list"
	"errors"
	"math"
	"sync"
)

// ErrOverflow is returned by Update when the additive update would
// overflow a signed 64-bit score. The update is rejected atomically: no
// counters move and no map is touched.
var ErrOverflow = errors.New("pqueue: update would overflow int64 score")

// entry is the ById-side record for a tracked id: its current score and a
// pointer straight at its node in that score's FIFO pool, so Update can
// remove it from the old pool in O(1) instead of scanning.
type entry struct {
	score int64
	elem  *list.Element
}

// Index is the dual-index structure described by the data model: ById maps
// identity to score, ByScore maps score to an insertion-ordered pool of
// identities. Both maps, plus the stats counters, are protected by a single
// mutex — see SPEC_FULL.md §5 for why a coarse lock is the right call here.
type Index struct {
	mu      sync.Mutex
	byID    map[string]*entry
	byScore map[int64]*pool
	heap    poolHeap
	stats   stats
}

// New returns an empty Index with its start-time stamped now.
func New() *Index {
	return &Index{
		byID:    make(map[string]*entry),
		byScore: make(map[int64]*pool),
		stats:   newStats(),
	}
}

// UpdateResult reports what Update did, distinguishing an insert
// (HadOld == false) from a mutation of an existing id.
type UpdateResult struct {
	OldScore int64
	HadOld   bool
	NewScore int64
}

// Update applies an additive score change to id, inserting it if new.
// See SPEC_FULL.md §4 for the resolution of the FIFO-reset ambiguity: when
// the update leaves the score unchanged, the item keeps its place in its
// pool instead of moving to the tail.
func (ix *Index) Update(id string, delta int64) (UpdateResult, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	e, exists := ix.byID[id]

	var newScore int64
	if exists {
		if addOverflows(e.score, delta) {
			return UpdateResult{}, ErrOverflow
		}
		newScore = e.score + delta
	} else {
		newScore = delta
	}

	ix.stats.updates++

	if !exists {
		p := ix.getOrCreatePool(newScore)
		elem := p.ids.PushBack(id)
		ix.byID[id] = &entry{score: newScore, elem: elem}
		ix.stats.items++
		return UpdateResult{NewScore: newScore}, nil
	}

	oldScore := e.score
	if newScore == oldScore {
		return UpdateResult{OldScore: oldScore, HadOld: true, NewScore: newScore}, nil
	}

	oldPool := ix.byScore[oldScore]
	oldPool.ids.Remove(e.elem)
	if oldPool.empty() {
		delete(ix.byScore, oldScore)
		heap.Remove(&ix.heap, oldPool.index)
		ix.stats.pools--
	}

	newPoolRef := ix.getOrCreatePool(newScore)
	elem := newPoolRef.ids.PushBack(id)
	ix.byID[id] = &entry{score: newScore, elem: elem}

	return UpdateResult{OldScore: oldScore, HadOld: true, NewScore: newScore}, nil
}

// Peek returns the id at the head of the top-scoring pool without removing
// it. The empty-queue case is the caller's (protocol layer's) job to turn
// into the wire sentinel.
func (ix *Index) Peek() (string, bool) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if ix.heap.Len() == 0 {
		return "", false
	}
	top := ix.heap[0]
	return top.ids.Front().Value.(string), true
}

// Next pops and returns the id at the head of the top-scoring pool.
func (ix *Index) Next() (string, bool) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if ix.heap.Len() == 0 {
		return "", false
	}

	top := ix.heap[0]
	front := top.ids.Front()
	id := front.Value.(string)
	top.ids.Remove(front)

	if top.empty() {
		heap.Pop(&ix.heap)
		delete(ix.byScore, top.score)
		ix.stats.pools--
	}

	delete(ix.byID, id)
	ix.stats.items--

	return id, true
}

// Score returns the current score for id, if tracked.
func (ix *Index) Score(id string) (int64, bool) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	e, ok := ix.byID[id]
	if !ok {
		return 0, false
	}
	return e.score, true
}

// StatsSnapshot returns a value copy of the counters with uptime derived
// at the moment of the call.
func (ix *Index) StatsSnapshot() Stats {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	return ix.stats.snapshot()
}

// getOrCreatePool returns the pool at score, creating and heap-pushing it
// (and bumping the pools counter) on first use. Caller must hold ix.mu.
func (ix *Index) getOrCreatePool(score int64) *pool {
	p, ok := ix.byScore[score]
	if ok {
		return p
	}
	p = newPool(score)
	ix.byScore[score] = p
	heap.Push(&ix.heap, p)
	ix.stats.pools++
	return p
}

func addOverflows(a, b int64) bool {
	if b > 0 && a > math.MaxInt64-b {
		return true
	}
	if b < 0 && a < math.MinInt64-b {
		return true
	}
	return false
}
