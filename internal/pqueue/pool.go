package pqueue

import "container/list"

// pool is the FIFO bucket of ids currently holding a given score. It is
// created lazily on first insertion at a score and destroyed once emptied.
type pool struct {
	score int64
	ids   *list.List // element.Value is a string id, head is oldest
	index int        // position in the owning poolHeap, maintained by container/heap
}

func newPool(score int64) *pool {
	return &pool{score: score, ids: list.New()}
}

func (p *pool) empty() bool {
	return p.ids.Len() == 0
}

// poolHeap is a max-heap on score, giving O(log N) access to the
// highest-scoring pool where N is the number of distinct scores (not the
// number of items). Modeled directly on the teacher cache's ExpirationHeap,
// a min-heap over expiration times with the same index-tracking trick for
// O(log N) arbitrary removal.
type poolHeap []*pool

func (h poolHeap) Len() int { return len(h) }

func (h poolHeap) Less(i, j int) bool {
	return h[i].score > h[j].score // max-heap: higher score first
}

func (h poolHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *poolHeap) Push(x interface{}) {
	n := len(*h)
	p := x.(*pool)
	p.index = n
	*h = append(*h, p)
}

func (h *poolHeap) Pop() interface{} {
	old := *h
	n := len(old)
	p := old[n-1]
	old[n-1] = nil
	p.index = -1
	*h = old[0 : n-1]
	return p
}
