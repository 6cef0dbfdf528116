package ecs

import "container/heap"

// Handle identifies one entity. It packs a 32-bit slot index in the lower
// bits and a 32-bit generation in the upper bits. The generation increments
// when the slot is destroyed, so a stale Handle can never alias the slot's
// next occupant. Handle(0) is the legitimate first handle (index 0,
// generation 0), not a sentinel — absence is always reported with a bool.
type Handle uint64

func NewHandle(index uint32, generation uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index))
}

func (h Handle) Index() uint32      { return uint32(h) }
func (h Handle) Generation() uint32 { return uint32(h >> 32) }

// Pool allocates entity handles, tracks liveness, and recycles freed slots.
// Freed slots are kept in a min-heap so Create always reuses the lowest free
// index first. A slot is alive only while its alive mark is set; the
// generation check alone is not enough, because a freed slot already carries
// the generation its next occupant will be created with.
type Pool struct {
	generations []uint32
	alive       []bool
	free        freeHeap
	liveCount   int
}

// NewPool creates an empty pool pre-sized for capacity entities. Values
// <= 0 fall back to a default; the pool grows past capacity as needed.
func NewPool(capacity int) *Pool {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Pool{
		generations: make([]uint32, 0, capacity),
		alive:       make([]bool, 0, capacity),
		free:        make(freeHeap, 0, 256),
	}
}

// Create returns a fresh handle. The lowest freed slot is reused if one
// exists; otherwise a new slot is appended with generation 0. No two
// simultaneously-alive entities ever share a handle.
func (p *Pool) Create() Handle {
	var idx uint32
	if p.free.Len() > 0 {
		idx = heap.Pop(&p.free).(uint32)
	} else {
		idx = uint32(len(p.generations))
		p.generations = append(p.generations, 0)
		p.alive = append(p.alive, false)
	}
	p.alive[idx] = true
	p.liveCount++
	return NewHandle(idx, p.generations[idx])
}

// Destroy marks the slot dead and bumps its generation, invalidating every
// outstanding handle to it. Returns false without side effects if h is
// already dead or stale; destroying is idempotent.
func (p *Pool) Destroy(h Handle) bool {
	idx := h.Index()
	if int(idx) >= len(p.generations) {
		return false
	}
	if !p.alive[idx] || p.generations[idx] != h.Generation() {
		return false
	}
	p.alive[idx] = false
	p.generations[idx]++
	p.liveCount--
	heap.Push(&p.free, idx)
	return true
}

// Alive reports whether h refers to a currently-alive entity: the slot must
// be marked alive and its generation must match the handle's.
func (p *Pool) Alive(h Handle) bool {
	idx := h.Index()
	if int(idx) >= len(p.generations) {
		return false
	}
	return p.alive[idx] && p.generations[idx] == h.Generation()
}

// Count returns the number of currently-alive entities.
func (p *Pool) Count() int {
	return p.liveCount
}

// handleAt rebuilds the live handle for a slot index. Only meaningful for
// slots known to be alive (store indices are maintained that way).
func (p *Pool) handleAt(idx uint32) Handle {
	return NewHandle(idx, p.generations[idx])
}

// aliveAt is the index-keyed liveness check used on query hot paths.
func (p *Pool) aliveAt(idx uint32) bool {
	return int(idx) < len(p.alive) && p.alive[idx]
}

// freeHeap is a min-heap of freed slot indices.
type freeHeap []uint32

func (f freeHeap) Len() int           { return len(f) }
func (f freeHeap) Less(i, j int) bool { return f[i] < f[j] }
func (f freeHeap) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *freeHeap) Push(x any) {
	*f = append(*f, x.(uint32))
}

func (f *freeHeap) Pop() any {
	old := *f
	n := len(old)
	x := old[n-1]
	*f = old[:n-1]
	return x
}
