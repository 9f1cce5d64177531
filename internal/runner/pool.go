package runner

// Scroller is an entity that travels leftward across the canvas.
type Scroller interface {
	Shift(dx float64)
	Trailing() float64
}

// Pool is an ordered sequence of scrolling entities of one kind.
//
// Entities are appended at the right edge and all move at the pool's speed,
// so the slice stays ordered by non-increasing age: the front is always the
// oldest and leftmost entity. Culling therefore only ever inspects the front.
type Pool[T Scroller] struct {
	items []T
}

// NewPool creates an empty pool with room for capacity entities.
func NewPool[T Scroller](capacity int) *Pool[T] {
	return &Pool[T]{items: make([]T, 0, capacity)}
}

// Push appends a newly spawned entity at the back.
func (p *Pool[T]) Push(e T) {
	p.items = append(p.items, e)
}

// Advance moves every entity left by dx.
func (p *Pool[T]) Advance(dx float64) {
	for _, e := range p.items {
		e.Shift(dx)
	}
}

// Cull removes the front entity if it has fully left the canvas.
// At most one entity is removed per call.
func (p *Pool[T]) Cull() bool {
	if len(p.items) == 0 || p.items[0].Trailing() >= 0 {
		return false
	}
	var zero T
	p.items[0] = zero
	p.items = p.items[1:]
	return true
}

// Remove deletes the entity at index i, preserving order.
func (p *Pool[T]) Remove(i int) {
	if i < 0 || i >= len(p.items) {
		return
	}
	last := len(p.items) - 1
	copy(p.items[i:], p.items[i+1:])
	var zero T
	p.items[last] = zero
	p.items = p.items[:last]
}

// Items returns the entities front to back. Callers must not retain the slice
// across ticks.
func (p *Pool[T]) Items() []T {
	return p.items
}

// Len returns the number of live entities.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Clear drops every entity.
func (p *Pool[T]) Clear() {
	clear(p.items)
	p.items = p.items[:0]
}
