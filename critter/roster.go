package critter

import (
	"github.com/elliotchance/orderedmap/v2"
)

// OneShot is a critter that ends on its own
type OneShot interface {
	ID() string
	Done() bool
	Stop()
	Transform() Transform
	Size() float64
}

// Roster holds live one-shot critters in spawn order with a size cap
type Roster[T OneShot] struct {
	limit int
	items *orderedmap.OrderedMap[string, T]
}

// NewRoster creates a roster keeping at most limit items, limit <= 0 is unbounded
func NewRoster[T OneShot](limit int) *Roster[T] {
	return &Roster[T]{
		limit: limit,
		items: orderedmap.NewOrderedMap[string, T](),
	}
}

// Add appends items, stopping and evicting the oldest beyond the cap
// Returns the evicted items
func (r *Roster[T]) Add(items ...T) []T {
	for _, it := range items {
		if old, ok := r.items.Get(it.ID()); ok {
			old.Stop()
			r.items.Delete(it.ID())
		}
		r.items.Set(it.ID(), it)
	}

	var evicted []T
	for r.limit > 0 && r.items.Len() > r.limit {
		front := r.items.Front()
		evicted = append(evicted, front.Value)
		front.Value.Stop()
		r.items.Delete(front.Key)
	}
	return evicted
}

// Remove drops an item by id, used as the onDone callback
func (r *Roster[T]) Remove(id string) bool {
	return r.items.Delete(id)
}

// Get returns an item by id
func (r *Roster[T]) Get(id string) (T, bool) {
	return r.items.Get(id)
}

// Len returns the number of live items
func (r *Roster[T]) Len() int {
	return r.items.Len()
}

// Items returns live items, oldest first
func (r *Roster[T]) Items() []T {
	out := make([]T, 0, r.items.Len())
	for el := r.items.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// Clear stops and drops every item
func (r *Roster[T]) Clear() {
	for el := r.items.Front(); el != nil; el = el.Next() {
		el.Value.Stop()
	}
	r.items = orderedmap.NewOrderedMap[string, T]()
}
