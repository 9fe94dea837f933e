package storage

import (
	"sync"
)

// Collection is a thread-safe, insertion-ordered set of records with
// store-assigned integer ids. The id accessor and assigner are supplied
// at construction so the collection stays generic over entity types.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	seed  []T
	id    func(T) int
	setID func(*T, int)
}

// NewCollection creates a collection seeded with the given records.
// Seed records keep their preset ids; everything inserted later gets a
// store-assigned id.
func NewCollection[T any](id func(T) int, setID func(*T, int), seed ...T) *Collection[T] {
	c := &Collection[T]{
		id:    id,
		setID: setID,
		seed:  seed,
	}
	c.items = append([]T(nil), seed...)
	return c
}

// Insert assigns the next id and appends the record. Any id preset by
// the caller is overwritten.
func (c *Collection[T]) Insert(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := 1
	for _, it := range c.items {
		if c.id(it) >= next {
			next = c.id(it) + 1
		}
	}
	c.setID(&item, next)
	c.items = append(c.items, item)
	return item
}

// Get retrieves a record by id. The collection is unordered by id after
// deletions, so lookup is a linear scan.
func (c *Collection[T]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, it := range c.items {
		if c.id(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Update applies mutate to the record with the given id under the write
// lock, so the mutation is one atomic step. Returns the updated record,
// or false if the id is absent.
func (c *Collection[T]) Update(id int, mutate func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.id(c.items[i]) == id {
			mutate(&c.items[i])
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Delete removes a record by id. Returns false if the id is absent.
// There is no cascading: records referencing the deleted id keep their
// dangling reference.
func (c *Collection[T]) Delete(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a snapshot of all records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Clear removes all records, including seed data.
func (c *Collection[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = c.items[:0]
}

// Reset restores the collection to its seed records.
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T(nil), c.seed...)
}
