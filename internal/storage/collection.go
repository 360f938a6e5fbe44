package storage

import "sync"

// Collection owns one in-memory entity slice backed by a store key. It is the
// single load-on-init, save-on-mutation point for that collection: every
// mutation is synchronously mirrored back to the store.
//
// Reads return copies of the backing slice so callers can filter and sort
// without seeing later mutations.
type Collection[T any] struct {
	mu    sync.RWMutex
	store Store
	key   string
	id    func(T) string
	items []T
}

// NewCollection loads the collection from the store, falling back to seed
// when the key is absent or unreadable.
func NewCollection[T any](store Store, key string, id func(T) string, seed []T) *Collection[T] {
	c := &Collection[T]{
		store: store,
		key:   key,
		id:    id,
	}
	c.items = LoadJSON(store, key, seed)
	return c
}

func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Upsert inserts the item or replaces the item with the same ID in place,
// keeping collection order stable.
func (c *Collection[T]) Upsert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.id(item)
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = item
			c.persist()
			return
		}
	}
	c.items = append(c.items, item)
	c.persist()
}

func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return true
		}
	}
	return false
}

// Replace swaps the whole collection, e.g. for a fresher remote snapshot.
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	copy(c.items, items)
	c.persist()
}

// persist is called with the write lock held.
func (c *Collection[T]) persist() {
	SaveJSON(c.store, c.key, c.items)
}
