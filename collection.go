package khata

import "iter"

// Record is any entity stored in a collection, identified by an opaque
// unique string.
type Record interface {
	Key() string
}

// Collection is an in-memory repository over one collection key: a map keyed
// by id for lookup, plus a slice preserving insertion order for display.
// Mutations go through the owning Books, which rewrites the whole collection
// on every change.
type Collection[T Record] struct {
	key   string
	items []T
	index map[string]int
}

func newCollection[T Record](key string) *Collection[T] {
	return &Collection[T]{key: key, index: make(map[string]int)}
}

// load replaces the collection content with the decoded payload.
func (c *Collection[T]) load(data []byte) error {
	items, err := decodeRecords[T](c.key, data)
	if err != nil {
		return err
	}
	c.items = items
	c.index = make(map[string]int, len(items))
	for i, item := range items {
		c.index[item.Key()] = i
	}
	return nil
}

func (c *Collection[T]) encode() ([]byte, error) {
	return encodeRecords(c.key, c.items)
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

// Upsert replaces the record with the same key, or appends when the key is
// new. Appending preserves insertion order.
func (c *Collection[T]) Upsert(item T) {
	if i, ok := c.index[item.Key()]; ok {
		c.items[i] = item
		return
	}
	c.index[item.Key()] = len(c.items)
	c.items = append(c.items, item)
}

// Delete removes the record with the given id, keeping the order of the
// remaining records. It reports whether a record was removed.
func (c *Collection[T]) Delete(id string) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].Key()] = j
	}
	return true
}

// Len returns the number of records.
func (c *Collection[T]) Len() int { return len(c.items) }

// All returns an iterator over the records in insertion order.
func (c *Collection[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range c.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Select returns the records matching all predicates, in insertion order.
func (c *Collection[T]) Select(predicates ...func(T) bool) []T {
	var out []T
next:
	for _, item := range c.items {
		for _, pred := range predicates {
			if !pred(item) {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}
