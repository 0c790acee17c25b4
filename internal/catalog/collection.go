package catalog

import (
	"errors"
	"fmt"

	"github.com/marta/studiobook/internal/domain"
)

var (
	// ErrDuplicateID is returned by Add operations when the id is taken.
	ErrDuplicateID = errors.New("id already exists")
	// ErrNotFound is returned by lookups that resolve nothing.
	ErrNotFound = errors.New("not found")
	// ErrEntityInUse is returned when a removal would break a session
	// reference.
	ErrEntityInUse = errors.New("entity is referenced by a session")
)

// collection is an insertion-ordered sequence with a derived id index.
// The slice is the source of truth; the index is a rebuildable cache,
// and the two are always mutated together.
type collection[T domain.Identifiable] struct {
	items []T
	index map[int]T
}

func newCollection[T domain.Identifiable]() collection[T] {
	return collection[T]{index: make(map[int]T)}
}

func (c *collection[T]) add(item T) error {
	id := item.EntityID()
	if _, ok := c.index[id]; ok {
		return fmt.Errorf("id %d: %w", id, ErrDuplicateID)
	}
	c.items = append(c.items, item)
	c.index[id] = item
	return nil
}

func (c *collection[T]) byID(id int) (T, error) {
	item, ok := c.index[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	return item, nil
}

func (c *collection[T]) has(id int) bool {
	_, ok := c.index[id]
	return ok
}

// remove drops the id from both the sequence and the index. Order of the
// remaining items is preserved.
func (c *collection[T]) remove(id int) error {
	if _, ok := c.index[id]; !ok {
		return fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	for i, item := range c.items {
		if item.EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	delete(c.index, id)
	return nil
}

func (c *collection[T]) list() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) filter(keep func(T) bool) []T {
	var out []T
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// replace swaps in a new backing sequence and rebuilds the index from it.
func (c *collection[T]) replace(items []T) {
	c.items = items
	c.rebuildIndex()
}

func (c *collection[T]) rebuildIndex() {
	c.index = make(map[int]T, len(c.items))
	for _, item := range c.items {
		c.index[item.EntityID()] = item
	}
}

func (c *collection[T]) len() int { return len(c.items) }
