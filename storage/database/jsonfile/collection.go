// Package jsonrepos implements the domain repositories over one JSON document per collection.
// Every mutation rewrites the whole document before the in-memory collection is updated.
package jsonrepos

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/schoolportal/core"
	"github.com/trezcool/schoolportal/storage/jsonfile"
)

type collection[T any] struct {
	mu    sync.RWMutex
	path  string
	items []T
}

// openCollection loads the collection stored at `path`.
// A malformed file is moved aside and the collection starts empty.
func openCollection[T any](path string, logger core.Logger) (*collection[T], error) {
	items, err := jsonfile.LoadAll[T](path)
	if err != nil {
		if errors.Cause(err) != jsonfile.ErrMalformed {
			return nil, err
		}
		dest, qErr := jsonfile.Quarantine(path)
		if qErr != nil {
			return nil, qErr
		}
		logger.Warn(fmt.Sprintf("%s is malformed; starting empty, bad file kept at %s", path, dest), err)
		items = []T{}
	}
	return &collection[T]{path: path, items: items}, nil
}

func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

func (c *collection[T]) find(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// mutate persists the collection returned by `fn` then swaps it in.
// `fn` must not modify the slice it is given.
func (c *collection[T]) mutate(fn func(items []T) []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := fn(c.items)
	if err := jsonfile.SaveAll(c.path, next); err != nil {
		return errors.Wrap(err, "saving collection")
	}
	c.items = next
	return nil
}

func (c *collection[T]) append(item T) error {
	return c.mutate(func(items []T) []T {
		next := make([]T, len(items), len(items)+1)
		copy(next, items)
		return append(next, item)
	})
}

func (c *collection[T]) prepend(item T) error {
	return c.mutate(func(items []T) []T {
		next := make([]T, 0, len(items)+1)
		next = append(next, item)
		return append(next, items...)
	})
}

// removeIf drops every item matching `pred`. The file is rewritten even when nothing matched.
func (c *collection[T]) removeIf(pred func(T) bool) error {
	return c.mutate(func(items []T) []T {
		next := make([]T, 0, len(items))
		for _, item := range items {
			if !pred(item) {
				next = append(next, item)
			}
		}
		return next
	})
}

func (c *collection[T]) removeAt(index int) error {
	return c.mutate(func(items []T) []T {
		if index < 0 || index >= len(items) {
			return items
		}
		next := make([]T, 0, len(items)-1)
		next = append(next, items[:index]...)
		return append(next, items[index+1:]...)
	})
}

func idSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
