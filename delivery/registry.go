package delivery

import (
	"slices"
	"sync"

	"github.com/samber/lo"
)

// Coded is an entity identified by a unique numeric code.
type Coded interface {
	comparable
	Code() int
}

// Registry is the authoritative collection of every entity of one kind
// created by a System, keyed by code.
type Registry[T Coded] struct {
	mu    sync.RWMutex
	items map[int]T
}

func NewRegistry[T Coded]() *Registry[T] {
	return &Registry[T]{items: make(map[int]T)}
}

// Add stores the entity under its code.
func (r *Registry[T]) Add(item T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.Code()] = item
}

// Contains reports whether this very entity is registered. An entity
// carrying a registered code but created elsewhere is not.
func (r *Registry[T]) Contains(item T) bool {
	var zero T
	if item == zero {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	registered, ok := r.items[item.Code()]
	return ok && registered == item
}

func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Sorted returns the registered entities by ascending code.
// The order is recomputed on every call.
func (r *Registry[T]) Sorted() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := lo.Keys(r.items)
	slices.Sort(codes)
	return lo.Map(codes, func(code int, _ int) T {
		return r.items[code]
	})
}
