// Package registry provides a generic thread-safe Registry[K, V] type.
package registry

import (
	"sort"
	"sync"
)

// Registry is a thread-safe key-value store.
type Registry[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

// New creates a new empty Registry.
func New[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{items: make(map[K]V)}
}

// Register stores a value with the given key, replacing any previous value.
func (r *Registry[K, V]) Register(key K, value V) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[key] = value
}

// Get retrieves a value by key. Returns the value and true if found.
func (r *Registry[K, V]) Get(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.items[key]
	return value, ok
}

// Has returns true if the key exists in the registry.
func (r *Registry[K, V]) Has(key K) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[key]
	return ok
}

// Unregister removes a value by key. Returns true if the key was found.
func (r *Registry[K, V]) Unregister(key K) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[key]; !ok {
		return false
	}
	delete(r.items, key)
	return true
}

// Len returns the number of entries in the registry.
func (r *Registry[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Values returns all values ordered by less applied to their keys.
func (r *Registry[K, V]) Values(less func(a, b K) bool) []V {
	r.mu.RLock()
	keys := make([]K, 0, len(r.items))
	for k := range r.items {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
	values := make([]V, len(keys))
	for i, k := range keys {
		values[i] = r.items[k]
	}
	r.mu.RUnlock()
	return values
}

// Clear removes all entries from the registry.
func (r *Registry[K, V]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[K]V)
}

// ComputeIfAbsent retrieves a value by key, or computes and registers it if not found.
// The read path only takes the shared lock; compute runs at most once per key.
func (r *Registry[K, V]) ComputeIfAbsent(key K, compute func() V) V {
	if value, ok := r.Get(key); ok {
		return value
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if value, ok := r.items[key]; ok {
		return value
	}
	value := compute()
	r.items[key] = value
	return value
}
