// Package status holds live sandbox counters shown on the status line
package status

import (
	"sync"

	"github.com/elliotchance/orderedmap/v2"
)

// MetricMap is a registry of metrics of type T in registration order
// Registration takes the lock, callers cache the returned pointer
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items *orderedmap.OrderedMap[string, *T]
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: orderedmap.NewOrderedMap[string, *T]()}
}

// Get returns the metric for key, creating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items.Get(key)
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items.Get(key); ok {
		return ptr
	}
	ptr = new(T)
	m.items.Set(key, ptr)
	return ptr
}

// Has reports whether key was registered
func (m *MetricMap[T]) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.items.Get(key)
	return ok
}

// Range visits metrics in registration order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for el := m.items.Front(); el != nil; el = el.Next() {
		fn(el.Key, el.Value)
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items.Len()
}
