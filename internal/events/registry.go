// Package events holds the callback registries for backend-pushed events.
//
// Callbacks run synchronously on the goroutine that emits the event, in the
// order they were registered. Registration and emission may race safely.
package events

import "sync"

// Callback receives one event.
type Callback[E any] func(E)

// Registry is an ordered list of callbacks for a single event type.
type Registry[E any] struct {
	mu        sync.RWMutex
	callbacks []Callback[E]
}

// Register appends cb. Nil callbacks are ignored.
func (r *Registry[E]) Register(cb Callback[E]) {
	if cb == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.callbacks = append(r.callbacks, cb)
}

// Emit calls every registered callback with event, in registration order.
// The callback list is snapshotted first, so a callback may register another
// without deadlocking; the new one sees only later events.
func (r *Registry[E]) Emit(event E) {
	r.mu.RLock()
	snapshot := make([]Callback[E], len(r.callbacks))
	copy(snapshot, r.callbacks)
	r.mu.RUnlock()

	for _, cb := range snapshot {
		cb(event)
	}
}

// Len reports how many callbacks are registered.
func (r *Registry[E]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.callbacks)
}
