package lookup

import (
	"sync"
	"time"
)

// Registry keeps one screen per browser session so sessions never share
// lookup state. Screens idle for longer than the configured TTL are dropped.
type Registry[T any] struct {
	mu      sync.Mutex
	entries map[string]*registryEntry[T]
	idle    time.Duration
	factory func() T
	now     func() time.Time
}

type registryEntry[T any] struct {
	screen   T
	lastSeen time.Time
}

// NewRegistry creates a registry that builds missing screens with factory.
func NewRegistry[T any](idle time.Duration, factory func() T) *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]*registryEntry[T]),
		idle:    idle,
		factory: factory,
		now:     time.Now,
	}
}

// Get returns the screen for key, creating it on first use.
func (r *Registry[T]) Get(key string) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[key]
	if !ok {
		e = &registryEntry[T]{screen: r.factory()}
		r.entries[key] = e
	}
	e.lastSeen = r.now()
	return e.screen
}

// Len returns the number of live screens.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep removes idle screens and returns how many were removed.
func (r *Registry[T]) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.idle)
	removed := 0
	for key, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, key)
			removed++
		}
	}
	return removed
}
