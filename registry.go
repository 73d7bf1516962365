package quantum

import (
	"fmt"
	"sync"
)

/*
registry is the arena mapping opaque handles to registered
superposition states. Handles are generated from a monotonic counter so
at-most-once collapse becomes an explicit remove-on-consume operation.

The map lock is held only for lookup, insert and removal; collapses on
a single state serialize on the state's own mutex, so collapses on
different handles never block each other.
*/
type registry struct {
	mu      sync.RWMutex
	states  map[string]*Superposition
	counter uint64
}

func newRegistry() *registry {
	return &registry{states: make(map[string]*Superposition)}
}

// register stores a state under a fresh sp_<n> handle.
func (r *registry) register(sp *Superposition) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter++
	handle := fmt.Sprintf("sp_%d", r.counter)
	r.states[handle] = sp
	return handle
}

func (r *registry) lookup(handle string) (*Superposition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sp, ok := r.states[handle]
	if !ok {
		return nil, fmt.Errorf("%q: %w", handle, ErrUnknownHandle)
	}
	return sp, nil
}

// remove consumes a handle. It reports whether the handle was still
// registered, so concurrent collapses cannot both claim the same state.
func (r *registry) remove(handle string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.states[handle]; !ok {
		return false
	}
	delete(r.states, handle)
	return true
}

func (r *registry) active() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.states)
}
