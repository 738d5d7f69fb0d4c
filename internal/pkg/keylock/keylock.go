// Package keylock provides an in-process registry of per-key mutexes.
// The claim orchestrator keys them by (wallet, asset) so that concurrent
// attempts for the same pair serialize before any external transfer is
// attempted, while unrelated pairs proceed in parallel.
package keylock

import "sync"

type Registry struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func New() *Registry {
	return &Registry{locks: make(map[string]*keyLock)}
}

// Lock blocks until the key's mutex is held and returns the unlock
// function, which must be called exactly once. Entries are evicted as
// soon as the last holder or waiter releases, so the registry stays
// proportional to in-flight keys.
func (r *Registry) Lock(key string) func() {
	r.mu.Lock()
	kl, ok := r.locks[key]
	if !ok {
		kl = &keyLock{}
		r.locks[key] = kl
	}
	kl.refs++
	r.mu.Unlock()

	kl.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			kl.mu.Unlock()
			r.mu.Lock()
			kl.refs--
			if kl.refs == 0 {
				delete(r.locks, key)
			}
			r.mu.Unlock()
		})
	}
}

// Len reports the number of keys currently tracked.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.locks)
}
