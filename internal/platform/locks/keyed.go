// Package locks provides per-key serialization. The engine uses it to
// make "load state, mutate, save" a critical section per username, so
// two concurrent requests for the same player can never lose an update.
// Different players proceed fully in parallel.
package locks

import "sync"

// Keyed hands out one mutex per key, created on demand. Mutexes are
// never released; the player population is small and bounded.
type Keyed struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewKeyed creates an empty keyed lock set.
func NewKeyed() *Keyed {
	return &Keyed{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key, creating it first if needed.
func (k *Keyed) Lock(key string) {
	k.get(key).Lock()
}

// Unlock releases the mutex for key.
func (k *Keyed) Unlock(key string) {
	k.get(key).Unlock()
}

func (k *Keyed) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}
