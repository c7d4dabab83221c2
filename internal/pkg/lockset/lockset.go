// Package lockset provides per-key mutual exclusion for aggregate mutations.
// Every state-machine transition on a shipment and every receipt posting against
// a facility must be serialized per aggregate; the lock set hands out one mutex
// per key and acquires multiple keys in sorted order so that cross-aggregate
// operations cannot deadlock.
package lockset

import (
	"sort"
	"sync"
)

// LockSet owns a mutex per string key. Keys are typically aggregate ids.
type LockSet struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an empty lock set.
func New() *LockSet {
	return &LockSet{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutexes for all given keys, in lexicographic key order.
// Duplicate keys are collapsed so a caller can pass overlapping id sets.
// The returned function releases every acquired mutex and must be deferred.
func (s *LockSet) Lock(keys ...string) func() {
	unique := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, k)
	}
	sort.Strings(unique)

	acquired := make([]*sync.Mutex, 0, len(unique))
	for _, k := range unique {
		m := s.mutexFor(k)
		m.Lock()
		acquired = append(acquired, m)
	}

	return func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i].Unlock()
		}
	}
}

func (s *LockSet) mutexFor(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.locks[key]
	if !ok {
		m = &sync.Mutex{}
		s.locks[key] = m
	}
	return m
}
