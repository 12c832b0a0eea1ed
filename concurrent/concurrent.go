/*
Package concurrent wraps the trie package's pure Trie value behind a mutex,
for callers that need concurrent mutation. The core trie's Store never mutates
its receiver and returns a new Trie, so goroutines that share one trie and
each call Store would each get a separate result missing the others' keys;
this package serializes Store and swaps the wrapped trie for the result (it
is the wrapper the core's documentation points callers to for that).
*/
package concurrent

import (
	"sync"

	"github.com/edittrie/edittrie"
)

// Safe guards a trie.Trie[V] with a sync.RWMutex: any number of concurrent
// Find/Similar calls may run together, but Store excludes all other callers
// for its duration.
type Safe[V any] struct {
	mu sync.RWMutex
	t  *trie.Trie[V]
}

// New wraps an existing trie, or a fresh one if t is nil.
func New[V any](t *trie.Trie[V]) *Safe[V] {
	if t == nil {
		t = trie.New[V]()
	}
	return &Safe[V]{t: t}
}

// Store inserts key/value, replacing the wrapped trie with the result.
func (s *Safe[V]) Store(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t = s.t.Store(key, value)
}

// Find looks up key against a consistent snapshot of the trie.
func (s *Safe[V]) Find(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Find(key)
}

// Similar runs an approximate lookup against a consistent snapshot of the
// trie.
func (s *Safe[V]) Similar(query string, maxEdits int) []trie.Match[V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Similar(query, maxEdits)
}
