// Package memo caches the results of expensive, deterministic derivations
// (border indices, blurring masks, frame sets, sparse mappings) on the
// instance that owns them.
//
// A Cache is a struct field of its owner, never a package-level value, and
// it is keyed by the exact argument value rather than a formatted string, so
// two owners can never observe each other's results.
//
// Concurrency:
//
//   - The key map is guarded by a mutex.
//   - Each key carries its own sync.Once: concurrent first calls for the same
//     key run compute exactly once, calls for other keys are not blocked.
package memo

import (
	"sync"
	"sync/atomic"
)

type entry[V any] struct {
	once sync.Once
	val  V
	err  error
}

// Cache memoizes compute results per key. The zero value is ready to use.
// A Cache must not be copied after first use.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]
	calls   atomic.Int64
}

// Get returns the cached result for key, running compute on the first call.
// Errors are cached alongside values: every computation is a pure function of
// its key, so a failure is as stable as a success.
func (c *Cache[K, V]) Get(key K, compute func() (V, error)) (V, error) {
	c.mu.Lock()
	if c.entries == nil {
		c.entries = make(map[K]*entry[V])
	}
	e, ok := c.entries[key]
	if !ok {
		e = &entry[V]{}
		c.entries[key] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		c.calls.Add(1)
		e.val, e.err = compute()
	})

	return e.val, e.err
}

// Calls reports how many times compute actually ran.
func (c *Cache[K, V]) Calls() int { return int(c.calls.Load()) }

// Len reports the number of keys seen so far.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
