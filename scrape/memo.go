package scrape

import "sync"

type memoEntry[V any] struct {
	value V
	ok    bool
}

// memo caches one result per key, including failed lookups. The lock is
// held while a value is computed so each key is computed at most once.
type memo[V any] struct {
	mu      sync.Mutex
	entries map[string]memoEntry[V]
}

// do returns the cached result for key, calling fn on the first lookup.
func (m *memo[V]) do(key string, fn func() (V, bool)) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[key]; ok {
		return e.value, e.ok
	}
	if m.entries == nil {
		m.entries = make(map[string]memoEntry[V])
	}

	v, ok := fn()
	m.entries[key] = memoEntry[V]{value: v, ok: ok}
	return v, ok
}
