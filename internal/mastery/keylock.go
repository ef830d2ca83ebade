package mastery

import "sync"

// keyLock provides a mutex per key, created on first use and discarded
// when the last holder releases it, so the lock table stays proportional
// to in-flight operations rather than to total keys ever seen.
type keyLock[K comparable] struct {
	mu      sync.Mutex
	entries map[K]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyLock[K comparable]() *keyLock[K] {
	return &keyLock[K]{entries: make(map[K]*lockEntry)}
}

func (l *keyLock[K]) lock(key K) {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &lockEntry{}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
}

func (l *keyLock[K]) unlock(key K) {
	l.mu.Lock()
	e := l.entries[key]
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
	l.mu.Unlock()

	e.mu.Unlock()
}

// contentKey identifies one (user, content) pair. A struct key keeps the
// two parts distinct; concatenated strings would collide on crafted ids.
type contentKey struct {
	userID    string
	contentID string
}
