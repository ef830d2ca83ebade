package mastery

import (
	"sync"
	"testing"
)

func TestKeyLock_SerializesSameKey(t *testing.T) {
	l := newKeyLock[contentKey]()
	key := contentKey{userID: "casey", contentID: "add-ones"}

	const goroutines = 32
	const iterations = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				l.lock(key)
				counter++ // protected solely by the key lock
				l.unlock(key)
			}
		}()
	}
	wg.Wait()

	if counter != goroutines*iterations {
		t.Errorf("counter = %d, want %d (lost updates)", counter, goroutines*iterations)
	}
}

func TestKeyLock_ReleasesEntries(t *testing.T) {
	l := newKeyLock[string]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.lock("casey")
			l.unlock("casey")
		}()
	}
	wg.Wait()

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) != 0 {
		t.Errorf("entries = %d after all holders released, want 0", len(l.entries))
	}
}

func TestKeyLock_IndependentKeys(t *testing.T) {
	l := newKeyLock[contentKey]()
	a := contentKey{userID: "casey", contentID: "add-ones"}
	b := contentKey{userID: "casey", contentID: "add-tens"}

	l.lock(a)
	done := make(chan struct{})
	go func() {
		l.lock(b) // must not block on a's lock
		l.unlock(b)
		close(done)
	}()
	<-done
	l.unlock(a)
}
