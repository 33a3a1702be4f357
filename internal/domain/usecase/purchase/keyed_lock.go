package purchase

import (
	"fmt"
	"sync"
)

// KeyedLock is a process-local registry of in-flight (user, item) purchase
// keys. TryAcquire never blocks: a busy key is an immediate rejection, not
// a queue. State is not persisted; a restart clears it.
type KeyedLock struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewKeyedLock creates an empty lock registry
func NewKeyedLock() *KeyedLock {
	return &KeyedLock{inFlight: make(map[string]struct{})}
}

// TryAcquire marks the (user, item) key as in flight. Returns false when a
// purchase for the same key is already being processed.
func (l *KeyedLock) TryAcquire(userID, itemID uint64) bool {
	key := purchaseKey(userID, itemID)

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, busy := l.inFlight[key]; busy {
		return false
	}
	l.inFlight[key] = struct{}{}
	return true
}

// Release clears the key. Safe to call for a key that is not held.
func (l *KeyedLock) Release(userID, itemID uint64) {
	key := purchaseKey(userID, itemID)

	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inFlight, key)
}

// InFlight returns the number of keys currently held
func (l *KeyedLock) InFlight() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.inFlight)
}

func purchaseKey(userID, itemID uint64) string {
	return fmt.Sprintf("%d-%d", userID, itemID)
}
