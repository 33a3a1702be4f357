package purchase

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedLock_TryAcquire(t *testing.T) {
	t.Run("second acquire of a held key fails", func(t *testing.T) {
		l := NewKeyedLock()

		assert.True(t, l.TryAcquire(1, 2))
		assert.False(t, l.TryAcquire(1, 2))

		l.Release(1, 2)
		assert.True(t, l.TryAcquire(1, 2))
	})

	t.Run("distinct keys do not interfere", func(t *testing.T) {
		l := NewKeyedLock()

		assert.True(t, l.TryAcquire(1, 2))
		assert.True(t, l.TryAcquire(1, 3))
		assert.True(t, l.TryAcquire(2, 2))
		assert.Equal(t, 3, l.InFlight())
	})

	t.Run("release of an unheld key is a no-op", func(t *testing.T) {
		l := NewKeyedLock()
		l.Release(9, 9)
		assert.Equal(t, 0, l.InFlight())
	})

	t.Run("exactly one concurrent acquirer wins", func(t *testing.T) {
		l := NewKeyedLock()

		const goroutines = 64
		var wg sync.WaitGroup
		var mu sync.Mutex
		winners := 0

		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if l.TryAcquire(1, 2) {
					mu.Lock()
					winners++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, winners)
		assert.Equal(t, 1, l.InFlight())
	})
}
