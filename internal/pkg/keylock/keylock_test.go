//go:build unit

package keylock_test

import (
	"sync"
	"testing"
	"time"

	"shiba-faucet/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("serializes holders of the same key", func(t *testing.T) {
		r := keylock.New()

		const n = 50
		var (
			wg      sync.WaitGroup
			inside  int
			maxSeen int
			mu      sync.Mutex
		)

		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := r.Lock("0xabc/BONE")
				defer unlock()

				mu.Lock()
				inside++
				if inside > maxSeen {
					maxSeen = inside
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, maxSeen, "two goroutines held the same key at once")
	})

	t.Run("different keys do not block each other", func(t *testing.T) {
		r := keylock.New()

		unlockA := r.Lock("0xabc/BONE")
		defer unlockA()

		done := make(chan struct{})
		go func() {
			unlockB := r.Lock("0xabc/SHIB")
			unlockB()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("lock on an unrelated key blocked")
		}
	})

	t.Run("evicts uncontended entries", func(t *testing.T) {
		r := keylock.New()

		unlock := r.Lock("0xabc/TREAT")
		require.Equal(t, 1, r.Len())
		unlock()

		assert.Equal(t, 0, r.Len())
	})

	t.Run("unlock is idempotent", func(t *testing.T) {
		r := keylock.New()

		unlock := r.Lock("0xabc/BONE")
		unlock()
		unlock()

		unlock2 := r.Lock("0xabc/BONE")
		unlock2()
		assert.Equal(t, 0, r.Len())
	})
}
