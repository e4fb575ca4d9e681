package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/parley/pkg/ports"
	"github.com/aretw0/parley/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_SerializesSameKey(t *testing.T) {
	m := session.NewManager()
	ctx := context.Background()

	// Unsynchronized counter: data races here would corrupt the total if
	// WithLock did not serialize per key.
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := m.WithLock(ctx, "conv1", func(context.Context) error {
				counter++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestManager_DifferentKeysDoNotBlock(t *testing.T) {
	m := session.NewManager()
	ctx := context.Background()

	release := make(chan struct{})
	holding := make(chan struct{})
	go func() {
		_ = m.WithLock(ctx, "conv1", func(context.Context) error {
			close(holding)
			<-release
			return nil
		})
	}()
	<-holding

	done := make(chan struct{})
	go func() {
		_ = m.WithLock(ctx, "conv2", func(context.Context) error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on conv2 blocked behind conv1")
	}
	close(release)
}

// recordingLocker counts distributed lock round-trips.
type recordingLocker struct {
	mu       sync.Mutex
	locked   int
	unlocked int
}

func (l *recordingLocker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	l.mu.Lock()
	l.locked++
	l.mu.Unlock()
	return func(context.Context) error {
		l.mu.Lock()
		l.unlocked++
		l.mu.Unlock()
		return nil
	}, nil
}

func TestManager_UsesDistributedLocker(t *testing.T) {
	locker := &recordingLocker{}
	m := session.NewManager(session.WithLocker(locker))

	err := m.WithLock(context.Background(), "conv1", func(context.Context) error { return nil })
	require.NoError(t, err)

	assert.Equal(t, 1, locker.locked)
	assert.Equal(t, 1, locker.unlocked)
}
