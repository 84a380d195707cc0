package locker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	mu      sync.Mutex
	values  map[string]string
	expires map[string]time.Duration
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{
		values:  make(map[string]string),
		expires: make(map[string]time.Duration),
	}
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = string(raw)
	f.expires[key] = exp
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[key], nil
}

func (f *fakeRedisRepository) Increment(ctx context.Context, key string) error {
	return nil
}

func (f *fakeRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	return 0, nil
}

func (f *fakeRedisRepository) Expire(ctx context.Context, key string, exp time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expires[key] = exp
	return nil
}

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.values[key]; exists {
		return false, nil
	}
	f.values[key] = string(raw)
	f.expires[key] = exp
	return true, nil
}

func TestLockService_TryLockAndUnlock(t *testing.T) {
	repo := newFakeRedisRepository()
	locker := NewLockService(repo, zap.NewNop())
	ctx := context.Background()

	acquired, value, err := locker.TryLock(ctx, "appointments:lock:1", 10*time.Second)
	require.NoError(t, err)
	require.True(t, acquired)
	assert.NotEmpty(t, value)

	t.Run("Second TryLock is refused while held", func(t *testing.T) {
		again, otherValue, err := locker.TryLock(ctx, "appointments:lock:1", 10*time.Second)
		require.NoError(t, err)
		assert.False(t, again)
		assert.Empty(t, otherValue)
	})

	t.Run("Unlock with a foreign value keeps the lock", func(t *testing.T) {
		require.NoError(t, locker.Unlock(ctx, "appointments:lock:1", "someone-else"))
		stored, _ := repo.Get(ctx, "appointments:lock:1")
		assert.NotEmpty(t, stored)
	})

	t.Run("Unlock by owner releases the lock", func(t *testing.T) {
		require.NoError(t, locker.Unlock(ctx, "appointments:lock:1", value))
		again, _, err := locker.TryLock(ctx, "appointments:lock:1", 10*time.Second)
		require.NoError(t, err)
		assert.True(t, again)
	})
}

func TestLockService_Refresh(t *testing.T) {
	repo := newFakeRedisRepository()
	locker := NewLockService(repo, zap.NewNop())
	ctx := context.Background()

	_, value, err := locker.TryLock(ctx, "reminders:leader", time.Minute)
	require.NoError(t, err)

	require.NoError(t, locker.Refresh(ctx, "reminders:leader", value, 2*time.Minute))
	assert.Equal(t, 2*time.Minute, repo.expires["reminders:leader"])

	err = locker.Refresh(ctx, "reminders:leader", "stale-value", time.Minute)
	assert.Error(t, err)
}
