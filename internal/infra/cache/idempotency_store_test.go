package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"jewelshop/internal/domain/service"
	"jewelshop/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisIdempotencyStore_ReserveCompleteReplay(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisIdempotencyStore(client, newTestCacheConfig(3))
	ctx := context.Background()

	_, reserved, err := store.Reserve(ctx, "customer:1", "key-1")
	require.NoError(t, err)
	require.True(t, reserved)
	assert.Equal(t, time.Minute, mr.TTL("idempotency:customer:1:key-1"), "pending marker expires quickly")

	orderID := uuid.New()
	require.NoError(t, store.Complete(ctx, "customer:1", "key-1", orderID))
	assert.Equal(t, time.Hour, mr.TTL("idempotency:customer:1:key-1"))

	got, reserved, err := store.Reserve(ctx, "customer:1", "key-1")
	require.NoError(t, err)
	assert.False(t, reserved)
	assert.Equal(t, orderID, got)
}

func TestRedisIdempotencyStore_PendingKeyIsInProgress(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewRedisIdempotencyStore(client, newTestCacheConfig(3))
	ctx := context.Background()

	_, reserved, err := store.Reserve(ctx, "customer:1", "key-1")
	require.NoError(t, err)
	require.True(t, reserved)

	_, reserved, err = store.Reserve(ctx, "customer:1", "key-1")
	assert.False(t, reserved)
	assert.True(t, errors.Is(err, service.ErrIdempotencyKeyInProgress))
}

func TestRedisIdempotencyStore_ConcurrentReserveHasOneOwner(t *testing.T) {
	const requests = 16

	_, client := newTestRedis(t)
	store := NewRedisIdempotencyStore(client, newTestCacheConfig(3))
	ctx := context.Background()

	start := make(chan struct{})
	var wg sync.WaitGroup
	var owners, inProgress, unexpected atomic.Int64

	for range requests {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			_, reserved, err := store.Reserve(ctx, "customer:1", "double-submit")
			switch {
			case err == nil && reserved:
				owners.Add(1)
			case errors.Is(err, service.ErrIdempotencyKeyInProgress):
				inProgress.Add(1)
			default:
				unexpected.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	require.Zero(t, unexpected.Load())
	assert.Equal(t, int64(1), owners.Load())
	assert.Equal(t, int64(requests-1), inProgress.Load())
}

func TestRedisIdempotencyStore_ReleaseAllowsRetry(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisIdempotencyStore(client, newTestCacheConfig(3))
	ctx := context.Background()

	_, reserved, err := store.Reserve(ctx, "customer:1", "key-1")
	require.NoError(t, err)
	require.True(t, reserved)

	require.NoError(t, store.Release(ctx, "customer:1", "key-1"))
	assert.False(t, mr.Exists("idempotency:customer:1:key-1"))

	_, reserved, err = store.Reserve(ctx, "customer:1", "key-1")
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestRedisIdempotencyStore_ReleaseKeepsCompletedOrder(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewRedisIdempotencyStore(client, newTestCacheConfig(3))
	ctx := context.Background()
	orderID := uuid.New()

	require.NoError(t, store.Complete(ctx, "customer:1", "key-1", orderID))
	require.NoError(t, store.Release(ctx, "customer:1", "key-1"))

	got, reserved, err := store.Reserve(ctx, "customer:1", "key-1")
	require.NoError(t, err)
	assert.False(t, reserved)
	assert.Equal(t, orderID, got)
}

func TestRedisIdempotencyStore_ScopesAreIsolated(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewRedisIdempotencyStore(client, newTestCacheConfig(3))
	ctx := context.Background()

	require.NoError(t, store.Complete(ctx, "customer:1", "key-1", uuid.New()))

	_, reserved, err := store.Reserve(ctx, "customer:2", "key-1")
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestRedisIdempotencyStore_CorruptValue(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewRedisIdempotencyStore(client, newTestCacheConfig(3))
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "idempotency:customer:1:key-1", "garbage", 0).Err())

	_, _, err := store.Reserve(ctx, "customer:1", "key-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt idempotency value")
}
