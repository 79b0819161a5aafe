package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"jewelshop/config"
	"jewelshop/internal/domain/entity"
	domainerrors "jewelshop/internal/domain/errors"
	"jewelshop/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func newTestCacheConfig(retries int) *config.Config {
	return &config.Config{
		Cart: &config.CartConfig{
			TTL:             24 * time.Hour,
			KeyPrefix:       "cart",
			MaxWriteRetries: retries,
		},
		Order: &config.OrderConfig{IdempotencyTTL: time.Hour},
	}
}

func TestRedisCartStore_LoadMissingCartIsEmpty(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewRedisCartStore(client, newTestCacheConfig(3))

	cart, err := store.Load(context.Background(), entity.SessionIdentity("abc"))

	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestRedisCartStore_UpdatePersistsAndRefreshesTTL(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisCartStore(client, newTestCacheConfig(3))
	ctx := context.Background()
	userID := uuid.New()
	identity := entity.UserIdentity(userID)
	productID := uuid.New()

	_, err := store.Update(ctx, identity, func(cart *entity.Cart) error {
		cart.Items[productID] = 2

		return nil
	})
	require.NoError(t, err)

	key := "cart:user:" + userID.String()
	assert.Equal(t, 24*time.Hour, mr.TTL(key))

	mr.FastForward(20 * time.Hour)
	cart, err := store.Update(ctx, identity, func(cart *entity.Cart) error {
		cart.Items[productID]++

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, cart.Items[productID])
	assert.Equal(t, 24*time.Hour, mr.TTL(key))

	loaded, err := store.Load(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]int{productID: 3}, loaded.Items)
}

func TestRedisCartStore_CartExpiresAfterTTL(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisCartStore(client, newTestCacheConfig(3))
	ctx := context.Background()
	identity := entity.SessionIdentity("s-1")

	_, err := store.Update(ctx, identity, func(cart *entity.Cart) error {
		cart.Items[uuid.New()] = 1

		return nil
	})
	require.NoError(t, err)

	mr.FastForward(25 * time.Hour)

	cart, err := store.Load(ctx, identity)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestRedisCartStore_MutateErrorWritesNothing(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisCartStore(client, newTestCacheConfig(3))

	_, err := store.Update(context.Background(), entity.SessionIdentity("s-1"), func(cart *entity.Cart) error {
		cart.Items[uuid.New()] = 1

		return domainerrors.ErrInsufficientStock
	})

	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	assert.False(t, mr.Exists("cart:session:s-1"))
}

func TestRedisCartStore_EmptyCartDeletesKey(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisCartStore(client, newTestCacheConfig(3))
	ctx := context.Background()
	identity := entity.SessionIdentity("s-1")
	productID := uuid.New()

	_, err := store.Update(ctx, identity, func(cart *entity.Cart) error {
		cart.Items[productID] = 1

		return nil
	})
	require.NoError(t, err)

	_, err = store.Update(ctx, identity, func(cart *entity.Cart) error {
		delete(cart.Items, productID)

		return nil
	})
	require.NoError(t, err)
	assert.False(t, mr.Exists("cart:session:s-1"))
}

func TestRedisCartStore_RetriesWhenCartChangesUnderneath(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewRedisCartStore(client, newTestCacheConfig(3))
	ctx := context.Background()
	identity := entity.SessionIdentity("s-1")
	other := NewRedisCartStore(client, newTestCacheConfig(3))
	first, second := uuid.New(), uuid.New()

	calls := 0
	cart, err := store.Update(ctx, identity, func(cart *entity.Cart) error {
		calls++
		if calls == 1 {
			_, err := other.Update(ctx, identity, func(inner *entity.Cart) error {
				inner.Items[first] = 1

				return nil
			})
			require.NoError(t, err)
		}
		cart.Items[second] = 2

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, map[uuid.UUID]int{first: 1, second: 2}, cart.Items)
}

func TestRedisCartStore_GivesUpAfterMaxRetries(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewRedisCartStore(client, newTestCacheConfig(2))
	ctx := context.Background()
	identity := entity.SessionIdentity("s-1")

	calls := 0
	_, err := store.Update(ctx, identity, func(cart *entity.Cart) error {
		calls++
		require.NoError(t, client.Set(ctx, "cart:session:s-1", fmt.Sprintf(`{"items":{%q:%d}}`, uuid.New(), calls), 0).Err())
		cart.Items[uuid.New()] = 1

		return nil
	})

	assert.ErrorIs(t, err, service.ErrCartConflict)
	assert.Equal(t, 2, calls)
}

func TestRedisCartStore_Clear(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisCartStore(client, newTestCacheConfig(3))
	ctx := context.Background()
	identity := entity.SessionIdentity("s-1")

	_, err := store.Update(ctx, identity, func(cart *entity.Cart) error {
		cart.Items[uuid.New()] = 1

		return nil
	})
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx, identity))
	assert.False(t, mr.Exists("cart:session:s-1"))
}

func TestDecodeCart_SkipsInvalidEntries(t *testing.T) {
	valid := uuid.New()
	data := fmt.Sprintf(`{"items":{%q:2,"not-a-uuid":1,%q:0}}`, valid, uuid.New())

	cart, err := decodeCart([]byte(data))

	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]int{valid: 2}, cart.Items)
}
