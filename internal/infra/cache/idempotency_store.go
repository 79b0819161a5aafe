package cache

import (
	"context"
	"time"

	"jewelshop/config"
	"jewelshop/internal/domain/service"
	"jewelshop/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyKeyPrefix = "idempotency"

	// idempotencyPending marks a key whose order is still being assembled.
	idempotencyPending = "pending"

	// idempotencyPendingTTL bounds how long a crashed request can block its key.
	idempotencyPendingTTL = time.Minute

	idempotencyReserveAttempts = 2
)

// releasePending deletes the key only while it still holds the pending marker.
var releasePending = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisIdempotencyStore maps Idempotency-Key headers to the order they produced.
type RedisIdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisIdempotencyStore creates the idempotency store
func NewRedisIdempotencyStore(client *redis.Client, cfg *config.Config) service.IdempotencyStore {
	return &RedisIdempotencyStore{
		client: client,
		ttl:    cfg.Order.IdempotencyTTL,
	}
}

func idempotencyKey(scope, key string) string {
	return idempotencyKeyPrefix + ":" + scope + ":" + key
}

func (s *RedisIdempotencyStore) pendingTTL() time.Duration {
	return min(idempotencyPendingTTL, s.ttl)
}

// Reserve sets the pending marker with SETNX. Only one caller can win the key;
// the others see either the marker or the finished order id.
func (s *RedisIdempotencyStore) Reserve(ctx context.Context, scope, key string) (uuid.UUID, bool, error) {
	redisKey := idempotencyKey(scope, key)

	for range idempotencyReserveAttempts {
		reserved, err := s.client.SetNX(ctx, redisKey, idempotencyPending, s.pendingTTL()).Result()
		if err != nil {
			return uuid.Nil, false, errors.Wrap(err, "failed to reserve idempotency key")
		}
		if reserved {
			return uuid.Nil, true, nil
		}

		value, err := s.client.Get(ctx, redisKey).Result()
		if errors.Is(err, redis.Nil) {
			// Expired between SETNX and GET.
			continue
		}
		if err != nil {
			return uuid.Nil, false, errors.Wrap(err, "failed to read idempotency key")
		}
		if value == idempotencyPending {
			return uuid.Nil, false, service.ErrIdempotencyKeyInProgress
		}

		orderID, err := uuid.Parse(value)
		if err != nil {
			return uuid.Nil, false, errors.Wrapf(err, "corrupt idempotency value %q", value)
		}

		return orderID, false, nil
	}

	return uuid.Nil, false, service.ErrIdempotencyKeyInProgress
}

// Complete replaces the pending marker with the order id for the full TTL.
func (s *RedisIdempotencyStore) Complete(ctx context.Context, scope, key string, orderID uuid.UUID) error {
	if err := s.client.Set(ctx, idempotencyKey(scope, key), orderID.String(), s.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store idempotency key")
	}

	return nil
}

// Release removes the pending marker so the client can retry with the same key.
func (s *RedisIdempotencyStore) Release(ctx context.Context, scope, key string) error {
	if err := releasePending.Run(ctx, s.client, []string{idempotencyKey(scope, key)}, idempotencyPending).Err(); err != nil {
		return errors.Wrap(err, "failed to release idempotency key")
	}

	return nil
}
