package cache

import (
	"context"
	"encoding/json"
	"time"

	"jewelshop/config"
	"jewelshop/internal/domain/entity"
	"jewelshop/internal/domain/service"
	"jewelshop/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// storedCart is the JSON document kept under a cart key.
type storedCart struct {
	Items map[string]int `json:"items"`
}

// RedisCartStore keeps one JSON document per cart identity. Writes go through
// WATCH/MULTI so concurrent requests on the same cart never lose an update.
type RedisCartStore struct {
	client     *redis.Client
	prefix     string
	ttl        time.Duration
	maxRetries int
}

// NewRedisCartStore creates the cart store
func NewRedisCartStore(client *redis.Client, cfg *config.Config) service.CartStore {
	return &RedisCartStore{
		client:     client,
		prefix:     cfg.Cart.KeyPrefix,
		ttl:        cfg.Cart.TTL,
		maxRetries: cfg.Cart.MaxWriteRetries,
	}
}

func (s *RedisCartStore) key(identity entity.CartIdentity) string {
	return s.prefix + ":" + identity.Key()
}

// Load returns the stored cart, or an empty cart when the key is missing or expired.
func (s *RedisCartStore) Load(ctx context.Context, identity entity.CartIdentity) (*entity.Cart, error) {
	return s.read(ctx, s.client, s.key(identity))
}

// Update runs mutate against the current cart inside an optimistic transaction.
func (s *RedisCartStore) Update(
	ctx context.Context,
	identity entity.CartIdentity,
	mutate func(cart *entity.Cart) error,
) (*entity.Cart, error) {
	key := s.key(identity)

	var result *entity.Cart
	txf := func(tx *redis.Tx) error {
		cart, err := s.read(ctx, tx, key)
		if err != nil {
			return err
		}

		if err := mutate(cart); err != nil {
			return err
		}

		payload, err := encodeCart(cart)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if cart.IsEmpty() {
				pipe.Del(ctx, key)

				return nil
			}
			pipe.Set(ctx, key, payload, s.ttl)

			return nil
		})
		if err != nil {
			return err
		}

		result = cart

		return nil
	}

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		return nil, err
	}

	return nil, service.ErrCartConflict
}

// Clear removes the cart key.
func (s *RedisCartStore) Clear(ctx context.Context, identity entity.CartIdentity) error {
	if err := s.client.Del(ctx, s.key(identity)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete cart")
	}

	return nil
}

func (s *RedisCartStore) read(ctx context.Context, cmd redis.Cmdable, key string) (*entity.Cart, error) {
	data, err := cmd.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.NewCart(), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cart")
	}

	return decodeCart(data)
}

func encodeCart(cart *entity.Cart) ([]byte, error) {
	doc := storedCart{Items: make(map[string]int, len(cart.Items))}
	for id, qty := range cart.Items {
		doc.Items[id.String()] = qty
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode cart")
	}

	return payload, nil
}

// decodeCart skips entries that are not valid product ids or quantities.
func decodeCart(data []byte) (*entity.Cart, error) {
	var doc storedCart
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode cart")
	}

	cart := entity.NewCart()
	for rawID, qty := range doc.Items {
		id, err := uuid.Parse(rawID)
		if err != nil || qty < 1 {
			continue
		}
		cart.Items[id] = qty
	}

	return cart, nil
}
