package cartstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/niksmo/kitchen-store/internal/core/domain"
	"github.com/niksmo/kitchen-store/internal/core/port"
	"github.com/redis/go-redis/v9"
)

var _ port.CartStore = (*RedisStore)(nil)

const keyPrefix = "cart:"

type redisClient interface {
	GetEx(ctx context.Context, key string, expiration time.Duration) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

// A RedisStore keeps carts as JSON values with a sliding TTL.
// Both loads and saves push the expiry forward.
type RedisStore struct {
	rdb redisClient
	ttl time.Duration
}

func NewRedisStore(
	ctx context.Context, opts *redis.Options, ttl time.Duration,
) (RedisStore, error) {
	const op = "NewRedisStore"
	log := slog.With("op", op)

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return RedisStore{}, fmt.Errorf("%s: redis is unavailable: %w", op, err)
	}
	log.Info("redis is available", "addr", opts.Addr)

	return RedisStore{rdb: rdb, ttl: ttl}, nil
}

func (s RedisStore) LoadCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	const op = "RedisStore.LoadCart"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := s.rdb.GetEx(ctx, key(cartID), s.ttl).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%s: %w", op, domain.ErrCartNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cart, err := decodeCart(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cart, nil
}

func (s RedisStore) SaveCart(
	ctx context.Context, cartID string, cart *domain.Cart,
) error {
	const op = "RedisStore.SaveCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	data, err := encodeCart(cart)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.rdb.Set(ctx, key(cartID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s RedisStore) DeleteCart(ctx context.Context, cartID string) error {
	const op = "RedisStore.DeleteCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.rdb.Del(ctx, key(cartID)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s RedisStore) Close() {
	const op = "RedisStore.Close"
	log := slog.With("op", op)

	log.Info("closing redis client...")
	if err := s.rdb.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("redis client is closed")
}

func key(cartID string) string {
	return keyPrefix + cartID
}
