package slot

import (
	"context"
	"time"

	"github.com/pirayth/gardenshop/internal/usecase"
	"github.com/redis/go-redis/v9"
)

// RedisSlot keeps each session's serialized cart under a single redis key.
type RedisSlot struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSlot(rdb *redis.Client, ttl time.Duration) *RedisSlot {
	return &RedisSlot{rdb: rdb, ttl: ttl}
}

func (s *RedisSlot) Read(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := s.rdb.Get(ctx, "cart:slot:"+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (s *RedisSlot) Write(ctx context.Context, key string, raw []byte) error {
	return s.rdb.Set(ctx, "cart:slot:"+key, raw, s.ttl).Err()
}

var _ usecase.CartSlot = (*RedisSlot)(nil)
