package cache

import (
	"context"
	"sync"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const sequenceKeyPrefix = "oficina:seq:"

type cmdable interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// HighWaterMarker reports the highest number already persisted for a sequence.
type HighWaterMarker interface {
	HighWaterMark(ctx context.Context, name string) (int64, error)
}

// RedisSequence allocates numbers with INCR. The counter lives outside the SQL
// transaction, so a rolled back caller leaves a gap but a number is never reused.
type RedisSequence struct {
	store  cmdable
	seeder HighWaterMarker
	seeded sync.Map
}

var _ interfaces.ISequence = (*RedisSequence)(nil)

func NewRedisSequence(client *redis.Client, seeder HighWaterMarker) *RedisSequence {
	return &RedisSequence{store: client, seeder: seeder}
}

func (s *RedisSequence) Next(ctx context.Context, name string, floor int64) (int64, error) {
	key := sequenceKeyPrefix + name
	if err := s.seed(ctx, key, name, floor); err != nil {
		return 0, err
	}
	n, err := s.store.Incr(ctx, key).Result()
	if err != nil {
		return 0, entities.Persistence("redis incr", err)
	}
	return n, nil
}

// seed writes max(floor, persisted high water mark) once per key. SETNX keeps an
// existing counter untouched, so concurrent processes agree on the start.
func (s *RedisSequence) seed(ctx context.Context, key, name string, floor int64) error {
	if _, ok := s.seeded.Load(key); ok {
		return nil
	}
	start := floor
	if s.seeder != nil {
		used, err := s.seeder.HighWaterMark(ctx, name)
		if err != nil {
			return err
		}
		start = max(start, used)
	}
	if err := s.store.SetNX(ctx, key, start, 0).Err(); err != nil {
		return entities.Persistence("redis seed sequence", err)
	}
	s.seeded.Store(key, struct{}{})
	return nil
}
