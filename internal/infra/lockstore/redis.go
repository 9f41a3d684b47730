package lockstore

import (
	"context"
	"log/slog"
	"time"

	"booking-flow/internal/infra"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "slotlock:"

// RedisStore shares slot locks between instances. A lock is a key set with
// NX and a TTL, so expiry is left to redis.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisStore(client *redis.Client, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func (r *RedisStore) Lock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, keyPrefix+key, "1", ttl).Result()
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindUnavailable, "failed to lock slot", err)
	}
	return ok, nil
}

func (r *RedisStore) IsLocked(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, keyPrefix+key).Result()
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindUnavailable, "failed to read slot lock", err)
	}
	return n > 0, nil
}

func (r *RedisStore) LockedAmong(ctx context.Context, keys []string) (map[string]bool, error) {
	out := make(map[string]bool)
	if len(keys) == 0 {
		return out, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.IntCmd, len(keys))
	for i, k := range keys {
		cmds[i] = pipe.Exists(ctx, keyPrefix+k)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindUnavailable, "failed to read slot locks", err)
	}

	for i, cmd := range cmds {
		if cmd.Val() > 0 {
			out[keys[i]] = true
		}
	}
	return out, nil
}

func (r *RedisStore) Release(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindUnavailable, "failed to release slot lock", err)
	}
	return nil
}
