package contextcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"timer-gateway/internal/domain/reservation"
	"timer-gateway/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "timergw:rsvctx:"

// RedisCache keeps resolved reservation contexts for a short time so repeated
// requests with the same session skip the reservation lookup. Keys are token hashes.
type RedisCache struct {
	c   redis.UniversalClient
	ttl time.Duration
}

func New(c redis.UniversalClient, ttl time.Duration) *RedisCache {
	return &RedisCache{c: c, ttl: ttl}
}

func (r *RedisCache) Get(ctx context.Context, token string) (reservation.Context, bool, error) {
	val, err := r.c.Get(ctx, key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return reservation.Context{}, false, nil
	}
	if err != nil {
		return reservation.Context{}, false, errs.Wrap(err, "redis get")
	}

	var rc reservation.Context
	if err := json.Unmarshal(val, &rc); err != nil {
		return reservation.Context{}, false, errs.Wrap(err, "decode cached reservation context")
	}
	return rc, true, nil
}

func (r *RedisCache) Set(ctx context.Context, token string, rc reservation.Context) error {
	b, err := json.Marshal(rc)
	if err != nil {
		return errs.Wrap(err, "encode reservation context")
	}
	if err := r.c.Set(ctx, key(token), b, r.ttl).Err(); err != nil {
		return errs.Wrap(err, "redis set")
	}
	return nil
}

func key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Noop is used when no Redis address is configured; every lookup misses.
type Noop struct{}

func (Noop) Get(context.Context, string) (reservation.Context, bool, error) {
	return reservation.Context{}, false, nil
}

func (Noop) Set(context.Context, string, reservation.Context) error {
	return nil
}
