package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"remixjokes/src/core/ports"
)

var _ ports.SessionRevoker = (*RedisRevoker)(nil)

const revokedKeyPrefix = "session:revoked:"

// RedisRevoker keeps logged-out token ids in Redis until the token would have expired anyway.
type RedisRevoker struct {
	rdb *redis.Client
	now func() time.Time
}

func NewRedisRevoker(rdb *redis.Client) *RedisRevoker {
	return &RedisRevoker{rdb: rdb, now: time.Now}
}

func revokedKey(tokenID string) string {
	return revokedKeyPrefix + tokenID
}

// Revoke marks tokenID as revoked until the given time. Tokens already past
// that time are not stored.
func (r *RedisRevoker) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	if err := r.rdb.Set(ctx, revokedKey(tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store revoked session: %w", err)
	}
	return nil
}

func (r *RedisRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.rdb.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check revoked session: %w", err)
	}
	return n > 0, nil
}

func (r *RedisRevoker) Health(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}
