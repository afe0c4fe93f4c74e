package redisclient

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedTokenPrefix = "blacklist:"

// RevokedTokenKey is the key marking a JWT id as revoked.
func RevokedTokenKey(jti string) string {
	return revokedTokenPrefix + jti
}

// RevokeToken marks jti as revoked until ttl elapses. A non-positive ttl
// means the token already expired and nothing is stored.
func RevokeToken(ctx context.Context, rdb *redis.Client, jti string, ttl time.Duration) error {
	if rdb == nil || jti == "" || ttl <= 0 {
		return nil
	}
	return rdb.Set(ctx, RevokedTokenKey(jti), "1", ttl).Err()
}

// IsRevoked reports whether jti was revoked. Lookup failures are returned
// so the caller decides whether to fail open.
func IsRevoked(ctx context.Context, rdb *redis.Client, jti string) (bool, error) {
	if rdb == nil || jti == "" {
		return false, nil
	}
	n, err := rdb.Exists(ctx, RevokedTokenKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
