package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore is the revocation list behind logout. Access tokens are
// stateless, so logging out means remembering the token until it would
// have expired anyway.
type TokenStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

const revokedKeyPrefix = "revoked:"

type redisTokenStore struct{ rdb *redis.Client }

func NewRedisTokenStore(rdb *redis.Client) TokenStore {
	return &redisTokenStore{rdb: rdb}
}

func (s *redisTokenStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to remember
	}
	return s.rdb.Set(ctx, revokedKeyPrefix+token, "1", ttl).Err()
}

func (s *redisTokenStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
