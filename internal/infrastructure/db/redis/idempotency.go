package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	idempotencyTTL    = 24 * time.Hour
	idempotencyPrefix = "idempotency:post:"
)

// IdempotencyStore maps Idempotency-Key headers to the post they created so
// a retried create returns the original post instead of a duplicate.
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore wraps the given Redis client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Get returns the post ID recorded under key, or "" when the key is unseen.
func (s *IdempotencyStore) Get(ctx context.Context, key string) (string, error) {
	id, err := s.client.Get(ctx, idempotencyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("idempotency get: %w", err)
	}
	return id, nil
}

// Remember records the post created under key (expires after idempotencyTTL).
func (s *IdempotencyStore) Remember(ctx context.Context, key, postID string) error {
	return s.client.Set(ctx, idempotencyPrefix+key, postID, idempotencyTTL).Err()
}
