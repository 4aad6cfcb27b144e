package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"estimate_wizard/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultDraftTTL = 7 * 24 * time.Hour

// DraftRedisRepository stores each draft as a plain string key with a TTL,
// so abandoned wizards expire on their own.
type DraftRedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.IDraftMedium = (*DraftRedisRepository)(nil)

func NewDraftRedisRepository(client *redis.Client, ttl time.Duration) *DraftRedisRepository {
	if ttl <= 0 {
		ttl = defaultDraftTTL
	}
	return &DraftRedisRepository{client: client, ttl: ttl}
}

func (r *DraftRedisRepository) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read draft: %w", err)
	}
	return v, true, nil
}

func (r *DraftRedisRepository) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}
	return nil
}

func (r *DraftRedisRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
