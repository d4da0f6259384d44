package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"vanta/pkg/platform/sentinel"
)

// Redis key prefix for registration drafts.
const draftKeyPrefix = "draft:"

// RedisDraftStore is a Redis-backed draft store for multi-instance
// deployments. Entries carry a TTL because the browser-session cookie that
// holds the key disappears silently when the tab closes; the TTL is the only
// cleanup the orphaned entries get.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDraftStore constructs a Redis-backed draft store. A non-positive
// ttl falls back to 24 hours.
func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisDraftStore{client: client, ttl: ttl}
}

func (s *RedisDraftStore) Get(ctx context.Context, key string) (Draft, error) {
	raw, err := s.client.Get(ctx, draftKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Draft{}, sentinel.ErrNotFound
	}
	if err != nil {
		return Draft{}, fmt.Errorf("get draft: %w", err)
	}

	var draft Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return Draft{}, fmt.Errorf("decode draft: %w", err)
	}
	return draft, nil
}

func (s *RedisDraftStore) Put(ctx context.Context, key string, draft Draft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	// Each write refreshes the TTL so an active flow never expires mid-step.
	if err := s.client.Set(ctx, draftKeyPrefix+key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("put draft: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, draftKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}
