package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/models"
)

const draftPrefix = "booking:draft:"

// redisClient is the part of *redis.Client the store uses.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisDraftStore keeps msgpack encoded drafts under booking:draft:<id>
// and lets Redis expire them.
type RedisDraftStore struct {
	rdb redisClient
	ttl time.Duration
}

func NewRedisDraftStore(rdb redisClient, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{rdb: rdb, ttl: ttl}
}

func (s *RedisDraftStore) SaveDraft(ctx context.Context, draft models.Draft) error {
	data, err := msgpack.Marshal(&draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := s.rdb.Set(ctx, draftPrefix+draft.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) GetDraft(ctx context.Context, id string) (models.Draft, error) {
	data, err := s.rdb.Get(ctx, draftPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Draft{}, ErrDraftNotFound
	}
	if err != nil {
		return models.Draft{}, fmt.Errorf("failed to load draft: %w", err)
	}

	var draft models.Draft
	if err := msgpack.Unmarshal(data, &draft); err != nil {
		return models.Draft{}, fmt.Errorf("failed to decode draft: %w", err)
	}
	return draft, nil
}

func (s *RedisDraftStore) DeleteDraft(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, draftPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
