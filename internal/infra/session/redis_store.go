package session

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a SessionRepository backed by redis.
// Sessions are stored as JSON under "session:<id>" with the save TTL.
func NewRedisStore(client *redis.Client) repository.SessionRepository {
	return &redisStore{client: client}
}

func (s *redisStore) Save(ctx context.Context, session *entity.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "marshal session")
	}

	if err := s.client.Set(ctx, sessionKey(session.ID), data, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set session")
	}

	return nil
}

func (s *redisStore) Find(ctx context.Context, id string) (*entity.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get session")
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrap(err, "unmarshal session")
	}

	return &session, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return errors.Wrap(err, "redis delete session")
	}

	return nil
}

func sessionKey(id string) string {
	return "session:" + id
}
