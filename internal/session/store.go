package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrStoreNotAvailable = errors.New("session store not available")
	ErrStateNotFound     = errors.New("session state not found")
)

// Store keeps JSON documents in Redis under a key prefix
type Store struct {
	client *redis.Client
	prefix string
}

func NewStore(client *redis.Client, prefix string) *Store {
	return &Store{
		client: client,
		prefix: prefix,
	}
}

// Available reports whether a Redis client is configured
func (s *Store) Available() bool {
	return s != nil && s.client != nil
}

func (s *Store) key(key string) string {
	return fmt.Sprintf("%s%s", s.prefix, key)
}

// Get retrieves and unmarshals a document
func (s *Store) Get(ctx context.Context, key string, dest interface{}) error {
	if !s.Available() {
		return ErrStoreNotAvailable
	}

	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrStateNotFound
		}
		return fmt.Errorf("session get error: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("session unmarshal error: %w", err)
	}

	return nil
}

// Set marshals and stores a document, resetting its TTL
func (s *Store) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !s.Available() {
		return ErrStoreNotAvailable
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("session marshal error: %w", err)
	}

	if err := s.client.Set(ctx, s.key(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("session set error: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if !s.Available() {
		return ErrStoreNotAvailable
	}
	if len(keys) == 0 {
		return nil
	}

	fullKeys := make([]string, len(keys))
	for i, key := range keys {
		fullKeys[i] = s.key(key)
	}

	if err := s.client.Del(ctx, fullKeys...).Err(); err != nil {
		return fmt.Errorf("session delete error: %w", err)
	}
	return nil
}

// Ping checks the Redis connection
func (s *Store) Ping(ctx context.Context) error {
	if !s.Available() {
		return ErrStoreNotAvailable
	}
	return s.client.Ping(ctx).Err()
}
