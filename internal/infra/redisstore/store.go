// Package redisstore provides a Redis-backed implementation of domain.KVStore.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/runoshun/focusboard/internal/domain"
)

// Store keeps values as plain Redis strings under "<namespace>:<key>".
// Values never expire.
type Store struct {
	client    *redis.Client
	namespace string
}

// Ensure Store implements domain.KVStore.
var _ domain.KVStore = (*Store)(nil)

// New connects to addr and verifies the connection with PING.
func New(ctx context.Context, addr string, db int, namespace string) (*Store, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", addr, err)
	}
	return NewWithClient(client, namespace), nil
}

// NewWithClient creates a Store using an existing client.
func NewWithClient(client *redis.Client, namespace string) *Store {
	if namespace == "" {
		namespace = domain.AppName
	}
	return &Store{client: client, namespace: namespace}
}

func (s *Store) redisKey(key string) string {
	return s.namespace + ":" + key
}

// Get returns the value under key, or nil if absent.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

// Set stores value under key without expiry.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.redisKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.redisKey(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Close releases the client connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}
