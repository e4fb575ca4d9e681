// Package redis provides a Redis-backed state store and distributed locker,
// for deployments where multiple bot processes share conversation state.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.StateStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for stored payloads.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for stored payloads.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "parley:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) storageKey(scope ports.Scope, key string) string {
	return s.prefix + string(scope) + ":" + key
}

// Save replaces the payload for the scoped key, applying the configured TTL.
func (s *Store) Save(ctx context.Context, scope ports.Scope, key string, payload json.RawMessage) error {
	if err := s.client.Set(ctx, s.storageKey(scope, key), []byte(payload), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the payload for the scoped key.
func (s *Store) Load(ctx context.Context, scope ports.Scope, key string) (json.RawMessage, error) {
	val, err := s.client.Get(ctx, s.storageKey(scope, key)).Bytes()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}
	return json.RawMessage(val), nil
}

// Delete removes the scoped key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, scope ports.Scope, key string) error {
	if err := s.client.Del(ctx, s.storageKey(scope, key)).Err(); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
