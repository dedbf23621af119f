// Package redis provides a parameter store backed by Redis string keys, so
// several planning hosts can share one set of filter parameters.
package redis

import (
	"context"
	"errors"
	"fmt"

	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces parameter keys inside the Redis keyspace.
const DefaultPrefix = "trajfilter:param:"

// Store implements ports.ParamStore using Redis.
// Values come back as strings; filter.DecodeParams converts them to typed fields.
type Store struct {
	client *backend.Client
	prefix string
}

type Option func(*Store)

// WithPrefix sets the key prefix for parameters.
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
		prefix: DefaultPrefix,
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

// Get reads a parameter from Redis.
func (s *Store) Get(ctx context.Context, key string) (any, bool, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get from redis: %w", err)
	}
	return val, true, nil
}

// Set writes a parameter in its string form. It is meant for seeding and tooling;
// filters only ever read.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	if err := s.client.Set(ctx, s.key(key), fmt.Sprint(value), 0).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
