package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSource reads the JSON document an upstream service publishes under
// "<prefix><path>", e.g. "api:/goleiros"
type RedisSource struct {
	client *redis.Client
	prefix string
}

// NewRedisSource connects to Redis. url may be a redis:// URL or a bare host:port.
func NewRedisSource(url, password, prefix string) (*RedisSource, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		opts = &redis.Options{Addr: url}
	}
	if password != "" {
		opts.Password = password
	}

	return NewRedisSourceFromClient(redis.NewClient(opts), prefix), nil
}

// NewRedisSourceFromClient wraps an existing client
func NewRedisSourceFromClient(client *redis.Client, prefix string) *RedisSource {
	return &RedisSource{
		client: client,
		prefix: prefix,
	}
}

// Key returns the Redis key holding the document for path
func (s *RedisSource) Key(path string) string {
	return s.prefix + path
}

// Request loads and decodes the document stored for path
func (s *RedisSource) Request(ctx context.Context, path string) (interface{}, error) {
	key := s.Key(path)

	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("no document at key %s", key)
	}
	if err != nil {
		return nil, fmt.Errorf("reading key %s: %w", key, err)
	}

	return decodeJSONBytes(data)
}

// Ping checks the Redis connection
func (s *RedisSource) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the underlying client
func (s *RedisSource) Close() error {
	return s.client.Close()
}
