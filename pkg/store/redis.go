package store

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces layout keys inside a shared Redis instance.
const redisKeyPrefix = "docktile:layout:"

// redisIndexKey is the set holding all stored layout names.
const redisIndexKey = "docktile:layouts"

// RedisStore persists layouts in Redis. Each layout lives under its
// own key; a set of names supports listing without SCAN.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis at the given address (host:port) and
// verifies the connection.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

// Put saves the layout, replacing any previous version.
func (s *RedisStore) Put(ctx context.Context, l *Layout) error {
	prev, err := s.Get(ctx, nameOf(l))
	if err != nil && err != ErrNotFound {
		return err
	}
	if err := prepare(l, prev); err != nil {
		return err
	}

	data, err := json.Marshal(l)
	if err != nil {
		return err
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, redisKeyPrefix+l.Name, data, 0)
	pipe.SAdd(ctx, redisIndexKey, l.Name)
	_, err = pipe.Exec(ctx)
	return err
}

// Get loads the layout with the given name.
func (s *RedisStore) Get(ctx context.Context, name string) (*Layout, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+name).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns all layouts sorted by name.
func (s *RedisStore) List(ctx context.Context) ([]*Layout, error) {
	names, err := s.client.SMembers(ctx, redisIndexKey).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	out := make([]*Layout, 0, len(names))
	for _, name := range names {
		l, err := s.Get(ctx, name)
		if err == ErrNotFound {
			// Key expired or was removed out of band; drop the index entry.
			s.client.SRem(ctx, redisIndexKey, name)
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// Delete removes the layout with the given name.
func (s *RedisStore) Delete(ctx context.Context, name string) error {
	removed, err := s.client.Del(ctx, redisKeyPrefix+name).Result()
	if err != nil {
		return err
	}
	s.client.SRem(ctx, redisIndexKey, name)
	if removed == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
