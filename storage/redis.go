// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Key schema:
//   client:{clientID}:storage       hash of key -> value
//   client:{clientID}:queue:{name}  list of items, oldest first

func clientKey(clientID string) string {
	return "client:" + clientID + ":storage"
}

func queueKey(clientID, name string) string {
	return "client:" + clientID + ":queue:" + name
}

// Redis keeps one hash per client
type Redis struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

// DialRedis parses a redis:// URL and verifies the server answers
func DialRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return rdb, nil
}

func (b *Redis) Store(clientID string) Store {
	return &redisStore{rdb: b.rdb, key: clientKey(clientID)}
}

type redisStore struct {
	rdb *redis.Client
	key string
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.rdb.HGet(ctx, s.key, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.HSet(ctx, s.key, key, value).Err(); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (s *redisStore) Remove(ctx context.Context, key string) error {
	if err := s.rdb.HDel(ctx, s.key, key).Err(); err != nil {
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}
	return nil
}

func (b *Redis) Queue(clientID string) Queue {
	return &redisQueue{rdb: b.rdb, clientID: clientID}
}

type redisQueue struct {
	rdb      *redis.Client
	clientID string
}

func (q *redisQueue) Push(ctx context.Context, name, item string) error {
	if err := q.rdb.RPush(ctx, queueKey(q.clientID, name), item).Err(); err != nil {
		return fmt.Errorf("failed to push to %q: %w", name, err)
	}
	return nil
}

// PopAll reads and deletes the list inside MULTI/EXEC
func (q *redisQueue) PopAll(ctx context.Context, name string) ([]string, error) {
	key := queueKey(q.clientID, name)

	var items *redis.StringSliceCmd
	_, err := q.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		items = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to pop %q: %w", name, err)
	}
	return items.Val(), nil
}
