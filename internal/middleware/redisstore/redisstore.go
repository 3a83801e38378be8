// Package redisstore is a redis-backed cache storage. It lets several
// instances share one response cache.
package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("layer", "redisstore")

const opTimeout = 500 * time.Millisecond

// Storage ...
type Storage struct {
	c *redis.Client
}

// NewStorage ...
func NewStorage(c *redis.Client) *Storage {
	return &Storage{c: c}
}

// Get returns nil on a miss or any redis failure: the cache is an
// optimization, never a dependency.
func (s *Storage) Get(key string) []byte {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	v, err := s.c.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.WithError(err).WithField("key", key).Error("failed to get cached response")
		}
		return nil
	}

	return v
}

// Set ...
func (s *Storage) Set(key string, content []byte, duration time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := s.c.Set(ctx, key, content, duration).Err(); err != nil {
		log.WithError(err).WithField("key", key).Error("failed to cache response")
	}
}
