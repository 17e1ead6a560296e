/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package schemacache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/trustbloc/credential-agent/pkg/client/schema"
)

const (
	keyPrefix = "schema"
)

type redisClient interface {
	API() redis.UniversalClient
	Key(parts ...string) string
}

// Store caches JSON schema documents with expiration.
type Store struct {
	redisClient redisClient
	ttl         time.Duration
}

func New(redisClient redisClient, ttl time.Duration) *Store {
	return &Store{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.redisClient.API().Get(ctx, s.resolveRedisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, schema.ErrCacheMiss
		}

		return nil, fmt.Errorf("redis get schema: %w", err)
	}

	return b, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.redisClient.API().Set(ctx, s.resolveRedisKey(key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set schema: %w", err)
	}

	return nil
}

func (s *Store) resolveRedisKey(key string) string {
	return s.redisClient.Key(keyPrefix, key)
}
