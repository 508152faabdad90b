// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-classifieds/internal/config"
	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/models"
	"github.com/redis/go-redis/v9"
)

const (
	districtsCacheKey      = "classifieds:reference:distritos"
	municipalitiesCacheKey = "classifieds:reference:municipios"
)

// CacheClient is the subset of the Redis API used by the reference cache.
type CacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	SetEx(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// cachedReferenceRepository serves reference lists from Redis and falls back
// to the wrapped repository on a miss or on any cache failure.
type cachedReferenceRepository struct {
	next   ReferenceRepository
	cache  CacheClient
	ttl    time.Duration
	logger *logger.Logger
}

// NewCachedReferenceRepository decorates next with a Redis read-through cache.
func NewCachedReferenceRepository(next ReferenceRepository, cache CacheClient, ttl time.Duration, logger *logger.Logger) ReferenceRepository {
	logger.Debug().Dur("ttl", ttl).Msg("creating cached reference repository")
	return &cachedReferenceRepository{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// NewRedisClient connects to the Redis server of cfg and pings it.
func NewRedisClient(ctx context.Context, cfg config.Cache, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Str("address", cfg.RedisAddress).Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

func (c *cachedReferenceRepository) ListDistricts(ctx context.Context) ([]models.District, error) {
	return readThrough(ctx, c, districtsCacheKey, c.next.ListDistricts)
}

func (c *cachedReferenceRepository) ListMunicipalities(ctx context.Context) ([]models.Municipality, error) {
	return readThrough(ctx, c, municipalitiesCacheKey, c.next.ListMunicipalities)
}

func readThrough[T any](ctx context.Context, c *cachedReferenceRepository, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	cached, err := c.cache.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var items []T
		jsonErr := json.Unmarshal(cached, &items)
		if jsonErr == nil {
			log.Debug().Str("func", "cachedReferenceRepository.readThrough").Str("key", key).Msg("cache hit")
			return items, nil
		}
		log.Warn().Err(jsonErr).Str("key", key).Msg("dropping undecodable cache entry")
	case errors.Is(err, redis.Nil):
		log.Debug().Str("func", "cachedReferenceRepository.readThrough").Str("key", key).Msg("cache miss")
	default:
		log.Warn().Err(err).Str("key", key).Msg("cache unavailable, reading from database")
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(items)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to encode cache entry")
		return items, nil
	}
	if err := c.cache.SetEx(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to store cache entry")
	}

	return items, nil
}
