package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const flightsKeyPrefix = "cache:flights:"

// RedisCache publishes the flight board for readers outside the process.
// The catalog stays the source of truth; entries are dropped on every change.
// Each desk writes under its own key since catalogs are per process.
type RedisCache struct {
	client     *redis.Client
	flightsKey string
	flightsTTL time.Duration
}

// NewRedisCache keys the board by cfg.Instance, or by a fresh random ID
// when no instance name is configured.
func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	instance := cfg.Instance
	if instance == "" {
		instance = uuid.NewString()
	}
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsKey: flightsKeyPrefix + instance,
		flightsTTL: flightsTTL,
	}
}

// GetFlights returns nil, nil on a cache miss.
func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, c.flightsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.flightsKey, payload, c.flightsTTL).Err()
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, c.flightsKey).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
