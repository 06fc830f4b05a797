package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisCache(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "localhost:6379"}, time.Minute)
	assert.NotNil(t, c)
	assert.Equal(t, time.Minute, c.flightsTTL)
	assert.NoError(t, c.Close())
}

func TestRedisCache_UnreachableServer(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "127.0.0.1:1"}, time.Minute)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	flights, err := c.GetFlights(ctx)
	assert.Error(t, err)
	assert.Nil(t, flights)
	assert.Error(t, c.InvalidateFlights(ctx))
}

func TestNewRedisCache_KeyPerInstance(t *testing.T) {
	named := NewRedisCache(config.RedisConfig{Addr: "localhost:6379", Instance: "desk-1"}, time.Minute)
	defer named.Close()
	assert.Equal(t, "cache:flights:desk-1", named.flightsKey)

	a := NewRedisCache(config.RedisConfig{Addr: "localhost:6379"}, time.Minute)
	defer a.Close()
	b := NewRedisCache(config.RedisConfig{Addr: "localhost:6379"}, time.Minute)
	defer b.Close()
	assert.NotEqual(t, a.flightsKey, b.flightsKey)
	assert.True(t, strings.HasPrefix(a.flightsKey, flightsKeyPrefix))
}
