package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Log     LogConfig     `yaml:"log"`
	HTTP    HTTPConfig    `yaml:"http"`
	Auth    AuthConfig    `yaml:"auth"`
	Redis   RedisConfig   `yaml:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Booking BookingConfig `yaml:"booking"`
	Desk    DeskConfig    `yaml:"desk"`
	// Seed replaces the built-in starting flights when non-empty.
	Seed []SeedFlight `yaml:"seed"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// HTTPConfig enables the HTTP API when Address is set.
type HTTPConfig struct {
	Address string `yaml:"address"`
}

// AuthConfig holds the one shared staff credential. PasswordHash is a bcrypt
// hash; Password is only used when no hash is configured.
type AuthConfig struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
	Password     string `yaml:"password"`
}

// RedisConfig enables the flight board cache when Addr is set. Instance
// names this desk's cache key; empty means a random name per process.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Instance string `yaml:"instance"`
}

// KafkaConfig enables booking events when Brokers is non-empty.
type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
	PublishTimeoutMs   int      `yaml:"publish_timeout_ms"`
}

type BookingConfig struct {
	FlightsCacheTTL int `yaml:"flights_cache_ttl_seconds"`
}

// DeskConfig holds the values the terminal accepts for new flights.
type DeskConfig struct {
	Origin       string   `yaml:"origin"`
	Destinations []string `yaml:"destinations"`
}

type SeedFlight struct {
	Number        string `yaml:"flight_no"`
	Origin        string `yaml:"origin"`
	Destination   string `yaml:"destination"`
	DepartureDate string `yaml:"departure_date"`
	DepartureTime string `yaml:"departure_time"`
	EconomySeats  int    `yaml:"economy_seats"`
	BusinessSeats int    `yaml:"business_seats"`
	EconomyFare   string `yaml:"economy_fare"`
	BusinessFare  string `yaml:"business_fare"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "warn"},
		Auth: AuthConfig{
			Username: "Staff",
			Password: "Cloud123",
		},
		Kafka: KafkaConfig{
			BookingTopic:       "flightdesk.bookings",
			NotificationsTopic: "flightdesk.notifications",
			GroupID:            "flightdesk-notifier",
			PublishTimeoutMs:   2000,
		},
		Booking: BookingConfig{FlightsCacheTTL: 60},
		Desk: DeskConfig{
			Origin:       "JFK",
			Destinations: []string{"Orlando", "Miami", "Los Angeles"},
		},
	}
}

// LoadConfig reads path over the defaults. A missing file yields the
// defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Auth.Username == "" {
		return errors.New("auth.username is required")
	}
	if c.Auth.PasswordHash == "" && c.Auth.Password == "" {
		return errors.New("auth.password_hash or auth.password is required")
	}
	if c.Desk.Origin == "" {
		return errors.New("desk.origin is required")
	}
	if len(c.Desk.Destinations) == 0 {
		return errors.New("desk.destinations must not be empty")
	}
	return nil
}
