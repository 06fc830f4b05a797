package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/flightdesk/api"
	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/auth"
	"github.com/Domenick1991/flightdesk/internal/cache"
	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/kafka"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/Domenick1991/flightdesk/internal/service/customers"
	"github.com/Domenick1991/flightdesk/internal/service/flights"
	"github.com/Domenick1991/flightdesk/internal/service/reservation"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// App is the wired reservation desk: stores, services, optional cache and
// event producer, and the staff credential check.
type App struct {
	Engine *reservation.Engine
	Auth   *auth.StaffAuthenticator
	Config *config.Config

	cache    *cache.RedisCache
	producer *kafka.Producer
	logger   *zap.Logger
}

// New wires the desk from cfg and loads the starting flights. Redis and
// Kafka are only used when configured; an unreachable one is logged and
// the desk still starts.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	staff, err := auth.New(cfg.Auth)
	if err != nil {
		return nil, err
	}
	inventory, err := SeedInventory(cfg.Seed, time.Now())
	if err != nil {
		return nil, err
	}

	app := &App{Auth: staff, Config: cfg, logger: logger}

	flightOpts := []flights.FlightServiceOption{flights.WithLogger(logger)}
	bookingOpts := []booking.BookingServiceOption{booking.WithLogger(logger)}

	if cfg.Redis.Addr != "" {
		app.cache = cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second)
		if err := app.cache.Ping(ctx); err != nil {
			logger.Warn("redis unavailable, flight board will not be cached", zap.Error(err))
		}
		flightOpts = append(flightOpts, flights.WithCache(app.cache))
		bookingOpts = append(bookingOpts, booking.WithCache(app.cache))
	}
	if len(cfg.Kafka.Brokers) > 0 {
		app.producer = kafka.NewProducer(cfg.Kafka.Brokers, logger)
		if err := app.producer.CheckConnection(ctx); err != nil {
			logger.Warn("kafka unavailable, booking events may be lost", zap.Error(err))
		}
		bookingOpts = append(bookingOpts,
			booking.WithProducer(app.producer, cfg.Kafka.BookingTopic),
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
			booking.WithPublishTimeout(time.Duration(cfg.Kafka.PublishTimeoutMs)*time.Millisecond),
		)
	}

	flightRepo := repository.NewFlightRepository()
	customerRepo := repository.NewCustomerRepository()
	app.Engine = reservation.NewEngine(
		flights.NewFlightService(flightRepo, flightOpts...),
		customers.NewCustomerService(customerRepo, logger),
		booking.NewBookingService(repository.NewBookingRepository(), flightRepo, customerRepo, bookingOpts...),
	)

	if err := reservation.Seed(ctx, app.Engine, inventory); err != nil {
		_ = app.Close()
		return nil, err
	}
	logger.Info("flight inventory loaded", zap.Int("flights", len(inventory)))
	return app, nil
}

// HTTPServer returns nil when the HTTP API is disabled.
func (a *App) HTTPServer() *Server {
	if a.Config.HTTP.Address == "" {
		return nil
	}
	return NewServer(a.Config.HTTP.Address, api.NewRouter(a.Engine, a.Auth, a.Config.Desk, a.logger), a.logger)
}

func (a *App) Close() error {
	var errs []error
	if a.producer != nil {
		errs = append(errs, a.producer.Close())
	}
	if a.cache != nil {
		errs = append(errs, a.cache.Close())
	}
	return errors.Join(errs...)
}

// SeedInventory converts configured seed flights, or returns the built-in
// three flights departing the day after now when none are configured.
func SeedInventory(seed []config.SeedFlight, now time.Time) ([]flights.AddFlightInput, error) {
	if len(seed) == 0 {
		return reservation.DefaultSeed(now), nil
	}

	inventory := make([]flights.AddFlightInput, 0, len(seed))
	for _, s := range seed {
		date, err := domain.ParseDate(s.DepartureDate)
		if err != nil {
			return nil, fmt.Errorf("seed flight %s: %w", s.Number, err)
		}
		clock, err := domain.ParseClock(s.DepartureTime)
		if err != nil {
			return nil, fmt.Errorf("seed flight %s: %w", s.Number, err)
		}
		economy, err := decimal.NewFromString(s.EconomyFare)
		if err != nil {
			return nil, fmt.Errorf("seed flight %s economy fare: %w", s.Number, err)
		}
		business, err := decimal.NewFromString(s.BusinessFare)
		if err != nil {
			return nil, fmt.Errorf("seed flight %s business fare: %w", s.Number, err)
		}
		inventory = append(inventory, flights.AddFlightInput{
			Number:        s.Number,
			Origin:        s.Origin,
			Destination:   s.Destination,
			DepartureDate: date,
			DepartureTime: clock,
			EconomySeats:  s.EconomySeats,
			BusinessSeats: s.BusinessSeats,
			EconomyFare:   economy,
			BusinessFare:  business,
		})
	}
	return inventory, nil
}
