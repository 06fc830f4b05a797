package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/kafka"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	BookFlight(ctx context.Context, input BookFlightInput) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
}

// Cache is the part of the flight board cache a booking has to touch.
type Cache interface {
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookFlightInput struct {
	FlightNo   string
	PassportNo string
	Class      domain.TravelClass
}

// DefaultPublishTimeout bounds how long a booking waits on the event broker.
const DefaultPublishTimeout = 2 * time.Second

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	customers          repository.CustomerRepository
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	publishTimeout     time.Duration
	now                func() time.Time
	logger             *zap.Logger
}

type BookingServiceOption func(*BookingService)

func WithCache(cache Cache) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
	}
}

// WithProducer enables booking events on bookingTopic.
func WithProducer(producer Producer, bookingTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = bookingTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithPublishTimeout caps each event write; non-positive values keep the default.
func WithPublishTimeout(timeout time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		if timeout > 0 {
			s.publishTimeout = timeout
		}
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func WithLogger(logger *zap.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.logger = logger
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	customers repository.CustomerRepository,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:       bookings,
		flights:        flights,
		customers:      customers,
		publishTimeout: DefaultPublishTimeout,
		now:            time.Now,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// BookFlight sells one seat of input.Class on the flight to the customer
// holding input.PassportNo. The seat is reserved before anything is written
// to the ledger, so a failure at any step leaves catalog and ledger as they
// were.
func (s *BookingService) BookFlight(ctx context.Context, input BookFlightInput) (*domain.Booking, error) {
	if !input.Class.Valid() {
		return nil, domain.ErrInvalidClass
	}
	if _, err := s.flights.GetByNumber(input.FlightNo); err != nil {
		return nil, fmt.Errorf("book flight: %w", err)
	}
	customer, err := s.customers.FindByPassport(input.PassportNo)
	if err != nil {
		return nil, fmt.Errorf("book flight: %w", err)
	}

	flight, err := s.flights.ReserveSeat(input.FlightNo, input.Class)
	if err != nil {
		s.logger.Warn("seat reservation refused",
			zap.String("flight_no", input.FlightNo),
			zap.String("class", string(input.Class)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("book flight: %w", err)
	}

	booking := s.bookings.Append(domain.Booking{
		FlightNo:      flight.Number,
		CustomerID:    customer.ID,
		PassportNo:    customer.PassportNo,
		CustomerName:  customer.Name,
		Class:         input.Class,
		Fare:          flight.Fares.Of(input.Class),
		DepartureDate: flight.DepartureDate,
		DepartureTime: flight.DepartureTime,
		Destination:   flight.Destination,
		BookedAt:      s.now(),
	})

	s.logger.Info("booking confirmed",
		zap.String("booking_id", booking.ID),
		zap.String("flight_no", booking.FlightNo),
		zap.String("customer_id", booking.CustomerID),
		zap.String("class", string(booking.Class)),
		zap.String("fare", booking.Fare.StringFixed(2)),
	)

	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			s.logger.Warn("flight cache invalidation failed", zap.Error(err))
		}
	}
	if err := s.publish(ctx, kafka.EventBookingCreated, booking, customer); err != nil {
		s.logger.Warn("failed to publish booking event",
			zap.String("booking_id", booking.ID),
			zap.Error(err),
		)
	}
	return &booking, nil
}

func (s *BookingService) ListBookings(_ context.Context) ([]domain.Booking, error) {
	return s.bookings.List(), nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking domain.Booking, customer domain.Customer) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	// The engine lock is held while publishing; a stalled broker must not
	// hold every other desk operation with it.
	ctx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	event := kafka.BookingEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		BookingID:     booking.ID,
		FlightNo:      booking.FlightNo,
		CustomerID:    booking.CustomerID,
		CustomerName:  booking.CustomerName,
		Phone:         customer.Phone,
		Class:         string(booking.Class),
		Fare:          booking.Fare.StringFixed(2),
		DepartureDate: string(booking.DepartureDate),
		DepartureTime: string(booking.DepartureTime),
		Destination:   booking.Destination,
		BookedAt:      booking.BookedAt,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
