package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/kafka"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

var withDeadline = mock.MatchedBy(func(ctx context.Context) bool {
	_, ok := ctx.Deadline()
	return ok
})

// stalledProducer never completes a write before ctx is done.
type stalledProducer struct {
	calls int
}

func (p *stalledProducer) Publish(ctx context.Context, _, _ string, _ interface{}) error {
	p.calls++
	<-ctx.Done()
	return ctx.Err()
}

// repricingRepo lets a test change a fare after bookings were taken.
type repricingRepo struct {
	*repository.MemoryFlightRepository
	economyFare *decimal.Decimal
}

func (r *repricingRepo) GetByNumber(number string) (domain.Flight, error) {
	f, err := r.MemoryFlightRepository.GetByNumber(number)
	if err == nil && r.economyFare != nil {
		f.Fares.Economy = *r.economyFare
	}
	return f, err
}

type fixture struct {
	flights   *repository.MemoryFlightRepository
	customers *repository.MemoryCustomerRepository
	bookings  *repository.MemoryBookingRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	fx := fixture{
		flights:   repository.NewFlightRepository(),
		customers: repository.NewCustomerRepository(),
		bookings:  repository.NewBookingRepository(),
	}
	for _, f := range []domain.Flight{
		{
			Number: "JFK001", Origin: "JFK", Destination: "Orlando", DepartureDate: "2024-01-01", DepartureTime: "06:30",
			Seats: domain.SeatCount{Economy: 20, Business: 20},
			Fares: domain.Fares{Economy: decimal.NewFromInt(500), Business: decimal.NewFromInt(1000)},
		},
		{
			Number: "JFK002", Origin: "JFK", Destination: "Miami", DepartureDate: "2024-01-02", DepartureTime: "14:00",
			Seats: domain.SeatCount{Economy: 1, Business: 1},
			Fares: domain.Fares{Economy: decimal.RequireFromString("450.50"), Business: decimal.NewFromInt(900)},
		},
	} {
		_, err := fx.flights.Add(f)
		require.NoError(t, err)
	}
	_, err := fx.customers.Register(domain.Customer{ID: "C001", Name: "Jane Doe", PassportNo: "N1234567", Phone: "5551234"})
	require.NoError(t, err)
	return fx
}

func (fx fixture) service(opts ...BookingServiceOption) *BookingService {
	return NewBookingService(fx.bookings, fx.flights, fx.customers, opts...)
}

func TestBookingService_BookFlight_Success(t *testing.T) {
	fx := newFixture(t)
	mockCache := &MockCache{}
	mockProducer := &MockProducer{}
	bookedAt := time.Date(2024, 1, 1, 9, 15, 0, 0, time.UTC)
	service := fx.service(
		WithCache(mockCache),
		WithProducer(mockProducer, "booking_topic"),
		WithNotificationsTopic("notifications"),
		WithClock(func() time.Time { return bookedAt }),
	)
	ctx := context.Background()

	isCreated := mock.MatchedBy(func(e kafka.BookingEvent) bool {
		return e.Type == kafka.EventBookingCreated && e.BookingID == "B001" && e.Phone == "5551234" && e.EventID != ""
	})
	mockCache.On("InvalidateFlights", ctx).Return(nil).Once()
	mockProducer.On("Publish", withDeadline, "booking_topic", "B001", isCreated).Return(nil).Once()
	mockProducer.On("Publish", withDeadline, "notifications", "B001", isCreated).Return(nil).Once()

	booking, err := service.BookFlight(ctx, BookFlightInput{FlightNo: "JFK001", PassportNo: "N1234567", Class: domain.ClassBusiness})

	require.NoError(t, err)
	assert.Equal(t, "B001", booking.ID)
	assert.Equal(t, "C001", booking.CustomerID)
	assert.Equal(t, "Jane Doe", booking.CustomerName)
	assert.Equal(t, domain.ClassBusiness, booking.Class)
	assert.True(t, booking.Fare.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, domain.Date("2024-01-01"), booking.DepartureDate)
	assert.Equal(t, "Orlando", booking.Destination)
	assert.Equal(t, bookedAt, booking.BookedAt)

	flight, _ := fx.flights.GetByNumber("JFK001")
	assert.Equal(t, domain.SeatCount{Business: 1}, flight.Booked)

	mockCache.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_BookFlight_CapacityScenario(t *testing.T) {
	fx := newFixture(t)
	service := fx.service()
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		_, err := service.BookFlight(ctx, BookFlightInput{FlightNo: "JFK001", PassportNo: "N1234567", Class: domain.ClassEconomy})
		require.NoError(t, err)
	}

	booking, err := service.BookFlight(ctx, BookFlightInput{FlightNo: "JFK001", PassportNo: "N1234567", Class: domain.ClassEconomy})
	assert.Nil(t, booking)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Len(t, fx.bookings.List(), 20)

	booking, err = service.BookFlight(ctx, BookFlightInput{FlightNo: "JFK001", PassportNo: "N1234567", Class: domain.ClassBusiness})
	require.NoError(t, err)
	assert.Equal(t, "B021", booking.ID)

	flight, _ := fx.flights.GetByNumber("JFK001")
	assert.Equal(t, domain.SeatCount{Economy: 20, Business: 1}, flight.Booked)
}

func TestBookingService_BookFlight_NotFound(t *testing.T) {
	tests := []struct {
		name  string
		input BookFlightInput
	}{
		{"unknown flight", BookFlightInput{FlightNo: "JFK999", PassportNo: "N1234567", Class: domain.ClassEconomy}},
		{"unknown passport", BookFlightInput{FlightNo: "JFK001", PassportNo: "X0000000", Class: domain.ClassEconomy}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(t)
			mockCache := &MockCache{}
			mockProducer := &MockProducer{}
			service := fx.service(WithCache(mockCache), WithProducer(mockProducer, "booking_topic"))
			before := fx.flights.List()

			booking, err := service.BookFlight(context.Background(), tt.input)

			assert.Nil(t, booking)
			assert.ErrorIs(t, err, domain.ErrNotFound)
			assert.Equal(t, before, fx.flights.List())
			assert.Empty(t, fx.bookings.List())
			mockCache.AssertNotCalled(t, "InvalidateFlights", mock.Anything)
			mockProducer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestBookingService_BookFlight_InvalidClass(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.service().BookFlight(context.Background(), BookFlightInput{FlightNo: "JFK001", PassportNo: "N1234567", Class: "first"})

	assert.ErrorIs(t, err, domain.ErrInvalidClass)
	assert.Empty(t, fx.bookings.List())
}

func TestBookingService_BookFlight_PublishFailureKeepsBooking(t *testing.T) {
	fx := newFixture(t)
	mockProducer := &MockProducer{}
	service := fx.service(WithProducer(mockProducer, "booking_topic"), WithNotificationsTopic("notifications"))
	ctx := context.Background()

	mockProducer.On("Publish", withDeadline, "booking_topic", "B001", mock.Anything).Return(errors.New("broker down")).Once()

	booking, err := service.BookFlight(ctx, BookFlightInput{FlightNo: "JFK002", PassportNo: "N1234567", Class: domain.ClassEconomy})

	require.NoError(t, err)
	assert.Equal(t, "B001", booking.ID)
	assert.Len(t, fx.bookings.List(), 1)
	mockProducer.AssertExpectations(t)
	mockProducer.AssertNotCalled(t, "Publish", mock.Anything, "notifications", mock.Anything, mock.Anything)
}

func TestBookingService_LedgerMatchesBookedCounts(t *testing.T) {
	fx := newFixture(t)
	service := fx.service()
	ctx := context.Background()

	requests := []BookFlightInput{
		{FlightNo: "JFK002", Class: domain.ClassEconomy},
		{FlightNo: "JFK002", Class: domain.ClassEconomy},
		{FlightNo: "JFK001", Class: domain.ClassEconomy},
		{FlightNo: "JFK002", Class: domain.ClassBusiness},
		{FlightNo: "JFK002", Class: domain.ClassBusiness},
		{FlightNo: "JFK001", Class: domain.ClassBusiness},
		{FlightNo: "JFK404", Class: domain.ClassBusiness},
	}
	for _, req := range requests {
		req.PassportNo = "N1234567"
		_, _ = service.BookFlight(ctx, req)
	}

	bookings, err := service.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 4)

	for i, b := range bookings {
		assert.Equal(t, domain.BookingID(i+1), b.ID)
	}

	for _, f := range fx.flights.List() {
		counted := domain.SeatCount{}
		for _, b := range bookings {
			if b.FlightNo == f.Number {
				counted = counted.Add(b.Class, 1)
			}
		}
		assert.Equal(t, counted, f.Booked, f.Number)
		for _, c := range []domain.TravelClass{domain.ClassEconomy, domain.ClassBusiness} {
			assert.GreaterOrEqual(t, f.Booked.Of(c), 0)
			assert.LessOrEqual(t, f.Booked.Of(c), f.Seats.Of(c))
		}
	}
}

func TestBookingService_FareSnapshot(t *testing.T) {
	fx := newFixture(t)
	flights := &repricingRepo{MemoryFlightRepository: fx.flights}
	service := NewBookingService(fx.bookings, flights, fx.customers)
	ctx := context.Background()

	booking, err := service.BookFlight(ctx, BookFlightInput{FlightNo: "JFK002", PassportNo: "N1234567", Class: domain.ClassEconomy})
	require.NoError(t, err)
	assert.Equal(t, "450.50", booking.Fare.StringFixed(2))

	newFare := decimal.NewFromInt(750)
	flights.economyFare = &newFare
	repriced, _ := flights.GetByNumber("JFK002")
	assert.True(t, repriced.Fares.Economy.Equal(newFare))

	bookings, _ := service.ListBookings(ctx)
	require.Len(t, bookings, 1)
	assert.Equal(t, "450.50", bookings[0].Fare.StringFixed(2))
}

func TestBookingService_BookFlight_StalledBrokerIsBounded(t *testing.T) {
	fx := newFixture(t)
	producer := &stalledProducer{}
	service := fx.service(
		WithProducer(producer, "booking_topic"),
		WithNotificationsTopic("notifications"),
		WithPublishTimeout(50*time.Millisecond),
	)

	start := time.Now()
	booking, err := service.BookFlight(context.Background(), BookFlightInput{FlightNo: "JFK001", PassportNo: "N1234567", Class: domain.ClassEconomy})

	require.NoError(t, err)
	assert.Equal(t, "B001", booking.ID)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, 1, producer.calls)
}

func TestWithPublishTimeout_IgnoresNonPositive(t *testing.T) {
	fx := newFixture(t)

	assert.Equal(t, DefaultPublishTimeout, fx.service(WithPublishTimeout(0)).publishTimeout)
	assert.Equal(t, time.Second, fx.service(WithPublishTimeout(time.Second)).publishTimeout)
}
