package api

import (
	"context"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/Domenick1991/flightdesk/internal/service/customers"
	"github.com/Domenick1991/flightdesk/internal/service/flights"
	"github.com/Domenick1991/flightdesk/internal/validate"
	"github.com/stretchr/testify/mock"
)

// MockUseCase is a mock implementation of reservation.UseCase
type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) AddFlight(ctx context.Context, input flights.AddFlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockUseCase) GetFlight(ctx context.Context, number string) (*domain.Flight, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockUseCase) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockUseCase) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.FlightView, error) {
	args := m.Called(ctx, criteria)
	return args.Get(0).([]domain.FlightView), args.Error(1)
}

func (m *MockUseCase) RegisterCustomer(ctx context.Context, input customers.RegisterCustomerInput) (*domain.Customer, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockUseCase) FindCustomer(ctx context.Context, passportNo string) (*domain.Customer, error) {
	args := m.Called(ctx, passportNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockUseCase) BookFlight(ctx context.Context, input booking.BookFlightInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockUseCase) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

var deskRules = validate.NewRules(config.Default().Desk)

type staticAuth struct{}

func (staticAuth) Authenticate(username, password string) error {
	if username == "Staff" && password == "Cloud123" {
		return nil
	}
	return domain.ErrUnauthorized
}
